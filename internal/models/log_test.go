package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLog_Prepare(t *testing.T) {
	l := &Log{Level: LogLevelInfo, Message: "Request received: GET /api/about"}

	l.Prepare()

	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestLog_Validate(t *testing.T) {
	assert.NoError(t, (&Log{Level: LogLevelWarn, Message: "x"}).Validate())
	assert.Error(t, (&Log{Level: "verbose", Message: "x"}).Validate())
	assert.Error(t, (&Log{Level: LogLevelInfo}).Validate())
}
