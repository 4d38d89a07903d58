package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	birthday := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{ID: 123123, FirstName: "Mosh", LastName: "Israeli", Birthday: birthday},
			wantErr: false,
		},
		{
			name:    "zero id",
			user:    User{ID: 0, FirstName: "Mosh", LastName: "Israeli", Birthday: birthday},
			wantErr: true,
			errMsg:  "id must be positive",
		},
		{
			name:    "missing first name",
			user:    User{ID: 1, LastName: "Israeli", Birthday: birthday},
			wantErr: true,
			errMsg:  "first name is required",
		},
		{
			name:    "missing last name",
			user:    User{ID: 1, FirstName: "Mosh", Birthday: birthday},
			wantErr: true,
			errMsg:  "last name is required",
		},
		{
			name:    "missing birthday",
			user:    User{ID: 1, FirstName: "Mosh", LastName: "Israeli"},
			wantErr: true,
			errMsg:  "birthday is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_BeforeCreate_SetsCreatedAt(t *testing.T) {
	user := &User{ID: 7, FirstName: "A", LastName: "B", Birthday: time.Now()}

	err := user.BeforeCreate(nil)

	require.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())
}
