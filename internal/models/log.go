package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
	LogLevelDebug = "debug"
	LogLevelTrace = "trace"
)

// Log is a persisted request log entry
type Log struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" bson:"_id" json:"id"`
	Level     string    `gorm:"type:varchar(10);not null" bson:"level" json:"level"`
	Message   string    `gorm:"type:text;not null" bson:"message" json:"message"`
	Service   string    `gorm:"type:varchar(50);index" bson:"service" json:"service,omitempty"`
	Method    string    `gorm:"type:varchar(10)" bson:"method" json:"method,omitempty"`
	Path      string    `gorm:"type:varchar(2048)" bson:"path" json:"path,omitempty"`
	Status    int       `bson:"status" json:"status,omitempty"`
	TraceID   string    `gorm:"type:varchar(64)" bson:"trace_id" json:"trace_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" bson:"created_at" json:"created_at"`
}

func (Log) TableName() string {
	return "logs"
}

func (l *Log) BeforeCreate(tx *gorm.DB) error {
	l.Prepare()
	return l.Validate()
}

// Prepare fills the ID and timestamp when unset
func (l *Log) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
}

func (l *Log) Validate() error {
	if !IsValidLogLevel(l.Level) {
		return fmt.Errorf("invalid log level: %q", l.Level)
	}
	if l.Message == "" {
		return fmt.Errorf("log message is required")
	}
	return nil
}

func IsValidLogLevel(level string) bool {
	switch level {
	case LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelFatal, LogLevelDebug, LogLevelTrace:
		return true
	}
	return false
}

func (l *Log) String() string {
	return fmt.Sprintf("Log[%s %s: %s (%s)]", l.CreatedAt.Format(time.RFC3339), l.Level, l.Message, l.Service)
}
