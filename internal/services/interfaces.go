package services

import (
	"context"
	"time"

	"finance-tracker/internal/models"
)

// Clock returns the current time. Report classification reads it in UTC.
type Clock func() time.Time

// ReportServiceInterface serves monthly reports, materializing closed months
type ReportServiceInterface interface {
	GetReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error)
}

// CostServiceInterface defines cost-related business operations
type CostServiceInterface interface {
	AddCost(ctx context.Context, cost *models.Cost) (*models.Cost, error)
	GenerateCosts(ctx context.Context, userID int64, count, months int) ([]models.Cost, error)
}

// UserServiceInterface defines user-related business operations
type UserServiceInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserDetails(ctx context.Context, userID int64) (*models.UserDetails, error)
}

// LogServiceInterface persists and lists request logs. Enqueue never blocks;
// Run drains the queue until its context is cancelled.
type LogServiceInterface interface {
	Enqueue(entry models.Log) bool
	Run(ctx context.Context)
	ListLogs(ctx context.Context, offset, limit int) ([]models.Log, error)
}

// CostGeneratorInterface fabricates realistic costs for development data
type CostGeneratorInterface interface {
	GenerateCosts(userID int64, count, months int, now time.Time) []models.Cost
}

// MetricsRecorderInterface is the sink for service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
