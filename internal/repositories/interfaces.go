package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// CostRepositoryInterface defines the contract for cost repository operations.
// Costs are append-only.
type CostRepositoryInterface interface {
	Create(ctx context.Context, cost *models.Cost) error
	CreateBatch(ctx context.Context, costs []models.Cost) error
	// FindByUserAndRange returns the user's costs with start <= created_at < end,
	// ordered by creation time.
	FindByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error)
	SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// ReportRepositoryInterface defines the contract for materialized monthly reports
type ReportRepositoryInterface interface {
	// FindByKey returns ErrReportNotFound when no report was materialized for the key
	FindByKey(ctx context.Context, key models.ReportKey) (*models.Report, error)
	// Create returns ErrReportExists when a report for the same key already exists
	Create(ctx context.Context, report *models.Report) error
}

// LogRepositoryInterface defines the contract for persisted request logs
type LogRepositoryInterface interface {
	Create(ctx context.Context, log *models.Log) error
	List(ctx context.Context, offset, limit int) ([]models.Log, error)
}
