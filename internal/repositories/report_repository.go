package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrReportExists   = errors.New("report already exists")
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a repository for materialized monthly reports
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) FindByKey(ctx context.Context, key models.ReportKey) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", key.UserID, key.Year, key.Month).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report %s: %w", key, err)
	}

	return &report, nil
}

// Create inserts the report. The unique index on (user_id, year, month)
// rejects a second writer for the same key.
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	if err := report.Validate(); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrReportExists
		}
		return fmt.Errorf("failed to create report %s: %w", report.Key(), err)
	}

	return nil
}
