package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a repository for persisted request logs
func NewLogRepository(db *gorm.DB) LogRepositoryInterface {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *models.Log) error {
	if log == nil {
		return errors.New("log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}

	return nil
}

// List returns logs newest first
func (r *logRepository) List(ctx context.Context, offset, limit int) ([]models.Log, error) {
	logs := []models.Log{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	return logs, nil
}
