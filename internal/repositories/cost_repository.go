package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type costRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository
func NewCostRepository(db *gorm.DB) CostRepositoryInterface {
	return &costRepository{db: db}
}

func (r *costRepository) Create(ctx context.Context, cost *models.Cost) error {
	if cost == nil {
		return errors.New("cost cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(cost).Error; err != nil {
		return fmt.Errorf("failed to create cost: %w", err)
	}

	return nil
}

// CreateBatch inserts all costs in one transaction
func (r *costRepository) CreateBatch(ctx context.Context, costs []models.Cost) error {
	if len(costs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(costs, 100).Error; err != nil {
			return fmt.Errorf("failed to create costs: %w", err)
		}
		return nil
	})
}

func (r *costRepository) FindByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error) {
	costs := []models.Cost{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start.UTC(), end.UTC()).
		Order("created_at ASC, id ASC").
		Find(&costs).Error; err != nil {
		return nil, fmt.Errorf("failed to get costs by range: %w", err)
	}

	return costs, nil
}

// SumByUser totals every cost the user ever recorded
func (r *costRepository) SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Cost{}).
		Select("COALESCE(SUM(sum), 0) as total").
		Where("user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total costs: %w", err)
	}

	return result.Total, nil
}
