package dto

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

// AddCostRequest is the body of POST /api/add on the costs service
type AddCostRequest struct {
	Description string           `json:"description" validate:"required,max=255"`
	Category    string           `json:"category" validate:"required,category"`
	UserID      int64            `json:"userid" validate:"required,gt=0"`
	Sum         *decimal.Decimal `json:"sum" validate:"required,gte=0,money"`
	CreatedAt   string           `json:"created_at,omitempty" validate:"omitempty,timestamp"`
}

// ParseTimestamp parses a time in one of validation.TimestampLayouts
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range validation.TimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at %q", value)
}

// ToModel converts the request into a cost. A missing created_at is left
// zero so the service can stamp it.
func (r *AddCostRequest) ToModel() (*models.Cost, error) {
	cost := &models.Cost{
		Description: r.Description,
		Category:    r.Category,
		UserID:      r.UserID,
	}
	if r.Sum != nil {
		cost.Sum = *r.Sum
	}
	if r.CreatedAt != "" {
		createdAt, err := ParseTimestamp(r.CreatedAt)
		if err != nil {
			return nil, err
		}
		cost.CreatedAt = createdAt
	}
	return cost, nil
}

// GenerateCostsRequest holds the query of the development cost generator
type GenerateCostsRequest struct {
	Count  int `query:"count" validate:"omitempty,min=1,max=500"`
	Months int `query:"months" validate:"omitempty,min=1,max=24"`
}

// GenerateCostsMeta describes a generated batch
type GenerateCostsMeta struct {
	UserID int64 `json:"userid"`
	Count  int   `json:"count"`
	Months int   `json:"months"`
}
