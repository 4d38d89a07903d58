package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Report consumers expect "sum": 8, not "sum": "8".
	decimal.MarshalJSONWithoutQuotes = true
}

// Cost is a single categorized expense. Costs are immutable once created.
type Cost struct {
	ID          uint            `gorm:"primaryKey" bson:"_id" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" bson:"description" json:"description"`
	Category    string          `gorm:"type:varchar(20);not null;index" bson:"category" json:"category"`
	UserID      int64           `gorm:"column:user_id;not null;index:idx_costs_user_created,priority:1" bson:"userid" json:"userid"`
	Sum         decimal.Decimal `gorm:"type:decimal(12,2);not null" bson:"sum" json:"sum"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_costs_user_created,priority:2" bson:"created_at" json:"created_at"`
}

func (Cost) TableName() string {
	return "costs"
}

func (c *Cost) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c.Validate()
}

// BeforeUpdate rejects every update; cost records are append-only.
func (c *Cost) BeforeUpdate(tx *gorm.DB) error {
	return ErrCostImmutable
}

var ErrCostImmutable = errors.New("cost records cannot be modified")

func (c *Cost) Validate() error {
	if c.Description == "" {
		return errors.New("description is required")
	}

	if !IsValidCategory(c.Category) {
		return fmt.Errorf("invalid category: %q", c.Category)
	}

	if c.UserID <= 0 {
		return errors.New("user id must be positive")
	}

	return nil
}

// Day returns the UTC day of month the cost was recorded on
func (c *Cost) Day() int {
	return c.CreatedAt.UTC().Day()
}
