package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is a registered person. The numeric ID is chosen by the client and
// must be unique.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" bson:"_id" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" bson:"first_name" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" bson:"last_name" json:"last_name"`
	Birthday  time.Time `gorm:"not null" bson:"birthday" json:"birthday"`
	CreatedAt time.Time `gorm:"not null" bson:"created_at" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if u.ID <= 0 {
		return errors.New("id must be positive")
	}

	if u.FirstName == "" {
		return errors.New("first name is required")
	}

	if u.LastName == "" {
		return errors.New("last name is required")
	}

	if u.Birthday.IsZero() {
		return errors.New("birthday is required")
	}

	return nil
}

// UserDetails is a user together with the total of all their costs
type UserDetails struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	ID        int64           `json:"id"`
	Total     decimal.Decimal `json:"total"`
}
