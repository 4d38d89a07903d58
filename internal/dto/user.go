package dto

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"
)

// AddUserRequest is the body of POST /api/add on the users service
type AddUserRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Birthday  string `json:"birthday" validate:"required,birthday"`
}

// ParseBirthday parses a date in one of validation.BirthdayLayouts
func ParseBirthday(value string) (time.Time, error) {
	for _, layout := range validation.BirthdayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid birthday %q", value)
}

func (r *AddUserRequest) ToModel() (*models.User, error) {
	birthday, err := ParseBirthday(r.Birthday)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Birthday:  birthday,
	}, nil
}
