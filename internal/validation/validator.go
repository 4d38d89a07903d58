package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// BirthdayLayouts are the date formats accepted by the "birthday" rule
var BirthdayLayouts = []string{"2006-01-02", time.RFC3339}

// TimestampLayouts are the formats accepted by the "timestamp" rule. Values
// without a zone are read as UTC.
var TimestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("birthday", validateBirthday)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("timestamp", validateTimestamp)

	// decimal.Decimal is validated as a float so numeric tags (gte, lte) apply
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateCategory checks the value is one of the report categories
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateBirthday checks the value parses as a date that is not in the future
func validateBirthday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range BirthdayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return !t.After(time.Now())
		}
	}
	return false
}

func validateTimestamp(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range TimestampLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// validateMoney checks a non-negative amount with at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	var d decimal.Decimal
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d = decimal.NewFromInt(fl.Field().Int())
	case reflect.String:
		parsed, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		d = parsed
	default:
		return false
	}

	if d.IsNegative() {
		return false
	}
	return d.Equal(d.Round(2))
}
