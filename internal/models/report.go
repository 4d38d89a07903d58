package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportKey identifies one user's reporting month
type ReportKey struct {
	UserID int64
	Year   int
	Month  int
}

func (k ReportKey) String() string {
	return fmt.Sprintf("%d/%04d-%02d", k.UserID, k.Year, k.Month)
}

// ReportEntry is one cost projected into a report
type ReportEntry struct {
	Sum         decimal.Decimal `bson:"sum" json:"sum"`
	Description string          `bson:"description" json:"description"`
	Day         int             `bson:"day" json:"day"`
}

// CategoryCosts groups the entries of one category. It marshals as a
// single-key object, {"food": [...]}.
type CategoryCosts struct {
	Category string        `bson:"category"`
	Entries  []ReportEntry `bson:"entries"`
}

func (cc CategoryCosts) MarshalJSON() ([]byte, error) {
	entries := cc.Entries
	if entries == nil {
		entries = []ReportEntry{}
	}
	return json.Marshal(map[string][]ReportEntry{cc.Category: entries})
}

func (cc *CategoryCosts) UnmarshalJSON(data []byte) error {
	var m map[string][]ReportEntry
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("category group must have exactly one key, got %d", len(m))
	}
	for category, entries := range m {
		cc.Category = category
		cc.Entries = entries
		if cc.Entries == nil {
			cc.Entries = []ReportEntry{}
		}
	}
	return nil
}

// ReportCosts is the ordered per-category breakdown of a month. Stored as a
// JSON text column so it works on both Postgres and SQLite.
type ReportCosts []CategoryCosts

func (rc ReportCosts) Value() (driver.Value, error) {
	b, err := json.Marshal(rc)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (rc *ReportCosts) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*rc = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ReportCosts", value)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		*rc = nil
		return nil
	}
	return json.Unmarshal(raw, rc)
}

// Report is a materialized monthly report for a closed month. At most one
// row exists per (user_id, year, month); rows are never updated.
type Report struct {
	ID        uint        `gorm:"primaryKey" bson:"-" json:"-"`
	UserID    int64       `gorm:"column:user_id;not null;uniqueIndex:idx_reports_user_year_month,priority:1" bson:"userid" json:"userid"`
	Year      int         `gorm:"not null;uniqueIndex:idx_reports_user_year_month,priority:2" bson:"year" json:"year"`
	Month     int         `gorm:"not null;uniqueIndex:idx_reports_user_year_month,priority:3" bson:"month" json:"month"`
	Costs     ReportCosts `gorm:"type:text;not null" bson:"costs" json:"costs"`
	CreatedAt time.Time   `gorm:"not null" bson:"created_at" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) Key() ReportKey {
	return ReportKey{UserID: r.UserID, Year: r.Year, Month: r.Month}
}

func (r *Report) Validate() error {
	if r.UserID <= 0 {
		return errors.New("user id must be positive")
	}
	if r.Month < 1 || r.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if len(r.Costs) != len(Categories) {
		return fmt.Errorf("report must have %d category groups, got %d", len(Categories), len(r.Costs))
	}
	return nil
}

// MonthlyReport is the response of a report request, cached or computed
type MonthlyReport struct {
	UserID int64       `json:"userid"`
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Costs  ReportCosts `json:"costs"`
}
