package database

import (
	"fmt"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"reports",
	"costs",
	"logs",
	"users",
}

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// A shared-cache DSN named after the test keeps every pooled connection on
// the same database, so concurrent tests see one store.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", sanitizeName(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

func CreateTestUser(t *testing.T, db *DB, id int64) *models.User {
	t.Helper()

	user := &models.User{
		ID:        id,
		FirstName: "Test",
		LastName:  "User",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCost(t *testing.T, db *DB, userID int64, category, description string, sum int64, createdAt time.Time) *models.Cost {
	t.Helper()

	cost := &models.Cost{
		UserID:      userID,
		Category:    category,
		Description: description,
		Sum:         decimal.NewFromInt(sum),
		CreatedAt:   createdAt,
	}

	if err := db.Create(cost).Error; err != nil {
		t.Fatalf("failed to create test cost: %v", err)
	}

	return cost
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
