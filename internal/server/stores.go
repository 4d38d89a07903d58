package server

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/mongostore"
	"finance-tracker/internal/repositories"
)

// Stores bundles the repositories of one backend together with its
// health probe and shutdown hook
type Stores struct {
	Users   repositories.UserRepositoryInterface
	Costs   repositories.CostRepositoryInterface
	Reports repositories.ReportRepositoryInterface
	Logs    repositories.LogRepositoryInterface
	Ping    handlers.PingFunc

	close func(ctx context.Context) error
}

// Close releases the backend connection
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStores connects to the backend selected by DB_DRIVER
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, err
		}
		stores := NewGormStores(db)
		stores.close = func(context.Context) error { return db.Close() }
		return stores, nil

	case config.DriverMongo:
		store, err := mongostore.Connect(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		slog.Info("using mongo backend", "database", cfg.Database.MongoDatabase)
		return &Stores{
			Users:   mongostore.NewUserRepository(store),
			Costs:   mongostore.NewCostRepository(store),
			Reports: mongostore.NewReportRepository(store),
			Logs:    mongostore.NewLogRepository(store),
			Ping:    store.Ping,
			close:   store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)",
			cfg.Database.Driver, config.DriverPostgres, config.DriverMongo)
	}
}

// NewGormStores builds the SQL repositories on an open database
func NewGormStores(db *database.DB) *Stores {
	return &Stores{
		Users:   repositories.NewUserRepository(db.DB),
		Costs:   repositories.NewCostRepository(db.DB),
		Reports: repositories.NewReportRepository(db.DB),
		Logs:    repositories.NewLogRepository(db.DB),
		Ping:    db.HealthCheck,
	}
}
