// Package storage provides the outbound persistence adapter. A generic
// GORM-backed repository implements the CRUD contract over any record type
// with a uuid primary key; TaskRepository specializes it for todo tasks and
// translates between storage records and domain entities.
package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mahdi-morovati/rira-task/internal/platform/config"
)

// Open connects to the relational store selected by cfg.Driver ("sqlite" or
// "postgres") and runs schema migration for all record types.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

// Compile-time check against the health checker contract.
var _ interface {
	Name() string
	HealthCheck(ctx context.Context) error
} = (*HealthChecker)(nil)

// HealthChecker reports database connectivity for the readiness endpoint.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a HealthChecker over the given connection.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies this checker in readiness payloads.
func (h *HealthChecker) Name() string {
	return "database"
}

// HealthCheck pings the underlying connection, respecting ctx deadlines.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("obtaining connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
