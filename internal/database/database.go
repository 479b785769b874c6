package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecart/internal/config"
)

// Connect opens the PostgreSQL connection pool, retrying a bounded number
// of times with a fixed delay. Each attempt is verified with a ping.
// After exhausting the retries the last underlying error is returned.
//
// This is the resilient startup path; the readiness probe uses Ready,
// which makes exactly one attempt.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			sqlDB, derr := db.DB()
			if derr == nil {
				if derr = sqlDB.Ping(); derr == nil {
					return db, nil
				}
				sqlDB.Close()
			}
			err = derr
		}
		lastErr = err
		if attempt < cfg.ConnectRetries {
			log.Printf("database connection attempt %d/%d failed: %v; retrying in %s",
				attempt, cfg.ConnectRetries, err, cfg.ConnectDelay)
			time.Sleep(cfg.ConnectDelay)
		}
	}
	return nil, fmt.Errorf("could not connect to database after %d attempts: %w",
		cfg.ConnectRetries, lastErr)
}

// Ready performs a single ping with no retry. It is intentionally not
// resilient: the readiness probe has to report an unreachable store
// quickly rather than mask it.
func Ready(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ServerVersion reports the backing store's version string, for the
// UI banner and /arch.
func ServerVersion(db *gorm.DB) (string, error) {
	var version string
	query := "SELECT version()"
	if db.Dialector.Name() == "sqlite" {
		query = "SELECT 'SQLite ' || sqlite_version()"
	}
	if err := db.Raw(query).Scan(&version).Error; err != nil {
		return "", err
	}
	return version, nil
}
