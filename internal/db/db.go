package db

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/lib/pq"
)

// Database wraps the ent SQL driver used by the postgres gateway
type Database struct {
	Driver *entsql.Driver
}

// Open connects to Postgres through lib/pq and verifies the connection
func Open(ctx context.Context, databaseURL string) (*Database, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	drv, err := entsql.Open(dialect.Postgres, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := drv.DB()
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		drv.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDatabase(drv), nil
}

// NewDatabase creates a new database instance
func NewDatabase(drv *entsql.Driver) *Database {
	return &Database{
		Driver: drv,
	}
}

// Ping checks the connection
func (d *Database) Ping(ctx context.Context) error {
	return d.Driver.DB().PingContext(ctx)
}

func (d *Database) Close() error {
	return d.Driver.Close()
}
