// Package pgtest starts a throwaway PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Start runs postgres:15-alpine, connects GORM to it and migrates the schema.
// The caller terminates the container.
func Start(ctx context.Context) (*tcpostgres.PostgresContainer, *gorm.DB, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		return container, nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table of the schema.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE order_lines, orders, cart_lines, carts, shipping_rates,
		products, packages, customers CASCADE`).Error
}
