package postgres

import (
	"fmt"

	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/raterepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. GORM's own logger is silenced; failures surface
// as returned errors and are logged by the caller.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the service owns or reads.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.LineDTO{},
		&raterepo.RateDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PackageDTO{},
		&customerrepo.CustomerDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
