// Package ports defines the contracts between the fulfillment core and its adapters.
// Persistence, catalog and customer lookups, notification providers and the
// quotation renderer are all reached through these interfaces.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their owned line snapshots.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment and timestamps of an existing order.
	// Lines and totals never change after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
