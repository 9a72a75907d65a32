package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository stores one cart per customer.
type CartRepository interface {
	// GetByCustomer returns the customer's cart or an errs.ObjectNotFoundError
	// when the customer never added anything.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save creates the cart or replaces its lines.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
