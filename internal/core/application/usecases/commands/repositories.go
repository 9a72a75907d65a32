// Package commands contains business operations that modify system state.
// Every command follows the same shape: constructor validation, a unit of work
// around the writes, and events published only after commit.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it writes.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	RateRepoFactory interface {
		ShippingRateRepository() ports.ShippingRateRepository
	}

	// OrderUoW is used by admin transitions on a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartUoW is used by cart edits and by the post-checkout cart clear.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// RateUoW is used by rate table administration.
	RateUoW interface {
		TxManager
		RateRepoFactory
	}

	RateUoWFactory interface {
		Create() RateUoW
	}

	// CheckoutUoW reads the cart and rate table and writes the new order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, _ := uow.CartRepository().GetByCustomer(ctx, customerID)
	//   rates, _ := uow.ShippingRateRepository().List(ctx)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		RateRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
