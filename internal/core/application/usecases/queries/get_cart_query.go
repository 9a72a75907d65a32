package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartQueryHandler returns the customer's cart, or an unsaved empty cart
// when the customer has never added anything.
type GetCartQueryHandler struct {
	carts ports.CartRepository
}

func NewGetCartQueryHandler(carts ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (*cart.Cart, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.GetByCustomer(ctx, query.customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewCart(kernel.NewUUID(), query.customerID)
	}
	return c, err
}
