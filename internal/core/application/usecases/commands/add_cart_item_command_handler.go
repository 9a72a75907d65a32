package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AddCartItemCommandHandler adds a catalog entry to the cart, creating the
// cart on the customer's first add. The line snapshots the current price.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogReader
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, catalog ports.CatalogReader) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, catalog: catalog}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entry, err := h.catalog.GetEntry(ctx, cmd.Ref())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	c, err := loadOrCreateCart(ctx, repo, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if _, err = c.Add(entry, cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func loadOrCreateCart(ctx context.Context, repo ports.CartRepository, customerID kernel.UUID) (*cart.Cart, error) {
	c, err := repo.GetByCustomer(ctx, customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewCart(kernel.NewUUID(), customerID)
	}
	return c, err
}
