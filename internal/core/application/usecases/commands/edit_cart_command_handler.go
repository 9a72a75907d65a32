package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// EditCartCommandHandler handles quantity changes, line removals and clearing
// of an existing cart. Edits are read-modify-write with no concurrency control;
// the last writer wins.
type EditCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewEditCartCommandHandler(uowFactory CartUoWFactory) EditCartCommandHandler {
	return EditCartCommandHandler{uowFactory: uowFactory}
}

func (h EditCartCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.edit(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		return c.UpdateQuantity(cmd.ItemID(), cmd.Quantity())
	})
}

func (h EditCartCommandHandler) HandleRemove(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.edit(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		return c.Remove(cmd.ItemID())
	})
}

// HandleClear empties the cart, creating an empty one if the customer had none.
func (h EditCartCommandHandler) HandleClear(ctx context.Context, cmd ClearCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.edit(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (h EditCartCommandHandler) edit(
	ctx context.Context,
	customerID kernel.UUID,
	mutate func(c *cart.Cart) error,
) (*cart.Cart, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	c, err := loadOrCreateCart(ctx, repo, customerID)
	if err != nil {
		return nil, err
	}

	if err = mutate(c); err != nil {
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
