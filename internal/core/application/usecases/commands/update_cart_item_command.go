package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand changes the quantity of one cart line.
type UpdateCartItemCommand struct {
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(customerID, itemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	var quantityErr error
	if quantity < cart.MinQuantity || quantity > cart.MaxQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, cart.MinQuantity, cart.MaxQuantity)
	}
	if err := errors.Join(customerID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return UpdateCartItemCommand{
		customerID: customerID,
		itemID:     itemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCartItemCommand) ItemID() kernel.UUID     { return c.itemID }
func (c UpdateCartItemCommand) Quantity() int           { return c.quantity }
