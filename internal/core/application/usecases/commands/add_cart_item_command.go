package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts a product or package into the customer's cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	ref        catalog.Ref
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(customerID kernel.UUID, ref catalog.Ref, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRef(ref),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AddCartItemCommand) Ref() catalog.Ref        { return c.ref }
func (c AddCartItemCommand) Quantity() int           { return c.quantity }

func (c *AddCartItemCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *AddCartItemCommand) setRef(ref catalog.Ref) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	c.ref = ref
	return nil
}

func (c *AddCartItemCommand) setQuantity(q int) error {
	if q < cart.MinQuantity || q > cart.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", q, cart.MinQuantity, cart.MaxQuantity)
	}
	c.quantity = q
	return nil
}
