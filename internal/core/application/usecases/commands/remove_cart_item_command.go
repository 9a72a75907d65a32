package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// RemoveCartItemCommand deletes one line from the customer's cart.
type RemoveCartItemCommand struct {
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(customerID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(customerID.Validate(), itemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{customerID: customerID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RemoveCartItemCommand) ItemID() kernel.UUID     { return c.itemID }

// ClearCartCommand empties the customer's cart.
type ClearCartCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearCartCommand(customerID kernel.UUID) (ClearCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) CustomerID() kernel.UUID { return c.customerID }
