package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand is an administrator recording that an order was paid.
type ConfirmPaymentCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID kernel.UUID) (ConfirmPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	return ConfirmPaymentCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}
