package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSetTrackingStatusCommandIsNotConstructed = errors.New(
	"SetTrackingStatusCommand must be created via NewSetTrackingStatusCommand constructor",
)

// SetTrackingStatusCommand is an administrator writing an order's tracking status.
type SetTrackingStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewSetTrackingStatusCommand(orderID kernel.UUID, status order.Status) (SetTrackingStatusCommand, error) {
	cmd := SetTrackingStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(cmd.setOrderID(orderID), cmd.setStatus(status)); err != nil {
		return SetTrackingStatusCommand{}, err
	}

	return cmd, nil
}

func (c SetTrackingStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTrackingStatusCommandIsNotConstructed)
}

func (c SetTrackingStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetTrackingStatusCommand) Status() order.Status { return c.status }

func (c *SetTrackingStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SetTrackingStatusCommand) setStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}
