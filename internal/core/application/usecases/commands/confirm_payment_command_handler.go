package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ConfirmPaymentCommandHandler marks an order paid. It is safe to repeat: a
// second confirmation only moves PaidAt forward. No notification is sent.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	o.ConfirmPayment(h.clock.Now())

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
