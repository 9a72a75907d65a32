package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// ShippingRateCommandHandler administers the rate table.
//
// Setting a default flag clears the same flag on its siblings inside the same
// transaction: the carrier default on every other rate of that carrier, the
// global default on every other rate.
type ShippingRateCommandHandler struct {
	uowFactory RateUoWFactory
	clock      ports.Clock
}

func NewShippingRateCommandHandler(uowFactory RateUoWFactory, clock ports.Clock) ShippingRateCommandHandler {
	return ShippingRateCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ShippingRateCommandHandler) HandleSave(ctx context.Context, cmd SaveShippingRateCommand) (*shipping.Rate, error) {
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

	repo := uow.ShippingRateRepository()

	var (
		rate *shipping.Rate
		err  error
	)
	if id := cmd.RateID(); id == nil {
		if rate, err = shipping.NewRate(kernel.NewUUID(), cmd.Params(), h.clock.Now()); err != nil {
			return nil, err
		}
		err = repo.Add(ctx, rate)
	} else {
		if rate, err = repo.Get(ctx, *id); err != nil {
			return nil, err
		}
		if err = rate.Update(cmd.Params()); err != nil {
			return nil, err
		}
		err = repo.Update(ctx, rate)
	}
	if err != nil {
		return nil, err
	}

	if rate.IsCarrierDefault() {
		if err = repo.ClearCarrierDefault(ctx, rate.Carrier(), rate.ID()); err != nil {
			return nil, err
		}
	}
	if rate.IsGlobalDefault() {
		if err = repo.ClearGlobalDefault(ctx, rate.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rate, nil
}

func (h ShippingRateCommandHandler) HandleDelete(ctx context.Context, cmd DeleteShippingRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShippingRateRepository().Delete(ctx, cmd.RateID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
