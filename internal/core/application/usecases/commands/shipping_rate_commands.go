package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSaveShippingRateCommandIsNotConstructed = errors.New(
		"SaveShippingRateCommand must be created via NewCreateShippingRateCommand or NewUpdateShippingRateCommand",
	)
	ErrDeleteShippingRateCommandIsNotConstructed = errors.New(
		"DeleteShippingRateCommand must be created via NewDeleteShippingRateCommand constructor",
	)
)

// SaveShippingRateCommand creates a rate (no id) or replaces an existing one.
type SaveShippingRateCommand struct {
	rateID *kernel.UUID
	params shipping.RateParams

	guard guard.ConstructorGuard
}

func NewCreateShippingRateCommand(params shipping.RateParams) (SaveShippingRateCommand, error) {
	if err := validateRateParams(params); err != nil {
		return SaveShippingRateCommand{}, err
	}
	return SaveShippingRateCommand{params: params, guard: guard.NewConstructorGuard()}, nil
}

func NewUpdateShippingRateCommand(rateID kernel.UUID, params shipping.RateParams) (SaveShippingRateCommand, error) {
	if err := errors.Join(rateID.Validate(), validateRateParams(params)); err != nil {
		return SaveShippingRateCommand{}, err
	}
	return SaveShippingRateCommand{rateID: &rateID, params: params, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveShippingRateCommand) Validate() error {
	return c.guard.Validate(ErrSaveShippingRateCommandIsNotConstructed)
}

// RateID is nil for a create.
func (c SaveShippingRateCommand) RateID() *kernel.UUID        { return c.rateID }
func (c SaveShippingRateCommand) Params() shipping.RateParams { return c.params }

// validateRateParams builds a throwaway rate so commands reject exactly what the aggregate rejects.
func validateRateParams(params shipping.RateParams) error {
	_, err := shipping.NewRate(kernel.NewUUID(), params, time.Time{})
	return err
}

// DeleteShippingRateCommand removes a rate from the table.
type DeleteShippingRateCommand struct {
	rateID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShippingRateCommand(rateID kernel.UUID) (DeleteShippingRateCommand, error) {
	if err := rateID.Validate(); err != nil {
		return DeleteShippingRateCommand{}, err
	}
	return DeleteShippingRateCommand{rateID: rateID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteShippingRateCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShippingRateCommandIsNotConstructed)
}

func (c DeleteShippingRateCommand) RateID() kernel.UUID { return c.rateID }
