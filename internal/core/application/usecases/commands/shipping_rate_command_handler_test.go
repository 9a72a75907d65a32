package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rateTx(repo *MockRateRepository) *MockUoW {
	tx := newTx()
	tx.On("ShippingRateRepository").Return(repo)
	return tx
}

func TestShippingRateCommandHandler_CreateClearsSiblingDefaults(t *testing.T) {
	repo := new(MockRateRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipping.Rate")).Return(nil).Once()
	repo.On("ClearCarrierDefault", mock.Anything, shipping.CarrierPickupMtaani, mock.Anything).Return(nil).Once()
	repo.On("ClearGlobalDefault", mock.Anything, mock.Anything).Return(nil).Once()
	tx := rateTx(repo)

	handler := commands.NewShippingRateCommandHandler(
		rateFactory{&uowQueue{next: []*MockUoW{tx}}}, &fixedClock{now: checkoutNow})

	cmd, err := commands.NewCreateShippingRateCommand(shipping.RateParams{
		Carrier:          shipping.CarrierPickupMtaani,
		LocationName:     "Anywhere",
		Price:            kernel.MustMoney(200),
		IsCarrierDefault: true,
		IsGlobalDefault:  true,
	})
	require.NoError(t, err)

	rate, err := handler.HandleSave(t.Context(), cmd)
	require.NoError(t, err)

	assert.Equal(t, checkoutNow, rate.CreatedAt())
	repo.AssertCalled(t, "ClearCarrierDefault", mock.Anything, shipping.CarrierPickupMtaani, rate.ID())
	repo.AssertCalled(t, "ClearGlobalDefault", mock.Anything, rate.ID())
	tx.AssertCalled(t, "Commit", mock.Anything)
}

func TestShippingRateCommandHandler_UpdateWithoutDefaults(t *testing.T) {
	existing, err := shipping.NewRate(kernel.NewUUID(), shipping.RateParams{
		Carrier:          shipping.CarrierG4S,
		LocationName:     "Nakuru",
		Price:            kernel.MustMoney(400),
		IsCarrierDefault: true,
	}, checkoutNow)
	require.NoError(t, err)

	repo := new(MockRateRepository)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()

	handler := commands.NewShippingRateCommandHandler(
		rateFactory{&uowQueue{next: []*MockUoW{rateTx(repo)}}}, &fixedClock{now: checkoutNow})

	cmd, err := commands.NewUpdateShippingRateCommand(existing.ID(), shipping.RateParams{
		Carrier:      shipping.CarrierG4S,
		LocationName: "Nakuru",
		RegionCode:   "NKR",
		Price:        kernel.MustMoney(450),
	})
	require.NoError(t, err)

	updated, err := handler.HandleSave(t.Context(), cmd)
	require.NoError(t, err)

	assert.False(t, updated.IsCarrierDefault())
	assert.Equal(t, "NKR", updated.RegionCode())
	assert.True(t, kernel.MustMoney(450).IsEqual(updated.Price()))
	repo.AssertNotCalled(t, "ClearCarrierDefault", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ClearGlobalDefault", mock.Anything, mock.Anything)
}

func TestShippingRateCommandHandler_Delete(t *testing.T) {
	id := kernel.NewUUID()
	repo := new(MockRateRepository)
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	tx := rateTx(repo)

	handler := commands.NewShippingRateCommandHandler(
		rateFactory{&uowQueue{next: []*MockUoW{tx}}}, &fixedClock{now: checkoutNow})

	cmd, err := commands.NewDeleteShippingRateCommand(id)
	require.NoError(t, err)

	require.NoError(t, handler.HandleDelete(t.Context(), cmd))
	repo.AssertExpectations(t)
	tx.AssertCalled(t, "Commit", mock.Anything)
}
