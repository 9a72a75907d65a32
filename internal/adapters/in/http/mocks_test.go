package http_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(commands.CreateOrderResult)
	return result, args.Error(1)
}

type MockOrderCommand struct{ mock.Mock }

func (m *MockOrderCommand) handle(ctx context.Context, cmd any) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockSetTrackingStatus struct{ MockOrderCommand }

func (m *MockSetTrackingStatus) Handle(ctx context.Context, cmd commands.SetTrackingStatusCommand) (*order.Order, error) {
	return m.handle(ctx, cmd)
}

type MockConfirmPayment struct{ MockOrderCommand }

func (m *MockConfirmPayment) Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error) {
	return m.handle(ctx, cmd)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.ListOrdersQueryResponse)
	return resp, args.Error(1)
}

type MockGetQuotation struct{ mock.Mock }

func (m *MockGetQuotation) Handle(ctx context.Context, query queries.GetQuotationQuery) (queries.QuotationFile, error) {
	args := m.Called(ctx, query)
	file, _ := args.Get(0).(queries.QuotationFile)
	return file, args.Error(1)
}

type MockGetCart struct{ mock.Mock }

func (m *MockGetCart) Handle(ctx context.Context, query queries.GetCartQuery) (*cart.Cart, error) {
	args := m.Called(ctx, query)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

type MockAddCartItem struct{ mock.Mock }

func (m *MockAddCartItem) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

type MockShippingRates struct{ mock.Mock }

func (m *MockShippingRates) HandleSave(ctx context.Context, cmd commands.SaveShippingRateCommand) (*shipping.Rate, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*shipping.Rate)
	return r, args.Error(1)
}

func (m *MockShippingRates) HandleDelete(ctx context.Context, cmd commands.DeleteShippingRateCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListShippingRates struct{ mock.Mock }

func (m *MockListShippingRates) Handle(ctx context.Context, query queries.ListShippingRatesQuery) ([]queries.ShippingRateView, error) {
	args := m.Called(ctx, query)
	rates, _ := args.Get(0).([]queries.ShippingRateView)
	return rates, args.Error(1)
}

func (m *MockListShippingRates) HandlePublic(ctx context.Context, query queries.ListShippingRatesQuery) ([]queries.PublicShippingRate, error) {
	args := m.Called(ctx, query)
	rates, _ := args.Get(0).([]queries.PublicShippingRate)
	return rates, args.Error(1)
}

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	ref, err := catalog.NewRef(catalog.KindProduct, kernel.NewUUID())
	require.NoError(t, err)
	line, err := order.NewLine(ref, "Solar lantern", 2, kernel.MustMoney(1000))
	require.NoError(t, err)
	address, err := order.NewShippingAddress("Wanjiru", "0712345678", "Nairobi", "Nairobi County", "Moi Avenue 12")
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentMpesa, "247247", "0712345678", "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Params{
		ID:               kernel.NewUUID(),
		CustomerID:       customerID,
		Items:            []order.Line{line},
		ShippingAddress:  address,
		ShippingLocation: "Nairobi",
		ShippingCarrier:  shipping.CarrierG4S,
		ShippingCost:     kernel.MustMoney(300),
		Payment:          payment,
	}, createdAt)
	require.NoError(t, err)
	return o
}
