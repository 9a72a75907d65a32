package notifications_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSMS struct{ mock.Mock }

func (m *MockSMS) Send(ctx context.Context, to string, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

type MockEmail struct{ mock.Mock }

func (m *MockEmail) Send(ctx context.Context, email ports.Email) error {
	return m.Called(ctx, email).Error(0)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(doc quotation.Document) ([]byte, error) {
	args := m.Called(doc)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) GetContact(ctx context.Context, id kernel.UUID) (ports.Contact, error) {
	args := m.Called(ctx, id)
	contact, _ := args.Get(0).(ports.Contact)
	return contact, args.Error(1)
}

var placedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type orderOptions struct {
	phone    string
	location string
}

func newOrder(t *testing.T, opts orderOptions) *order.Order {
	t.Helper()

	if opts.phone == "" {
		opts.phone = "0712 345 678"
	}

	ref, err := catalog.NewRef(catalog.KindProduct, kernel.NewUUID())
	require.NoError(t, err)
	line, err := order.NewLine(ref, "Solar lantern", 2, kernel.MustMoney(1000))
	require.NoError(t, err)
	address, err := order.NewShippingAddress("Wanjiru Kamau", opts.phone, "Nakuru", "Rift Valley", "Kenyatta Avenue 3")
	require.NoError(t, err)
	payment, err := order.NewPayment(order.PaymentMpesa, "247247", "0712345678", "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Params{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		Items:            []order.Line{line},
		ShippingAddress:  address,
		ShippingLocation: opts.location,
		ShippingCost:     kernel.MustMoney(300),
		Payment:          payment,
	}, placedAt)
	require.NoError(t, err)
	return o
}
