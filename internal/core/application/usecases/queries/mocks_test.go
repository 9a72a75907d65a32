package queries_test

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) GetContact(ctx context.Context, id kernel.UUID) (ports.Contact, error) {
	args := m.Called(ctx, id)
	contact, _ := args.Get(0).(ports.Contact)
	return contact, args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(doc quotation.Document) ([]byte, error) {
	args := m.Called(doc)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
