package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
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

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) Add(ctx context.Context, r *shipping.Rate) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRateRepository) Update(ctx context.Context, r *shipping.Rate) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRateRepository) Get(ctx context.Context, id kernel.UUID) (*shipping.Rate, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*shipping.Rate)
	return r, args.Error(1)
}

func (m *MockRateRepository) List(ctx context.Context) ([]*shipping.Rate, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).([]*shipping.Rate)
	return rates, args.Error(1)
}

func (m *MockRateRepository) ClearCarrierDefault(ctx context.Context, c shipping.Carrier, keep kernel.UUID) error {
	return m.Called(ctx, c, keep).Error(0)
}

func (m *MockRateRepository) ClearGlobalDefault(ctx context.Context, keep kernel.UUID) error {
	return m.Called(ctx, keep).Error(0)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) FindEntries(ctx context.Context, refs []catalog.Ref) ([]catalog.Entry, error) {
	args := m.Called(ctx, refs)
	entries, _ := args.Get(0).([]catalog.Entry)
	return entries, args.Error(1)
}

func (m *MockCatalog) GetEntry(ctx context.Context, ref catalog.Ref) (catalog.Entry, error) {
	args := m.Called(ctx, ref)
	entry, _ := args.Get(0).(catalog.Entry)
	return entry, args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(event order.Event) {
	m.Called(event)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) ShippingRateRepository() ports.ShippingRateRepository {
	return m.Called().Get(0).(ports.ShippingRateRepository)
}

// newTx returns a unit of work that begins, commits and rolls back without error.
func newTx() *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

type uowQueue struct {
	next []*MockUoW
}

func (q *uowQueue) pop() *MockUoW {
	uow := q.next[0]
	q.next = q.next[1:]
	return uow
}

type checkoutFactory struct{ *uowQueue }

func (f checkoutFactory) Create() commands.CheckoutUoW { return f.pop() }

type cartFactory struct{ *uowQueue }

func (f cartFactory) Create() commands.CartUoW { return f.pop() }

type orderFactory struct{ *uowQueue }

func (f orderFactory) Create() commands.OrderUoW { return f.pop() }

type rateFactory struct{ *uowQueue }

func (f rateFactory) Create() commands.RateUoW { return f.pop() }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }
