package cartrepo_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ThenGetByCustomer_KeepsLineOrderAndSnapshots() {
	ctx := context.Background()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	lantern := suite.newEntry(catalog.KindProduct, "Solar lantern", 1000)
	kit := suite.newEntry(catalog.KindPackage, "Starter kit", 4500)
	_, err = c.Add(lantern, 2)
	suite.Require().NoError(err)
	_, err = c.Add(kit, 1)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, c))

	loaded, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), loaded.ID())
	suite.Require().Len(loaded.Lines(), 2)
	suite.True(loaded.Lines()[0].Ref().IsEqual(lantern.Ref))
	suite.True(loaded.Lines()[1].Ref().IsEqual(kit.Ref))
	suite.Equal(c.Lines()[0].ID(), loaded.Lines()[0].ID())
	suite.True(kernel.MustMoney(6500).IsEqual(loaded.Subtotal()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ReplacesLines() {
	ctx := context.Background()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = c.Add(suite.newEntry(catalog.KindProduct, "Water filter", 2500), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	c.Clear()
	suite.Require().NoError(suite.repository.Save(ctx, c))

	loaded, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEmpty())
	suite.True(loaded.Subtotal().IsZero())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&cartrepo.LineDTO{}).Count(&lineCount).Error)
	suite.Zero(lineCount)
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_SecondFreshCartForCustomer_KeepsStoredRow() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	first, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	_, err = first.Add(suite.newEntry(catalog.KindProduct, "Solar lantern", 1000), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, first))

	second, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	kit := suite.newEntry(catalog.KindPackage, "Starter kit", 4500)
	_, err = second.Add(kit, 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, second))

	loaded, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(first.ID(), loaded.ID())
	suite.Require().Len(loaded.Lines(), 1)
	suite.True(loaded.Lines()[0].Ref().IsEqual(kit.Ref))
	suite.True(kernel.MustMoney(9000).IsEqual(loaded.Subtotal()))

	var cartCount int64
	suite.Require().NoError(suite.db.Model(&cartrepo.CartDTO{}).Count(&cartCount).Error)
	suite.Equal(int64(1), cartCount)
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomer_NoCart_ReturnsNotFound() {
	_, err := suite.repository.GetByCustomer(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) newEntry(kind catalog.Kind, name string, price int64) catalog.Entry {
	ref, err := catalog.NewRef(kind, kernel.NewUUID())
	suite.Require().NoError(err)
	entry, err := catalog.NewEntry(ref, name, kernel.MustMoney(price), false)
	suite.Require().NoError(err)
	return entry
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
