package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWritesOfEveryRepository() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	rate := suite.newRate("Nairobi", true)
	suite.Require().NoError(uow.ShippingRateRepository().Add(ctx, rate))

	c := suite.newCart()
	suite.Require().NoError(uow.CartRepository().Save(ctx, c))

	suite.Equal(2, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	rates, err := reader.ShippingRateRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Len(rates, 1)

	loaded, err := reader.CartRepository().GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), loaded.ID())
	suite.Len(loaded.Lines(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCart()
	suite.Require().NoError(uow.CartRepository().Save(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Zero(uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())

	_, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, c.CustomerID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDefaultFlags_ClearedInsideTransaction() {
	ctx := context.Background()

	first := suite.newRate("Nairobi", true)
	second := suite.newRate("Kisumu", true)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ShippingRateRepository().Add(ctx, first))
	suite.Require().NoError(seed.ShippingRateRepository().Add(ctx, second))
	suite.Require().NoError(seed.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.ShippingRateRepository()
	suite.Require().NoError(repo.ClearCarrierDefault(ctx, shipping.CarrierG4S, second.ID()))
	suite.Require().NoError(repo.ClearGlobalDefault(ctx, second.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	rates, err := suite.factory.Create().ShippingRateRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rates, 2)
	suite.Equal(first.ID(), rates[0].ID())
	suite.False(rates[0].IsCarrierDefault())
	suite.False(rates[0].IsGlobalDefault())
	suite.True(rates[1].IsCarrierDefault())
	suite.True(rates[1].IsGlobalDefault())
}

var rateClock = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func (suite *UnitOfWorkIntegrationTestSuite) newRate(location string, isDefault bool) *shipping.Rate {
	rateClock = rateClock.Add(time.Minute)
	rate, err := shipping.NewRate(kernel.NewUUID(), shipping.RateParams{
		Carrier:          shipping.CarrierG4S,
		LocationName:     location,
		Price:            kernel.MustMoney(300),
		IsCarrierDefault: isDefault,
		IsGlobalDefault:  isDefault,
	}, rateClock)
	suite.Require().NoError(err)
	return rate
}

func (suite *UnitOfWorkIntegrationTestSuite) newCart() *cart.Cart {
	ref, err := catalog.NewRef(catalog.KindProduct, kernel.NewUUID())
	suite.Require().NoError(err)
	entry, err := catalog.NewEntry(ref, "Solar lantern", kernel.MustMoney(1000), false)
	suite.Require().NoError(err)

	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = c.Add(entry, 1)
	suite.Require().NoError(err)
	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
