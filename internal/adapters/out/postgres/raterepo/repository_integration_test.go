package raterepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/raterepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
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

type RateRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *raterepo.GormRateRepository
	created    time.Time
}

func (suite *RateRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *RateRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = raterepo.NewGormRateRepository(suite.db, tracker)
	suite.created = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
}

func (suite *RateRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RateRepositoryIntegrationTestSuite) TestList_IsInCreationOrder() {
	ctx := context.Background()
	later := suite.newRate(shipping.CarrierG4S, "Mombasa", 2*time.Hour)
	earlier := suite.newRate(shipping.CarrierFargoCourier, "Nairobi", time.Hour)
	suite.Require().NoError(suite.repository.Add(ctx, later))
	suite.Require().NoError(suite.repository.Add(ctx, earlier))

	rates, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rates, 2)
	suite.Equal(earlier.ID(), rates[0].ID())
	suite.Equal(later.ID(), rates[1].ID())
	suite.Equal("Nairobi", rates[0].LocationName())
	suite.True(kernel.MustMoney(350).IsEqual(rates[0].Price()))
}

func (suite *RateRepositoryIntegrationTestSuite) TestUpdate_And_Get() {
	ctx := context.Background()
	rate := suite.newRate(shipping.CarrierG4S, "Nakuru", time.Hour)
	suite.Require().NoError(suite.repository.Add(ctx, rate))

	suite.Require().NoError(rate.Update(shipping.RateParams{
		Carrier:             shipping.CarrierPickupMtaani,
		LocationName:        "Nakuru",
		RegionCode:          "NKR",
		Price:               kernel.MustMoney(150),
		IsGlobalDefault:     true,
		AllowCashOnDelivery: true,
	}))
	suite.Require().NoError(suite.repository.Update(ctx, rate))

	loaded, err := suite.repository.Get(ctx, rate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipping.CarrierPickupMtaani, loaded.Carrier())
	suite.Equal("NKR", loaded.RegionCode())
	suite.True(loaded.IsGlobalDefault())
	suite.False(loaded.IsCarrierDefault())
	suite.True(loaded.AllowCashOnDelivery())
	suite.True(suite.created.Add(time.Hour).Equal(loaded.CreatedAt()))
}

func (suite *RateRepositoryIntegrationTestSuite) TestClearCarrierDefault_OnlyTouchesSameCarrier() {
	ctx := context.Background()
	keep := suite.newDefault(shipping.CarrierG4S, "Nairobi", time.Hour)
	sibling := suite.newDefault(shipping.CarrierG4S, "Kisumu", 2*time.Hour)
	other := suite.newDefault(shipping.CarrierFargoCourier, "Eldoret", 3*time.Hour)
	for _, r := range []*shipping.Rate{keep, sibling, other} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	suite.Require().NoError(suite.repository.ClearCarrierDefault(ctx, shipping.CarrierG4S, keep.ID()))

	rates, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.True(rates[0].IsCarrierDefault())
	suite.False(rates[1].IsCarrierDefault())
	suite.True(rates[2].IsCarrierDefault())
}

func (suite *RateRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	rate := suite.newRate(shipping.CarrierInHouse, "CBD", time.Hour)
	suite.Require().NoError(suite.repository.Add(ctx, rate))

	suite.Require().NoError(suite.repository.Delete(ctx, rate.ID()))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, rate.ID()), errs.ErrObjectNotFound)

	_, err := suite.repository.Get(ctx, rate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RateRepositoryIntegrationTestSuite) newRate(c shipping.Carrier, location string, offset time.Duration) *shipping.Rate {
	rate, err := shipping.NewRate(kernel.NewUUID(), shipping.RateParams{
		Carrier:      c,
		LocationName: location,
		Price:        kernel.MustMoney(350),
	}, suite.created.Add(offset))
	suite.Require().NoError(err)
	return rate
}

func (suite *RateRepositoryIntegrationTestSuite) newDefault(c shipping.Carrier, location string, offset time.Duration) *shipping.Rate {
	rate, err := shipping.NewRate(kernel.NewUUID(), shipping.RateParams{
		Carrier:          c,
		LocationName:     location,
		Price:            kernel.MustMoney(350),
		IsCarrierDefault: true,
	}, suite.created.Add(offset))
	suite.Require().NoError(err)
	return rate
}

func TestRateRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RateRepositoryIntegrationTestSuite))
}
