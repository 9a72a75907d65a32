package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRate(t *testing.T, params shipping.RateParams) *shipping.Rate {
	t.Helper()
	r, err := shipping.NewRate(kernel.NewUUID(), params, time.Now())
	require.NoError(t, err)
	return r
}

func TestShippingRateResolver_Resolve(t *testing.T) {
	nairobiG4S := newRate(t, shipping.RateParams{
		Carrier: shipping.CarrierG4S, LocationName: "Nairobi", RegionCode: "NBO", Price: kernel.MustMoney(300),
	})
	mombasaG4S := newRate(t, shipping.RateParams{
		Carrier: shipping.CarrierG4S, LocationName: "Mombasa", Price: kernel.MustMoney(600), IsCarrierDefault: true,
	})
	nairobiFargo := newRate(t, shipping.RateParams{
		Carrier: shipping.CarrierFargoCourier, LocationName: "Nairobi CBD", Price: kernel.MustMoney(250),
	})
	globalDefault := newRate(t, shipping.RateParams{
		Carrier: shipping.CarrierInHouse, LocationName: "Anywhere", Price: kernel.MustMoney(800), IsGlobalDefault: true,
	})
	table := []*shipping.Rate{nairobiG4S, mombasaG4S, nairobiFargo, globalDefault}
	resolver := services.NewShippingRateResolver()

	tests := []struct {
		name       string
		rates      []*shipping.Rate
		carrier    shipping.Carrier
		location   string
		wantRate   *shipping.Rate
		wantPrice  int64
		wantSource services.ResolutionSource
	}{
		{
			name: "location match within carrier", rates: table, carrier: shipping.CarrierG4S, location: "nairobi",
			wantRate: nairobiG4S, wantPrice: 300, wantSource: services.SourceLocationMatch,
		},
		{
			name: "stored name contained in location", rates: table, carrier: shipping.CarrierG4S, location: "Nairobi, Kilimani",
			wantRate: nairobiG4S, wantPrice: 300, wantSource: services.SourceLocationMatch,
		},
		{
			name: "region code match", rates: table, carrier: shipping.CarrierG4S, location: "nbo",
			wantRate: nairobiG4S, wantPrice: 300, wantSource: services.SourceLocationMatch,
		},
		{
			name: "carrier filter picks that carrier's rate", rates: table, carrier: shipping.CarrierFargoCourier, location: "Nairobi",
			wantRate: nairobiFargo, wantPrice: 250, wantSource: services.SourceLocationMatch,
		},
		{
			name: "no carrier takes first match in table order", rates: table, location: "Nairobi",
			wantRate: nairobiG4S, wantPrice: 300, wantSource: services.SourceLocationMatch,
		},
		{
			name: "unmatched location falls back to carrier default", rates: table, carrier: shipping.CarrierG4S, location: "Kisumu",
			wantRate: mombasaG4S, wantPrice: 600, wantSource: services.SourceCarrierDefault,
		},
		{
			name: "no carrier default falls back to global default", rates: table, carrier: shipping.CarrierFargoCourier, location: "Kisumu",
			wantRate: globalDefault, wantPrice: 800, wantSource: services.SourceGlobalDefault,
		},
		{
			name: "no carrier skips carrier defaults", rates: table, location: "Kisumu",
			wantRate: globalDefault, wantPrice: 800, wantSource: services.SourceGlobalDefault,
		},
		{
			name: "blank location goes straight to defaults", rates: table, carrier: shipping.CarrierG4S, location: "  ",
			wantRate: mombasaG4S, wantPrice: 600, wantSource: services.SourceCarrierDefault,
		},
		{
			name: "no defaults at all gives zero", rates: []*shipping.Rate{nairobiG4S, nairobiFargo}, carrier: shipping.CarrierG4S, location: "Kisumu",
			wantPrice: 0, wantSource: services.SourceNone,
		},
		{
			name: "empty table gives zero", location: "Nairobi",
			wantPrice: 0, wantSource: services.SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.rates, tt.carrier, tt.location)

			assert.Equal(t, tt.wantSource, got.Source)
			assert.Same(t, tt.wantRate, got.Rate)
			assert.True(t, got.Price.IsEqual(kernel.MustMoney(tt.wantPrice)), "price %s", got.Price)
		})
	}
}

func TestShippingRateResolver_IsDeterministic(t *testing.T) {
	table := []*shipping.Rate{
		newRate(t, shipping.RateParams{Carrier: shipping.CarrierG4S, LocationName: "Westlands", Price: kernel.MustMoney(200)}),
		newRate(t, shipping.RateParams{Carrier: shipping.CarrierG4S, LocationName: "Westlands Mall", Price: kernel.MustMoney(350)}),
	}
	resolver := services.NewShippingRateResolver()

	first := resolver.Resolve(table, shipping.CarrierG4S, "westlands")
	for range 10 {
		again := resolver.Resolve(table, shipping.CarrierG4S, "westlands")
		assert.Same(t, first.Rate, again.Rate)
		assert.True(t, first.Price.IsEqual(again.Price))
	}
	assert.Same(t, table[0], first.Rate)
}
