package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListShippingRatesQueryIsNotConstructed = errors.New(
	"ListShippingRatesQuery must be created via NewListShippingRatesQuery constructor",
)

type ListShippingRatesQuery struct {
	guard guard.ConstructorGuard
}

func NewListShippingRatesQuery() ListShippingRatesQuery {
	return ListShippingRatesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListShippingRatesQuery) Validate() error {
	return q.guard.Validate(ErrListShippingRatesQueryIsNotConstructed)
}

// ShippingRateView is the administrator's view of a rate.
type ShippingRateView struct {
	ID                  kernel.UUID
	Carrier             shipping.Carrier
	LocationName        string
	RegionCode          string
	Price               kernel.Money
	IsCarrierDefault    bool
	IsGlobalDefault     bool
	AllowCashOnDelivery bool
	CreatedAt           time.Time
}

// PublicShippingRate is what storefront visitors see at checkout.
type PublicShippingRate struct {
	Carrier             shipping.Carrier
	CarrierName         string
	Location            string
	Price               kernel.Money
	IsDefault           bool
	AllowCashOnDelivery bool
}

// ListShippingRatesQueryHandler reads the rate table in table order.
type ListShippingRatesQueryHandler struct {
	db *gorm.DB
}

func NewListShippingRatesQueryHandler(db *gorm.DB) ListShippingRatesQueryHandler {
	return ListShippingRatesQueryHandler{db: db}
}

func (h ListShippingRatesQueryHandler) Handle(ctx context.Context, query ListShippingRatesQuery) ([]ShippingRateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rates := make([]ShippingRateView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier,
			location_name,
			region_code,
			price,
			is_carrier_default,
			is_global_default,
			allow_cash_on_delivery,
			created_at
		FROM shipping_rates
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view       ShippingRateView
			id         uuid.UUID
			carrier    string
			regionCode *string
			price      decimal.Decimal
			createdAt  time.Time
		)

		err = rows.Scan(
			&id,
			&carrier,
			&view.LocationName,
			&regionCode,
			&price,
			&view.IsCarrierDefault,
			&view.IsGlobalDefault,
			&view.AllowCashOnDelivery,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		if regionCode != nil {
			view.RegionCode = *regionCode
		}
		view.Carrier = shipping.Carrier(carrier)
		view.CreatedAt = createdAt.UTC()

		rates = append(rates, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rates, nil
}

// HandlePublic projects the rate table for unauthenticated visitors.
func (h ListShippingRatesQueryHandler) HandlePublic(ctx context.Context, query ListShippingRatesQuery) ([]PublicShippingRate, error) {
	rates, err := h.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	public := make([]PublicShippingRate, 0, len(rates))
	for _, r := range rates {
		public = append(public, PublicShippingRate{
			Carrier:             r.Carrier,
			CarrierName:         r.Carrier.DisplayName(),
			Location:            r.LocationName,
			Price:               r.Price,
			IsDefault:           r.IsCarrierDefault || r.IsGlobalDefault,
			AllowCashOnDelivery: r.AllowCashOnDelivery,
		})
	}
	return public, nil
}
