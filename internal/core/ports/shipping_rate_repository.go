package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// ShippingRateRepository persists the administrator-maintained rate table.
type ShippingRateRepository interface {
	Add(ctx context.Context, rate *shipping.Rate) error
	Update(ctx context.Context, rate *shipping.Rate) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*shipping.Rate, error)

	// List returns every rate in table order (creation time, then id).
	List(ctx context.Context) ([]*shipping.Rate, error)

	// ClearCarrierDefault unsets the carrier default flag on every rate of
	// carrier except keep.
	ClearCarrierDefault(ctx context.Context, carrier shipping.Carrier, keep kernel.UUID) error

	// ClearGlobalDefault unsets the global default flag on every rate except keep.
	ClearGlobalDefault(ctx context.Context, keep kernel.UUID) error
}
