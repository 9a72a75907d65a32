package raterepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateRepository implements ports.ShippingRateRepository using GORM.
type GormRateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRateRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRepository {
	return &GormRateRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRateRepository) Add(ctx context.Context, rate *shipping.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rate.ID(), rate)
	return nil
}

func (r *GormRateRepository) Update(ctx context.Context, rate *shipping.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rate)
	result := r.db.WithContext(ctx).
		Model(&RateDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"carrier":                dto.Carrier,
			"location_name":          dto.LocationName,
			"region_code":            dto.RegionCode,
			"price":                  dto.Price,
			"is_carrier_default":     dto.IsCarrierDefault,
			"is_global_default":      dto.IsGlobalDefault,
			"allow_cash_on_delivery": dto.AllowCashOnDelivery,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shippingRate", rate.ID().String())
	}

	r.tracker.TrackAggregate(rate.ID(), rate)
	return nil
}

func (r *GormRateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RateDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shippingRate", id.String())
	}
	return nil
}

func (r *GormRateRepository) Get(ctx context.Context, id kernel.UUID) (*shipping.Rate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingRate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the whole table ordered by creation time, then id. The resolver's
// "first match" rules depend on this order.
func (r *GormRateRepository) List(ctx context.Context) ([]*shipping.Rate, error) {
	var dtos []RateDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rates := make([]*shipping.Rate, 0, len(dtos))
	for _, dto := range dtos {
		rate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

func (r *GormRateRepository) ClearCarrierDefault(ctx context.Context, carrier shipping.Carrier, keep kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&RateDTO{}).
		Where("carrier = ? AND id <> ? AND is_carrier_default", string(carrier), keep.Bytes()).
		Update("is_carrier_default", false).Error
}

func (r *GormRateRepository) ClearGlobalDefault(ctx context.Context, keep kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&RateDTO{}).
		Where("id <> ? AND is_global_default", keep.Bytes()).
		Update("is_global_default", false).Error
}
