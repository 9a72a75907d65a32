// Package raterepo persists the shipping rate table.
package raterepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Carrier             string          `gorm:"type:varchar(32);not null;index"`
	LocationName        string          `gorm:"type:varchar(255);not null"`
	RegionCode          string          `gorm:"type:varchar(64)"`
	Price               decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsCarrierDefault    bool            `gorm:"not null;default:false"`
	IsGlobalDefault     bool            `gorm:"not null;default:false"`
	AllowCashOnDelivery bool            `gorm:"not null;default:false"`
	CreatedAt           time.Time       `gorm:"not null;index;autoCreateTime:false"`
}

func (RateDTO) TableName() string {
	return "shipping_rates"
}

func fromDomain(r *shipping.Rate) RateDTO {
	return RateDTO{
		ID:                  r.ID().Bytes(),
		Carrier:             string(r.Carrier()),
		LocationName:        r.LocationName(),
		RegionCode:          r.RegionCode(),
		Price:               r.Price().Decimal(),
		IsCarrierDefault:    r.IsCarrierDefault(),
		IsGlobalDefault:     r.IsGlobalDefault(),
		AllowCashOnDelivery: r.AllowCashOnDelivery(),
		CreatedAt:           r.CreatedAt(),
	}
}

func toDomain(dto RateDTO) (*shipping.Rate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return shipping.RestoreRate(id, shipping.RateParams{
		Carrier:             shipping.Carrier(dto.Carrier),
		LocationName:        dto.LocationName,
		RegionCode:          dto.RegionCode,
		Price:               price,
		IsCarrierDefault:    dto.IsCarrierDefault,
		IsGlobalDefault:     dto.IsGlobalDefault,
		AllowCashOnDelivery: dto.AllowCashOnDelivery,
	}, dto.CreatedAt.UTC())
}
