// Package catalogrepo reads sellable products and packages. The tables are
// owned by the catalog service; this service never writes them.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FreeShipping bool            `gorm:"not null;default:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type PackageDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FreeShipping bool            `gorm:"not null;default:false"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// row is the common shape of both catalog tables.
type row struct {
	ID           uuid.UUID
	Name         string
	Price        decimal.Decimal
	FreeShipping bool
}

func toDomain(kind catalog.Kind, r row) (catalog.Entry, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return catalog.Entry{}, err
	}
	ref, err := catalog.NewRef(kind, id)
	if err != nil {
		return catalog.Entry{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return catalog.Entry{}, err
	}
	return catalog.NewEntry(ref, r.Name, price, r.FreeShipping)
}
