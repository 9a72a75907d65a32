// Package cartrepo maps the cart aggregate onto the carts and cart_lines tables.
package cartrepo

import (
	"slices"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is a row of the carts table; there is at most one per customer.
type CartDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Lines      []LineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type LineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	RefKind   string          `gorm:"type:varchar(16);not null"`
	RefID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (LineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) CartDTO {
	cartID := c.ID().Bytes()
	lines := make([]LineDTO, 0, len(c.Lines()))
	for i, l := range c.Lines() {
		lines = append(lines, LineDTO{
			ID:        l.ID().Bytes(),
			CartID:    cartID,
			Position:  i,
			RefKind:   string(l.Ref().Kind),
			RefID:     l.Ref().ID.Bytes(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPriceSnapshot().Decimal(),
		})
	}

	return CartDTO{
		ID:         cartID,
		CustomerID: c.CustomerID().Bytes(),
		Lines:      lines,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	rows := slices.Clone(dto.Lines)
	slices.SortFunc(rows, func(a, b LineDTO) int { return a.Position - b.Position })

	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		line, lineErr := lineToDomain(row)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, customerID, lines)
}

func lineToDomain(dto LineDTO) (cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.Line{}, err
	}
	refID, err := kernel.UUIDFromBytes(dto.RefID[:])
	if err != nil {
		return cart.Line{}, err
	}
	ref, err := catalog.NewRef(catalog.Kind(dto.RefKind), refID)
	if err != nil {
		return cart.Line{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(id, ref, dto.Quantity, unitPrice)
}
