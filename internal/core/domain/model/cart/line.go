package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// Line is one product or package in the cart.
type Line struct {
	id        kernel.UUID
	ref       catalog.Ref
	quantity  int
	unitPrice kernel.Money
}

func NewLine(id kernel.UUID, ref catalog.Ref, quantity int, unitPrice kernel.Money) (Line, error) {
	l := Line{}
	if err := errors.Join(
		l.setID(id),
		l.setRef(ref),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}
	l.unitPrice = unitPrice
	return l, nil
}

func (l Line) ID() kernel.UUID                 { return l.id }
func (l Line) Ref() catalog.Ref                { return l.ref }
func (l Line) Quantity() int                   { return l.quantity }
func (l Line) UnitPriceSnapshot() kernel.Money { return l.unitPrice }

func (l Line) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setRef(ref catalog.Ref) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	l.ref = ref
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	l.quantity = quantity
	return nil
}
