package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Line is an owned snapshot of a purchased product or package.
type Line struct {
	ref       catalog.Ref
	name      string
	quantity  int
	unitPrice kernel.Money
}

func NewLine(ref catalog.Ref, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	name = strings.TrimSpace(name)

	var nameErr, quantityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidError("quantity")
	}
	if err := errors.Join(ref.Validate(), nameErr, quantityErr); err != nil {
		return Line{}, err
	}

	return Line{ref: ref, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) Ref() catalog.Ref        { return l.ref }
func (l Line) Name() string            { return l.name }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l Line) Total() kernel.Money     { return l.unitPrice.Times(l.quantity) }
