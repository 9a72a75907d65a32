package cart

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the aggregate root holding a customer's pending purchase.
//
// Invariants:
//   - exactly one cart per customer
//   - subtotal equals the sum of unit price snapshot times quantity over all lines
//   - a catalog reference appears on at most one line
type Cart struct {
	id            kernel.UUID
	customerID    kernel.UUID
	lines         []Line
	subtotal      kernel.Money
	isConstructed bool
}

// NewCart creates an empty cart for the customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{subtotal: kernel.Zero, isConstructed: true}
	if err := errors.Join(c.setID(id), c.setCustomerID(customerID)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCart rebuilds a cart from persistence.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}
	c.lines = slices.Clone(lines)
	c.recalculate()
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID         { return c.id }
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }
func (c *Cart) Subtotal() kernel.Money  { return c.subtotal }
func (c *Cart) IsEmpty() bool           { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Add puts quantity units of the catalog entry into the cart. Adding an entry
// that is already present increases its quantity and refreshes its price snapshot.
func (c *Cart) Add(entry catalog.Entry, quantity int) (Line, error) {
	if quantity < MinQuantity {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}

	if i := c.indexOfRef(entry.Ref); i >= 0 {
		updated, err := NewLine(c.lines[i].id, entry.Ref, c.lines[i].quantity+quantity, entry.Price)
		if err != nil {
			return Line{}, err
		}
		c.lines[i] = updated
		c.recalculate()
		return updated, nil
	}

	line, err := NewLine(kernel.NewUUID(), entry.Ref, quantity, entry.Price)
	if err != nil {
		return Line{}, err
	}
	c.lines = append(c.lines, line)
	c.recalculate()
	return line, nil
}

// UpdateQuantity sets the quantity of an existing line.
func (c *Cart) UpdateQuantity(lineID kernel.UUID, quantity int) error {
	i := c.indexOfLine(lineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cartItem", lineID.String())
	}
	if err := c.lines[i].setQuantity(quantity); err != nil {
		return err
	}
	c.recalculate()
	return nil
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(lineID kernel.UUID) error {
	i := c.indexOfLine(lineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cartItem", lineID.String())
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	c.recalculate()
	return nil
}

// Clear empties the cart. The cart itself survives.
func (c *Cart) Clear() {
	c.lines = nil
	c.recalculate()
}

func (c *Cart) recalculate() {
	subtotal := kernel.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Total())
	}
	c.subtotal = subtotal
}

func (c *Cart) indexOfLine(id kernel.UUID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.id.IsEqual(id) })
}

func (c *Cart) indexOfRef(ref catalog.Ref) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ref.IsEqual(ref) })
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}
