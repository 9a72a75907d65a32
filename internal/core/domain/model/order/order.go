package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNothingToOrder is returned when an order would have no lines.
	ErrNothingToOrder = errs.NewValueIsRequiredErrorWithCause("items", errors.New("order has no purchasable lines"))
)

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - at least one item or package line
//   - subtotal is the sum of line totals and total is subtotal plus shipping cost,
//     both fixed at creation
//   - tracking status and payment status are independent
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	items            []Line
	packages         []Line
	shippingAddress  ShippingAddress
	shippingLocation string
	shippingCarrier  shipping.Carrier
	shippingCost     kernel.Money
	subtotal         kernel.Money
	total            kernel.Money
	payment          Payment
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
	isConstructed    bool
}

// Params carries everything needed to place a new order.
// ShippingCarrier may be empty when the customer did not choose one.
type Params struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Items            []Line
	Packages         []Line
	ShippingAddress  ShippingAddress
	ShippingLocation string
	ShippingCarrier  shipping.Carrier
	ShippingCost     kernel.Money
	Payment          Payment
}

// NewOrder places an order in the (Pending, Pending) state and fixes its totals.
func NewOrder(p Params, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setLines(p.Items, p.Packages),
		o.setShippingAddress(p.ShippingAddress),
		o.setShippingCarrier(p.ShippingCarrier),
		o.setPayment(p.Payment),
	); err != nil {
		return nil, err
	}

	o.shippingLocation = strings.TrimSpace(p.ShippingLocation)
	o.shippingCost = p.ShippingCost
	o.subtotal = sumLines(o.items, o.packages)
	o.total = o.subtotal.Add(o.shippingCost)
	o.payment.Status = PaymentPending
	o.payment.PaidAt = nil

	return o, nil
}

// State is the persisted form of an order used by RestoreOrder.
type State struct {
	Params
	Subtotal  kernel.Money
	Total     kernel.Money
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order from persistence. Stored totals are kept as is.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setLines(s.Items, s.Packages),
		o.setShippingAddress(s.ShippingAddress),
		o.setShippingCarrier(s.ShippingCarrier),
		o.setPayment(s.Payment),
		s.Payment.Status.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.shippingLocation = s.ShippingLocation
	o.shippingCost = s.ShippingCost
	o.subtotal = s.Subtotal
	o.total = s.Total
	o.payment.Status = s.Payment.Status
	o.payment.PaidAt = s.Payment.PaidAt
	o.status = s.Status
	o.createdAt = s.CreatedAt
	o.updatedAt = s.UpdatedAt

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                   { return o.id }
func (o *Order) CustomerID() kernel.UUID           { return o.customerID }
func (o *Order) Items() []Line                     { return slices.Clone(o.items) }
func (o *Order) Packages() []Line                  { return slices.Clone(o.packages) }
func (o *Order) ShippingAddress() ShippingAddress  { return o.shippingAddress }
func (o *Order) ShippingLocation() string          { return o.shippingLocation }
func (o *Order) ShippingCarrier() shipping.Carrier { return o.shippingCarrier }
func (o *Order) ShippingCost() kernel.Money        { return o.shippingCost }
func (o *Order) Subtotal() kernel.Money            { return o.subtotal }
func (o *Order) Total() kernel.Money               { return o.total }
func (o *Order) Payment() Payment                  { return o.payment.clone() }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }

// Lines returns items followed by packages.
func (o *Order) Lines() []Line {
	return slices.Concat(o.items, o.packages)
}

func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// SetTrackingStatus writes any valid tracking status, whatever the current one.
// The returned Transition tells the caller which notifications the write earns.
func (o *Order) SetTrackingStatus(status Status, now time.Time) (Transition, error) {
	if err := status.Validate(); err != nil {
		return Transition{}, err
	}

	t := Transition{From: o.status, To: status}
	o.status = status
	o.updatedAt = now
	return t, nil
}

// ConfirmPayment marks the order paid at now. Confirming a paid order again
// only moves PaidAt forward.
func (o *Order) ConfirmPayment(now time.Time) {
	paidAt := now
	o.payment.Status = PaymentPaid
	o.payment.PaidAt = &paidAt
	o.updatedAt = now
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	c.packages = slices.Clone(o.packages)
	c.payment = o.payment.clone()
	return &c
}

func sumLines(groups ...[]Line) kernel.Money {
	sum := kernel.Zero
	for _, lines := range groups {
		for _, l := range lines {
			sum = sum.Add(l.Total())
		}
	}
	return sum
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setLines(items, packages []Line) error {
	if len(items) == 0 && len(packages) == 0 {
		return ErrNothingToOrder
	}
	o.items = slices.Clone(items)
	o.packages = slices.Clone(packages)
	return nil
}

func (o *Order) setShippingAddress(a ShippingAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}
	o.shippingAddress = a
	return nil
}

func (o *Order) setShippingCarrier(c shipping.Carrier) error {
	if c == "" {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	o.shippingCarrier = c
	return nil
}

func (o *Order) setPayment(p Payment) error {
	if err := p.Method.Validate(); err != nil {
		return err
	}
	o.payment = p.clone()
	return nil
}
