package commands

import (
	"errors"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for a customer, either from the customer's
// cart or from an explicit list of lines that overrides it.
//
// Example:
//
//	address, _ := order.NewShippingAddress("Wanjiru", "0712345678", "Nairobi", "Nairobi County", "Moi Avenue 12")
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    CustomerID:       customerID,
//	    ShippingAddress:  address,
//	    ShippingLocation: "Nairobi",
//	    ShippingCarrier:  shipping.CarrierG4S,
//	    PaymentMethod:    order.PaymentMpesa,
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	shippingAddress  order.ShippingAddress
	shippingLocation string
	shippingCarrier  shipping.Carrier
	paymentMethod    order.PaymentMethod
	lines            []services.LineRequest
	proofOfPayment   string

	guard guard.ConstructorGuard
}

// CreateOrderParams are the raw inputs of CreateOrderCommand.
// Lines is optional; when empty the customer's cart is used.
type CreateOrderParams struct {
	CustomerID       kernel.UUID
	ShippingAddress  order.ShippingAddress
	ShippingLocation string
	ShippingCarrier  shipping.Carrier
	PaymentMethod    order.PaymentMethod
	Lines            []services.LineRequest
	ProofOfPayment   string
}

func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		shippingLocation: strings.TrimSpace(p.ShippingLocation),
		proofOfPayment:   strings.TrimSpace(p.ProofOfPayment),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(p.CustomerID),
		cmd.setShippingAddress(p.ShippingAddress),
		cmd.setShippingCarrier(p.ShippingCarrier),
		cmd.setPaymentMethod(p.PaymentMethod),
		cmd.setLines(p.Lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID                { return c.customerID }
func (c CreateOrderCommand) ShippingAddress() order.ShippingAddress { return c.shippingAddress }
func (c CreateOrderCommand) ShippingLocation() string               { return c.shippingLocation }
func (c CreateOrderCommand) ShippingCarrier() shipping.Carrier      { return c.shippingCarrier }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod     { return c.paymentMethod }
func (c CreateOrderCommand) ProofOfPayment() string                 { return c.proofOfPayment }
func (c CreateOrderCommand) Lines() []services.LineRequest          { return slices.Clone(c.lines) }

// HasOverride reports whether explicit lines replace the cart.
func (c CreateOrderCommand) HasOverride() bool {
	return len(c.lines) > 0
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(a order.ShippingAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.shippingAddress = a
	return nil
}

func (c *CreateOrderCommand) setShippingCarrier(carrier shipping.Carrier) error {
	if carrier == "" {
		return nil
	}
	if err := carrier.Validate(); err != nil {
		return err
	}
	c.shippingCarrier = carrier
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	for _, l := range lines {
		if err := l.Ref.Validate(); err != nil {
			return err
		}
		if l.Quantity < cart.MinQuantity || l.Quantity > cart.MaxQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, cart.MinQuantity, cart.MaxQuantity)
		}
	}
	c.lines = slices.Clone(lines)
	return nil
}
