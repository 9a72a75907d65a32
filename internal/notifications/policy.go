package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/application/links"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/logging"

	"go.uber.org/zap"
)

// PhoneSettings drive phone number normalization.
type PhoneSettings struct {
	CountryCode    string
	NationalLength int
}

type PolicyDeps struct {
	SMS       ports.SMSSender
	Email     ports.EmailSender
	Renderer  ports.QuotationRenderer
	Customers ports.CustomerDirectory
	Links     links.Builder
	Issuer    quotation.Issuer
	Payee     quotation.Payee
	Phone     PhoneSettings
}

// Policy decides which messages an order event earns and sends them.
type Policy struct {
	deps   PolicyDeps
	logger *zap.Logger
}

func NewPolicy(deps PolicyDeps, logger *zap.Logger) (*Policy, error) {
	if deps.SMS == nil {
		return nil, errs.NewValueIsRequiredError("sms")
	}
	if deps.Email == nil {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if deps.Renderer == nil {
		return nil, errs.NewValueIsRequiredError("renderer")
	}
	if deps.Customers == nil {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	if deps.Phone.CountryCode == "" {
		deps.Phone.CountryCode = kernel.DefaultCountryCode
	}
	if deps.Phone.NationalLength <= 0 {
		deps.Phone.NationalLength = kernel.DefaultNationalLength
	}
	if deps.Issuer.Currency == "" {
		deps.Issuer.Currency = "KES"
	}
	return &Policy{deps: deps, logger: logging.Component(logger, "notification_policy")}, nil
}

// Handle sends every message the event earns. Failures of independent
// messages do not stop each other and are returned joined.
func (p *Policy) Handle(ctx context.Context, event order.Event) error {
	if err := event.Order.Validate(); err != nil {
		return err
	}

	switch event.Type {
	case order.OrderCreated:
		return p.orderCreated(ctx, event.Order)
	case order.TrackingEnteredProcessing:
		reference := quotation.Number(event.Order.ID())
		return p.sendSMS(ctx, event.Order, "", processingSMS(event.Order, reference, p.deps.Links.Tracking(event.Order.ID())))
	case order.TrackingEnteredDelivered:
		reference := quotation.Number(event.Order.ID())
		return p.sendSMS(ctx, event.Order, "", deliveredSMS(event.Order, reference))
	default:
		return fmt.Errorf("unsupported event type %d", event.Type)
	}
}

func (p *Policy) orderCreated(ctx context.Context, o *order.Order) error {
	customer := p.lookupCustomer(ctx, o.CustomerID())
	reference := quotation.Number(o.ID())
	quotationURL := p.deps.Links.Quotation(o.ID())

	emailErr := p.emailQuotation(ctx, o, customer, quotationURL)
	smsErr := p.sendSMS(ctx, o, customer.Phone,
		orderConfirmationSMS(o, reference, p.deps.Issuer.Currency, quotationURL))

	return errors.Join(emailErr, smsErr)
}

func (p *Policy) emailQuotation(ctx context.Context, o *order.Order, customer quotation.Customer, quotationURL string) error {
	to := strings.TrimSpace(customer.Email)
	if to == "" {
		p.logger.Info("no customer email, quotation email skipped", zap.String("order_id", o.ID().String()))
		return nil
	}

	doc, err := quotation.Build(o, customer, p.deps.Issuer, p.deps.Payee)
	if err != nil {
		return fmt.Errorf("build quotation: %w", err)
	}
	pdf, err := p.deps.Renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render quotation %s: %w", doc.Number, err)
	}

	err = p.deps.Email.Send(ctx, ports.Email{
		To:      to,
		Subject: quotationEmailSubject(p.deps.Issuer.Name, doc.Number),
		Body:    quotationEmailBody(o, doc.Number, p.deps.Issuer.Currency, quotationURL),
		Attachments: []ports.Attachment{{
			Filename:    doc.Number + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	})
	if err != nil {
		return fmt.Errorf("email quotation %s: %w", doc.Number, err)
	}
	return nil
}

// sendSMS texts the shipping address phone, or fallback when that one is unusable.
// An order with no usable phone at all is logged and skipped.
func (p *Policy) sendSMS(ctx context.Context, o *order.Order, fallback string, message string) error {
	to, err := p.recipient(o.ShippingAddress().Phone, fallback)
	if err != nil {
		p.logger.Warn("no phone number, sms skipped", zap.String("order_id", o.ID().String()), zap.Error(err))
		return nil
	}
	if err := p.deps.SMS.Send(ctx, to, message); err != nil {
		return fmt.Errorf("sms to %s: %w", to, err)
	}
	return nil
}

func (p *Policy) recipient(candidates ...string) (string, error) {
	var err error = kernel.ErrPhoneIsRequired
	for _, raw := range candidates {
		var phone string
		phone, err = kernel.NormalizePhone(raw, p.deps.Phone.CountryCode, p.deps.Phone.NationalLength)
		if err == nil {
			return phone, nil
		}
	}
	return "", err
}

func (p *Policy) lookupCustomer(ctx context.Context, customerID kernel.UUID) quotation.Customer {
	contact, err := p.deps.Customers.GetContact(ctx, customerID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			p.logger.Warn("customer lookup failed", zap.String("customer_id", customerID.String()), zap.Error(err))
		}
		return quotation.Customer{}
	}
	return quotation.Customer{Name: contact.Name, Email: contact.Email, Phone: contact.Phone}
}
