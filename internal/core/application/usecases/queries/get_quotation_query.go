package queries

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"go.uber.org/zap"
)

var ErrGetQuotationQueryIsNotConstructed = errors.New(
	"GetQuotationQuery must be created via NewGetQuotationQuery constructor",
)

// GetQuotationQuery renders the quotation PDF of an order.
type GetQuotationQuery struct {
	viewer  Viewer
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetQuotationQuery(viewer Viewer, orderID kernel.UUID) (GetQuotationQuery, error) {
	if err := errors.Join(viewer.Validate(), orderID.Validate()); err != nil {
		return GetQuotationQuery{}, err
	}
	return GetQuotationQuery{viewer: viewer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQuotationQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotationQueryIsNotConstructed)
}

// QuotationFile is a rendered quotation ready to be served.
type QuotationFile struct {
	Filename string
	Data     []byte
}

// QuotationSettings identify the seller on the document.
type QuotationSettings struct {
	Issuer quotation.Issuer
	Payee  quotation.Payee
}

type GetQuotationQueryHandler struct {
	orders    ports.OrderRepository
	customers ports.CustomerDirectory
	renderer  ports.QuotationRenderer
	settings  QuotationSettings
	logger    *zap.Logger
}

func NewGetQuotationQueryHandler(
	orders ports.OrderRepository,
	customers ports.CustomerDirectory,
	renderer ports.QuotationRenderer,
	settings QuotationSettings,
	logger *zap.Logger,
) GetQuotationQueryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return GetQuotationQueryHandler{
		orders:    orders,
		customers: customers,
		renderer:  renderer,
		settings:  settings,
		logger:    logger.With(zap.String("component", "get_quotation")),
	}
}

func (h GetQuotationQueryHandler) Handle(ctx context.Context, query GetQuotationQuery) (QuotationFile, error) {
	if err := query.Validate(); err != nil {
		return QuotationFile{}, err
	}

	o, err := loadVisibleOrder(ctx, h.orders, query.viewer, query.orderID)
	if err != nil {
		return QuotationFile{}, err
	}

	customer := LookupQuotationCustomer(ctx, h.customers, o.CustomerID(), h.logger)

	doc, err := quotation.Build(o, customer, h.settings.Issuer, h.settings.Payee)
	if err != nil {
		return QuotationFile{}, err
	}

	data, err := h.renderer.Render(doc)
	if err != nil {
		return QuotationFile{}, fmt.Errorf("render quotation %s: %w", doc.Number, err)
	}

	return QuotationFile{Filename: doc.Number + ".pdf", Data: data}, nil
}

// LookupQuotationCustomer fetches the customer block of a quotation. A missing
// customer record is not an error: the document falls back to the shipping address.
func LookupQuotationCustomer(
	ctx context.Context,
	customers ports.CustomerDirectory,
	customerID kernel.UUID,
	logger *zap.Logger,
) quotation.Customer {
	contact, err := customers.GetContact(ctx, customerID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			logger.Warn("customer lookup failed", zap.String("customer_id", customerID.String()), zap.Error(err))
		}
		return quotation.Customer{}
	}
	return quotation.Customer{Name: contact.Name, Email: contact.Email, Phone: contact.Phone}
}
