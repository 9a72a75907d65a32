package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/application/links"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

var (
	// ErrCartIsEmpty is returned when neither the cart nor an override supplies lines.
	ErrCartIsEmpty = errs.NewValueIsRequiredErrorWithCause("items", errors.New("cart is empty"))

	// ErrCashOnDeliveryNotAllowed is returned when the resolved rate does not accept cash on delivery.
	ErrCashOnDeliveryNotAllowed = errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", errors.New("cash on delivery is not available for this destination"))
)

// CheckoutSettings is the configuration the checkout needs.
type CheckoutSettings struct {
	Payee    quotation.Payee
	Currency string
	Links    links.Builder
}

// CreateOrderResult is what the customer sees right after checkout.
type CreateOrderResult struct {
	Order               *order.Order
	QuotationLink       string
	PaymentInstructions []string
}

// CreateOrderCommandHandler turns a cart or explicit line list into a placed order.
//
// Steps, in order:
//  1. load the requested lines (override or cart) and re-price them from the catalog;
//  2. resolve shipping, forced to zero when any line ships free;
//  3. persist the order in (Pending, Pending) and commit;
//  4. clear the cart in a second, independent write;
//  5. publish OrderCreated without waiting for notifications.
//
// A failure in step 4 is logged and does not fail the order.
type CreateOrderCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	cartFactory  CartUoWFactory
	catalog      ports.CatalogReader
	publisher    ports.EventPublisher
	clock        ports.Clock
	settings     CheckoutSettings
	materializer services.CartMaterializer
	resolver     services.ShippingRateResolver
	logger       *zap.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	cartFactory CartUoWFactory,
	catalog ports.CatalogReader,
	publisher ports.EventPublisher,
	clock ports.Clock,
	settings CheckoutSettings,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		cartFactory:  cartFactory,
		catalog:      catalog,
		publisher:    publisher,
		clock:        clock,
		settings:     settings,
		materializer: services.NewCartMaterializer(),
		resolver:     services.NewShippingRateResolver(),
		logger:       logger.With(zap.String("component", "create_order")),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := cmd.Lines()
	if !cmd.HasOverride() {
		var err error
		if requests, err = h.cartRequests(ctx, uow.CartRepository(), cmd.CustomerID()); err != nil {
			return CreateOrderResult{}, err
		}
	}
	if len(requests) == 0 {
		return CreateOrderResult{}, ErrCartIsEmpty
	}

	entries, err := h.catalog.FindEntries(ctx, services.Refs(requests))
	if err != nil {
		return CreateOrderResult{}, fmt.Errorf("load catalog entries: %w", err)
	}

	materialized, err := h.materializer.Materialize(requests, entries)
	for _, ref := range materialized.Skipped {
		h.logger.Warn("catalog entry no longer exists, line skipped",
			zap.String("customer_id", cmd.CustomerID().String()),
			zap.String("ref", ref.String()))
	}
	if err != nil {
		return CreateOrderResult{}, err
	}

	resolution := services.FreeShipping()
	if !materialized.FreeShipping {
		rates, listErr := uow.ShippingRateRepository().List(ctx)
		if listErr != nil {
			return CreateOrderResult{}, fmt.Errorf("load shipping rates: %w", listErr)
		}
		resolution = h.resolver.Resolve(rates, cmd.ShippingCarrier(), cmd.ShippingLocation())
	}

	if cmd.PaymentMethod() == order.PaymentCashOnDelivery &&
		resolution.Rate != nil && !resolution.Rate.AllowCashOnDelivery() {
		return CreateOrderResult{}, ErrCashOnDeliveryNotAllowed
	}

	payment, err := order.NewPayment(cmd.PaymentMethod(),
		h.settings.Payee.PayBillNumber, h.settings.Payee.AccountNumber, cmd.ProofOfPayment())
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.clock.Now()
	placed, err := order.NewOrder(order.Params{
		ID:               kernel.NewUUID(),
		CustomerID:       cmd.CustomerID(),
		Items:            materialized.Items,
		Packages:         materialized.Packages,
		ShippingAddress:  cmd.ShippingAddress(),
		ShippingLocation: cmd.ShippingLocation(),
		ShippingCarrier:  cmd.ShippingCarrier(),
		ShippingCost:     resolution.Price,
		Payment:          payment,
	}, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.logger.Info("order placed",
		zap.String("order_id", placed.ID().String()),
		zap.String("total", placed.Total().String()),
		zap.String("shipping_source", resolution.Source.String()))

	h.clearCart(ctx, cmd.CustomerID())
	h.publisher.Publish(order.NewEvent(order.OrderCreated, placed, now))

	return CreateOrderResult{
		Order:         placed,
		QuotationLink: h.settings.Links.Quotation(placed.ID()),
		PaymentInstructions: quotation.PaymentInstructions(
			h.settings.Payee, h.settings.Currency, placed.Total(), quotation.Number(placed.ID())),
	}, nil
}

func (h CreateOrderCommandHandler) cartRequests(
	ctx context.Context,
	repo ports.CartRepository,
	customerID kernel.UUID,
) ([]services.LineRequest, error) {
	c, err := repo.GetByCustomer(ctx, customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := c.Lines()
	requests := make([]services.LineRequest, 0, len(lines))
	for _, l := range lines {
		requests = append(requests, services.LineRequest{Ref: l.Ref(), Quantity: l.Quantity()})
	}
	return requests, nil
}

// clearCart empties the customer's cart after checkout. The order is already
// committed, so failures are only logged.
func (h CreateOrderCommandHandler) clearCart(ctx context.Context, customerID kernel.UUID) {
	if err := h.emptyCart(ctx, customerID); err != nil {
		h.logger.Error("failed to clear cart after checkout",
			zap.String("customer_id", customerID.String()),
			zap.Error(err))
	}
}

func (h CreateOrderCommandHandler) emptyCart(ctx context.Context, customerID kernel.UUID) error {
	uow := h.cartFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	c, err := repo.GetByCustomer(ctx, customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return nil
	}

	c.Clear()
	if err = repo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
