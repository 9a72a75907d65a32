package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	SetTrackingStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetTrackingStatusCommand) (*order.Order, error)
	}
	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
	}
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Cart, error)
	}
	EditCartHandler interface {
		HandleUpdate(ctx context.Context, cmd commands.UpdateCartItemCommand) (*cart.Cart, error)
		HandleRemove(ctx context.Context, cmd commands.RemoveCartItemCommand) (*cart.Cart, error)
		HandleClear(ctx context.Context, cmd commands.ClearCartCommand) (*cart.Cart, error)
	}
	ShippingRateHandler interface {
		HandleSave(ctx context.Context, cmd commands.SaveShippingRateCommand) (*shipping.Rate, error)
		HandleDelete(ctx context.Context, cmd commands.DeleteShippingRateCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	GetQuotationHandler interface {
		Handle(ctx context.Context, query queries.GetQuotationQuery) (queries.QuotationFile, error)
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (*cart.Cart, error)
	}
	ListShippingRatesHandler interface {
		Handle(ctx context.Context, query queries.ListShippingRatesQuery) ([]queries.ShippingRateView, error)
		HandlePublic(ctx context.Context, query queries.ListShippingRatesQuery) ([]queries.PublicShippingRate, error)
	}
)

// Handlers groups the use cases the HTTP server exposes.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	SetTrackingStatus SetTrackingStatusHandler
	ConfirmPayment    ConfirmPaymentHandler
	AddCartItem       AddCartItemHandler
	EditCart          EditCartHandler
	ShippingRates     ShippingRateHandler

	ListOrders        ListOrdersHandler
	GetOrder          GetOrderHandler
	GetQuotation      GetQuotationHandler
	GetCart           GetCartHandler
	ListShippingRates ListShippingRatesHandler
}
