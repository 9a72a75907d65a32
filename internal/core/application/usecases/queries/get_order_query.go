package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of a viewer.
type GetOrderQuery struct {
	viewer  Viewer
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(viewer Viewer, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(viewer.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{viewer: viewer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Viewer() Viewer       { return q.viewer }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryHandler returns the full order. A customer asking for someone
// else's order gets errs.AccessDeniedError, not a not-found.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadVisibleOrder(ctx, h.orders, query.Viewer(), query.OrderID())
}

func loadVisibleOrder(ctx context.Context, repo ports.OrderRepository, viewer Viewer, id kernel.UUID) (*order.Order, error) {
	o, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.CanSee(o.CustomerID()) {
		return nil, errs.NewAccessDeniedError("order", id.String())
	}
	return o, nil
}
