package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// SetTrackingStatusCommandHandler writes a tracking status and, once the write is
// committed, publishes the edge events it earned. Writing the current status
// again publishes nothing.
type SetTrackingStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

func NewSetTrackingStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) SetTrackingStatusCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return SetTrackingStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With(zap.String("component", "set_tracking_status")),
	}
}

func (h SetTrackingStatusCommandHandler) Handle(ctx context.Context, cmd SetTrackingStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	transition, err := o.SetTrackingStatus(cmd.Status(), now)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("tracking status written",
		zap.String("order_id", o.ID().String()),
		zap.Stringer("from", transition.From),
		zap.Stringer("to", transition.To))

	for _, eventType := range transition.Events() {
		h.publisher.Publish(order.NewEvent(eventType, o, now))
	}

	return o, nil
}
