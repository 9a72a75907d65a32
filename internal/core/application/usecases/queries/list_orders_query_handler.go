package queries

import (
	"context"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries straight from the orders table.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	conditions := []string{"1 = 1"}
	args := make([]any, 0, 2)
	if !query.Viewer().IsAdmin {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, query.Viewer().CustomerID.Bytes())
	}
	if query.Status() != order.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, int(query.Status()))
	}
	where := strings.Join(conditions, " AND ")

	resp := ListOrdersQueryResponse{
		Orders: make([]OrderSummary, 0),
		Page:   query.Page(),
		Limit:  query.Limit(),
	}

	db := h.db.WithContext(ctx)
	if err := db.Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).Scan(&resp.Total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			customer_id,
			status,
			payment_status,
			payment_method,
			shipping_location,
			shipping_carrier,
			total,
			created_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, customerID            uuid.UUID
			status, paymentStatus     int
			method, location, carrier string
			total                     decimal.Decimal
			createdAt                 time.Time
		)

		if err = rows.Scan(&id, &customerID, &status, &paymentStatus, &method, &location, &carrier, &total, &createdAt); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		summary, mapErr := toOrderSummary(id, customerID, total)
		if mapErr != nil {
			return ListOrdersQueryResponse{}, mapErr
		}
		summary.Status = order.Status(status)
		summary.PaymentStatus = order.PaymentStatus(paymentStatus)
		summary.PaymentMethod = order.PaymentMethod(method)
		summary.ShippingLocation = location
		summary.ShippingCarrier = carrier
		summary.CreatedAt = createdAt.UTC()

		resp.Orders = append(resp.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return resp, nil
}

func toOrderSummary(id, customerID uuid.UUID, total decimal.Decimal) (OrderSummary, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}
	owner, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	amount, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummary{}, err
	}
	return OrderSummary{ID: orderID, CustomerID: owner, Total: amount}, nil
}
