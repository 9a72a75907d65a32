package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders newest first, optionally filtered by
// tracking status. Customers only ever see their own orders.
//
// Example:
//
//	viewer, _ := NewCustomerViewer(customerID)
//	query, err := NewListOrdersQuery(viewer, 1, 20, "processing")
type ListOrdersQuery struct {
	viewer Viewer
	page   int
	limit  int
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery defaults page to 1 and limit to DefaultPageSize when they
// are zero. An empty status means any status.
func NewListOrdersQuery(viewer Viewer, page, limit int, status string) (ListOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageSize
	}

	var pageErr, limitErr, statusErr error
	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > MaxPageSize {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}

	var filter order.Status
	if strings.TrimSpace(status) != "" {
		filter, statusErr = order.ParseStatus(status)
	}

	if err := errors.Join(viewer.Validate(), pageErr, limitErr, statusErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		viewer: viewer,
		page:   page,
		limit:  limit,
		status: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Viewer() Viewer       { return q.viewer }
func (q ListOrdersQuery) Page() int            { return q.page }
func (q ListOrdersQuery) Limit() int           { return q.limit }
func (q ListOrdersQuery) Status() order.Status { return q.status }

func (q ListOrdersQuery) offset() int {
	return (q.page - 1) * q.limit
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Status           order.Status
	PaymentStatus    order.PaymentStatus
	PaymentMethod    order.PaymentMethod
	ShippingLocation string
	ShippingCarrier  string
	Total            kernel.Money
	CreatedAt        time.Time
}

type ListOrdersQueryResponse struct {
	Orders []OrderSummary
	Total  int64
	Page   int
	Limit  int
}
