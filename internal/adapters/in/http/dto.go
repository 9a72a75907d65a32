package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
)

// Requests.

type ShippingAddressRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Region      string `json:"region"`
	AddressLine string `json:"addressLine"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderPackageRequest struct {
	PackageID string `json:"packageId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	ShippingAddress  ShippingAddressRequest `json:"shippingAddress"`
	ShippingLocation string                 `json:"shippingLocation"`
	ShippingCarrier  string                 `json:"shippingCarrier"`
	PaymentMethod    string                 `json:"paymentMethod"`
	Items            []OrderItemRequest     `json:"items"`
	Packages         []OrderPackageRequest  `json:"packages"`
	ProofOfPayment   string                 `json:"proofOfPayment"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type AddCartItemRequest struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ShippingRateRequest struct {
	Carrier             string `json:"carrier"`
	LocationName        string `json:"locationName"`
	RegionCode          string `json:"regionCode"`
	Price               string `json:"price"`
	IsCarrierDefault    bool   `json:"isCarrierDefault"`
	IsGlobalDefault     bool   `json:"isGlobalDefault"`
	AllowCashOnDelivery bool   `json:"allowCashOnDelivery"`
}

// Responses. Amounts are decimal strings with two places, e.g. "2300.00".

type OrderLineResponse struct {
	Kind      string `json:"kind"`
	RefID     string `json:"refId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

type PaymentResponse struct {
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	PayBillNumber string     `json:"payBillNumber,omitempty"`
	AccountNumber string     `json:"accountNumber,omitempty"`
	ProofImage    string     `json:"proofImage,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type OrderResponse struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customerId"`
	Items            []OrderLineResponse    `json:"items"`
	Packages         []OrderLineResponse    `json:"packages"`
	ShippingAddress  ShippingAddressRequest `json:"shippingAddress"`
	ShippingLocation string                 `json:"shippingLocation"`
	ShippingCarrier  string                 `json:"shippingCarrier,omitempty"`
	ShippingCost     string                 `json:"shippingCost"`
	Subtotal         string                 `json:"subtotal"`
	Total            string                 `json:"total"`
	Payment          PaymentResponse        `json:"payment"`
	Status           string                 `json:"status"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

type CreateOrderResponse struct {
	Order               OrderResponse `json:"order"`
	QuotationLink       string        `json:"quotationLink"`
	PaymentInstructions []string      `json:"paymentInstructions"`
}

type OrderSummaryResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customerId"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	PaymentMethod    string    `json:"paymentMethod"`
	ShippingLocation string    `json:"shippingLocation"`
	ShippingCarrier  string    `json:"shippingCarrier,omitempty"`
	Total            string    `json:"total"`
	CreatedAt        time.Time `json:"createdAt"`
}

type OrderListResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Limit  int                    `json:"limit"`
}

type CartLineResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	RefID     string `json:"refId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customerId"`
	Items      []CartLineResponse `json:"items"`
	Subtotal   string             `json:"subtotal"`
}

type ShippingRateResponse struct {
	ID                  string    `json:"id"`
	Carrier             string    `json:"carrier"`
	CarrierName         string    `json:"carrierName"`
	LocationName        string    `json:"locationName"`
	RegionCode          string    `json:"regionCode,omitempty"`
	Price               string    `json:"price"`
	IsCarrierDefault    bool      `json:"isCarrierDefault"`
	IsGlobalDefault     bool      `json:"isGlobalDefault"`
	AllowCashOnDelivery bool      `json:"allowCashOnDelivery"`
	CreatedAt           time.Time `json:"createdAt"`
}

type PublicShippingRateResponse struct {
	Carrier             string `json:"carrier"`
	CarrierName         string `json:"carrierName"`
	Location            string `json:"location"`
	Price               string `json:"price"`
	IsDefault           bool   `json:"isDefault"`
	AllowCashOnDelivery bool   `json:"allowCashOnDelivery"`
}

func toOrderLines(lines []order.Line) []OrderLineResponse {
	out := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLineResponse{
			Kind:      string(l.Ref().Kind),
			RefID:     l.Ref().ID.String(),
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
			Total:     l.Total().String(),
		})
	}
	return out
}

func toOrderResponse(o *order.Order) OrderResponse {
	address := o.ShippingAddress()
	payment := o.Payment()

	return OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Items:      toOrderLines(o.Items()),
		Packages:   toOrderLines(o.Packages()),
		ShippingAddress: ShippingAddressRequest{
			Name:        address.Name,
			Phone:       address.Phone,
			City:        address.City,
			Region:      address.Region,
			AddressLine: address.AddressLine,
		},
		ShippingLocation: o.ShippingLocation(),
		ShippingCarrier:  string(o.ShippingCarrier()),
		ShippingCost:     o.ShippingCost().String(),
		Subtotal:         o.Subtotal().String(),
		Total:            o.Total().String(),
		Payment: PaymentResponse{
			Method:        string(payment.Method),
			Status:        payment.Status.String(),
			PayBillNumber: payment.PayBillNumber,
			AccountNumber: payment.AccountNumber,
			ProofImage:    payment.ProofImage,
			PaidAt:        payment.PaidAt,
		},
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toOrderListResponse(r queries.ListOrdersQueryResponse) OrderListResponse {
	orders := make([]OrderSummaryResponse, 0, len(r.Orders))
	for _, s := range r.Orders {
		orders = append(orders, OrderSummaryResponse{
			ID:               s.ID.String(),
			CustomerID:       s.CustomerID.String(),
			Status:           s.Status.String(),
			PaymentStatus:    s.PaymentStatus.String(),
			PaymentMethod:    string(s.PaymentMethod),
			ShippingLocation: s.ShippingLocation,
			ShippingCarrier:  s.ShippingCarrier,
			Total:            s.Total.String(),
			CreatedAt:        s.CreatedAt,
		})
	}
	return OrderListResponse{Orders: orders, Total: r.Total, Page: r.Page, Limit: r.Limit}
}

func toCartResponse(c *cart.Cart) CartResponse {
	lines := c.Lines()
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineResponse{
			ID:        l.ID().String(),
			Kind:      string(l.Ref().Kind),
			RefID:     l.Ref().ID.String(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPriceSnapshot().String(),
			Total:     l.Total().String(),
		})
	}
	return CartResponse{
		ID:         c.ID().String(),
		CustomerID: c.CustomerID().String(),
		Items:      items,
		Subtotal:   c.Subtotal().String(),
	}
}

func toRateResponse(r *shipping.Rate) ShippingRateResponse {
	return ShippingRateResponse{
		ID:                  r.ID().String(),
		Carrier:             string(r.Carrier()),
		CarrierName:         r.Carrier().DisplayName(),
		LocationName:        r.LocationName(),
		RegionCode:          r.RegionCode(),
		Price:               r.Price().String(),
		IsCarrierDefault:    r.IsCarrierDefault(),
		IsGlobalDefault:     r.IsGlobalDefault(),
		AllowCashOnDelivery: r.AllowCashOnDelivery(),
		CreatedAt:           r.CreatedAt(),
	}
}

func toRateViewResponse(v queries.ShippingRateView) ShippingRateResponse {
	return ShippingRateResponse{
		ID:                  v.ID.String(),
		Carrier:             string(v.Carrier),
		CarrierName:         v.Carrier.DisplayName(),
		LocationName:        v.LocationName,
		RegionCode:          v.RegionCode,
		Price:               v.Price.String(),
		IsCarrierDefault:    v.IsCarrierDefault,
		IsGlobalDefault:     v.IsGlobalDefault,
		AllowCashOnDelivery: v.AllowCashOnDelivery,
		CreatedAt:           v.CreatedAt,
	}
}

func toPublicRateResponse(p queries.PublicShippingRate) PublicShippingRateResponse {
	return PublicShippingRateResponse{
		Carrier:             string(p.Carrier),
		CarrierName:         p.CarrierName,
		Location:            p.Location,
		Price:               p.Price.String(),
		IsDefault:           p.IsDefault,
		AllowCashOnDelivery: p.AllowCashOnDelivery,
	}
}

func parseMoney(param, s string) (kernel.Money, error) {
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		return kernel.Money{}, badRequest(param, err)
	}
	return m, nil
}
