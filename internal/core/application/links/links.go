// Package links builds the customer-facing URLs embedded in API responses and
// notifications.
package links

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

// Builder joins paths onto the public base URL of the storefront API.
type Builder struct {
	baseURL string
}

// NewBuilder trims trailing slashes from baseURL, e.g. "https://shop.example/api/v1/".
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// Quotation is the download link for an order's quotation PDF.
func (b Builder) Quotation(orderID kernel.UUID) string {
	return b.baseURL + "/orders/" + orderID.String() + "/quotation"
}

// Tracking is the order status page.
func (b Builder) Tracking(orderID kernel.UUID) string {
	return b.baseURL + "/orders/" + orderID.String()
}
