// Package services holds the stateless domain services of the fulfillment core.
//
// The package includes:
//   - ShippingRateResolver: prices a shipment from the rate table with tiered fallback
//   - CartMaterializer: re-prices requested lines from the catalog and derives free shipping
//
// Both are pure: callers load rates and catalog entries through the ports and pass
// them in, so the services never perform I/O.
package services
