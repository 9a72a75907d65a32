package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// ResolutionSource tells which fallback tier priced the shipment.
type ResolutionSource int

const (
	SourceNone ResolutionSource = iota
	SourceLocationMatch
	SourceCarrierDefault
	SourceGlobalDefault
	SourceFreeShipping
)

func (s ResolutionSource) String() string {
	switch s {
	case SourceLocationMatch:
		return "location_match"
	case SourceCarrierDefault:
		return "carrier_default"
	case SourceGlobalDefault:
		return "global_default"
	case SourceFreeShipping:
		return "free_shipping"
	default:
		return "none"
	}
}

// Resolution is the outcome of pricing a shipment. Rate is nil when no rate
// applied and the price is zero.
type Resolution struct {
	Price  kernel.Money
	Rate   *shipping.Rate
	Source ResolutionSource
}

// FreeShipping is the resolution used when an order line waives shipping.
func FreeShipping() Resolution {
	return Resolution{Price: kernel.Zero, Source: SourceFreeShipping}
}

// ShippingRateResolver prices a shipment against the rate table.
//
// Tiers, first hit wins:
//  1. when carrier is set, only that carrier's rates are candidates;
//  2. the first candidate whose location name or region code matches the
//     location in either direction, ignoring case;
//  3. when carrier is set, the first candidate marked carrier default;
//  4. the first rate in the whole table marked global default;
//  5. zero.
//
// Rates must be passed in table order. The resolver keeps no state, so the
// same table and inputs always give the same resolution.
type ShippingRateResolver struct{}

func NewShippingRateResolver() ShippingRateResolver {
	return ShippingRateResolver{}
}

// Resolve prices delivery by carrier (may be empty) to location (free text).
func (ShippingRateResolver) Resolve(rates []*shipping.Rate, carrier shipping.Carrier, location string) Resolution {
	candidates := rates
	if carrier != "" {
		candidates = make([]*shipping.Rate, 0, len(rates))
		for _, r := range rates {
			if r.Carrier() == carrier {
				candidates = append(candidates, r)
			}
		}
	}

	if loc, err := kernel.NewLocation(location); err == nil {
		for _, r := range candidates {
			if r.Matches(loc) {
				return Resolution{Price: r.Price(), Rate: r, Source: SourceLocationMatch}
			}
		}
	}

	if carrier != "" {
		for _, r := range candidates {
			if r.IsCarrierDefault() {
				return Resolution{Price: r.Price(), Rate: r, Source: SourceCarrierDefault}
			}
		}
	}

	for _, r := range rates {
		if r.IsGlobalDefault() {
			return Resolution{Price: r.Price(), Rate: r, Source: SourceGlobalDefault}
		}
	}

	return Resolution{Price: kernel.Zero, Source: SourceNone}
}
