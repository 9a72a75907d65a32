// Package shipping models carriers and the administrator-maintained rate table
// used to price delivery.
package shipping

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Carrier is a delivery provider. The set is closed.
type Carrier string

const (
	CarrierG4S          Carrier = "g4s"
	CarrierFargoCourier Carrier = "fargo_courier"
	CarrierPickupMtaani Carrier = "pickup_mtaani"
	CarrierInHouse      Carrier = "in_house"
)

// Carriers lists every supported carrier in display order.
func Carriers() []Carrier {
	return []Carrier{CarrierG4S, CarrierFargoCourier, CarrierPickupMtaani, CarrierInHouse}
}

// ParseCarrier accepts the wire form case-insensitively.
func ParseCarrier(s string) (Carrier, error) {
	c := Carrier(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Carrier) Validate() error {
	switch c {
	case CarrierG4S, CarrierFargoCourier, CarrierPickupMtaani, CarrierInHouse:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%q is not a supported carrier", string(c)))
	}
}

func (c Carrier) String() string {
	return string(c)
}

// DisplayName is the name used in customer-facing messages.
func (c Carrier) DisplayName() string {
	switch c {
	case CarrierG4S:
		return "G4S"
	case CarrierFargoCourier:
		return "Fargo Courier"
	case CarrierPickupMtaani:
		return "Pickup Mtaani"
	case CarrierInHouse:
		return "In-house delivery"
	default:
		return string(c)
	}
}
