package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the tracking (delivery progress) state of an order.
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   └──────────────> Cancelled
//
// The arrows show the usual flow only; any status may be written from any other.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Processing
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// ParseStatus converts the wire form ("processing", "Delivered", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == want {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus records whether funds for the order have been received.
// Once Paid it does not revert.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
)

func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	default:
		return "unknown"
	}
}
