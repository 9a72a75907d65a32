package notifications

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

const fallbackPickupPoint = "our pickup point"

func greetingName(o *order.Order) string {
	name := strings.TrimSpace(o.ShippingAddress().Name)
	if name == "" {
		return "customer"
	}
	if first, _, ok := strings.Cut(name, " "); ok {
		return first
	}
	return name
}

func orderConfirmationSMS(o *order.Order, reference, currency, quotationURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, we have received your order %s.\n", greetingName(o), reference)
	for _, l := range o.Lines() {
		fmt.Fprintf(&b, "- %s x%d: %s %s\n", l.Name(), l.Quantity(), currency, l.Total().Format())
	}
	if !o.ShippingCost().IsZero() {
		fmt.Fprintf(&b, "Shipping: %s %s\n", currency, o.ShippingCost().Format())
	}
	fmt.Fprintf(&b, "Total: %s %s\n", currency, o.Total().Format())
	fmt.Fprintf(&b, "Quotation: %s", quotationURL)
	return b.String()
}

func processingSMS(o *order.Order, reference, trackingURL string) string {
	return fmt.Sprintf("Hi %s, your order %s is now being processed. Track it here: %s",
		greetingName(o), reference, trackingURL)
}

// collectionPoint is where a delivered order waits for the customer.
func collectionPoint(o *order.Order) string {
	if loc := strings.TrimSpace(o.ShippingLocation()); loc != "" {
		return loc
	}
	if city := strings.TrimSpace(o.ShippingAddress().City); city != "" {
		return city
	}
	return fallbackPickupPoint
}

func deliveredSMS(o *order.Order, reference string) string {
	return fmt.Sprintf("Hi %s, your order %s has arrived and is ready for collection at %s. Thank you for shopping with us.",
		greetingName(o), reference, collectionPoint(o))
}

func quotationEmailSubject(issuer, reference string) string {
	if issuer == "" {
		return "Your quotation " + reference
	}
	return fmt.Sprintf("Your quotation %s from %s", reference, issuer)
}

func quotationEmailBody(o *order.Order, reference, currency, quotationURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", greetingName(o))
	fmt.Fprintf(&b, "Thank you for your order. Your quotation %s is attached.\n", reference)
	fmt.Fprintf(&b, "Amount due: %s %s\n\n", currency, o.Total().Format())
	b.WriteString("Payment instructions are listed in the document. ")
	b.WriteString("We start processing as soon as the payment is confirmed.\n\n")
	fmt.Fprintf(&b, "You can download the quotation again at %s\n", quotationURL)
	return b.String()
}
