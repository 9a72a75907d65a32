// Package quotation lays out the quotation document for an order.
//
// Build is pure: the same order snapshot, customer and issuer configuration always
// give the same Document. Drawing the document is left to the pdf adapter.
package quotation

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Validity is how long a quotation stays valid after issue.
const Validity = 48 * time.Hour

// Issuer is the business issuing the quotation.
type Issuer struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Website  string
	Currency string
}

// Payee holds the identifiers customers pay into.
type Payee struct {
	PayBillNumber     string
	AccountNumber     string
	BankName          string
	BankAccountName   string
	BankAccountNumber string
	BankBranch        string
}

// Customer is the billed party.
type Customer struct {
	Name  string
	Email string
	Phone string
}

type Row struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Total     kernel.Money
}

type Summary struct {
	Subtotal kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}

// Document is the full content of a quotation in drawing order.
type Document struct {
	Number           string
	IssuedAt         time.Time
	ValidUntil       time.Time
	Issuer           Issuer
	Customer         Customer
	ShippingAddress  order.ShippingAddress
	DeliveryLocation string
	Carrier          string
	Rows             []Row
	Summary          Summary
	Instructions     []string
	Terms            []string
	Footer           string
}

// Number derives the short quotation number from the order id, e.g. "QT-1A2B3C4D".
func Number(orderID kernel.UUID) string {
	hex := strings.ReplaceAll(orderID.String(), "-", "")
	return "QT-" + strings.ToUpper(hex[:8])
}

// Build lays out the quotation for o. Missing customer name and phone fall back
// to the shipping address.
func Build(o *order.Order, customer Customer, issuer Issuer, payee Payee) (Document, error) {
	if err := o.Validate(); err != nil {
		return Document{}, err
	}

	address := o.ShippingAddress()
	if strings.TrimSpace(customer.Name) == "" {
		customer.Name = address.Name
	}
	if strings.TrimSpace(customer.Phone) == "" {
		customer.Phone = address.Phone
	}
	if issuer.Currency == "" {
		issuer.Currency = "KES"
	}

	lines := o.Lines()
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, Row{
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
			Total:     l.Total(),
		})
	}

	number := Number(o.ID())
	carrier := "Not specified"
	if c := o.ShippingCarrier(); c != "" {
		carrier = c.DisplayName()
	}

	return Document{
		Number:           number,
		IssuedAt:         o.CreatedAt(),
		ValidUntil:       o.CreatedAt().Add(Validity),
		Issuer:           issuer,
		Customer:         customer,
		ShippingAddress:  address,
		DeliveryLocation: o.ShippingLocation(),
		Carrier:          carrier,
		Rows:             rows,
		Summary: Summary{
			Subtotal: o.Subtotal(),
			Shipping: o.ShippingCost(),
			Total:    o.Total(),
		},
		Instructions: PaymentInstructions(payee, issuer.Currency, o.Total(), number),
		Terms:        terms(),
		Footer:       footer(issuer),
	}, nil
}

// PaymentInstructions returns the M-Pesa and bank transfer steps for paying
// amount, quoting reference. The same text goes into the create-order response.
func PaymentInstructions(payee Payee, currency string, amount kernel.Money, reference string) []string {
	if currency == "" {
		currency = "KES"
	}
	total := currency + " " + amount.Format()

	return []string{
		"M-Pesa: open Lipa na M-Pesa and select Pay Bill.",
		fmt.Sprintf("Enter business number %s and account number %s.", payee.PayBillNumber, payee.AccountNumber),
		fmt.Sprintf("Enter the amount %s, confirm with your PIN and keep the confirmation message.", total),
		fmt.Sprintf("Bank transfer: pay %s to %s, account name %s, account number %s, branch %s.",
			total, payee.BankName, payee.BankAccountName, payee.BankAccountNumber, payee.BankBranch),
		fmt.Sprintf("Quote %s as the payment reference.", reference),
	}
}

func terms() []string {
	return []string{
		fmt.Sprintf("This quotation is valid for %d hours from the date of issue.", int(Validity.Hours())),
		"Prices are confirmed at the time the order is placed and include VAT where applicable.",
		"Orders are processed once payment has been confirmed.",
		"Delivery times depend on the selected carrier and location.",
		"Goods remain the property of the seller until paid for in full.",
	}
}

func footer(issuer Issuer) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{issuer.Name, issuer.Phone, issuer.Email, issuer.Website} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}
