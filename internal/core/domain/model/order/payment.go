package order

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMpesa          PaymentMethod = "mpesa"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMpesa, PaymentBankTransfer, PaymentCashOnDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a payment method", string(m)))
	}
}

// Payment is the payment block of an order. PayBillNumber and AccountNumber
// are the payee identifiers the customer was told to pay into.
type Payment struct {
	Method        PaymentMethod
	PayBillNumber string
	AccountNumber string
	ProofImage    string
	PaidAt        *time.Time
	Status        PaymentStatus
}

// NewPayment creates a pending payment. proofImage is an opaque reference to an
// uploaded proof of payment and may be empty.
func NewPayment(method PaymentMethod, payBillNumber, accountNumber, proofImage string) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	return Payment{
		Method:        method,
		PayBillNumber: strings.TrimSpace(payBillNumber),
		AccountNumber: strings.TrimSpace(accountNumber),
		ProofImage:    strings.TrimSpace(proofImage),
		Status:        PaymentPending,
	}, nil
}

func (p Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

func (p Payment) clone() Payment {
	if p.PaidAt != nil {
		paidAt := *p.PaidAt
		p.PaidAt = &paidAt
	}
	return p
}
