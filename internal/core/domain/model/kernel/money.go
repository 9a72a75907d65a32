package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a non-negative amount in the store currency.
// It wraps decimal.Decimal so that sums of line totals never accumulate
// floating point error. The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// NewMoney builds Money from a decimal, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt builds Money from a whole number of currency units.
func MoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

// MoneyFromString parses a decimal string such as "1500.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(units int64) Money {
	m, err := MoneyFromInt(units)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a line quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "2300.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Format renders the amount with thousands separators, e.g. "2,300.00".
func (m Money) Format() string {
	rounded := m.amount.Round(2)
	fixed := rounded.StringFixed(2)
	whole := rounded.Truncate(0).IntPart()
	return message.NewPrinter(language.English).Sprintf("%d", whole) + fixed[len(fixed)-3:]
}
