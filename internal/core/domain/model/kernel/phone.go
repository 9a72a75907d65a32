package kernel

import (
	"strings"
	"unicode"

	"fulfillment/internal/pkg/errs"
)

const (
	DefaultCountryCode    = "254"
	DefaultNationalLength = 9
)

// ErrPhoneIsRequired is returned by NormalizePhone when no digits remain.
var ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")

// NormalizePhone converts a customer-entered number to "+<digits>" form.
//
// Non-digits are stripped first. Then, in order:
//   - digits starting with countryCode get a "+" prefix;
//   - a trunk "0" followed by nationalLength digits is replaced by "+countryCode";
//   - exactly nationalLength digits get "+countryCode" prepended;
//   - anything else gets a bare "+" prefix.
//
// With the defaults, "0712345678", "254712345678", "712345678" and
// "+254 712 345 678" all become "+254712345678".
func NormalizePhone(raw, countryCode string, nationalLength int) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)

	switch {
	case digits == "":
		return "", ErrPhoneIsRequired
	case countryCode != "" && strings.HasPrefix(digits, countryCode):
		return "+" + digits, nil
	case strings.HasPrefix(digits, "0") && len(digits) == nationalLength+1:
		return "+" + countryCode + digits[1:], nil
	case len(digits) == nationalLength:
		return "+" + countryCode + digits, nil
	default:
		return "+" + digits, nil
	}
}
