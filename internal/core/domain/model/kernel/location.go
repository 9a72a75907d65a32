package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location was not built via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a free-text place name, such as "Nairobi CBD" or "Westlands",
// used to match an order against the shipping rate table.
type Location struct {
	name  string
	guard guard.ConstructorGuard
}

// NewLocation trims the name and rejects blank input.
func NewLocation(name string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}
	return Location{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) String() string {
	return l.name
}

// Matches reports whether candidate contains the location or is contained in it,
// ignoring case. A blank candidate or an unconstructed location never matches.
//
//	loc, _ := kernel.NewLocation("nairobi")
//	loc.Matches("Nairobi CBD") // true
//	loc.Matches("Nai")         // true
//	loc.Matches("Mombasa")     // false
func (l Location) Matches(candidate string) bool {
	if l.Validate() != nil {
		return false
	}
	c := strings.ToLower(strings.TrimSpace(candidate))
	if c == "" {
		return false
	}
	n := strings.ToLower(l.name)
	return strings.Contains(c, n) || strings.Contains(n, c)
}
