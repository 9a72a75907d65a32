package order

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ShippingAddress is where the order goes. Every field is required.
type ShippingAddress struct {
	Name        string
	Phone       string
	City        string
	Region      string
	AddressLine string
}

// NewShippingAddress trims every field and reports all missing ones at once.
func NewShippingAddress(name, phone, city, region, addressLine string) (ShippingAddress, error) {
	a := ShippingAddress{
		Name:        strings.TrimSpace(name),
		Phone:       strings.TrimSpace(phone),
		City:        strings.TrimSpace(city),
		Region:      strings.TrimSpace(region),
		AddressLine: strings.TrimSpace(addressLine),
	}
	if err := a.Validate(); err != nil {
		return ShippingAddress{}, err
	}
	return a, nil
}

func (a ShippingAddress) Validate() error {
	return errors.Join(
		required("shippingAddress.name", a.Name),
		required("shippingAddress.phone", a.Phone),
		required("shippingAddress.city", a.City),
		required("shippingAddress.region", a.Region),
		required("shippingAddress.addressLine", a.AddressLine),
	)
}

func required(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
