package shipping

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRateIsNotConstructed is returned when a Rate was not created via NewRate or RestoreRate.
var ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")

// Rate prices delivery by one carrier to one location.
//
// The two default flags are independent: IsCarrierDefault marks the fallback
// for its carrier, IsGlobalDefault marks the fallback for the whole table. At
// most one rate per carrier carries the first flag and at most one rate in the
// table carries the second; the repository clears siblings when a flag is set.
type Rate struct {
	id                  kernel.UUID
	carrier             Carrier
	locationName        string
	regionCode          string
	price               kernel.Money
	isCarrierDefault    bool
	isGlobalDefault     bool
	allowCashOnDelivery bool
	createdAt           time.Time
	isConstructed       bool
}

// RateParams carries the administrator-editable fields of a Rate.
type RateParams struct {
	Carrier             Carrier
	LocationName        string
	RegionCode          string
	Price               kernel.Money
	IsCarrierDefault    bool
	IsGlobalDefault     bool
	AllowCashOnDelivery bool
}

func NewRate(id kernel.UUID, params RateParams, createdAt time.Time) (*Rate, error) {
	r := &Rate{isConstructed: true, createdAt: createdAt}
	if err := errors.Join(r.setID(id), r.apply(params)); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRate rebuilds a rate from persistence.
func RestoreRate(id kernel.UUID, params RateParams, createdAt time.Time) (*Rate, error) {
	return NewRate(id, params, createdAt)
}

// Update replaces the editable fields. On error the rate is left unchanged.
func (r *Rate) Update(params RateParams) error {
	next := *r
	if err := next.apply(params); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Rate) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRateIsNotConstructed
	}
	return nil
}

func (r *Rate) ID() kernel.UUID           { return r.id }
func (r *Rate) Carrier() Carrier          { return r.carrier }
func (r *Rate) LocationName() string      { return r.locationName }
func (r *Rate) RegionCode() string        { return r.regionCode }
func (r *Rate) Price() kernel.Money       { return r.price }
func (r *Rate) IsCarrierDefault() bool    { return r.isCarrierDefault }
func (r *Rate) IsGlobalDefault() bool     { return r.isGlobalDefault }
func (r *Rate) AllowCashOnDelivery() bool { return r.allowCashOnDelivery }
func (r *Rate) CreatedAt() time.Time      { return r.createdAt }

// IsDefault reports whether the rate is a fallback of either kind.
func (r *Rate) IsDefault() bool {
	return r.isCarrierDefault || r.isGlobalDefault
}

// Matches reports whether the location name or region code matches loc.
func (r *Rate) Matches(loc kernel.Location) bool {
	return loc.Matches(r.locationName) || loc.Matches(r.regionCode)
}

func (r *Rate) apply(p RateParams) error {
	if err := errors.Join(r.setCarrier(p.Carrier), r.setLocationName(p.LocationName)); err != nil {
		return err
	}
	r.regionCode = strings.TrimSpace(p.RegionCode)
	r.price = p.Price
	r.isCarrierDefault = p.IsCarrierDefault
	r.isGlobalDefault = p.IsGlobalDefault
	r.allowCashOnDelivery = p.AllowCashOnDelivery
	return nil
}

func (r *Rate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rate) setCarrier(c Carrier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.carrier = c
	return nil
}

func (r *Rate) setLocationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("locationName")
	}
	r.locationName = name
	return nil
}
