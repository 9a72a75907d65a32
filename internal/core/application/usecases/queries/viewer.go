// Package queries contains read-only operations. List queries read the tables
// directly with SQL; single-aggregate queries go through the repository ports.
package queries

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Viewer is the identity a query runs as. Customers see their own orders;
// administrators see everything.
type Viewer struct {
	CustomerID kernel.UUID
	IsAdmin    bool
}

func NewCustomerViewer(customerID kernel.UUID) (Viewer, error) {
	if err := customerID.Validate(); err != nil {
		return Viewer{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	return Viewer{CustomerID: customerID}, nil
}

// NewAdminViewer keeps the administrator's own id for logging; it never scopes results.
func NewAdminViewer(adminID kernel.UUID) Viewer {
	return Viewer{CustomerID: adminID, IsAdmin: true}
}

// CanSee reports whether the viewer may read a resource owned by ownerID.
func (v Viewer) CanSee(ownerID kernel.UUID) bool {
	return v.IsAdmin || v.CustomerID.IsEqual(ownerID)
}

func (v Viewer) Validate() error {
	if v.IsAdmin {
		return nil
	}
	return v.CustomerID.Validate()
}
