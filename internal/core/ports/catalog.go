package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// CatalogReader is the read-only view of products and packages.
type CatalogReader interface {
	// FindEntries returns the entries that still exist for refs. Missing refs
	// are simply absent from the result.
	FindEntries(ctx context.Context, refs []catalog.Ref) ([]catalog.Entry, error)

	// GetEntry returns one entry or an errs.ObjectNotFoundError.
	GetEntry(ctx context.Context, ref catalog.Ref) (catalog.Entry, error)
}

// Contact is how a customer can be reached. Any field may be empty.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// CustomerDirectory looks up customer contact details owned by the account service.
type CustomerDirectory interface {
	GetContact(ctx context.Context, customerID kernel.UUID) (Contact, error)
}
