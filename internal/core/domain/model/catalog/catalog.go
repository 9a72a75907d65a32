// Package catalog holds the read-only view of sellable products and packages
// that carts and orders reference.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Kind distinguishes a single product from a bundled package.
type Kind string

const (
	KindProduct Kind = "product"
	KindPackage Kind = "package"
)

func (k Kind) Validate() error {
	switch k {
	case KindProduct, KindPackage:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a catalog kind", string(k)))
	}
}

// Ref is a weak reference to a catalog entry. Deleting the entry leaves
// carts and orders holding the Ref untouched.
type Ref struct {
	Kind Kind
	ID   kernel.UUID
}

func NewRef(kind Kind, id kernel.UUID) (Ref, error) {
	ref := Ref{Kind: kind, ID: id}
	if err := ref.Validate(); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

func (r Ref) Validate() error {
	return errors.Join(r.Kind.Validate(), r.ID.Validate())
}

func (r Ref) IsEqual(other Ref) bool {
	return r.Kind == other.Kind && r.ID.IsEqual(other.ID)
}

func (r Ref) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// Entry is the current catalog state of a product or package.
type Entry struct {
	Ref          Ref
	Name         string
	Price        kernel.Money
	FreeShipping bool
}

func NewEntry(ref Ref, name string, price kernel.Money, freeShipping bool) (Entry, error) {
	name = strings.TrimSpace(name)
	if err := ref.Validate(); err != nil {
		return Entry{}, err
	}
	if name == "" {
		return Entry{}, errs.NewValueIsRequiredError("name")
	}
	return Entry{Ref: ref, Name: name, Price: price, FreeShipping: freeShipping}, nil
}
