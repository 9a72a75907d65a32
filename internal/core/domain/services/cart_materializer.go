package services

import (
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// LineRequest asks for quantity units of a catalog entry.
type LineRequest struct {
	Ref      catalog.Ref
	Quantity int
}

// Materialized is the priced content of a new order.
type Materialized struct {
	Items        []order.Line
	Packages     []order.Line
	Subtotal     kernel.Money
	FreeShipping bool
	// Skipped lists requests whose catalog entry no longer exists.
	Skipped []catalog.Ref
}

// CartMaterializer turns cart lines or an explicit request list into order lines
// priced from the current catalog.
//
// Business rules:
//   - the unit price is always the current catalog price, never a cart snapshot
//   - a request whose entry is missing from the catalog is skipped, not an error;
//     the caller logs Skipped
//   - any free-shipping entry makes the whole order ship for free
//   - when nothing survives, order.ErrNothingToOrder is returned
type CartMaterializer struct{}

func NewCartMaterializer() CartMaterializer {
	return CartMaterializer{}
}

// Materialize prices requests against entries, the catalog entries that still
// exist for the requested refs.
func (CartMaterializer) Materialize(requests []LineRequest, entries []catalog.Entry) (Materialized, error) {
	index := make(map[catalog.Ref]catalog.Entry, len(entries))
	for _, e := range entries {
		index[e.Ref] = e
	}

	result := Materialized{Subtotal: kernel.Zero}
	for _, req := range requests {
		entry, ok := index[req.Ref]
		if !ok {
			result.Skipped = append(result.Skipped, req.Ref)
			continue
		}

		line, err := order.NewLine(entry.Ref, entry.Name, req.Quantity, entry.Price)
		if err != nil {
			return Materialized{}, err
		}

		if entry.Ref.Kind == catalog.KindPackage {
			result.Packages = append(result.Packages, line)
		} else {
			result.Items = append(result.Items, line)
		}
		result.Subtotal = result.Subtotal.Add(line.Total())
		result.FreeShipping = result.FreeShipping || entry.FreeShipping
	}

	if len(result.Items) == 0 && len(result.Packages) == 0 {
		return result, order.ErrNothingToOrder
	}
	return result, nil
}

// Refs returns the catalog refs of requests, in order, for the catalog lookup.
func Refs(requests []LineRequest) []catalog.Ref {
	refs := make([]catalog.Ref, 0, len(requests))
	for _, r := range requests {
		refs = append(refs, r.Ref)
	}
	return refs
}
