// Package cart implements the customer's shopping cart aggregate.
//
// A customer owns at most one cart. It is created lazily on the first add and is
// emptied, not deleted, once an order has been placed from it. The subtotal is
// recomputed on every mutation from the unit price snapshots, which are a display
// convenience only: orders re-price every line from the catalog.
package cart
