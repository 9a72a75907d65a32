package ports

import (
	"context"
	"time"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories are bound to the transaction started by Begin, or to the
	// plain connection when none is active.
	OrderRepository() OrderRepository
	CartRepository() CartRepository
	ShippingRateRepository() ShippingRateRepository
}

// Clock returns the current time. Commands take it so tests can pin time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
