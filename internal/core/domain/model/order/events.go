package order

import "time"

// EventType names a lifecycle event that earns a customer notification.
type EventType int

const (
	OrderCreated EventType = iota + 1
	TrackingEnteredProcessing
	TrackingEnteredDelivered
)

func (t EventType) String() string {
	switch t {
	case OrderCreated:
		return "order_created"
	case TrackingEnteredProcessing:
		return "tracking_entered_processing"
	case TrackingEnteredDelivered:
		return "tracking_entered_delivered"
	default:
		return "unknown"
	}
}

// Event pairs an event type with a snapshot of the order taken after the
// triggering write was committed.
type Event struct {
	Type       EventType
	Order      *Order
	OccurredAt time.Time
}

// NewEvent snapshots o so later mutations of the aggregate do not leak into the event.
func NewEvent(t EventType, o *Order, now time.Time) Event {
	return Event{Type: t, Order: o.Clone(), OccurredAt: now}
}

// Transition records a tracking status write.
type Transition struct {
	From Status
	To   Status
}

// IsChange reports whether the write moved the status.
func (t Transition) IsChange() bool {
	return t.From != t.To
}

// Events returns the edge-triggered events of the write: entering Processing or
// entering Delivered from any other status. Rewriting the current value yields none.
func (t Transition) Events() []EventType {
	if !t.IsChange() {
		return nil
	}
	switch t.To {
	case Processing:
		return []EventType{TrackingEnteredProcessing}
	case Delivered:
		return []EventType{TrackingEnteredDelivered}
	default:
		return nil
	}
}
