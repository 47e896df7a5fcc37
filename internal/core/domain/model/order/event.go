package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// EventType names an order domain event on the wire.
type EventType string

const (
	// EventOrderPlaced is recorded once, when checkout creates the order.
	EventOrderPlaced EventType = "order.placed"
	// EventStatusChanged is recorded for every accepted transition.
	EventStatusChanged EventType = "order.status_changed"
)

// Event is a fact about an order, collected by the aggregate and stored in the
// outbox by the unit of work that persists the order.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	UserID     kernel.UUID
	From       Status
	To         Status
	Trigger    Trigger
	Version    int
	OccurredAt time.Time
}
