package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event serialized for delivery to the message broker.
type OutboxMessage struct {
	ID          kernel.UUID
	Type        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events for the relay.
// Rows are written by the unit of work on commit, not through this interface.
type OutboxRepository interface {
	// GetPending locks and returns up to limit unpublished messages, oldest first.
	// Rows locked by a concurrent relay are skipped.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	// MarkPublished records the publication time of the given messages.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// MessagePublisher delivers outbox messages to the broker.
type MessagePublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
