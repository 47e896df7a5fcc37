// Package outboxrepo implements the transactional outbox: order events are
// inserted in the transaction that changed the order and later relayed to
// the broker.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutboxDTO represents a row of the outbox table.
type OutboxDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type        string
	AggregateID uuid.UUID `gorm:"type:uuid"`
	Payload     datatypes.JSON
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// TableName specifies the database table name for outbox messages.
func (OutboxDTO) TableName() string {
	return "outbox"
}

// OrderEventPayload is the JSON body of an order event on the wire.
// From is empty for order.placed.
type OrderEventPayload struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Trigger    string    `json:"trigger"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EncodeOrderEvent serializes a domain event into an outbox message.
func EncodeOrderEvent(e order.Event) (ports.OutboxMessage, error) {
	payload := OrderEventPayload{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		UserID:     e.UserID.String(),
		To:         e.To.String(),
		Trigger:    e.Trigger.String(),
		Version:    e.Version,
		OccurredAt: e.OccurredAt,
	}
	if e.From != order.Unknown {
		payload.From = e.From.String()
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          e.ID,
		Type:        string(e.Type),
		AggregateID: e.OrderID,
		Payload:     raw,
		OccurredAt:  e.OccurredAt,
	}, nil
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append stores messages as pending. It is called by the unit of work on commit.
func (r *GormOutboxRepository) Append(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	dtos := make([]OutboxDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, OutboxDTO{
			ID:          m.ID.Bytes(),
			Type:        m.Type,
			AggregateID: m.AggregateID.Bytes(),
			Payload:     datatypes.JSON(m.Payload),
			OccurredAt:  m.OccurredAt.UTC(),
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending locks up to limit unpublished rows, oldest first, skipping rows
// another relay already holds.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		aggregateID, idErr := kernel.UUIDFromBytes(dto.AggregateID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			Type:        dto.Type,
			AggregateID: aggregateID,
			Payload:     []byte(dto.Payload),
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

// MarkPublished stamps the given rows so they are not relayed again.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
