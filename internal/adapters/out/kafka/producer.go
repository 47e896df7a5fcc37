// Package kafka publishes outbox messages to Kafka. Each record is keyed by
// the aggregate ID so the events of one order stay ordered within a partition,
// and carries the trace context of the relay in its headers.
package kafka

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/core/ports"
)

const (
	HeaderMessageID  = "message-id"
	HeaderEventType  = "event-type"
	HeaderOccurredAt = "occurred-at"
)

var tracer = otel.Tracer("storefront/adapters/out/kafka")

var _ ports.MessagePublisher = (*Producer)(nil)

// Producer writes outbox messages to a single topic.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a producer for topic. Writes wait for all in-sync replicas.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// Publish writes messages in one batch. The call fails as a whole if any
// record is rejected; the relay then retries the batch on its next run.
func (p *Producer) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	records := make([]kafka.Message, len(messages))
	spans := make([]trace.Span, len(messages))
	for i, m := range messages {
		key := m.AggregateID.String()
		records[i] = kafka.Message{
			Key:   []byte(key),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: HeaderMessageID, Value: []byte(m.ID.String())},
				{Key: HeaderEventType, Value: []byte(m.Type)},
				{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(time.RFC3339Nano))},
			},
		}

		spanCtx, span := tracer.Start(ctx, "send "+p.topic,
			trace.WithSpanKind(trace.SpanKindProducer),
			trace.WithAttributes(
				semconv.MessagingSystemKafka,
				semconv.MessagingOperationName("send"),
				semconv.MessagingOperationTypePublish,
				semconv.MessagingDestinationName(p.topic),
				semconv.MessagingKafkaMessageKey(key),
				semconv.MessagingMessageID(m.ID.String()),
			),
		)
		otel.GetTextMapPropagator().Inject(spanCtx, NewMessageCarrier(&records[i]))
		spans[i] = span
	}

	err := p.writer.WriteMessages(ctx, records...)
	for _, span := range spans {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
	if err != nil {
		return errors.Wrapf(err, "publish %d message(s) to %s", len(records), p.topic)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
