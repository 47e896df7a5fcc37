package kafka_test

import (
	"testing"

	adapter "storefront/internal/adapters/out/kafka"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMessageCarrier(t *testing.T) {
	msg := kafka.Message{Headers: []kafka.Header{{Key: "event-type", Value: []byte("OrderPlaced")}}}
	carrier := adapter.NewMessageCarrier(&msg)

	carrier.Set("traceparent", "00-abc-def-01")
	carrier.Set("event-type", "OrderStatusChanged")

	assert.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))
	assert.Equal(t, "OrderStatusChanged", carrier.Get("event-type"))
	assert.Empty(t, carrier.Get("missing"))
	assert.ElementsMatch(t, []string{"event-type", "traceparent"}, carrier.Keys())
	assert.Len(t, msg.Headers, 2)
}
