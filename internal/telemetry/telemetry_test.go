package telemetry_test

import (
	"context"
	"testing"

	"storefront/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	shutdown, err := telemetry.InitMeterProvider(reg, "storefront-test", "test")
	require.NoError(t, err)
	defer func() { assert.NoError(t, shutdown(context.Background())) }()

	counter, err := otel.Meter("test").Int64Counter("orders_relayed")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "orders_relayed_total")
}

func TestInitTracerProvider_WithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.InitTracerProvider(context.Background(), "", "storefront-test", "test")
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, otel.GetTextMapPropagator())
}
