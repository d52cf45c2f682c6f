package keyring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/txnotify/internal/keyring"

const (
	outcomeOK        = "ok"
	outcomeError     = "error"
	outcomeExhausted = "exhausted"
)

type metrics struct {
	requests metric.Int64Counter
}

// newMetrics builds the instruments from the global MeterProvider, which is
// a no-op until telemetry is initialized.
func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	requests, err := meter.Int64Counter("keyring.requests",
		metric.WithDescription("Key pool lookups and requests by outcome."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		requests, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("keyring.requests")
	}

	return &metrics{requests: requests}
}

func (m *metrics) record(ctx context.Context, service, outcome string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("keyring.service", service),
		attribute.String("outcome", outcome),
	))
}
