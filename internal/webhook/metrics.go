package webhook

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/txnotify/internal/webhook"

const (
	outcomeDelivered  = "delivered"
	outcomeFailed     = "failed"
	outcomeExhausted  = "exhausted"
	outcomeSuppressed = "suppressed"
)

// telemetry bundles the delivery instruments. They come from the global
// providers, which are no-ops until telemetry is initialized.
type telemetry struct {
	tracer     trace.Tracer
	deliveries metric.Int64Counter
	duration   metric.Float64Histogram
}

func newTelemetry() *telemetry {
	meter := otel.Meter(instrumentationName)
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	deliveries, err := meter.Int64Counter("webhook.deliveries",
		metric.WithDescription("Webhook deliveries by outcome."),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		deliveries, _ = fallback.Int64Counter("webhook.deliveries")
	}

	duration, err := meter.Float64Histogram("webhook.delivery.duration",
		metric.WithDescription("Duration of webhook HTTP requests."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		duration, _ = fallback.Float64Histogram("webhook.delivery.duration")
	}

	return &telemetry{
		tracer:     otel.Tracer(instrumentationName),
		deliveries: deliveries,
		duration:   duration,
	}
}

// startDelivery starts the span of one delivery attempt.
func (t *telemetry) startDelivery(ctx context.Context, deliveryID string, event Event, callbackURL string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "webhook.deliver",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("webhook.delivery_id", deliveryID),
			attribute.String("webhook.wallet", event.Wallet),
			attribute.String("webhook.tx_id", event.Data.TxID),
			attribute.String("webhook.event", string(event.Kind)),
			attribute.String("url.full", callbackURL),
		),
	)
}

func (t *telemetry) observe(ctx context.Context, elapsed time.Duration) {
	t.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond))
}

func (t *telemetry) record(ctx context.Context, outcome string) {
	t.deliveries.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
