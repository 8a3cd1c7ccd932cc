package observability

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RemoteMetrics counts remote API calls and applied mutations.
type RemoteMetrics struct {
	requests metric.Int64Counter
	created  metric.Int64Counter
	deleted  metric.Int64Counter
	duration metric.Float64Histogram
}

func NewRemoteMetrics() RemoteMetrics {
	meter := otel.Meter("github.com/fr0stylo/ddhooks/internal/observability")
	requests, _ := meter.Int64Counter("ddhooks.remote.requests")
	created, _ := meter.Int64Counter("ddhooks.hooks.created")
	deleted, _ := meter.Int64Counter("ddhooks.hooks.deleted")
	duration, _ := meter.Float64Histogram("ddhooks.remote.duration", metric.WithUnit("s"))
	return RemoteMetrics{
		requests: requests,
		created:  created,
		deleted:  deleted,
		duration: duration,
	}
}

func (m RemoteMetrics) RecordRequest(ctx context.Context, service, operation string, statusCode int, seconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
		attribute.String("status", statusClass(statusCode)),
	)
	if m.requests != nil {
		m.requests.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, seconds, attrs)
	}
}

func (m RemoteMetrics) RecordCreated(ctx context.Context, eventType string) {
	if m.created == nil {
		return
	}
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

func (m RemoteMetrics) RecordDeleted(ctx context.Context) {
	if m.deleted == nil {
		return
	}
	m.deleted.Add(ctx, 1)
}

func statusClass(code int) string {
	if code <= 0 {
		return "transport_error"
	}
	return strconv.Itoa(code/100) + "xx"
}
