package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const remoteTracerName = "ddhooks/remote"

type contextKey string

const (
	runIDContextKey contextKey = "observability.run_id"
	orgContextKey   contextKey = "observability.organization"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	SetStatusCode(int)
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartRemoteSpan starts a client span for one remote API operation.
func StartRemoteSpan(ctx context.Context, service, operation string) (context.Context, Span) {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		operation = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("ddhooks.remote.service", strings.TrimSpace(service)),
		attribute.String("ddhooks.operation", operation),
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("ddhooks.run_id", runID))
	}
	if org, ok := OrganizationFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("ddhooks.org", org))
	}

	ctx, span := otel.Tracer(remoteTracerName).Start(ctx, service+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, otelSpan{inner: span}
}

// WithRun enriches context and current span with the run id and organization.
func WithRun(ctx context.Context, runID, organization string) context.Context {
	runID = strings.TrimSpace(runID)
	organization = strings.TrimSpace(organization)
	if runID != "" {
		ctx = context.WithValue(ctx, runIDContextKey, runID)
	}
	if organization != "" {
		ctx = context.WithValue(ctx, orgContextKey, organization)
	}
	setSpanRunAttributes(ctx, runID, organization)
	return ctx
}

// RunIDFromContext extracts the run id.
func RunIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(runIDContextKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// OrganizationFromContext extracts the Azure DevOps organization.
func OrganizationFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(orgContextKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanRunAttributes(ctx context.Context, runID, organization string) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, 2)
	if runID != "" {
		attrs = append(attrs, attribute.String("ddhooks.run_id", runID))
	}
	if organization != "" {
		attrs = append(attrs, attribute.String("ddhooks.org", organization))
	}
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) SetStatusCode(code int) {
	if s.inner == nil || code == 0 {
		return
	}
	s.inner.SetAttributes(attribute.Int("http.response.status_code", code))
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
