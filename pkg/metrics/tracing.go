package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the instrumentation name of the lab's spans.
const DefaultTracerName = "rerender"

// Tracer starts spans for session events and navigations. A nil Tracer
// starts no spans.
//
// The tracer comes from the global OpenTelemetry provider; configure it in
// main before serving:
//
//	otel.SetTracerProvider(tp)
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer resolves a tracer from the global provider.
func NewTracer(name string) *Tracer {
	if name == "" {
		name = DefaultTracerName
	}
	return &Tracer{tracer: otel.Tracer(name)}
}

// StartEvent starts a span for one client event of a session.
func (t *Tracer) StartEvent(ctx context.Context, sessionID, eventType, target string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, "rerender."+eventType,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rerender.session_id", sessionID),
			attribute.String("rerender.event_type", eventType),
			attribute.String("rerender.event_target", target),
		),
	)
}

// StartNavigation starts a span for a view selection.
func (t *Tracer) StartNavigation(ctx context.Context, sessionID, from, to string) (context.Context, trace.Span) {
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, "rerender.navigate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("rerender.session_id", sessionID),
			attribute.String("rerender.from", from),
			attribute.String("rerender.to", to),
		),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
