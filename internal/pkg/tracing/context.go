package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// traceIDKey: ключ для хранения trace ID в context.
type traceIDKey struct{}

// WithTraceID возвращает context с trace ID для логов.
// Если id: валидный W3C trace ID, context также получает remote span
// context с этим ID, и span-ы запросов к GitLab попадают в тот же трейс.
//
//	ctx = tracing.WithTraceID(ctx, tracing.GenerateTraceID())
func WithTraceID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, traceIDKey{}, id)
	traceID, err := trace.TraceIDFromHex(id)
	if err != nil {
		return ctx
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

// TraceIDFromContext извлекает trace ID из context.
// Возвращает пустую строку если trace ID не установлен или context == nil.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
