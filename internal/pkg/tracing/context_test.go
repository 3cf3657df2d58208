package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

type otherKey struct{}

func TestWithTraceID_Roundtrip(t *testing.T) {
	id := GenerateTraceID()
	ctx := WithTraceID(context.Background(), id)

	assert.Equal(t, id, TraceIDFromContext(ctx))

	sc := trace.SpanContextFromContext(ctx)
	assert.True(t, sc.TraceID().IsValid())
	assert.False(t, sc.SpanID().IsValid(), "span ID появляется только у span-ов команды")
	assert.True(t, sc.IsRemote())
	assert.True(t, sc.IsSampled())
	assert.Equal(t, id, sc.TraceID().String())
}

func TestWithTraceID_InvalidHexKeepsLogID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "not-hex")

	assert.Equal(t, "not-hex", TraceIDFromContext(ctx))
	assert.False(t, trace.SpanContextFromContext(ctx).TraceID().IsValid(), "невалидный ID не создаёт span context")
}

func TestWithTraceID_OverwritesAndPreservesOtherValues(t *testing.T) {
	ctx := context.WithValue(context.Background(), otherKey{}, "value")
	ctx = WithTraceID(ctx, "first")
	ctx = WithTraceID(ctx, "second")

	assert.Equal(t, "second", TraceIDFromContext(ctx))
	assert.Equal(t, "value", ctx.Value(otherKey{}))
}

func TestTraceIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.Empty(t, TraceIDFromContext(nil)) //nolint:staticcheck // проверка nil context
}
