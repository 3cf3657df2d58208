package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/glclient/internal/pkg/logging"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{}, logging.NewNopLogger())
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "GET projects/{projectId}")
	assert.False(t, span.SpanContext().IsValid(), "nop tracer не создаёт span context")
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, ServiceName: "glctl", Timeout: time.Second}, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
}

func TestNewProvider_Enabled(t *testing.T) {
	cfg := validConfig()
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.Insecure = true
	cfg.Timeout = 100 * time.Millisecond

	p, err := NewProvider(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "GET version")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// Экспорт в недоступный endpoint возвращает ошибку, но не должен зависать.
	_ = p.Shutdown(ctx) //nolint:errcheck // endpoint недоступен
}

func TestNewNopProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, NewNopProvider().Shutdown(ctx))
}

// newRecordingTracer создаёт tracer с in-memory exporter и заданным sampler.
func newRecordingTracer(t *testing.T, rate float64) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(newSampler(rate)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) }) //nolint:errcheck // test cleanup
	return tp.Tracer(InstrumentationName), exporter
}

func TestSpan_InheritsCommandTraceID(t *testing.T) {
	tracer, exporter := newRecordingTracer(t, 1.0)
	id := GenerateTraceID()
	ctx := WithTraceID(context.Background(), id)

	_, span := tracer.Start(ctx, "POST projects/{projectId}/repository/branches")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, id, spans[0].SpanContext.TraceID().String())
	assert.Equal(t, id, spans[0].Parent.TraceID().String())
}

func TestSampler_RateAppliesToRemoteParent(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want int
	}{
		{name: "все", rate: 1.0, want: 20},
		{name: "ни одного", rate: 0.0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, exporter := newRecordingTracer(t, tt.rate)
			for range 20 {
				ctx := WithTraceID(context.Background(), GenerateTraceID())
				_, span := tracer.Start(ctx, "GET user")
				span.End()
			}
			assert.Len(t, exporter.GetSpans(), tt.want)
		})
	}
}
