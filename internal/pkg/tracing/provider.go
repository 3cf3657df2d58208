package tracing

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/internal/pkg/urlutil"
)

// InstrumentationName: имя tracer-а, которым клиент открывает span-ы запросов.
const InstrumentationName = "github.com/Kargones/glclient/pkg/gitlab"

// Provider объединяет TracerProvider и функцию его завершения.
// Глобальное состояние otel не изменяется: tracer передаётся клиенту явно
// через gitlab.TracingMiddleware.
type Provider struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

// Tracer возвращает tracer клиента GitLab.
func (p *Provider) Tracer() trace.Tracer {
	return p.provider.Tracer(InstrumentationName)
}

// Shutdown отправляет накопленные span-ы и освобождает ресурсы экспортера.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}

// NewNopProvider возвращает Provider, span-ы которого никуда не отправляются.
func NewNopProvider() *Provider {
	return &Provider{
		provider: noop.NewTracerProvider(),
		shutdown: func(context.Context) error { return nil },
	}
}

// NewProvider создаёт Provider по конфигурации.
// Если трейсинг выключен, возвращает NewNopProvider().
// При включённом трейсинге создаёт OTLP HTTP exporter, BatchSpanProcessor
// и resource с service.name, service.version и deployment.environment.
func NewProvider(cfg Config, logger logging.Logger) (*Provider, error) {
	if !cfg.Enabled {
		logger.Debug("трейсинг выключен, используется nop provider")
		return NewNopProvider(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// NewSchemaless избегает конфликта Schema URL между resource.Default() и semconv.
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	// WithEndpoint принимает только host:port.
	endpointHost := cfg.Endpoint
	if u, parseErr := url.Parse(cfg.Endpoint); parseErr == nil && u.Host != "" {
		endpointHost = u.Host
	}
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpointHost),
		otlptracehttp.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.SamplingRate)),
	)

	logger.Info("OpenTelemetry трейсинг инициализирован",
		"endpoint", urlutil.MaskURL(cfg.Endpoint),
		"service_name", cfg.ServiceName,
		"sampling_rate", cfg.SamplingRate,
	)
	return &Provider{provider: tp, shutdown: tp.Shutdown}, nil
}

// newSampler применяет SamplingRate и к корневым span-ам, и к span-ам
// с remote parent: ContextWithTraceID помечает remote parent как sampled,
// и стандартный ParentBased отправлял бы все трейсы.
func newSampler(rate float64) sdktrace.Sampler {
	return sdktrace.ParentBased(
		sdktrace.TraceIDRatioBased(rate),
		sdktrace.WithRemoteParentSampled(sdktrace.TraceIDRatioBased(rate)),
	)
}
