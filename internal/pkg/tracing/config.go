package tracing

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Ошибки проверки Config. Проверяются через errors.Is.
var (
	ErrTracingEndpointRequired      = errors.New("tracing: не задан GL_TRACING_ENDPOINT")
	ErrTracingEndpointInvalidFormat = errors.New("tracing: endpoint должен быть URL с host, например http://jaeger:4318")
	ErrTracingServiceNameRequired   = errors.New("tracing: не задано имя сервиса")
	ErrTracingTimeoutInvalid        = errors.New("tracing: таймаут экспорта должен быть положительным")
	ErrTracingSamplingRateInvalid   = errors.New("tracing: доля сэмплирования должна быть от 0.0 до 1.0")
)

// Config задаёт экспорт span-ов glctl в OTLP HTTP.
// Span-ы открываются на команду (Runner) и на каждый запрос к GitLab
// (gitlab.TracingMiddleware).
type Config struct {
	Enabled bool

	// Endpoint: адрес OTLP HTTP коллектора; путь /v1/traces добавляет exporter.
	Endpoint string
	Insecure bool

	// ServiceName, Version и Environment попадают в resource attributes.
	ServiceName string
	Version     string
	Environment string

	Timeout time.Duration

	// SamplingRate задаёт долю сэмплируемых трейсов, от 0.0 (ни одного) до 1.0 (все).
	SamplingRate float64
}

// DefaultConfig возвращает выключенную конфигурацию с сервисом "glctl".
func DefaultConfig() Config {
	return Config{
		ServiceName:  "glctl",
		Environment:  "production",
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}
}

// Validate проверяет конфигурацию включённого трейсинга.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.Endpoint == "":
		return ErrTracingEndpointRequired
	case !hasHost(c.Endpoint):
		return ErrTracingEndpointInvalidFormat
	case c.ServiceName == "":
		return ErrTracingServiceNameRequired
	case c.Timeout <= 0:
		return ErrTracingTimeoutInvalid
	case c.SamplingRate < 0 || c.SamplingRate > 1:
		return fmt.Errorf("%w, получено: %g", ErrTracingSamplingRateInvalid, c.SamplingRate)
	}
	return nil
}

func hasHost(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
