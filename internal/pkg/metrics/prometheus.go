package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/internal/pkg/urlutil"
)

const namespace = "glclient"

// statusTransportError: значение label code для запросов без ответа.
const statusTransportError = "transport_error"

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry
	instance string

	commandDuration *prometheus.HistogramVec
	commandTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - glclient_command_duration_seconds (histogram; command, status)
//   - glclient_command_total (counter; command, code)
//   - glclient_api_request_duration_seconds (histogram; method, resource)
//   - glclient_api_requests_total (counter; method, resource, code)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	c := &PrometheusCollector{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		instance: instance,
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Duration of glctl command execution in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
			[]string{"command", "status"},
		),
		commandTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "command_total",
				Help:      "Total number of glctl command executions by result code",
			},
			[]string{"command", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Duration of GitLab API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "resource"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of GitLab API requests by status code",
			},
			[]string{"method", "resource", "code"},
		),
	}

	for _, m := range []prometheus.Collector{c.commandDuration, c.commandTotal, c.requestDuration, c.requestTotal} {
		if err := c.registry.Register(m); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}
	return c, nil
}

// RecordCommandStart пишет отладочную запись; метрики фиксируются при завершении.
func (c *PrometheusCollector) RecordCommandStart(command string) {
	c.logger.Debug("metrics: command started", "command", command)
}

// maxLabelLength: максимальная длина значения label.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до допустимой длины по рунам и
// заменяет контрольные символы, которые нарушают Prometheus text format.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordCommandEnd записывает длительность и результат команды.
func (c *PrometheusCollector) RecordCommandEnd(command string, duration time.Duration, code string) {
	command = sanitizeLabel(command)
	status := "success"
	if code != "" {
		status = "error"
	} else {
		code = "OK"
	}

	c.commandDuration.WithLabelValues(command, status).Observe(duration.Seconds())
	c.commandTotal.WithLabelValues(command, sanitizeLabel(code)).Inc()

	c.logger.Debug("metrics: command ended",
		"command", command,
		"duration_ms", duration.Milliseconds(),
		"code", code,
	)
}

// RecordRequest записывает запрос к GitLab API. resource: шаблон пути,
// поэтому число значений label ограничено каталогом ресурсов.
func (c *PrometheusCollector) RecordRequest(method, resource string, status int, duration time.Duration) {
	code := statusTransportError
	if status > 0 {
		code = strconv.Itoa(status)
	}
	resource = sanitizeLabel(resource)
	c.requestDuration.WithLabelValues(method, resource).Observe(duration.Seconds())
	c.requestTotal.WithLabelValues(method, resource, code).Inc()
}

// Push отправляет метрики в Pushgateway. Ошибки логируются, возвращается nil.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	if ctx.Err() != nil {
		c.logger.Debug("metrics push отменён")
		return nil
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает внутренний registry.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
