// Package metrics собирает метрики команд glctl и запросов к GitLab API
// и отправляет их в Prometheus Pushgateway.
//
// NewCollector выбирает реализацию по конфигурации: PrometheusCollector
// при включённых метриках, NopCollector иначе.
package metrics

import (
	"context"
	"time"

	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
//
// Collector удовлетворяет gitlab.RequestRecorder и подключается к клиенту
// через gitlab.MetricsMiddleware.
type Collector interface {
	// RecordCommandStart записывает начало выполнения команды.
	RecordCommandStart(command string)

	// RecordCommandEnd записывает завершение команды.
	// code: код ошибки (apperrors.CodeOf), пустой при успехе.
	RecordCommandEnd(command string, duration time.Duration, code string)

	// RecordRequest записывает завершённый запрос к GitLab API.
	// status равен 0 при ошибке транспорта.
	RecordRequest(method, resource string, status int, duration time.Duration)

	// Push отправляет метрики в Pushgateway.
	// Ошибки отправки логируются и не возвращаются: метрики не должны
	// влиять на код выхода команды.
	Push(ctx context.Context) error
}

// NewCollector возвращает NopCollector при выключенных метриках
// и PrometheusCollector иначе.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}

var (
	_ Collector              = (*NopCollector)(nil)
	_ Collector              = (*PrometheusCollector)(nil)
	_ gitlab.RequestRecorder = Collector(nil)
)

// NopCollector используется при выключенных метриках и при ошибке
// создания PrometheusCollector.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector { return &NopCollector{} }

func (c *NopCollector) RecordCommandStart(string)                        {}
func (c *NopCollector) RecordCommandEnd(string, time.Duration, string)   {}
func (c *NopCollector) RecordRequest(string, string, int, time.Duration) {}
func (c *NopCollector) Push(context.Context) error                       { return nil }
