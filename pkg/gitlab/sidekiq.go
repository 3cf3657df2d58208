package gitlab

import (
	"context"
	"net/http"
	"time"
)

// QueueMetrics: состояние очередей Sidekiq.
type QueueMetrics struct {
	Queues map[string]QueueStat `json:"queues"`
}

// QueueStat: размер и задержка одной очереди.
type QueueStat struct {
	Backlog int `json:"backlog"`
	Latency int `json:"latency"`
}

// ProcessMetrics: процессы Sidekiq.
type ProcessMetrics struct {
	Processes []SidekiqProcess `json:"processes"`
}

// SidekiqProcess: один процесс Sidekiq.
type SidekiqProcess struct {
	Hostname    string     `json:"hostname"`
	PID         int        `json:"pid"`
	Tag         string     `json:"tag"`
	StartedAt   *time.Time `json:"started_at"`
	Queues      []string   `json:"queues"`
	Labels      []string   `json:"labels"`
	Concurrency int        `json:"concurrency"`
	Busy        int        `json:"busy"`
}

// JobStats: счётчики заданий Sidekiq.
type JobStats struct {
	Jobs JobCounters `json:"jobs"`
}

// JobCounters: обработанные, упавшие и ожидающие задания.
type JobCounters struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Enqueued  int `json:"enqueued"`
}

// CompoundMetrics: все метрики Sidekiq одним ответом.
type CompoundMetrics struct {
	Queues    map[string]QueueStat `json:"queues"`
	Processes []SidekiqProcess     `json:"processes"`
	Jobs      JobCounters          `json:"jobs"`
}

// SidekiqAPI: метрики фоновых заданий (только администратор).
type SidekiqAPI struct {
	c *core
}

// QueueMetrics возвращает состояние очередей.
func (a *SidekiqAPI) QueueMetrics(ctx context.Context) (*QueueMetrics, error) {
	return getOne[QueueMetrics](ctx, a.c, NewRequest(http.MethodGet, "sidekiq/queue_metrics"))
}

// ProcessMetrics возвращает список процессов.
func (a *SidekiqAPI) ProcessMetrics(ctx context.Context) (*ProcessMetrics, error) {
	return getOne[ProcessMetrics](ctx, a.c, NewRequest(http.MethodGet, "sidekiq/process_metrics"))
}

// JobStats возвращает счётчики заданий.
func (a *SidekiqAPI) JobStats(ctx context.Context) (*JobStats, error) {
	return getOne[JobStats](ctx, a.c, NewRequest(http.MethodGet, "sidekiq/job_stats"))
}

// CompoundMetrics возвращает все метрики сразу.
func (a *SidekiqAPI) CompoundMetrics(ctx context.Context) (*CompoundMetrics, error) {
	return getOne[CompoundMetrics](ctx, a.c, NewRequest(http.MethodGet, "sidekiq/compound_metrics"))
}
