package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/config"
	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/internal/pkg/metrics"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/internal/pkg/tracing"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// ProvideLogger создаёт Logger по Config.Logging.
// Cleanup закрывает файл логов, если вывод идёт в файл через lumberjack.
func ProvideLogger(cfg *config.Config) (logging.Logger, func()) {
	logger, closer := logging.NewLogger(cfg.LoggingSettings())
	return logger, func() {
		_ = closer.Close() //nolint:errcheck // ошибка закрытия лога на выходе не обрабатывается
	}
}

// ProvideOutputWriter создаёт Writer по Config.Output.Format.
// Формат уже проверен в config.Validate, поэтому неизвестных значений здесь нет.
func ProvideOutputWriter(cfg *config.Config) output.Writer {
	return output.NewWriter(cfg.Output.Format)
}

// ProvideTraceID генерирует trace_id запуска: 32 hex-символа.
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector по Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку:
// недоступный Pushgateway не должен мешать работе с GitLab.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	collector, err := metrics.NewCollector(cfg.MetricsSettings(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracingProvider создаёт OTel Provider по Config.Tracing.
// При ошибке возвращает nop provider. Cleanup отправляет накопленные span-ы
// с таймаутом Config.Tracing.Timeout.
func ProvideTracingProvider(cfg *config.Config, logger logging.Logger) (*tracing.Provider, func()) {
	provider, err := tracing.NewProvider(cfg.TracingSettings(), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		provider = tracing.NewNopProvider()
	}
	return provider, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Tracing.Timeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn("ошибка завершения tracing", slog.String("error", err.Error()))
		}
	}
}

// ProvideGitLabClient создаёт клиент GitLab с логированием, метриками,
// трейсингом запросов и записью неудачных ответов для Runner. Без GitLab.BaseURL возвращает nil: команды help и
// version работают без сервера, остальные получают ошибку конфигурации
// из Env.GitLab().
func ProvideGitLabClient(cfg *config.Config, logger logging.Logger, collector metrics.Collector, provider *tracing.Provider) (*gitlab.Client, error) {
	if cfg.GitLab.BaseURL == "" {
		logger.Debug("GitLab base URL не задан, клиент не создаётся")
		return nil, nil
	}
	return gitlab.NewClient(cfg.GitLabClientConfig(),
		gitlab.WithLogger(logger.Slog()),
		gitlab.WithMiddleware(
			gitlab.TracingMiddleware(provider.Tracer()),
			gitlab.MetricsMiddleware(collector),
			command.FailureMiddleware(),
		),
	)
}

// ProvideEnv собирает окружение обработчиков команд.
func ProvideEnv(cfg *config.Config, logger logging.Logger, client *gitlab.Client) *command.Env {
	return &command.Env{Config: cfg, Logger: logger, Client: client}
}

// ProvideRunner создаёт Runner, выводящий результаты в stdout.
func ProvideRunner(env *command.Env, collector metrics.Collector, provider *tracing.Provider, writer output.Writer) *command.Runner {
	return &command.Runner{
		Env:     env,
		Metrics: collector,
		Tracer:  provider.Tracer(),
		Writer:  writer,
		Stdout:  os.Stdout,
	}
}
