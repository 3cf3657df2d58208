// Package logging предоставляет структурированное логирование glctl поверх log/slog.
package logging

import "log/slog"

// Logger определяет интерфейс для структурированного логирования.
// Реализации: SlogAdapter и NewNopLogger().
//
//	logger.Info("Ветка создана", "project_id", id, "branch", name)
//
// ВАЖНО: Logger никогда не пишет в stdout, stdout занят выводом команд.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает Logger с добавленными атрибутами.
	With(args ...any) Logger

	// Slog возвращает нижележащий *slog.Logger.
	// Передаётся клиенту GitLab через gitlab.WithLogger.
	Slog() *slog.Logger
}

// SlogAdapter реализует Logger встраиванием *slog.Logger.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter оборачивает logger; nil заменяется на slog.Default().
// Для создания по конфигурации используйте NewLogger().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{Logger: logger}
}

func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{Logger: s.Logger.With(args...)}
}

func (s *SlogAdapter) Slog() *slog.Logger {
	return s.Logger
}

// discardLogger отбрасывает все записи; With возвращает тот же экземпляр.
type discardLogger struct {
	SlogAdapter
}

func (d *discardLogger) With(...any) Logger { return d }

var nop = &discardLogger{SlogAdapter{Logger: slog.New(slog.DiscardHandler)}}

// NewNopLogger возвращает Logger, который ничего не пишет.
// Используется в тестах и провайдерах по умолчанию.
func NewNopLogger() Logger {
	return nop
}
