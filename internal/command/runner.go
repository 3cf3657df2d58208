package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/metrics"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/internal/pkg/tracing"
)

// Runner выполняет команду из реестра: открывает span, записывает метрики,
// выводит Result в выбранном формате и возвращает код завершения процесса.
type Runner struct {
	Env     *Env
	Metrics metrics.Collector
	Tracer  trace.Tracer
	Writer  output.Writer
	Stdout  io.Writer
}

// Run выполняет команду name с аргументами args.
func (r *Runner) Run(ctx context.Context, name string, args []string) int {
	start := time.Now()
	traceID := tracing.TraceIDFromContext(ctx)
	logger := r.Env.Logger.With(slog.String("command", name), slog.String("trace_id", traceID))

	ctx, span := r.Tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("command", name),
		attribute.String("trace_id", traceID),
	))
	defer span.End()

	r.Metrics.RecordCommandStart(name)
	logger.Debug("Выполнение команды", slog.Any("args", redactArgs(args)))

	result, err := r.execute(ctx, name, args)
	duration := time.Since(start)

	exitCode := constants.ExitOK
	code := ""
	if err != nil {
		result = output.NewError(name, err)
		code = result.Error.Code
		exitCode = exitCodeFor(code)
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		logger.Error("Ошибка выполнения команды",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}
	result.WithMetadata(duration, traceID)

	r.Metrics.RecordCommandEnd(name, duration, code)
	_ = r.Metrics.Push(ctx) // ошибки push логируются внутри

	if writeErr := r.Writer.Write(r.Stdout, result); writeErr != nil {
		logger.Error("Ошибка вывода результата",
			slog.String("code", apperrors.ErrOutputFormat),
			slog.String("error", writeErr.Error()),
		)
		return constants.ExitOutputFail
	}
	return exitCode
}

func (r *Runner) execute(ctx context.Context, name string, args []string) (*output.Result, error) {
	h, ok := Get(name)
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCommandNotFound,
			fmt.Sprintf("неизвестная команда %q, список команд: %s help", name, constants.AppName), nil)
	}
	ctx, failures := TrackFailures(ctx)
	result, err := h.Execute(ctx, r.Env, args)
	if failure := failures.First(); failure != nil && (err == nil || errors.Is(err, ErrNoData)) {
		return nil, failure.AppError()
	}
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = output.NewSuccess(name, nil)
	}
	return result, nil
}

// exitCodeFor сопоставляет код ошибки коду завершения процесса.
func exitCodeFor(code string) int {
	switch {
	case code == apperrors.ErrCommandNotFound, code == apperrors.ErrCommandArgs:
		return constants.ExitUsage
	case strings.HasPrefix(code, "CONFIG."):
		return constants.ExitConfig
	default:
		return constants.ExitCommand
	}
}

// redactArgs скрывает значения флагов с секретами перед логированием.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	hideNext := false
	for i, arg := range args {
		if hideNext {
			out[i] = "***"
			hideNext = false
			continue
		}
		out[i] = arg
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || !isSecretFlag(name) {
			continue
		}
		if hasValue {
			out[i] = arg[:strings.Index(arg, "=")+1] + "***"
		} else {
			hideNext = true
		}
	}
	return out
}

func isSecretFlag(name string) bool {
	switch strings.ToLower(name) {
	case "password", "token", "private-token":
		return true
	}
	return false
}
