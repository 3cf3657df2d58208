package gitlab

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoggingMiddleware пишет в лог каждый запрос: метод, шаблон ресурса,
// статус и длительность. Токен и параметры не логируются.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		return nil
	}
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (*Response, error) {
			start := time.Now()
			resp, err := next.Execute(ctx, req)
			duration := time.Since(start)
			if err != nil {
				logger.WarnContext(ctx, "запрос к GitLab API завершился ошибкой транспорта",
					slog.String("method", req.Method),
					slog.String("resource", req.Resource),
					slog.Duration("duration", duration),
					slog.String("error", err.Error()),
				)
				return nil, err
			}
			level := slog.LevelDebug
			if !resp.Success() {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "запрос к GitLab API",
				slog.String("method", req.Method),
				slog.String("resource", req.Resource),
				slog.Int("status", resp.StatusCode),
				slog.Duration("duration", duration),
			)
			return resp, nil
		})
	}
}

// RequestRecorder принимает метрики отдельных запросов.
// Реализуется metrics.Collector.
type RequestRecorder interface {
	// RecordRequest записывает завершённый запрос.
	// status равен 0 при ошибке транспорта.
	RecordRequest(method, resource string, status int, duration time.Duration)
}

// MetricsMiddleware передаёт в recorder метод, шаблон ресурса, статус и
// длительность каждого запроса.
func MetricsMiddleware(recorder RequestRecorder) Middleware {
	if recorder == nil {
		return nil
	}
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (*Response, error) {
			start := time.Now()
			resp, err := next.Execute(ctx, req)
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			recorder.RecordRequest(req.Method, req.Resource, status, time.Since(start))
			return resp, err
		})
	}
}

// TracingMiddleware открывает span "<METHOD> <шаблон>" на каждый запрос.
func TracingMiddleware(tracer trace.Tracer) Middleware {
	if tracer == nil {
		return nil
	}
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (*Response, error) {
			ctx, span := tracer.Start(ctx, req.String(),
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("gitlab.resource", req.Resource),
				),
			)
			defer span.End()

			resp, err := next.Execute(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			if !resp.Success() {
				span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(resp.StatusCode))
			}
			return resp, nil
		})
	}
}
