// Package tracing генерирует trace ID команд glctl и настраивает
// OpenTelemetry для span-ов запросов к GitLab API.
//
// Trace ID совпадает по формату с trace.TraceID из OTel (16 байт,
// 32 hex-символа), поэтому один и тот же ID пишется в логи (атрибут
// trace_id) и в вывод команды (metadata.trace_id).
//
//	ctx := tracing.WithTraceID(ctx, tracing.GenerateTraceID())
//	logger.With("trace_id", tracing.TraceIDFromContext(ctx)).Info("Команда запущена")
package tracing

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID возвращает случайный валидный (ненулевой) trace ID.
// Если crypto/rand недоступен, ID строится из времени и счётчика.
func GenerateTraceID() string {
	var id trace.TraceID
	if _, err := rand.Read(id[:]); err != nil || !id.IsValid() {
		return fallbackTraceID()
	}
	return id.String()
}

// fallbackTraceID кодирует время в первые 8 байт и счётчик во вторые.
func fallbackTraceID() string {
	var id trace.TraceID
	binary.BigEndian.PutUint64(id[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint64(id[8:], fallbackCounter.Add(1))
	return id.String()
}
