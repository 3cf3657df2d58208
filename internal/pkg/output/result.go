// Package output форматирует результаты команд glctl в JSON, YAML
// и человекочитаемый текст.
package output

import (
	"time"

	"github.com/Kargones/glclient/internal/pkg/apperrors"
)

// StatusSuccess и StatusError: возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIVersion: версия формата Result.
const APIVersion = "v1"

// Result представляет структурированный результат выполнения команды.
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status" yaml:"status"`

	// Command содержит имя выполненной команды.
	Command string `json:"command" yaml:"command"`

	// Data содержит ответ GitLab (объект или список).
	Data any `json:"data,omitempty" yaml:"data,omitempty"`

	// Page заполняется для постраничных списков.
	Page *PageInfo `json:"page,omitempty" yaml:"page,omitempty"`

	// Error содержит информацию об ошибке (только при status="error").
	Error *ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ErrorInfo содержит код и описание ошибки.
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты!
type ErrorInfo struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// PageInfo описывает страницу списка.
type PageInfo struct {
	Page       int `json:"page" yaml:"page"`
	PerPage    int `json:"per_page" yaml:"per_page"`
	Total      int `json:"total,omitempty" yaml:"total,omitempty"`
	TotalPages int `json:"total_pages,omitempty" yaml:"total_pages,omitempty"`
	NextPage   int `json:"next_page,omitempty" yaml:"next_page,omitempty"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	// DurationMs: время выполнения команды в миллисекундах.
	DurationMs int64 `json:"duration_ms" yaml:"duration_ms"`

	// TraceID: идентификатор трассировки для корреляции с логами.
	TraceID string `json:"trace_id,omitempty" yaml:"trace_id,omitempty"`

	// APIVersion: версия формата Result.
	APIVersion string `json:"api_version" yaml:"api_version"`
}

// NewSuccess создаёт успешный Result.
func NewSuccess(command string, data any) *Result {
	return &Result{Status: StatusSuccess, Command: command, Data: data}
}

// NewError создаёт Result с ошибкой. Код и сообщение берутся из
// apperrors.AppError, в который ошибка приводится через errors.As.
func NewError(command string, err error) *Result {
	appErr := apperrors.ToAppError(err, apperrors.ErrCommandExec)
	info := &ErrorInfo{Code: apperrors.ErrUnknown}
	if appErr != nil {
		info = &ErrorInfo{Code: appErr.Code, Message: appErr.Message}
	}
	return &Result{Status: StatusError, Command: command, Error: info}
}

// WithMetadata заполняет Metadata длительностью и trace ID.
func (r *Result) WithMetadata(duration time.Duration, traceID string) *Result {
	r.Metadata = &Metadata{
		DurationMs: duration.Milliseconds(),
		TraceID:    traceID,
		APIVersion: APIVersion,
	}
	return r
}
