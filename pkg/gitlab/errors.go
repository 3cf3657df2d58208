package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrGitLabValidation: код ошибки недопустимого аргумента метода, запрос не отправлялся.
const ErrGitLabValidation = "GITLAB.VALIDATION_FAILED"

// ErrorMessage извлекает текст ошибки из тела ответа GitLab.
// Сервер отдаёт {"message": ...} (строка или объект с ошибками полей)
// либо {"error": "..."}. Поле со значением null считается отсутствующим.
func (r *Response) ErrorMessage() string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   *string         `json:"error"`
	}
	if len(r.Body) > 0 && json.Unmarshal(r.Body, &payload) == nil {
		if msg := strings.TrimSpace(string(payload.Message)); msg != "" && msg != "null" {
			var s string
			if json.Unmarshal(payload.Message, &s) == nil {
				return s
			}
			return msg
		}
		if payload.Error != nil && *payload.Error != "" {
			return *payload.Error
		}
	}
	if text := strings.TrimSpace(string(r.Body)); text != "" && len(text) <= 512 {
		return text
	}
	return http.StatusText(r.StatusCode)
}

// ValidationError представляет недопустимый аргумент метода ресурса.
// Возвращается до отправки запроса.
type ValidationError struct {
	// Field: имя аргумента
	Field string
	// Message: описание ошибки
	Message string
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("поле '%s': %s", e.Field, e.Message)
}

// ErrorCode возвращает машиночитаемый код ошибки валидации.
func (e *ValidationError) ErrorCode() string {
	return ErrGitLabValidation
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// requireString возвращает ValidationError для пустой строки.
func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "значение не может быть пустым")
	}
	return nil
}

// firstError возвращает первую ненулевую ошибку.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации.
// Поддерживает wrapped errors через errors.As.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
