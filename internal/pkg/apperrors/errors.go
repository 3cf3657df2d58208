// Package apperrors предоставляет структурированные ошибки glctl.
// Переименован из errors чтобы избежать конфликта со стандартной библиотекой.
package apperrors

import (
	"errors"
	"fmt"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
const (
	// Категория CONFIG: ошибки загрузки и проверки конфигурации.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Категория COMMAND: ошибки разбора аргументов и выполнения команд.
	ErrCommandNotFound = "COMMAND.NOT_FOUND"
	ErrCommandArgs     = "COMMAND.INVALID_ARGS"
	ErrCommandExec     = "COMMAND.EXEC_FAILED"

	// Категория GITLAB: ответы сервера со статусом вне 2xx.
	// Код GITLAB.VALIDATION_FAILED несёт gitlab.ValidationError.
	ErrGitLabAPI      = "GITLAB.API_FAILED"
	ErrGitLabAuth     = "GITLAB.AUTH_FAILED"
	ErrGitLabNotFound = "GITLAB.NOT_FOUND"

	// Категория OUTPUT: ошибки форматирования вывода.
	ErrOutputFormat = "OUTPUT.FORMAT_FAILED"

	// ErrUnknown: код для ошибок без собственного кода.
	ErrUnknown = "UNKNOWN"
)

// Coded реализуется ошибками, которые несут машиночитаемый код.
type Coded interface {
	error
	ErrorCode() string
}

// AppError представляет структурированную ошибку приложения.
// Реализует error interface и поддерживает wrapping через Unwrap().
//
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты (пароли, токены).
//
// Пример использования:
//
//	return apperrors.NewAppError(apperrors.ErrConfigLoad,
//	    "не удалось прочитать файл конфигурации",
//	    err)
type AppError struct {
	// Code: машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message: человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Cause: wrapped оригинальная ошибка.
	// Не сериализуется в JSON.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ErrorCode реализует Coded.
func (e *AppError) ErrorCode() string {
	return e.Code
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf возвращает код первой ошибки в цепочке, реализующей Coded.
// Для nil возвращает пустую строку, для ошибок без кода ErrUnknown.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ErrUnknown
}

// ToAppError приводит ошибку к AppError. AppError в цепочке возвращается
// как есть, ошибка с Coded получает собственный код, остальные
// оборачиваются с кодом fallbackCode.
func ToAppError(err error, fallbackCode string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var coded Coded
	if errors.As(err, &coded) {
		return NewAppError(coded.ErrorCode(), err.Error(), err)
	}
	return NewAppError(fallbackCode, err.Error(), err)
}
