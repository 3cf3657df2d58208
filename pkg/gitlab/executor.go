package gitlab

import (
	"context"
	"net/http"
)

// PrivateTokenHeader: заголовок, которым GitLab аутентифицирует запросы.
const PrivateTokenHeader = "PRIVATE-TOKEN"

// Executor исполняет описание запроса и возвращает сырой ответ.
// Ответ со статусом вне 2xx не является ошибкой Executor: его разбирает клиент.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// ExecutorFunc: адаптер функции к интерфейсу Executor.
type ExecutorFunc func(ctx context.Context, req Request) (*Response, error)

// Execute вызывает f(ctx, req).
func (f ExecutorFunc) Execute(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Middleware оборачивает Executor дополнительным поведением.
type Middleware func(next Executor) Executor

// Chain оборачивает exec цепочкой middleware.
// Первый middleware в списке получает запрос первым.
func Chain(exec Executor, mws ...Middleware) Executor {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			exec = mws[i](exec)
		}
	}
	return exec
}

// AuthMiddleware добавляет заголовок PRIVATE-TOKEN ко всем запросам,
// кроме помеченных Anonymous(). При пустом токене запрос не меняется.
func AuthMiddleware(token string) Middleware {
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, req Request) (*Response, error) {
			if token != "" && !req.Unauthenticated {
				req = req.Header(PrivateTokenHeader, token)
			}
			return next.Execute(ctx, req)
		})
	}
}

// Response: сырой ответ GitLab API.
type Response struct {
	// StatusCode: HTTP статус код
	StatusCode int
	// Header: заголовки ответа
	Header http.Header
	// Body: тело ответа целиком
	Body []byte
}

// Success сообщает, находится ли статус в диапазоне 2xx.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
