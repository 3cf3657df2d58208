package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// Failure: ответ GitLab со статусом вне 2xx, полученный во время команды.
// Клиент сводит такой ответ к пустому результату, поэтому статус
// сохраняется здесь, чтобы команда завершилась с понятным кодом.
type Failure struct {
	StatusCode int
	Method     string
	Resource   string
	Message    string
}

// Code сопоставляет статус коду ошибки категории GITLAB.
func (f *Failure) Code() string {
	switch f.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrGitLabNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrGitLabAuth
	default:
		return apperrors.ErrGitLabAPI
	}
}

// AppError превращает Failure в ошибку команды.
func (f *Failure) AppError() *apperrors.AppError {
	return apperrors.NewAppError(f.Code(),
		fmt.Sprintf("%s %s: %d %s", f.Method, f.Resource, f.StatusCode, f.Message), nil)
}

// ErrNoData: сервер не вернул данных. Runner заменяет ошибку с этой причиной
// описанием неудачного ответа, если он был записан.
var ErrNoData = errors.New("сервер не вернул данных")

// NoData возвращает ошибку пустого ответа для объекта what.
func NoData(what string) error {
	return apperrors.NewAppError(apperrors.ErrGitLabNotFound, "нет данных: "+what, ErrNoData)
}

type failureKey struct{}

// Failures хранит первую неудачу команды.
type Failures struct {
	mu    sync.Mutex
	first *Failure
}

func (s *Failures) record(f *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.first == nil {
		s.first = f
	}
}

// First возвращает первую записанную неудачу или nil.
func (s *Failures) First() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.first
}

// TrackFailures возвращает контекст, в котором FailureMiddleware запоминает
// неудачные ответы.
func TrackFailures(ctx context.Context) (context.Context, *Failures) {
	slot := &Failures{}
	return context.WithValue(ctx, failureKey{}, slot), slot
}

// FailureMiddleware записывает ответы вне 2xx в контекст команды.
// Вне Runner-а (контекст без слота) ответы проходят без изменений.
func FailureMiddleware() gitlab.Middleware {
	return func(next gitlab.Executor) gitlab.Executor {
		return gitlab.ExecutorFunc(func(ctx context.Context, req gitlab.Request) (*gitlab.Response, error) {
			resp, err := next.Execute(ctx, req)
			if err != nil || resp == nil || resp.Success() {
				return resp, err
			}
			if slot, ok := ctx.Value(failureKey{}).(*Failures); ok {
				slot.record(&Failure{
					StatusCode: resp.StatusCode,
					Method:     req.Method,
					Resource:   req.Resource,
					Message:    resp.ErrorMessage(),
				})
			}
			return resp, nil
		})
	}
}
