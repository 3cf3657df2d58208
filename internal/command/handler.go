// Package command содержит интерфейс команд glctl, реестр обработчиков
// и Runner, который выполняет команду и выводит её результат.
package command

import (
	"context"

	"github.com/Kargones/glclient/internal/config"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// Handler определяет интерфейс обработчика команды.
// Обработчики регистрируются явно через handlers.RegisterAll().
type Handler interface {
	// Name возвращает имя команды (константа из internal/constants).
	Name() string

	// Description возвращает описание команды для вывода в help.
	Description() string

	// Execute разбирает аргументы, выполняет команду и возвращает результат.
	// Ошибка превращается Runner-ом в Result со статусом error.
	Execute(ctx context.Context, env *Env, args []string) (*output.Result, error)
}

// Env: зависимости, доступные обработчикам.
type Env struct {
	Config *config.Config
	Logger logging.Logger

	// Client равен nil, если адрес сервера не задан.
	Client *gitlab.Client
}

// GitLab возвращает клиент или ошибку конфигурации, если GL_BASE_URL не задан.
func (e *Env) GitLab() (*gitlab.Client, error) {
	if e == nil || e.Client == nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate,
			"не задан адрес сервера GitLab (GL_BASE_URL или gitlab.baseUrl)", nil)
	}
	return e.Client, nil
}
