// Package login реализует команду login: получение private token по
// логину (или email) и паролю.
package login

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команду login.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Data: результат входа.
type Data struct {
	ID           int    `json:"id" yaml:"id"`
	Username     string `json:"username" yaml:"username"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	PrivateToken string `json:"private_token" yaml:"private_token"`
}

// Handler обрабатывает команду login.
// Пароль читается из GL_PASSWORD, чтобы не попадать в историю shell и список процессов.
type Handler struct {
	// lookupEnv подменяется в тестах.
	lookupEnv func(string) (string, bool)
}

func (h *Handler) Name() string { return constants.ActLogin }

func (h *Handler) Description() string {
	return "Вход по --login или --email и паролю из GL_PASSWORD; выводит private token"
}

// Execute выполняет вход. Запрос session отправляется без PRIVATE-TOKEN.
func (h *Handler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActLogin, h.Description())
	fs := cmd.Flags()
	login := fs.String("login", "", "имя пользователя")
	email := fs.String("email", "", "email пользователя")
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}
	if (*login == "") == (*email == "") {
		return nil, apperrors.NewAppError(apperrors.ErrCommandArgs,
			"нужно задать ровно один из флагов --login или --email", nil)
	}

	lookup := h.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	password, ok := lookup(constants.EnvPassword)
	if !ok || password == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCommandArgs,
			"пароль не задан: установите "+constants.EnvPassword, nil)
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}

	var session *gitlab.Session
	if *login != "" {
		session, err = client.Session.Login(ctx, *login, password)
	} else {
		session, err = client.Session.LoginWithEmail(ctx, *email, password)
	}
	if err != nil {
		return nil, err
	}
	if session == nil || session.PrivateToken == "" {
		return nil, apperrors.NewAppError(apperrors.ErrGitLabAuth, "сервер не вернул private token", command.ErrNoData)
	}

	env.Logger.Info("Вход выполнен", slog.String("username", session.Username))
	return output.NewSuccess(constants.ActLogin, &Data{
		ID:           session.ID,
		Username:     session.Username,
		Email:        session.Email,
		PrivateToken: session.PrivateToken,
	}), nil
}
