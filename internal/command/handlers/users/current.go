// Package users реализует команду user-current.
package users

import (
	"context"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
)

// RegisterCmd регистрирует команду user-current.
func RegisterCmd() {
	command.Register(&CurrentHandler{})
}

// CurrentHandler выводит пользователя, которому принадлежит private token.
type CurrentHandler struct{}

func (h *CurrentHandler) Name() string { return constants.ActUserCurrent }

func (h *CurrentHandler) Description() string {
	return "Текущий пользователь (владелец токена)"
}

func (h *CurrentHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActUserCurrent, h.Description())
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}
	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}
	user, err := client.Users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, command.NoData("текущий пользователь")
	}
	return output.NewSuccess(constants.ActUserCurrent, user), nil
}
