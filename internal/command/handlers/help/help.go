// Package help реализует команду help: список зарегистрированных команд.
package help

import (
	"context"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
)

// RegisterCmd регистрирует команду help.
func RegisterCmd() {
	command.Register(&Handler{})
}

// CommandInfo описывает команду в выводе help.
type CommandInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Data: результат команды help.
type Data struct {
	Usage    string        `json:"usage" yaml:"usage"`
	Commands []CommandInfo `json:"commands" yaml:"commands"`
}

// Handler обрабатывает команду help.
type Handler struct{}

func (h *Handler) Name() string { return constants.ActHelp }

func (h *Handler) Description() string { return "Список доступных команд" }

// Execute собирает описания всех команд реестра в алфавитном порядке.
func (h *Handler) Execute(_ context.Context, _ *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActHelp, h.Description())
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}

	all := command.All()
	data := Data{
		Usage:    constants.AppName + " <команда> [флаги]",
		Commands: make([]CommandInfo, 0, len(all)),
	}
	for _, name := range command.Names() {
		data.Commands = append(data.Commands, CommandInfo{Name: name, Description: all[name].Description()})
	}
	return output.NewSuccess(constants.ActHelp, data), nil
}
