// Package version реализует команду version: версия glctl и, по флагу
// --server, версия сервера GitLab.
package version

import (
	"context"
	"runtime"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команду version.
func RegisterCmd() {
	command.Register(&Handler{})
}

// Data содержит информацию о версии.
type Data struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	GoVersion string `json:"go_version" yaml:"go_version"`

	// APIVersion: версия REST API, с которой работает клиент.
	APIVersion string `json:"api_version" yaml:"api_version"`

	// Server заполняется при --server.
	Server *gitlab.Version `json:"server,omitempty" yaml:"server,omitempty"`
}

// Handler обрабатывает команду version.
type Handler struct{}

func (h *Handler) Name() string { return constants.ActVersion }

func (h *Handler) Description() string {
	return "Версия glctl; с --server также версия сервера GitLab"
}

// Execute выполняет команду version.
func (h *Handler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActVersion, h.Description())
	fs := cmd.Flags()
	server := fs.Bool("server", false, "запросить версию сервера")
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}

	data := &Data{
		Version:    constants.Version,
		Commit:     constants.Commit,
		GoVersion:  runtime.Version(),
		APIVersion: gitlab.DefaultAPIVersion,
	}
	if env != nil && env.Config != nil {
		data.APIVersion = env.Config.GitLab.APIVersion
	}

	if *server {
		client, err := env.GitLab()
		if err != nil {
			return nil, err
		}
		v, err := client.Version.Get(ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, command.NoData("версия сервера")
		}
		data.Server = v
	}
	return output.NewSuccess(constants.ActVersion, data), nil
}
