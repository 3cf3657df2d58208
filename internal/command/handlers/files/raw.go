// Package files реализует команду file-raw.
package files

import (
	"context"
	"unicode/utf8"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
)

// RegisterCmd регистрирует команду file-raw.
func RegisterCmd() {
	command.Register(&RawHandler{})
}

// Data: содержимое файла. Бинарное содержимое не выводится, только размер.
type Data struct {
	ProjectID int    `json:"project_id" yaml:"project_id"`
	Path      string `json:"path" yaml:"path"`
	Ref       string `json:"ref" yaml:"ref"`
	Size      int    `json:"size" yaml:"size"`
	Binary    bool   `json:"binary" yaml:"binary"`
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`
}

// RawHandler выводит содержимое файла репозитория на ревизии.
type RawHandler struct{}

func (h *RawHandler) Name() string { return constants.ActFileRaw }

func (h *RawHandler) Description() string {
	return "Содержимое файла --path на ревизии --ref (по умолчанию master) проекта --project"
}

func (h *RawHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActFileRaw, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	path := fs.String("path", "", "путь к файлу в репозитории")
	sha := fs.String("ref", "master", "ветка, тег или SHA")
	if err := command.Parse(cmd, args, "project", "path"); err != nil {
		return nil, err
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}
	projectID, err := shared.ResolveProject(ctx, client, *ref)
	if err != nil {
		return nil, err
	}
	content, err := client.Repository.RawFile(ctx, projectID, *sha, *path)
	if err != nil {
		return nil, err
	}

	data := &Data{
		ProjectID: projectID,
		Path:      *path,
		Ref:       *sha,
		Size:      len(content),
		Binary:    !utf8.Valid(content),
	}
	if !data.Binary {
		data.Content = string(content)
	}
	return output.NewSuccess(constants.ActFileRaw, data), nil
}
