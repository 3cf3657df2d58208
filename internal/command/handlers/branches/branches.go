// Package branches реализует команды branch-list, branch-create и branch-delete.
package branches

import (
	"context"
	"log/slog"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
)

// RegisterCmd регистрирует команды веток.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&CreateHandler{})
	command.Register(&DeleteHandler{})
}

// ListHandler выводит все ветки проекта.
type ListHandler struct{}

func (h *ListHandler) Name() string { return constants.ActBranchList }

func (h *ListHandler) Description() string { return "Ветки проекта --project" }

func (h *ListHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActBranchList, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	if err := command.Parse(cmd, args, "project"); err != nil {
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
	branches, err := client.Branches.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return output.NewSuccess(constants.ActBranchList, branches), nil
}

// CreateHandler создаёт ветку от ref.
type CreateHandler struct{}

func (h *CreateHandler) Name() string { return constants.ActBranchCreate }

func (h *CreateHandler) Description() string {
	return "Создание ветки --branch от --ref (ветка, тег или SHA) в проекте --project"
}

func (h *CreateHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActBranchCreate, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	branch := fs.String("branch", "", "имя новой ветки")
	from := fs.String("ref", "", "исходная ветка, тег или SHA")
	if err := command.Parse(cmd, args, "project", "branch", "ref"); err != nil {
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
	created, err := client.Branches.Create(ctx, projectID, *branch, *from)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, command.NoData("ветка " + *branch)
	}
	env.Logger.Info("Ветка создана",
		slog.Int("project_id", projectID),
		slog.String("branch", *branch),
		slog.String("ref", *from),
	)
	return output.NewSuccess(constants.ActBranchCreate, created), nil
}

// DeleteHandler удаляет ветку.
type DeleteHandler struct{}

func (h *DeleteHandler) Name() string { return constants.ActBranchDelete }

func (h *DeleteHandler) Description() string {
	return "Удаление ветки --branch в проекте --project"
}

// deleted: результат удаления ветки.
type deleted struct {
	ProjectID int    `json:"project_id" yaml:"project_id"`
	Branch    string `json:"branch" yaml:"branch"`
}

func (h *DeleteHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActBranchDelete, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	branch := fs.String("branch", "", "имя ветки")
	if err := command.Parse(cmd, args, "project", "branch"); err != nil {
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
	if err := client.Branches.Delete(ctx, projectID, *branch); err != nil {
		return nil, err
	}
	env.Logger.Info("Ветка удалена", slog.Int("project_id", projectID), slog.String("branch", *branch))
	return output.NewSuccess(constants.ActBranchDelete, deleted{ProjectID: projectID, Branch: *branch}), nil
}
