// Package pipelines реализует команду pipeline-list.
package pipelines

import (
	"context"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команду pipeline-list.
func RegisterCmd() {
	command.Register(&ListHandler{})
}

// ListHandler выводит страницу конвейеров проекта.
type ListHandler struct{}

func (h *ListHandler) Name() string { return constants.ActPipelineList }

func (h *ListHandler) Description() string {
	return "Конвейеры проекта --project: --scope, --status, --ref, --username, --sort"
}

func (h *ListHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActPipelineList, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	scope := fs.String("scope", "", "running, pending, finished, branches или tags")
	status := fs.String("status", "", "running, pending, success, failed, canceled или skipped")
	fs.String("ref", "", "ветка или тег")
	fs.String("username", "", "автор запуска")
	sort := fs.String("sort", "", "asc или desc")
	page := command.PageFlags(fs)
	if err := command.Parse(cmd, args, "project"); err != nil {
		return nil, err
	}

	opt := gitlab.PipelineListOptions{
		Ref:      shared.OptionalString(fs, "ref"),
		Username: shared.OptionalString(fs, "username"),
	}
	var err error
	if opt.Scope, err = gitlab.ParsePipelineScope(*scope); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.Status, err = gitlab.ParsePipelineStatus(*status); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.Sort, err = gitlab.ParseSortOrder(*sort); err != nil {
		return nil, shared.ArgsError(err)
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}
	projectID, err := shared.ResolveProject(ctx, client, *ref)
	if err != nil {
		return nil, err
	}
	result, err := client.Pipelines.List(ctx, projectID, opt, *page)
	if err != nil {
		return nil, err
	}
	return command.PageResult(constants.ActPipelineList, result), nil
}
