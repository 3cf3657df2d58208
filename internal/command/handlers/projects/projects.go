// Package projects реализует команды project-get и project-list.
package projects

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команды проектов.
func RegisterCmd() {
	command.Register(&GetHandler{})
	command.Register(&ListHandler{})
}

// GetHandler выводит проект по ID или пути.
type GetHandler struct{}

func (h *GetHandler) Name() string { return constants.ActProjectGet }

func (h *GetHandler) Description() string {
	return "Проект по --project (ID или namespace/project)"
}

func (h *GetHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActProjectGet, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	if err := command.Parse(cmd, args, "project"); err != nil {
		return nil, err
	}
	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}

	var project *gitlab.Project
	if id, convErr := strconv.Atoi(*ref); convErr == nil {
		project, err = client.Projects.Find(ctx, id)
	} else {
		project, err = client.Projects.FindByPath(ctx, *ref)
	}
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, command.NoData("проект " + *ref)
	}
	return output.NewSuccess(constants.ActProjectGet, project), nil
}

// Области видимости списка проектов.
const (
	scopeMember  = "member"
	scopeOwned   = "owned"
	scopeStarred = "starred"
	scopeAll     = "all"
)

// ListHandler выводит страницу списка проектов.
type ListHandler struct{}

func (h *ListHandler) Name() string { return constants.ActProjectList }

func (h *ListHandler) Description() string {
	return "Список проектов: --scope member|owned|starred|all, --search, --visibility, --order-by, --sort"
}

func (h *ListHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActProjectList, h.Description())
	fs := cmd.Flags()
	scope := fs.String("scope", scopeMember, "member, owned, starred или all")
	fs.String("search", "", "подстрока имени")
	fs.Bool("archived", false, "только архивные (false: только активные)")
	fs.Bool("simple", false, "сокращённое представление проектов")
	visibility := fs.String("visibility", "", "private, internal или public")
	orderBy := fs.String("order-by", "", "id, name, path, created_at, last_activity_at")
	sort := fs.String("sort", "", "asc или desc")
	page := command.PageFlags(fs)
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}

	opt := gitlab.ProjectListOptions{
		Search:   shared.OptionalString(fs, "search"),
		Archived: shared.OptionalBool(fs, "archived"),
		Simple:   shared.OptionalBool(fs, "simple"),
	}
	var err error
	if opt.Visibility, err = gitlab.ParseVisibility(*visibility); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.OrderBy, err = gitlab.ParseProjectOrderBy(*orderBy); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.Sort, err = gitlab.ParseSortOrder(*sort); err != nil {
		return nil, shared.ArgsError(err)
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}

	var list func(context.Context, gitlab.ProjectListOptions, gitlab.ListOptions) (*gitlab.PagedResult[gitlab.Project], error)
	switch *scope {
	case scopeMember:
		list = client.Projects.List
	case scopeOwned:
		list = client.Projects.Owned
	case scopeStarred:
		list = client.Projects.Starred
	case scopeAll:
		list = client.Projects.All
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCommandArgs,
			fmt.Sprintf("неизвестная область --scope %q", *scope), nil)
	}

	result, err := list(ctx, opt, *page)
	if err != nil {
		return nil, err
	}
	return command.PageResult(constants.ActProjectList, result), nil
}
