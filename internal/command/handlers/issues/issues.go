// Package issues реализует команды issue-list и issue-create.
package issues

import (
	"context"
	"log/slog"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команды задач.
func RegisterCmd() {
	command.Register(&ListHandler{})
	command.Register(&CreateHandler{})
}

// ListHandler выводит страницу задач проекта или, без -project, всех задач пользователя.
type ListHandler struct{}

func (h *ListHandler) Name() string { return constants.ActIssueList }

func (h *ListHandler) Description() string {
	return "Задачи проекта --project (или все задачи пользователя): --state, --labels, --milestone, --order-by, --sort"
}

func (h *ListHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActIssueList, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	state := fs.String("state", "", "opened, closed или all")
	labels := fs.String("labels", "", "метки через запятую")
	fs.String("milestone", "", "название этапа")
	orderBy := fs.String("order-by", "", "created_at или updated_at")
	sort := fs.String("sort", "", "asc или desc")
	page := command.PageFlags(fs)
	if err := command.Parse(cmd, args); err != nil {
		return nil, err
	}

	opt := gitlab.IssueListOptions{
		Labels:    shared.SplitList(*labels),
		Milestone: shared.OptionalString(fs, "milestone"),
	}
	var err error
	if opt.State, err = gitlab.ParseIssueState(*state); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.OrderBy, err = gitlab.ParseOrderBy(*orderBy); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.Sort, err = gitlab.ParseSortOrder(*sort); err != nil {
		return nil, shared.ArgsError(err)
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}

	var result *gitlab.PagedResult[gitlab.Issue]
	if *ref == "" {
		result, err = client.Issues.ListAll(ctx, opt, *page)
	} else {
		projectID, resolveErr := shared.ResolveProject(ctx, client, *ref)
		if resolveErr != nil {
			return nil, resolveErr
		}
		result, err = client.Issues.ListForProject(ctx, projectID, opt, *page)
	}
	if err != nil {
		return nil, err
	}
	return command.PageResult(constants.ActIssueList, result), nil
}

// CreateHandler создаёт задачу.
type CreateHandler struct{}

func (h *CreateHandler) Name() string { return constants.ActIssueCreate }

func (h *CreateHandler) Description() string {
	return "Создание задачи --title в проекте --project: --description, --labels, --assignee-id, --confidential"
}

func (h *CreateHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActIssueCreate, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	title := fs.String("title", "", "заголовок задачи")
	fs.String("description", "", "описание")
	labels := fs.String("labels", "", "метки через запятую")
	fs.Int("assignee-id", 0, "ID исполнителя")
	fs.Bool("confidential", false, "конфиденциальная задача")
	if err := command.Parse(cmd, args, "project", "title"); err != nil {
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

	issue, err := client.Issues.Create(ctx, projectID, *title, gitlab.IssueOptions{
		Description:  shared.OptionalString(fs, "description"),
		Confidential: shared.OptionalBool(fs, "confidential"),
		AssigneeID:   shared.OptionalInt(fs, "assignee-id"),
		Labels:       shared.SplitList(*labels),
	})
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, command.NoData("задача " + *title)
	}
	env.Logger.Info("Задача создана", slog.Int("project_id", projectID), slog.Int("iid", issue.IID))
	return output.NewSuccess(constants.ActIssueCreate, issue), nil
}
