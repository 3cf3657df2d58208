// Package mergerequests реализует команду mr-list.
package mergerequests

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/command/handlers/shared"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// RegisterCmd регистрирует команду mr-list.
func RegisterCmd() {
	command.Register(&ListHandler{})
}

// ListHandler выводит страницу merge request-ов проекта.
type ListHandler struct{}

func (h *ListHandler) Name() string { return constants.ActMRList }

func (h *ListHandler) Description() string {
	return "Merge request-ы проекта --project: --state, --iid (через запятую), --order-by, --sort"
}

func (h *ListHandler) Execute(ctx context.Context, env *command.Env, args []string) (*output.Result, error) {
	cmd := command.NewCommand(constants.ActMRList, h.Description())
	fs := cmd.Flags()
	ref := shared.ProjectFlag(fs)
	state := fs.String("state", "", "opened, closed, merged или all")
	iids := fs.String("iid", "", "внутренние номера через запятую")
	orderBy := fs.String("order-by", "", "created_at или updated_at")
	sort := fs.String("sort", "", "asc или desc")
	page := command.PageFlags(fs)
	if err := command.Parse(cmd, args, "project"); err != nil {
		return nil, err
	}

	var opt gitlab.MergeRequestListOptions
	var err error
	if opt.State, err = gitlab.ParseMergeRequestState(*state); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.OrderBy, err = gitlab.ParseOrderBy(*orderBy); err != nil {
		return nil, shared.ArgsError(err)
	}
	if opt.Sort, err = gitlab.ParseSortOrder(*sort); err != nil {
		return nil, shared.ArgsError(err)
	}
	for _, s := range shared.SplitList(*iids) {
		iid, convErr := strconv.Atoi(s)
		if convErr != nil {
			return nil, shared.ArgsError(fmt.Errorf("--iid: некорректный номер %q", s))
		}
		opt.IIDs = append(opt.IIDs, iid)
	}

	client, err := env.GitLab()
	if err != nil {
		return nil, err
	}
	projectID, err := shared.ResolveProject(ctx, client, *ref)
	if err != nil {
		return nil, err
	}
	result, err := client.MergeRequests.List(ctx, projectID, opt, *page)
	if err != nil {
		return nil, err
	}
	return command.PageResult(constants.ActMRList, result), nil
}
