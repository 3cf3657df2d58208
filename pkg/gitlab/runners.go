package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Runner: исполнитель заданий CI.
type Runner struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	IsShared    bool   `json:"is_shared"`
	Name        string `json:"name"`
}

// RunnerDetails: исполнитель с подробностями.
type RunnerDetails struct {
	Runner
	Architecture string          `json:"architecture"`
	Platform     string          `json:"platform"`
	Revision     string          `json:"revision"`
	Version      string          `json:"version"`
	Token        string          `json:"token"`
	TagList      []string        `json:"tag_list"`
	RunUntagged  bool            `json:"run_untagged"`
	Locked       bool            `json:"locked"`
	ContactedAt  *time.Time      `json:"contacted_at"`
	Projects     []RunnerProject `json:"projects"`
}

// RunnerProject: проект, к которому подключён исполнитель.
type RunnerProject struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	NameWithNamespace string `json:"name_with_namespace"`
	Path              string `json:"path"`
	PathWithNamespace string `json:"path_with_namespace"`
}

// RunnerUpdate: поля для Update; незаданные не передаются.
type RunnerUpdate struct {
	Description *string
	Active      *bool
	TagList     []string
	RunUntagged *bool
	Locked      *bool
}

// RunnersAPI: исполнители CI.
type RunnersAPI struct {
	c *core
}

// List возвращает страницу исполнителей, доступных текущему пользователю.
func (a *RunnersAPI) List(ctx context.Context, scope RunnerScope, page ListOptions) (*PagedResult[Runner], error) {
	req := NewRequest(http.MethodGet, "runners").ParamIfEnum("scope", scope)
	return getPage[Runner](ctx, a.c, req, page)
}

// All возвращает страницу всех исполнителей инстанса (только администратор).
func (a *RunnersAPI) All(ctx context.Context, scope RunnerScope, page ListOptions) (*PagedResult[Runner], error) {
	req := NewRequest(http.MethodGet, "runners/all").ParamIfEnum("scope", scope)
	return getPage[Runner](ctx, a.c, req, page)
}

// Find возвращает исполнителя по ID.
func (a *RunnersAPI) Find(ctx context.Context, runnerID int) (*RunnerDetails, error) {
	return getOne[RunnerDetails](ctx, a.c, a.runner(http.MethodGet, runnerID))
}

// Update меняет параметры исполнителя.
func (a *RunnersAPI) Update(ctx context.Context, runnerID int, opt RunnerUpdate) (*RunnerDetails, error) {
	req := a.runner(http.MethodPut, runnerID).
		ParamIf("description", opt.Description).
		ParamIfBool("active", opt.Active).
		ParamIfList("tag_list", opt.TagList).
		ParamIfBool("run_untagged", opt.RunUntagged).
		ParamIfBool("locked", opt.Locked)
	return getOne[RunnerDetails](ctx, a.c, req)
}

// Delete удаляет исполнителя.
func (a *RunnersAPI) Delete(ctx context.Context, runnerID int) (*Runner, error) {
	return getOne[Runner](ctx, a.c, a.runner(http.MethodDelete, runnerID))
}

// ListForProject возвращает страницу исполнителей проекта.
func (a *RunnersAPI) ListForProject(ctx context.Context, projectID int, scope RunnerScope, page ListOptions) (*PagedResult[Runner], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/runners").
		SegmentInt("projectId", projectID).
		ParamIfEnum("scope", scope)
	return getPage[Runner](ctx, a.c, req, page)
}

// EnableForProject подключает специфичного исполнителя к проекту.
func (a *RunnersAPI) EnableForProject(ctx context.Context, projectID, runnerID int) (*Runner, error) {
	req := NewRequest(http.MethodPost, "projects/{projectId}/runners").
		SegmentInt("projectId", projectID).
		ParamInt("runner_id", runnerID)
	return getOne[Runner](ctx, a.c, req)
}

// DisableForProject отключает исполнителя от проекта.
func (a *RunnersAPI) DisableForProject(ctx context.Context, projectID, runnerID int) (*Runner, error) {
	req := NewRequest(http.MethodDelete, "projects/{projectId}/runners/{runnerId}").
		SegmentInt("projectId", projectID).
		SegmentInt("runnerId", runnerID)
	return getOne[Runner](ctx, a.c, req)
}

func (a *RunnersAPI) runner(method string, runnerID int) Request {
	return NewRequest(method, "runners/{runnerId}").
		SegmentInt("runnerId", runnerID)
}
