package gitlab

import (
	"context"
	"net/http"
	"time"
)

// MilestoneListOptions: фильтры списка вех.
type MilestoneListOptions struct {
	IID   *int
	State MilestoneState
}

// MilestoneOptions: поля вехи при создании и изменении.
type MilestoneOptions struct {
	Description *string
	DueDate     *time.Time
}

// MilestoneUpdate: поля для Update; незаданные не передаются.
type MilestoneUpdate struct {
	Title      *string
	StateEvent StateEvent
	MilestoneOptions
}

// MilestonesAPI: вехи проекта.
type MilestonesAPI struct {
	c *core
}

// List возвращает страницу вех проекта.
func (a *MilestonesAPI) List(ctx context.Context, projectID int, opt MilestoneListOptions, page ListOptions) (*PagedResult[Milestone], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/milestones").
		SegmentInt("projectId", projectID).
		ParamIfInt("iid", opt.IID).
		ParamIfEnum("state", opt.State)
	return getPage[Milestone](ctx, a.c, req, page)
}

// Find возвращает веху по ID.
func (a *MilestonesAPI) Find(ctx context.Context, projectID, milestoneID int) (*Milestone, error) {
	return getOne[Milestone](ctx, a.c, a.milestone(http.MethodGet, "", projectID, milestoneID))
}

// Create создаёт веху.
func (a *MilestonesAPI) Create(ctx context.Context, projectID int, title string, opt MilestoneOptions) (*Milestone, error) {
	if err := requireString("title", title); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/milestones").
		SegmentInt("projectId", projectID).
		Param("title", title)
	return getOne[Milestone](ctx, a.c, opt.apply(req))
}

// Update меняет веху; StateEvent закрывает или активирует её.
func (a *MilestonesAPI) Update(ctx context.Context, projectID, milestoneID int, opt MilestoneUpdate) (*Milestone, error) {
	req := a.milestone(http.MethodPut, "", projectID, milestoneID).
		ParamIf("title", opt.Title).
		ParamIfEnum("state_event", opt.StateEvent)
	return getOne[Milestone](ctx, a.c, opt.apply(req))
}

// Issues возвращает задачи вехи.
func (a *MilestonesAPI) Issues(ctx context.Context, projectID, milestoneID int) ([]Issue, error) {
	return getList[Issue](ctx, a.c, a.milestone(http.MethodGet, "/issues", projectID, milestoneID))
}

// MergeRequests возвращает merge requests вехи.
func (a *MilestonesAPI) MergeRequests(ctx context.Context, projectID, milestoneID int) ([]MergeRequest, error) {
	return getList[MergeRequest](ctx, a.c, a.milestone(http.MethodGet, "/merge_requests", projectID, milestoneID))
}

func (a *MilestonesAPI) milestone(method, suffix string, projectID, milestoneID int) Request {
	return NewRequest(method, "projects/{projectId}/milestones/{milestoneId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("milestoneId", milestoneID)
}

func (o MilestoneOptions) apply(req Request) Request {
	return req.
		ParamIf("description", o.Description).
		ParamIfDate("due_date", o.DueDate)
}

// NamespacesAPI: пространства имён.
type NamespacesAPI struct {
	c *core
}

// List возвращает страницу пространств имён, опционально отфильтрованных по search.
func (a *NamespacesAPI) List(ctx context.Context, search *string, page ListOptions) (*PagedResult[Namespace], error) {
	req := NewRequest(http.MethodGet, "namespaces").
		ParamIf("search", search)
	return getPage[Namespace](ctx, a.c, req, page)
}
