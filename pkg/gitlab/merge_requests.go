package gitlab

import (
	"context"
	"net/http"
	"time"
)

// MergeRequest: запрос на слияние.
type MergeRequest struct {
	ID                       int        `json:"id"`
	IID                      int        `json:"iid"`
	ProjectID                int        `json:"project_id"`
	Title                    string     `json:"title"`
	Description              string     `json:"description"`
	State                    string     `json:"state"`
	SourceBranch             string     `json:"source_branch"`
	TargetBranch             string     `json:"target_branch"`
	SourceProjectID          int        `json:"source_project_id"`
	TargetProjectID          int        `json:"target_project_id"`
	Labels                   []string   `json:"labels"`
	Author                   *UserBasic `json:"author"`
	Assignee                 *UserBasic `json:"assignee"`
	Milestone                *Milestone `json:"milestone"`
	WorkInProgress           bool       `json:"work_in_progress"`
	MergeWhenBuildSucceeds   bool       `json:"merge_when_build_succeeds"`
	MergeStatus              string     `json:"merge_status"`
	SHA                      string     `json:"sha"`
	MergeCommitSHA           string     `json:"merge_commit_sha"`
	Subscribed               bool       `json:"subscribed"`
	UserNotesCount           int        `json:"user_notes_count"`
	Upvotes                  int        `json:"upvotes"`
	Downvotes                int        `json:"downvotes"`
	ShouldRemoveSourceBranch bool       `json:"should_remove_source_branch"`
	ForceRemoveSourceBranch  bool       `json:"force_remove_source_branch"`
	WebURL                   string     `json:"web_url"`
	CreatedAt                *time.Time `json:"created_at"`
	UpdatedAt                *time.Time `json:"updated_at"`
}

// MergeRequestChanges: merge request вместе с изменёнными файлами.
type MergeRequestChanges struct {
	MergeRequest
	Changes []Diff `json:"changes"`
}

// MergeRequestListOptions: фильтры и сортировка списка merge requests.
type MergeRequestListOptions struct {
	State   MergeRequestState
	OrderBy OrderBy
	Sort    SortOrder
	IIDs    []int
}

// MergeRequestOptions: поля merge request при создании и изменении.
type MergeRequestOptions struct {
	Description        *string
	AssigneeID         *int
	MilestoneID        *int
	Labels             []string
	RemoveSourceBranch *bool
}

// MergeRequestCreate: поля для Create.
type MergeRequestCreate struct {
	// SourceBranch: исходная ветка (обязательный)
	SourceBranch string
	// TargetBranch: целевая ветка (обязательный)
	TargetBranch string
	// Title: заголовок (обязательный)
	Title string
	// TargetProjectID: проект целевой ветки, если отличается (форк)
	TargetProjectID *int
	MergeRequestOptions
}

// MergeRequestUpdate: поля для Update; незаданные не передаются.
type MergeRequestUpdate struct {
	TargetBranch *string
	Title        *string
	StateEvent   StateEvent
	MergeRequestOptions
}

// AcceptOptions: параметры принятия merge request.
type AcceptOptions struct {
	MergeCommitMessage       *string
	ShouldRemoveSourceBranch *bool
	MergedWhenBuildSucceeds  *bool
	SHA                      *string
}

// MergeRequestsAPI: merge requests проекта.
type MergeRequestsAPI struct {
	c *core
}

// List возвращает страницу merge requests проекта.
func (a *MergeRequestsAPI) List(ctx context.Context, projectID int, opt MergeRequestListOptions, page ListOptions) (*PagedResult[MergeRequest], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/merge_requests").
		SegmentInt("projectId", projectID).
		ParamIfEnum("state", opt.State).
		ParamIfEnum("order_by", opt.OrderBy).
		ParamIfEnum("sort", opt.Sort)
	for _, iid := range opt.IIDs {
		req = req.ParamInt("iid[]", iid)
	}
	return getPage[MergeRequest](ctx, a.c, req, page)
}

// Find возвращает merge request по ID.
func (a *MergeRequestsAPI) Find(ctx context.Context, projectID, mergeRequestID int) (*MergeRequest, error) {
	return getOne[MergeRequest](ctx, a.c, a.mr(http.MethodGet, "", projectID, mergeRequestID))
}

// Commits возвращает коммиты merge request.
func (a *MergeRequestsAPI) Commits(ctx context.Context, projectID, mergeRequestID int) ([]Commit, error) {
	return getList[Commit](ctx, a.c, a.mr(http.MethodGet, "/commits", projectID, mergeRequestID))
}

// Changes возвращает merge request с изменёнными файлами.
func (a *MergeRequestsAPI) Changes(ctx context.Context, projectID, mergeRequestID int) (*MergeRequestChanges, error) {
	return getOne[MergeRequestChanges](ctx, a.c, a.mr(http.MethodGet, "/changes", projectID, mergeRequestID))
}

// Create создаёт merge request.
func (a *MergeRequestsAPI) Create(ctx context.Context, projectID int, opt MergeRequestCreate) (*MergeRequest, error) {
	if err := firstError(
		requireString("source_branch", opt.SourceBranch),
		requireString("target_branch", opt.TargetBranch),
		requireString("title", opt.Title),
	); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/merge_requests").
		SegmentInt("projectId", projectID).
		Param("source_branch", opt.SourceBranch).
		Param("target_branch", opt.TargetBranch).
		Param("title", opt.Title).
		ParamIfInt("target_project_id", opt.TargetProjectID)
	return getOne[MergeRequest](ctx, a.c, opt.apply(req))
}

// Update меняет merge request; StateEvent закрывает или переоткрывает его.
func (a *MergeRequestsAPI) Update(ctx context.Context, projectID, mergeRequestID int, opt MergeRequestUpdate) (*MergeRequest, error) {
	req := a.mr(http.MethodPut, "", projectID, mergeRequestID).
		ParamIf("target_branch", opt.TargetBranch).
		ParamIf("title", opt.Title).
		ParamIfEnum("state_event", opt.StateEvent)
	return getOne[MergeRequest](ctx, a.c, opt.apply(req))
}

// Delete удаляет merge request (только администратор или владелец проекта).
func (a *MergeRequestsAPI) Delete(ctx context.Context, projectID, mergeRequestID int) error {
	return send(ctx, a.c, a.mr(http.MethodDelete, "", projectID, mergeRequestID))
}

// Accept принимает merge request или включает слияние после успешной сборки.
func (a *MergeRequestsAPI) Accept(ctx context.Context, projectID, mergeRequestID int, opt AcceptOptions) (*MergeRequest, error) {
	req := a.mr(http.MethodPut, "/merge", projectID, mergeRequestID).
		ParamIf("merge_commit_message", opt.MergeCommitMessage).
		ParamIfBool("should_remove_source_branch", opt.ShouldRemoveSourceBranch).
		ParamIfBool("merged_when_build_succeeds", opt.MergedWhenBuildSucceeds).
		ParamIf("sha", opt.SHA)
	return getOne[MergeRequest](ctx, a.c, req)
}

// CancelMergeWhenBuildSucceeds отменяет отложенное слияние.
func (a *MergeRequestsAPI) CancelMergeWhenBuildSucceeds(ctx context.Context, projectID, mergeRequestID int) (*MergeRequest, error) {
	return getOne[MergeRequest](ctx, a.c, a.mr(http.MethodPost, "/cancel_merge_when_build_succeeds", projectID, mergeRequestID))
}

// ClosesIssues возвращает задачи, которые закроет слияние.
func (a *MergeRequestsAPI) ClosesIssues(ctx context.Context, projectID, mergeRequestID int) ([]Issue, error) {
	return getList[Issue](ctx, a.c, a.mr(http.MethodGet, "/closes_issues", projectID, mergeRequestID))
}

// Subscribe подписывает текущего пользователя на merge request.
func (a *MergeRequestsAPI) Subscribe(ctx context.Context, projectID, mergeRequestID int) (*MergeRequest, error) {
	return getOne[MergeRequest](ctx, a.c, a.mr(http.MethodPost, "/subscription", projectID, mergeRequestID))
}

// Unsubscribe отписывает текущего пользователя от merge request.
func (a *MergeRequestsAPI) Unsubscribe(ctx context.Context, projectID, mergeRequestID int) (*MergeRequest, error) {
	return getOne[MergeRequest](ctx, a.c, a.mr(http.MethodDelete, "/subscription", projectID, mergeRequestID))
}

func (a *MergeRequestsAPI) mr(method, suffix string, projectID, mergeRequestID int) Request {
	return NewRequest(method, "projects/{projectId}/merge_requests/{mergeRequestId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("mergeRequestId", mergeRequestID)
}

func (o MergeRequestOptions) apply(req Request) Request {
	return req.
		ParamIf("description", o.Description).
		ParamIfInt("assignee_id", o.AssigneeID).
		ParamIfInt("milestone_id", o.MilestoneID).
		ParamIfList("labels", o.Labels).
		ParamIfBool("remove_source_branch", o.RemoveSourceBranch)
}
