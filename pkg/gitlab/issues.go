package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Issue: задача проекта.
type Issue struct {
	ID             int        `json:"id"`
	IID            int        `json:"iid"`
	ProjectID      int        `json:"project_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	State          string     `json:"state"`
	Labels         []string   `json:"labels"`
	Milestone      *Milestone `json:"milestone"`
	Assignee       *UserBasic `json:"assignee"`
	Author         *UserBasic `json:"author"`
	Subscribed     bool       `json:"subscribed"`
	UserNotesCount int        `json:"user_notes_count"`
	Upvotes        int        `json:"upvotes"`
	Downvotes      int        `json:"downvotes"`
	DueDate        string     `json:"due_date"`
	Confidential   bool       `json:"confidential"`
	WebURL         string     `json:"web_url"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// IssueListOptions: фильтры и сортировка списков задач.
type IssueListOptions struct {
	State     IssueState
	Labels    []string
	Milestone *string
	OrderBy   OrderBy
	Sort      SortOrder
}

// IssueOptions: поля задачи при создании и изменении.
type IssueOptions struct {
	Description  *string
	Confidential *bool
	AssigneeID   *int
	MilestoneID  *int
	Labels       []string
	DueDate      *time.Time
}

// IssueUpdate: поля для Update; незаданные не передаются.
type IssueUpdate struct {
	Title      *string
	StateEvent StateEvent
	UpdatedAt  *time.Time
	IssueOptions
}

// IssuesAPI: задачи.
type IssuesAPI struct {
	c *core
}

// ListAll возвращает страницу задач, созданных текущим пользователем или назначенных ему.
func (a *IssuesAPI) ListAll(ctx context.Context, opt IssueListOptions, page ListOptions) (*PagedResult[Issue], error) {
	return getPage[Issue](ctx, a.c, opt.apply(NewRequest(http.MethodGet, "issues")), page)
}

// ListForProject возвращает страницу задач проекта.
func (a *IssuesAPI) ListForProject(ctx context.Context, projectID int, opt IssueListOptions, page ListOptions) (*PagedResult[Issue], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/issues").
		SegmentInt("projectId", projectID)
	return getPage[Issue](ctx, a.c, opt.apply(req), page)
}

// ListForGroup возвращает страницу задач всех проектов группы.
func (a *IssuesAPI) ListForGroup(ctx context.Context, groupID int, opt IssueListOptions, page ListOptions) (*PagedResult[Issue], error) {
	req := NewRequest(http.MethodGet, "groups/{groupId}/issues").
		SegmentInt("groupId", groupID)
	return getPage[Issue](ctx, a.c, opt.apply(req), page)
}

// Find возвращает задачу по ID.
func (a *IssuesAPI) Find(ctx context.Context, projectID, issueID int) (*Issue, error) {
	return getOne[Issue](ctx, a.c, a.issue(http.MethodGet, "", projectID, issueID))
}

// Create создаёт задачу.
func (a *IssuesAPI) Create(ctx context.Context, projectID int, title string, opt IssueOptions) (*Issue, error) {
	if err := requireString("title", title); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/issues").
		SegmentInt("projectId", projectID).
		Param("title", title)
	return getOne[Issue](ctx, a.c, opt.apply(req))
}

// Update меняет задачу; StateEvent закрывает или переоткрывает её.
func (a *IssuesAPI) Update(ctx context.Context, projectID, issueID int, opt IssueUpdate) (*Issue, error) {
	req := a.issue(http.MethodPut, "", projectID, issueID).
		ParamIf("title", opt.Title).
		ParamIfEnum("state_event", opt.StateEvent).
		ParamIfTime("updated_at", opt.UpdatedAt)
	return getOne[Issue](ctx, a.c, opt.apply(req))
}

// Delete удаляет задачу.
func (a *IssuesAPI) Delete(ctx context.Context, projectID, issueID int) error {
	return send(ctx, a.c, a.issue(http.MethodDelete, "", projectID, issueID))
}

// Move переносит задачу в другой проект.
func (a *IssuesAPI) Move(ctx context.Context, projectID, issueID, toProjectID int) (*Issue, error) {
	req := a.issue(http.MethodPost, "/move", projectID, issueID).
		ParamInt("to_project_id", toProjectID)
	return getOne[Issue](ctx, a.c, req)
}

// Subscribe подписывает текущего пользователя на уведомления по задаче.
func (a *IssuesAPI) Subscribe(ctx context.Context, projectID, issueID int) (*Issue, error) {
	return getOne[Issue](ctx, a.c, a.issue(http.MethodPost, "/subscription", projectID, issueID))
}

// Unsubscribe отписывает текущего пользователя от уведомлений по задаче.
func (a *IssuesAPI) Unsubscribe(ctx context.Context, projectID, issueID int) (*Issue, error) {
	return getOne[Issue](ctx, a.c, a.issue(http.MethodDelete, "/subscription", projectID, issueID))
}

func (a *IssuesAPI) issue(method, suffix string, projectID, issueID int) Request {
	return NewRequest(method, "projects/{projectId}/issues/{issueId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("issueId", issueID)
}

func (o IssueListOptions) apply(req Request) Request {
	return req.
		ParamIfEnum("state", o.State).
		ParamIfList("labels", o.Labels).
		ParamIf("milestone", o.Milestone).
		ParamIfEnum("order_by", o.OrderBy).
		ParamIfEnum("sort", o.Sort)
}

func (o IssueOptions) apply(req Request) Request {
	return req.
		ParamIf("description", o.Description).
		ParamIfBool("confidential", o.Confidential).
		ParamIfInt("assignee_id", o.AssigneeID).
		ParamIfInt("milestone_id", o.MilestoneID).
		ParamIfList("labels", o.Labels).
		ParamIfDate("due_date", o.DueDate)
}
