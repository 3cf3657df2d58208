package gitlab

import (
	"context"
	"net/http"
	"time"
)

// ProjectHook: веб-хук проекта.
type ProjectHook struct {
	ID                    int        `json:"id"`
	URL                   string     `json:"url"`
	ProjectID             int        `json:"project_id"`
	PushEvents            bool       `json:"push_events"`
	IssuesEvents          bool       `json:"issues_events"`
	MergeRequestsEvents   bool       `json:"merge_requests_events"`
	TagPushEvents         bool       `json:"tag_push_events"`
	NoteEvents            bool       `json:"note_events"`
	BuildEvents           bool       `json:"build_events"`
	PipelineEvents        bool       `json:"pipeline_events"`
	WikiPageEvents        bool       `json:"wiki_page_events"`
	EnableSSLVerification bool       `json:"enable_ssl_verification"`
	CreatedAt             *time.Time `json:"created_at"`
}

// ProjectHookOptions: события и параметры веб-хука; незаданные не передаются.
type ProjectHookOptions struct {
	PushEvents            *bool
	IssuesEvents          *bool
	MergeRequestsEvents   *bool
	TagPushEvents         *bool
	NoteEvents            *bool
	BuildEvents           *bool
	PipelineEvents        *bool
	WikiPageEvents        *bool
	EnableSSLVerification *bool
	Token                 *string
}

// ProjectHooksAPI: веб-хуки проекта.
type ProjectHooksAPI struct {
	c *core
}

// List возвращает веб-хуки проекта.
func (a *ProjectHooksAPI) List(ctx context.Context, projectID int) ([]ProjectHook, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/hooks").
		SegmentInt("projectId", projectID)
	return getList[ProjectHook](ctx, a.c, req)
}

// Find возвращает веб-хук по ID.
func (a *ProjectHooksAPI) Find(ctx context.Context, projectID, hookID int) (*ProjectHook, error) {
	return getOne[ProjectHook](ctx, a.c, a.hook(http.MethodGet, projectID, hookID))
}

// Create добавляет веб-хук.
func (a *ProjectHooksAPI) Create(ctx context.Context, projectID int, url string, opt ProjectHookOptions) (*ProjectHook, error) {
	if err := requireString("url", url); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/hooks").
		SegmentInt("projectId", projectID).
		Param("url", url)
	return getOne[ProjectHook](ctx, a.c, opt.apply(req))
}

// Update меняет адрес и события веб-хука.
func (a *ProjectHooksAPI) Update(ctx context.Context, projectID, hookID int, url string, opt ProjectHookOptions) (*ProjectHook, error) {
	if err := requireString("url", url); err != nil {
		return nil, err
	}
	req := a.hook(http.MethodPut, projectID, hookID).Param("url", url)
	return getOne[ProjectHook](ctx, a.c, opt.apply(req))
}

// Delete удаляет веб-хук.
func (a *ProjectHooksAPI) Delete(ctx context.Context, projectID, hookID int) (*ProjectHook, error) {
	return getOne[ProjectHook](ctx, a.c, a.hook(http.MethodDelete, projectID, hookID))
}

func (a *ProjectHooksAPI) hook(method string, projectID, hookID int) Request {
	return NewRequest(method, "projects/{projectId}/hooks/{hookId}").
		SegmentInt("projectId", projectID).
		SegmentInt("hookId", hookID)
}

func (o ProjectHookOptions) apply(req Request) Request {
	return req.
		ParamIfBool("push_events", o.PushEvents).
		ParamIfBool("issues_events", o.IssuesEvents).
		ParamIfBool("merge_requests_events", o.MergeRequestsEvents).
		ParamIfBool("tag_push_events", o.TagPushEvents).
		ParamIfBool("note_events", o.NoteEvents).
		ParamIfBool("build_events", o.BuildEvents).
		ParamIfBool("pipeline_events", o.PipelineEvents).
		ParamIfBool("wiki_page_events", o.WikiPageEvents).
		ParamIfBool("enable_ssl_verification", o.EnableSSLVerification).
		ParamIf("token", o.Token)
}

// SystemHook: системный веб-хук инстанса.
type SystemHook struct {
	ID        int        `json:"id"`
	URL       string     `json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}

// SystemHookEvent: тестовое событие, которое возвращает Test.
type SystemHookEvent struct {
	EventName  string `json:"event_name"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	ProjectID  int    `json:"project_id"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

// SystemHooksAPI: системные веб-хуки (только администратор).
type SystemHooksAPI struct {
	c *core
}

// List возвращает системные веб-хуки.
func (a *SystemHooksAPI) List(ctx context.Context) ([]SystemHook, error) {
	return getList[SystemHook](ctx, a.c, NewRequest(http.MethodGet, "hooks"))
}

// Create добавляет системный веб-хук.
func (a *SystemHooksAPI) Create(ctx context.Context, url string) (*SystemHook, error) {
	if err := requireString("url", url); err != nil {
		return nil, err
	}
	return getOne[SystemHook](ctx, a.c, NewRequest(http.MethodPost, "hooks").Param("url", url))
}

// Test отправляет тестовое событие в системный веб-хук.
func (a *SystemHooksAPI) Test(ctx context.Context, hookID int) (*SystemHookEvent, error) {
	req := NewRequest(http.MethodGet, "hooks/{hookId}").SegmentInt("hookId", hookID)
	return getOne[SystemHookEvent](ctx, a.c, req)
}

// Delete удаляет системный веб-хук.
func (a *SystemHooksAPI) Delete(ctx context.Context, hookID int) (*SystemHook, error) {
	req := NewRequest(http.MethodDelete, "hooks/{hookId}").SegmentInt("hookId", hookID)
	return getOne[SystemHook](ctx, a.c, req)
}
