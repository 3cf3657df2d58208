package gitlab

import (
	"context"
	"net/http"
	"time"
)

// PipelineBasic: краткое представление конвейера.
type PipelineBasic struct {
	ID     int    `json:"id"`
	SHA    string `json:"sha"`
	Ref    string `json:"ref"`
	Status string `json:"status"`
}

// Pipeline: конвейер CI.
type Pipeline struct {
	ID          int        `json:"id"`
	SHA         string     `json:"sha"`
	Ref         string     `json:"ref"`
	Status      string     `json:"status"`
	BeforeSHA   string     `json:"before_sha"`
	Tag         bool       `json:"tag"`
	YAMLErrors  string     `json:"yaml_errors"`
	User        *UserBasic `json:"user"`
	Duration    int        `json:"duration"`
	Coverage    string     `json:"coverage"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at"`
	CommittedAt *time.Time `json:"committed_at"`
}

// PipelineListOptions: фильтры и сортировка списка конвейеров.
type PipelineListOptions struct {
	Scope      PipelineScope
	Status     PipelineStatus
	Ref        *string
	YAMLErrors *bool
	Username   *string
	Sort       SortOrder
}

// PipelinesAPI: конвейеры CI проекта.
type PipelinesAPI struct {
	c *core
}

// List возвращает страницу конвейеров проекта.
func (a *PipelinesAPI) List(ctx context.Context, projectID int, opt PipelineListOptions, page ListOptions) (*PagedResult[Pipeline], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/pipelines").
		SegmentInt("projectId", projectID).
		ParamIfEnum("scope", opt.Scope).
		ParamIfEnum("status", opt.Status).
		ParamIf("ref", opt.Ref).
		ParamIfBool("yaml_errors", opt.YAMLErrors).
		ParamIf("username", opt.Username).
		ParamIfEnum("sort", opt.Sort)
	return getPage[Pipeline](ctx, a.c, req, page)
}

// Find возвращает конвейер по ID.
func (a *PipelinesAPI) Find(ctx context.Context, projectID, pipelineID int) (*Pipeline, error) {
	return getOne[Pipeline](ctx, a.c, a.pipeline(http.MethodGet, "", projectID, pipelineID))
}

// Create запускает конвейер для ref.
func (a *PipelinesAPI) Create(ctx context.Context, projectID int, ref string) (*Pipeline, error) {
	if err := requireString("ref", ref); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/pipeline").
		SegmentInt("projectId", projectID).
		Param("ref", ref)
	return getOne[Pipeline](ctx, a.c, req)
}

// Retry перезапускает упавшие задания конвейера.
func (a *PipelinesAPI) Retry(ctx context.Context, projectID, pipelineID int) (*Pipeline, error) {
	return getOne[Pipeline](ctx, a.c, a.pipeline(http.MethodPost, "/retry", projectID, pipelineID))
}

// Cancel отменяет выполняющиеся задания конвейера.
func (a *PipelinesAPI) Cancel(ctx context.Context, projectID, pipelineID int) (*Pipeline, error) {
	return getOne[Pipeline](ctx, a.c, a.pipeline(http.MethodPost, "/cancel", projectID, pipelineID))
}

func (a *PipelinesAPI) pipeline(method, suffix string, projectID, pipelineID int) Request {
	return NewRequest(method, "projects/{projectId}/pipelines/{pipelineId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("pipelineId", pipelineID)
}
