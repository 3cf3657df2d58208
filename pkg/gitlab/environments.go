package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Environment: окружение развёртывания проекта.
type Environment struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ExternalURL string `json:"external_url"`
}

// EnvironmentOptions: изменяемые поля окружения.
type EnvironmentOptions struct {
	Name        *string
	ExternalURL *string
}

// Deployment: развёртывание в окружение.
type Deployment struct {
	ID          int          `json:"id"`
	IID         int          `json:"iid"`
	Ref         string       `json:"ref"`
	SHA         string       `json:"sha"`
	CreatedAt   *time.Time   `json:"created_at"`
	User        *UserBasic   `json:"user"`
	Environment *Environment `json:"environment"`
	Deployable  *Build       `json:"deployable"`
}

// EnvironmentsAPI: окружения проекта.
type EnvironmentsAPI struct {
	c *core
}

// List возвращает страницу окружений проекта.
func (a *EnvironmentsAPI) List(ctx context.Context, projectID int, page ListOptions) (*PagedResult[Environment], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/environments").
		SegmentInt("projectId", projectID)
	return getPage[Environment](ctx, a.c, req, page)
}

// Create создаёт окружение.
func (a *EnvironmentsAPI) Create(ctx context.Context, projectID int, name string, externalURL *string) (*Environment, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/environments").
		SegmentInt("projectId", projectID).
		Param("name", name).
		ParamIf("external_url", externalURL)
	return getOne[Environment](ctx, a.c, req)
}

// Update меняет имя или внешний адрес окружения.
func (a *EnvironmentsAPI) Update(ctx context.Context, projectID, environmentID int, opt EnvironmentOptions) (*Environment, error) {
	req := NewRequest(http.MethodPut, "projects/{projectId}/environments/{environmentId}").
		SegmentInt("projectId", projectID).
		SegmentInt("environmentId", environmentID).
		ParamIf("name", opt.Name).
		ParamIf("external_url", opt.ExternalURL)
	return getOne[Environment](ctx, a.c, req)
}

// Delete удаляет окружение.
func (a *EnvironmentsAPI) Delete(ctx context.Context, projectID, environmentID int) (*Environment, error) {
	req := NewRequest(http.MethodDelete, "projects/{projectId}/environments/{environmentId}").
		SegmentInt("projectId", projectID).
		SegmentInt("environmentId", environmentID)
	return getOne[Environment](ctx, a.c, req)
}

// DeploymentsAPI: история развёртываний проекта.
type DeploymentsAPI struct {
	c *core
}

// List возвращает страницу развёртываний проекта.
func (a *DeploymentsAPI) List(ctx context.Context, projectID int, page ListOptions) (*PagedResult[Deployment], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/deployments").
		SegmentInt("projectId", projectID)
	return getPage[Deployment](ctx, a.c, req, page)
}

// Find возвращает развёртывание по ID.
func (a *DeploymentsAPI) Find(ctx context.Context, projectID, deploymentID int) (*Deployment, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/deployments/{deploymentId}").
		SegmentInt("projectId", projectID).
		SegmentInt("deploymentId", deploymentID)
	return getOne[Deployment](ctx, a.c, req)
}
