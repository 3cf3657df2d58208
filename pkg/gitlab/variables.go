package gitlab

import (
	"context"
	"net/http"
)

// Variable: переменная сборки проекта.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// VariablesAPI: переменные сборок проекта.
type VariablesAPI struct {
	c *core
}

// List возвращает переменные проекта.
func (a *VariablesAPI) List(ctx context.Context, projectID int) ([]Variable, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/variables").
		SegmentInt("projectId", projectID)
	return getList[Variable](ctx, a.c, req)
}

// Find возвращает переменную по ключу.
func (a *VariablesAPI) Find(ctx context.Context, projectID int, key string) (*Variable, error) {
	if err := requireString("key", key); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/variables/{key}").
		SegmentInt("projectId", projectID).
		Segment("key", key)
	return getOne[Variable](ctx, a.c, req)
}

// Create создаёт переменную.
func (a *VariablesAPI) Create(ctx context.Context, projectID int, key, value string) (*Variable, error) {
	if err := firstError(requireString("key", key), requireString("value", value)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/variables").
		SegmentInt("projectId", projectID).
		Param("key", key).
		Param("value", value)
	return getOne[Variable](ctx, a.c, req)
}

// Update меняет значение переменной.
func (a *VariablesAPI) Update(ctx context.Context, projectID int, key, value string) (*Variable, error) {
	if err := firstError(requireString("key", key), requireString("value", value)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPut, "projects/{projectId}/variables/{key}").
		SegmentInt("projectId", projectID).
		Segment("key", key).
		Param("value", value)
	return getOne[Variable](ctx, a.c, req)
}

// Delete удаляет переменную.
func (a *VariablesAPI) Delete(ctx context.Context, projectID int, key string) (*Variable, error) {
	if err := requireString("key", key); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodDelete, "projects/{projectId}/variables/{key}").
		SegmentInt("projectId", projectID).
		Segment("key", key)
	return getOne[Variable](ctx, a.c, req)
}
