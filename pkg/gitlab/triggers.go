package gitlab

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"
)

// Trigger: токен запуска сборок проекта.
type Trigger struct {
	Token     string     `json:"token"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
	LastUsed  *time.Time `json:"last_used"`
}

// TriggerRequest: результат запуска сборок по токену.
type TriggerRequest struct {
	ID        int               `json:"id"`
	Variables map[string]string `json:"variables"`
}

// TriggersAPI: триггеры сборок проекта.
type TriggersAPI struct {
	c *core
}

// List возвращает триггеры проекта.
func (a *TriggersAPI) List(ctx context.Context, projectID int) ([]Trigger, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/triggers").
		SegmentInt("projectId", projectID)
	return getList[Trigger](ctx, a.c, req)
}

// Find возвращает триггер по токену.
func (a *TriggersAPI) Find(ctx context.Context, projectID int, token string) (*Trigger, error) {
	if err := requireString("token", token); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/triggers/{token}").
		SegmentInt("projectId", projectID).
		Segment("token", token)
	return getOne[Trigger](ctx, a.c, req)
}

// Create создаёт триггер.
func (a *TriggersAPI) Create(ctx context.Context, projectID int) (*Trigger, error) {
	req := NewRequest(http.MethodPost, "projects/{projectId}/triggers").
		SegmentInt("projectId", projectID)
	return getOne[Trigger](ctx, a.c, req)
}

// Delete удаляет триггер.
func (a *TriggersAPI) Delete(ctx context.Context, projectID int, token string) error {
	if err := requireString("token", token); err != nil {
		return err
	}
	req := NewRequest(http.MethodDelete, "projects/{projectId}/triggers/{token}").
		SegmentInt("projectId", projectID).
		Segment("token", token)
	return send(ctx, a.c, req)
}

// Trigger запускает сборки для ref. Переменные передаются как variables[KEY]
// в порядке сортировки ключей.
func (a *TriggersAPI) Trigger(ctx context.Context, projectID int, token, ref string, variables map[string]string) (*TriggerRequest, error) {
	if err := firstError(requireString("token", token), requireString("ref", ref)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/trigger/builds").
		SegmentInt("projectId", projectID).
		Param("token", token).
		Param("ref", ref)
	for _, key := range slices.Sorted(maps.Keys(variables)) {
		req = req.Param("variables["+key+"]", variables[key])
	}
	return getOne[TriggerRequest](ctx, a.c, req)
}
