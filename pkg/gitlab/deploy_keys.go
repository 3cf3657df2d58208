package gitlab

import (
	"context"
	"net/http"
	"time"
)

// DeployKey: ключ развёртывания.
type DeployKey struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Key       string     `json:"key"`
	CanPush   bool       `json:"can_push"`
	CreatedAt *time.Time `json:"created_at"`
}

// DeployKeysAPI: ключи развёртывания.
type DeployKeysAPI struct {
	c *core
}

// ListAll возвращает все ключи развёртывания инстанса (только администратор).
func (a *DeployKeysAPI) ListAll(ctx context.Context) ([]DeployKey, error) {
	return getList[DeployKey](ctx, a.c, NewRequest(http.MethodGet, "deploy_keys"))
}

// List возвращает ключи развёртывания проекта.
func (a *DeployKeysAPI) List(ctx context.Context, projectID int) ([]DeployKey, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/deploy_keys").
		SegmentInt("projectId", projectID)
	return getList[DeployKey](ctx, a.c, req)
}

// Find возвращает ключ развёртывания проекта.
func (a *DeployKeysAPI) Find(ctx context.Context, projectID, keyID int) (*DeployKey, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/deploy_keys/{keyId}").
		SegmentInt("projectId", projectID).
		SegmentInt("keyId", keyID)
	return getOne[DeployKey](ctx, a.c, req)
}

// Create добавляет ключ развёртывания в проект.
func (a *DeployKeysAPI) Create(ctx context.Context, projectID int, title, key string, canPush *bool) (*DeployKey, error) {
	if err := firstError(requireString("title", title), requireString("key", key)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/deploy_keys").
		SegmentInt("projectId", projectID).
		Param("title", title).
		Param("key", key).
		ParamIfBool("can_push", canPush)
	return getOne[DeployKey](ctx, a.c, req)
}

// Delete удаляет ключ развёртывания из проекта.
func (a *DeployKeysAPI) Delete(ctx context.Context, projectID, keyID int) error {
	req := NewRequest(http.MethodDelete, "projects/{projectId}/deploy_keys/{keyId}").
		SegmentInt("projectId", projectID).
		SegmentInt("keyId", keyID)
	return send(ctx, a.c, req)
}

// Enable подключает существующий ключ развёртывания к проекту.
func (a *DeployKeysAPI) Enable(ctx context.Context, projectID, keyID int) (*DeployKey, error) {
	req := NewRequest(http.MethodPost, "projects/{projectId}/deploy_keys/{keyId}/enable").
		SegmentInt("projectId", projectID).
		SegmentInt("keyId", keyID)
	return getOne[DeployKey](ctx, a.c, req)
}
