package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Member: участник проекта или группы.
type Member struct {
	ID          int         `json:"id"`
	Username    string      `json:"username"`
	Name        string      `json:"name"`
	State       string      `json:"state"`
	AvatarURL   string      `json:"avatar_url"`
	WebURL      string      `json:"web_url"`
	AccessLevel AccessLevel `json:"access_level"`
	ExpiresAt   string      `json:"expires_at"`
}

// GroupMembersAPI: участники групп.
type GroupMembersAPI struct {
	c *core
}

// List возвращает участников группы.
func (a *GroupMembersAPI) List(ctx context.Context, groupID int) ([]Member, error) {
	req := NewRequest(http.MethodGet, "groups/{groupId}/members").
		SegmentInt("groupId", groupID)
	return getList[Member](ctx, a.c, req)
}

// Add добавляет пользователя в группу.
func (a *GroupMembersAPI) Add(ctx context.Context, groupID, userID int, level AccessLevel, expiresAt *time.Time) (*Member, error) {
	req := NewRequest(http.MethodPost, "groups/{groupId}/members").
		SegmentInt("groupId", groupID).
		ParamInt("user_id", userID).
		ParamEnum("access_level", level).
		ParamIfDate("expires_at", expiresAt)
	return getOne[Member](ctx, a.c, req)
}

// Update меняет уровень доступа участника группы.
func (a *GroupMembersAPI) Update(ctx context.Context, groupID, userID int, level AccessLevel, expiresAt *time.Time) (*Member, error) {
	req := NewRequest(http.MethodPut, "groups/{groupId}/members/{userId}").
		SegmentInt("groupId", groupID).
		SegmentInt("userId", userID).
		ParamEnum("access_level", level).
		ParamIfDate("expires_at", expiresAt)
	return getOne[Member](ctx, a.c, req)
}

// Remove исключает пользователя из группы.
func (a *GroupMembersAPI) Remove(ctx context.Context, groupID, userID int) error {
	req := NewRequest(http.MethodDelete, "groups/{groupId}/members/{userId}").
		SegmentInt("groupId", groupID).
		SegmentInt("userId", userID)
	return send(ctx, a.c, req)
}

// ProjectMembersAPI: участники проектов.
type ProjectMembersAPI struct {
	c *core
}

// List возвращает страницу участников проекта, опционально отфильтрованных по query.
func (a *ProjectMembersAPI) List(ctx context.Context, projectID int, query *string, page ListOptions) (*PagedResult[Member], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/members").
		SegmentInt("projectId", projectID).
		ParamIf("query", query)
	return getPage[Member](ctx, a.c, req, page)
}

// Find возвращает участника проекта.
func (a *ProjectMembersAPI) Find(ctx context.Context, projectID, userID int) (*Member, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/members/{userId}").
		SegmentInt("projectId", projectID).
		SegmentInt("userId", userID)
	return getOne[Member](ctx, a.c, req)
}

// Add добавляет пользователя в проект.
func (a *ProjectMembersAPI) Add(ctx context.Context, projectID, userID int, level AccessLevel, expiresAt *time.Time) (*Member, error) {
	req := NewRequest(http.MethodPost, "projects/{projectId}/members").
		SegmentInt("projectId", projectID).
		ParamInt("user_id", userID).
		ParamEnum("access_level", level).
		ParamIfDate("expires_at", expiresAt)
	return getOne[Member](ctx, a.c, req)
}

// Update меняет уровень доступа участника проекта.
func (a *ProjectMembersAPI) Update(ctx context.Context, projectID, userID int, level AccessLevel, expiresAt *time.Time) (*Member, error) {
	req := NewRequest(http.MethodPut, "projects/{projectId}/members/{userId}").
		SegmentInt("projectId", projectID).
		SegmentInt("userId", userID).
		ParamEnum("access_level", level).
		ParamIfDate("expires_at", expiresAt)
	return getOne[Member](ctx, a.c, req)
}

// Remove исключает пользователя из проекта.
func (a *ProjectMembersAPI) Remove(ctx context.Context, projectID, userID int) error {
	req := NewRequest(http.MethodDelete, "projects/{projectId}/members/{userId}").
		SegmentInt("projectId", projectID).
		SegmentInt("userId", userID)
	return send(ctx, a.c, req)
}
