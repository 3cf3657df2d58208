package gitlab

import (
	"context"
	"net/http"
)

// Group: группа проектов.
type Group struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Path                 string    `json:"path"`
	Description          string    `json:"description"`
	VisibilityLevel      int       `json:"visibility_level"`
	LFSEnabled           bool      `json:"lfs_enabled"`
	RequestAccessEnabled bool      `json:"request_access_enabled"`
	AvatarURL            string    `json:"avatar_url"`
	WebURL               string    `json:"web_url"`
	FullName             string    `json:"full_name"`
	FullPath             string    `json:"full_path"`
	ParentID             *int      `json:"parent_id"`
	Projects             []Project `json:"projects"`
}

// GroupListOptions: фильтры и сортировка списка групп.
type GroupListOptions struct {
	Search       *string
	OrderBy      GroupOrderBy
	Sort         SortOrder
	AllAvailable *bool
}

// GroupOptions: изменяемые поля группы.
type GroupOptions struct {
	Description          *string
	Visibility           VisibilityLevel
	LFSEnabled           *bool
	RequestAccessEnabled *bool
}

// GroupUpdate: поля для Update; незаданные не передаются.
type GroupUpdate struct {
	Name *string
	Path *string
	GroupOptions
}

// GroupsAPI: группы.
type GroupsAPI struct {
	c *core
}

// List возвращает страницу групп, доступных пользователю.
func (a *GroupsAPI) List(ctx context.Context, opt GroupListOptions, page ListOptions) (*PagedResult[Group], error) {
	req := NewRequest(http.MethodGet, "groups").
		ParamIf("search", opt.Search).
		ParamIfEnum("order_by", opt.OrderBy).
		ParamIfEnum("sort", opt.Sort).
		ParamIfBool("all_available", opt.AllAvailable)
	return getPage[Group](ctx, a.c, req, page)
}

// Owned возвращает страницу групп, которыми владеет пользователь.
func (a *GroupsAPI) Owned(ctx context.Context, page ListOptions) (*PagedResult[Group], error) {
	return getPage[Group](ctx, a.c, NewRequest(http.MethodGet, "groups/owned"), page)
}

// Find возвращает группу вместе с её проектами.
func (a *GroupsAPI) Find(ctx context.Context, groupID int) (*Group, error) {
	req := NewRequest(http.MethodGet, "groups/{groupId}").
		SegmentInt("groupId", groupID)
	return getOne[Group](ctx, a.c, req)
}

// Create создаёт группу.
func (a *GroupsAPI) Create(ctx context.Context, name, path string, opt GroupOptions) (*Group, error) {
	if err := firstError(requireString("name", name), requireString("path", path)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "groups").
		Param("name", name).
		Param("path", path)
	return getOne[Group](ctx, a.c, opt.apply(req))
}

// Update меняет параметры группы.
func (a *GroupsAPI) Update(ctx context.Context, groupID int, opt GroupUpdate) (*Group, error) {
	req := NewRequest(http.MethodPut, "groups/{groupId}").
		SegmentInt("groupId", groupID).
		ParamIf("name", opt.Name).
		ParamIf("path", opt.Path)
	return getOne[Group](ctx, a.c, opt.apply(req))
}

// Delete удаляет группу.
func (a *GroupsAPI) Delete(ctx context.Context, groupID int) error {
	req := NewRequest(http.MethodDelete, "groups/{groupId}").
		SegmentInt("groupId", groupID)
	return send(ctx, a.c, req)
}

// Projects возвращает страницу проектов группы.
func (a *GroupsAPI) Projects(ctx context.Context, groupID int, opt ProjectListOptions, page ListOptions) (*PagedResult[Project], error) {
	req := NewRequest(http.MethodGet, "groups/{groupId}/projects").
		SegmentInt("groupId", groupID)
	return getPage[Project](ctx, a.c, opt.apply(req), page)
}

// TransferProject переносит проект в пространство имён группы.
func (a *GroupsAPI) TransferProject(ctx context.Context, groupID, projectID int) (*Group, error) {
	req := NewRequest(http.MethodPost, "groups/{groupId}/projects/{projectId}").
		SegmentInt("groupId", groupID).
		SegmentInt("projectId", projectID)
	return getOne[Group](ctx, a.c, req)
}

func (o GroupOptions) apply(req Request) Request {
	return req.
		ParamIf("description", o.Description).
		ParamIfEnum("visibility_level", o.Visibility).
		ParamIfBool("lfs_enabled", o.LFSEnabled).
		ParamIfBool("request_access_enabled", o.RequestAccessEnabled)
}
