package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Project: проект GitLab.
type Project struct {
	ID                            int                `json:"id"`
	Name                          string             `json:"name"`
	NameWithNamespace             string             `json:"name_with_namespace"`
	Path                          string             `json:"path"`
	PathWithNamespace             string             `json:"path_with_namespace"`
	Description                   string             `json:"description"`
	DefaultBranch                 string             `json:"default_branch"`
	TagList                       []string           `json:"tag_list"`
	Public                        bool               `json:"public"`
	Archived                      bool               `json:"archived"`
	VisibilityLevel               int                `json:"visibility_level"`
	SSHURLToRepo                  string             `json:"ssh_url_to_repo"`
	HTTPURLToRepo                 string             `json:"http_url_to_repo"`
	WebURL                        string             `json:"web_url"`
	AvatarURL                     string             `json:"avatar_url"`
	Owner                         *UserBasic         `json:"owner"`
	Namespace                     *Namespace         `json:"namespace"`
	ForkedFromProject             *Project           `json:"forked_from_project"`
	IssuesEnabled                 bool               `json:"issues_enabled"`
	MergeRequestsEnabled          bool               `json:"merge_requests_enabled"`
	WikiEnabled                   bool               `json:"wiki_enabled"`
	BuildsEnabled                 bool               `json:"builds_enabled"`
	SnippetsEnabled               bool               `json:"snippets_enabled"`
	ContainerRegistryEnabled      bool               `json:"container_registry_enabled"`
	SharedRunnersEnabled          bool               `json:"shared_runners_enabled"`
	LFSEnabled                    bool               `json:"lfs_enabled"`
	PublicBuilds                  bool               `json:"public_builds"`
	OnlyAllowMergeIfBuildSucceeds bool               `json:"only_allow_merge_if_build_succeeds"`
	RequestAccessEnabled          bool               `json:"request_access_enabled"`
	CreatorID                     int                `json:"creator_id"`
	OpenIssuesCount               int                `json:"open_issues_count"`
	StarCount                     int                `json:"star_count"`
	ForksCount                    int                `json:"forks_count"`
	SharedWithGroups              []ProjectGroupLink `json:"shared_with_groups"`
	CreatedAt                     *time.Time         `json:"created_at"`
	LastActivityAt                *time.Time         `json:"last_activity_at"`
}

// ProjectGroupLink: группа, с которой проект поделён.
type ProjectGroupLink struct {
	GroupID          int         `json:"group_id"`
	GroupName        string      `json:"group_name"`
	GroupAccessLevel AccessLevel `json:"group_access_level"`
}

// Event: событие активности проекта.
type Event struct {
	Title       string     `json:"title"`
	ProjectID   int        `json:"project_id"`
	ActionName  string     `json:"action_name"`
	TargetID    int        `json:"target_id"`
	TargetType  string     `json:"target_type"`
	TargetTitle string     `json:"target_title"`
	AuthorID    int        `json:"author_id"`
	Author      *UserBasic `json:"author"`
	CreatedAt   *time.Time `json:"created_at"`
}

// ProjectListOptions: фильтры и сортировка списков проектов.
type ProjectListOptions struct {
	Archived   *bool
	Visibility VisibilityLevel
	OrderBy    ProjectOrderBy
	Sort       SortOrder
	Search     *string
	Simple     *bool
}

// ProjectOptions: настройки проекта при создании и изменении.
type ProjectOptions struct {
	Path                          *string
	NamespaceID                   *int
	Description                   *string
	DefaultBranch                 *string
	IssuesEnabled                 *bool
	MergeRequestsEnabled          *bool
	BuildsEnabled                 *bool
	WikiEnabled                   *bool
	SnippetsEnabled               *bool
	ContainerRegistryEnabled      *bool
	SharedRunnersEnabled          *bool
	Visibility                    VisibilityLevel
	ImportURL                     *string
	PublicBuilds                  *bool
	OnlyAllowMergeIfBuildSucceeds *bool
	LFSEnabled                    *bool
	RequestAccessEnabled          *bool
}

// ProjectUpdate: поля для Update; незаданные не передаются.
type ProjectUpdate struct {
	Name *string
	ProjectOptions
}

// ProjectsAPI: проекты.
type ProjectsAPI struct {
	c *core
}

// List возвращает страницу проектов, доступных текущему пользователю.
func (a *ProjectsAPI) List(ctx context.Context, opt ProjectListOptions, page ListOptions) (*PagedResult[Project], error) {
	return getPage[Project](ctx, a.c, opt.apply(NewRequest(http.MethodGet, "projects")), page)
}

// Owned возвращает страницу проектов, которыми владеет текущий пользователь.
func (a *ProjectsAPI) Owned(ctx context.Context, opt ProjectListOptions, page ListOptions) (*PagedResult[Project], error) {
	return getPage[Project](ctx, a.c, opt.apply(NewRequest(http.MethodGet, "projects/owned")), page)
}

// Starred возвращает страницу проектов, отмеченных текущим пользователем.
func (a *ProjectsAPI) Starred(ctx context.Context, opt ProjectListOptions, page ListOptions) (*PagedResult[Project], error) {
	return getPage[Project](ctx, a.c, opt.apply(NewRequest(http.MethodGet, "projects/starred")), page)
}

// All возвращает страницу всех проектов инстанса (только администратор).
func (a *ProjectsAPI) All(ctx context.Context, opt ProjectListOptions, page ListOptions) (*PagedResult[Project], error) {
	return getPage[Project](ctx, a.c, opt.apply(NewRequest(http.MethodGet, "projects/all")), page)
}

// Find возвращает проект по ID.
func (a *ProjectsAPI) Find(ctx context.Context, projectID int) (*Project, error) {
	return getOne[Project](ctx, a.c, a.project(http.MethodGet, "", projectID))
}

// FindByPath возвращает проект по пути вида "namespace/project".
func (a *ProjectsAPI) FindByPath(ctx context.Context, path string) (*Project, error) {
	if err := requireString("path", path); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectPath}").
		Segment("projectPath", path)
	return getOne[Project](ctx, a.c, req)
}

// Events возвращает страницу событий проекта.
func (a *ProjectsAPI) Events(ctx context.Context, projectID int, page ListOptions) (*PagedResult[Event], error) {
	return getPage[Event](ctx, a.c, a.project(http.MethodGet, "/events", projectID), page)
}

// Create создаёт проект для текущего пользователя.
func (a *ProjectsAPI) Create(ctx context.Context, name string, opt ProjectOptions) (*Project, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects").Param("name", name)
	return getOne[Project](ctx, a.c, opt.apply(req))
}

// CreateForUser создаёт проект от имени пользователя (только администратор).
func (a *ProjectsAPI) CreateForUser(ctx context.Context, userID int, name string, opt ProjectOptions) (*Project, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/user/{userId}").
		SegmentInt("userId", userID).
		Param("name", name)
	return getOne[Project](ctx, a.c, opt.apply(req))
}

// Update меняет настройки проекта.
func (a *ProjectsAPI) Update(ctx context.Context, projectID int, opt ProjectUpdate) (*Project, error) {
	req := a.project(http.MethodPut, "", projectID).ParamIf("name", opt.Name)
	return getOne[Project](ctx, a.c, opt.apply(req))
}

// Fork создаёт форк проекта в пространстве имён текущего пользователя
// или в namespace, если он задан.
func (a *ProjectsAPI) Fork(ctx context.Context, projectID int, namespace *string) (*Project, error) {
	req := NewRequest(http.MethodPost, "projects/fork/{projectId}").
		SegmentInt("projectId", projectID).
		ParamIf("namespace", namespace)
	return getOne[Project](ctx, a.c, req)
}

// Star отмечает проект звездой.
func (a *ProjectsAPI) Star(ctx context.Context, projectID int) (*Project, error) {
	return getOne[Project](ctx, a.c, a.project(http.MethodPost, "/star", projectID))
}

// Unstar снимает отметку звездой.
func (a *ProjectsAPI) Unstar(ctx context.Context, projectID int) (*Project, error) {
	return getOne[Project](ctx, a.c, a.project(http.MethodDelete, "/star", projectID))
}

// Archive архивирует проект.
func (a *ProjectsAPI) Archive(ctx context.Context, projectID int) (*Project, error) {
	return getOne[Project](ctx, a.c, a.project(http.MethodPost, "/archive", projectID))
}

// Unarchive возвращает проект из архива.
func (a *ProjectsAPI) Unarchive(ctx context.Context, projectID int) (*Project, error) {
	return getOne[Project](ctx, a.c, a.project(http.MethodPost, "/unarchive", projectID))
}

// Delete удаляет проект.
func (a *ProjectsAPI) Delete(ctx context.Context, projectID int) error {
	return send(ctx, a.c, a.project(http.MethodDelete, "", projectID))
}

// Search возвращает страницу проектов, имя которых содержит query.
func (a *ProjectsAPI) Search(ctx context.Context, query string, orderBy ProjectOrderBy, sort SortOrder, page ListOptions) (*PagedResult[Project], error) {
	if err := requireString("query", query); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/search/{query}").
		Segment("query", query).
		ParamIfEnum("order_by", orderBy).
		ParamIfEnum("sort", sort)
	return getPage[Project](ctx, a.c, req, page)
}

// ShareWithGroup открывает проекту доступ группе.
func (a *ProjectsAPI) ShareWithGroup(ctx context.Context, projectID, groupID int, access AccessLevel, expiresAt *time.Time) error {
	req := a.project(http.MethodPost, "/share", projectID).
		ParamInt("group_id", groupID).
		ParamEnum("group_access", access).
		ParamIfDate("expires_at", expiresAt)
	return send(ctx, a.c, req)
}

// DeleteSharedGroup закрывает группе доступ к проекту.
func (a *ProjectsAPI) DeleteSharedGroup(ctx context.Context, projectID, groupID int) error {
	req := a.project(http.MethodDelete, "/share/{groupId}", projectID).
		SegmentInt("groupId", groupID)
	return send(ctx, a.c, req)
}

func (a *ProjectsAPI) project(method, suffix string, projectID int) Request {
	return NewRequest(method, "projects/{projectId}"+suffix).
		SegmentInt("projectId", projectID)
}

func (o ProjectListOptions) apply(req Request) Request {
	return req.
		ParamIfBool("archived", o.Archived).
		ParamIfEnum("visibility", visibilityName(o.Visibility)).
		ParamIfEnum("order_by", o.OrderBy).
		ParamIfEnum("sort", o.Sort).
		ParamIf("search", o.Search).
		ParamIfBool("simple", o.Simple)
}

func (o ProjectOptions) apply(req Request) Request {
	return req.
		ParamIf("path", o.Path).
		ParamIfInt("namespace_id", o.NamespaceID).
		ParamIf("description", o.Description).
		ParamIf("default_branch", o.DefaultBranch).
		ParamIfBool("issues_enabled", o.IssuesEnabled).
		ParamIfBool("merge_requests_enabled", o.MergeRequestsEnabled).
		ParamIfBool("builds_enabled", o.BuildsEnabled).
		ParamIfBool("wiki_enabled", o.WikiEnabled).
		ParamIfBool("snippets_enabled", o.SnippetsEnabled).
		ParamIfBool("container_registry_enabled", o.ContainerRegistryEnabled).
		ParamIfBool("shared_runners_enabled", o.SharedRunnersEnabled).
		ParamIfEnum("visibility_level", o.Visibility).
		ParamIf("import_url", o.ImportURL).
		ParamIfBool("public_builds", o.PublicBuilds).
		ParamIfBool("only_allow_merge_if_build_succeeds", o.OnlyAllowMergeIfBuildSucceeds).
		ParamIfBool("lfs_enabled", o.LFSEnabled).
		ParamIfBool("request_access_enabled", o.RequestAccessEnabled)
}
