package gitlab

import (
	"context"
	"net/http"
	"time"
)

// CommitComment: комментарий к коммиту.
type CommitComment struct {
	Note     string     `json:"note"`
	Path     string     `json:"path"`
	Line     int        `json:"line"`
	LineType string     `json:"line_type"`
	Author   *UserBasic `json:"author"`
}

// CommitStatus: внешний статус коммита (CI и т.п.).
type CommitStatus struct {
	ID           int        `json:"id"`
	SHA          string     `json:"sha"`
	Ref          string     `json:"ref"`
	Status       string     `json:"status"`
	Name         string     `json:"name"`
	Stage        string     `json:"stage"`
	TargetURL    string     `json:"target_url"`
	Description  string     `json:"description"`
	AllowFailure bool       `json:"allow_failure"`
	Author       *UserBasic `json:"author"`
	CreatedAt    *time.Time `json:"created_at"`
	StartedAt    *time.Time `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"`
}

// CommitListOptions: фильтры списка коммитов.
type CommitListOptions struct {
	RefName *string
	Since   *time.Time
	Until   *time.Time
}

// CommitCommentOptions: необязательные параметры комментария к строке.
type CommitCommentOptions struct {
	Path     *string
	Line     *int
	LineType LineType
}

// CommitStatusListOptions: фильтры статусов коммита.
type CommitStatusListOptions struct {
	Ref   *string
	Stage *string
	Name  *string
	All   *bool
}

// CommitStatusOptions: необязательные параметры статуса коммита.
type CommitStatusOptions struct {
	Ref         *string
	Name        *string
	TargetURL   *string
	Description *string
}

// CommitsAPI: коммиты репозитория проекта.
type CommitsAPI struct {
	c *core
}

// List возвращает страницу коммитов.
func (a *CommitsAPI) List(ctx context.Context, projectID int, opt CommitListOptions, page ListOptions) (*PagedResult[Commit], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits").
		SegmentInt("projectId", projectID).
		ParamIf("ref_name", opt.RefName).
		ParamIfTime("since", opt.Since).
		ParamIfTime("until", opt.Until)
	return getPage[Commit](ctx, a.c, req, page)
}

// Find возвращает коммит по SHA или имени ветки/тега.
func (a *CommitsAPI) Find(ctx context.Context, projectID int, sha string) (*Commit, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits/{sha}").
		SegmentInt("projectId", projectID).
		Segment("sha", sha)
	return getOne[Commit](ctx, a.c, req)
}

// Diff возвращает изменения коммита.
func (a *CommitsAPI) Diff(ctx context.Context, projectID int, sha string) ([]Diff, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits/{sha}/diff").
		SegmentInt("projectId", projectID).
		Segment("sha", sha)
	return getList[Diff](ctx, a.c, req)
}

// Comments возвращает комментарии к коммиту.
func (a *CommitsAPI) Comments(ctx context.Context, projectID int, sha string) ([]CommitComment, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits/{sha}/comments").
		SegmentInt("projectId", projectID).
		Segment("sha", sha)
	return getList[CommitComment](ctx, a.c, req)
}

// CreateComment добавляет комментарий к коммиту или к строке его diff.
func (a *CommitsAPI) CreateComment(ctx context.Context, projectID int, sha, note string, opt CommitCommentOptions) (*CommitComment, error) {
	if err := firstError(requireString("sha", sha), requireString("note", note)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/repository/commits/{sha}/comments").
		SegmentInt("projectId", projectID).
		Segment("sha", sha).
		Param("note", note).
		ParamIf("path", opt.Path).
		ParamIfInt("line", opt.Line).
		ParamIfEnum("line_type", opt.LineType)
	return getOne[CommitComment](ctx, a.c, req)
}

// Statuses возвращает внешние статусы коммита.
func (a *CommitsAPI) Statuses(ctx context.Context, projectID int, sha string, opt CommitStatusListOptions) ([]CommitStatus, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits/{sha}/statuses").
		SegmentInt("projectId", projectID).
		Segment("sha", sha).
		ParamIf("ref", opt.Ref).
		ParamIf("stage", opt.Stage).
		ParamIf("name", opt.Name).
		ParamIfBool("all", opt.All)
	return getList[CommitStatus](ctx, a.c, req)
}

// UpdateStatus создаёт или обновляет внешний статус коммита.
func (a *CommitsAPI) UpdateStatus(ctx context.Context, projectID int, sha string, state CommitStatusState, opt CommitStatusOptions) (*CommitStatus, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/statuses/{sha}").
		SegmentInt("projectId", projectID).
		Segment("sha", sha).
		ParamEnum("state", state).
		ParamIf("ref", opt.Ref).
		ParamIf("name", opt.Name).
		ParamIf("target_url", opt.TargetURL).
		ParamIf("description", opt.Description)
	return getOne[CommitStatus](ctx, a.c, req)
}
