package gitlab

import (
	"context"
	"net/http"
)

// Tag: тег репозитория.
type Tag struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Commit  *Commit  `json:"commit"`
	Release *Release `json:"release"`
}

// Release: описание релиза, привязанное к тегу.
type Release struct {
	TagName     string `json:"tag_name"`
	Description string `json:"description"`
}

// TagOptions: необязательные параметры создания тега.
type TagOptions struct {
	// Message: сообщение аннотированного тега
	Message *string
	// ReleaseDescription: описание релиза в Markdown
	ReleaseDescription *string
}

// TagsAPI: теги репозитория проекта.
type TagsAPI struct {
	c *core
}

// List возвращает теги проекта.
func (a *TagsAPI) List(ctx context.Context, projectID int) ([]Tag, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/tags").
		SegmentInt("projectId", projectID)
	return getList[Tag](ctx, a.c, req)
}

// Find возвращает тег по имени.
func (a *TagsAPI) Find(ctx context.Context, projectID int, tagName string) (*Tag, error) {
	req, err := a.tag(http.MethodGet, "", projectID, tagName)
	if err != nil {
		return nil, err
	}
	return getOne[Tag](ctx, a.c, req)
}

// Create создаёт тег tagName на ref.
func (a *TagsAPI) Create(ctx context.Context, projectID int, tagName, ref string, opt TagOptions) (*Tag, error) {
	if err := firstError(requireString("tag_name", tagName), requireString("ref", ref)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/repository/tags").
		SegmentInt("projectId", projectID).
		Param("tag_name", tagName).
		Param("ref", ref).
		ParamIf("message", opt.Message).
		ParamIf("release_description", opt.ReleaseDescription)
	return getOne[Tag](ctx, a.c, req)
}

// Delete удаляет тег.
func (a *TagsAPI) Delete(ctx context.Context, projectID int, tagName string) error {
	req, err := a.tag(http.MethodDelete, "", projectID, tagName)
	if err != nil {
		return err
	}
	return send(ctx, a.c, req)
}

// CreateRelease добавляет описание релиза к тегу.
func (a *TagsAPI) CreateRelease(ctx context.Context, projectID int, tagName, description string) (*Release, error) {
	return a.release(ctx, http.MethodPost, projectID, tagName, description)
}

// UpdateRelease меняет описание релиза.
func (a *TagsAPI) UpdateRelease(ctx context.Context, projectID int, tagName, description string) (*Release, error) {
	return a.release(ctx, http.MethodPut, projectID, tagName, description)
}

func (a *TagsAPI) release(ctx context.Context, method string, projectID int, tagName, description string) (*Release, error) {
	if err := requireString("description", description); err != nil {
		return nil, err
	}
	req, err := a.tag(method, "/release", projectID, tagName)
	if err != nil {
		return nil, err
	}
	return getOne[Release](ctx, a.c, req.Param("description", description))
}

func (a *TagsAPI) tag(method, suffix string, projectID int, tagName string) (Request, error) {
	if err := requireString("tag_name", tagName); err != nil {
		return Request{}, err
	}
	req := NewRequest(method, "projects/{projectId}/repository/tags/{tagName}"+suffix).
		SegmentInt("projectId", projectID).
		Segment("tagName", tagName)
	return req, nil
}
