package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Snippet: сниппет проекта.
type Snippet struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	FileName  string     `json:"file_name"`
	Author    *UserBasic `json:"author"`
	ExpiresAt *time.Time `json:"expires_at"`
	WebURL    string     `json:"web_url"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// SnippetUpdate: поля для Update; незаданные не передаются.
type SnippetUpdate struct {
	Title      *string
	FileName   *string
	Code       *string
	Visibility VisibilityLevel
}

// ProjectSnippetsAPI: сниппеты проекта.
type ProjectSnippetsAPI struct {
	c *core
}

// List возвращает сниппеты проекта.
func (a *ProjectSnippetsAPI) List(ctx context.Context, projectID int) ([]Snippet, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/snippets").
		SegmentInt("projectId", projectID)
	return getList[Snippet](ctx, a.c, req)
}

// Find возвращает сниппет по ID.
func (a *ProjectSnippetsAPI) Find(ctx context.Context, projectID, snippetID int) (*Snippet, error) {
	return getOne[Snippet](ctx, a.c, a.snippet(http.MethodGet, "", projectID, snippetID))
}

// Create создаёт сниппет.
func (a *ProjectSnippetsAPI) Create(ctx context.Context, projectID int, title, fileName, code string, visibility VisibilityLevel) (*Snippet, error) {
	if err := firstError(
		requireString("title", title),
		requireString("file_name", fileName),
		requireString("code", code),
	); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/snippets").
		SegmentInt("projectId", projectID).
		Param("title", title).
		Param("file_name", fileName).
		Param("code", code).
		ParamEnum("visibility_level", visibility)
	return getOne[Snippet](ctx, a.c, req)
}

// Update меняет сниппет.
func (a *ProjectSnippetsAPI) Update(ctx context.Context, projectID, snippetID int, opt SnippetUpdate) (*Snippet, error) {
	req := a.snippet(http.MethodPut, "", projectID, snippetID).
		ParamIf("title", opt.Title).
		ParamIf("file_name", opt.FileName).
		ParamIf("code", opt.Code).
		ParamIfEnum("visibility_level", opt.Visibility)
	return getOne[Snippet](ctx, a.c, req)
}

// Delete удаляет сниппет.
func (a *ProjectSnippetsAPI) Delete(ctx context.Context, projectID, snippetID int) error {
	return send(ctx, a.c, a.snippet(http.MethodDelete, "", projectID, snippetID))
}

// Content возвращает исходный текст сниппета.
func (a *ProjectSnippetsAPI) Content(ctx context.Context, projectID, snippetID int) (string, error) {
	return getText(ctx, a.c, a.snippet(http.MethodGet, "/raw", projectID, snippetID))
}

func (a *ProjectSnippetsAPI) snippet(method, suffix string, projectID, snippetID int) Request {
	return NewRequest(method, "projects/{projectId}/snippets/{snippetId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("snippetId", snippetID)
}
