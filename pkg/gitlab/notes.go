package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Note: комментарий к задаче, merge request или сниппету.
type Note struct {
	ID           int        `json:"id"`
	Body         string     `json:"body"`
	Attachment   string     `json:"attachment"`
	Author       *UserBasic `json:"author"`
	System       bool       `json:"system"`
	NoteableID   int        `json:"noteable_id"`
	NoteableType string     `json:"noteable_type"`
	Upvote       bool       `json:"upvote"`
	Downvote     bool       `json:"downvote"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NotesAPI: комментарии. Объект задаётся типом (NoteableType) и ID.
type NotesAPI struct {
	c *core
}

// List возвращает страницу комментариев объекта.
func (a *NotesAPI) List(ctx context.Context, projectID int, kind NoteableType, noteableID int, page ListOptions) (*PagedResult[Note], error) {
	req, err := a.notes(http.MethodGet, "", projectID, kind, noteableID)
	if err != nil {
		return nil, err
	}
	return getPage[Note](ctx, a.c, req, page)
}

// Find возвращает комментарий по ID.
func (a *NotesAPI) Find(ctx context.Context, projectID int, kind NoteableType, noteableID, noteID int) (*Note, error) {
	req, err := a.notes(http.MethodGet, "/{noteId}", projectID, kind, noteableID)
	if err != nil {
		return nil, err
	}
	return getOne[Note](ctx, a.c, req.SegmentInt("noteId", noteID))
}

// Create добавляет комментарий.
func (a *NotesAPI) Create(ctx context.Context, projectID int, kind NoteableType, noteableID int, body string) (*Note, error) {
	if err := requireString("body", body); err != nil {
		return nil, err
	}
	req, err := a.notes(http.MethodPost, "", projectID, kind, noteableID)
	if err != nil {
		return nil, err
	}
	return getOne[Note](ctx, a.c, req.Param("body", body))
}

// Update меняет текст комментария.
func (a *NotesAPI) Update(ctx context.Context, projectID int, kind NoteableType, noteableID, noteID int, body string) (*Note, error) {
	if err := requireString("body", body); err != nil {
		return nil, err
	}
	req, err := a.notes(http.MethodPut, "/{noteId}", projectID, kind, noteableID)
	if err != nil {
		return nil, err
	}
	return getOne[Note](ctx, a.c, req.SegmentInt("noteId", noteID).Param("body", body))
}

// Delete удаляет комментарий.
func (a *NotesAPI) Delete(ctx context.Context, projectID int, kind NoteableType, noteableID, noteID int) (*Note, error) {
	req, err := a.notes(http.MethodDelete, "/{noteId}", projectID, kind, noteableID)
	if err != nil {
		return nil, err
	}
	return getOne[Note](ctx, a.c, req.SegmentInt("noteId", noteID))
}

// notes строит запрос к projects/{projectId}/<тип>/{noteableId}/notes.
func (a *NotesAPI) notes(method, suffix string, projectID int, kind NoteableType, noteableID int) (Request, error) {
	collection, ok := kind.wire()
	if !ok {
		return Request{}, NewValidationError("noteable_type", "недопустимый тип объекта "+kind.String())
	}
	req := NewRequest(method, "projects/{projectId}/"+collection+"/{noteableId}/notes"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("noteableId", noteableID)
	return req, nil
}
