package gitlab

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Todo: элемент списка дел пользователя.
type Todo struct {
	ID         int             `json:"id"`
	Project    *Project        `json:"project"`
	Author     *UserBasic      `json:"author"`
	ActionName string          `json:"action_name"`
	TargetType string          `json:"target_type"`
	Target     json.RawMessage `json:"target"`
	TargetURL  string          `json:"target_url"`
	Body       string          `json:"body"`
	State      string          `json:"state"`
	CreatedAt  *time.Time      `json:"created_at"`
}

// TodoListOptions: фильтры списка дел.
type TodoListOptions struct {
	Action    TodoAction
	AuthorID  *int
	ProjectID *int
	State     TodoState
	Type      TodoTargetType
}

// TodosAPI: список дел текущего пользователя.
type TodosAPI struct {
	c *core
}

// List возвращает страницу дел.
func (a *TodosAPI) List(ctx context.Context, opt TodoListOptions, page ListOptions) (*PagedResult[Todo], error) {
	req := NewRequest(http.MethodGet, "todos").
		ParamIfEnum("action", opt.Action).
		ParamIfInt("author_id", opt.AuthorID).
		ParamIfInt("project_id", opt.ProjectID).
		ParamIfEnum("state", opt.State).
		ParamIfEnum("type", opt.Type)
	return getPage[Todo](ctx, a.c, req, page)
}

// MarkAsDone отмечает дело выполненным.
func (a *TodosAPI) MarkAsDone(ctx context.Context, todoID int) (*Todo, error) {
	req := NewRequest(http.MethodDelete, "todos/{todoId}").SegmentInt("todoId", todoID)
	return getOne[Todo](ctx, a.c, req)
}

// MarkAllAsDone отмечает выполненными все дела.
func (a *TodosAPI) MarkAllAsDone(ctx context.Context) error {
	return send(ctx, a.c, NewRequest(http.MethodDelete, "todos"))
}
