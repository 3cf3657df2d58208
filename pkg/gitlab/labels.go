package gitlab

import (
	"context"
	"net/http"
)

// Label: метка проекта.
type Label struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Color                  string `json:"color"`
	Description            string `json:"description"`
	OpenIssuesCount        int    `json:"open_issues_count"`
	ClosedIssuesCount      int    `json:"closed_issues_count"`
	OpenMergeRequestsCount int    `json:"open_merge_requests_count"`
	Priority               *int   `json:"priority"`
	Subscribed             bool   `json:"subscribed"`
}

// LabelOptions: необязательные поля метки.
type LabelOptions struct {
	Description *string
	Priority    *int
}

// LabelUpdate: поля для Update; нужно задать хотя бы NewName или Color.
type LabelUpdate struct {
	NewName *string
	Color   *string
	LabelOptions
}

// LabelsAPI: метки проекта.
type LabelsAPI struct {
	c *core
}

// List возвращает метки проекта.
func (a *LabelsAPI) List(ctx context.Context, projectID int) ([]Label, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/labels").
		SegmentInt("projectId", projectID)
	return getList[Label](ctx, a.c, req)
}

// Create создаёт метку. color: цвет в формате #RRGGBB.
func (a *LabelsAPI) Create(ctx context.Context, projectID int, name, color string, opt LabelOptions) (*Label, error) {
	if err := firstError(requireString("name", name), requireString("color", color)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/labels").
		SegmentInt("projectId", projectID).
		Param("name", name).
		Param("color", color)
	return getOne[Label](ctx, a.c, opt.apply(req))
}

// Update переименовывает метку или меняет её цвет.
func (a *LabelsAPI) Update(ctx context.Context, projectID int, name string, opt LabelUpdate) (*Label, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	if opt.NewName == nil && opt.Color == nil {
		return nil, NewValidationError("new_name", "нужно задать new_name или color")
	}
	req := NewRequest(http.MethodPut, "projects/{projectId}/labels").
		SegmentInt("projectId", projectID).
		Param("name", name).
		ParamIf("new_name", opt.NewName).
		ParamIf("color", opt.Color)
	return getOne[Label](ctx, a.c, opt.apply(req))
}

// Delete удаляет метку по имени.
func (a *LabelsAPI) Delete(ctx context.Context, projectID int, name string) (*Label, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodDelete, "projects/{projectId}/labels").
		SegmentInt("projectId", projectID).
		Param("name", name)
	return getOne[Label](ctx, a.c, req)
}

// Subscribe подписывает текущего пользователя на метку (по ID или имени).
func (a *LabelsAPI) Subscribe(ctx context.Context, projectID int, label string) (*Label, error) {
	return a.subscription(ctx, http.MethodPost, projectID, label)
}

// Unsubscribe отписывает текущего пользователя от метки.
func (a *LabelsAPI) Unsubscribe(ctx context.Context, projectID int, label string) (*Label, error) {
	return a.subscription(ctx, http.MethodDelete, projectID, label)
}

func (a *LabelsAPI) subscription(ctx context.Context, method string, projectID int, label string) (*Label, error) {
	if err := requireString("label", label); err != nil {
		return nil, err
	}
	req := NewRequest(method, "projects/{projectId}/labels/{label}/subscription").
		SegmentInt("projectId", projectID).
		Segment("label", label)
	return getOne[Label](ctx, a.c, req)
}

func (o LabelOptions) apply(req Request) Request {
	return req.
		ParamIf("description", o.Description).
		ParamIfInt("priority", o.Priority)
}
