package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Build: задание CI конвейера.
type Build struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Stage         string         `json:"stage"`
	Status        string         `json:"status"`
	Ref           string         `json:"ref"`
	Tag           bool           `json:"tag"`
	Coverage      *float64       `json:"coverage"`
	CreatedAt     *time.Time     `json:"created_at"`
	StartedAt     *time.Time     `json:"started_at"`
	FinishedAt    *time.Time     `json:"finished_at"`
	Commit        *Commit        `json:"commit"`
	Runner        *Runner        `json:"runner"`
	User          *UserBasic     `json:"user"`
	Pipeline      *PipelineBasic `json:"pipeline"`
	ArtifactsFile *ArtifactsFile `json:"artifacts_file"`
}

// ArtifactsFile: описание архива артефактов сборки.
type ArtifactsFile struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// BuildsAPI: задания CI проекта.
type BuildsAPI struct {
	c *core
}

// List возвращает страницу заданий проекта, опционально отфильтрованных по статусам.
func (a *BuildsAPI) List(ctx context.Context, projectID int, scopes []BuildScope, page ListOptions) (*PagedResult[Build], error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/builds").
		SegmentInt("projectId", projectID).
		ParamIfEnumList("scope", enumList(scopes))
	return getPage[Build](ctx, a.c, req, page)
}

// ListForCommit возвращает задания коммита.
func (a *BuildsAPI) ListForCommit(ctx context.Context, projectID int, sha string, scopes []BuildScope) ([]Build, error) {
	if err := requireString("sha", sha); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/commits/{sha}/builds").
		SegmentInt("projectId", projectID).
		Segment("sha", sha).
		ParamIfEnumList("scope", enumList(scopes))
	return getList[Build](ctx, a.c, req)
}

// Find возвращает задание по ID.
func (a *BuildsAPI) Find(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodGet, "", projectID, buildID))
}

// Artifacts скачивает архив артефактов задания.
func (a *BuildsAPI) Artifacts(ctx context.Context, projectID, buildID int) ([]byte, error) {
	return getBytes(ctx, a.c, a.build(http.MethodGet, "/artifacts", projectID, buildID))
}

// LatestArtifacts скачивает артефакты последнего успешного задания job для ref.
func (a *BuildsAPI) LatestArtifacts(ctx context.Context, projectID int, ref, job string) ([]byte, error) {
	if err := firstError(requireString("ref", ref), requireString("job", job)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/builds/artifacts/{refName}/download").
		SegmentInt("projectId", projectID).
		Segment("refName", ref).
		Param("job", job)
	return getBytes(ctx, a.c, req)
}

// Trace возвращает журнал выполнения задания.
func (a *BuildsAPI) Trace(ctx context.Context, projectID, buildID int) (string, error) {
	return getText(ctx, a.c, a.build(http.MethodGet, "/trace", projectID, buildID))
}

// Cancel отменяет задание.
func (a *BuildsAPI) Cancel(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodPost, "/cancel", projectID, buildID))
}

// Retry перезапускает задание.
func (a *BuildsAPI) Retry(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodPost, "/retry", projectID, buildID))
}

// Erase удаляет журнал и артефакты задания.
func (a *BuildsAPI) Erase(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodPost, "/erase", projectID, buildID))
}

// KeepArtifacts отменяет истечение срока хранения артефактов.
func (a *BuildsAPI) KeepArtifacts(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodPost, "/artifacts/keep", projectID, buildID))
}

// Play запускает ручное задание.
func (a *BuildsAPI) Play(ctx context.Context, projectID, buildID int) (*Build, error) {
	return getOne[Build](ctx, a.c, a.build(http.MethodPost, "/play", projectID, buildID))
}

func (a *BuildsAPI) build(method, suffix string, projectID, buildID int) Request {
	return NewRequest(method, "projects/{projectId}/builds/{buildId}"+suffix).
		SegmentInt("projectId", projectID).
		SegmentInt("buildId", buildID)
}
