package gitlab

import (
	"context"
	"net/http"
)

// TreeNode: элемент дерева репозитория.
type TreeNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
	Mode string `json:"mode"`
}

// Comparison: результат сравнения двух ревизий.
type Comparison struct {
	Commit         *Commit  `json:"commit"`
	Commits        []Commit `json:"commits"`
	Diffs          []Diff   `json:"diffs"`
	CompareTimeout bool     `json:"compare_timeout"`
	CompareSameRef bool     `json:"compare_same_ref"`
}

// Contributor: статистика вклада автора.
type Contributor struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// TreeOptions: параметры обхода дерева.
type TreeOptions struct {
	Path      *string
	RefName   *string
	Recursive *bool
}

// RepositoryAPI: содержимое репозитория проекта.
type RepositoryAPI struct {
	c *core
}

// Tree возвращает список файлов и каталогов.
func (a *RepositoryAPI) Tree(ctx context.Context, projectID int, opt TreeOptions) ([]TreeNode, error) {
	req := a.repo(http.MethodGet, "/tree", projectID).
		ParamIf("path", opt.Path).
		ParamIf("ref_name", opt.RefName).
		ParamIfBool("recursive", opt.Recursive)
	return getList[TreeNode](ctx, a.c, req)
}

// RawFile возвращает содержимое файла filePath на ревизии sha.
func (a *RepositoryAPI) RawFile(ctx context.Context, projectID int, sha, filePath string) ([]byte, error) {
	if err := firstError(requireString("sha", sha), requireString("filepath", filePath)); err != nil {
		return nil, err
	}
	req := a.repo(http.MethodGet, "/blobs/{sha}", projectID).
		Segment("sha", sha).
		Param("filepath", filePath)
	return getBytes(ctx, a.c, req)
}

// RawBlob возвращает содержимое blob по его SHA.
func (a *RepositoryAPI) RawBlob(ctx context.Context, projectID int, blobSHA string) ([]byte, error) {
	if err := requireString("blob_sha", blobSHA); err != nil {
		return nil, err
	}
	req := a.repo(http.MethodGet, "/raw_blobs/{blobSha}", projectID).
		Segment("blobSha", blobSHA)
	return getBytes(ctx, a.c, req)
}

// Archive возвращает tar.gz архив репозитория на ревизии sha
// (по умолчанию ветка по умолчанию).
func (a *RepositoryAPI) Archive(ctx context.Context, projectID int, sha *string) ([]byte, error) {
	req := a.repo(http.MethodGet, "/archive", projectID).
		ParamIf("sha", sha)
	return getBytes(ctx, a.c, req)
}

// Compare сравнивает две ревизии.
func (a *RepositoryAPI) Compare(ctx context.Context, projectID int, from, to string) (*Comparison, error) {
	if err := firstError(requireString("from", from), requireString("to", to)); err != nil {
		return nil, err
	}
	req := a.repo(http.MethodGet, "/compare", projectID).
		Param("from", from).
		Param("to", to)
	return getOne[Comparison](ctx, a.c, req)
}

// Contributors возвращает статистику авторов репозитория.
func (a *RepositoryAPI) Contributors(ctx context.Context, projectID int) ([]Contributor, error) {
	return getList[Contributor](ctx, a.c, a.repo(http.MethodGet, "/contributors", projectID))
}

func (a *RepositoryAPI) repo(method, suffix string, projectID int) Request {
	return NewRequest(method, "projects/{projectId}/repository"+suffix).
		SegmentInt("projectId", projectID)
}
