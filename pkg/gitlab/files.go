package gitlab

import (
	"context"
	"encoding/base64"
	"net/http"
)

// File: файл репозитория с содержимым.
type File struct {
	FileName     string `json:"file_name"`
	FilePath     string `json:"file_path"`
	Size         int    `json:"size"`
	Encoding     string `json:"encoding"`
	Content      string `json:"content"`
	Ref          string `json:"ref"`
	BlobID       string `json:"blob_id"`
	CommitID     string `json:"commit_id"`
	LastCommitID string `json:"last_commit_id"`
}

// Decode возвращает содержимое файла с учётом его кодировки.
func (f *File) Decode() ([]byte, error) {
	if f.Encoding == "base64" {
		return base64.StdEncoding.DecodeString(f.Content)
	}
	return []byte(f.Content), nil
}

// FileInfo: результат изменения файла.
type FileInfo struct {
	FilePath   string `json:"file_path"`
	BranchName string `json:"branch_name"`
}

// FileCommit: параметры коммита, создающего или меняющего файл.
type FileCommit struct {
	// FilePath: путь к файлу (обязательный)
	FilePath string
	// BranchName: ветка коммита (обязательный)
	BranchName string
	// Content: содержимое файла (обязательный для Create/Update)
	Content string
	// CommitMessage: сообщение коммита (обязательный)
	CommitMessage string
	// Encoding: кодировка Content (text или base64)
	Encoding FileEncoding
	// AuthorEmail: email автора коммита
	AuthorEmail *string
	// AuthorName: имя автора коммита
	AuthorName *string
}

// FilesAPI: файлы репозитория проекта.
type FilesAPI struct {
	c *core
}

// Find возвращает файл filePath на ref.
func (a *FilesAPI) Find(ctx context.Context, projectID int, filePath, ref string) (*File, error) {
	if err := firstError(requireString("file_path", filePath), requireString("ref", ref)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/files").
		SegmentInt("projectId", projectID).
		Param("file_path", filePath).
		Param("ref", ref)
	return getOne[File](ctx, a.c, req)
}

// Create создаёт файл отдельным коммитом.
func (a *FilesAPI) Create(ctx context.Context, projectID int, file FileCommit) (*FileInfo, error) {
	return a.write(ctx, http.MethodPost, projectID, file)
}

// Update меняет файл отдельным коммитом.
func (a *FilesAPI) Update(ctx context.Context, projectID int, file FileCommit) (*FileInfo, error) {
	return a.write(ctx, http.MethodPut, projectID, file)
}

func (a *FilesAPI) write(ctx context.Context, method string, projectID int, file FileCommit) (*FileInfo, error) {
	if err := firstError(
		requireString("file_path", file.FilePath),
		requireString("branch_name", file.BranchName),
		requireString("content", file.Content),
		requireString("commit_message", file.CommitMessage),
	); err != nil {
		return nil, err
	}
	req := NewRequest(method, "projects/{projectId}/repository/files").
		SegmentInt("projectId", projectID).
		Param("file_path", file.FilePath).
		Param("branch_name", file.BranchName).
		Param("content", file.Content).
		Param("commit_message", file.CommitMessage).
		ParamIfEnum("encoding", file.Encoding).
		ParamIf("author_email", file.AuthorEmail).
		ParamIf("author_name", file.AuthorName)
	return getOne[FileInfo](ctx, a.c, req)
}

// Delete удаляет файл отдельным коммитом. Content и Encoding игнорируются.
func (a *FilesAPI) Delete(ctx context.Context, projectID int, file FileCommit) (*FileInfo, error) {
	if err := firstError(
		requireString("file_path", file.FilePath),
		requireString("branch_name", file.BranchName),
		requireString("commit_message", file.CommitMessage),
	); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodDelete, "projects/{projectId}/repository/files").
		SegmentInt("projectId", projectID).
		Param("file_path", file.FilePath).
		Param("branch_name", file.BranchName).
		Param("commit_message", file.CommitMessage).
		ParamIf("author_email", file.AuthorEmail).
		ParamIf("author_name", file.AuthorName)
	return getOne[FileInfo](ctx, a.c, req)
}
