package gitlab

import (
	"context"
	"net/http"
)

// Branch: ветка репозитория.
type Branch struct {
	Name               string  `json:"name"`
	Commit             *Commit `json:"commit"`
	Protected          bool    `json:"protected"`
	DevelopersCanPush  bool    `json:"developers_can_push"`
	DevelopersCanMerge bool    `json:"developers_can_merge"`
}

// ProtectBranchOptions: необязательные параметры защиты ветки.
type ProtectBranchOptions struct {
	DevelopersCanPush  *bool
	DevelopersCanMerge *bool
}

// BranchesAPI: ветки репозитория проекта.
type BranchesAPI struct {
	c *core
}

// List возвращает все ветки проекта.
func (a *BranchesAPI) List(ctx context.Context, projectID int) ([]Branch, error) {
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/branches").
		SegmentInt("projectId", projectID)
	return getList[Branch](ctx, a.c, req)
}

// Find возвращает ветку по имени.
func (a *BranchesAPI) Find(ctx context.Context, projectID int, branch string) (*Branch, error) {
	if err := requireString("branch", branch); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "projects/{projectId}/repository/branches/{branchName}").
		SegmentInt("projectId", projectID).
		Segment("branchName", branch)
	return getOne[Branch](ctx, a.c, req)
}

// Create создаёт ветку branch от ref (имя ветки, тега или SHA).
func (a *BranchesAPI) Create(ctx context.Context, projectID int, branch, ref string) (*Branch, error) {
	if err := firstError(requireString("branch", branch), requireString("ref", ref)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "projects/{projectId}/repository/branches").
		SegmentInt("projectId", projectID).
		Param("branch_name", branch).
		Param("ref", ref)
	return getOne[Branch](ctx, a.c, req)
}

// Delete удаляет ветку.
func (a *BranchesAPI) Delete(ctx context.Context, projectID int, branch string) error {
	if err := requireString("branch", branch); err != nil {
		return err
	}
	req := NewRequest(http.MethodDelete, "projects/{projectId}/repository/branches/{branchName}").
		SegmentInt("projectId", projectID).
		Segment("branchName", branch)
	return send(ctx, a.c, req)
}

// Protect защищает ветку.
func (a *BranchesAPI) Protect(ctx context.Context, projectID int, branch string, opt ProtectBranchOptions) (*Branch, error) {
	if err := requireString("branch", branch); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPut, "projects/{projectId}/repository/branches/{branchName}/protect").
		SegmentInt("projectId", projectID).
		Segment("branchName", branch).
		ParamIfBool("developers_can_push", opt.DevelopersCanPush).
		ParamIfBool("developers_can_merge", opt.DevelopersCanMerge)
	return getOne[Branch](ctx, a.c, req)
}

// Unprotect снимает защиту с ветки.
func (a *BranchesAPI) Unprotect(ctx context.Context, projectID int, branch string) (*Branch, error) {
	if err := requireString("branch", branch); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPut, "projects/{projectId}/repository/branches/{branchName}/unprotect").
		SegmentInt("projectId", projectID).
		Segment("branchName", branch)
	return getOne[Branch](ctx, a.c, req)
}
