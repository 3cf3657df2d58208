package mergerequests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/testutil"
	"github.com/Kargones/glclient/pkg/gitlab"
	"github.com/Kargones/glclient/pkg/gitlab/gitlabtest"
)

func TestList(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	rec.On(http.MethodGet, "projects/{projectId}/merge_requests", gitlabtest.WithPageHeaders(
		gitlabtest.JSONResponse(http.StatusOK, []*gitlab.MergeRequest{gitlabtest.MergeRequestData()}),
		1, 20, 1, 1, 0, 0))

	result, err := (&ListHandler{}).Execute(context.Background(), env, []string{
		"--project", "5", "--state", "merged", "--iid", "3,4", "--order-by", "created_at", "--sort", "desc",
	})
	require.NoError(t, err)

	mrs := result.Data.([]gitlab.MergeRequest)
	require.Len(t, mrs, 1)
	assert.Equal(t, gitlabtest.MergeRequestData().IID, mrs[0].IID)

	query, _, _ := rec.Last().Encode()
	assert.Equal(t, []string{"3", "4"}, query["iid[]"])
	assert.Equal(t, "merged", query.Get("state"))
	assert.Equal(t, "desc", query.Get("sort"))
}

func TestList_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"без проекта", []string{"--state", "opened"}},
		{"неизвестное состояние", []string{"--project", "5", "--state", "draft"}},
		{"номер не число", []string{"--project", "5", "--iid", "3,x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, rec, _ := testutil.NewEnv(t)
			_, err := (&ListHandler{}).Execute(context.Background(), env, tt.args)
			assert.Equal(t, apperrors.ErrCommandArgs, apperrors.CodeOf(err))
			assert.Zero(t, rec.Count())
		})
	}
}
