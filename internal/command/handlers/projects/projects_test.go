package projects

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/testutil"
	"github.com/Kargones/glclient/pkg/gitlab"
	"github.com/Kargones/glclient/pkg/gitlab/gitlabtest"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		resource string
	}{
		{name: "по ID", ref: "5", resource: "projects/{projectId}"},
		{name: "по пути", ref: "tools/glclient", resource: "projects/{projectPath}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, rec, _ := testutil.NewEnv(t)
			rec.OnJSON(http.MethodGet, tt.resource, http.StatusOK, gitlabtest.ProjectData())

			result, err := (&GetHandler{}).Execute(context.Background(), env, []string{"--project", tt.ref})
			require.NoError(t, err)

			project, ok := result.Data.(*gitlab.Project)
			require.True(t, ok)
			assert.Equal(t, 5, project.ID)
			assert.Equal(t, 1, rec.Count(), "проект запрашивается одним запросом")
			assert.Equal(t, http.MethodGet+" "+tt.resource, rec.Last().String())
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	rec.OnJSON(http.MethodGet, "projects/{projectId}", http.StatusNotFound, map[string]string{"message": "404 Project Not Found"})

	_, err := (&GetHandler{}).Execute(context.Background(), env, []string{"--project", "404"})
	assert.Equal(t, apperrors.ErrGitLabNotFound, apperrors.CodeOf(err))
	assert.ErrorIs(t, err, command.ErrNoData)
}

func TestGet_RequiresProject(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	_, err := (&GetHandler{}).Execute(context.Background(), env, nil)
	assert.Equal(t, apperrors.ErrCommandArgs, apperrors.CodeOf(err))
	assert.Zero(t, rec.Count())
}

func TestList_Scopes(t *testing.T) {
	tests := []struct {
		scope    string
		resource string
	}{
		{"member", "projects"},
		{"owned", "projects/owned"},
		{"starred", "projects/starred"},
		{"all", "projects/all"},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			env, rec, _ := testutil.NewEnv(t)
			rec.On(http.MethodGet, tt.resource, gitlabtest.WithPageHeaders(
				gitlabtest.JSONResponse(http.StatusOK, []*gitlab.Project{gitlabtest.ProjectData()}),
				1, 20, 1, 1, 0, 0))

			result, err := (&ListHandler{}).Execute(context.Background(), env, []string{"--scope", tt.scope})
			require.NoError(t, err)

			projects, ok := result.Data.([]gitlab.Project)
			require.True(t, ok)
			assert.Len(t, projects, 1)
			require.NotNil(t, result.Page)
			assert.Equal(t, 1, result.Page.Total)
		})
	}
}

func TestList_Filters(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)

	_, err := (&ListHandler{}).Execute(context.Background(), env, []string{
		"--search", "glc", "--archived=false", "--visibility", "internal",
		"--order-by", "last_activity_at", "--sort", "desc", "--page", "2", "--per-page", "50",
	})
	require.NoError(t, err)

	req := rec.Last()
	for param, want := range map[string]string{
		"search":     "glc",
		"archived":   "false",
		"visibility": "internal",
		"order_by":   "last_activity_at",
		"sort":       "desc",
		"page":       "2",
		"per_page":   "50",
	} {
		got, ok := req.ParamValue(param)
		assert.True(t, ok, param)
		assert.Equal(t, want, got, param)
	}
	assert.False(t, req.HasParam("simple"), "незаданный флаг не передаётся")
}

func TestList_InvalidArgs(t *testing.T) {
	for _, args := range [][]string{
		{"--scope", "mine"},
		{"--visibility", "secret"},
		{"--order-by", "stars"},
		{"--sort", "up"},
	} {
		t.Run(args[1], func(t *testing.T) {
			env, rec, _ := testutil.NewEnv(t)
			_, err := (&ListHandler{}).Execute(context.Background(), env, args)
			assert.Equal(t, apperrors.ErrCommandArgs, apperrors.CodeOf(err))
			assert.Zero(t, rec.Count())
		})
	}
}

func TestList_PageValidation(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	_, err := (&ListHandler{}).Execute(context.Background(), env, []string{"--per-page", "500"})

	var vErr *gitlab.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "per_page", vErr.Field)
	assert.Zero(t, rec.Count())
}
