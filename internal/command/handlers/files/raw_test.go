package files

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/testutil"
	"github.com/Kargones/glclient/pkg/gitlab/gitlabtest"
)

const blobResource = "projects/{projectId}/repository/blobs/{sha}"

func TestRaw_Text(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	rec.On(http.MethodGet, blobResource,
		gitlabtest.TextResponse(http.StatusOK, "text/plain", []byte("module example\n")))

	result, err := (&RawHandler{}).Execute(context.Background(), env,
		[]string{"--project", "5", "--path", "go.mod", "--ref", "v1.0.0"})
	require.NoError(t, err)

	data := result.Data.(*Data)
	assert.Equal(t, "module example\n", data.Content)
	assert.Equal(t, 15, data.Size)
	assert.False(t, data.Binary)
	assert.Equal(t, "v1.0.0", data.Ref)

	req := rec.Last()
	sha, _ := req.SegmentValue("sha")
	path, _ := req.ParamValue("filepath")
	assert.Equal(t, "v1.0.0", sha)
	assert.Equal(t, "go.mod", path)
}

func TestRaw_DefaultRefAndBinary(t *testing.T) {
	env, rec, _ := testutil.NewEnv(t)
	rec.On(http.MethodGet, blobResource,
		gitlabtest.TextResponse(http.StatusOK, "application/octet-stream", []byte{0xff, 0xfe, 0x00}))

	result, err := (&RawHandler{}).Execute(context.Background(), env, []string{"--project", "5", "--path", "logo.png"})
	require.NoError(t, err)

	data := result.Data.(*Data)
	assert.Equal(t, "master", data.Ref)
	assert.True(t, data.Binary)
	assert.Empty(t, data.Content)
	assert.Equal(t, 3, data.Size)
}

func TestRaw_RequiresPath(t *testing.T) {
	env, _, _ := testutil.NewEnv(t)
	_, err := (&RawHandler{}).Execute(context.Background(), env, []string{"--project", "5"})
	assert.Equal(t, apperrors.ErrCommandArgs, apperrors.CodeOf(err))
}
