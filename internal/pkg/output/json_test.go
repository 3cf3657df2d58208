package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("testdata/result.schema.json")
	require.NoError(t, err, "не удалось загрузить JSON Schema")
	return schema
}

type project struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
}

func TestJSONWriter_Write(t *testing.T) {
	result := NewSuccess("project-get", project{ID: 5, PathWithNamespace: "tools/glclient", WebURL: "https://gitlab.example.com/tools/glclient?a=1&b=2"}).
		WithMetadata(150*time.Millisecond, "")

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, result))

	assert.Contains(t, buf.String(), "\n  \"status\": \"success\"", "вывод с отступами")
	assert.Contains(t, buf.String(), "a=1&b=2", "HTML-символы не экранируются")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "project-get", parsed["command"])
	assert.Equal(t, "tools/glclient", parsed["data"].(map[string]any)["path_with_namespace"])
	_, hasError := parsed["error"]
	assert.False(t, hasError)
}

func TestJSONWriter_Write_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}

func TestJSONWriter_SchemaValidation(t *testing.T) {
	schema := loadSchema(t)

	tests := []struct {
		name   string
		result *Result
	}{
		{
			name:   "объект",
			result: NewSuccess("user-current", map[string]any{"id": 1, "username": "root"}).WithMetadata(time.Second, "0123456789abcdef0123456789abcdef"),
		},
		{
			name: "страница списка",
			result: &Result{
				Status:  StatusSuccess,
				Command: "project-list",
				Data:    []project{{ID: 5}, {ID: 6}},
				Page:    &PageInfo{Page: 1, PerPage: 2, Total: 3, TotalPages: 2, NextPage: 2},
			},
		},
		{
			name:   "ошибка",
			result: NewError("branch-create", errors.New("boom")).WithMetadata(time.Millisecond, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewJSONWriter().Write(&buf, tt.result))

			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.NoError(t, schema.Validate(doc))
		})
	}
}

func TestJSONWriter_SchemaRejectsErrorWithData(t *testing.T) {
	schema := loadSchema(t)
	result := &Result{Status: StatusError, Command: "x", Data: map[string]any{"a": 1}, Error: &ErrorInfo{Code: "UNKNOWN", Message: "m"}}

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, result))
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Error(t, schema.Validate(doc))
}
