package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/glclient/internal/pkg/logging"
)

func newTestCollector(t *testing.T, url string) *PrometheusCollector {
	t.Helper()
	collector, err := NewPrometheusCollector(Config{
		Enabled:        true,
		PushgatewayURL: url,
		JobName:        "glctl",
		Timeout:        10 * time.Second,
		InstanceLabel:  "ci-runner-1",
	}, logging.NewNopLogger())
	require.NoError(t, err)
	return collector
}

func TestPrometheusCollector_RecordCommand(t *testing.T) {
	collector := newTestCollector(t, "http://localhost:9091")

	collector.RecordCommandStart("project-get")
	collector.RecordCommandEnd("project-get", 1500*time.Millisecond, "")
	collector.RecordCommandEnd("project-get", 200*time.Millisecond, "GITLAB.NOT_FOUND")

	assert.Equal(t, float64(1), promtestutil.ToFloat64(collector.commandTotal.WithLabelValues("project-get", "OK")))
	assert.Equal(t, float64(1), promtestutil.ToFloat64(collector.commandTotal.WithLabelValues("project-get", "GITLAB.NOT_FOUND")))
	assert.Equal(t, 2, promtestutil.CollectAndCount(collector.commandDuration, "glclient_command_duration_seconds"))
}

func TestPrometheusCollector_RecordRequest(t *testing.T) {
	collector := newTestCollector(t, "http://localhost:9091")

	collector.RecordRequest(http.MethodGet, "projects/{projectId}", 200, 30*time.Millisecond)
	collector.RecordRequest(http.MethodGet, "projects/{projectId}", 200, 40*time.Millisecond)
	collector.RecordRequest(http.MethodGet, "projects/{projectId}", 404, 10*time.Millisecond)
	collector.RecordRequest(http.MethodPost, "session", 0, time.Second)

	expected := `
# HELP glclient_api_requests_total Total number of GitLab API requests by status code
# TYPE glclient_api_requests_total counter
glclient_api_requests_total{code="200",method="GET",resource="projects/{projectId}"} 2
glclient_api_requests_total{code="404",method="GET",resource="projects/{projectId}"} 1
glclient_api_requests_total{code="transport_error",method="POST",resource="session"} 1
`
	require.NoError(t, promtestutil.CollectAndCompare(collector.requestTotal, strings.NewReader(expected)))
	assert.Equal(t, 2, promtestutil.CollectAndCount(collector.requestDuration))
}

func TestPrometheusCollector_RegisteredNames(t *testing.T) {
	collector := newTestCollector(t, "http://localhost:9091")
	collector.RecordCommandEnd("version", time.Millisecond, "")
	collector.RecordRequest(http.MethodGet, "version", 200, time.Millisecond)

	families, err := collector.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"glclient_command_duration_seconds",
		"glclient_command_total",
		"glclient_api_request_duration_seconds",
		"glclient_api_requests_total",
	}, names)
}

func TestPrometheusCollector_Push(t *testing.T) {
	var receivedMethod, receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector := newTestCollector(t, server.URL)
	collector.RecordCommandEnd("branch-list", time.Second, "")

	require.NoError(t, collector.Push(context.Background()))
	assert.Equal(t, http.MethodPut, receivedMethod)
	assert.Equal(t, "/metrics/job/glctl/instance/ci-runner-1", receivedPath)
}

func TestPrometheusCollector_PushErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector := newTestCollector(t, server.URL)
	assert.NoError(t, collector.Push(context.Background()), "Push должен возвращать nil даже при ошибке")
}

func TestPrometheusCollector_PushCancelledContext(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector := newTestCollector(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, collector.Push(ctx))
	assert.False(t, called, "отменённый контекст не должен приводить к запросу")
}

func TestNewCollector_Factory(t *testing.T) {
	logger := logging.NewNopLogger()

	disabled, err := NewCollector(Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &NopCollector{}, disabled)
	assert.NotPanics(t, func() {
		disabled.RecordCommandStart("x")
		disabled.RecordCommandEnd("x", time.Second, "")
		disabled.RecordRequest(http.MethodGet, "version", 200, time.Second)
	})
	assert.NoError(t, disabled.Push(context.Background()))

	_, err = NewCollector(Config{Enabled: true}, logger)
	assert.ErrorIs(t, err, ErrPushgatewayURLRequired)

	enabled, err := NewCollector(Config{Enabled: true, PushgatewayURL: "http://pg:9091", JobName: "glctl", Timeout: time.Second}, logger)
	require.NoError(t, err)
	assert.IsType(t, &PrometheusCollector{}, enabled)
}

func TestMetricsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "отключены", config: Config{}},
		{name: "по умолчанию", config: DefaultConfig()},
		{name: "без URL", config: Config{Enabled: true, JobName: "j", Timeout: time.Second}, wantErr: ErrPushgatewayURLRequired},
		{name: "невалидный URL", config: Config{Enabled: true, PushgatewayURL: "pushgateway", JobName: "j", Timeout: time.Second}, wantErr: ErrPushgatewayURLInvalid},
		{name: "без job", config: Config{Enabled: true, PushgatewayURL: "http://pg:9091", Timeout: time.Second}, wantErr: ErrJobNameRequired},
		{name: "нулевой таймаут", config: Config{Enabled: true, PushgatewayURL: "http://pg:9091", JobName: "j"}, wantErr: ErrInvalidTimeout},
		{name: "валидная", config: Config{Enabled: true, PushgatewayURL: "http://pg:9091", JobName: "j", Timeout: time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "project-get", sanitizeLabel("project-get"))
	assert.Equal(t, "a_b_c", sanitizeLabel("a\nb\rc"))
	long := strings.Repeat("я", maxLabelLength+10)
	assert.Equal(t, maxLabelLength, len([]rune(sanitizeLabel(long))))
}
