package testutil

import (
	"bytes"
	"testing"

	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/config"
	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/pkg/gitlab"
	"github.com/Kargones/glclient/pkg/gitlab/gitlabtest"
)

// NewEnv создаёт окружение обработчиков поверх gitlabtest.Recorder.
// Логи пишутся в JSON в возвращаемый буфер.
func NewEnv(t *testing.T) (*command.Env, *gitlabtest.Recorder, *bytes.Buffer) {
	t.Helper()
	client, rec := gitlabtest.NewClient(t, gitlab.WithMiddleware(command.FailureMiddleware()))

	logs := &bytes.Buffer{}
	logCfg := logging.DefaultConfig()
	logCfg.Format = logging.FormatJSON
	logCfg.Level = logging.LevelDebug

	cfg := &config.Config{}
	cfg.GitLab.APIVersion = client.Config().APIVersion

	return &command.Env{
		Config: cfg,
		Logger: logging.NewLoggerWithWriter(logCfg, logs),
		Client: client,
	}, rec, logs
}
