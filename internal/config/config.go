// Package config загружает конфигурацию glctl из YAML файла и переменных
// окружения GL_*. Переменные окружения переопределяют значения из файла.
package config

import (
	"log/slog"
	"time"

	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/logging"
	"github.com/Kargones/glclient/internal/pkg/metrics"
	"github.com/Kargones/glclient/internal/pkg/tracing"
	"github.com/Kargones/glclient/internal/pkg/urlutil"
	"github.com/Kargones/glclient/pkg/gitlab"
)

// Config: корневая конфигурация приложения.
type Config struct {
	// Command: имя команды, если она не передана первым аргументом.
	Command string `yaml:"command" env:"GL_COMMAND"`

	// Path: путь к YAML файлу, из которого загружена конфигурация.
	Path string `yaml:"-"`

	GitLab  GitLabConfig  `yaml:"gitlab"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// GitLabConfig содержит параметры подключения к серверу GitLab.
type GitLabConfig struct {
	// BaseURL: адрес сервера, например https://gitlab.example.com
	BaseURL string `yaml:"baseUrl" env:"GL_BASE_URL"`

	// PrivateToken: токен для заголовка PRIVATE-TOKEN
	PrivateToken string `yaml:"privateToken" env:"GL_PRIVATE_TOKEN"`

	// APIVersion: версия REST API
	APIVersion string `yaml:"apiVersion" env:"GL_API_VERSION" env-default:"v3"`

	// UserAgent: значение заголовка User-Agent
	UserAgent string `yaml:"userAgent" env:"GL_USER_AGENT" env-default:"glctl"`

	// Timeout: таймаут одного HTTP запроса
	Timeout time.Duration `yaml:"timeout" env:"GL_TIMEOUT" env-default:"30s"`

	// MinPerPage, MaxPerPage: границы размера страницы
	MinPerPage int `yaml:"minPerPage" env:"GL_MIN_PER_PAGE" env-default:"1"`
	MaxPerPage int `yaml:"maxPerPage" env:"GL_MAX_PER_PAGE" env-default:"100"`
}

// LogValue скрывает токен и учётные данные в адресе при логировании конфигурации.
func (g GitLabConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", urlutil.StripCredentials(g.BaseURL)),
		slog.String("api_version", g.APIVersion),
		slog.Bool("token_set", g.PrivateToken != ""),
		slog.Duration("timeout", g.Timeout),
	)
}

// OutputConfig задаёт формат вывода результатов команд.
type OutputConfig struct {
	// Format: json, yaml или text
	Format string `yaml:"format" env:"GL_OUTPUT_FORMAT" env-default:"text"`
}

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"GL_LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"GL_LOG_FORMAT" env-default:"text"`
	Output     string `yaml:"output" env:"GL_LOG_OUTPUT" env-default:"stderr"`
	FilePath   string `yaml:"filePath" env:"GL_LOG_FILE_PATH" env-default:"/var/log/glctl.log"`
	MaxSize    int    `yaml:"maxSize" env:"GL_LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"maxBackups" env:"GL_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"maxAge" env:"GL_LOG_MAX_AGE" env-default:"7"`

	// Compress не имеет env-default: cleanenv перезаписал бы явное false из YAML.
	Compress bool `yaml:"compress" env:"GL_LOG_COMPRESS"`
}

// MetricsConfig содержит настройки отправки метрик в Pushgateway.
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"GL_METRICS_ENABLED"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"GL_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"GL_METRICS_JOB_NAME" env-default:"glctl"`
	Timeout        time.Duration `yaml:"timeout" env:"GL_METRICS_TIMEOUT" env-default:"10s"`
	InstanceLabel  string        `yaml:"instanceLabel" env:"GL_METRICS_INSTANCE"`
}

// TracingConfig содержит настройки экспорта трейсов по OTLP HTTP.
type TracingConfig struct {
	Enabled      bool          `yaml:"enabled" env:"GL_TRACING_ENABLED"`
	Endpoint     string        `yaml:"endpoint" env:"GL_TRACING_ENDPOINT"`
	ServiceName  string        `yaml:"serviceName" env:"GL_TRACING_SERVICE_NAME" env-default:"glctl"`
	Environment  string        `yaml:"environment" env:"GL_TRACING_ENVIRONMENT" env-default:"production"`
	Insecure     bool          `yaml:"insecure" env:"GL_TRACING_INSECURE"`
	Timeout      time.Duration `yaml:"timeout" env:"GL_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `yaml:"samplingRate" env:"GL_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// GitLabClientConfig возвращает конфигурацию клиента pkg/gitlab.
func (c *Config) GitLabClientConfig() gitlab.Config {
	return gitlab.Config{
		BaseURL:      c.GitLab.BaseURL,
		APIVersion:   c.GitLab.APIVersion,
		PrivateToken: c.GitLab.PrivateToken,
		UserAgent:    c.GitLab.UserAgent + "/" + constants.Version,
		Timeout:      c.GitLab.Timeout,
		MinPerPage:   c.GitLab.MinPerPage,
		MaxPerPage:   c.GitLab.MaxPerPage,
	}
}

// LoggingSettings возвращает настройки для logging.NewLogger.
func (c *Config) LoggingSettings() logging.Config {
	return logging.Config{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		Output:     c.Logging.Output,
		FilePath:   c.Logging.FilePath,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
		Compress:   c.Logging.Compress,
	}
}

// MetricsSettings возвращает настройки для metrics.NewCollector.
func (c *Config) MetricsSettings() metrics.Config {
	return metrics.Config{
		Enabled:        c.Metrics.Enabled,
		PushgatewayURL: c.Metrics.PushgatewayURL,
		JobName:        c.Metrics.JobName,
		Timeout:        c.Metrics.Timeout,
		InstanceLabel:  c.Metrics.InstanceLabel,
	}
}

// TracingSettings возвращает настройки для tracing.NewProvider.
func (c *Config) TracingSettings() tracing.Config {
	return tracing.Config{
		Enabled:      c.Tracing.Enabled,
		Endpoint:     c.Tracing.Endpoint,
		ServiceName:  c.Tracing.ServiceName,
		Version:      constants.Version,
		Environment:  c.Tracing.Environment,
		Insecure:     c.Tracing.Insecure,
		Timeout:      c.Tracing.Timeout,
		SamplingRate: c.Tracing.SamplingRate,
	}
}
