package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/pkg/apperrors"
	"github.com/Kargones/glclient/internal/pkg/output"
	"github.com/Kargones/glclient/internal/pkg/urlutil"
)

var apiVersionPattern = regexp.MustCompile(`^v[0-9]+$`)

// Load загружает конфигурацию. Если задан GL_CONFIG, значения читаются из
// YAML файла и затем переопределяются переменными окружения; иначе только
// из окружения. Незаданные поля получают значения env-default.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(constants.EnvConfigPath))
}

// LoadFile загружает конфигурацию из указанного файла (пустой путь: только окружение).
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
				fmt.Sprintf("не удалось прочитать конфигурацию из %s", path), err)
		}
		cfg.Path = path
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, err.Error(), err)
	}
	return &cfg, nil
}

// Validate проверяет все секции и возвращает объединённую ошибку.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, validateGitLabConfig(&c.GitLab))
	if err := output.ValidateFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	if err := c.LoggingSettings().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	metricsCfg := c.MetricsSettings()
	if err := metricsCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	tracingCfg := c.TracingSettings()
	if err := tracingCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// validateGitLabConfig проверяет параметры подключения. BaseURL может быть
// пустым: команды help и version работают без сервера.
func validateGitLabConfig(g *GitLabConfig) error {
	var errs []error
	if g.BaseURL != "" {
		u, err := url.Parse(g.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("gitlab: baseUrl должен быть абсолютным URL, получено %q",
				urlutil.StripCredentials(g.BaseURL)))
		}
	}
	if !apiVersionPattern.MatchString(g.APIVersion) {
		errs = append(errs, fmt.Errorf("gitlab: apiVersion должен иметь вид v3, получено %q", g.APIVersion))
	}
	if g.Timeout <= 0 {
		errs = append(errs, errors.New("gitlab: timeout должен быть положительным"))
	}
	if g.MinPerPage < 1 {
		errs = append(errs, errors.New("gitlab: minPerPage должен быть >= 1"))
	}
	if g.MaxPerPage < g.MinPerPage {
		errs = append(errs, errors.New("gitlab: maxPerPage должен быть >= minPerPage"))
	}
	return errors.Join(errs...)
}
