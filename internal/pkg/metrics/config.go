package metrics

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Ошибки проверки Config. Проверяются через errors.Is.
var (
	ErrPushgatewayURLRequired = errors.New("metrics: не задан GL_METRICS_PUSHGATEWAY_URL")
	ErrPushgatewayURLInvalid  = errors.New("metrics: адрес Pushgateway должен быть абсолютным URL")
	ErrJobNameRequired        = errors.New("metrics: не задано имя job")
	ErrInvalidTimeout         = errors.New("metrics: таймаут push должен быть положительным")
)

// Config задаёт отправку метрик glctl в Pushgateway.
// При Enabled=false остальные поля не проверяются.
type Config struct {
	Enabled        bool
	PushgatewayURL string
	JobName        string
	Timeout        time.Duration

	// InstanceLabel заменяет hostname в grouping key.
	InstanceLabel string
}

// DefaultConfig возвращает выключенную конфигурацию с job "glctl".
func DefaultConfig() Config {
	return Config{JobName: "glctl", Timeout: 10 * time.Second}
}

// Validate проверяет конфигурацию включённых метрик.
// Адрес Pushgateway в ошибке не выводится: он может содержать учётные данные.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.PushgatewayURL == "":
		return ErrPushgatewayURLRequired
	case !isAbsoluteURL(c.PushgatewayURL):
		return ErrPushgatewayURLInvalid
	case c.JobName == "":
		return ErrJobNameRequired
	case c.Timeout <= 0:
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
