// Package urlutil предоставляет утилиты для безопасной работы с URL.
package urlutil

import (
	"net/url"
	"strings"
)

// sensitiveParams: query-параметры, значения которых не выводятся в логи.
var sensitiveParams = []string{"private_token", "access_token", "token", "password"}

// MaskURL маскирует URL для безопасного логирования.
// Скрывает path и query параметры, которые могут содержать токены.
// Пример: "http://pushgateway:9091/metrics/job/glctl" → "http://pushgateway:9091/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}

// StripCredentials убирает из URL userinfo и заменяет значения
// чувствительных query-параметров на "***". Путь сохраняется.
// Строки, которые не разбираются как URL, возвращаются без изменений.
func StripCredentials(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.User = nil
	if u.RawQuery != "" {
		q := u.Query()
		for name := range q {
			if isSensitive(name) {
				q.Set(name, "***")
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func isSensitive(name string) bool {
	name = strings.ToLower(name)
	for _, s := range sensitiveParams {
		if name == s {
			return true
		}
	}
	return false
}
