package gitlab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPTransport исполняет запросы через net/http.
// URL строится как <BaseURL>/api/<APIVersion>/<путь ресурса>.
type HTTPTransport struct {
	// BaseURL: адрес сервера GitLab без суффикса /api
	BaseURL string
	// APIVersion: версия API (v3, v4)
	APIVersion string
	// UserAgent: значение заголовка User-Agent
	UserAgent string
	// Client: HTTP клиент; nil означает http.DefaultClient
	Client *http.Client
}

// Compile-time проверка реализации интерфейса.
var _ Executor = (*HTTPTransport)(nil)

// URL возвращает полный адрес запроса без query string.
func (t *HTTPTransport) URL(req Request) (string, error) {
	path, err := req.Path()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(t.BaseURL, "/") + "/api/" + t.APIVersion + "/" + strings.TrimLeft(path, "/"), nil
}

// Execute отправляет запрос и читает тело ответа целиком.
// Ошибки http.Client возвращаются без обёртки.
func (t *HTTPTransport) Execute(ctx context.Context, req Request) (*Response, error) {
	target, err := t.URL(req)
	if err != nil {
		return nil, fmt.Errorf("построение URL %s: %w", req, err)
	}

	query, form, header := req.Encode()
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	for name, values := range header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set("Accept", "application/json")
	if t.UserAgent != "" {
		httpReq.Header.Set("User-Agent", t.UserAgent)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}
