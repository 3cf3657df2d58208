package gitlabtest

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kargones/glclient/pkg/gitlab"
)

// TestToken: токен, с которым NewClient создаёт клиент.
const TestToken = "test-private-token"

// Compile-time проверка реализации интерфейса
var _ gitlab.Executor = (*Recorder)(nil)

// Recorder: мок-реализация gitlab.Executor, записывающая запросы.
type Recorder struct {
	// RespondFunc, если задан, вызывается для запросов без зарегистрированного ответа.
	RespondFunc func(ctx context.Context, req gitlab.Request) (*gitlab.Response, error)

	mu        sync.Mutex
	requests  []gitlab.Request
	responses map[string]*gitlab.Response
	errs      map[string]error
}

// NewRecorder создаёт Recorder, отвечающий 200 с пустым телом.
func NewRecorder() *Recorder {
	return &Recorder{
		responses: make(map[string]*gitlab.Response),
		errs:      make(map[string]error),
	}
}

// Execute записывает запрос и возвращает настроенный ответ.
func (r *Recorder) Execute(ctx context.Context, req gitlab.Request) (*gitlab.Response, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	key := req.String()
	resp, ok := r.responses[key]
	err := r.errs[key]
	respond := r.RespondFunc
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if ok {
		return cloneResponse(resp), nil
	}
	if respond != nil {
		return respond(ctx, req)
	}
	return &gitlab.Response{StatusCode: http.StatusOK, Header: http.Header{}}, nil
}

// On регистрирует ответ для метода и шаблона ресурса.
func (r *Recorder) On(method, resource string, resp *gitlab.Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[method+" "+resource] = resp
	return r
}

// OnJSON регистрирует JSON ответ со статусом status.
func (r *Recorder) OnJSON(method, resource string, status int, v any) *Recorder {
	return r.On(method, resource, JSONResponse(status, v))
}

// OnError регистрирует транспортную ошибку для метода и шаблона ресурса.
func (r *Recorder) OnError(method, resource string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[method+" "+resource] = err
	return r
}

// Requests возвращает копию записанных запросов.
func (r *Recorder) Requests() []gitlab.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.requests)
}

// Count возвращает количество записанных запросов.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// Last возвращает последний запрос. Без запросов возвращает нулевой Request.
func (r *Recorder) Last() gitlab.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return gitlab.Request{}
	}
	return r.requests[len(r.requests)-1]
}

// Reset очищает записанные запросы, сохраняя ответы.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = nil
}

// JSONResponse сериализует v в тело ответа. Паникует при ошибке сериализации.
func JSONResponse(status int, v any) *gitlab.Response {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &gitlab.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

// TextResponse создаёт ответ с произвольным телом и Content-Type.
func TextResponse(status int, contentType string, body []byte) *gitlab.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &gitlab.Response{StatusCode: status, Header: header, Body: body}
}

// WithPageHeaders добавляет к ответу заголовки пагинации GitLab.
// Нулевые next и prev не выставляются, как у сервера на крайних страницах.
func WithPageHeaders(resp *gitlab.Response, page, perPage, total, totalPages, next, prev int) *gitlab.Response {
	h := resp.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Set("X-Page", strconv.Itoa(page))
	h.Set("X-Per-Page", strconv.Itoa(perPage))
	h.Set("X-Total", strconv.Itoa(total))
	h.Set("X-Total-Pages", strconv.Itoa(totalPages))
	if next > 0 {
		h.Set("X-Next-Page", strconv.Itoa(next))
	}
	if prev > 0 {
		h.Set("X-Prev-Page", strconv.Itoa(prev))
	}
	out := *resp
	out.Header = h
	return &out
}

// NewClient создаёт клиент поверх нового Recorder с токеном TestToken.
func NewClient(t testing.TB, opts ...gitlab.Option) (*gitlab.Client, *Recorder) {
	t.Helper()
	rec := NewRecorder()
	opts = append([]gitlab.Option{gitlab.WithExecutor(rec)}, opts...)
	client, err := gitlab.NewClient(gitlab.Config{PrivateToken: TestToken}, opts...)
	require.NoError(t, err)
	return client, rec
}

func cloneResponse(resp *gitlab.Response) *gitlab.Response {
	out := *resp
	out.Header = resp.Header.Clone()
	if out.Header == nil {
		out.Header = http.Header{}
	}
	out.Body = slices.Clone(resp.Body)
	return &out
}
