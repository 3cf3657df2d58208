package gitlab

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"
)

const (
	// DefaultAPIVersion: версия API по умолчанию.
	DefaultAPIVersion = "v3"
	// DefaultUserAgent: User-Agent по умолчанию.
	DefaultUserAgent = "glclient"
	// DefaultTimeout: таймаут HTTP клиента по умолчанию.
	DefaultTimeout = 30 * time.Second
)

// Config: неизменяемая конфигурация клиента.
type Config struct {
	// BaseURL: адрес сервера GitLab, например https://gitlab.example.com
	BaseURL string
	// APIVersion: версия API (по умолчанию v3)
	APIVersion string
	// PrivateToken: токен для заголовка PRIVATE-TOKEN (может быть пустым)
	PrivateToken string
	// UserAgent: значение заголовка User-Agent
	UserAgent string
	// Timeout: таймаут HTTP клиента (используется, если не задан WithHTTPClient)
	Timeout time.Duration
	// MinPerPage: минимальный размер страницы
	MinPerPage int
	// MaxPerPage: максимальный размер страницы
	MaxPerPage int
}

// withDefaults заполняет незаданные поля значениями по умолчанию.
func (c Config) withDefaults() Config {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MinPerPage == 0 {
		c.MinPerPage = DefaultMinPerPage
	}
	if c.MaxPerPage == 0 {
		c.MaxPerPage = DefaultMaxPerPage
	}
	return c
}

// validate проверяет конфигурацию. BaseURL обязателен только для HTTP транспорта.
func (c Config) validate(needBaseURL bool) error {
	if needBaseURL {
		if err := requireString("BaseURL", c.BaseURL); err != nil {
			return err
		}
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return NewValidationError("BaseURL", "ожидается абсолютный URL вида https://host")
		}
	}
	if c.MinPerPage < 1 {
		return NewValidationError("MinPerPage", "должен быть >= 1")
	}
	if c.MaxPerPage < c.MinPerPage {
		return NewValidationError("MaxPerPage", "должен быть >= MinPerPage")
	}
	return nil
}

// Option настраивает Client при создании.
type Option func(*options)

type options struct {
	executor    Executor
	httpClient  *http.Client
	middlewares []Middleware
	logger      *slog.Logger
}

// WithExecutor заменяет HTTP транспорт произвольным Executor (например, в тестах).
func WithExecutor(exec Executor) Option {
	return func(o *options) { o.executor = exec }
}

// WithHTTPClient задаёт http.Client для HTTP транспорта.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithMiddleware добавляет middleware в цепочку исполнения.
// Middleware применяются в порядке добавления.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *options) { o.middlewares = append(o.middlewares, mws...) }
}

// WithLogger включает логирование запросов.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// core: общее неизменяемое состояние, разделяемое всеми ресурсами клиента.
type core struct {
	exec   Executor
	bounds PageBounds
}

// Client: типизированный клиент GitLab API.
// Поля ресурсов разделяют одну неизменяемую конфигурацию; клиент безопасен
// для конкурентного использования.
type Client struct {
	cfg       Config
	transport Executor
	chain     []Middleware
	core      *core

	Branches        *BranchesAPI
	Builds          *BuildsAPI
	Commits         *CommitsAPI
	DeployKeys      *DeployKeysAPI
	Deployments     *DeploymentsAPI
	Environments    *EnvironmentsAPI
	Files           *FilesAPI
	GroupMembers    *GroupMembersAPI
	Groups          *GroupsAPI
	Issues          *IssuesAPI
	Keys            *KeysAPI
	Labels          *LabelsAPI
	MergeRequests   *MergeRequestsAPI
	Milestones      *MilestonesAPI
	Namespaces      *NamespacesAPI
	Notes           *NotesAPI
	Pipelines       *PipelinesAPI
	ProjectHooks    *ProjectHooksAPI
	ProjectMembers  *ProjectMembersAPI
	ProjectSnippets *ProjectSnippetsAPI
	Projects        *ProjectsAPI
	Repository      *RepositoryAPI
	Runners         *RunnersAPI
	Session         *SessionAPI
	Settings        *SettingsAPI
	Sidekiq         *SidekiqAPI
	SystemHooks     *SystemHooksAPI
	Tags            *TagsAPI
	Templates       *TemplatesAPI
	Todos           *TodosAPI
	Triggers        *TriggersAPI
	Users           *UsersAPI
	Variables       *VariablesAPI
	Version         *VersionAPI
}

// NewClient создаёт клиент. Без WithExecutor используется HTTPTransport
// поверх net/http с таймаутом cfg.Timeout.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(o.executor == nil); err != nil {
		return nil, err
	}

	transport := o.executor
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		transport = &HTTPTransport{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
			UserAgent:  cfg.UserAgent,
			Client:     httpClient,
		}
	}

	chain := slices.Clone(o.middlewares)
	if o.logger != nil {
		chain = append(chain, LoggingMiddleware(o.logger))
	}

	return newClient(cfg, transport, chain), nil
}

func newClient(cfg Config, transport Executor, chain []Middleware) *Client {
	mws := append([]Middleware{AuthMiddleware(cfg.PrivateToken)}, chain...)
	c := &core{
		exec:   Chain(transport, mws...),
		bounds: PageBounds{MinPerPage: cfg.MinPerPage, MaxPerPage: cfg.MaxPerPage},
	}
	return &Client{
		cfg:       cfg,
		transport: transport,
		chain:     chain,
		core:      c,

		Branches:        &BranchesAPI{c: c},
		Builds:          &BuildsAPI{c: c},
		Commits:         &CommitsAPI{c: c},
		DeployKeys:      &DeployKeysAPI{c: c},
		Deployments:     &DeploymentsAPI{c: c},
		Environments:    &EnvironmentsAPI{c: c},
		Files:           &FilesAPI{c: c},
		GroupMembers:    &GroupMembersAPI{c: c},
		Groups:          &GroupsAPI{c: c},
		Issues:          &IssuesAPI{c: c},
		Keys:            &KeysAPI{c: c},
		Labels:          &LabelsAPI{c: c},
		MergeRequests:   &MergeRequestsAPI{c: c},
		Milestones:      &MilestonesAPI{c: c},
		Namespaces:      &NamespacesAPI{c: c},
		Notes:           &NotesAPI{c: c},
		Pipelines:       &PipelinesAPI{c: c},
		ProjectHooks:    &ProjectHooksAPI{c: c},
		ProjectMembers:  &ProjectMembersAPI{c: c},
		ProjectSnippets: &ProjectSnippetsAPI{c: c},
		Projects:        &ProjectsAPI{c: c},
		Repository:      &RepositoryAPI{c: c},
		Runners:         &RunnersAPI{c: c},
		Session:         &SessionAPI{c: c},
		Settings:        &SettingsAPI{c: c},
		Sidekiq:         &SidekiqAPI{c: c},
		SystemHooks:     &SystemHooksAPI{c: c},
		Tags:            &TagsAPI{c: c},
		Templates:       &TemplatesAPI{c: c},
		Todos:           &TodosAPI{c: c},
		Triggers:        &TriggersAPI{c: c},
		Users:           &UsersAPI{c: c},
		Variables:       &VariablesAPI{c: c},
		Version:         &VersionAPI{c: c},
	}
}

// WithPrivateToken возвращает новый клиент с другим токеном.
// Исходный клиент не меняется.
func (c *Client) WithPrivateToken(token string) *Client {
	cfg := c.cfg
	cfg.PrivateToken = token
	return newClient(cfg, c.transport, c.chain)
}

// Do исполняет произвольный запрос через цепочку middleware клиента и
// возвращает ответ с любым статусом. Методы ресурсов сводят ответ вне 2xx
// к пустому результату; Do нужен, когда статус важен вызывающему.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	return c.core.raw(ctx, req)
}

// Config возвращает конфигурацию клиента.
func (c *Client) Config() Config {
	return c.cfg
}

// Bounds возвращает допустимый диапазон размера страницы.
func (c *Client) Bounds() PageBounds {
	return PageBounds{MinPerPage: c.cfg.MinPerPage, MaxPerPage: c.cfg.MaxPerPage}
}

// String возвращает указатель на копию s. Используется для необязательных полей.
func String(s string) *string { return &s }

// Int возвращает указатель на копию v.
func Int(v int) *int { return &v }

// Bool возвращает указатель на копию v.
func Bool(v bool) *bool { return &v }

// Time возвращает указатель на копию t.
func Time(t time.Time) *time.Time { return &t }
