package gitlab

import (
	"context"
	"net/http"
)

// Version: версия и ревизия сервера GitLab.
type Version struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}

// VersionAPI: версия сервера.
type VersionAPI struct {
	c *core
}

// Get возвращает версию сервера.
func (a *VersionAPI) Get(ctx context.Context) (*Version, error) {
	return getOne[Version](ctx, a.c, NewRequest(http.MethodGet, "version"))
}

// Template: шаблон .gitignore или .gitlab-ci.yml.
type Template struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// License: шаблон лицензии.
type License struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Nickname    string   `json:"nickname"`
	Featured    bool     `json:"featured"`
	HTMLURL     string   `json:"html_url"`
	SourceURL   string   `json:"source_url"`
	Description string   `json:"description"`
	Conditions  []string `json:"conditions"`
	Permissions []string `json:"permissions"`
	Limitations []string `json:"limitations"`
	Content     string   `json:"content"`
}

// LicenseOptions: подстановки в текст лицензии.
type LicenseOptions struct {
	Project  *string
	Fullname *string
}

// TemplatesAPI: шаблоны .gitignore, .gitlab-ci.yml и лицензий.
type TemplatesAPI struct {
	c *core
}

// Gitignores возвращает доступные шаблоны .gitignore.
func (a *TemplatesAPI) Gitignores(ctx context.Context) ([]Template, error) {
	return getList[Template](ctx, a.c, NewRequest(http.MethodGet, "gitignores"))
}

// Gitignore возвращает шаблон .gitignore по ключу.
func (a *TemplatesAPI) Gitignore(ctx context.Context, key string) (*Template, error) {
	return a.template(ctx, "gitignores/{key}", key)
}

// CIYmls возвращает доступные шаблоны .gitlab-ci.yml.
func (a *TemplatesAPI) CIYmls(ctx context.Context) ([]Template, error) {
	return getList[Template](ctx, a.c, NewRequest(http.MethodGet, "gitlab_ci_ymls"))
}

// CIYml возвращает шаблон .gitlab-ci.yml по ключу.
func (a *TemplatesAPI) CIYml(ctx context.Context, key string) (*Template, error) {
	return a.template(ctx, "gitlab_ci_ymls/{key}", key)
}

// Licenses возвращает шаблоны лицензий; popular ограничивает список популярными.
func (a *TemplatesAPI) Licenses(ctx context.Context, popular *bool) ([]License, error) {
	req := NewRequest(http.MethodGet, "licenses").ParamIfBool("popular", popular)
	return getList[License](ctx, a.c, req)
}

// License возвращает текст лицензии с подстановкой проекта и владельца.
func (a *TemplatesAPI) License(ctx context.Context, key string, opt LicenseOptions) (*License, error) {
	if err := requireString("key", key); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodGet, "licenses/{key}").
		Segment("key", key).
		ParamIf("project", opt.Project).
		ParamIf("fullname", opt.Fullname)
	return getOne[License](ctx, a.c, req)
}

func (a *TemplatesAPI) template(ctx context.Context, resource, key string) (*Template, error) {
	if err := requireString("key", key); err != nil {
		return nil, err
	}
	return getOne[Template](ctx, a.c, NewRequest(http.MethodGet, resource).Segment("key", key))
}
