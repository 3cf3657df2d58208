package gitlab

import (
	"context"
	"net/http"
	"time"
)

// Settings: настройки приложения GitLab.
type Settings struct {
	ID                                int        `json:"id"`
	DefaultProjectsLimit              int        `json:"default_projects_limit"`
	SignupEnabled                     bool       `json:"signup_enabled"`
	SigninEnabled                     bool       `json:"signin_enabled"`
	GravatarEnabled                   bool       `json:"gravatar_enabled"`
	SignInText                        string     `json:"sign_in_text"`
	AfterSignUpText                   string     `json:"after_sign_up_text"`
	HomePageURL                       string     `json:"home_page_url"`
	AfterSignOutPath                  string     `json:"after_sign_out_path"`
	MaxAttachmentSize                 int        `json:"max_attachment_size"`
	SessionExpireDelay                int        `json:"session_expire_delay"`
	DefaultProjectVisibility          int        `json:"default_project_visibility"`
	DefaultSnippetVisibility          int        `json:"default_snippet_visibility"`
	DefaultGroupVisibility            int        `json:"default_group_visibility"`
	RestrictedSignupDomains           []string   `json:"restricted_signup_domains"`
	UserOAuthApplications             bool       `json:"user_oauth_applications"`
	MaxArtifactsSize                  int        `json:"max_artifacts_size"`
	ContainerRegistryTokenExpireDelay int        `json:"container_registry_token_expire_delay"`
	CreatedAt                         *time.Time `json:"created_at"`
	UpdatedAt                         *time.Time `json:"updated_at"`
}

// SettingsUpdate: изменяемые настройки; незаданные не передаются.
type SettingsUpdate struct {
	DefaultProjectsLimit     *int
	SignupEnabled            *bool
	SigninEnabled            *bool
	GravatarEnabled          *bool
	SignInText               *string
	AfterSignUpText          *string
	HomePageURL              *string
	AfterSignOutPath         *string
	MaxAttachmentSize        *int
	SessionExpireDelay       *int
	DefaultProjectVisibility VisibilityLevel
	DefaultSnippetVisibility VisibilityLevel
	DefaultGroupVisibility   VisibilityLevel
	RestrictedSignupDomains  []string
	UserOAuthApplications    *bool
	MaxArtifactsSize         *int
}

// SettingsAPI: настройки приложения (только администратор).
type SettingsAPI struct {
	c *core
}

// Get возвращает текущие настройки.
func (a *SettingsAPI) Get(ctx context.Context) (*Settings, error) {
	return getOne[Settings](ctx, a.c, NewRequest(http.MethodGet, "application/settings"))
}

// Update меняет настройки.
func (a *SettingsAPI) Update(ctx context.Context, opt SettingsUpdate) (*Settings, error) {
	req := NewRequest(http.MethodPut, "application/settings").
		ParamIfInt("default_projects_limit", opt.DefaultProjectsLimit).
		ParamIfBool("signup_enabled", opt.SignupEnabled).
		ParamIfBool("signin_enabled", opt.SigninEnabled).
		ParamIfBool("gravatar_enabled", opt.GravatarEnabled).
		ParamIf("sign_in_text", opt.SignInText).
		ParamIf("after_sign_up_text", opt.AfterSignUpText).
		ParamIf("home_page_url", opt.HomePageURL).
		ParamIf("after_sign_out_path", opt.AfterSignOutPath).
		ParamIfInt("max_attachment_size", opt.MaxAttachmentSize).
		ParamIfInt("session_expire_delay", opt.SessionExpireDelay).
		ParamIfEnum("default_project_visibility", opt.DefaultProjectVisibility).
		ParamIfEnum("default_snippet_visibility", opt.DefaultSnippetVisibility).
		ParamIfEnum("default_group_visibility", opt.DefaultGroupVisibility).
		ParamIfList("restricted_signup_domains", opt.RestrictedSignupDomains).
		ParamIfBool("user_oauth_applications", opt.UserOAuthApplications).
		ParamIfInt("max_artifacts_size", opt.MaxArtifactsSize)
	return getOne[Settings](ctx, a.c, req)
}
