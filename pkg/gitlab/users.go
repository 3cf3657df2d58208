package gitlab

import (
	"context"
	"net/http"
	"time"
)

// User: пользователь GitLab.
type User struct {
	ID               int        `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	State            string     `json:"state"`
	AvatarURL        string     `json:"avatar_url"`
	WebURL           string     `json:"web_url"`
	Bio              string     `json:"bio"`
	Location         string     `json:"location"`
	Skype            string     `json:"skype"`
	Linkedin         string     `json:"linkedin"`
	Twitter          string     `json:"twitter"`
	WebsiteURL       string     `json:"website_url"`
	Organization     string     `json:"organization"`
	ThemeID          int        `json:"theme_id"`
	ColorSchemeID    int        `json:"color_scheme_id"`
	ProjectsLimit    int        `json:"projects_limit"`
	IsAdmin          bool       `json:"is_admin"`
	CanCreateGroup   bool       `json:"can_create_group"`
	CanCreateProject bool       `json:"can_create_project"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	External         bool       `json:"external"`
	Identities       []Identity `json:"identities"`
	CreatedAt        *time.Time `json:"created_at"`
	CurrentSignInAt  *time.Time `json:"current_sign_in_at"`
	LastSignInAt     *time.Time `json:"last_sign_in_at"`
	ConfirmedAt      *time.Time `json:"confirmed_at"`
}

// Identity: внешняя учётная запись пользователя (LDAP, OAuth).
type Identity struct {
	Provider  string `json:"provider"`
	ExternUID string `json:"extern_uid"`
}

// SSHKey: SSH ключ пользователя.
type SSHKey struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Key       string     `json:"key"`
	CreatedAt *time.Time `json:"created_at"`
}

// Email: дополнительный email пользователя.
type Email struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// UserListOptions: фильтры списка пользователей.
type UserListOptions struct {
	Search   *string
	Username *string
	Active   *bool
	Blocked  *bool
	External *bool
}

// UserOptions: профиль пользователя при создании и изменении.
type UserOptions struct {
	Skype          *string
	Linkedin       *string
	Twitter        *string
	WebsiteURL     *string
	Organization   *string
	ProjectsLimit  *int
	ExternUID      *string
	Provider       *string
	Bio            *string
	Location       *string
	Admin          *bool
	CanCreateGroup *bool
	External       *bool
}

// UserCreate: поля для Create.
type UserCreate struct {
	// Email: основной email (обязательный)
	Email string
	// Password: пароль (обязательный)
	Password string
	// Username: имя пользователя (обязательный)
	Username string
	// Name: отображаемое имя (обязательный)
	Name string
	// Confirm: требовать подтверждение email
	Confirm *bool
	UserOptions
}

// UserUpdate: поля для Update; незаданные не передаются.
type UserUpdate struct {
	Email    *string
	Password *string
	Username *string
	Name     *string
	UserOptions
}

// UsersAPI: пользователи, их SSH ключи и email.
type UsersAPI struct {
	c *core
}

// List возвращает страницу пользователей.
func (a *UsersAPI) List(ctx context.Context, opt UserListOptions, page ListOptions) (*PagedResult[User], error) {
	req := NewRequest(http.MethodGet, "users").
		ParamIf("search", opt.Search).
		ParamIf("username", opt.Username).
		ParamIfBool("active", opt.Active).
		ParamIfBool("blocked", opt.Blocked).
		ParamIfBool("external", opt.External)
	return getPage[User](ctx, a.c, req, page)
}

// Find возвращает пользователя по ID.
func (a *UsersAPI) Find(ctx context.Context, userID int) (*User, error) {
	return getOne[User](ctx, a.c, a.user(http.MethodGet, "", userID))
}

// Current возвращает пользователя, которому принадлежит токен.
func (a *UsersAPI) Current(ctx context.Context) (*User, error) {
	return getOne[User](ctx, a.c, NewRequest(http.MethodGet, "user"))
}

// Create создаёт пользователя (только администратор).
func (a *UsersAPI) Create(ctx context.Context, opt UserCreate) (*User, error) {
	if err := firstError(
		requireString("email", opt.Email),
		requireString("password", opt.Password),
		requireString("username", opt.Username),
		requireString("name", opt.Name),
	); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "users").
		Param("email", opt.Email).
		Param("password", opt.Password).
		Param("username", opt.Username).
		Param("name", opt.Name).
		ParamIfBool("confirm", opt.Confirm)
	return getOne[User](ctx, a.c, opt.apply(req))
}

// Update меняет профиль пользователя (только администратор).
func (a *UsersAPI) Update(ctx context.Context, userID int, opt UserUpdate) (*User, error) {
	req := a.user(http.MethodPut, "", userID).
		ParamIf("email", opt.Email).
		ParamIf("password", opt.Password).
		ParamIf("username", opt.Username).
		ParamIf("name", opt.Name)
	return getOne[User](ctx, a.c, opt.apply(req))
}

// Delete удаляет пользователя.
func (a *UsersAPI) Delete(ctx context.Context, userID int) (*User, error) {
	return getOne[User](ctx, a.c, a.user(http.MethodDelete, "", userID))
}

// Block блокирует пользователя.
func (a *UsersAPI) Block(ctx context.Context, userID int) error {
	return send(ctx, a.c, a.user(http.MethodPut, "/block", userID))
}

// Unblock снимает блокировку пользователя.
func (a *UsersAPI) Unblock(ctx context.Context, userID int) error {
	return send(ctx, a.c, a.user(http.MethodPut, "/unblock", userID))
}

// SSHKeys возвращает SSH ключи текущего пользователя.
func (a *UsersAPI) SSHKeys(ctx context.Context) ([]SSHKey, error) {
	return getList[SSHKey](ctx, a.c, NewRequest(http.MethodGet, "user/keys"))
}

// SSHKeysForUser возвращает SSH ключи пользователя.
func (a *UsersAPI) SSHKeysForUser(ctx context.Context, userID int) ([]SSHKey, error) {
	return getList[SSHKey](ctx, a.c, a.user(http.MethodGet, "/keys", userID))
}

// FindSSHKey возвращает SSH ключ текущего пользователя по ID.
func (a *UsersAPI) FindSSHKey(ctx context.Context, keyID int) (*SSHKey, error) {
	req := NewRequest(http.MethodGet, "user/keys/{keyId}").SegmentInt("keyId", keyID)
	return getOne[SSHKey](ctx, a.c, req)
}

// AddSSHKey добавляет SSH ключ текущему пользователю.
func (a *UsersAPI) AddSSHKey(ctx context.Context, title, key string) (*SSHKey, error) {
	if err := firstError(requireString("title", title), requireString("key", key)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "user/keys").
		Param("title", title).
		Param("key", key)
	return getOne[SSHKey](ctx, a.c, req)
}

// AddSSHKeyForUser добавляет SSH ключ пользователю (только администратор).
func (a *UsersAPI) AddSSHKeyForUser(ctx context.Context, userID int, title, key string) (*SSHKey, error) {
	if err := firstError(requireString("title", title), requireString("key", key)); err != nil {
		return nil, err
	}
	req := a.user(http.MethodPost, "/keys", userID).
		Param("title", title).
		Param("key", key)
	return getOne[SSHKey](ctx, a.c, req)
}

// DeleteSSHKey удаляет SSH ключ текущего пользователя.
func (a *UsersAPI) DeleteSSHKey(ctx context.Context, keyID int) (*SSHKey, error) {
	req := NewRequest(http.MethodDelete, "user/keys/{keyId}").SegmentInt("keyId", keyID)
	return getOne[SSHKey](ctx, a.c, req)
}

// DeleteSSHKeyForUser удаляет SSH ключ пользователя (только администратор).
func (a *UsersAPI) DeleteSSHKeyForUser(ctx context.Context, userID, keyID int) (*SSHKey, error) {
	req := a.user(http.MethodDelete, "/keys/{keyId}", userID).SegmentInt("keyId", keyID)
	return getOne[SSHKey](ctx, a.c, req)
}

// Emails возвращает дополнительные email текущего пользователя.
func (a *UsersAPI) Emails(ctx context.Context) ([]Email, error) {
	return getList[Email](ctx, a.c, NewRequest(http.MethodGet, "user/emails"))
}

// EmailsForUser возвращает дополнительные email пользователя.
func (a *UsersAPI) EmailsForUser(ctx context.Context, userID int) ([]Email, error) {
	return getList[Email](ctx, a.c, a.user(http.MethodGet, "/emails", userID))
}

// FindEmail возвращает email текущего пользователя по ID.
func (a *UsersAPI) FindEmail(ctx context.Context, emailID int) (*Email, error) {
	req := NewRequest(http.MethodGet, "user/emails/{emailId}").SegmentInt("emailId", emailID)
	return getOne[Email](ctx, a.c, req)
}

// AddEmail добавляет email текущему пользователю.
func (a *UsersAPI) AddEmail(ctx context.Context, email string) (*Email, error) {
	if err := requireString("email", email); err != nil {
		return nil, err
	}
	return getOne[Email](ctx, a.c, NewRequest(http.MethodPost, "user/emails").Param("email", email))
}

// AddEmailForUser добавляет email пользователю (только администратор).
func (a *UsersAPI) AddEmailForUser(ctx context.Context, userID int, email string) (*Email, error) {
	if err := requireString("email", email); err != nil {
		return nil, err
	}
	return getOne[Email](ctx, a.c, a.user(http.MethodPost, "/emails", userID).Param("email", email))
}

// DeleteEmail удаляет email текущего пользователя.
func (a *UsersAPI) DeleteEmail(ctx context.Context, emailID int) error {
	req := NewRequest(http.MethodDelete, "user/emails/{emailId}").SegmentInt("emailId", emailID)
	return send(ctx, a.c, req)
}

// DeleteEmailForUser удаляет email пользователя (только администратор).
func (a *UsersAPI) DeleteEmailForUser(ctx context.Context, userID, emailID int) error {
	req := a.user(http.MethodDelete, "/emails/{emailId}", userID).SegmentInt("emailId", emailID)
	return send(ctx, a.c, req)
}

func (a *UsersAPI) user(method, suffix string, userID int) Request {
	return NewRequest(method, "users/{userId}"+suffix).SegmentInt("userId", userID)
}

func (o UserOptions) apply(req Request) Request {
	return req.
		ParamIf("skype", o.Skype).
		ParamIf("linkedin", o.Linkedin).
		ParamIf("twitter", o.Twitter).
		ParamIf("website_url", o.WebsiteURL).
		ParamIf("organization", o.Organization).
		ParamIfInt("projects_limit", o.ProjectsLimit).
		ParamIf("extern_uid", o.ExternUID).
		ParamIf("provider", o.Provider).
		ParamIf("bio", o.Bio).
		ParamIf("location", o.Location).
		ParamIfBool("admin", o.Admin).
		ParamIfBool("can_create_group", o.CanCreateGroup).
		ParamIfBool("external", o.External)
}
