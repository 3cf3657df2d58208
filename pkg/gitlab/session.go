package gitlab

import (
	"context"
	"net/http"
)

// Session: пользователь, прошедший аутентификацию, вместе с его токеном.
type Session struct {
	User
	PrivateToken string `json:"private_token"`
}

// SessionAPI: вход по логину или email и паролю.
type SessionAPI struct {
	c *core
}

// Login выполняет вход по имени пользователя и паролю.
// Запрос отправляется без PRIVATE-TOKEN.
func (a *SessionAPI) Login(ctx context.Context, login, password string) (*Session, error) {
	if err := firstError(requireString("login", login), requireString("password", password)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "session").
		Anonymous().
		Param("login", login).
		Param("password", password)
	return getOne[Session](ctx, a.c, req)
}

// LoginWithEmail выполняет вход по email и паролю.
func (a *SessionAPI) LoginWithEmail(ctx context.Context, email, password string) (*Session, error) {
	if err := firstError(requireString("email", email), requireString("password", password)); err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, "session").
		Anonymous().
		Param("email", email).
		Param("password", password)
	return getOne[Session](ctx, a.c, req)
}
