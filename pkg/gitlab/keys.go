package gitlab

import (
	"context"
	"net/http"
	"time"
)

// KeyWithUser: SSH ключ вместе с его владельцем.
type KeyWithUser struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Key       string     `json:"key"`
	CreatedAt *time.Time `json:"created_at"`
	User      *User      `json:"user"`
}

// KeysAPI: поиск SSH ключей по ID.
type KeysAPI struct {
	c *core
}

// Find возвращает SSH ключ и его владельца.
func (a *KeysAPI) Find(ctx context.Context, keyID int) (*KeyWithUser, error) {
	req := NewRequest(http.MethodGet, "keys/{keyId}").
		SegmentInt("keyId", keyID)
	return getOne[KeyWithUser](ctx, a.c, req)
}
