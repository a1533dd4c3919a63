package context

import (
	"context"

	"github.com/dtroode/gucfolio/internal/model"
)

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

// Manager stores the authenticated user and its bearer token in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the user and the token it was authenticated with.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}

func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
