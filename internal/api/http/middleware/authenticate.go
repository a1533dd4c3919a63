package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/gucfolio/internal/api/http/response"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/model"
)

// SessionService resolves bearer tokens to users.
type SessionService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate guards protected routes with a bearer session token.
type Authenticate struct {
	sessions       SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(sessions SessionService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless the token verifies, is not revoked and
// belongs to an existing user. The user is then attached to the context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.logger.Debug("Authenticate middleware: missing bearer token",
				"path", r.URL.Path)
			response.Unauthorized(w)
			return
		}

		user, err := m.sessions.Authenticate(r.Context(), token)
		if err != nil {
			if apiErr, ok := apierrors.As(err); ok && apiErr.Kind == apierrors.KindAuthentication {
				response.Unauthorized(w)
				return
			}
			response.Error(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
