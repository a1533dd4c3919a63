package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/gucfolio/internal/api/http/response"
	"github.com/dtroode/gucfolio/internal/logger"
)

// Recovery turns a handler panic into a generic 500 response.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			m.logger.Error("HTTP: panic recovered",
				"path", r.URL.Path,
				"panic", fmt.Sprint(p),
				"stack", string(debug.Stack()))
			response.Error(w, m.logger, fmt.Errorf("panic: %v", p))
		}()

		next.ServeHTTP(w, r)
	})
}
