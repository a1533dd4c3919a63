package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dtroode/gucfolio/internal/logger"
)

// Logging writes one access log record per request.
type Logging struct {
	logger *logger.Logger
	level  slog.Level
}

// NewLogging logs successful requests at Info in debug mode and at Debug otherwise.
// Client errors are logged at Warn and server errors at Error.
func NewLogging(logger *logger.Logger, debugMode bool) *Logging {
	level := slog.LevelDebug
	if debugMode {
		level = slog.LevelInfo
	}
	return &Logging{logger: logger, level: level}
}

func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		level := l.level
		switch {
		case rec.status >= http.StatusInternalServerError:
			level = slog.LevelError
		case rec.status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		l.logger.Log(r.Context(), level, "HTTP request completed",
			"method", r.Method,
			"route", route(r),
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", rec.bytes,
			"remote", r.RemoteAddr)
	})
}
