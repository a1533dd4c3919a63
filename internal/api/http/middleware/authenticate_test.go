package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/gucfolio/internal/api/http/context"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/mocks"
	"github.com/dtroode/gucfolio/internal/model"
	"github.com/dtroode/gucfolio/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Email: "a.b@student.guc.edu.eg"}

	tests := []struct {
		name       string
		header     string
		token      string
		user       model.User
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer  ", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", token: "bad", err: apierrors.NewErrUnauthorized(), callsSvc: true, wantStatus: http.StatusUnauthorized},
		{name: "storage failure", header: "Bearer tok", token: "tok", err: errors.New("db down"), callsSvc: true, wantStatus: http.StatusInternalServerError},
		{name: "valid token", header: "Bearer tok", token: "tok", user: user, callsSvc: true, wantStatus: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer tok", token: "tok", user: user, callsSvc: true, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sessions := mocks.NewSessionService(t)
			if tt.callsSvc {
				sessions.On("Authenticate", mock.Anything, tt.token).Return(tt.user, tt.err).Once()
			}
			cm := httpctx.NewManager()
			mw := NewAuthenticate(sessions, cm, testutil.MakeNoopLogger())

			var gotUser model.User
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = cm.GetUserFromContext(r.Context())
				gotToken, _ = cm.GetTokenFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, user, gotUser)
				assert.Equal(t, "tok", gotToken)
			}
		})
	}
}
