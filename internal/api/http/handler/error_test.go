package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/testutil"
)

func TestInvalidRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	InvalidRoute(testutil.MakeNoopLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":0,"message":"`+apierrors.MsgInvalidRoute+`"}`, rec.Body.String())
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	log, buf := testutil.MakeBufferLogger()
	rec := httptest.NewRecorder()

	handleError(rec, log, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
