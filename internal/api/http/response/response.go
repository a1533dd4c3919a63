// Package response writes the JSON envelopes shared by handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
)

const (
	StatusFailure = 0
	StatusSuccess = 1
)

// Message is the envelope of every mutation response.
type Message struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes {"status":1,"message":msg}.
func OK(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, Message{Status: StatusSuccess, Message: msg})
}

// Error converts err into a failure envelope. Errors that are not
// *apierrors.APIError are logged and hidden behind a generic 500.
func Error(w http.ResponseWriter, log *logger.Logger, err error) {
	apiErr, ok := apierrors.As(err)
	if !ok {
		log.Error("HTTP: unhandled error", "error", err.Error())
		apiErr = apierrors.NewErrInternalServerError(err)
	}
	if apiErr.Kind == apierrors.KindInternal {
		JSON(w, http.StatusInternalServerError, Message{Status: StatusFailure, Message: apierrors.MsgInternal})
		return
	}

	JSON(w, apiErr.HTTPStatus(), Message{
		Status:  StatusFailure,
		Message: apiErr.Message,
		Errors:  apiErr.Details,
	})
}

// Unauthorized rejects a request to a protected route.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, Message{Status: StatusFailure, Message: apierrors.MsgUnauthorized})
}
