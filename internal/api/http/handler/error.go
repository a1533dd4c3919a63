package handler

import (
	"net/http"

	"github.com/dtroode/gucfolio/internal/api/http/response"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
)

func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	response.Error(w, log, err)
}

// InvalidRoute answers every request that matched no route.
func InvalidRoute(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleError(w, log, apierrors.NewErrInvalidRoute())
	}
}
