package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/model"
)

const maxFormBody = 1 << 20

// decodeBody fills dst from a JSON body, or through fromForm when the
// request carries a url-encoded form. An empty JSON body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(get func(string) string)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)

	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return apierrors.NewErrBadBody()
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return apierrors.NewErrBadBody()
	}
	fromForm(r.PostForm.Get)
	return nil
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, apierrors.NewErrBadID()
	}
	return id, nil
}

func pathOffset(r *http.Request) (int, error) {
	offset, err := strconv.Atoi(r.PathValue("offset"))
	if err != nil || !model.ValidPage(offset) {
		return 0, apierrors.NewErrBadOffset()
	}
	return offset, nil
}
