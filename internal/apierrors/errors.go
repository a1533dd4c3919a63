// Package apierrors defines the error values surfaced to API callers.
package apierrors

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an APIError.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindConflict
	KindAuthorization
	KindNotFound
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindConflict:
		return "conflict"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// APIError is an error with a caller-safe message and optional field-level details.
type APIError struct {
	Kind    Kind
	Message string
	Details []string
	cause   error
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return e.Message + ": " + strings.Join(e.Details, "; ")
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the kind to a response status. Caller-caused failures
// share 400 so clients get one shape for every rejected request.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindAuthentication, KindConflict, KindAuthorization:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newErr(kind Kind, msg string) *APIError {
	return &APIError{Kind: kind, Message: msg}
}

// NewValidation builds a validation error listing every failed field.
func NewValidation(details ...string) *APIError {
	if len(details) == 1 {
		return &APIError{Kind: KindValidation, Message: details[0]}
	}
	return &APIError{Kind: KindValidation, Message: "Validation failed.", Details: details}
}

func NewErrIncompleteInformation() *APIError {
	return newErr(KindValidation, MsgIncompleteInformation)
}

func NewErrNonGUCMail() *APIError {
	return newErr(KindValidation, MsgNonGUCMail)
}

func NewErrPasswordMismatch() *APIError {
	return newErr(KindValidation, MsgPasswordMismatch)
}

func NewErrInvalidPassword() *APIError {
	return newErr(KindValidation, MsgInvalidPassword)
}

func NewErrInvalidGUCID() *APIError {
	return newErr(KindValidation, MsgInvalidGUCID)
}

func NewErrBadOffset() *APIError {
	return newErr(KindValidation, MsgBadOffset)
}

func NewErrBadID() *APIError {
	return newErr(KindValidation, MsgBadID)
}

func NewErrBadUpload() *APIError {
	return newErr(KindValidation, MsgBadUpload)
}

func NewErrBadBody() *APIError {
	return newErr(KindValidation, MsgBadBody)
}

func NewErrMissingCredentials() *APIError {
	return newErr(KindValidation, MsgMissingCredentials)
}

func NewErrUserAlreadyExists(cause error) *APIError {
	return &APIError{Kind: KindConflict, Message: MsgUserAlreadyExists, cause: cause}
}

func NewErrInvalidCredentials() *APIError {
	return newErr(KindAuthentication, MsgInvalidCredentials)
}

func NewErrInvalidResetToken() *APIError {
	return newErr(KindAuthentication, MsgInvalidResetToken)
}

func NewErrUnauthorized() *APIError {
	return newErr(KindAuthentication, MsgUnauthorized)
}

func NewErrPermissionDenied() *APIError {
	return newErr(KindAuthorization, MsgPermissionDenied)
}

func NewErrItemNotFound() *APIError {
	return newErr(KindNotFound, MsgItemNotFound)
}

func NewErrUserNotFound() *APIError {
	return newErr(KindNotFound, MsgUserNotFound)
}

func NewErrFileNotFound() *APIError {
	return newErr(KindNotFound, MsgFileNotFound)
}

func NewErrInvalidRoute() *APIError {
	return newErr(KindNotFound, MsgInvalidRoute)
}

func NewErrInternalServerError(cause error) *APIError {
	return &APIError{Kind: KindInternal, Message: MsgInternal, cause: cause}
}
