// Package apperr defines the error kinds surfaced at the HTTP boundary.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrNotFound       = errors.New("not found")
)

// Error carries a human readable message on top of one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) *Error     { return &Error{Kind: ErrValidation, Message: msg} }
func Conflict(msg string) *Error       { return &Error{Kind: ErrConflict, Message: msg} }
func Authentication(msg string) *Error { return &Error{Kind: ErrAuthentication, Message: msg} }
func Authorization(msg string) *Error  { return &Error{Kind: ErrAuthorization, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: ErrNotFound, Message: msg} }

// HTTPStatus maps an error to its response status. Unknown errors are 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client facing message. Internal errors are not leaked.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}
