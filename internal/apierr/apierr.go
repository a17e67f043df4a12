// Package apierr defines the failure taxonomy services raise. The HTTP layer
// is the only place these are translated into status codes and the error envelope.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned by login when the username is unknown or the password does not match.
var ErrInvalidCredentials = errors.New("Geçersiz kullanıcı adı veya parola")

// ErrUnauthorized is returned when a request carries no valid, non-expired session.
var ErrUnauthorized = errors.New("Lütfen giriş yapın")

// NotFoundError reports an id lookup that returned nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// NotFound returns a NotFoundError for the given entity kind and id.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError reports the first failing field of a malformed request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation returns a ValidationError for the given field and message.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StatusOf maps a raised failure to its HTTP status. Unknown failures map to 500.
func StatusOf(err error) int {
	var nf *NotFoundError
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
