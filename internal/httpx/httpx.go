// Package httpx holds the HTTP boundary shared by all handlers: the uniform
// error envelope, the single failure→status translation point, and small
// request helpers.
package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"milestone-tracker/backend/internal/apierr"
)

// APIError is the uniform error envelope returned for every failed request.
type APIError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewAPIError builds an envelope for the given status, message, and request path.
func NewAPIError(status int, message, path string) APIError {
	return APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}

// ErrorHandler converts failures collected via Abort into the error envelope.
// It is the only place internal failures become HTTP status codes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apierr.StatusOf(err)
		c.JSON(status, NewAPIError(status, err.Error(), c.Request.URL.Path))
	}
}

// Abort records err on the context and stops the handler chain. ErrorHandler
// writes the envelope after the chain unwinds.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// PathID returns the :id path parameter, failing validation when it is not a UUID.
func PathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apierr.Validation("id", "geçerli bir UUID olmalı")
	}
	return id, nil
}
