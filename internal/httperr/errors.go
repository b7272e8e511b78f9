// Package httperr carries typed HTTP failures from the service and
// validation layers to the rendering middleware.
package httperr

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// Error is a client-visible failure with a fixed status code. The stack
// is captured at construction and only ever rendered in development mode.
type Error struct {
	StatusCode int
	Message    string
	stack      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Stack returns the stack trace captured when the error was created.
func (e *Error) Stack() string {
	return e.stack
}

// New builds an Error with the given status and message.
func New(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		stack:      string(debug.Stack()),
	}
}

// BadRequest marks a request that is well-formed but unacceptable (400).
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized marks a missing or invalid identity (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden marks a request the caller may not perform (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound marks a well-formed reference to a missing entity (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// UnprocessableEntity marks malformed client input (422).
func UnprocessableEntity(message string) *Error {
	return New(http.StatusUnprocessableEntity, message)
}

// Internal is the only 500 the client ever sees; the real cause stays in
// the server log.
func Internal() *Error {
	return New(http.StatusInternalServerError, "Internal Server Error")
}
