package web

import (
	"fmt"
	"net/http"
)

// InvalidDataMessage is the public message of every validation failure.
const InvalidDataMessage = "Invalid data"

// Error is a request failure that maps to a fixed HTTP status. Message is
// returned to the client; Err is kept for logs only.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError reports a malformed or incomplete request body.
func ValidationError(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Message: InvalidDataMessage, Err: err}
}

// NotFound reports an id that does not resolve to an entity.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// BadGateway reports a failed upstream call.
func BadGateway(message string, err error) *Error {
	return &Error{Status: http.StatusBadGateway, Message: message, Err: err}
}
