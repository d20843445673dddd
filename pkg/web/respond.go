// Package web holds the HTTP plumbing shared by the storefront services:
// JSON responses, request decoding, error mapping, middleware and routing.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Respond writes data as a JSON body with the given status.
func Respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes {"error": msg}. A *Error supplies status and message;
// anything else becomes a 500 without leaking its text.
func RespondError(w http.ResponseWriter, err error) {
	var webErr *Error
	if errors.As(err, &webErr) {
		Respond(w, webErr.Status, map[string]string{"error": webErr.Message})
		return
	}
	Respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// Message is the body of operations that only confirm success.
type Message struct {
	Message string `json:"message"`
}
