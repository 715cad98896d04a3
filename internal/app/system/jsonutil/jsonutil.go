// Package jsonutil provides helper functions for JSON API responses.
//
// Encoding uses goccy/go-json, a drop-in replacement for encoding/json.
package jsonutil

import (
	"net/http"

	"github.com/dalemusser/stratadash/internal/app/system/etag"
	json "github.com/goccy/go-json"
)

// JSON writes a JSON response with the given status code.
//
// Usage:
//
//	jsonutil.JSON(w, http.StatusOK, map[string]any{
//	    "tab": "aps",
//	})
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 OK JSON response.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Cached writes a 200 OK JSON response tagged with a content ETag.
// When the request's If-None-Match already names that tag the body is
// skipped and 304 is sent instead.
func Cached(w http.ResponseWriter, r *http.Request, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if etag.Check(w, r, etag.For(body)) {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(append(body, '\n'))
	return err
}

// Error writes an error response with the given status code.
// The response body is {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// NotFound writes a 404 Not Found error response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError writes a 500 Internal Server Error response.
// Do not expose internal details to clients - log the actual error separately.
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
