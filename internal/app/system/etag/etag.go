// Package etag derives deterministic entity tags for rendered responses.
//
// Tags are name-based (version 5) UUIDs over the response content, so the
// same content always yields the same tag across renders and restarts.
package etag

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// namespace scopes the generated UUIDs to this application.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dalemusser/stratadash/etag"))

// For returns the quoted strong ETag for content.
func For(content []byte) string {
	return `"` + uuid.NewSHA1(namespace, content).String() + `"`
}

// Matches reports whether the request's If-None-Match header matches tag.
// Weak comparison is used, as If-None-Match requires.
func Matches(r *http.Request, tag string) bool {
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}

// Check sets the ETag header and answers 304 Not Modified when the client
// already holds this version. It returns true when the response is complete.
func Check(w http.ResponseWriter, r *http.Request, tag string) bool {
	w.Header().Set("ETag", tag)
	if Matches(r, tag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}
