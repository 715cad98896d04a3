package etag

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFor_Deterministic(t *testing.T) {
	a := For([]byte("chart"))
	b := For([]byte("chart"))
	if a != b {
		t.Errorf("For() not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("For() = %q, want quoted tag", a)
	}
	if For([]byte("other")) == a {
		t.Error("For() returned the same tag for different content")
	}
}

func TestMatches(t *testing.T) {
	tag := For([]byte("x"))

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"no header", "", false},
		{"exact", tag, true},
		{"weak", "W/" + tag, true},
		{"list", `"abc", ` + tag, true},
		{"wildcard", "*", true},
		{"other", `"abc"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("If-None-Match", tt.header)
			}
			if got := Matches(req, tag); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tag := For([]byte("page"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if Check(rec, req, tag) {
		t.Fatal("Check() = true without If-None-Match")
	}
	if rec.Header().Get("ETag") != tag {
		t.Errorf("ETag = %q, want %q", rec.Header().Get("ETag"), tag)
	}

	req.Header.Set("If-None-Match", tag)
	rec = httptest.NewRecorder()
	if !Check(rec, req, tag) {
		t.Fatal("Check() = false for matching If-None-Match")
	}
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotModified)
	}
}
