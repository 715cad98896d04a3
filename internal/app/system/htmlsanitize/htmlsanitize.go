// Package htmlsanitize provides HTML sanitization for authored markup shown on
// the dashboard (summary snippets, configurable footer).
// It uses bluemonday to strip potentially dangerous HTML while preserving safe formatting.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// blockPolicy allows the block-level formatting used by the footer.
	blockPolicy     *bluemonday.Policy
	blockPolicyOnce sync.Once

	// inlinePolicy allows only the inline formatting used by summary lines.
	inlinePolicy     *bluemonday.Policy
	inlinePolicyOnce sync.Once
)

func getBlockPolicy() *bluemonday.Policy {
	blockPolicyOnce.Do(func() {
		blockPolicy = bluemonday.UGCPolicy()
		blockPolicy.AllowAttrs("class").OnElements("p", "span", "div", "ul", "li")
	})
	return blockPolicy
}

func getInlinePolicy() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		inlinePolicy = bluemonday.StrictPolicy()
		inlinePolicy.AllowElements("strong", "em", "br", "span")
		inlinePolicy.AllowAttrs("class").OnElements("span")
	})
	return inlinePolicy
}

// Sanitize cleans block-level HTML, removing potentially dangerous elements and attributes.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getBlockPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes block-level HTML and returns it as template.HTML,
// which is safe to render directly in Go templates without escaping.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// Inline sanitizes a one-line snippet, keeping only strong, em, br and span.
func Inline(html string) template.HTML {
	if html == "" {
		return ""
	}
	return template.HTML(getInlinePolicy().Sanitize(html))
}

// InlineLines sanitizes each snippet and joins them with line breaks.
func InlineLines(lines ...string) template.HTML {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			continue
		}
		parts = append(parts, string(Inline(l)))
	}
	return template.HTML(strings.Join(parts, "<br>"))
}
