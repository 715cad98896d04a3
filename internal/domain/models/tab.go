// internal/domain/models/tab.go
package models

import "strings"

// Tab selects which performance dataset the dashboard shows.
type Tab string

// Tab keys. The values double as query parameter values and JSON keys.
const (
	TabAPS           Tab = "aps"
	TabNotConsidered Tab = "noConsiderados"
	TabFileExport    Tab = "pgu"
)

// DefaultTab is the tab shown when none is selected.
const DefaultTab = TabAPS

// AllTabs returns every tab in display order.
func AllTabs() []Tab {
	return []Tab{
		TabAPS,
		TabNotConsidered,
		TabFileExport,
	}
}

// ParseTab resolves a tab key, ignoring case and surrounding whitespace.
func ParseTab(s string) (Tab, bool) {
	s = strings.TrimSpace(s)
	for _, t := range AllTabs() {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// IsValid reports whether t is exactly one of the known tab keys.
func (t Tab) IsValid() bool {
	for _, known := range AllTabs() {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the text shown on the tab button.
func (t Tab) Label() string {
	switch t {
	case TabAPS:
		return "Procesamiento APS"
	case TabNotConsidered:
		return "Etapa No Considerados"
	case TabFileExport:
		return "Archivo PGU"
	default:
		return string(t)
	}
}

func (t Tab) String() string {
	return string(t)
}
