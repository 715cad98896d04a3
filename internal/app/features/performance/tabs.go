// internal/app/features/performance/tabs.go
package performance

import (
	"github.com/dalemusser/stratadash/internal/domain/models"
)

// TabState holds the selected tab for one render of the dashboard.
// It always holds exactly one valid tab.
type TabState struct {
	current models.Tab
}

// NewTabState creates a state cell selecting def, or models.DefaultTab
// when def is not a valid tab.
func NewTabState(def models.Tab) *TabState {
	if !def.IsValid() {
		def = models.DefaultTab
	}
	return &TabState{current: def}
}

// Current returns the selected tab.
func (s *TabState) Current() models.Tab {
	return s.current
}

// Set selects t. Invalid tabs are ignored and reported with false.
func (s *TabState) Set(t models.Tab) bool {
	if !t.IsValid() {
		return false
	}
	s.current = t
	return true
}

// SetFromQuery selects the tab named by a raw query value.
// It reports whether the value named a known tab.
func (s *TabState) SetFromQuery(raw string) bool {
	t, ok := models.ParseTab(raw)
	if !ok {
		return false
	}
	return s.Set(t)
}

// IsActive reports whether t is the selected tab.
func (s *TabState) IsActive(t models.Tab) bool {
	return s.current == t
}
