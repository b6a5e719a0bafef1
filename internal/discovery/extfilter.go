package discovery

import (
	"path/filepath"
	"strings"
)

// ExtFilter is a case-insensitive extension allow-list. An empty filter
// passes every path. Extensions are stored lowercase without a leading dot.
type ExtFilter struct {
	exts map[string]struct{}
}

// NewExtFilter builds an ExtFilter from the raw --ext values (each entry
// may itself be empty; dots are stripped and case is normalized).
func NewExtFilter(exts []string) *ExtFilter {
	if len(exts) == 0 {
		return &ExtFilter{}
	}
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimLeft(strings.TrimSpace(e), "."))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return &ExtFilter{exts: set}
}

// Active reports whether any extensions were configured. When false,
// Matches always returns true.
func (f *ExtFilter) Active() bool {
	return len(f.exts) > 0
}

// Matches reports whether path's final extension (case-insensitive, no
// leading dot) is in the allow-list. Always true when the filter is
// inactive.
func (f *ExtFilter) Matches(path string) bool {
	if !f.Active() {
		return true
	}
	ext := strings.ToLower(strings.TrimLeft(filepath.Ext(path), "."))
	_, ok := f.exts[ext]
	return ok
}
