package discovery

import (
	"log/slog"

	"github.com/loctok/loctok/internal/config"
)

// Ignorer is the interface for all ignore-pattern matchers in loctok. Each
// Ignorer implementation evaluates whether a given path should be excluded
// from a token count. The path must be relative to the repository root,
// using forward slashes. The isDir parameter indicates whether the path
// represents a directory (needed for directory-only patterns).
type Ignorer interface {
	IsIgnored(path string, isDir bool) bool
}

// Named is implemented by Ignorer sources that can identify their own ignore
// layer (e.g. "gitignore", "loctokignore"). CompositeIgnorer uses it to
// attribute a match to a specific layer for the --stats skip-reason
// breakdown instead of a single generic "ignored" bucket.
type Named interface {
	Name() string
}

// CompositeIgnorer chains multiple Ignorer implementations and returns true
// if ANY source matches the given path. loctok chains .gitignore, git
// excludes, the global gitignore, and the supplemental .loctokignore in
// this way.
type CompositeIgnorer struct {
	ignorers []Ignorer
	logger   *slog.Logger
}

// NewCompositeIgnorer creates a new CompositeIgnorer that chains the provided
// ignorers. A path is considered ignored if any single ignorer matches it.
// Nil ignorers in the variadic list are silently skipped.
func NewCompositeIgnorer(ignorers ...Ignorer) *CompositeIgnorer {
	filtered := make([]Ignorer, 0, len(ignorers))
	for _, ig := range ignorers {
		if ig != nil {
			filtered = append(filtered, ig)
		}
	}

	return &CompositeIgnorer{
		ignorers: filtered,
		logger:   config.NewLogger("composite-ignorer"),
	}
}

// IsIgnored reports whether the given path should be ignored according to any
// of the chained ignore sources. Returns true if ANY ignorer matches the path.
func (c *CompositeIgnorer) IsIgnored(path string, isDir bool) bool {
	_, ignored := c.MatchedBy(path, isDir)
	return ignored
}

// MatchedBy reports whether path is ignored and, if so, the name of the
// first chained ignorer that matched it. Sources that don't implement Named
// report as "ignored" rather than breaking the chain. The walker uses this
// to key its --stats skip-reason accounting by the specific ignore layer
// responsible (e.g. "ignored:gitignore" vs "ignored:loctokignore") instead
// of a single undifferentiated bucket.
func (c *CompositeIgnorer) MatchedBy(path string, isDir bool) (name string, ignored bool) {
	for _, ig := range c.ignorers {
		if ig.IsIgnored(path, isDir) {
			name := "ignored"
			if n, ok := ig.(Named); ok {
				name = n.Name()
			}
			c.logger.Debug("path ignored", "path", path, "layer", name)
			return name, true
		}
	}
	return "", false
}

// IgnorerCount returns the number of active ignorers in the chain. This is
// useful for diagnostics and logging.
func (c *CompositeIgnorer) IgnorerCount() int {
	return len(c.ignorers)
}

// Compile-time interface compliance check.
var _ Ignorer = (*CompositeIgnorer)(nil)
