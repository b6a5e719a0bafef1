package discovery

// LoctokignoreMatcher evaluates the supplemental .loctokignore layer: the
// same hierarchical, git-style pattern semantics as GitignoreMatcher (via
// the shared hierarchicalMatcher), but scoped to loctok's own ignore file
// so a project can exclude paths from a token count without touching its
// .gitignore. Chained alongside GitignoreMatcher and ExcludesMatcher inside
// CompositeIgnorer, it only ever adds exclusions; it never un-ignores a
// path another layer already matched.
//
// Paths passed to IsIgnored must be relative to the root directory that was
// used to construct the matcher.
type LoctokignoreMatcher struct {
	inner *hierarchicalMatcher
}

// NewLoctokignoreMatcher creates a new LoctokignoreMatcher rooted at the
// given directory. It walks rootDir to discover all .loctokignore files and
// compiles their patterns using sabhiram/go-gitignore.
//
// If no .loctokignore files exist, the matcher returns successfully and
// IsIgnored will always return false. Missing or unreadable .loctokignore
// files at individual directory levels are logged and skipped without
// error.
func NewLoctokignoreMatcher(rootDir string) (*LoctokignoreMatcher, error) {
	inner, err := newHierarchicalMatcher(rootDir, ".loctokignore", "loctokignore")
	if err != nil {
		return nil, err
	}
	return &LoctokignoreMatcher{inner: inner}, nil
}

// IsIgnored reports whether the given path should be ignored according to
// the loaded .loctokignore rules. The isDir parameter indicates whether the
// path represents a directory, which is needed for directory-only patterns
// (patterns ending in /).
func (m *LoctokignoreMatcher) IsIgnored(path string, isDir bool) bool {
	return m.inner.isIgnored(path, isDir)
}

// PatternCount returns the total number of .loctokignore files that were
// loaded and compiled. This is useful for diagnostics and logging.
func (m *LoctokignoreMatcher) PatternCount() int {
	return m.inner.patternCount()
}

// Name identifies this ignore layer for CompositeIgnorer's stats breakdown.
func (m *LoctokignoreMatcher) Name() string { return "loctokignore" }

// Compile-time interface compliance check.
var (
	_ Ignorer = (*LoctokignoreMatcher)(nil)
	_ Named   = (*LoctokignoreMatcher)(nil)
)
