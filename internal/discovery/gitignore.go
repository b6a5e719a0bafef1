// Package discovery implements file walking and filtering for loctok. It
// provides the file discovery engine that traverses a repository and
// produces Candidate paths for internal/filestat to read and count.
package discovery

// GitignoreMatcher evaluates hierarchical .gitignore files the way git
// itself does: nested .gitignore files each add patterns scoped to their
// own subtree, inherited by every directory beneath them. The traversal and
// matching machinery lives in hierarchicalMatcher, shared with
// LoctokignoreMatcher.
//
// Paths passed to IsIgnored must be relative to the root directory that was
// used to construct the matcher.
type GitignoreMatcher struct {
	inner *hierarchicalMatcher
}

// NewGitignoreMatcher creates a new GitignoreMatcher rooted at the given
// directory. It walks rootDir to discover all .gitignore files and compiles
// their patterns using sabhiram/go-gitignore.
//
// If no .gitignore files exist, the matcher returns successfully and
// IsIgnored will always return false. Missing or unreadable .gitignore files
// at individual directory levels are logged and skipped without error.
func NewGitignoreMatcher(rootDir string) (*GitignoreMatcher, error) {
	inner, err := newHierarchicalMatcher(rootDir, ".gitignore", "gitignore")
	if err != nil {
		return nil, err
	}
	return &GitignoreMatcher{inner: inner}, nil
}

// IsIgnored reports whether the given path should be ignored according to
// the loaded .gitignore rules. The isDir parameter indicates whether the
// path represents a directory, which is needed for directory-only patterns
// (patterns ending in /).
func (m *GitignoreMatcher) IsIgnored(path string, isDir bool) bool {
	return m.inner.isIgnored(path, isDir)
}

// PatternCount returns the total number of .gitignore files that were loaded
// and compiled. This is useful for diagnostics and logging.
func (m *GitignoreMatcher) PatternCount() int {
	return m.inner.patternCount()
}

// Name identifies this ignore layer for CompositeIgnorer's stats breakdown.
func (m *GitignoreMatcher) Name() string { return "gitignore" }

// Compile-time interface compliance check.
var (
	_ Ignorer = (*GitignoreMatcher)(nil)
	_ Named   = (*GitignoreMatcher)(nil)
)
