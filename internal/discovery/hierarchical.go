package discovery

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/loctok/loctok/internal/config"
)

// hierarchicalMatcher is the shared engine behind GitignoreMatcher and
// LoctokignoreMatcher: both need the identical nested-pattern-file
// semantics (git's own rule that a directory's ignore file governs its own
// subtree, and a deeper file only adds patterns on top of its ancestors'),
// differing only in which filename they look for. Factoring the walk,
// compile, and longest-prefix-wins matching logic once here means adding a
// third ignore-file flavor later never means copying this file again.
type hierarchicalMatcher struct {
	root     string
	filename string
	matchers map[string]*gitignore.GitIgnore
	// dirs stores the sorted list of directory keys for deterministic
	// iteration from root toward the file's parent directory.
	dirs   []string
	logger *slog.Logger
}

// newHierarchicalMatcher walks rootDir for every file named filename and
// compiles its patterns with sabhiram/go-gitignore. component names the
// matcher in structured log output (e.g. "gitignore", "loctokignore").
//
// A root with no matching files is not an error: the returned matcher's
// isIgnored always reports false. Individual unreadable or malformed
// pattern files are logged and skipped rather than failing the whole walk.
func newHierarchicalMatcher(rootDir, filename, component string) (*hierarchicalMatcher, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving root path %s: %w", rootDir, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root path %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", absRoot)
	}

	m := &hierarchicalMatcher{
		root:     absRoot,
		filename: filename,
		matchers: make(map[string]*gitignore.GitIgnore),
		logger:   config.NewLogger(component),
	}

	if err := m.discover(); err != nil {
		return nil, fmt.Errorf("discovering %s files in %s: %w", filename, absRoot, err)
	}

	m.logger.Debug("matcher initialized", "root", absRoot, "pattern_file_count", len(m.matchers))
	return m, nil
}

// discover walks the root directory tree to find every file named
// m.filename and compiles each one.
func (m *hierarchicalMatcher) discover() error {
	err := filepath.WalkDir(m.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			m.logger.Debug("skipping unreadable path", "path", path, "error", err)
			return filepath.SkipDir
		}

		// Skip .git directory entirely -- it is never relevant for discovery.
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}

		if d.IsDir() || d.Name() != m.filename {
			return nil
		}

		dirPath := filepath.Dir(path)
		relDir, err := filepath.Rel(m.root, dirPath)
		if err != nil {
			m.logger.Debug("skipping pattern file, cannot compute relative path",
				"path", path, "error", err)
			return nil
		}

		compiled, err := gitignore.CompileIgnoreFile(path)
		if err != nil {
			m.logger.Debug("skipping unreadable pattern file", "path", path, "error", err)
			return nil
		}

		// Normalize to use "." for the root directory.
		if relDir == "" {
			relDir = "."
		}

		m.matchers[relDir] = compiled
		m.logger.Debug("loaded pattern file", "dir", relDir, "path", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory tree: %w", err)
	}

	// Build sorted directory list for deterministic evaluation order.
	m.dirs = make([]string, 0, len(m.matchers))
	for dir := range m.matchers {
		m.dirs = append(m.dirs, dir)
	}
	sort.Strings(m.dirs)

	return nil
}

// isIgnored reports whether path matches the loaded pattern files, evaluated
// from the root directory down to the file's own parent directory. The last
// matching pattern across the whole hierarchy decides, the same way a later
// line overrides an earlier one within a single pattern file: a deeper
// directory's negation (`!pat`) un-ignores a path an ancestor's pattern
// matched.
//
// m.dirs is sorted, which orders every ancestor before its descendants, so
// a plain root-to-leaf walk gives the deeper file the final say.
//
// Performance: matching is O(number of patterns across all applicable
// pattern files), not O(number of files).
func (m *hierarchicalMatcher) isIgnored(path string, isDir bool) bool {
	normalizedPath := strings.TrimPrefix(filepath.ToSlash(path), "./")
	if normalizedPath == "" || normalizedPath == "." {
		return false
	}

	// For directory paths, append a trailing slash so that directory-only
	// patterns (e.g., "build/") can match correctly through the library.
	matchPath := normalizedPath
	if isDir && !strings.HasSuffix(matchPath, "/") {
		matchPath += "/"
	}

	ignored := false
	for _, dir := range m.dirs {
		matcher := m.matchers[dir]

		// A pattern file at directory D applies only to paths under D;
		// the root-level file applies to everything.
		if dir != "." {
			prefix := dir + "/"
			if !strings.HasPrefix(normalizedPath, prefix) {
				continue
			}
		}

		var relPath string
		if dir == "." {
			relPath = matchPath
		} else {
			relPath = strings.TrimPrefix(matchPath, dir+"/")
		}

		verdict, pattern := matcher.MatchesPathHow(relPath)
		if pattern == nil {
			continue
		}
		ignored = verdict
		m.logger.Debug("path matched pattern file",
			"path", normalizedPath,
			"dir", dir,
			"rel_path", relPath,
			"ignored", verdict,
			"pattern_file", m.filename,
		)
	}

	return ignored
}

// patternCount returns the total number of pattern files that were loaded
// and compiled.
func (m *hierarchicalMatcher) patternCount() int {
	return len(m.matchers)
}
