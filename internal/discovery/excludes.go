package discovery

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/loctok/loctok/internal/config"
)

// ExcludesMatcher evaluates the git per-repo excludes file
// (.git/info/exclude) and the global gitignore (core.excludesFile, falling
// back to ~/.config/git/ignore). Both are flat pattern lists evaluated
// against the whole tree, unlike the hierarchical per-directory .gitignore
// matcher.
type ExcludesMatcher struct {
	matcher *gitignore.GitIgnore
	logger  *slog.Logger
}

// NewExcludesMatcher builds an ExcludesMatcher for the repository rooted at
// rootDir. Missing files at any layer are silently skipped; only I/O errors
// reading a file that does exist are surfaced.
func NewExcludesMatcher(rootDir string) (*ExcludesMatcher, error) {
	logger := config.NewLogger("excludes")

	var lines []string

	if repoExclude := filepath.Join(rootDir, ".git", "info", "exclude"); fileExists(repoExclude) {
		l, err := readLines(repoExclude)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", repoExclude, err)
		}
		lines = append(lines, l...)
		logger.Debug("loaded git excludes", "path", repoExclude, "patterns", len(l))
	}

	if globalPath := globalExcludesPath(); globalPath != "" && fileExists(globalPath) {
		l, err := readLines(globalPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", globalPath, err)
		}
		lines = append(lines, l...)
		logger.Debug("loaded global gitignore", "path", globalPath, "patterns", len(l))
	}

	return &ExcludesMatcher{
		matcher: gitignore.CompileIgnoreLines(lines...),
		logger:  logger,
	}, nil
}

// globalExcludesPath resolves the global gitignore location: `git config
// core.excludesFile` if set, otherwise the XDG default
// ~/.config/git/ignore. Returns "" if neither can be determined.
func globalExcludesPath() string {
	out, err := exec.Command("git", "config", "--global", "core.excludesFile").Output()
	if err == nil {
		if p := strings.TrimSpace(string(out)); p != "" {
			return expandHome(p)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		lines = append(lines, l)
	}
	return lines, nil
}

// IsIgnored reports whether path matches the repo excludes or global
// gitignore patterns. Unlike GitignoreMatcher, these layers are flat: there
// is no per-directory scoping.
func (m *ExcludesMatcher) IsIgnored(path string, isDir bool) bool {
	normalizedPath := filepath.ToSlash(path)
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")
	if normalizedPath == "" || normalizedPath == "." {
		return false
	}

	matchPath := normalizedPath
	if isDir && !strings.HasSuffix(matchPath, "/") {
		matchPath += "/"
	}

	if m.matcher.MatchesPath(matchPath) {
		m.logger.Debug("path matched excludes", "path", normalizedPath)
		return true
	}
	return false
}

// Name identifies this ignore layer for CompositeIgnorer's stats breakdown.
// Both the repo excludes file and the global gitignore are reported under
// this one name since IsIgnored itself doesn't distinguish which of the two
// flat lists matched.
func (m *ExcludesMatcher) Name() string { return "excludes" }

// Compile-time interface compliance check.
var (
	_ Ignorer = (*ExcludesMatcher)(nil)
	_ Named   = (*ExcludesMatcher)(nil)
)
