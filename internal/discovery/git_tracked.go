package discovery

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/loctok/loctok/internal/config"
)

// GitTrackedFiles runs `git ls-files` in root and returns the set of paths
// (relative to root, forward-slash separated, as git itself reports them)
// that are tracked by Git. It backs the --git-tracked-only flag, which
// restricts the walker to exactly this set instead of every file the
// ignore chain would otherwise admit.
//
// An empty repository (no tracked files) returns an empty, non-nil map. A
// root that isn't a Git repository, or a missing git binary, is reported as
// an error; the walker treats this as a configuration error rather than
// falling back to an unrestricted scan.
func GitTrackedFiles(root string) (map[string]bool, error) {
	logger := config.NewLogger("git-tracked")

	cmd := exec.Command("git", "ls-files")
	cmd.Dir = root

	output, err := cmd.Output()
	if err != nil {
		logger.Debug("git ls-files failed", "root", root, "error", err)
		return nil, fmt.Errorf("git ls-files failed in %s: %w (is this a git repository?)", root, err)
	}

	trimmed := strings.TrimRight(string(output), "\n")
	files := make(map[string]bool)
	if trimmed != "" {
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line != "" {
				files[line] = true
			}
		}
	}

	logger.Debug("loaded git tracked files", "root", root, "count", len(files))
	return files, nil
}
