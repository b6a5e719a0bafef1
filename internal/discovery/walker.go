package discovery

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/loctok/loctok/internal/config"
)

// Candidate is a single file path that has passed every discovery filter:
// ignore rules, hidden-file policy, and extension allow-list. It carries no
// content; reading and tokenizing is internal/filestat's job.
type Candidate struct {
	// Path is relative to the walk root, forward-slash separated.
	Path string
	// AbsPath is the absolute filesystem path to open for reading.
	AbsPath string
}

// Result holds the discovered candidates plus skip accounting for the
// supplemental --stats summary.
type Result struct {
	Files        []Candidate
	TotalFound   int
	TotalSkipped int
	SkipReasons  map[string]int
}

// Config configures a single Walk call.
type Config struct {
	// Root is the directory to scan.
	Root string

	// Hidden, when false (the default), prunes any path component other
	// than the root itself that begins with a dot.
	Hidden bool

	// ExtFilter restricts results to a final-extension allow-list. A nil
	// or inactive filter passes every file.
	ExtFilter *ExtFilter

	// GitignoreMatcher evaluates hierarchical .gitignore files.
	GitignoreMatcher Ignorer

	// ExcludesMatcher evaluates .git/info/exclude and the global gitignore.
	ExcludesMatcher Ignorer

	// LoctokignoreMatcher evaluates the supplemental .loctokignore files.
	LoctokignoreMatcher Ignorer

	// GitTrackedOnly restricts discovery to `git ls-files` output.
	GitTrackedOnly bool
}

// Walker discovers candidate files under a root directory, honoring
// gitignore semantics, the hidden-file policy, and the extension filter.
type Walker struct {
	logger *slog.Logger
}

// NewWalker creates a Walker.
func NewWalker() *Walker {
	return &Walker{logger: config.NewLogger("walker")}
}

// Walk traverses cfg.Root and returns every matching candidate, sorted
// lexicographically by path for deterministic downstream processing.
func (w *Walker) Walk(cfg Config) (*Result, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path %s: %w", cfg.Root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	composite := NewCompositeIgnorer(
		cfg.GitignoreMatcher,
		cfg.ExcludesMatcher,
		cfg.LoctokignoreMatcher,
	)

	var gitTracked map[string]bool
	if cfg.GitTrackedOnly {
		gitTracked, err = GitTrackedFiles(root)
		if err != nil {
			return nil, fmt.Errorf("loading git tracked files: %w", err)
		}
	}

	dedup := NewRealPathDedup()

	var files []Candidate
	skipReasons := make(map[string]int)
	totalFound := 0

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			w.logger.Debug("walk error", "path", path, "error", walkErr)
			skipReasons["walk_error"]++
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if relPath == "." {
			return nil
		}

		isDir := d.IsDir()

		// .git/ is always excluded, independent of any ignore file.
		if isDir && d.Name() == ".git" {
			return fs.SkipDir
		}

		if !cfg.Hidden && IsHidden(relPath) {
			if isDir {
				skipReasons["hidden"]++
				return fs.SkipDir
			}
			totalFound++
			skipReasons["hidden"]++
			return nil
		}

		if layer, ignored := composite.MatchedBy(relPath, isDir); ignored {
			if isDir {
				skipReasons["ignored_dir:"+layer]++
				return fs.SkipDir
			}
			totalFound++
			skipReasons["ignored:"+layer]++
			return nil
		}

		if isDir {
			return nil
		}

		// Symlinked directories are never descended into: WalkDir does not
		// follow dir symlinks, so they arrive here as non-directory entries
		// and are skipped below.
		isSymlink := d.Type()&os.ModeSymlink != 0

		totalFound++

		absPath := path
		if isSymlink {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				skipReasons["symlink_dir"]++
				return nil
			}
			claimed, err := dedup.Claim(path)
			if err != nil {
				w.logger.Debug("dangling symlink", "path", relPath, "error", err)
				skipReasons["symlink_error"]++
				return nil
			}
			if !claimed {
				skipReasons["symlink_dup"]++
				return nil
			}
		} else {
			if claimed, err := dedup.Claim(path); err == nil && !claimed {
				skipReasons["symlink_dup"]++
				return nil
			}
		}

		if cfg.GitTrackedOnly && gitTracked != nil && !gitTracked[relPath] {
			skipReasons["not_tracked"]++
			return nil
		}

		info, err := d.Info()
		if err != nil {
			skipReasons["stat_error"]++
			return nil
		}
		if !info.Mode().IsRegular() && !isSymlink {
			skipReasons["not_regular"]++
			return nil
		}

		if cfg.ExtFilter != nil && !cfg.ExtFilter.Matches(relPath) {
			skipReasons["ext_filter"]++
			return nil
		}

		files = append(files, Candidate{Path: relPath, AbsPath: absPath})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, walkErr)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	totalSkipped := 0
	for _, n := range skipReasons {
		totalSkipped += n
	}

	w.logger.Info("discovery complete", "files", len(files), "total_found", totalFound, "total_skipped", totalSkipped)

	return &Result{
		Files:        files,
		TotalFound:   totalFound,
		TotalSkipped: totalSkipped,
		SkipReasons:  skipReasons,
	}, nil
}
