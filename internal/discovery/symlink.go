package discovery

import (
	"path/filepath"
	"sync"

	"github.com/zeebo/xxh3"
)

// RealPathDedup guards against a real file being emitted twice when
// multiple symlinks (or a symlink plus the real path) alias it during a
// concurrent walk. It hashes the resolved real path with xxh3 rather than
// storing the full string, keeping the concurrent set cheap to probe under
// contention from many walker goroutines.
//
// Safe for concurrent use.
type RealPathDedup struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

// NewRealPathDedup creates an empty RealPathDedup.
func NewRealPathDedup() *RealPathDedup {
	return &RealPathDedup{seen: make(map[uint64]struct{})}
}

// Claim resolves path to its real filesystem path and reports whether this
// is the first time that real path has been claimed. Subsequent calls for
// any path resolving to the same real path return false. A resolution
// error (dangling symlink) is returned as-is; the caller should skip the
// entry.
func (d *RealPathDedup) Claim(path string) (claimed bool, err error) {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}

	h := xxh3.HashString(real)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[h]; ok {
		return false, nil
	}
	d.seen[h] = struct{}{}
	return true, nil
}
