package discovery

import "strings"

// IsHidden reports whether any path component other than the root itself
// begins with a dot. path is expected to be relative to the walk root and
// use forward slashes.
func IsHidden(path string) bool {
	for _, part := range strings.Split(path, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
