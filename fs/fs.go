// Package fs provides file-system backed caching for diff results.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the per-user cache directory for diffpreview,
// honoring XDG_CACHE_HOME. It falls back to the temp directory when no
// user cache directory can be determined.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "diffpreview")
}
