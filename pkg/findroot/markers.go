package findroot

import (
	"os"
	"path/filepath"
)

// DefaultMarkers lists the version-control entries whose presence marks a
// project root, in the order they are checked.
var DefaultMarkers = []string{".git", "_darcs", ".hg", ".bzr", ".svn"}

// IsProjectRoot checks if dir directly contains one of the marker entries.
// A nil or empty markers slice falls back to DefaultMarkers.
//
// Only existence under the exact name matters: a marker may be a directory
// (a regular checkout), a plain file (git worktrees and submodules), or
// anything else. An entry that cannot be queried counts as absent, so the
// check itself never fails.
func IsProjectRoot(dir string, markers []string) bool {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
