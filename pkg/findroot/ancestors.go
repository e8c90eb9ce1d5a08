package findroot

import "path/filepath"

// Ancestors iterates over a directory and each of its parents, in order of
// increasing distance from the start. The sequence is produced lazily, one
// Scan at a time, and nothing is stat-ed: enumeration is kept separate from
// the boundary policy applied by Find.
type Ancestors struct {
	dir     string
	started bool
}

// AncestorsOf returns an iterator over dir and its parents, ending at the
// filesystem root. dir is expected to be absolute and cleaned; the iterator
// never resolves symlinks or relative segments itself.
func AncestorsOf(dir string) *Ancestors {
	return &Ancestors{dir: filepath.Clean(dir)}
}

// Scan advances to the next ancestor, returning false after the filesystem
// root has been yielded. The first call yields the starting directory.
func (a *Ancestors) Scan() bool {
	if !a.started {
		a.started = true
		return true
	}
	parent := filepath.Dir(a.dir)
	if parent == a.dir {
		// Reached filesystem root
		return false
	}
	a.dir = parent
	return true
}

// Dir returns the ancestor most recently advanced to by Scan.
func (a *Ancestors) Dir() string {
	return a.dir
}
