package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// resolveStartDir determines the starting directory for the search.
// An optional positional argument overrides the working directory. The
// result is absolute with symlinks resolved, so the walk sees the real
// ancestor chain rather than the spelled one.
func resolveStartDir(args []string) (string, error) {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get working directory")
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "invalid starting directory: %s", dir)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "invalid starting directory: %s", dir)
	}

	return resolved, nil
}
