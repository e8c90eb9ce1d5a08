// Package findroot locates the root directory of a project by walking from a
// starting directory toward the filesystem root and testing each ancestor for
// version-control marker entries such as .git.
//
// The walk is a single pass: Find enumerates ancestors with AncestorsOf,
// classifies each one with IsProjectRoot and, unless told to span
// filesystems, compares device identifiers so a search never silently
// escapes the volume it started on.
package findroot

import (
	"log/slog"
	"os"

	vcserrors "thoreinstein.com/vcsroot/pkg/errors"
)

// Mode selects which matching ancestor Find reports when more than one
// contains a marker.
type Mode int

const (
	// Closest reports the match nearest the starting directory.
	Closest Mode = iota
	// Farthest keeps walking after a match and reports the outermost one.
	Farthest
)

// String returns the spelling used by flags and the config file.
func (m Mode) String() string {
	switch m {
	case Farthest:
		return "farthest"
	default:
		return "closest"
	}
}

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "closest":
		return Closest, nil
	case "farthest":
		return Farthest, nil
	default:
		return Closest, vcserrors.Newf("invalid mode %q (must be one of: closest, farthest)", s)
	}
}

// BoundaryPolicy controls the outcome when the walk reaches an ancestor on
// another device after a match has already been recorded in Farthest mode.
type BoundaryPolicy int

const (
	// ReturnCandidate abandons the rest of the walk and reports the best
	// match seen so far.
	ReturnCandidate BoundaryPolicy = iota
	// FailOnBoundary turns every crossing into an error, candidate or not.
	FailOnBoundary
)

// Options adjusts a single Find invocation. The zero value searches for the
// default markers, reports the match closest to the start and stops at
// filesystem boundaries.
type Options struct {
	// Markers overrides DefaultMarkers for this search.
	Markers []string

	// Mode selects between the closest and the farthest match.
	Mode Mode

	// SpanFileSystems lets the walk continue across device boundaries.
	// It is implied on platforms where DeviceCheckSupported is false.
	SpanFileSystems bool

	// OnBoundary picks the outcome for a boundary crossing that happens
	// after a candidate root has been recorded.
	OnBoundary BoundaryPolicy

	// StatErrorsAsBoundaries treats a failed device query on an ancestor
	// as a boundary crossing instead of a hard error.
	StatErrorsAsBoundaries bool

	// Logger receives debug traces of the walk. May be nil.
	Logger *slog.Logger
}

// logDebug logs a debug message if verbose logging is enabled.
func (o Options) logDebug(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

// deviceGuard carries the device of the starting directory so the walk can
// recognize mount-point crossings.
type deviceGuard struct {
	active           bool
	base             DeviceID
	statAsBoundaries bool
}

// newDeviceGuard validates the starting directory and, when boundary checks
// apply, records its device as the baseline. The starting directory must be
// statable under every configuration.
func newDeviceGuard(start string, opts Options) (*deviceGuard, error) {
	if opts.SpanFileSystems || !DeviceCheckSupported() {
		if _, err := os.Stat(start); err != nil {
			return nil, vcserrors.NewStatError(start, err)
		}
		return &deviceGuard{}, nil
	}
	base, err := DeviceOf(start)
	if err != nil {
		return nil, err
	}
	return &deviceGuard{
		active:           true,
		base:             base,
		statAsBoundaries: opts.StatErrorsAsBoundaries,
	}, nil
}

// crossed reports whether dir sits on a different device than the start.
func (g *deviceGuard) crossed(dir string) (bool, error) {
	if !g.active {
		return false, nil
	}
	dev, err := DeviceOf(dir)
	if err != nil {
		if g.statAsBoundaries {
			return true, nil
		}
		return false, err
	}
	return dev != g.base, nil
}

// Find walks from start toward the filesystem root and returns the ancestor
// that contains a marker entry, honoring the mode and boundary settings in
// opts. start should be an absolute, symlink-resolved path; Find never
// canonicalizes it.
//
// When no ancestor matches, Find returns found=false with a nil error.
// Errors are reserved for a starting directory that cannot be stat-ed and
// for boundary conditions, reported as *errors.StatError and
// *errors.BoundaryError respectively.
func Find(start string, opts Options) (root string, found bool, err error) {
	guard, err := newDeviceGuard(start, opts)
	if err != nil {
		return "", false, err
	}

	opts.logDebug("searching for project root",
		"start", start,
		"mode", opts.Mode.String(),
		"span_file_systems", !guard.active)

	var candidate string
	walk := AncestorsOf(start)
	for walk.Scan() {
		dir := walk.Dir()

		crossed, err := guard.crossed(dir)
		if err != nil {
			return "", false, err
		}
		if crossed {
			if candidate != "" && opts.OnBoundary == ReturnCandidate {
				opts.logDebug("boundary reached, keeping candidate", "dir", dir, "candidate", candidate)
				return candidate, true, nil
			}
			return "", false, vcserrors.NewBoundaryError(start, dir)
		}

		if !IsProjectRoot(dir, opts.Markers) {
			continue
		}
		if opts.Mode == Closest {
			opts.logDebug("marker found", "dir", dir)
			return dir, true, nil
		}
		opts.logDebug("marker found, continuing upward", "dir", dir)
		candidate = dir
	}

	if candidate != "" {
		return candidate, true, nil
	}
	return "", false, nil
}
