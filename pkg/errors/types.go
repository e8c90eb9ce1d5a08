// Package errors provides typed errors for the vcsroot project.
//
// This package defines domain-specific error types that provide structured
// error information for the root search (filesystem metadata queries and
// filesystem-boundary handling). All error types implement the standard
// error interface and support errors.Is() and errors.As() from the standard
// library and cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// StatError represents a failed filesystem metadata query.
//
// It is returned when the starting directory, or an ancestor visited while
// boundary checking is active, cannot be queried for its device identifier.
type StatError struct {
	Path  string // The path that could not be queried
	Cause error
}

// Error implements the error interface.
func (e *StatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not stat %s: %v", e.Path, e.Cause)
	}
	return "could not stat " + e.Path
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *StatError) Unwrap() error {
	return e.Cause
}

// NewStatError creates a new StatError for the given path.
func NewStatError(path string, cause error) *StatError {
	return &StatError{Path: path, Cause: cause}
}

// BoundaryError represents a walk that left the starting filesystem before
// any project root was found.
//
// Start is the directory the search began in; Dir is the first ancestor that
// resides on a different storage device.
type BoundaryError struct {
	Start string
	Dir   string
}

// Error implements the error interface.
func (e *BoundaryError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("traversed filesystems at %s without finding project root", e.Dir)
	}
	return "traversed filesystems without finding project root"
}

// NewBoundaryError creates a new BoundaryError for a walk that began at start
// and hit a device change at dir.
func NewBoundaryError(start, dir string) *BoundaryError {
	return &BoundaryError{Start: start, Dir: dir}
}

// IsStatError checks if an error or any error in its chain is a StatError.
func IsStatError(err error) bool {
	var statErr *StatError
	return errors.As(err, &statErr)
}

// IsBoundaryError checks if an error or any error in its chain is a BoundaryError.
func IsBoundaryError(err error) bool {
	var boundaryErr *BoundaryError
	return errors.As(err, &boundaryErr)
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use vcserrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
