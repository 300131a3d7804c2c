package logger

import (
	"fmt"

	"github.com/pkg/errors"
)

// ExportExtension is the suffix every export path must carry
const ExportExtension = ".txt"

// InvalidPathError is returned by an export whose target lacks the required
// extension. Nothing is written and the buffer is left as it was.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid export path %q: must end with %s", e.Path, ExportExtension)
}

// WriteError reports a failure to open, write or close the export target.
// The buffer is left intact so the export can be retried.
type WriteError struct {
	error

	Path string
	Op   string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("export %s: %s: %v", e.Path, e.Op, e.error)
}

func (e *WriteError) Unwrap() error {
	return e.error
}

func newWriteError(path, op string, cause error) error {
	return &WriteError{error: errors.WithStack(cause), Path: path, Op: op}
}

// IsInvalidPath reports whether err is, or wraps, an InvalidPathError
func IsInvalidPath(err error) bool {
	var target *InvalidPathError
	return errors.As(err, &target)
}

// IsWriteError reports whether err is, or wraps, a WriteError
func IsWriteError(err error) bool {
	var target *WriteError
	return errors.As(err, &target)
}
