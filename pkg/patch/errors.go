package patch

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Kind classifies a patch failure.
type Kind int

const (
	// IOFailure is any local I/O failure other than a missing file.
	IOFailure Kind = iota
	// NotFound means the file to patch does not exist; callers treat this
	// as nothing to do.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	default:
		return "io failure"
	}
}

// Error is returned by every operation in this package.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	kind := IOFailure
	if os.IsNotExist(errors.Cause(err)) {
		kind = NotFound
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of a patch error, looking through wrapping done with
// github.com/pkg/errors. Errors from elsewhere are IOFailure.
func KindOf(err error) Kind {
	if perr, ok := errors.Cause(err).(*Error); ok {
		return perr.Kind
	}
	return IOFailure
}

// IsNotFound reports whether err means the patched file was absent.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == NotFound
}
