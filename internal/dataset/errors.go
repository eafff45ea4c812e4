package dataset

import "fmt"

// LoadErrorKind tags the reason a reference dataset could not be loaded.
type LoadErrorKind string

const (
	UnsupportedFormat LoadErrorKind = "unsupported_format"
	IOFailure         LoadErrorKind = "io_failure"
)

// ErrLoad is returned by the Loader for any failure while reading a reference source.
type ErrLoad struct {
	Kind  LoadErrorKind
	Path  string
	cause error
	error
}

func (e *ErrLoad) Unwrap() error {
	return e.cause
}

func NewErrUnsupportedFormat(path string) *ErrLoad {
	return &ErrLoad{
		Kind:  UnsupportedFormat,
		Path:  path,
		error: fmt.Errorf("unsupported dataset format %q: expected one of %v", path, supportedSuffixes()),
	}
}

func NewErrIOFailure(path string, cause error) *ErrLoad {
	return &ErrLoad{
		Kind:  IOFailure,
		Path:  path,
		cause: cause,
		error: fmt.Errorf("reading dataset %q: %w", path, cause),
	}
}
