package emitter

import (
	"errors"
	"fmt"
)

// Kind classifies why an emission failed.
type Kind string

// Failure kinds reported by Emit.
const (
	KindNone                    Kind = ""
	KindDatasetDirectoryMissing Kind = "dataset_directory_missing"
	KindWriteFailure            Kind = "write_failure"
	KindInvalidClassNames       Kind = "invalid_class_names"
)

// Sentinel errors, one per Kind.
//
// Use errors.Is to branch on the failure cause:
//
//	res := e.Emit(req)
//	if errors.Is(res.Error(), emitter.ErrDatasetDirectoryMissing) {
//		// create the dataset first
//	}
var (
	// ErrDatasetDirectoryMissing is returned when the dataset directory does not exist.
	ErrDatasetDirectoryMissing = errors.New("emitter: dataset directory does not exist")

	// ErrWriteFailure is returned when opening, writing or closing the output fails.
	ErrWriteFailure = errors.New("emitter: failed to write dataset document")

	// ErrInvalidClassNames is returned in strict mode for unusable class names.
	ErrInvalidClassNames = errors.New("emitter: invalid class names")
)

var kindSentinels = map[Kind]error{
	KindDatasetDirectoryMissing: ErrDatasetDirectoryMissing,
	KindWriteFailure:            ErrWriteFailure,
	KindInvalidClassNames:       ErrInvalidClassNames,
}

// Error is the tagged failure carried by an Emit result.
type Error struct {
	Err  error
	Kind Kind
	Path string
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// KindOf returns the Kind of err, or KindNone if err is not an emitter error.
func KindOf(err error) Kind {
	var emitErr *Error
	if errors.As(err, &emitErr) {
		return emitErr.Kind
	}
	return KindNone
}
