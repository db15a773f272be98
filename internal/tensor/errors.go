package tensor

import "github.com/pkg/errors"

// Error kinds shared by every fallible tensor operation.
// Returned errors wrap exactly one of them; test with errors.Is.
var (
	// ErrInvalidShape reports a rank or length mismatch: a shape that disagrees
	// with its data, an empty or negative shape at construction, or the wrong
	// number of indices/ranges.
	ErrInvalidShape = errors.New("invalid tensor dimensions")

	// ErrOutOfBound reports a concrete index past the end of its dimension.
	ErrOutOfBound = errors.New("index out of bound")

	// ErrInvalidRange reports a slice range that is out of bounds or inverted.
	ErrInvalidRange = errors.New("invalid slice range")

	// ErrMismatchedShapes reports operands whose shapes are incompatible for the operation.
	ErrMismatchedShapes = errors.New("mismatched tensor shapes")
)

var errorKinds = []error{ErrInvalidShape, ErrOutOfBound, ErrInvalidRange, ErrMismatchedShapes}

// Kind returns the error kind wrapped by err, or nil if err is not a tensor error.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// fatalf aborts the current operation with an error of the given kind.
// Used where the call site has no way to receive an error (in-place ops, flat indexing).
func fatalf(kind error, format string, args ...any) {
	panic(errors.Wrapf(kind, format, args...))
}
