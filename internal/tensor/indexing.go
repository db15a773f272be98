package tensor

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/neura-ml/neura/internal/backend/cpu"
)

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start, End int
}

// R is shorthand for Range{start, end}.
func R(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// String implements fmt.Stringer using Go slice notation.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// offset validates a multi-index and converts it to a flat buffer offset.
func (t *Tensor[T]) offset(op string, indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, errors.Wrapf(ErrInvalidShape, "%s: expected %d indices, got %d", op, len(t.shape), len(indices))
	}
	offset := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= t.shape[axis] {
			return 0, errors.Wrapf(ErrOutOfBound, "%s: index %d out of bounds for axis %d (size %d)",
				op, idx, axis, t.shape[axis])
		}
		offset += idx * t.strides[axis]
	}
	return offset, nil
}

// Get returns the element at the given multi-index.
//
// Returns an error wrapping ErrInvalidShape if len(indices) != Rank(), or
// ErrOutOfBound if some index is outside its dimension.
//
// Example:
//
//	t, _ := tensor.Zeros[float32](Shape{3, 4})
//	value, err := t.Get(1, 2) // Row 1, column 2
func (t *Tensor[T]) Get(indices ...int) (T, error) {
	offset, err := t.offset("Tensor.Get", indices)
	if err != nil {
		return 0, err
	}
	return t.data[offset], nil
}

// Set stores value at the given multi-index, with the same checks as Get.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	offset, err := t.offset("Tensor.Set", indices)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// Index returns the element at a flat offset into the row-major buffer.
// Panics with an error wrapping ErrOutOfBound if offset is not in [0, NumElements()).
func (t *Tensor[T]) Index(offset int) T {
	t.checkFlat("Tensor.Index", offset)
	return t.data[offset]
}

// SetIndex stores value at a flat offset. Panics like Index.
func (t *Tensor[T]) SetIndex(offset int, value T) {
	t.checkFlat("Tensor.SetIndex", offset)
	t.data[offset] = value
}

func (t *Tensor[T]) checkFlat(op string, offset int) {
	if offset < 0 || offset >= len(t.data) {
		fatalf(ErrOutOfBound, "%s(%d): offset out of range for tensor %v with %d elements",
			op, offset, t.shape, len(t.data))
	}
}

// Slice extracts a sub-region, one half-open range per axis, into a new tensor.
//
// The result owns a contiguous copy of the selected elements in row-major order,
// has shape [End-Start] per axis, keeps the requires-grad flag and has no gradient.
// A selection with zero elements yields a valid empty tensor.
//
// Returns an error wrapping ErrInvalidShape if len(ranges) != Rank(), or
// ErrInvalidRange if some range is negative, inverted or past its dimension.
//
// Example:
//
//	x := tensor.Arange[float32](0, 6)
//	m, _ := x.Reshape(2, 3)
//	row, _ := m.Slice(tensor.R(0, 1), tensor.R(0, 3)) // Shape [1, 3]: [0, 1, 2]
func (t *Tensor[T]) Slice(ranges ...Range) (*Tensor[T], error) {
	if len(ranges) != len(t.shape) {
		return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Slice: expected %d ranges, got %d", len(t.shape), len(ranges))
	}

	outShape := make(Shape, len(ranges))
	starts := make([]int, len(ranges))
	for axis, r := range ranges {
		dim := t.shape[axis]
		if r.Start < 0 || r.Start > dim || r.End > dim || r.Start > r.End {
			return nil, errors.Wrapf(ErrInvalidRange, "Tensor.Slice: range %s invalid for axis %d (size %d)",
				r, axis, dim)
		}
		outShape[axis] = r.Len()
		starts[axis] = r.Start
	}

	result := newZeroed[T](outShape, t.requiresGrad)
	cpu.CopyRegion(result.data, t.data, outShape, starts, t.strides, ParallelConfig())
	return result, nil
}
