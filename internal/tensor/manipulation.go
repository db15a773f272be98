package tensor

import "github.com/pkg/errors"

// Reshape returns a copy of the tensor with a new shape holding the same elements
// in the same row-major order.
//
// One dimension may be -1, in which case it is inferred from the others.
// Returns an error wrapping ErrInvalidShape if the element counts differ.
//
// Example:
//
//	t := tensor.Arange[float32](0, 12) // Shape: [12]
//	m, err := t.Reshape(3, -1)         // Shape: [3, 4]
func (t *Tensor[T]) Reshape(newShape ...int) (*Tensor[T], error) {
	shape := Shape(newShape).Clone()
	inferred := -1
	for i, dim := range shape {
		switch {
		case dim == -1 && inferred < 0:
			inferred = i
		case dim < 0:
			return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Reshape: invalid target shape %v", newShape)
		}
	}

	knownDims := shape
	if inferred >= 0 {
		knownDims = shape.Clone()
		knownDims[inferred] = 1
	}
	known, ok := knownDims.checkedNumElements()
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Reshape: target shape %v has too many elements", newShape)
	}
	if inferred >= 0 {
		if known == 0 || len(t.data)%known != 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Reshape: cannot infer dimension of %v for %d elements",
				newShape, len(t.data))
		}
		shape[inferred] = len(t.data) / known
	}
	if shape.NumElements() != len(t.data) {
		return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			t.shape, len(t.data), shape, shape.NumElements())
	}

	data := make([]T, len(t.data))
	copy(data, t.data)
	return fromParts(data, shape, t.requiresGrad), nil
}

// Flatten returns a rank-1 copy of the tensor.
func (t *Tensor[T]) Flatten() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return fromParts(data, Shape{len(data)}, t.requiresGrad)
}

// normalizeAxis maps a possibly negative axis onto [0, rank).
func normalizeAxis(op string, axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, errors.Wrapf(ErrOutOfBound, "%s: axis out of range for rank %d", op, rank)
	}
	return axis, nil
}

// Squeeze returns a copy of the tensor with the size-1 dimension at dim removed.
//
// Supports negative dim indexing. Returns an error wrapping ErrOutOfBound if dim
// is out of range, or ErrInvalidShape if that dimension is not 1.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](Shape{2, 1, 3})
//	y, err := x.Squeeze(1) // Shape: [2, 3]
func (t *Tensor[T]) Squeeze(dim int) (*Tensor[T], error) {
	axis, err := normalizeAxis("Tensor.Squeeze", dim, len(t.shape))
	if err != nil {
		return nil, err
	}
	if t.shape[axis] != 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "Tensor.Squeeze: dimension %d of %v is not 1", axis, t.shape)
	}

	shape := make(Shape, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	return t.Reshape(shape...)
}

// Unsqueeze returns a copy of the tensor with a dimension of size 1 inserted at dim.
//
// dim ranges over [-(rank+1), rank]; negative values count from the end.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](Shape{2, 3})
//	y, _ := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z, _ := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor[T]) Unsqueeze(dim int) (*Tensor[T], error) {
	axis, err := normalizeAxis("Tensor.Unsqueeze", dim, len(t.shape)+1)
	if err != nil {
		return nil, err
	}

	shape := make(Shape, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[axis:]...)
	return t.Reshape(shape...)
}
