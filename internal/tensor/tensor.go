package tensor

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Tensor is a dense N-dimensional array of T stored as one contiguous row-major buffer.
//
// The shape and strides are fixed at construction; only the data contents, the
// requires-grad flag and the gradient buffer may change afterwards. Strides are
// always the row-major strides of the shape: slicing copies, it never aliases.
//
// A Tensor has a single owner. It is not safe for concurrent mutation.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	y := x.MulScalar(2)
//	z, err := x.Add(y)
type Tensor[T Float] struct {
	data         []T
	shape        Shape
	strides      []int
	requiresGrad bool // Advisory flag for an autodiff layer; propagated by binary ops.
	grad         []T  // Placeholder for an autodiff layer; nil on every op result.
}

// New creates a Tensor from a copy of data with the given shape.
//
// A rank-0 shape describes a scalar holding exactly one element. Use the
// Builder to reject rank-0 shapes at construction.
//
// Returns an error wrapping ErrInvalidShape if a dimension is negative or
// len(data) differs from shape.NumElements().
func New[T Float](data []T, shape Shape, requiresGrad bool) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	owned := make([]T, len(data))
	copy(owned, data)
	return fromParts(owned, shape.Clone(), requiresGrad), nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return New(data, shape, false)
}

// newZeroed allocates a zero-filled tensor for an operation result.
// The caller guarantees shape is valid.
func newZeroed[T Float](shape Shape, requiresGrad bool) *Tensor[T] {
	return fromParts(make([]T, shape.NumElements()), shape, requiresGrad)
}

// fromParts takes ownership of data and shape.
func fromParts[T Float](data []T, shape Shape, requiresGrad bool) *Tensor[T] {
	if len(data) != shape.NumElements() {
		exceptions.Panicf("tensor: internal error, %d elements for shape %v", len(data), shape)
	}
	return &Tensor[T]{
		data:         data,
		shape:        shape,
		strides:      shape.ComputeStrides(),
		requiresGrad: requiresGrad,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.strides...)
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Len is an alias of NumElements.
func (t *Tensor[T]) Len() int {
	return len(t.data)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return dataTypeOf[T]()
}

// ByteSize returns the size of the data buffer in bytes.
func (t *Tensor[T]) ByteSize() int {
	return len(t.data) * t.DType().Size()
}

// Data returns the tensor's underlying buffer in row-major order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// RequiresGrad reports whether an autodiff layer should track this tensor.
func (t *Tensor[T]) RequiresGrad() bool {
	return t.requiresGrad
}

// RequireGrad marks this tensor for gradient tracking.
// Returns the tensor itself for method chaining.
func (t *Tensor[T]) RequireGrad() *Tensor[T] {
	t.requiresGrad = true
	return t
}

// SetRequiresGrad sets the requires-grad flag.
func (t *Tensor[T]) SetRequiresGrad(flag bool) {
	t.requiresGrad = flag
}

// Grad returns the gradient buffer, nil unless an autodiff layer set one.
func (t *Tensor[T]) Grad() []T {
	return t.grad
}

// SetGrad stores a gradient buffer. The core never reads it.
// grad must be nil or hold exactly NumElements() values.
func (t *Tensor[T]) SetGrad(grad []T) error {
	if grad != nil && len(grad) != len(t.data) {
		return errors.Wrapf(ErrInvalidShape, "Tensor.SetGrad: gradient has %d elements, tensor %v has %d",
			len(grad), t.shape, len(t.data))
	}
	t.grad = grad
	return nil
}

// Clone creates a deep copy of the tensor.
// The requires-grad flag is kept; the gradient is not.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return fromParts(data, t.shape.Clone(), t.requiresGrad)
}

// String returns a human-readable summary of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v requires_grad=%v (%s)",
		t.DType(), []int(t.shape), t.requiresGrad, humanize.Bytes(uint64(t.ByteSize())))
}
