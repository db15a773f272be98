package tensor

import (
	"github.com/pkg/errors"

	"github.com/neura-ml/neura/internal/backend/cpu"
	"github.com/neura-ml/neura/internal/parallel"
)

type binaryKernel[T Float] func(dst, a, b []T, cfg parallel.Config)

// binaryOp checks that both shapes are equal and applies kernel into a new tensor.
func binaryOp[T Float](op string, a, b *Tensor[T], kernel binaryKernel[T]) (*Tensor[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, errors.Wrapf(ErrMismatchedShapes, "%s: shapes %v and %v", op, a.shape, b.shape)
	}
	result := newZeroed[T](a.shape.Clone(), a.requiresGrad || b.requiresGrad)
	kernel(result.data, a.data, b.data, ParallelConfig())
	return result, nil
}

// binaryAssign applies kernel into a; a shape mismatch is fatal.
func binaryAssign[T Float](op string, a, b *Tensor[T], kernel binaryKernel[T]) {
	if !a.shape.Equal(b.shape) {
		fatalf(ErrMismatchedShapes, "%s: shapes %v and %v", op, a.shape, b.shape)
	}
	kernel(a.data, a.data, b.data, ParallelConfig())
}

// Add performs element-wise addition of two tensors of the same shape.
// There is no broadcasting: shapes must be equal.
//
// Returns an error wrapping ErrMismatchedShapes if the shapes differ.
//
// Example:
//
//	a, _ := tensor.Ones[float32](Shape{2, 2})
//	b, _ := tensor.Ones[float32](Shape{2, 2})
//	c, err := a.Add(b) // [[2, 2], [2, 2]]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return binaryOp("Tensor.Add", t, other, cpu.Add[T])
}

// Sub performs element-wise subtraction of two tensors of the same shape.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return binaryOp("Tensor.Sub", t, other, cpu.Sub[T])
}

// Mul performs element-wise (Hadamard) multiplication of two tensors of the same shape.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return binaryOp("Tensor.Mul", t, other, cpu.Mul[T])
}

// AddAssign adds other into t in place.
//
// Panics with an error wrapping ErrMismatchedShapes if the shapes differ:
// validate shapes first when they are not known to match.
func (t *Tensor[T]) AddAssign(other *Tensor[T]) {
	binaryAssign("Tensor.AddAssign", t, other, cpu.Add[T])
}

// SubAssign subtracts other from t in place. Panics like AddAssign.
func (t *Tensor[T]) SubAssign(other *Tensor[T]) {
	binaryAssign("Tensor.SubAssign", t, other, cpu.Sub[T])
}

// MulAssign multiplies t by other element-wise in place. Panics like AddAssign.
func (t *Tensor[T]) MulAssign(other *Tensor[T]) {
	binaryAssign("Tensor.MulAssign", t, other, cpu.Mul[T])
}

// MulScalar returns a new tensor with every element multiplied by k.
// The requires-grad flag is kept; the gradient is not.
func (t *Tensor[T]) MulScalar(k T) *Tensor[T] {
	result := newZeroed[T](t.shape.Clone(), t.requiresGrad)
	cpu.Scale(result.data, t.data, k, ParallelConfig())
	return result
}

// MulScalarAssign multiplies every element by k in place.
func (t *Tensor[T]) MulScalarAssign(k T) {
	cpu.Scale(t.data, t.data, k, ParallelConfig())
}
