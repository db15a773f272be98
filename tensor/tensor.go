// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in the Neura ML framework.
//
// The package re-exports the core types and constructors:
//   - Tensor[T]: dense row-major tensor over float32 or float64
//   - Builder, InitMethod: validated construction
//   - Shape, Range, DataType: core type definitions
//
// Example:
//
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y, _ := tensor.Ones[float32](tensor.Shape{2, 3})
//	z, err := x.Add(y) // Element-wise addition
package tensor

import (
	"github.com/neura-ml/neura/internal/parallel"
	"github.com/neura-ml/neura/internal/tensor"
)

// Type aliases for public API

// Float is the constraint for tensor element types: float32, float64 or a
// named type based on them.
type Float = tensor.Float

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense N-dimensional tensor of T stored in row-major order.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y, _ := tensor.Ones[float32](tensor.Shape{2, 3})
//	z, err := x.Add(y) // Element-wise addition
type Tensor[T Float] = tensor.Tensor[T]

// Range is a half-open interval [Start, End) along one axis, used by Tensor.Slice.
type Range = tensor.Range

// Builder configures and creates a tensor. See NewBuilder.
type Builder[T Float] = tensor.Builder[T]

// InitMethod selects how a Builder fills a new tensor.
type InitMethod[T Float] = tensor.InitMethod[T]

// ParallelConfig controls how kernels split work across goroutines.
type ParallelConfig = parallel.Config

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrOutOfBound       = tensor.ErrOutOfBound
	ErrInvalidRange     = tensor.ErrInvalidRange
	ErrMismatchedShapes = tensor.ErrMismatchedShapes
)

// Kind returns the error kind wrapped by err, or nil if err is not a tensor error.
func Kind(err error) error {
	return tensor.Kind(err)
}

// Creation functions

// New creates a tensor from a copy of data.
// Returns an error wrapping ErrInvalidShape if len(data) does not match the shape.
//
// Example:
//
//	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, true)
func New[T Float](data []T, shape Shape, requiresGrad bool) (*Tensor[T], error) {
	return tensor.New(data, shape, requiresGrad)
}

// FromSlice creates a tensor from a copy of data, with requires-grad off.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// NewBuilder returns a Builder with no shape, zeros initialization and requires-grad off.
//
// Example:
//
//	x, err := tensor.NewBuilder[float32]().
//	    Shape(2, 3).
//	    Init(tensor.InitOnes[float32]()).
//	    RequiresGrad(true).
//	    Build()
func NewBuilder[T Float]() *Builder[T] {
	return tensor.NewBuilder[T]()
}

// InitZeros fills a built tensor with 0.
func InitZeros[T Float]() InitMethod[T] { return tensor.InitZeros[T]() }

// InitOnes fills a built tensor with 1.
func InitOnes[T Float]() InitMethod[T] { return tensor.InitOnes[T]() }

// InitFull fills a built tensor with value.
func InitFull[T Float](value T) InitMethod[T] { return tensor.InitFull(value) }

// InitFromData copies data into a built tensor.
func InitFromData[T Float](data []T) InitMethod[T] { return tensor.InitFromData(data) }

// InitRandn fills a built tensor with seeded N(0, 1) samples.
func InitRandn[T Float](seed int64) InitMethod[T] { return tensor.InitRandn[T](seed) }

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Float](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Float](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Randn creates a tensor filled with values from the standard normal distribution N(0, 1).
// The same seed always produces the same values.
func Randn[T Float](shape Shape, seed int64) (*Tensor[T], error) {
	return tensor.Randn[T](shape, seed)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Float](start, end T) *Tensor[T] {
	return tensor.Arange(start, end)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	identity, err := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T Float](n int) (*Tensor[T], error) {
	return tensor.Eye[T](n)
}

// Operations

// R is shorthand for Range{start, end}.
//
// Example:
//
//	rows, err := x.Slice(tensor.R(1, 3), tensor.R(0, 4))
func R(start, end int) Range {
	return tensor.R(start, end)
}

// MatMul multiplies a and b with batch broadcasting. See Tensor.MatMul.
func MatMul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.MatMul(a, b)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// The boolean reports whether any dimension had to be broadcast.
//
// Example:
//
//	resultShape, broadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], broadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// DefaultParallelConfig returns the built-in parallelism settings, ignoring the environment.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the parallelism settings used by all tensor operations.
//
// Example:
//
//	tensor.SetParallelConfig(tensor.ParallelConfig{Enabled: false}) // single-threaded
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}

// CurrentParallelConfig returns the parallelism settings in effect.
func CurrentParallelConfig() ParallelConfig {
	return tensor.ParallelConfig()
}
