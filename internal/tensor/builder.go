package tensor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

type initKind int

const (
	initZeros initKind = iota
	initOnes
	initFull
	initFromData
	initRandn
)

// InitMethod selects how a Builder fills a new tensor.
// The zero value fills with zeros.
type InitMethod[T Float] struct {
	kind  initKind
	value T
	data  []T
	seed  int64
}

// InitZeros fills the tensor with 0.
func InitZeros[T Float]() InitMethod[T] {
	return InitMethod[T]{kind: initZeros}
}

// InitOnes fills the tensor with 1.
func InitOnes[T Float]() InitMethod[T] {
	return InitMethod[T]{kind: initOnes}
}

// InitFull fills the tensor with value.
func InitFull[T Float](value T) InitMethod[T] {
	return InitMethod[T]{kind: initFull, value: value}
}

// InitFromData copies data into the tensor. Its length must match the shape.
func InitFromData[T Float](data []T) InitMethod[T] {
	return InitMethod[T]{kind: initFromData, data: data}
}

// InitRandn fills the tensor with samples of N(0, 1) drawn from a source seeded with seed.
func InitRandn[T Float](seed int64) InitMethod[T] {
	return InitMethod[T]{kind: initRandn, seed: seed}
}

// String implements fmt.Stringer.
func (m InitMethod[T]) String() string {
	switch m.kind {
	case initZeros:
		return "Zeros"
	case initOnes:
		return "Ones"
	case initFull:
		return fmt.Sprintf("Full(%v)", m.value)
	case initFromData:
		return fmt.Sprintf("FromData(len=%d)", len(m.data))
	case initRandn:
		return fmt.Sprintf("Randn(seed=%d)", m.seed)
	default:
		return "Unknown"
	}
}

// fill returns a new buffer of n elements initialized according to m.
func (m InitMethod[T]) fill(n int) ([]T, error) {
	if m.kind == initFromData {
		if len(m.data) != n {
			return nil, errors.Wrapf(ErrInvalidShape, "FromData: shape requires %d elements, but got %d", n, len(m.data))
		}
		data := make([]T, n)
		copy(data, m.data)
		return data, nil
	}

	data := make([]T, n)
	switch m.kind {
	case initOnes:
		for i := range data {
			data[i] = 1
		}
	case initFull:
		for i := range data {
			data[i] = m.value
		}
	case initRandn:
		fillNormal(data, rand.New(rand.NewSource(m.seed))) //nolint:gosec // G404: reproducible ML initialization.
	}
	return data, nil
}

// fillNormal writes N(0, 1) samples using the Box-Muller transform.
func fillNormal[T Float](data []T, rng *rand.Rand) {
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // (0, 1]: keeps Log finite.
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
}

// Builder validates a shape and an initialization method and produces a Tensor.
//
// Example:
//
//	t, err := tensor.NewBuilder[float32]().
//	    Shape(2, 3).
//	    Init(tensor.InitOnes[float32]()).
//	    RequiresGrad(true).
//	    Build()
type Builder[T Float] struct {
	shape        Shape
	requiresGrad bool
	init         InitMethod[T]
}

// NewBuilder returns a Builder with no shape, zeros initialization and requires-grad off.
func NewBuilder[T Float]() *Builder[T] {
	return &Builder[T]{init: InitZeros[T]()}
}

// Shape sets the tensor dimensions.
func (b *Builder[T]) Shape(dims ...int) *Builder[T] {
	b.shape = Shape(dims).Clone()
	return b
}

// RequiresGrad sets the requires-grad flag of the built tensor.
func (b *Builder[T]) RequiresGrad(flag bool) *Builder[T] {
	b.requiresGrad = flag
	return b
}

// Init sets the initialization method.
func (b *Builder[T]) Init(method InitMethod[T]) *Builder[T] {
	b.init = method
	return b
}

// ComputeStrides returns the row-major strides the built tensor will have.
func (b *Builder[T]) ComputeStrides() []int {
	return b.shape.ComputeStrides()
}

// Build validates the configuration and creates the tensor.
//
// Returns an error wrapping ErrInvalidShape if no shape was set, a dimension is
// negative, or InitFromData was given a buffer of the wrong length.
func (b *Builder[T]) Build() (*Tensor[T], error) {
	if len(b.shape) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "Builder.Build: shape is empty")
	}
	if err := b.shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "Builder.Build")
	}
	data, err := b.init.fill(b.shape.NumElements())
	if err != nil {
		return nil, errors.WithMessage(err, "Builder.Build")
	}
	return fromParts(data, b.shape.Clone(), b.requiresGrad), nil
}
