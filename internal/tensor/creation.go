package tensor

import "math"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Float](shape Shape) (*Tensor[T], error) {
	return NewBuilder[T]().Shape(shape...).Init(InitZeros[T]()).Build()
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t, err := tensor.Ones[float64](Shape{2, 3})
func Ones[T Float](shape Shape) (*Tensor[T], error) {
	return NewBuilder[T]().Shape(shape...).Init(InitOnes[T]()).Build()
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Float](shape Shape, value T) (*Tensor[T], error) {
	return NewBuilder[T]().Shape(shape...).Init(InitFull(value)).Build()
}

// Randn creates a tensor with samples from the standard normal distribution N(0, 1).
// The same seed always produces the same values.
//
// Example:
//
//	t, err := tensor.Randn[float32](Shape{100, 100}, 42)
func Randn[T Float](shape Shape, seed int64) (*Tensor[T], error) {
	return NewBuilder[T]().Shape(shape...).Init(InitRandn[T](seed)).Build()
}

// Arange creates a 1D tensor with values start, start+1, ... below end.
// An empty range, or one with a NaN or infinite bound, yields a tensor of shape [0].
//
// Example:
//
//	t := tensor.Arange[float32](0, 6) // [0, 1, 2, 3, 4, 5]
func Arange[T Float](start, end T) *Tensor[T] {
	n := 0
	if span := float64(end) - float64(start); span > 0 && span < math.MaxInt {
		n = int(math.Ceil(span))
	}

	t := newZeroed[T](Shape{n}, false)
	for i := range t.data {
		t.data[i] = start + T(i)
	}
	return t
}

// Eye creates a 2D identity matrix.
// Returns an error wrapping ErrInvalidShape if n is negative.
//
// Example:
//
//	t, err := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T Float](n int) (*Tensor[T], error) {
	t, err := Zeros[T](Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}
