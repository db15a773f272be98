package tensor

import (
	"fmt"
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Panics(t, func() { _ = DataType(99).Size() })
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "unknown", DataType(99).String())
}

type meters float32

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, dataTypeOf[float32]())
	assert.Equal(t, Float64, dataTypeOf[float64]())
	assert.Equal(t, Float32, dataTypeOf[meters]())
}

// Tensor Tests

func TestNew(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := New(data, Shape{2, 3}, true)
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "New shape")
	assert.Equal(t, []int{3, 1}, x.Strides())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, 6, x.Len())
	assert.True(t, x.RequiresGrad())
	assert.Nil(t, x.Grad())
	assert.Equal(t, data, x.Data())

	// The input buffer is copied.
	data[0] = 100
	assertEqualFloat32(t, 1, x.Data()[0], "New copies data")
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New([]float32{1, 2}, Shape{3}, false)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = New([]float32{}, Shape{-1}, false)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewScalarAndEmpty(t *testing.T) {
	s := must.M1(New([]float64{3.5}, Shape{}, false))
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.NumElements())
	assert.Empty(t, s.Strides())

	e := must.M1(FromSlice([]float64{}, Shape{0}))
	assert.Equal(t, 0, e.NumElements())
	assert.Equal(t, []int{1}, e.Strides())
}

func TestShapeAccessorsReturnCopies(t *testing.T) {
	x := must.M1(Zeros[float32](Shape{2, 3}))
	shape := x.Shape()
	shape[0] = 10
	strides := x.Strides()
	strides[0] = 10

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "shape must be immutable")
	assert.Equal(t, []int{3, 1}, x.Strides())
}

func TestRequireGrad(t *testing.T) {
	x := must.M1(Zeros[float32](Shape{2}))
	assert.False(t, x.RequiresGrad())
	assert.Same(t, x, x.RequireGrad())
	assert.True(t, x.RequiresGrad())
	x.SetRequiresGrad(false)
	assert.False(t, x.RequiresGrad())
}

func TestSetGrad(t *testing.T) {
	x := must.M1(Zeros[float32](Shape{2, 2}))
	require.NoError(t, x.SetGrad([]float32{1, 2, 3, 4}))
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Grad())

	err := x.SetGrad([]float32{1})
	require.ErrorIs(t, err, ErrInvalidShape)

	require.NoError(t, x.SetGrad(nil))
	assert.Nil(t, x.Grad())
}

func TestClone(t *testing.T) {
	x := must.M1(New([]float64{1, 2, 3}, Shape{3}, true))
	require.NoError(t, x.SetGrad([]float64{0, 0, 0}))

	c := x.Clone()
	c.Data()[0] = 9

	assert.Equal(t, []float64{1, 2, 3}, x.Data())
	assert.True(t, c.RequiresGrad())
	assert.Nil(t, c.Grad())
	assertEqualShape(t, x.Shape(), c.Shape(), "Clone shape")
}

func TestString(t *testing.T) {
	x := must.M1(Zeros[float32](Shape{2, 3}))
	assert.Equal(t, "Tensor[float32][2 3] requires_grad=false (24 B)", x.String())

	y := must.M1(Zeros[float64](Shape{1000})).RequireGrad()
	assert.Equal(t, "Tensor[float64][1000] requires_grad=true (8.0 kB)", fmt.Sprint(y))
	assert.Equal(t, 8000, y.ByteSize())
}

// Error taxonomy

func TestKind(t *testing.T) {
	for _, kind := range []error{ErrInvalidShape, ErrOutOfBound, ErrInvalidRange, ErrMismatchedShapes} {
		wrapped := errors.Wrapf(kind, "context %d", 1)
		assert.Equal(t, kind, Kind(wrapped))
		assert.Equal(t, kind, Kind(errors.WithMessage(wrapped, "outer")))
	}
	assert.Nil(t, Kind(nil))
	assert.Nil(t, Kind(errors.New("something else")))
}

func TestErrorMessagesCarryContext(t *testing.T) {
	a := must.M1(Zeros[float32](Shape{3}))
	b := must.M1(Zeros[float32](Shape{2}))
	_, err := a.Add(b)
	require.Error(t, err)
	assert.Equal(t, "Tensor.Add: shapes [3] and [2]: mismatched tensor shapes", err.Error())
}

func TestNew_ElementCountOverflow(t *testing.T) {
	// The product wraps to 0 without overflow detection, which would match a nil buffer.
	huge := Shape{math.MaxInt/2 + 1, 4}
	_, err := New[float32](nil, huge, false)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromSlice[float64](nil, huge)
	require.ErrorIs(t, err, ErrInvalidShape)
}
