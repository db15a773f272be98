package tensor

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq returns a tensor of the given shape holding 1, 2, 3, ... in row-major order.
func seq(shape ...int) *Tensor[float32] {
	n := Shape(shape).NumElements()
	return must.M1(Arange[float32](1, float32(n+1)).Reshape(shape...))
}

func TestGet(t *testing.T) {
	x := seq(10, 5)

	v, err := x.Get(1, 1)
	require.NoError(t, err)
	assertEqualFloat32(t, 7, v, "Get(1, 1)")

	v, err = x.Get(9, 4)
	require.NoError(t, err)
	assertEqualFloat32(t, 50, v, "Get(9, 4)")

	_, err = x.Get(10, 0)
	require.ErrorIs(t, err, ErrOutOfBound)
	_, err = x.Get(0, -1)
	require.ErrorIs(t, err, ErrOutOfBound)
	_, err = x.Get(1)
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = x.Get(1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestGet_MatchesStrides(t *testing.T) {
	x := seq(2, 3, 4)
	strides := x.Strides()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				v := must.M1(x.Get(i, j, k))
				require.Equal(t, x.Data()[i*strides[0]+j*strides[1]+k*strides[2]], v)
			}
		}
	}
}

func TestSet(t *testing.T) {
	x := must.M1(Zeros[float64](Shape{2, 3}))
	require.NoError(t, x.Set(5, 1, 2))
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 5}, x.Data())

	require.ErrorIs(t, x.Set(1, 2, 0), ErrOutOfBound)
	require.ErrorIs(t, x.Set(1, 0), ErrInvalidShape)
}

func TestGet_Scalar(t *testing.T) {
	s := must.M1(New([]float32{3}, Shape{}, false))
	v, err := s.Get()
	require.NoError(t, err)
	assertEqualFloat32(t, 3, v, "scalar Get")
}

func TestIndex(t *testing.T) {
	x := seq(2, 2)
	assertEqualFloat32(t, 1, x.Index(0), "Index(0)")
	assertEqualFloat32(t, 4, x.Index(3), "Index(3)")

	x.SetIndex(2, 30)
	assertEqualFloat32(t, 30, must.M1(x.Get(1, 0)), "SetIndex(2)")
}

func TestIndex_OutOfRangePanics(t *testing.T) {
	x := seq(2, 2)

	err := exceptions.TryCatch[error](func() { _ = x.Index(4) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBound)

	err = exceptions.TryCatch[error](func() { x.SetIndex(-1, 0) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBound)
	assert.Contains(t, err.Error(), "Tensor.SetIndex(-1)")
}

func TestRange(t *testing.T) {
	r := R(2, 5)
	assert.Equal(t, Range{Start: 2, End: 5}, r)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "2:5", r.String())
}

func TestSlice2D(t *testing.T) {
	x := seq(10, 5)

	s, err := x.Slice(R(1, 8), R(0, 2))
	require.NoError(t, err)
	assertEqualShape(t, Shape{7, 2}, s.Shape(), "slice shape")
	assert.Equal(t, []float32{6, 7, 11, 12, 16, 17, 21, 22, 26, 27, 31, 32, 36, 37}, s.Data())
	assert.Equal(t, []int{2, 1}, s.Strides())
}

func TestSlice3D(t *testing.T) {
	x := seq(4, 3, 2)

	s, err := x.Slice(R(1, 3), R(0, 2), R(0, 1))
	require.NoError(t, err)
	assertEqualShape(t, Shape{2, 2, 1}, s.Shape(), "slice shape")
	assert.Equal(t, []float32{7, 9, 13, 15}, s.Data())
}

func TestSlice_ElementsMatchSource(t *testing.T) {
	x := seq(4, 6)
	ranges := []Range{R(1, 4), R(2, 5)}
	s := must.M1(x.Slice(ranges...))

	for i := 0; i < ranges[0].Len(); i++ {
		for j := 0; j < ranges[1].Len(); j++ {
			want := must.M1(x.Get(ranges[0].Start+i, ranges[1].Start+j))
			got := must.M1(s.Get(i, j))
			require.Equal(t, want, got, "element (%d, %d)", i, j)
		}
	}
}

func TestSlice_Full(t *testing.T) {
	x := seq(3, 4)
	s := must.M1(x.Slice(R(0, 3), R(0, 4)))
	assert.Equal(t, x.Data(), s.Data())
	assertEqualShape(t, x.Shape(), s.Shape(), "full slice")

	// The slice is a copy.
	s.SetIndex(0, 100)
	assertEqualFloat32(t, 1, x.Index(0), "source unchanged")
}

func TestSlice_Empty(t *testing.T) {
	x := seq(4, 3)
	s, err := x.Slice(R(0, 0), R(0, 3))
	require.NoError(t, err)
	assertEqualShape(t, Shape{0, 3}, s.Shape(), "empty slice")
	assert.Empty(t, s.Data())

	s, err = x.Slice(R(4, 4), R(1, 2))
	require.NoError(t, err)
	assertEqualShape(t, Shape{0, 1}, s.Shape(), "empty slice at the end")
}

func TestSlice_Scalar(t *testing.T) {
	x := must.M1(New([]float64{2.5}, Shape{}, false))
	s, err := x.Slice()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, []float64{2.5}, s.Data())
}

func TestSlice_KeepsRequiresGrad(t *testing.T) {
	x := seq(2, 2).RequireGrad()
	require.NoError(t, x.SetGrad([]float32{1, 1, 1, 1}))

	s := must.M1(x.Slice(R(0, 1), R(0, 2)))
	assert.True(t, s.RequiresGrad())
	assert.Nil(t, s.Grad())
}

func TestSlice_Errors(t *testing.T) {
	x := seq(4, 3)

	tests := []struct {
		name   string
		ranges []Range
		kind   error
	}{
		{"too few ranges", []Range{R(0, 1)}, ErrInvalidShape},
		{"too many ranges", []Range{R(0, 1), R(0, 1), R(0, 1)}, ErrInvalidShape},
		{"end past dimension", []Range{R(0, 5), R(0, 3)}, ErrInvalidRange},
		{"start past dimension", []Range{R(0, 1), R(4, 4)}, ErrInvalidRange},
		{"inverted", []Range{R(3, 1), R(0, 3)}, ErrInvalidRange},
		{"negative start", []Range{R(-1, 2), R(0, 3)}, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x.Slice(tt.ranges...)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestSlice_Idempotent(t *testing.T) {
	x := seq(5, 4, 3)
	a := must.M1(x.Slice(R(1, 4), R(0, 2), R(1, 3)))
	b := must.M1(x.Slice(R(1, 4), R(0, 2), R(1, 3)))
	assert.Equal(t, a.Data(), b.Data())
	assertEqualShape(t, a.Shape(), b.Shape(), "repeated slice")
}
