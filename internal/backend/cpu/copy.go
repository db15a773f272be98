package cpu

import (
	"golang.org/x/exp/constraints"

	"github.com/neura-ml/neura/internal/parallel"
)

// CopyRegion copies the box [starts, starts+outShape) of a row-major src with
// strides srcStrides into dst, which is filled in row-major order of outShape.
//
// Requires: len(dst) == product(outShape) and the box lies within src.
func CopyRegion[T constraints.Float](dst, src []T, outShape, starts, srcStrides []int, cfg parallel.Config) {
	rank := len(outShape)
	if rank == 0 {
		copy(dst, src[:1])
		return
	}
	if len(dst) == 0 {
		return
	}

	last := outShape[rank-1]
	rows := len(dst) / last
	lastStart := starts[rank-1] * srcStrides[rank-1]

	parallel.For(rows, func(r int) {
		offset := lastStart
		rem := r
		for axis := rank - 2; axis >= 0; axis-- {
			coord := rem % outShape[axis]
			rem /= outShape[axis]
			offset += (coord + starts[axis]) * srcStrides[axis]
		}
		copy(dst[r*last:(r+1)*last], src[offset:offset+last])
	}, cfg)
}
