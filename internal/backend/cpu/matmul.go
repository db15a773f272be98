package cpu

import (
	"golang.org/x/exp/constraints"

	"github.com/neura-ml/neura/internal/parallel"
)

// MatMulDims describes a batched contraction [batch..., M, K] @ [batch..., K, N].
//
// BatchStrides are the row-major strides of the broadcast batch shape.
// LHSBatchStrides and RHSBatchStrides map a broadcast batch coordinate to the
// operand's own batch index: padded and size-1 axes have stride 0, which
// repeats that operand across the axis.
type MatMulDims struct {
	BatchSize       int
	M, K, N         int
	BatchStrides    []int
	LHSBatchStrides []int
	RHSBatchStrides []int
}

// BatchMatMul computes C[b, i, j] = sum_k A[ba, i, k] * B[bb, k, j] for every batch b,
// where ba and bb are the operands' own batch indices for b.
//
// Accumulation happens in T with k ascending. Work is split by (batch, row), so
// every output element is written by exactly one goroutine.
func BatchMatMul[T constraints.Float](c, a, b []T, dims MatMulDims, cfg parallel.Config) {
	m, k, n := dims.M, dims.K, dims.N
	if dims.BatchSize == 0 || m == 0 || n == 0 {
		return
	}

	aOffsets := batchOffsets(dims.BatchSize, dims.BatchStrides, dims.LHSBatchStrides, m*k)
	bOffsets := batchOffsets(dims.BatchSize, dims.BatchStrides, dims.RHSBatchStrides, k*n)

	parallel.ForBatch(dims.BatchSize, m, func(batch, i int) {
		aRow := aOffsets[batch] + i*k
		bOffset := bOffsets[batch]
		cRow := c[(batch*m+i)*n : (batch*m+i+1)*n]
		matmulRow(cRow, a[aRow:aRow+k], b[bOffset:bOffset+k*n], k, n)
	}, cfg)
}

// MatMul computes the plain 2D product (M, K) @ (K, N) -> (M, N).
func MatMul[T constraints.Float](c, a, b []T, m, k, n int, cfg parallel.Config) {
	BatchMatMul(c, a, b, MatMulDims{
		BatchSize: 1,
		M:         m,
		K:         k,
		N:         n,
	}, cfg)
}

// matmulRow computes one output row: c[j] = sum_k aRow[k] * b[k, j].
func matmulRow[T constraints.Float](c, aRow, b []T, k, n int) {
	for j := 0; j < n; j++ {
		sum := T(0)
		for kIdx := 0; kIdx < k; kIdx++ {
			sum += aRow[kIdx] * b[kIdx*n+j]
		}
		c[j] = sum
	}
}
