package tensor

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neura-ml/neura/internal/backend/cpu"
)

// matmulPlan is the shape analysis of a matmul: operand matrix sizes, batch
// broadcasting and the output shape.
type matmulPlan struct {
	m, k, n    int
	batchShape Shape
	aBatch     Shape
	bBatch     Shape
	outShape   Shape
	aVec, bVec bool
}

// planMatMul validates operand shapes and infers the output shape.
func planMatMul(aShape, bShape Shape) (*matmulPlan, error) {
	if len(aShape) == 0 || len(bShape) == 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "MatMul: operands must have rank >= 1, got %v and %v", aShape, bShape)
	}

	p := &matmulPlan{}
	var k2 int

	// A rank-1 left operand is a 1xK row vector.
	if len(aShape) == 1 {
		p.aVec = true
		p.m, p.k = 1, aShape[0]
		p.aBatch = Shape{}
	} else {
		rank := len(aShape)
		p.m, p.k = aShape[rank-2], aShape[rank-1]
		p.aBatch = aShape[:rank-2]
	}

	// A rank-1 right operand is a Kx1 column vector.
	if len(bShape) == 1 {
		p.bVec = true
		k2, p.n = bShape[0], 1
		p.bBatch = Shape{}
	} else {
		rank := len(bShape)
		k2, p.n = bShape[rank-2], bShape[rank-1]
		p.bBatch = bShape[:rank-2]
	}

	if p.k != k2 {
		return nil, errors.Wrapf(ErrMismatchedShapes, "MatMul: inner dimensions differ for %v @ %v (%d vs %d)",
			aShape, bShape, p.k, k2)
	}

	batchShape, _, err := BroadcastShapes(p.aBatch, p.bBatch)
	if err != nil {
		return nil, errors.WithMessagef(err, "MatMul: batch dimensions of %v @ %v", aShape, bShape)
	}
	p.batchShape = batchShape

	p.outShape = batchShape.Clone()
	if !p.aVec {
		p.outShape = append(p.outShape, p.m)
	}
	if !p.bVec {
		p.outShape = append(p.outShape, p.n)
	}
	if err := p.batchShape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "MatMul: batch dimensions of %v @ %v", aShape, bShape)
	}
	if err := p.outShape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "MatMul: output of %v @ %v", aShape, bShape)
	}
	return p, nil
}

// MatMul performs matrix multiplication with batch broadcasting.
//
// The last two dimensions of each operand are the matrix dimensions; any
// leading dimensions are batch dimensions, broadcast NumPy-style (size 1
// repeats). A rank-1 left operand acts as a row vector and a rank-1 right
// operand as a column vector; the corresponding axis is dropped from the
// output.
//
//   - (M, K) @ (K, N) → (M, N)
//   - (B, M, K) @ (K, N) → (B, M, N)
//   - (B, 1, M, K) @ (H, K, N) → (B, H, M, N)
//   - (K) @ (K, N) → (N)
//   - (K) @ (K) → () scalar
//
// Accumulation is in T, in ascending k order, so results are deterministic.
//
// Returns an error wrapping ErrInvalidShape for rank-0 operands, or
// ErrMismatchedShapes if the inner dimensions differ or batch dimensions
// cannot be broadcast.
//
// Example:
//
//	a, _ := tensor.Ones[float32](Shape{2, 3, 4})
//	b, _ := tensor.Ones[float32](Shape{4, 5})
//	c, err := a.MatMul(b) // Shape: [2, 3, 5], every element 4
func (t *Tensor[T]) MatMul(other *Tensor[T]) (*Tensor[T], error) {
	return MatMul(t, other)
}

// MatMul is the function form of Tensor.MatMul.
func MatMul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	p, err := planMatMul(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	result := newZeroed[T](p.outShape, a.requiresGrad || b.requiresGrad)
	cfg := ParallelConfig()
	if len(a.shape) == 2 && len(b.shape) == 2 {
		cpu.MatMul(result.data, a.data, b.data, p.m, p.k, p.n, cfg)
		return result, nil
	}

	dims := cpu.MatMulDims{
		BatchSize:       p.batchShape.NumElements(),
		M:               p.m,
		K:               p.k,
		N:               p.n,
		BatchStrides:    p.batchShape.ComputeStrides(),
		LHSBatchStrides: BroadcastStrides(p.aBatch, p.batchShape),
		RHSBatchStrides: BroadcastStrides(p.bBatch, p.batchShape),
	}
	if klog.V(2).Enabled() {
		klog.Infof("MatMul: %v @ %v -> %v (batch=%d, m=%d, k=%d, n=%d)",
			a.shape, b.shape, p.outShape, dims.BatchSize, p.m, p.k, p.n)
	}
	cpu.BatchMatMul(result.data, a.data, b.data, dims, cfg)
	return result, nil
}
