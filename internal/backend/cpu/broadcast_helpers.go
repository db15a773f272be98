package cpu

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: row-major strides of the output shape (all dimensions > 0).
// inStrides: broadcast-adjusted strides of the input shape (0 on repeated axes).
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	ndim := len(outStrides)
	flatIdx := 0

	for i := 0; i < ndim; i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}

	return flatIdx
}

// batchOffsets returns, for every linear batch index, the element offset of the
// operand's matrix slab.
func batchOffsets(batchSize int, outStrides, inStrides []int, slab int) []int {
	offsets := make([]int, batchSize)
	for b := range offsets {
		offsets[b] = computeFlatIndex(b, outStrides, inStrides) * slab
	}
	return offsets
}
