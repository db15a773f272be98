// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense N-dimensional float tensors
// in the Neura ML framework.
//
// # Overview
//
// A Tensor owns a contiguous row-major buffer of float32 or float64 values,
// its shape, its strides and an autograd flag. This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Construction through Builder or helpers (Zeros, Ones, Full, Randn, Arange, Eye)
//   - Checked multi-index access and copying range slices
//   - Element-wise Add, Sub, Mul and scalar multiplication
//   - Batched matrix multiplication with NumPy-style batch broadcasting
//
// # Basic Usage
//
//	import "github.com/neura-ml/neura/tensor"
//
//	func main() {
//	    x, _ := tensor.Ones[float32](tensor.Shape{2, 3, 4})
//	    w, _ := tensor.Randn[float32](tensor.Shape{4, 5}, 42)
//
//	    y, err := x.MatMul(w) // Shape: [2, 3, 5]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(y)
//	}
//
// # Errors
//
// Fallible operations return an error wrapping one of ErrInvalidShape,
// ErrOutOfBound, ErrInvalidRange or ErrMismatchedShapes; test with errors.Is
// or Kind. In-place operations (AddAssign, SubAssign, MulAssign) and flat
// indexing (Index, SetIndex) cannot return an error and panic instead.
//
// # Broadcasting
//
// Element-wise operations require identical shapes. Only MatMul broadcasts,
// and only over its batch dimensions:
//
//	a, _ := tensor.Zeros[float32](tensor.Shape{2, 1, 3, 4}) // (2, 1, 3, 4)
//	b, _ := tensor.Zeros[float32](tensor.Shape{5, 4, 6})    // (5, 4, 6)
//	c, _ := a.MatMul(b)                                     // (2, 5, 3, 6)
//
// # Memory Management
//
// Every operation allocates a fresh result; slices and reshapes copy. Data
// returns the underlying buffer without copying.
//
// # Parallelism
//
// Kernels split large workloads across goroutines. The defaults come from the
// NEURA_PARALLEL and NEURA_NUM_WORKERS environment variables and can be
// replaced with SetParallelConfig.
package tensor
