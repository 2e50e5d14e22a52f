// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided N-dimensional tensors for tensorlab.
//
// # Overview
//
// A Tensor[T] is a view over a reference-counted, contiguous buffer. This
// package provides:
//   - Generic numeric tensors (Tensor[T])
//   - Row-major shapes with bounds, strides and an offset
//   - Zero-copy nested views that share the parent buffer
//   - Element-wise and pair-wise operations
//   - 2-D matrix product, transpose and convolution helpers
//
// # Basic Usage
//
//	import "github.com/born-ml/tensorlab/tensor"
//
//	func main() {
//	    a, _ := tensor.Matrix([][]float64{{1, 2}, {3, 4}})
//	    b := tensor.Identity[float64](2)
//
//	    c, _ := tensor.Product2D(a, b)
//	    _ = c.ScaleAssign(2)
//	}
//
// # Supported Data Types
//
// The DType constraint admits:
//   - float32, float64 (floating-point)
//   - int, int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//
// # Shared Buffers
//
// Nested returns a view that aliases a contiguous window of its parent. While
// more than one live tensor references a buffer, every mutating operation
// fails with ErrSharedBuffer and leaves the data untouched. Reads, PairWise
// and Clone keep working. Call Release on a tensor you no longer need so that
// the remaining holders become exclusive again:
//
//	row, _ := m.Nested(0)
//	_ = m.Set(9, 0, 0)   // ErrSharedBuffer
//	row.Release()
//	_ = m.Set(9, 0, 0)   // ok
//
// # Available Operations
//
// In-place (require an exclusive buffer):
//
//	err := x.ScaleAssign(2)     // multiply by scalar
//	err := x.DivideAssign(2)    // divide by scalar
//	err := x.ShiftAssign(1)     // add scalar
//	err := x.AddAssign(y)       // element-wise accumulate
//	err := x.ElementWise(fn)    // arbitrary unary update
//
// Allocating:
//
//	z, err := x.PairWise(y, fn) // arbitrary binary combination
//	z, err := x.Add(y)          // also Sub, Mul, Div
//	z := x.Map(fn)              // also MulScalar, Powi
//	z, err := tensor.Product2D(x, y)
package tensor
