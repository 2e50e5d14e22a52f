// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int, int32, int64, uint8.
type DType = tensor.DType

// Float is the floating-point subset of DType.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Shape describes the bounds, strides and buffer offset of a tensor view.
type Shape = tensor.Shape

// Tensor is a generic strided tensor over a reference-counted buffer.
//
// Example:
//
//	m, _ := tensor.Matrix([][]float64{{1, 2}, {3, 4}})
//	row, _ := m.Nested(1)   // [3 4], shares m's buffer
//	v, _ := row.Get(0)      // 3
type Tensor[T DType] = tensor.Tensor[T]

// ElementWiser is implemented by containers that can transform every element
// in place.
type ElementWiser[T DType] = tensor.ElementWiser[T]

// Errors returned by tensor operations.
var (
	ErrIndexOutOfBounds   = tensor.ErrIndexOutOfBounds
	ErrIncompatibleShapes = tensor.ErrIncompatibleShapes
	ErrIncorrectShape     = tensor.ErrIncorrectShape
	ErrSharedBuffer       = tensor.ErrSharedBuffer
	ErrReleased           = tensor.ErrReleased
)

// NewShape creates a row-major shape. Panics on a negative bound.
func NewShape(bounds ...int) Shape {
	return tensor.NewShape(bounds...)
}

// Creation functions

// New creates a tensor with the given bounds, every element set to fill.
// Empty bounds produce an empty tensor.
func New[T DType](bounds []int, fill T) *Tensor[T] {
	return tensor.New(bounds, fill)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](2, 3)
func Zeros[T DType](bounds ...int) *Tensor[T] {
	return tensor.Zeros[T](bounds...)
}

// Full creates a tensor filled with value.
func Full[T DType](value T, bounds ...int) *Tensor[T] {
	return tensor.Full(value, bounds...)
}

// FromFunc creates a tensor by calling producer for every index in row-major order.
func FromFunc[T DType](bounds []int, producer func(index []int) T) *Tensor[T] {
	return tensor.FromFunc(bounds, producer)
}

// Vector creates a rank-1 tensor from values.
func Vector[T DType](values []T) (*Tensor[T], error) {
	return tensor.Vector(values)
}

// Column creates an n×1 tensor from values.
func Column[T DType](values []T) (*Tensor[T], error) {
	return tensor.Column(values)
}

// Matrix creates a rank-2 tensor from rectangular rows.
// Returns ErrIncorrectShape for empty or ragged input.
func Matrix[T DType](rows [][]T) (*Tensor[T], error) {
	return tensor.Matrix(rows)
}

// Tensor3D creates a rank-3 tensor from equally sized blocks.
func Tensor3D[T DType](blocks [][][]T) (*Tensor[T], error) {
	return tensor.Tensor3D(blocks)
}

// Identity creates an n×n identity matrix.
func Identity[T DType](n int) *Tensor[T] {
	return tensor.Identity[T](n)
}

// Diagonal creates a square matrix with values on the diagonal.
func Diagonal[T DType](values []T) *Tensor[T] {
	return tensor.Diagonal(values)
}

// Random creates a float64 tensor with values uniform in [0, 1).
func Random(bounds ...int) *Tensor[float64] {
	return tensor.Random(bounds...)
}

// RandomSource is like Random but draws from rng.
func RandomSource(rng *rand.Rand, bounds ...int) *Tensor[float64] {
	return tensor.RandomSource(rng, bounds...)
}

// RandomTensors creates n independent random tensors with the same bounds.
func RandomTensors(n int, bounds ...int) []*Tensor[float64] {
	return tensor.RandomTensors(n, bounds...)
}

// Element-wise helpers

// Scale multiplies every element of t by factor in place.
func Scale[T DType](t ElementWiser[T], factor T) error {
	return tensor.Scale(t, factor)
}

// Divide divides every element of t by divisor in place.
func Divide[T DType](t ElementWiser[T], divisor T) error {
	return tensor.Divide(t, divisor)
}

// Shift adds delta to every element of t in place.
func Shift[T DType](t ElementWiser[T], delta T) error {
	return tensor.Shift(t, delta)
}

// Linear algebra

// Product2D computes the matrix product a·b of two rank-2 tensors.
//
// Example:
//
//	a, _ := tensor.Matrix([][]float64{{1, 2}, {3, 4}})
//	b, _ := tensor.Column([]float64{1, 1})
//	c, _ := tensor.Product2D(a, b)   // [[3] [7]]
func Product2D[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Product2D(a, b)
}

// Transpose2D returns a transposed copy of a rank-2 tensor.
func Transpose2D[T DType](t *Tensor[T]) (*Tensor[T], error) {
	return tensor.Transpose2D(t)
}

// ToDense copies a rank-2 float64 tensor into a gonum matrix.
func ToDense(t *Tensor[float64]) (*mat.Dense, error) {
	return tensor.ToDense(t)
}

// FromDense copies a gonum matrix into a new rank-2 tensor.
func FromDense(m mat.Matrix) (*Tensor[float64], error) {
	return tensor.FromDense(m)
}

// Convolution

// CrossCorrelation2D slides kernel over input without padding ("valid" mode).
func CrossCorrelation2D[T DType](input, kernel *Tensor[T]) (*Tensor[T], error) {
	return tensor.CrossCorrelation2D(input, kernel)
}

// PadExpand2D surrounds input with kRows-1 rows and kCols-1 columns of fill on each side.
func PadExpand2D[T DType](input *Tensor[T], kRows, kCols int, fill T) (*Tensor[T], error) {
	return tensor.PadExpand2D(input, kRows, kCols, fill)
}

// FullConvolution2D convolves input with kernel in "full" mode.
func FullConvolution2D[T DType](input, kernel *Tensor[T]) (*Tensor[T], error) {
	return tensor.FullConvolution2D(input, kernel)
}
