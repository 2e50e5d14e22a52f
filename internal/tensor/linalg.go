package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Rows returns the first axis bound of a rank-2 tensor.
// Panics if the tensor is not rank 2.
func (t *Tensor[T]) Rows() int {
	t.mustBeMatrix("Rows")
	return t.shape.bounds[0]
}

// Cols returns the second axis bound of a rank-2 tensor.
// Panics if the tensor is not rank 2.
func (t *Tensor[T]) Cols() int {
	t.mustBeMatrix("Cols")
	return t.shape.bounds[1]
}

func (t *Tensor[T]) mustBeMatrix(op string) {
	if t.shape.Rank() != 2 {
		panic(fmt.Sprintf("%s() only works for 2D tensors, got shape %v", op, t.shape))
	}
}

// Product2D computes the matrix product a·b of two rank-2 tensors.
//
// Requirements: a is (M, K), b is (K, N); the result is (M, N).
// Returns ErrIncompatibleShapes otherwise.
//
// float64 operands are multiplied with gonum; other types use a plain loop.
//
// Example:
//
//	a, _ := tensor.Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := tensor.Matrix([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := tensor.Product2D(a, b) // [[58 64] [139 154]]
func Product2D[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	if a.Released() || b.Released() {
		return nil, ErrReleased
	}
	if a.Rank() != 2 || b.Rank() != 2 || a.shape.bounds[1] != b.shape.bounds[0] {
		return nil, fmt.Errorf("%w: product of %v and %v", ErrIncompatibleShapes, a.shape.bounds, b.shape.bounds)
	}
	m, k, n := a.shape.bounds[0], a.shape.bounds[1], b.shape.bounds[1]

	if lhs, ok := any(a.view()).([]float64); ok && m*k*n > 0 {
		rhs := any(b.view()).([]float64)
		var out mat.Dense
		out.Mul(mat.NewDense(m, k, lhs), mat.NewDense(k, n, rhs))
		data := out.RawMatrix().Data
		return any(fromData(data, NewShape(m, n))).(*Tensor[T]), nil
	}

	lhs, rhs := a.view(), b.view()
	data := make([]T, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += lhs[i*k+p] * rhs[p*n+j]
			}
			data[i*n+j] = sum
		}
	}
	return fromData(data, NewShape(m, n)), nil
}

// Transpose2D returns a new tensor with rows and columns swapped.
// Returns ErrIncorrectShape if t is not rank 2.
func Transpose2D[T DType](t *Tensor[T]) (*Tensor[T], error) {
	if t.Released() {
		return nil, ErrReleased
	}
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: transpose of rank %d tensor", ErrIncorrectShape, t.Rank())
	}
	rows, cols := t.shape.bounds[0], t.shape.bounds[1]
	src := t.view()
	data := make([]T, len(src))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[j*rows+i] = src[i*cols+j]
		}
	}
	return fromData(data, NewShape(cols, rows)), nil
}

// ToDense copies a rank-2 float64 tensor into a gonum matrix.
func ToDense(t *Tensor[float64]) (*mat.Dense, error) {
	if t.Released() {
		return nil, ErrReleased
	}
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: dense matrix from rank %d tensor", ErrIncorrectShape, t.Rank())
	}
	return mat.NewDense(t.shape.bounds[0], t.shape.bounds[1], t.Values()), nil
}

// FromDense copies a gonum matrix into a new rank-2 tensor.
func FromDense(m mat.Matrix) (*Tensor[float64], error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrIncorrectShape, rows, cols)
	}
	return FromFunc([]int{rows, cols}, func(idx []int) float64 {
		return m.At(idx[0], idx[1])
	}), nil
}
