package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float64](3, 4)
func Zeros[T DType](bounds ...int) *Tensor[T] {
	return New[T](bounds, 0)
}

// Full creates a tensor filled with value.
func Full[T DType](value T, bounds ...int) *Tensor[T] {
	return New(bounds, value)
}

// FromFunc creates a tensor whose element at every index is producer(index).
// Elements are produced in row-major order; producer must not retain index.
//
// Example:
//
//	eye := tensor.FromFunc([]int{3, 3}, func(idx []int) float64 {
//	    if idx[0] == idx[1] {
//	        return 1
//	    }
//	    return 0
//	})
func FromFunc[T DType](bounds []int, producer func(index []int) T) *Tensor[T] {
	shape := NewShape(bounds...)
	data := make([]T, shape.Count())
	index := make([]int, shape.Rank())
	for i := range data {
		data[i] = producer(index)
		// Advance the index, last axis fastest.
		for k := len(index) - 1; k >= 0; k-- {
			index[k]++
			if index[k] < shape.bounds[k] {
				break
			}
			index[k] = 0
		}
	}
	return fromData(data, shape)
}

// Vector creates a rank-1 tensor of shape [len(values)].
// Returns ErrIncorrectShape for empty input.
func Vector[T DType](values []T) (*Tensor[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrIncorrectShape)
	}
	return fromData(append([]T(nil), values...), NewShape(len(values))), nil
}

// Column creates a rank-2 column vector of shape [len(values), 1], the layout
// dense layers consume.
func Column[T DType](values []T) (*Tensor[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty column", ErrIncorrectShape)
	}
	return fromData(append([]T(nil), values...), NewShape(len(values), 1)), nil
}

// Matrix creates a rank-2 tensor from rows.
// Returns ErrIncorrectShape if there are no rows, no columns, or the rows
// differ in length.
//
// Example:
//
//	m, err := tensor.Matrix([][]float64{
//	    {1, 0, 1},
//	    {2, 1, 1},
//	})
func Matrix[T DType](rows [][]T) (*Tensor[T], error) {
	cols, err := rectangular(rows)
	if err != nil {
		return nil, err
	}
	data := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return fromData(data, NewShape(len(rows), cols)), nil
}

// Tensor3D creates a rank-3 tensor from blocks of rows.
// Returns ErrIncorrectShape unless every block is a non-empty rectangle of
// the same size.
func Tensor3D[T DType](blocks [][][]T) (*Tensor[T], error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no blocks", ErrIncorrectShape)
	}
	rows := len(blocks[0])
	cols, err := rectangular(blocks[0])
	if err != nil {
		return nil, fmt.Errorf("block 0: %w", err)
	}
	data := make([]T, 0, len(blocks)*rows*cols)
	for d, block := range blocks {
		c, err := rectangular(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", d, err)
		}
		if len(block) != rows || c != cols {
			return nil, fmt.Errorf("%w: block %d is %dx%d, want %dx%d", ErrIncorrectShape, d, len(block), c, rows, cols)
		}
		for _, row := range block {
			data = append(data, row...)
		}
	}
	return fromData(data, NewShape(len(blocks), rows, cols)), nil
}

// rectangular returns the common row length of rows.
func rectangular[T DType](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrIncorrectShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return 0, fmt.Errorf("%w: no columns", ErrIncorrectShape)
	}
	for i, row := range rows {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrIncorrectShape, i, len(row), cols)
		}
	}
	return cols, nil
}

// Identity creates an n×n identity matrix.
func Identity[T DType](n int) *Tensor[T] {
	t := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		t.buf.data[i*n+i] = 1
	}
	return t
}

// Diagonal creates a square matrix with values on the diagonal.
func Diagonal[T DType](values []T) *Tensor[T] {
	n := len(values)
	t := Zeros[T](n, n)
	for i, v := range values {
		t.buf.data[i*n+i] = v
	}
	return t
}

// Random creates a tensor with values uniformly distributed in [0, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	w := tensor.Random(3, 2)
func Random(bounds ...int) *Tensor[float64] {
	t := Zeros[float64](bounds...)
	for i := range t.buf.data {
		t.buf.data[i] = rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally
	}
	return t
}

// RandomSource is like Random but draws from rng, for reproducible fills.
func RandomSource(rng *rand.Rand, bounds ...int) *Tensor[float64] {
	t := Zeros[float64](bounds...)
	for i := range t.buf.data {
		t.buf.data[i] = rng.Float64()
	}
	return t
}

// RandomTensors creates n independent Random tensors of the same bounds.
func RandomTensors(n int, bounds ...int) []*Tensor[float64] {
	out := make([]*Tensor[float64], n)
	for i := range out {
		out[i] = Random(bounds...)
	}
	return out
}
