package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Map returns a new exclusive tensor with fn applied to every element.
// Unlike ElementWise it never mutates t, so it works on shared buffers.
//
// Example:
//
//	act := input.Map(math.Tanh)
func (t *Tensor[T]) Map(fn func(T) T) *Tensor[T] {
	src := t.view()
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = fn(v)
	}
	return fromData(out, NewShape(t.shape.bounds...))
}

// Add returns the element-wise sum of t and other.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.PairWise(other, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference t - other.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.PairWise(other, func(a, b T) T { return a - b })
}

// Mul returns the element-wise (Hadamard) product of t and other.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.PairWise(other, func(a, b T) T { return a * b })
}

// Div returns the element-wise quotient t / other.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return t.PairWise(other, func(a, b T) T { return a / b })
}

// MulScalar returns a new tensor with every element multiplied by factor.
func (t *Tensor[T]) MulScalar(factor T) *Tensor[T] {
	return t.Map(func(v T) T { return v * factor })
}

// Powi returns a new tensor with every element raised to the power n.
func (t *Tensor[T]) Powi(n uint) *Tensor[T] {
	return t.Map(func(v T) T {
		r := T(1)
		for i := uint(0); i < n; i++ {
			r *= v
		}
		return r
	})
}

// Sum returns the sum of all addressed elements.
func (t *Tensor[T]) Sum() T {
	data := t.view()
	if f, ok := any(data).([]float64); ok {
		return T(floats.Sum(f))
	}
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of all addressed elements.
// Returns NaN for an empty tensor.
func (t *Tensor[T]) Mean() float64 {
	data := t.view()
	if len(data) == 0 {
		return math.NaN()
	}
	if f, ok := any(data).([]float64); ok {
		return floats.Sum(f) / float64(len(f))
	}
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum / float64(len(data))
}
