package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Equal reports whether t and other have the same shape and every pair of
// elements differs by at most eps.
func (t *Tensor[T]) Equal(other *Tensor[T], eps float64) bool {
	if t.Released() || other.Released() || !t.shape.SameShape(other.shape) {
		return false
	}
	lhs, rhs := t.view(), other.view()
	for i := range lhs {
		if math.Abs(float64(lhs[i])-float64(rhs[i])) > eps {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
// Rank-1 and rank-2 tensors include their elements.
func (t *Tensor[T]) String() string {
	if t.Released() {
		return fmt.Sprintf("Tensor[%s]%v (released)", t.DType(), t.shape.bounds)
	}
	header := fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape.bounds)
	data := t.view()
	switch t.Rank() {
	case 1:
		return fmt.Sprintf("%s %v", header, data)
	case 2:
		var b strings.Builder
		b.WriteString(header)
		cols := t.shape.bounds[1]
		for i := 0; i < t.shape.bounds[0]; i++ {
			fmt.Fprintf(&b, "\n  %v", data[i*cols:(i+1)*cols])
		}
		return b.String()
	default:
		return header
	}
}
