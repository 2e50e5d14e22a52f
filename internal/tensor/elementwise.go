package tensor

// ElementWiser is implemented by containers that can transform every element
// in place. The numeric in-place operations below are written once against
// it.
type ElementWiser[T DType] interface {
	ElementWise(fn func(T) T) error
}

// Scale multiplies every element of t by factor in place.
func Scale[T DType](t ElementWiser[T], factor T) error {
	return t.ElementWise(func(v T) T { return v * factor })
}

// Divide divides every element of t by divisor in place.
func Divide[T DType](t ElementWiser[T], divisor T) error {
	return t.ElementWise(func(v T) T { return v / divisor })
}

// Shift adds delta to every element of t in place.
func Shift[T DType](t ElementWiser[T], delta T) error {
	return t.ElementWise(func(v T) T { return v + delta })
}

// ScaleAssign multiplies every element by factor in place.
// Returns ErrSharedBuffer if the buffer is shared.
func (t *Tensor[T]) ScaleAssign(factor T) error {
	return Scale[T](t, factor)
}

// DivideAssign divides every element by divisor in place.
// Returns ErrSharedBuffer if the buffer is shared.
func (t *Tensor[T]) DivideAssign(divisor T) error {
	return Divide[T](t, divisor)
}

// ShiftAssign adds delta to every element in place.
func (t *Tensor[T]) ShiftAssign(delta T) error {
	return Shift[T](t, delta)
}

// AddAssign adds other to this tensor element by element.
//
// The sum is computed with PairWise into a temporary and copied back only if
// this tensor owns its buffer exclusively, so a failed call leaves the
// tensor untouched.
func (t *Tensor[T]) AddAssign(other *Tensor[T]) error {
	return t.combineAssign(other, func(a, b T) T { return a + b })
}

// SubAssign subtracts other from this tensor element by element.
// See AddAssign for the failure modes.
func (t *Tensor[T]) SubAssign(other *Tensor[T]) error {
	return t.combineAssign(other, func(a, b T) T { return a - b })
}

// MulAssign multiplies this tensor by other element by element (Hadamard).
func (t *Tensor[T]) MulAssign(other *Tensor[T]) error {
	return t.combineAssign(other, func(a, b T) T { return a * b })
}

func (t *Tensor[T]) combineAssign(other *Tensor[T], fn func(T, T) T) error {
	tmp, err := t.PairWise(other, fn)
	if err != nil {
		return err
	}
	data, err := t.mutableView()
	if err != nil {
		return err
	}
	copy(data, tmp.view())
	return nil
}
