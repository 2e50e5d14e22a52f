package tensor

import "fmt"

// Tensor is a typed, shape-aware view over a flat element buffer.
//
// A tensor either owns its buffer exclusively or shares it with the views
// carved from it by Nested. Shared buffers are read-only: every mutating
// operation fails with ErrSharedBuffer until the other handles are released.
//
// Example:
//
//	t, _ := tensor.Tensor3D(blocks) // shape [3, 4, 3]
//	slice, _ := t.Nested(1)         // shape [4, 3], aliases t
//	v, _ := slice.Get(2, 0)         // blocks[1][2][0]
//	t.Release()                     // slice is now the sole owner
//	_ = slice.Set(55, 0, 0)
type Tensor[T DType] struct {
	buf   *buffer[T]
	shape Shape
}

// New creates a tensor with the given bounds and every element set to fill.
// The tensor owns its buffer exclusively.
//
// Example:
//
//	t := tensor.New([]int{4, 3}, 0.5)
func New[T DType](bounds []int, fill T) *Tensor[T] {
	shape := NewShape(bounds...)
	return &Tensor[T]{
		buf:   newBuffer(shape.Count(), fill),
		shape: shape,
	}
}

// fromData wraps data in a fresh exclusive tensor. len(data) must equal
// shape.Count() and shape must be a root shape.
func fromData[T DType](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		buf:   wrapBuffer(data),
		shape: shape,
	}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// Len returns the number of addressed elements.
func (t *Tensor[T]) Len() int {
	return t.shape.Count()
}

// DType returns the runtime element type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// IsExclusive reports whether this tensor is the only live handle on its
// buffer. Only exclusive tensors can be mutated.
func (t *Tensor[T]) IsExclusive() bool {
	return t.buf != nil && t.buf.isUnique()
}

// Released reports whether Release has been called on this tensor.
func (t *Tensor[T]) Released() bool {
	return t.buf == nil
}

// Release drops this handle's reference to the buffer. Once every other
// handle is released, the remaining one becomes exclusive again.
// Releasing twice is a no-op.
func (t *Tensor[T]) Release() {
	if t.buf == nil {
		return
	}
	t.buf.release()
	t.buf = nil
}

// view returns the addressed window of the buffer.
func (t *Tensor[T]) view() []T {
	if t.buf == nil {
		panic(ErrReleased.Error())
	}
	beg, end := t.shape.AbsoluteBounds()
	return t.buf.data[beg:end]
}

// mutableView returns the addressed window if this tensor may write to it.
func (t *Tensor[T]) mutableView() ([]T, error) {
	if t.buf == nil {
		return nil, ErrReleased
	}
	if !t.buf.isUnique() {
		return nil, fmt.Errorf("%w: %d live handles on buffer of tensor %v", ErrSharedBuffer, t.buf.refs.Load(), t.shape)
	}
	return t.view(), nil
}

// Get returns the element at index.
//
// Returns ErrIndexOutOfBounds if the index rank differs from the tensor rank
// or any axis index is outside its bound.
func (t *Tensor[T]) Get(index ...int) (T, error) {
	if t.buf == nil {
		var zero T
		return zero, ErrReleased
	}
	if !t.shape.IsValidIndex(index) {
		var zero T
		return zero, fmt.Errorf("%w: index %v for bounds %v", ErrIndexOutOfBounds, index, t.shape.bounds)
	}
	return t.GetUnchecked(index...), nil
}

// GetUnchecked returns the element at index without validating it.
// The caller guarantees the index is valid; otherwise the result is
// undefined or the call panics.
func (t *Tensor[T]) GetUnchecked(index ...int) T {
	if t.buf == nil {
		panic(ErrReleased.Error())
	}
	return t.buf.data[t.shape.Flatten(index)]
}

// Set writes value at index.
//
// Returns ErrIndexOutOfBounds for an invalid index and ErrSharedBuffer if
// another live tensor references the same buffer.
func (t *Tensor[T]) Set(value T, index ...int) error {
	if t.buf == nil {
		return ErrReleased
	}
	if !t.shape.IsValidIndex(index) {
		return fmt.Errorf("%w: index %v for bounds %v", ErrIndexOutOfBounds, index, t.shape.bounds)
	}
	if _, err := t.mutableView(); err != nil {
		return err
	}
	t.buf.data[t.shape.Flatten(index)] = value
	return nil
}

// SetUnchecked writes value at index without validating the index.
// Panics if the buffer is shared: exclusivity is never bypassed.
func (t *Tensor[T]) SetUnchecked(value T, index ...int) {
	if _, err := t.mutableView(); err != nil {
		panic(err.Error())
	}
	t.buf.data[t.shape.Flatten(index)] = value
}

// ElementWise replaces every addressed element x with fn(x), in index order.
// Returns ErrSharedBuffer if the buffer is shared.
func (t *Tensor[T]) ElementWise(fn func(T) T) error {
	data, err := t.mutableView()
	if err != nil {
		return err
	}
	for i, v := range data {
		data[i] = fn(v)
	}
	return nil
}

// PairWise combines this tensor with other element by element into a new,
// exclusively owned tensor of the same shape. Neither operand is modified,
// so PairWise is allowed on shared buffers.
//
// Returns ErrIncompatibleShapes if the shapes differ in rank or bounds.
//
// Example:
//
//	sum, err := a.PairWise(b, func(x, y float64) float64 { return x + y })
func (t *Tensor[T]) PairWise(other *Tensor[T], fn func(T, T) T) (*Tensor[T], error) {
	if t.buf == nil || other.buf == nil {
		return nil, ErrReleased
	}
	if !t.shape.SameShape(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrIncompatibleShapes, t.shape.bounds, other.shape.bounds)
	}
	lhs, rhs := t.view(), other.view()
	out := make([]T, len(lhs))
	for i := range lhs {
		out[i] = fn(lhs[i], rhs[i])
	}
	return fromData(out, NewShape(t.shape.bounds...)), nil
}

// Nested returns a view over the trailing axes selected by prefix.
//
// The view shares this tensor's buffer (no copy). While both handles are
// live, neither can be mutated. An empty prefix yields a full-shape alias.
//
// Returns ErrIncorrectShape if len(prefix) >= Rank().
func (t *Tensor[T]) Nested(prefix ...int) (*Tensor[T], error) {
	if t.buf == nil {
		return nil, ErrReleased
	}
	shape, err := t.shape.Nested(prefix...)
	if err != nil {
		return nil, err
	}
	t.buf.addRef()
	return &Tensor[T]{
		buf:   t.buf,
		shape: shape,
	}, nil
}

// Clone creates a deep copy with its own exclusive buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return fromData(t.Values(), NewShape(t.shape.bounds...))
}

// Values returns a copy of the addressed elements in row-major order.
func (t *Tensor[T]) Values() []T {
	return append([]T(nil), t.view()...)
}
