package tensor

import "sync/atomic"

// buffer is the reference-counted flat storage shared by a tensor and the
// nested views carved from it. Mutation is only allowed while refs == 1.
type buffer[T DType] struct {
	data []T
	refs atomic.Int32
}

// newBuffer creates a buffer of n copies of fill with a single reference.
func newBuffer[T DType](n int, fill T) *buffer[T] {
	buf := &buffer[T]{data: make([]T, n)}
	if fill != 0 {
		for i := range buf.data {
			buf.data[i] = fill
		}
	}
	buf.refs.Store(1)
	return buf
}

// wrapBuffer takes ownership of data with a single reference.
func wrapBuffer[T DType](data []T) *buffer[T] {
	buf := &buffer[T]{data: data}
	buf.refs.Store(1)
	return buf
}

// addRef increments the reference count for a new view.
func (b *buffer[T]) addRef() {
	b.refs.Add(1)
}

// release decrements the reference count and drops the data at zero.
func (b *buffer[T]) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique reports whether exactly one tensor references the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refs.Load() == 1
}
