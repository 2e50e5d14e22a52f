package tensor

import (
	"fmt"
	"strings"
)

// Shape describes the row-major layout of a tensor view.
//
// A shape holds the bounds of each axis, the derived strides and the
// absolute offset of the view inside its backing buffer. Root tensors have
// offset 0; nested views advance it by the flat position of their prefix.
//
// A rank-0 shape is empty: it addresses no elements and accepts no index.
//
// Shape is immutable. Accessors return copies.
type Shape struct {
	bounds  []int
	strides []int
	offset  int
	count   int
}

// NewShape creates a shape for the given bounds.
// Panics if any bound is negative.
//
// Example:
//
//	s := tensor.NewShape(3, 4, 3)
//	s.Strides() // [12, 3, 1]
//	s.Count()   // 36
func NewShape(bounds ...int) Shape {
	return newShapeWithOffset(bounds, 0)
}

func newShapeWithOffset(bounds []int, offset int) Shape {
	for i, dim := range bounds {
		if dim < 0 {
			panic(fmt.Sprintf("invalid dimension at index %d: %d (must be >= 0)", i, dim))
		}
	}
	b := make([]int, len(bounds))
	copy(b, bounds)
	return Shape{
		bounds:  b,
		strides: computeStrides(b),
		offset:  offset,
		count:   elementCount(b),
	}
}

// computeStrides calculates row-major strides: stride[i] is the product of
// all bounds after i.
func computeStrides(bounds []int) []int {
	strides := make([]int, len(bounds))
	if len(bounds) == 0 {
		return strides
	}

	strides[len(bounds)-1] = 1
	for i := len(bounds) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * bounds[i+1]
	}
	return strides
}

func elementCount(bounds []int) int {
	if len(bounds) == 0 {
		return 0
	}
	n := 1
	for _, dim := range bounds {
		n *= dim
	}
	return n
}

// Bounds returns a copy of the axis sizes, outer to inner.
func (s Shape) Bounds() []int {
	return append([]int(nil), s.bounds...)
}

// Strides returns a copy of the row-major strides.
func (s Shape) Strides() []int {
	return append([]int(nil), s.strides...)
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s.bounds)
}

// Count returns the number of addressed elements.
func (s Shape) Count() int {
	return s.count
}

// Offset returns the absolute offset of the view in its backing buffer.
func (s Shape) Offset() int {
	return s.offset
}

// Dim returns the bound of axis i.
func (s Shape) Dim(i int) int {
	return s.bounds[i]
}

// AbsoluteBounds returns the half-open buffer range [beg, end) addressed by
// the shape.
func (s Shape) AbsoluteBounds() (beg, end int) {
	return s.offset, s.offset + s.count
}

// Validate checks that the shape has at least one axis and that every bound
// is positive.
func (s Shape) Validate() error {
	if len(s.bounds) == 0 {
		return fmt.Errorf("%w: rank 0", ErrIncorrectShape)
	}
	for i, dim := range s.bounds {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrIncorrectShape, i, dim)
		}
	}
	return nil
}

// IsValidIndex reports whether index has one entry per axis and every entry
// is inside its bound. No index is valid for an empty shape.
func (s Shape) IsValidIndex(index []int) bool {
	if s.count == 0 || len(index) != len(s.bounds) {
		return false
	}
	for i, idx := range index {
		if idx < 0 || idx >= s.bounds[i] {
			return false
		}
	}
	return true
}

// Flatten returns the absolute buffer position of index.
// The result is meaningless for an invalid index; check IsValidIndex first.
func (s Shape) Flatten(index []int) int {
	return s.offset + s.relative(index)
}

// relative returns the position of a (possibly partial) index relative to
// the view's own offset.
func (s Shape) relative(index []int) int {
	pos := 0
	for i, idx := range index {
		pos += s.strides[i] * idx
	}
	return pos
}

// SameShape reports whether both shapes have the same rank and bounds.
// Offsets are not compared.
func (s Shape) SameShape(other Shape) bool {
	if len(s.bounds) != len(other.bounds) {
		return false
	}
	for i := range s.bounds {
		if s.bounds[i] != other.bounds[i] {
			return false
		}
	}
	return true
}

// Nested returns the shape of the trailing axes selected by prefix.
//
// The nested shape keeps the remaining bounds and advances the offset by the
// prefix's flat position, so it addresses a contiguous window of the same
// buffer.
//
// Example:
//
//	s := tensor.NewShape(3, 4, 3)
//	n, _ := s.Nested(1) // bounds [4, 3], offset 12
func (s Shape) Nested(prefix ...int) (Shape, error) {
	if len(prefix) >= len(s.bounds) {
		return Shape{}, fmt.Errorf("%w: prefix of length %d for rank %d", ErrIncorrectShape, len(prefix), len(s.bounds))
	}
	for i, idx := range prefix {
		if idx < 0 || idx >= s.bounds[i] {
			return Shape{}, fmt.Errorf("%w: prefix %v for bounds %v", ErrIndexOutOfBounds, prefix, s.bounds)
		}
	}
	return newShapeWithOffset(s.bounds[len(prefix):], s.offset+s.relative(prefix)), nil
}

// String returns the bounds as "[d0 d1 ...]" followed by the offset for
// nested shapes.
func (s Shape) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", s.bounds)
	if s.offset != 0 {
		fmt.Fprintf(&b, "@%d", s.offset)
	}
	return b.String()
}
