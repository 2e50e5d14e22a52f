package tensor

import (
	"errors"
	"testing"
)

func assertEqualInts(t *testing.T, expected, actual []int, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("%s: expected %v, got %v", msg, expected, actual)
			return
		}
	}
}

func TestShapeCount(t *testing.T) {
	tests := []struct {
		bounds   []int
		expected int
	}{
		{[]int{}, 0}, // Empty
		{[]int{5}, 5},
		{[]int{3, 4}, 12},
		{[]int{2, 3, 4}, 24},
		{[]int{1, 1, 1}, 1},
		{[]int{3, 0}, 0},
	}

	for _, tt := range tests {
		if got := NewShape(tt.bounds...).Count(); got != tt.expected {
			t.Errorf("NewShape(%v).Count() = %d, want %d", tt.bounds, got, tt.expected)
		}
	}
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		bounds   []int
		expected []int
	}{
		{[]int{}, []int{}},
		{[]int{4}, []int{1}},
		{[]int{3, 4}, []int{4, 1}},
		{[]int{2, 3, 4}, []int{12, 4, 1}},
		{[]int{3, 4, 3}, []int{12, 3, 1}},
	}

	for _, tt := range tests {
		assertEqualInts(t, tt.expected, NewShape(tt.bounds...).Strides(), "strides")
	}
}

func TestShapeNegativeBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewShape(-1) should panic")
		}
	}()
	NewShape(3, -1)
}

func TestShapeValidate(t *testing.T) {
	valid := [][]int{{1}, {3, 4}, {2, 3, 4}}
	for _, b := range valid {
		if err := NewShape(b...).Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", b, err)
		}
	}

	invalid := [][]int{{}, {0}, {3, 0}}
	for _, b := range invalid {
		err := NewShape(b...).Validate()
		if !errors.Is(err, ErrIncorrectShape) {
			t.Errorf("Shape%v.Validate() = %v, want ErrIncorrectShape", b, err)
		}
	}
}

func TestShapeIsValidIndex(t *testing.T) {
	s := NewShape(4, 3)
	tests := []struct {
		index []int
		valid bool
	}{
		{[]int{0, 0}, true},
		{[]int{3, 2}, true},
		{[]int{4, 0}, false},
		{[]int{0, 3}, false},
		{[]int{-1, 0}, false},
		{[]int{0}, false},
		{[]int{0, 0, 0}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := s.IsValidIndex(tt.index); got != tt.valid {
			t.Errorf("IsValidIndex(%v) = %v, want %v", tt.index, got, tt.valid)
		}
	}
}

func TestShapeEmptyAcceptsNoIndex(t *testing.T) {
	s := NewShape()
	if s.Rank() != 0 || s.Count() != 0 {
		t.Fatalf("empty shape: rank %d count %d", s.Rank(), s.Count())
	}
	if s.IsValidIndex(nil) || s.IsValidIndex([]int{}) {
		t.Error("empty shape should not accept the empty index")
	}
}

func TestShapeFlatten(t *testing.T) {
	s := NewShape(2, 3, 4)
	tests := []struct {
		index    []int
		expected int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 3}, 3},
		{[]int{0, 1, 0}, 4},
		{[]int{1, 0, 0}, 12},
		{[]int{1, 2, 3}, 23},
	}

	for _, tt := range tests {
		if got := s.Flatten(tt.index); got != tt.expected {
			t.Errorf("Flatten(%v) = %d, want %d", tt.index, got, tt.expected)
		}
	}
}

func TestShapeSameShape(t *testing.T) {
	tests := []struct {
		a, b []int
		same bool
	}{
		{[]int{3, 4}, []int{3, 4}, true},
		{[]int{3, 4}, []int{4, 3}, false},
		{[]int{3}, []int{3, 1}, false},
		{[]int{4, 3}, []int{5, 3}, false},
		{[]int{}, []int{}, true},
	}

	for _, tt := range tests {
		if got := NewShape(tt.a...).SameShape(NewShape(tt.b...)); got != tt.same {
			t.Errorf("Shape%v.SameShape(%v) = %v, want %v", tt.a, tt.b, got, tt.same)
		}
	}
}

func TestShapeNested(t *testing.T) {
	s := NewShape(3, 4, 3)

	n, err := s.Nested(1)
	if err != nil {
		t.Fatalf("Nested(1) failed: %v", err)
	}
	assertEqualInts(t, []int{4, 3}, n.Bounds(), "Nested(1) bounds")
	assertEqualInts(t, []int{3, 1}, n.Strides(), "Nested(1) strides")
	if n.Offset() != 12 {
		t.Errorf("Nested(1).Offset() = %d, want 12", n.Offset())
	}
	if n.Flatten([]int{2, 1}) != 12+7 {
		t.Errorf("Nested(1).Flatten([2 1]) = %d, want 19", n.Flatten([]int{2, 1}))
	}

	// Nesting twice accumulates offsets.
	nn, err := n.Nested(2)
	if err != nil {
		t.Fatalf("Nested(2) failed: %v", err)
	}
	assertEqualInts(t, []int{3}, nn.Bounds(), "Nested(1).Nested(2) bounds")
	beg, end := nn.AbsoluteBounds()
	if beg != 18 || end != 21 {
		t.Errorf("AbsoluteBounds() = (%d, %d), want (18, 21)", beg, end)
	}

	// Empty prefix aliases the whole shape.
	full, err := s.Nested()
	if err != nil {
		t.Fatalf("Nested() failed: %v", err)
	}
	if !full.SameShape(s) || full.Offset() != 0 {
		t.Errorf("Nested() = %v, want %v", full, s)
	}
}

func TestShapeNestedErrors(t *testing.T) {
	s := NewShape(3, 4, 3)

	if _, err := s.Nested(1, 2, 0); !errors.Is(err, ErrIncorrectShape) {
		t.Errorf("Nested with full-rank prefix = %v, want ErrIncorrectShape", err)
	}
	if _, err := s.Nested(0, 0, 0, 0); !errors.Is(err, ErrIncorrectShape) {
		t.Errorf("Nested with over-long prefix = %v, want ErrIncorrectShape", err)
	}
	if _, err := s.Nested(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Nested(3) = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := NewShape().Nested(); !errors.Is(err, ErrIncorrectShape) {
		t.Errorf("empty shape Nested() = %v, want ErrIncorrectShape", err)
	}
}

func TestShapeAccessorsReturnCopies(t *testing.T) {
	s := NewShape(2, 3)
	b := s.Bounds()
	b[0] = 99
	if s.Dim(0) != 2 {
		t.Errorf("mutating Bounds() result changed the shape: %v", s)
	}
}

func TestShapeString(t *testing.T) {
	if got := NewShape(3, 4).String(); got != "[3 4]" {
		t.Errorf("String() = %q, want %q", got, "[3 4]")
	}
	n, _ := NewShape(3, 4).Nested(2)
	if got := n.String(); got != "[4]@8" {
		t.Errorf("nested String() = %q, want %q", got, "[4]@8")
	}
}
