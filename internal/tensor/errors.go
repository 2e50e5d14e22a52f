package tensor

import "errors"

// Errors returned by tensor operations. Callers match them with errors.Is;
// the returned values wrap them with the offending index or shapes.
var (
	// ErrIndexOutOfBounds is returned when an index has the wrong rank or an
	// axis index is not below its bound.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrIncompatibleShapes is returned when two operands differ in rank or bounds.
	ErrIncompatibleShapes = errors.New("tensor: incompatible tensor shapes")

	// ErrIncorrectShape is returned for malformed construction input and for
	// nested views that would leave no trailing axes.
	ErrIncorrectShape = errors.New("tensor: incorrect shape")

	// ErrSharedBuffer is returned when a tensor is mutated while its buffer is
	// referenced by another live tensor.
	ErrSharedBuffer = errors.New("tensor: modifying shared tensor buffer")

	// ErrReleased is returned when a tensor is used after Release.
	ErrReleased = errors.New("tensor: use of released tensor")
)
