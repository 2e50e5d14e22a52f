// Package tensor provides the strided N-dimensional tensor, its shape arithmetic
// and the element-wise/pair-wise operation protocol.
package tensor

import "reflect"

// DType is a constraint for supported tensor element types.
// Only numeric scalars are supported.
type DType interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64 | ~uint8
}

// Float is the subset of DType with a floating-point representation.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64, Int:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int:
		return "int"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
// Named types resolve to their underlying kind.
func inferDataType[T DType]() DataType {
	var dummy T
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	default:
		return Int
	}
}
