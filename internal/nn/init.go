package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// Initializer creates a weight tensor for a layer with the given fan-in and
// fan-out. bounds is the tensor shape to fill.
type Initializer func(fanIn, fanOut int, bounds ...int) *tensor.Tensor[float64]

// Uniform returns an Initializer drawing from U[0, 1).
// A nil rng uses the global math/rand source.
func Uniform(rng *rand.Rand) Initializer {
	return func(_, _ int, bounds ...int) *tensor.Tensor[float64] {
		if rng == nil {
			return tensor.Random(bounds...)
		}
		return tensor.RandomSource(rng, bounds...)
	}
}

// Xavier returns an Initializer using Xavier (Glorot) initialization.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
func Xavier(rng *rand.Rand) Initializer {
	uniform := Uniform(rng)
	return func(fanIn, fanOut int, bounds ...int) *tensor.Tensor[float64] {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		t := uniform(fanIn, fanOut, bounds...)
		// Freshly created, so the buffer is exclusive.
		_ = t.ElementWise(func(v float64) float64 { return (v*2.0 - 1.0) * bound })
		return t
	}
}
