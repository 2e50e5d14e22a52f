package nn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// Activation applies a scalar function element-wise.
//
// Backward multiplies the output gradient by the derivative evaluated at the
// cached input: dx = g ⊙ f'(x).
type Activation struct {
	name  string
	fn    func(float64) float64
	prime func(float64) float64
	input *tensor.Tensor[float64]
}

// NewActivation creates an activation from a function and its derivative.
func NewActivation(name string, fn, prime func(float64) float64) *Activation {
	return &Activation{name: name, fn: fn, prime: prime}
}

// Tanh creates a hyperbolic tangent activation.
func Tanh() *Activation {
	return NewActivation("tanh", math.Tanh, func(x float64) float64 {
		t := math.Tanh(x)
		return 1.0 - t*t
	})
}

// Sigmoid creates a logistic activation: σ(x) = 1 / (1 + exp(-x)).
func Sigmoid() *Activation {
	return NewActivation("sigmoid", sigmoid, func(x float64) float64 {
		s := sigmoid(x)
		return s * (1.0 - s)
	})
}

// ReLU creates a rectified linear activation: f(x) = max(0, x).
func ReLU() *Activation {
	return NewActivation("relu", func(x float64) float64 {
		return math.Max(0, x)
	}, func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Name returns the activation name.
func (a *Activation) Name() string {
	return a.name
}

// Eval applies the activation to every element of input.
func (a *Activation) Eval(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if input.Released() {
		return nil, errors.Wrapf(tensor.ErrReleased, "%s: eval", a.name)
	}
	return input.Map(a.fn), nil
}

// Forward caches input and applies the activation.
func (a *Activation) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	a.input = input
	return a.Eval(input)
}

// Backward returns outputGrad ⊙ f'(input). Activations have no parameters,
// so learningRate is unused.
func (a *Activation) Backward(outputGrad *tensor.Tensor[float64], _ float64) (*tensor.Tensor[float64], error) {
	if a.input == nil {
		return nil, errors.Errorf("%s: backward called before forward", a.name)
	}
	grad, err := outputGrad.Mul(a.input.Map(a.prime))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: backward", a.name)
	}
	return grad, nil
}

// Parameters returns nil (activations have no trainable parameters).
func (a *Activation) Parameters() []*Parameter {
	return nil
}
