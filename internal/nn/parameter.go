package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// Parameter represents a trainable tensor of a layer.
//
// Example:
//
//	weight := nn.NewParameter("weight", tensor.Random(3, 2))
//	weight.SetGrad(grad)
//	err := weight.Step(0.05) // weight -= 0.05 * grad
type Parameter struct {
	name   string                  // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[float64] // The parameter tensor
	grad   *tensor.Tensor[float64] // Gradient from the last backward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor[float64]) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor[float64] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Tensor[float64] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor[float64]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// Step applies one gradient descent update in place:
//
//	param = param - lr * grad
//
// The parameter tensor must own its buffer; a parameter that is still
// aliased by a nested view fails with tensor.ErrSharedBuffer.
func (p *Parameter) Step(lr float64) error {
	if p.grad == nil {
		return errors.Errorf("parameter %q: no gradient", p.name)
	}
	if err := p.tensor.SubAssign(p.grad.MulScalar(lr)); err != nil {
		return errors.Wrapf(err, "parameter %q: step", p.name)
	}
	return nil
}
