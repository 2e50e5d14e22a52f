package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = W · x + b
// where:
//   - x is the input column with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//   - y is the output column with shape [out_features, 1]
//
// Example:
//
//	layer := nn.NewDense(2, 3, nil)
//	out, err := layer.Eval(input) // input [2, 1] -> out [3, 1]
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
	input       *tensor.Tensor[float64] // Cached by Forward
}

// NewDense creates a new Dense layer.
//
// Weights and biases are drawn from init; a nil init uses U[0, 1).
func NewDense(inFeatures, outFeatures int, init Initializer) *Dense {
	if init == nil {
		init = Uniform(nil)
	}
	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", init(inFeatures, outFeatures, outFeatures, inFeatures)),
		bias:        NewParameter("bias", init(inFeatures, outFeatures, outFeatures, 1)),
	}
}

// NewDenseFrom creates a Dense layer from existing weight [out, in] and
// bias [out, 1] tensors. The layer takes ownership of both.
func NewDenseFrom(weight, bias *tensor.Tensor[float64]) (*Dense, error) {
	if weight.Rank() != 2 {
		return nil, errors.Wrapf(tensor.ErrIncorrectShape, "dense weight %v", weight.Shape())
	}
	out, in := weight.Rows(), weight.Cols()
	if !bias.Shape().SameShape(tensor.NewShape(out, 1)) {
		return nil, errors.Wrapf(tensor.ErrIncompatibleShapes, "dense bias %v for weight %v", bias.Shape(), weight.Shape())
	}
	return &Dense{
		inFeatures:  in,
		outFeatures: out,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}, nil
}

// InFeatures returns the input size.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the output size.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// Eval computes W · input + b.
func (d *Dense) Eval(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	out, err := tensor.Product2D(d.weight.Tensor(), input)
	if err != nil {
		return nil, errors.Wrapf(err, "dense %dx%d: eval", d.outFeatures, d.inFeatures)
	}
	// The product is freshly allocated, so accumulating in place is allowed.
	if err := out.AddAssign(d.bias.Tensor()); err != nil {
		return nil, errors.Wrapf(err, "dense %dx%d: add bias", d.outFeatures, d.inFeatures)
	}
	return out, nil
}

// Forward caches input and evaluates the layer.
func (d *Dense) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	d.input = input
	return d.Eval(input)
}

// Backward computes the gradients of the last Forward call:
//
//	dW = g · x^T
//	db = g
//	dx = W^T · g
//
// dx uses the weights before the update. W and b are then moved by
// -learningRate times their gradients.
func (d *Dense) Backward(outputGrad *tensor.Tensor[float64], learningRate float64) (*tensor.Tensor[float64], error) {
	if d.input == nil {
		return nil, errors.New("dense: backward called before forward")
	}

	weightT, err := tensor.Transpose2D(d.weight.Tensor())
	if err != nil {
		return nil, errors.Wrap(err, "dense: transpose weight")
	}
	inputGrad, err := tensor.Product2D(weightT, outputGrad)
	if err != nil {
		return nil, errors.Wrap(err, "dense: input gradient")
	}

	inputT, err := tensor.Transpose2D(d.input)
	if err != nil {
		return nil, errors.Wrap(err, "dense: transpose input")
	}
	weightGrad, err := tensor.Product2D(outputGrad, inputT)
	if err != nil {
		return nil, errors.Wrap(err, "dense: weight gradient")
	}

	d.weight.SetGrad(weightGrad)
	d.bias.SetGrad(outputGrad)
	for _, p := range d.Parameters() {
		if err := p.Step(learningRate); err != nil {
			return nil, errors.Wrap(err, "dense: update")
		}
	}
	return inputGrad, nil
}

// Parameters returns the weight and bias parameters.
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}
