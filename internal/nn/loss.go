package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// MSE computes the mean squared error between target and output.
//
// Loss = mean((target - output)²)
//
// Returns tensor.ErrIncompatibleShapes if the shapes differ.
func MSE(target, output *tensor.Tensor[float64]) (float64, error) {
	if !target.Shape().SameShape(output.Shape()) {
		return 0, errors.Wrapf(tensor.ErrIncompatibleShapes, "mse: target %v, output %v", target.Shape(), output.Shape())
	}
	n := target.Len()
	if n == 0 {
		return 0, nil
	}
	d := floats.Distance(target.Values(), output.Values(), 2)
	return d * d / float64(n), nil
}

// MSEPrime computes the gradient of MSE with respect to output:
//
//	dLoss/dOutput = 2 * (output - target) / n
func MSEPrime(target, output *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	grad, err := output.Sub(target)
	if err != nil {
		return nil, errors.Wrap(err, "mse prime")
	}
	// Sub allocates a fresh tensor, so it is exclusive.
	if err := grad.ScaleAssign(2.0 / float64(grad.Len())); err != nil {
		return nil, errors.Wrap(err, "mse prime")
	}
	return grad, nil
}
