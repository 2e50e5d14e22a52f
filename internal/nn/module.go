// Package nn implements the feedforward network built on the tensor package.
//
// This package provides:
//   - Layer interface: Base interface for all network components
//   - Parameter: Trainable tensors with their last gradient
//   - Dense: Fully connected layer
//   - Activations: Tanh, Sigmoid, ReLU
//   - Loss functions: MSE
//   - FeedforwardNetwork: Container for stacking layers and training them
//
// All values flowing between layers are rank-2 float64 column vectors
// with shape [features, 1].
package nn

import (
	"github.com/born-ml/tensorlab/internal/tensor"
)

// Layer is the base interface for all network components.
//
// Every layer must implement:
//   - Eval: Compute output from input without touching layer state
//   - Forward: Like Eval, but remember the input for Backward
//   - Backward: Propagate the output gradient and update parameters
//   - Parameters: Return all trainable parameters
type Layer interface {
	// Eval computes the output of the layer for input.
	Eval(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)

	// Forward computes the output and caches input for the next Backward.
	Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)

	// Backward receives dLoss/dOutput for the last Forward call, updates the
	// layer's parameters with learningRate and returns dLoss/dInput.
	Backward(outputGrad *tensor.Tensor[float64], learningRate float64) (*tensor.Tensor[float64], error)

	// Parameters returns all trainable parameters of this layer.
	// Returns nil for layers without parameters (e.g., activations).
	Parameters() []*Parameter
}
