// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/tensorlab/internal/nn"
	"github.com/born-ml/tensorlab/tensor"
)

// Layer is the base interface for all network components.
type Layer = nn.Layer

// Parameter represents a trainable tensor of a layer together with its last
// gradient.
//
// Methods:
//
//	Name() string
//	    Returns the parameter name (e.g., "weight", "bias").
//
//	Tensor() *tensor.Tensor[float64]
//	    Returns the parameter tensor.
//
//	Grad() *tensor.Tensor[float64]
//	    Returns the gradient tensor (nil if not computed yet).
//
//	Step(lr float64) error
//	    Applies param -= lr * grad in place.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor[float64]) *Parameter {
	return nn.NewParameter(name, t)
}

// Initialization

// Initializer creates a weight tensor for the given fan-in, fan-out and bounds.
type Initializer = nn.Initializer

// Uniform returns an Initializer drawing from U[0, 1).
// A nil rng uses the global math/rand source.
func Uniform(rng *rand.Rand) Initializer {
	return nn.Uniform(rng)
}

// Xavier returns an Initializer using Xavier (Glorot) uniform initialization.
func Xavier(rng *rand.Rand) Initializer {
	return nn.Xavier(rng)
}

// Layers

// Dense represents a fully connected layer: y = W · x + b.
type Dense = nn.Dense

// NewDense creates a new Dense layer. A nil init uses Uniform(nil).
//
// Example:
//
//	layer := nn.NewDense(784, 128, nn.Xavier(nil))
func NewDense(inFeatures, outFeatures int, init Initializer) *Dense {
	return nn.NewDense(inFeatures, outFeatures, init)
}

// NewDenseFrom creates a Dense layer from a weight [out, in] and bias [out, 1].
func NewDenseFrom(weight, bias *tensor.Tensor[float64]) (*Dense, error) {
	return nn.NewDenseFrom(weight, bias)
}

// Activation applies a scalar function element-wise.
type Activation = nn.Activation

// NewActivation creates an activation from a function and its derivative.
func NewActivation(name string, fn, prime func(float64) float64) *Activation {
	return nn.NewActivation(name, fn, prime)
}

// Tanh creates a hyperbolic tangent activation.
func Tanh() *Activation {
	return nn.Tanh()
}

// Sigmoid creates a logistic activation.
func Sigmoid() *Activation {
	return nn.Sigmoid()
}

// ReLU creates a rectified linear activation.
func ReLU() *Activation {
	return nn.ReLU()
}

// Loss functions

// MSE computes the mean squared error between target and output.
func MSE(target, output *tensor.Tensor[float64]) (float64, error) {
	return nn.MSE(target, output)
}

// MSEPrime computes the gradient of MSE with respect to output.
func MSEPrime(target, output *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	return nn.MSEPrime(target, output)
}

// Training

// Sample is one training pair.
type Sample = nn.Sample

// DataSource holds the training samples of a network.
type DataSource = nn.DataSource

// NewDataSource creates an empty data source.
func NewDataSource() *DataSource {
	return nn.NewDataSource()
}

// TrainConfig holds configuration for FeedforwardNetwork.Train.
type TrainConfig = nn.TrainConfig

// FeedforwardNetwork chains layers and trains them with gradient descent.
type FeedforwardNetwork = nn.FeedforwardNetwork

// NewFeedforwardNetwork creates a network from layers applied in order.
//
// Example:
//
//	network := nn.NewFeedforwardNetwork(
//	    nn.NewDense(2, 3, nil),
//	    nn.Tanh(),
//	    nn.NewDense(3, 1, nil),
//	    nn.Tanh(),
//	)
func NewFeedforwardNetwork(layers ...Layer) *FeedforwardNetwork {
	return nn.NewFeedforwardNetwork(layers...)
}
