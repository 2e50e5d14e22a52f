// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feedforward neural network on top of tensor.
//
// # Overview
//
// This package contains:
//   - Layers: Dense
//   - Activations: Tanh, Sigmoid, ReLU
//   - Loss functions: MSE
//   - Utilities: Layer interface, Parameter, DataSource, FeedforwardNetwork
//   - Initialization: Uniform, Xavier
//
// Values flowing between layers are float64 column vectors of shape [n, 1].
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorlab/nn"
//	    "github.com/born-ml/tensorlab/tensor"
//	)
//
//	func main() {
//	    network := nn.NewFeedforwardNetwork(
//	        nn.NewDense(2, 3, nil),
//	        nn.Tanh(),
//	        nn.NewDense(3, 1, nil),
//	        nn.Tanh(),
//	    )
//
//	    data := nn.NewDataSource()
//	    in, _ := tensor.Column([]float64{0, 1})
//	    out, _ := tensor.Column([]float64{1})
//	    data.Push(in, out)
//
//	    loss, err := network.Train(data, nn.TrainConfig{Epochs: 1000, LearningRate: 0.05})
//	}
//
// # Training
//
// Train runs per-sample gradient descent on the mean squared error. Every
// layer updates its own parameters during Backward, so parameter tensors must
// not be aliased by nested views while training; a shared parameter fails the
// step with tensor.ErrSharedBuffer.
//
// Progress is logged through klog at verbosity 1 (run with -v=1).
package nn
