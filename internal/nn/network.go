package nn

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/tensorlab/internal/tensor"
)

// TrainConfig holds configuration for FeedforwardNetwork.Train.
type TrainConfig struct {
	Epochs       int     // Passes over the data (default: 1000)
	LearningRate float64 // Step size (default: 0.01)
	LogEvery     int     // Log the epoch error every N epochs at V(1) (default: Epochs/10)
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.Epochs <= 0 {
		c.Epochs = 1000
	}
	if c.LearningRate == 0 {
		c.LearningRate = 0.01
	}
	if c.LogEvery <= 0 {
		c.LogEvery = max(c.Epochs/10, 1)
	}
	return c
}

// FeedforwardNetwork chains layers and trains them with per-sample gradient
// descent on the mean squared error.
//
// Example:
//
//	network := nn.NewFeedforwardNetwork(
//	    nn.NewDense(2, 3, nil),
//	    nn.Tanh(),
//	    nn.NewDense(3, 1, nil),
//	    nn.Tanh(),
//	)
//	loss, err := network.Train(data, nn.TrainConfig{Epochs: 30000, LearningRate: 0.05})
type FeedforwardNetwork struct {
	layers []Layer
}

// NewFeedforwardNetwork creates a network from layers applied in order.
func NewFeedforwardNetwork(layers ...Layer) *FeedforwardNetwork {
	return &FeedforwardNetwork{layers: layers}
}

// Layers returns the network layers.
func (n *FeedforwardNetwork) Layers() []Layer {
	return n.layers
}

// Parameters returns the trainable parameters of every layer.
func (n *FeedforwardNetwork) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range n.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Eval runs input through every layer without caching.
func (n *FeedforwardNetwork) Eval(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	output := input
	for i, l := range n.layers {
		var err error
		if output, err = l.Eval(output); err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return output, nil
}

// Train fits the network to data and returns the mean error of the last
// epoch.
func (n *FeedforwardNetwork) Train(data *DataSource, config TrainConfig) (float64, error) {
	config = config.withDefaults()
	if data.Len() == 0 {
		return 0, errors.New("train: empty data source")
	}

	var epochError float64
	for epoch := 0; epoch < config.Epochs; epoch++ {
		var sum float64
		for i, s := range data.Samples() {
			loss, err := n.step(s, config.LearningRate)
			if err != nil {
				return 0, errors.Wrapf(err, "epoch %d, sample %d", epoch, i)
			}
			sum += loss
		}
		epochError = sum / float64(data.Len())

		if (epoch+1)%config.LogEvery == 0 {
			klog.V(1).Infof("epoch %d of %d, error = %g", epoch+1, config.Epochs, epochError)
		}
	}
	return epochError, nil
}

// step runs forward and backward for one sample and returns its loss.
func (n *FeedforwardNetwork) step(s Sample, lr float64) (float64, error) {
	output := s.Input
	for i, l := range n.layers {
		var err error
		if output, err = l.Forward(output); err != nil {
			return 0, errors.Wrapf(err, "forward layer %d", i)
		}
	}

	loss, err := MSE(s.Output, output)
	if err != nil {
		return 0, err
	}
	grad, err := MSEPrime(s.Output, output)
	if err != nil {
		return 0, err
	}
	for i := len(n.layers) - 1; i >= 0; i-- {
		if grad, err = n.layers[i].Backward(grad, lr); err != nil {
			return 0, errors.Wrapf(err, "backward layer %d", i)
		}
	}
	return loss, nil
}
