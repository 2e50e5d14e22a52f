package nn

import "github.com/born-ml/tensorlab/internal/tensor"

// Sample is one training pair.
type Sample struct {
	Input  *tensor.Tensor[float64]
	Output *tensor.Tensor[float64]
}

// DataSource holds the training samples of a network.
type DataSource struct {
	samples []Sample
}

// NewDataSource creates an empty data source.
func NewDataSource() *DataSource {
	return &DataSource{}
}

// Push appends a training pair.
func (d *DataSource) Push(input, output *tensor.Tensor[float64]) {
	d.samples = append(d.samples, Sample{Input: input, Output: output})
}

// Samples returns the training pairs in insertion order.
func (d *DataSource) Samples() []Sample {
	return d.samples
}

// Len returns the number of samples.
func (d *DataSource) Len() int {
	return len(d.samples)
}
