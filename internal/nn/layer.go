package nn

import (
	"fmt"

	"github.com/born-ml/genet/internal/parallel"
)

// Layer is an ordered set of neurons sharing one input vector.
//
// Output i of the layer is the output of neuron i, so neuron order defines
// the input index assignment of the next layer.
//
// Example:
//
//	layer := nn.NewLayer([]*nn.Neuron{
//	    nn.NewNeuron(0.0, []float32{-0.5, -0.4, -0.3}),
//	    nn.NewNeuron(0.0, []float32{-0.2, -0.1, 0.0}),
//	})
//	output := layer.Propagate([]float32{0.5, 0.6, 0.7})  // len 2
type Layer struct {
	neurons []*Neuron
	par     parallel.Config
}

// NewLayer creates a layer from neurons, preserving their order.
//
// Panics if neurons is empty or the neurons disagree on fan-in.
func NewLayer(neurons []*Neuron) *Layer {
	if len(neurons) == 0 {
		panic(ErrEmptyLayer)
	}
	inputSize := neurons[0].InputSize()
	for _, n := range neurons[1:] {
		if n.InputSize() != inputSize {
			panic(&ShapeError{Op: "NewLayer", Expected: inputSize, Got: n.InputSize()})
		}
	}
	return newLayer(append([]*Neuron(nil), neurons...))
}

func newLayer(neurons []*Neuron) *Layer {
	return &Layer{
		neurons: neurons,
		par:     parallel.DefaultConfig(),
	}
}

// RandomLayer creates outputSize random neurons of fan-in inputSize.
//
// Neurons draw from rng in index order: neuron 0 consumes the first
// inputSize+1 values, neuron 1 the next inputSize+1, and so on.
func RandomLayer(rng Uniform, inputSize, outputSize int) *Layer {
	neurons := make([]*Neuron, outputSize)
	for i := range neurons {
		neurons[i] = RandomNeuron(rng, inputSize)
	}
	return NewLayer(neurons)
}

// LayerFromWeights creates outputSize neurons of fan-in inputSize, each
// pulling its bias and weights from the shared stream in neuron order.
func LayerFromWeights(inputSize, outputSize int, next func() (float32, bool)) (*Layer, error) {
	if outputSize <= 0 {
		return nil, ErrEmptyLayer
	}
	neurons := make([]*Neuron, outputSize)
	for i := range neurons {
		n, err := NeuronFromWeights(inputSize, next)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		neurons[i] = n
	}
	return newLayer(neurons), nil
}

// Propagate feeds input to every neuron and returns their outputs in
// neuron order.
//
// Panics with a *ShapeError if len(input) differs from the layer's fan-in.
func (l *Layer) Propagate(input []float32) []float32 {
	if len(input) != l.InputSize() {
		panic(&ShapeError{Op: "Layer.Propagate", Expected: l.InputSize(), Got: len(input)})
	}

	output := make([]float32, len(l.neurons))
	parallel.For(len(l.neurons), func(i int) {
		output[i] = l.neurons[i].Propagate(input)
	}, l.par)

	return output
}

// InputSize returns the layer's fan-in.
func (l *Layer) InputSize() int {
	return l.neurons[0].InputSize()
}

// OutputSize returns the layer's fan-out (its neuron count).
func (l *Layer) OutputSize() int {
	return len(l.neurons)
}

// Neuron returns the neuron at the given index.
//
// Panics if index is out of bounds.
func (l *Layer) Neuron(index int) *Neuron {
	if index < 0 || index >= len(l.neurons) {
		panic("Layer.Neuron: index out of bounds")
	}
	return l.neurons[index]
}

func (l *Layer) withParallel(cfg parallel.Config) *Layer {
	return &Layer{neurons: l.neurons, par: cfg}
}
