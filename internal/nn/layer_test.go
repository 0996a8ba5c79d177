package nn

import (
	"testing"

	"github.com/born-ml/genet/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayer(t *testing.T) {
	l := NewLayer([]*Neuron{
		NewNeuron(0.1, []float32{0.2, 0.3}),
		NewNeuron(0.4, []float32{0.5, 0.6}),
		NewNeuron(0.7, []float32{0.8, 0.9}),
	})

	assert.Equal(t, 2, l.InputSize())
	assert.Equal(t, 3, l.OutputSize())
	assert.Equal(t, float32(0.4), l.Neuron(1).Bias())
}

func TestNewLayer_Invalid(t *testing.T) {
	assert.PanicsWithValue(t, ErrEmptyLayer, func() {
		NewLayer(nil)
	})

	assert.PanicsWithError(t, "NewLayer: expected 2 inputs, got 3", func() {
		NewLayer([]*Neuron{
			NewNeuron(0.1, []float32{0.2, 0.3}),
			NewNeuron(0.4, []float32{0.5, 0.6, 0.7}),
		})
	})
}

func TestLayer_NeuronOutOfBounds(t *testing.T) {
	l := NewLayer([]*Neuron{NewNeuron(0, []float32{1})})

	assert.Panics(t, func() { l.Neuron(1) })
	assert.Panics(t, func() { l.Neuron(-1) })
}

func TestRandomLayer(t *testing.T) {
	rng := &countingUniform{}

	l := RandomLayer(rng, 2, 3)

	require.Equal(t, 3, l.OutputSize())
	require.Equal(t, 2, l.InputSize())

	// Neuron 0 takes draws 1-3, neuron 1 draws 4-6, neuron 2 draws 7-9.
	assert.Equal(t, float32(0.01), l.Neuron(0).Bias())
	assert.Equal(t, []float32{0.02, 0.03}, l.Neuron(0).Weights())
	assert.Equal(t, float32(0.04), l.Neuron(1).Bias())
	assert.Equal(t, []float32{0.05, 0.06}, l.Neuron(1).Weights())
	assert.Equal(t, float32(0.07), l.Neuron(2).Bias())
	assert.Equal(t, []float32{0.08, 0.09}, l.Neuron(2).Weights())
	assert.Equal(t, 9, rng.n)
}

func TestLayerFromWeights(t *testing.T) {
	l, err := LayerFromWeights(2, 2, stream(0.1, 0.2, 0.3, 0.4, 0.5, 0.6))
	require.NoError(t, err)

	assert.Equal(t, float32(0.1), l.Neuron(0).Bias())
	assert.Equal(t, []float32{0.2, 0.3}, l.Neuron(0).Weights())
	assert.Equal(t, float32(0.4), l.Neuron(1).Bias())
	assert.Equal(t, []float32{0.5, 0.6}, l.Neuron(1).Weights())
}

func TestLayerFromWeights_Insufficient(t *testing.T) {
	l, err := LayerFromWeights(2, 2, stream(0.1, 0.2, 0.3, 0.4))

	require.ErrorIs(t, err, ErrInsufficientWeights)
	assert.EqualError(t, err, "neuron 1: weight 0 of 2: not enough weights")
	assert.Nil(t, l)
}

func TestLayer_Propagate(t *testing.T) {
	n0 := NewNeuron(0.0, []float32{-0.5, -0.4, -0.3})
	n1 := NewNeuron(0.2, []float32{0.2, 0.1, 0.0})
	l := NewLayer([]*Neuron{n0, n1})

	input := []float32{0.5, 0.6, 0.7}
	output := l.Propagate(input)

	require.Len(t, output, 2)
	assert.Equal(t, n0.Propagate(input), output[0])
	assert.Equal(t, n1.Propagate(input), output[1])
	assert.Equal(t, float32(0), output[0])
	assert.InDelta(t, 0.2+0.1+0.06, output[1], 1e-6)
}

func TestLayer_PropagateShapeMismatch(t *testing.T) {
	l := NewLayer([]*Neuron{NewNeuron(0, []float32{1, 1, 1})})

	assert.PanicsWithError(t, "Layer.Propagate: expected 3 inputs, got 2", func() {
		l.Propagate([]float32{1, 1})
	})
}

func TestLayer_PropagateParallelMatchesSequential(t *testing.T) {
	rng := &countingUniform{}
	l := RandomLayer(rng, 4, 200)

	input := []float32{0.5, -0.25, 0.125, -1}

	seq := l.withParallel(parallel.Sequential()).Propagate(input)
	par := l.withParallel(parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}).Propagate(input)

	assert.Equal(t, seq, par)
}
