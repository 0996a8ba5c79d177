package nn

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
)

// Neuron is a single unit with a bias and one weight per input.
//
// Output is computed as: y = relu(b + x · w)
// where relu(v) = max(0, v).
//
// A Neuron is immutable once built and safe for concurrent use.
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron creates a neuron from a bias and its input weights.
//
// The weights slice is copied. Panics if weights is empty.
func NewNeuron(bias float32, weights []float32) *Neuron {
	if len(weights) == 0 {
		panic(ErrEmptyWeights)
	}
	return &Neuron{
		bias:    bias,
		weights: append([]float32(nil), weights...),
	}
}

// RandomNeuron draws inputSize+1 values from rng: the bias first, then
// each weight in input order.
func RandomNeuron(rng Uniform, inputSize int) *Neuron {
	bias := rng.Uniform()
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = rng.Uniform()
	}
	return NewNeuron(bias, weights)
}

// NeuronFromWeights pulls exactly inputSize+1 values from next, in the same
// order as RandomNeuron (bias first).
//
// next reports false once the stream is exhausted, which yields an error
// wrapping ErrInsufficientWeights. Values left in the stream afterwards are
// not inspected.
func NeuronFromWeights(inputSize int, next func() (float32, bool)) (*Neuron, error) {
	if inputSize <= 0 {
		return nil, ErrEmptyWeights
	}

	bias, ok := next()
	if !ok {
		return nil, fmt.Errorf("bias: %w", ErrInsufficientWeights)
	}

	weights := make([]float32, inputSize)
	for i := range weights {
		w, ok := next()
		if !ok {
			return nil, fmt.Errorf("weight %d of %d: %w", i, inputSize, ErrInsufficientWeights)
		}
		weights[i] = w
	}

	return &Neuron{bias: bias, weights: weights}, nil
}

// Propagate computes the neuron output for one input vector.
//
// Panics with a *ShapeError if len(input) differs from the neuron's fan-in.
// Any sum that is not positive, NaN included, produces exactly 0.
func (n *Neuron) Propagate(input []float32) float32 {
	if len(input) != len(n.weights) {
		panic(&ShapeError{Op: "Neuron.Propagate", Expected: len(n.weights), Got: len(input)})
	}

	sum := n.bias + blas32.Dot(
		blas32.Vector{N: len(input), Data: input, Inc: 1},
		blas32.Vector{N: len(n.weights), Data: n.weights, Inc: 1},
	)

	if sum > 0 {
		return sum
	}
	return 0
}

// Bias returns the neuron bias.
func (n *Neuron) Bias() float32 {
	return n.bias
}

// Weights returns a copy of the input weights.
func (n *Neuron) Weights() []float32 {
	return append([]float32(nil), n.weights...)
}

// InputSize returns the neuron's fan-in.
func (n *Neuron) InputSize() int {
	return len(n.weights)
}

// params yields the neuron's genome slice: bias, then weights.
func (n *Neuron) params(yield func(float32) bool) bool {
	if !yield(n.bias) {
		return false
	}
	for _, w := range n.weights {
		if !yield(w) {
			return false
		}
	}
	return true
}
