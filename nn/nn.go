// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"iter"
	"math/rand/v2"

	"github.com/born-ml/genet/internal/nn"
	"github.com/born-ml/genet/internal/parallel"
)

// Topology

// LayerTopology describes the width of one layer.
type LayerTopology = nn.LayerTopology

// ParseTopology parses a whitespace-separated list of layer widths.
//
// Example:
//
//	topology, err := nn.ParseTopology("3 2 1")
func ParseTopology(s string) ([]LayerTopology, error) {
	return nn.ParseTopology(s)
}

// ValidateTopology checks that a topology describes a buildable network.
func ValidateTopology(topology []LayerTopology) error {
	return nn.ValidateTopology(topology)
}

// ParamCount returns the genome length of a network with the given topology.
func ParamCount(topology []LayerTopology) int {
	return nn.ParamCount(topology)
}

// Random initialization

// Uniform yields values drawn uniformly from [-1, 1].
type Uniform = nn.Uniform

// UniformFunc adapts an ordinary function to the Uniform interface.
type UniformFunc = nn.UniformFunc

// NewUniform returns a Uniform backed by a math/rand/v2 source.
//
// Example:
//
//	var seed [32]byte
//	rng := nn.NewUniform(rand.NewChaCha8(seed))
func NewUniform(src rand.Source) Uniform {
	return nn.NewUniform(src)
}

// Neurons

// Neuron is a single unit computing relu(b + x · w).
type Neuron = nn.Neuron

// NewNeuron creates a neuron from a bias and its input weights.
// Panics if weights is empty.
func NewNeuron(bias float32, weights []float32) *Neuron {
	return nn.NewNeuron(bias, weights)
}

// RandomNeuron draws the bias and then inputSize weights from rng.
func RandomNeuron(rng Uniform, inputSize int) *Neuron {
	return nn.RandomNeuron(rng, inputSize)
}

// NeuronFromWeights pulls the bias and then inputSize weights from next.
func NeuronFromWeights(inputSize int, next func() (float32, bool)) (*Neuron, error) {
	return nn.NeuronFromWeights(inputSize, next)
}

// Layers

// Layer is an ordered set of neurons sharing one input vector.
type Layer = nn.Layer

// NewLayer creates a layer from neurons, preserving their order.
func NewLayer(neurons []*Neuron) *Layer {
	return nn.NewLayer(neurons)
}

// RandomLayer creates outputSize random neurons of fan-in inputSize.
func RandomLayer(rng Uniform, inputSize, outputSize int) *Layer {
	return nn.RandomLayer(rng, inputSize, outputSize)
}

// LayerFromWeights creates outputSize neurons from a shared weight stream.
func LayerFromWeights(inputSize, outputSize int, next func() (float32, bool)) (*Layer, error) {
	return nn.LayerFromWeights(inputSize, outputSize, next)
}

// Networks

// Network is a stack of layers evaluated in order.
type Network = nn.Network

// Option configures a Network at construction time.
type Option = nn.Option

// ParallelConfig controls how wide layers spread neuron evaluation over
// goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the configuration networks use by default.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a configuration that never spawns goroutines.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}

// WithParallel sets the parallel configuration of a network's layers.
func WithParallel(cfg ParallelConfig) Option {
	return nn.WithParallel(cfg)
}

// RandomNetwork builds a network with every bias and weight drawn from rng.
//
// Example:
//
//	topology := []nn.LayerTopology{{Neurons: 3}, {Neurons: 2}, {Neurons: 1}}
//	network, err := nn.RandomNetwork(rng, topology)
func RandomNetwork(rng Uniform, topology []LayerTopology, opts ...Option) (*Network, error) {
	return nn.RandomNetwork(rng, topology, opts...)
}

// NetworkFromWeights builds a network from a lazily consumed genome.
func NetworkFromWeights(topology []LayerTopology, weights iter.Seq[float32], opts ...Option) (*Network, error) {
	return nn.NetworkFromWeights(topology, weights, opts...)
}

// NetworkFromSlice builds a network from a materialized genome.
func NetworkFromSlice(topology []LayerTopology, genome []float32, opts ...Option) (*Network, error) {
	return nn.NetworkFromSlice(topology, genome, opts...)
}

// Errors

// ShapeError reports an input vector whose length disagrees with a fan-in.
type ShapeError = nn.ShapeError

// Errors returned or panicked by this package. Compare with errors.Is.
var (
	ErrDegenerateTopology  = nn.ErrDegenerateTopology
	ErrInvalidLayerSize    = nn.ErrInvalidLayerSize
	ErrEmptyWeights        = nn.ErrEmptyWeights
	ErrEmptyLayer          = nn.ErrEmptyLayer
	ErrInsufficientWeights = nn.ErrInsufficientWeights
	ErrTooManyWeights      = nn.ErrTooManyWeights
)
