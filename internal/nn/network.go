package nn

import (
	"fmt"
	"iter"
	"slices"

	"github.com/born-ml/genet/internal/parallel"
)

// Network is a stack of layers evaluated in order.
//
// Layer i's fan-out equals layer i+1's fan-in. A Network has no mutation
// API: a retrained network is a new Network built from a new genome, so a
// single instance can be propagated from many goroutines at once.
//
// Example:
//
//	topology := []nn.LayerTopology{{Neurons: 3}, {Neurons: 2}, {Neurons: 1}}
//	network, err := nn.RandomNetwork(rng, topology)
//	if err != nil {
//	    return err
//	}
//	output := network.Propagate([]float32{0.5, 0.6, 0.7})  // len 1
//
//	// Hand the genome to an optimizer and rebuild from its offspring.
//	genome := network.Genome()
//	child, err := nn.NetworkFromSlice(topology, mutate(genome))
type Network struct {
	layers []*Layer
}

// Option configures a Network at construction time.
type Option func(*networkOptions)

type networkOptions struct {
	par parallel.Config
}

// WithParallel sets how wide layers fan neuron evaluation out over
// goroutines. The default is parallel.DefaultConfig().
func WithParallel(cfg parallel.Config) Option {
	return func(o *networkOptions) {
		o.par = cfg
	}
}

func newNetwork(layers []*Layer, opts ...Option) *Network {
	options := &networkOptions{
		par: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	configured := make([]*Layer, len(layers))
	for i, l := range layers {
		configured[i] = l.withParallel(options.par)
	}
	return &Network{layers: configured}
}

// RandomNetwork builds a network with every bias and weight drawn from rng.
//
// One layer is created per adjacent pair of topology entries, all sharing
// rng sequentially in layer order. Returns an error if the topology has
// fewer than two entries or a non-positive width.
func RandomNetwork(rng Uniform, topology []LayerTopology, opts ...Option) (*Network, error) {
	if err := ValidateTopology(topology); err != nil {
		return nil, err
	}

	layers := make([]*Layer, len(topology)-1)
	for i := range layers {
		layers[i] = RandomLayer(rng, topology[i].Neurons, topology[i+1].Neurons)
	}
	return newNetwork(layers, opts...), nil
}

// NetworkFromWeights builds a network from a genome.
//
// The sequence is consumed lazily: for each layer, for each neuron, the
// bias then its weights. Running out of values yields an error wrapping
// ErrInsufficientWeights; values left over once every layer is built yield
// an error wrapping ErrTooManyWeights. No network is returned on error.
func NetworkFromWeights(topology []LayerTopology, weights iter.Seq[float32], opts ...Option) (*Network, error) {
	if err := ValidateTopology(topology); err != nil {
		return nil, err
	}

	next, stop := iter.Pull(weights)
	defer stop()

	layers := make([]*Layer, len(topology)-1)
	for i := range layers {
		l, err := LayerFromWeights(topology[i].Neurons, topology[i+1].Neurons, next)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = l
	}

	if _, ok := next(); ok {
		return nil, fmt.Errorf("%w: expected %d", ErrTooManyWeights, ParamCount(topology))
	}

	return newNetwork(layers, opts...), nil
}

// NetworkFromSlice builds a network from a materialized genome.
//
// The length is checked against ParamCount before anything is allocated;
// otherwise it behaves like NetworkFromWeights.
func NetworkFromSlice(topology []LayerTopology, genome []float32, opts ...Option) (*Network, error) {
	if err := ValidateTopology(topology); err != nil {
		return nil, err
	}

	want := ParamCount(topology)
	switch {
	case len(genome) < want:
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInsufficientWeights, want, len(genome))
	case len(genome) > want:
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrTooManyWeights, want, len(genome))
	}

	return NetworkFromWeights(topology, slices.Values(genome), opts...)
}

// Propagate folds input through every layer and returns the last layer's
// output.
//
// Panics with a *ShapeError if len(input) differs from InputSize().
func (n *Network) Propagate(input []float32) []float32 {
	output := input
	for _, l := range n.layers {
		output = l.Propagate(output)
	}
	return output
}

// Weights returns the genome as a lazy sequence: for each layer, for each
// neuron, the bias followed by its weights. NetworkFromWeights is its
// inverse.
func (n *Network) Weights() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, l := range n.layers {
			for _, neuron := range l.neurons {
				if !neuron.params(yield) {
					return
				}
			}
		}
	}
}

// Genome returns the materialized Weights sequence.
func (n *Network) Genome() []float32 {
	return slices.AppendSeq(make([]float32, 0, ParamCount(n.Topology())), n.Weights())
}

// Topology returns the topology the network was built from: its input
// width followed by the width of every layer.
func (n *Network) Topology() []LayerTopology {
	topology := make([]LayerTopology, 0, len(n.layers)+1)
	topology = append(topology, LayerTopology{Neurons: n.InputSize()})
	for _, l := range n.layers {
		topology = append(topology, LayerTopology{Neurons: l.OutputSize()})
	}
	return topology
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// InputSize returns the fan-in of the first layer.
func (n *Network) InputSize() int {
	return n.layers[0].InputSize()
}

// OutputSize returns the fan-out of the last layer.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].OutputSize()
}
