package nn

import (
	"fmt"
	"strconv"
	"strings"
)

// LayerTopology describes the width of one layer.
//
// A topology is an ordered list of LayerTopology values. The first entry is
// the network's input width and owns no neurons; every following entry
// becomes one layer whose fan-in is the previous entry's width.
type LayerTopology struct {
	Neurons int
}

// ParseTopology parses a whitespace-separated list of layer widths.
//
// Example:
//
//	topology, err := nn.ParseTopology("3 2 1")
func ParseTopology(s string) ([]LayerTopology, error) {
	fields := strings.Fields(s)
	topology := make([]LayerTopology, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		topology[i] = LayerTopology{Neurons: n}
	}
	if err := ValidateTopology(topology); err != nil {
		return nil, err
	}
	return topology, nil
}

// ValidateTopology checks that a topology describes a buildable network.
func ValidateTopology(topology []LayerTopology) error {
	if len(topology) < 2 {
		return fmt.Errorf("%w: got %d entries", ErrDegenerateTopology, len(topology))
	}
	for i, l := range topology {
		if l.Neurons <= 0 {
			return fmt.Errorf("layer %d: %w: got %d", i, ErrInvalidLayerSize, l.Neurons)
		}
	}
	return nil
}

// ParamCount returns the genome length of a network with the given topology:
// one bias plus fan-in weights for every neuron of every layer.
func ParamCount(topology []LayerTopology) int {
	count := 0
	for i := 1; i < len(topology); i++ {
		count += topology[i].Neurons * (topology[i-1].Neurons + 1)
	}
	return count
}
