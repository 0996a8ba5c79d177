// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides small feed-forward networks that double as genomes.
//
// # Overview
//
// A network is a strict tree of immutable values:
//   - Network: an ordered stack of layers
//   - Layer: an ordered set of neurons sharing one input vector
//   - Neuron: a bias and one weight per input, with ReLU activation
//
// Networks are built from a topology, either randomly or from a flat
// sequence of float32 parameters (the genome), and evaluated with
// Propagate. Nothing mutates a built network, so one instance can be
// propagated from many goroutines.
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/genet/nn"
//	)
//
//	func main() {
//	    var seed [32]byte
//	    rng := nn.NewUniform(rand.NewChaCha8(seed))
//
//	    topology, _ := nn.ParseTopology("3 2 1")
//	    network, err := nn.RandomNetwork(rng, topology)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    output := network.Propagate([]float32{0.5, 0.6, 0.7})
//	}
//
// # Genomes
//
// Weights flattens a network into its genome. For each layer in order, for
// each neuron in order, the bias comes first and then the weights in input
// order. NetworkFromWeights and NetworkFromSlice are the inverse:
//
//	genome := network.Genome()
//	// ... an optimizer mutates genome ...
//	child, err := nn.NetworkFromSlice(network.Topology(), genome)
//
// The genome length must match ParamCount exactly; shorter genomes fail
// with ErrInsufficientWeights and longer ones with ErrTooManyWeights.
//
// # Errors
//
// Construction from a topology or genome returns errors. Propagating an
// input of the wrong length panics with a *ShapeError, as does building a
// neuron without weights or a layer whose neurons disagree on fan-in.
package nn
