package nn

import (
	"math/rand/v2"
)

// Uniform is the random capability used to initialize networks.
//
// Each call yields one value drawn uniformly from [-1, 1]. Constructors
// consume it strictly in order, so a deterministic Uniform produces a
// deterministic network.
type Uniform interface {
	Uniform() float32
}

// UniformFunc adapts an ordinary function to the Uniform interface.
type UniformFunc func() float32

// Uniform calls f().
func (f UniformFunc) Uniform() float32 {
	return f()
}

// NewUniform returns a Uniform backed by a math/rand/v2 source.
//
// Values cover the closed interval [-1, 1]: 24 random bits are spread over
// 2^24 evenly spaced points including both ends.
//
// Example:
//
//	var seed [32]byte
//	rng := nn.NewUniform(rand.NewChaCha8(seed))
//	network, err := nn.RandomNetwork(rng, topology)
func NewUniform(src rand.Source) Uniform {
	return &sourceUniform{src: src}
}

type sourceUniform struct {
	src rand.Source
}

const uniformSteps = 1<<24 - 1

func (u *sourceUniform) Uniform() float32 {
	bits := u.src.Uint64() >> 40 // top 24 bits
	return float32(bits)/uniformSteps*2 - 1
}
