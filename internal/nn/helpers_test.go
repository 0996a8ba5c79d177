package nn

// fixedUniform replays a fixed sequence of values and panics once it runs
// dry, so tests notice any extra draw.
type fixedUniform struct {
	values []float32
	pos    int
}

func newFixedUniform(values ...float32) *fixedUniform {
	return &fixedUniform{values: values}
}

func (f *fixedUniform) Uniform() float32 {
	if f.pos >= len(f.values) {
		panic("fixedUniform: exhausted")
	}
	v := f.values[f.pos]
	f.pos++
	return v
}

// countingUniform yields 0.01, 0.02, 0.03, ... so draw order is visible in
// the resulting genome.
type countingUniform struct {
	n int
}

func (c *countingUniform) Uniform() float32 {
	c.n++
	return float32(c.n) / 100
}

// stream returns a pull function over values, as consumed by the
// FromWeights constructors.
func stream(values ...float32) func() (float32, bool) {
	pos := 0
	return func() (float32, bool) {
		if pos >= len(values) {
			return 0, false
		}
		v := values[pos]
		pos++
		return v, true
	}
}

func topologyOf(widths ...int) []LayerTopology {
	topology := make([]LayerTopology, len(widths))
	for i, w := range widths {
		topology[i] = LayerTopology{Neurons: w}
	}
	return topology
}
