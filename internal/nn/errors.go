package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDegenerateTopology  = errors.New("topology needs at least an input and an output layer")
	ErrInvalidLayerSize    = errors.New("layer size must be positive")
	ErrEmptyWeights        = errors.New("neuron needs at least one weight")
	ErrEmptyLayer          = errors.New("layer needs at least one neuron")
	ErrInsufficientWeights = errors.New("not enough weights")
	ErrTooManyWeights      = errors.New("got too many weights")
)

// ShapeError reports an input vector whose length disagrees with the
// fan-in of the neuron or layer it was fed to.
type ShapeError struct {
	Op       string // Operation that rejected the input (e.g., "Layer.Propagate")
	Expected int    // Expected fan-in
	Got      int    // Actual input length
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d inputs, got %d", e.Op, e.Expected, e.Got)
}
