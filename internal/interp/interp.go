package interp

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Interpolant is a shape-preserving cubic over one tabulated column. It is
// defined on [min, max] of the nodes; queries outside are clamped to the
// domain boundary.
type Interpolant struct {
	fb       interp.FritschButland
	min, max float64
}

// New fits a Fritsch-Butland monotone cubic through the nodes. xs must be
// strictly increasing.
func New(xs, ys []float64) (*Interpolant, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d nodes against %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp: need at least two nodes, got %d", len(xs))
	}
	// Fit panics instead of erroring on non-monotonic nodes; tables
	// duplicate the energy row at absorption edges, so check here
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("interp: nodes not strictly increasing: %g after %g at index %d", xs[i], xs[i-1], i)
		}
	}
	ip := &Interpolant{min: xs[0], max: xs[len(xs)-1]}
	if err := ip.fb.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}
	return ip, nil
}

func (ip *Interpolant) At(x float64) float64 {
	if x < ip.min {
		x = ip.min
	} else if x > ip.max {
		x = ip.max
	}
	return ip.fb.Predict(x)
}
