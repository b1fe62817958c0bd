package core

import "math"

// Func is a real-to-real integrand. It is assumed continuous and
// differentiable almost everywhere on the interval of interest and must be
// evaluable at every point a partitioner or estimator requests.
type Func func(x float64) float64

// Interval is the closed integration domain [A, B].
//
// Construct it through NewInterval to get the A < B guarantee; the zero
// value is not a valid interval.
type Interval struct {
	A float64
	B float64
}

// NewInterval validates the bounds and returns [a, b].
// Errors: ErrInvalidInterval if a ≥ b or a bound is not finite.
func NewInterval(a, b float64) (Interval, error) {
	if err := ValidateInterval(a, b); err != nil {
		return Interval{}, err
	}

	return Interval{A: a, B: b}, nil
}

// Length returns B − A.
func (iv Interval) Length() float64 { return iv.B - iv.A }

// Contains reports whether x lies in [A, B].
func (iv Interval) Contains(x float64) bool { return x >= iv.A && x <= iv.B }

// Cell is one sub-interval [Lo, Hi] of a Partition.
type Cell struct {
	Lo float64
	Hi float64
}

// Width returns Hi − Lo. It is never negative for cells of a valid partition.
func (c Cell) Width() float64 { return c.Hi - c.Lo }

// Mid returns the midpoint (Lo+Hi)/2.
func (c Cell) Mid() float64 { return (c.Lo + c.Hi) / 2 }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
