package quadrature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadlab/core"
)

// Estimates maps every rule to its area estimate for one partition.
type Estimates map[Rule]float64

// Estimate runs every rule once over p: the four rectangle variants,
// trapezoid and Simpson. Callers reuse the map for both the value and the
// error columns of a report instead of re-running the estimators.
//
// Errors: the first estimator error, wrapped; no partial map is returned.
func Estimate(f core.Func, p core.Partition, opts ...Option) (Estimates, error) {
	rect, err := Rectangle(f, p, opts...)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	trap, err := Trapezoid(f, p)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	simp, err := Simpson(f, p)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}

	out := Estimates(rect.ByRule())
	out[RuleTrapezoid] = trap
	out[RuleSimpson] = simp

	return out, nil
}

// Apply runs a single rule over p.
func Apply(r Rule, f core.Func, p core.Partition, opts ...Option) (float64, error) {
	switch r {
	case RuleTrapezoid:
		return Trapezoid(f, p)
	case RuleSimpson:
		return Simpson(f, p)
	case RuleLeft, RuleRight, RuleMiddle, RuleRandom:
		s, err := Rectangle(f, p, opts...)
		if err != nil {
			return 0, err
		}
		return s.ByRule()[r], nil
	}

	return 0, fmt.Errorf("Apply(%q): %w", string(r), ErrUnknownRule)
}

// AbsError returns |reference − estimate| for rule r.
func (e Estimates) AbsError(r Rule, reference float64) float64 {
	return absDiff(e[r], reference)
}

// SquaredError returns (reference − estimate)² for rule r.
func (e Estimates) SquaredError(r Rule, reference float64) float64 {
	d := reference - e[r]
	return d * d
}

func absDiff(a, b float64) float64 { return math.Abs(a - b) }

// checkSamples validates integrand values ys taken at xs (pairwise).
func checkSamples(xs []float64, ys ...float64) error {
	for i, y := range ys {
		if err := core.ValidateSample(xs[i], y); err != nil {
			return err
		}
	}

	return nil
}

// checkSum rejects overflowed accumulators.
func checkSum(sums ...float64) error {
	for _, s := range sums {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("accumulated sum %v: %w", s, core.ErrNonFiniteSample)
		}
	}

	return nil
}
