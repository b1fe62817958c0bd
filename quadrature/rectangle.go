package quadrature

import (
	"fmt"

	"github.com/katalvlaran/quadlab/core"
)

// RectangleSums holds the four rectangle-rule estimates of one partition.
type RectangleSums struct {
	Left   float64
	Right  float64
	Middle float64
	Random float64
}

// ByRule returns the four sums keyed by rule name.
func (s RectangleSums) ByRule() map[Rule]float64 {
	return map[Rule]float64{
		RuleLeft:   s.Left,
		RuleRight:  s.Right,
		RuleMiddle: s.Middle,
		RuleRandom: s.Random,
	}
}

// Worst returns the rectangle estimate farthest from reference.
func (s RectangleSums) Worst(reference float64) float64 {
	worst := s.Left
	for _, v := range []float64{s.Right, s.Middle, s.Random} {
		if absDiff(v, reference) > absDiff(worst, reference) {
			worst = v
		}
	}

	return worst
}

// Rectangle — composite rectangle rules over p.
//
// For every cell [lo, hi] of width w the four running sums accumulate
//
//	Left   += f(lo)·w
//	Right  += f(hi)·w
//	Middle += f((lo+hi)/2)·w
//	Random += f(u)·w,  u drawn uniformly from [lo, hi)
//
// The random draw uses the RNG from WithRand/WithSeed; without one the
// result is not reproducible.
//
// The partition is not validated. Each cell is visited exactly once.
//
// Complexity: O(p.Len()) time, 4·p.Len() evaluations, O(1) extra memory.
//
// Errors: core.ErrNonFiniteSample (no partial sums are returned).
func Rectangle(f core.Func, p core.Partition, opts ...Option) (RectangleSums, error) {
	cfg := newConfig(opts...)

	var s RectangleSums
	for i := 0; i < p.Len(); i++ {
		c := p.Cell(i)
		w := c.Width()
		u := c.Lo + w*cfg.rng.Float64()

		fl, fr, fm, fu := f(c.Lo), f(c.Hi), f(c.Mid()), f(u)
		if err := checkSamples([]float64{c.Lo, c.Hi, c.Mid(), u}, fl, fr, fm, fu); err != nil {
			return RectangleSums{}, fmt.Errorf("Rectangle: cell %d: %w", i, err)
		}

		s.Left += fl * w
		s.Right += fr * w
		s.Middle += fm * w
		s.Random += fu * w
	}
	if err := checkSum(s.Left, s.Right, s.Middle, s.Random); err != nil {
		return RectangleSums{}, fmt.Errorf("Rectangle: %w", err)
	}

	return s, nil
}
