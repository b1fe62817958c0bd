package quadrature

import (
	"fmt"

	"github.com/katalvlaran/quadlab/core"
)

// Simpson — Simpson's rule applied independently to every cell,
// Σ (f(lo) + 4·f(mid) + f(hi))·w/6.
//
// Unlike the textbook composite formula this does not require equal widths
// or an even cell count, so it is consistent with adaptive partitions.
// Exact for polynomials up to degree three.
//
// Complexity: O(p.Len()) time, 3·p.Len() evaluations.
// Errors: core.ErrNonFiniteSample.
func Simpson(f core.Func, p core.Partition) (float64, error) {
	var sum float64
	for i := 0; i < p.Len(); i++ {
		c := p.Cell(i)
		fl, fm, fr := f(c.Lo), f(c.Mid()), f(c.Hi)
		if err := checkSamples([]float64{c.Lo, c.Mid(), c.Hi}, fl, fm, fr); err != nil {
			return 0, fmt.Errorf("Simpson: cell %d: %w", i, err)
		}
		sum += (fl + 4*fm + fr) * c.Width() / 6
	}
	if err := checkSum(sum); err != nil {
		return 0, fmt.Errorf("Simpson: %w", err)
	}

	return sum, nil
}
