package quadrature

import (
	"fmt"

	"github.com/katalvlaran/quadlab/core"
)

// Trapezoid — composite trapezoid rule, Σ (f(lo)+f(hi))·w/2 over the cells
// of p. Exact for linear integrands.
//
// Complexity: O(p.Len()) time, 2·p.Len() evaluations.
// Errors: core.ErrNonFiniteSample.
func Trapezoid(f core.Func, p core.Partition) (float64, error) {
	var sum float64
	for i := 0; i < p.Len(); i++ {
		c := p.Cell(i)
		fl, fr := f(c.Lo), f(c.Hi)
		if err := checkSamples([]float64{c.Lo, c.Hi}, fl, fr); err != nil {
			return 0, fmt.Errorf("Trapezoid: cell %d: %w", i, err)
		}
		sum += (fl + fr) * c.Width() / 2
	}
	if err := checkSum(sum); err != nil {
		return 0, fmt.Errorf("Trapezoid: %w", err)
	}

	return sum, nil
}
