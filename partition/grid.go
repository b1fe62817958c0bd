// SPDX-License-Identifier: MIT
// Package: quadlab/partition
//
// grid.go — dense-grid building blocks of the adaptive partitioner:
// sampling, absolute gradient, weight normalization, cumulative
// distribution and inverse-CDF interpolation.
//
// Every helper is pure and allocates its result; inputs are never mutated.

package partition

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quadlab/core"
)

// Grid returns m equally spaced points covering [a, b], with both end
// points exact. m must be >= 2.
// Complexity: O(m).
func Grid(a, b float64, m int) []float64 {
	xs := floats.Span(make([]float64, m), a, b)
	xs[0], xs[m-1] = a, b

	return xs
}

// Sample evaluates f at every x.
//
// Errors: wrapped core.ErrNonFiniteSample on the first NaN/±Inf value.
// Complexity: O(len(xs)) evaluations.
func Sample(f core.Func, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	if err := core.ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	return ys, nil
}

// AbsGradient returns |dy/dx| at every grid point using centered differences
// in the interior and one-sided differences at the two ends.
// len(xs) == len(ys) >= 2 is assumed.
// Complexity: O(len(xs)).
func AbsGradient(xs, ys []float64) []float64 {
	m := len(xs)
	dy := make([]float64, m)
	dy[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
	for i := 1; i < m-1; i++ {
		dy[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	dy[m-1] = (ys[m-1] - ys[m-2]) / (xs[m-1] - xs[m-2])
	for i := range dy {
		dy[i] = math.Abs(dy[i])
	}

	return dy
}

// GradientWeights normalizes the absolute gradient of (xs, ys) into a
// distribution summing to 1.
//
// Errors:
//   - ErrDegenerateWeights if the gradient is zero everywhere.
//   - core.ErrNonFiniteSample if the total variation overflows.
func GradientWeights(xs, ys []float64) ([]float64, error) {
	w := AbsGradient(xs, ys)
	total := floats.Sum(w)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("GradientWeights: total variation %v: %w", total, core.ErrNonFiniteSample)
	}
	if total == 0 {
		return nil, ErrDegenerateWeights
	}
	floats.Scale(1/total, w)

	return w, nil
}

// CumulativeWeights returns the running sum of w, a non-decreasing discrete
// CDF over the grid. The last entry is ~1 for normalized weights.
func CumulativeWeights(w []float64) []float64 {
	return floats.CumSum(make([]float64, len(w)), w)
}

// Quantiles returns k equally spaced targets in [0, 1] (k >= 2).
func Quantiles(k int) []float64 {
	return Grid(0, 1, k)
}

// InverseCDF maps each target q to an x coordinate by piecewise-linear
// interpolation of xs against the non-decreasing cdf.
//
// Targets at or below cdf[0] map to xs[0]; targets at or above the last
// cdf value map to the last x. Flat stretches of the cdf are skipped, so
// the interpolation never divides by zero.
// Complexity: O(len(q)·log len(cdf)).
func InverseCDF(cdf, xs, q []float64) []float64 {
	last := len(cdf) - 1
	out := make([]float64, len(q))
	for k, t := range q {
		// j is the last index with cdf[j] <= t.
		j := sort.Search(len(cdf), func(i int) bool { return cdf[i] > t }) - 1
		switch {
		case j < 0:
			out[k] = xs[0]
		case j >= last:
			out[k] = xs[last]
		default:
			frac := (t - cdf[j]) / (cdf[j+1] - cdf[j])
			out[k] = xs[j] + frac*(xs[j+1]-xs[j])
		}
	}

	return out
}
