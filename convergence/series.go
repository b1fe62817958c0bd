package convergence

import "math"

// Point is one row of a convergence study.
type Point struct {
	N            int     // number of cells
	Estimate     float64 // area estimate at N
	AbsError     float64 // |reference − estimate|
	SquaredError float64 // (reference − estimate)²
}

// newPoint derives both error measures from an estimate.
func newPoint(n int, estimate, reference float64) Point {
	d := reference - estimate

	return Point{N: n, Estimate: estimate, AbsError: math.Abs(d), SquaredError: d * d}
}

// ErrorSeries is the ordered list of points for one rule, one per tested N.
type ErrorSeries []Point

// Counts returns the N column as float64, ready for plotting.
func (s ErrorSeries) Counts() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = float64(p.N)
	}

	return out
}

// Estimates returns the estimate column.
func (s ErrorSeries) Estimates() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Estimate
	}

	return out
}

// Abs returns the absolute-error column.
func (s ErrorSeries) Abs() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.AbsError
	}

	return out
}

// Squared returns the squared-error column.
func (s ErrorSeries) Squared() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.SquaredError
	}

	return out
}

// MeanAbs returns the mean absolute error over all points (0 when empty).
func (s ErrorSeries) MeanAbs() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s {
		sum += p.AbsError
	}

	return sum / float64(len(s))
}

// MeanSquared returns the mean squared error over all points (0 when empty).
func (s ErrorSeries) MeanSquared() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s {
		sum += p.SquaredError
	}

	return sum / float64(len(s))
}

// Reduction returns first.AbsError / last.AbsError: how many times the
// error shrank across the study. An exact last estimate gives +Inf; an
// empty series gives NaN.
func (s ErrorSeries) Reduction() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	first, last := s[0].AbsError, s[len(s)-1].AbsError
	if last == 0 {
		return math.Inf(1)
	}

	return first / last
}
