package core

import (
	"fmt"
	"math"
)

// Strategy records how a Partition was produced.
type Strategy int

const (
	// Custom marks partitions assembled by hand via NewPartition/FromCells.
	Custom Strategy = iota

	// Adaptive marks gradient-weighted partitions (dense cells where |f'| is large).
	Adaptive

	// Uniform marks equal-width partitions that were requested as such.
	Uniform

	// UniformFallback marks equal-width partitions produced by the adaptive
	// partitioner because the integrand showed no variation on the grid.
	UniformFallback
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Adaptive:
		return "adaptive"
	case Uniform:
		return "uniform"
	case UniformFallback:
		return "uniform-fallback"
	default:
		return "custom"
	}
}

// Partition is an ordered sequence of cells covering an interval.
//
// A Partition is immutable: all accessors return copies of the internal
// storage. It is safe to share one Partition between any number of
// estimator calls.
type Partition struct {
	cells    []Cell
	strategy Strategy
}

// NewPartition pairs consecutive boundaries into len(bounds)-1 cells.
//
// No validation is performed; call Validate if the boundaries come from an
// untrusted source. Fewer than two boundaries yield an empty partition.
// Complexity: O(len(bounds)).
func NewPartition(bounds []float64, strategy Strategy) Partition {
	if len(bounds) < 2 {
		return Partition{strategy: strategy}
	}
	cells := make([]Cell, len(bounds)-1)
	for i := range cells {
		cells[i] = Cell{Lo: bounds[i], Hi: bounds[i+1]}
	}

	return Partition{cells: cells, strategy: strategy}
}

// FromCells builds a Custom partition from an explicit list of cells.
// The slice is copied.
func FromCells(cells []Cell) Partition {
	cp := make([]Cell, len(cells))
	copy(cp, cells)

	return Partition{cells: cp, strategy: Custom}
}

// Len returns the number of cells.
func (p Partition) Len() int { return len(p.cells) }

// Strategy reports how the partition was built.
func (p Partition) Strategy() Strategy { return p.strategy }

// Cell returns the i-th cell. It panics if i is out of range, like slice indexing.
func (p Partition) Cell(i int) Cell { return p.cells[i] }

// Cells returns a copy of the cells in order.
func (p Partition) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)

	return out
}

// Boundaries returns x0..xn: every cell's Lo followed by the last Hi.
// An empty partition yields nil.
func (p Partition) Boundaries() []float64 {
	if len(p.cells) == 0 {
		return nil
	}
	out := make([]float64, 0, len(p.cells)+1)
	for _, c := range p.cells {
		out = append(out, c.Lo)
	}

	return append(out, p.cells[len(p.cells)-1].Hi)
}

// Interval returns [first Lo, last Hi]. The result is meaningful only for
// non-empty partitions.
func (p Partition) Interval() Interval {
	if len(p.cells) == 0 {
		return Interval{}
	}

	return Interval{A: p.cells[0].Lo, B: p.cells[len(p.cells)-1].Hi}
}

// TotalWidth returns the sum of cell widths; for a valid partition this
// equals b − a up to rounding.
func (p Partition) TotalWidth() float64 {
	var sum float64
	for _, c := range p.cells {
		sum += c.Width()
	}

	return sum
}

// Widths returns the width of every cell in order.
func (p Partition) Widths() []float64 {
	out := make([]float64, len(p.cells))
	for i, c := range p.cells {
		out[i] = c.Width()
	}

	return out
}

// Validate checks that the partition is non-empty, finite, ordered
// (Lo ≤ Hi) and contiguous (cells[i].Hi == cells[i+1].Lo), and that it
// spans a non-degenerate interval.
//
// Errors: wrapped ErrMalformedPartition naming the first violation.
// Complexity: O(Len).
func (p Partition) Validate() error {
	if len(p.cells) == 0 {
		return fmt.Errorf("Validate: empty: %w", ErrMalformedPartition)
	}
	for i, c := range p.cells {
		if !isFinite(c.Lo) || !isFinite(c.Hi) {
			return fmt.Errorf("Validate: cell %d not finite: %w", i, ErrMalformedPartition)
		}
		if c.Hi < c.Lo {
			return fmt.Errorf("Validate: cell %d decreasing [%v,%v]: %w", i, c.Lo, c.Hi, ErrMalformedPartition)
		}
		if i > 0 && p.cells[i-1].Hi != c.Lo {
			return fmt.Errorf("Validate: gap between cells %d and %d: %w", i-1, i, ErrMalformedPartition)
		}
	}
	iv := p.Interval()
	if !(iv.A < iv.B) {
		return fmt.Errorf("Validate: zero-length span: %w", ErrMalformedPartition)
	}

	return nil
}

// MaxWidth and MinWidth return the widest and narrowest cell widths.
// Both return 0 for an empty partition.
func (p Partition) MaxWidth() float64 {
	if len(p.cells) == 0 {
		return 0
	}
	m := math.Inf(-1)
	for _, c := range p.cells {
		m = math.Max(m, c.Width())
	}

	return m
}

// MinWidth returns the narrowest cell width (see MaxWidth).
func (p Partition) MinWidth() float64 {
	if len(p.cells) == 0 {
		return 0
	}
	m := math.Inf(1)
	for _, c := range p.cells {
		m = math.Min(m, c.Width())
	}

	return m
}
