// SPDX-License-Identifier: MIT
// Package: quadlab/partition
//
// options.go — functional options for the adaptive partitioner.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Partitioners themselves never panic on user data.
//   • newConfig applies options in order; later options win.

package partition

// Deterministic defaults for the dense reference grid.
const (
	// DefaultOversample is the number of grid points per requested boundary.
	DefaultOversample = 5
	// DefaultMinSamples is the floor on the dense grid size.
	DefaultMinSamples = 1000
)

// Option customizes the dense sampling grid used by Adaptive.
type Option func(*config)

// config aggregates every partitioner knob. It is passed by value.
type config struct {
	oversample int // grid points per boundary, >= 1
	minSamples int // lower bound on grid size, >= 2
}

// newConfig resolves defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		oversample: DefaultOversample,
		minSamples: DefaultMinSamples,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// gridSize returns max(oversample·(n+1), minSamples) for n requested cells.
func (c config) gridSize(n int) int {
	m := c.oversample * (n + 1)
	if m < c.minSamples {
		m = c.minSamples
	}

	return m
}

// WithOversample sets how many dense grid points are taken per boundary
// point. Panics if k < 1.
func WithOversample(k int) Option {
	if k < 1 {
		panic("partition: WithOversample(k<1)")
	}
	return func(c *config) {
		c.oversample = k
	}
}

// WithMinSamples sets the minimum dense grid size. Panics if m < 2, since
// a gradient needs at least two samples.
func WithMinSamples(m int) Option {
	if m < 2 {
		panic("partition: WithMinSamples(m<2)")
	}
	return func(c *config) {
		c.minSamples = m
	}
}
