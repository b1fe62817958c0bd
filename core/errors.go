// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by partition and quadrature.
// Callers branch on these with errors.Is; implementations attach method
// context with fmt.Errorf("%s: %w", method, ErrX).

package core

import "errors"

var (
	// ErrInvalidInterval is returned when a ≥ b or either bound is NaN/±Inf.
	// It is detected before any sampling of the integrand takes place.
	ErrInvalidInterval = errors.New("core: invalid interval (need finite a < b)")

	// ErrInvalidCount is returned when the requested number of cells is < 1.
	ErrInvalidCount = errors.New("core: cell count must be >= 1")

	// ErrNonFiniteSample signals that the integrand returned NaN or ±Inf at a
	// sampled point, or that an accumulated sum overflowed. No partial result
	// accompanies this error.
	ErrNonFiniteSample = errors.New("core: integrand produced a non-finite value")

	// ErrMalformedPartition is returned by Partition.Validate for empty,
	// non-contiguous, non-finite or decreasing cell sequences.
	ErrMalformedPartition = errors.New("core: malformed partition")
)
