// SPDX-License-Identifier: MIT
// Package: core
//
// Purpose:
//  - One canonical place for the argument checks shared by the partitioner
//    and the estimators.
//  - Every validator returns its sentinel wrapped with a tag, so callers can
//    both errors.Is the class and read where it came from.
//
// Determinism & Performance:
//  - All checks are pure; ValidateFinite is O(len(xs)), the rest O(1).

package core

import "fmt"

// validatorErrorf wraps a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateInterval ensures a and b are finite and a < b.
//
// Returns wrapped ErrInvalidInterval otherwise.
// Complexity: O(1).
func ValidateInterval(a, b float64) error {
	if !isFinite(a) || !isFinite(b) {
		return validatorErrorf("ValidateInterval: bounds", ErrInvalidInterval)
	}
	if a >= b {
		return validatorErrorf("ValidateInterval: order", ErrInvalidInterval)
	}

	return nil
}

// ValidateCount ensures the requested number of cells is at least one.
func ValidateCount(n int) error {
	if n < 1 {
		return validatorErrorf("ValidateCount", ErrInvalidCount)
	}

	return nil
}

// ValidateFinite ensures every sample in ys is finite.
// The error names the first offending index.
// Complexity: O(len(ys)).
func ValidateFinite(ys []float64) error {
	for i, y := range ys {
		if !isFinite(y) {
			return fmt.Errorf("ValidateFinite: sample %d = %v: %w", i, y, ErrNonFiniteSample)
		}
	}

	return nil
}

// ValidateSample checks a single integrand value taken at x.
func ValidateSample(x, y float64) error {
	if !isFinite(y) {
		return fmt.Errorf("ValidateSample: f(%v) = %v: %w", x, y, ErrNonFiniteSample)
	}

	return nil
}
