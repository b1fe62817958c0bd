// Package core defines the shared vocabulary of quadlab: the integrand Func,
// the closed Interval [a,b], the Cell and the Partition that every quadrature
// rule consumes, together with the sentinel errors and validators used by the
// partition and quadrature packages.
//
// 🚀 What lives here?
//
//	A Partition is an ordered, contiguous, non-overlapping cover of an
//	interval by cells:
//
//	  a = x0 ── x1 ──── x2 ─ x3 ────────── x4 = b
//	      [c0 ] [  c1  ][c2][     c3      ]
//
//	It is produced once by a partitioner and then shared, read-only, by any
//	number of estimators. Accessors hand out copies, so a Partition value can
//	never be changed after construction.
//
// ✨ Key types:
//   - Func      — real-to-real integrand, evaluated point by point.
//   - Interval  — finite bounds with A < B (see NewInterval).
//   - Cell      — one sub-interval [Lo, Hi] with Width and Mid helpers.
//   - Partition — cells + the Strategy that built them.
//
// Errors:
//
//	ErrInvalidInterval    - a ≥ b or a non-finite bound.
//	ErrInvalidCount       - requested cell count n < 1.
//	ErrNonFiniteSample    - the integrand produced NaN or ±Inf.
//	ErrMalformedPartition - Validate found gaps, overlaps or bad ordering.
//
// Estimators never call Validate; a malformed partition yields meaningless
// but finite sums. Use Validate at the boundary where partitions are built
// by hand.
package core
