// Package metric implements the distance dispatch layer for neartree.
//
// Every NearTree pins exactly one Kind at construction time (neartree.ConfigFlags
// carries the same tag). This package holds the pure distance functions —
// no tree, no node, no state — so the query engine in the root package can
// treat "how far apart are two points" as a single injected closure.
//
// Supported kinds:
//
//	L2        - Euclidean distance, sqrt(Σ (aᵢ-bᵢ)²). Default for numeric types.
//	L1        - Manhattan distance, Σ |aᵢ-bᵢ|.
//	LInf      - Chebyshev distance, max |aᵢ-bᵢ|.
//	Spherical - great-circle angle between a, b projected onto the unit
//	            hypersphere (normalized before the angle is taken).
//	Hamming   - count of differing positions between two fixed-width strings,
//	            short operands padded with spaces to the declared width.
//
// None of these functions ever returns NaN: a degenerate computation (e.g.
// normalizing a zero vector for Spherical) maps to +Inf instead, per the
// no-NaN contract every caller in the root package relies on.
package metric
