package metric

import "errors"

// Sentinel errors for the distance dispatch layer.
var (
	// ErrDimensionMismatch indicates two vector operands have different
	// lengths, or a length that disagrees with the tree's declared dimension.
	ErrDimensionMismatch = errors.New("metric: operand dimension mismatch")

	// ErrUnsupportedKind indicates a Kind value outside the declared range,
	// or a Kind paired with an element type that cannot express it
	// (e.g. Spherical on strings).
	ErrUnsupportedKind = errors.New("metric: unsupported metric kind")
)

// Kind identifies which distance function a tree uses. It is part of the
// type-and-metric configuration word fixed at tree creation (spec.md §6).
type Kind int

const (
	// L2 is Euclidean distance: sqrt(Σ (aᵢ-bᵢ)²). Default for numeric vectors.
	L2 Kind = iota

	// L1 is Manhattan distance: Σ |aᵢ-bᵢ|.
	L1

	// LInf is Chebyshev distance: max |aᵢ-bᵢ|.
	LInf

	// Spherical is the great-circle angle between operands normalized onto
	// the unit hypersphere.
	Spherical

	// Hamming is the count of differing positions between two fixed-width
	// strings. Default for the string element type.
	Hamming
)

// String renders a Kind as its configuration name, for error messages and
// debugging output.
func (k Kind) String() string {
	switch k {
	case L2:
		return "L2"
	case L1:
		return "L1"
	case LInf:
		return "LInf"
	case Spherical:
		return "Spherical"
	case Hamming:
		return "Hamming"
	default:
		return "Kind(?)"
	}
}

// ValidForVector reports whether Kind can be applied to floating/integer
// vector operands. Hamming is excluded: it only ever operates on strings.
func (k Kind) ValidForVector() bool {
	switch k {
	case L2, L1, LInf, Spherical:
		return true
	default:
		return false
	}
}

// ValidForString reports whether Kind can be applied to string operands.
// Only Hamming is defined over strings.
func (k Kind) ValidForString() bool {
	return k == Hamming
}
