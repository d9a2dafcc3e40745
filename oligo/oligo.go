// Package oligo defines the DNA sequence value type shared by the codec,
// framer, primer registry, and block assembler.
package oligo

const (
	A = 0
	T = 1
	C = 2
	G = 3
)

// Oligo is a sequence of nucleotides. The only implementation is
// oligo/long.Oligo; the interface exists so that packages built on top of
// it (channel, frame, primer, block) don't depend on the representation.
type Oligo interface {
	// Length of the oligo
	Len() int

	// Converts the oligo to string
	String() string

	// Returns the nucleotide at position idx, -1 if out of bounds
	At(idx int) int

	// Returns part of the oligo
	Slice(start, end int) Oligo

	// Creates a copy of the oligo
	Clone() Oligo

	// Appends the specified oligo. Returns false if the result would
	// be too large for the underlying representation.
	Append(other Oligo) bool
}

var ntNames = "ATCG"

// Nt2String converts a numeric nucleotide value to its single-letter string.
func Nt2String(nt int) string {
	if nt < 0 || nt >= len(ntNames) {
		return "?"
	}

	return string(ntNames[nt])
}

// String2Nt converts a single-letter nucleotide string to its numeric value,
// or -1 if the letter isn't one of A, T, C, G.
func String2Nt(nt string) int {
	switch nt {
	default:
		return -1
	case "A":
		return A
	case "T":
		return T
	case "C":
		return C
	case "G":
		return G
	}
}
