// Package channel implements the bit-to-base channel code: a one-bit-per-
// base mapping ({A,C} -> 0, {G,T} -> 1) that is ambiguous in the forward
// direction, made deterministic on encode by a homopolymer-avoidance
// tie-break.
package channel

import (
	"fmt"

	"github.com/lanl/oligofs/criteria"
	"github.com/lanl/oligofs/oligo"
	"github.com/lanl/oligofs/oligo/long"
)

// classZero and classOne are the two admissible bases for bit 0 and bit 1,
// sorted lexicographically (A < C, G < T) so index 0 is always the
// "smaller" tie-break candidate.
var classZero = [2]int{oligo.A, oligo.C}
var classOne = [2]int{oligo.G, oligo.T}

func class(bit bool) [2]int {
	if bit {
		return classOne
	}
	return classZero
}

// EncodeBitsToDNA encodes bits (MSB-first, i.e. in the order given) into a
// homopolymer-free oligo of length len(bits). History is local to this
// call: each field (address, payload, CRC32) must be encoded with its own
// call, per spec.
func EncodeBitsToDNA(bits []bool) oligo.Oligo {
	o := long.New(0)

	for _, bit := range bits {
		cand := class(bit)
		nt := chooseBase(o, cand)
		o.Append(long.FromNt(nt))
	}

	if !criteria.H4.Check(o) {
		// Can't happen under the two-choice rule for well-formed input;
		// asserted per the fail-fast requirement on encode.
		panic(fmt.Sprintf("channel: homopolymer constraint violated: %v", o))
	}

	return o
}

// chooseBase picks one of the two candidates in cand for the next
// position of o, avoiding a run of 4 identical bases.
func chooseBase(o oligo.Oligo, cand [2]int) int {
	l := o.Len()
	if l >= 2 {
		b1 := o.At(l - 1)
		b2 := o.At(l - 2)

		if b1 == b2 {
			// Last two bases already match; if one of the candidates
			// would extend that run, pick the other.
			if b1 == cand[0] {
				return cand[1]
			}
			if b1 == cand[1] {
				return cand[0]
			}
		}
	}

	// No risk of extending a run: pick the lexicographically smaller base.
	return cand[0]
}

// DecodeDNAToBits decodes a DNA sequence back into bits: A,C -> 0; G,T -> 1.
// Returns an error if the oligo contains anything other than A/T/C/G
// (Oligo values, by construction via oligo/long.FromString, can't).
func DecodeDNAToBits(o oligo.Oligo) ([]bool, error) {
	bits := make([]bool, o.Len())

	for i := 0; i < o.Len(); i++ {
		switch o.At(i) {
		case oligo.A, oligo.C:
			bits[i] = false
		case oligo.G, oligo.T:
			bits[i] = true
		default:
			return nil, fmt.Errorf("channel: invalid nucleotide at position %d", i)
		}
	}

	return bits, nil
}
