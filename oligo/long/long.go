// Package long implements the oligo.Oligo interface for sequences of any
// length, storing one byte per nucleotide. This is the only oligo
// representation used by the codec: oligos here run up to 191 nt, well
// past the 32-nt cap of a packed 2-bit-per-base representation.
package long

import (
	"github.com/lanl/oligofs/oligo"
)

type Oligo struct {
	len int

	// Sequence of nts, one byte each, nt at position 0 stored in seq[0].
	seq []byte
}

// New creates an oligo of the given length, with value "AAA...A".
func New(olen int) *Oligo {
	return &Oligo{olen, make([]byte, olen)}
}

// FromNt creates a single-nucleotide oligo with the given numeric value
// (one of the oligo package's A/T/C/G constants).
func FromNt(nt int) *Oligo {
	return &Oligo{1, []byte{byte(nt)}}
}

// FromString converts a string of A/T/C/G into an Oligo.
// Returns false if the string contains any other character.
func FromString(s string) (*Oligo, bool) {
	seq := make([]byte, 0, len(s))

	for _, c := range s {
		nt := oligo.String2Nt(string(c))
		if nt < 0 {
			return nil, false
		}

		seq = append(seq, byte(nt))
	}

	return &Oligo{len(seq), seq}, true
}

// FromString1 is FromString for callers certain the input is well-formed.
func FromString1(s string) *Oligo {
	o, _ := FromString(s)
	return o
}

func (o *Oligo) Len() int {
	return o.len
}

func (o *Oligo) String() (ret string) {
	for i := 0; i < o.len; i++ {
		ret += oligo.Nt2String(o.At(i))
	}

	return ret
}

func (o *Oligo) At(idx int) int {
	if idx < 0 || idx >= o.len {
		return -1
	}

	return int(o.seq[idx])
}

func (o *Oligo) Slice(start, end int) oligo.Oligo {
	if end <= 0 {
		end = o.len - end
	}

	if end > o.len {
		end = o.len
	} else if end < 0 {
		end = 0
	}

	if start < 0 || start > o.len || start > end {
		return &Oligo{0, nil}
	}

	no := new(Oligo)
	no.len = end - start
	no.seq = make([]byte, no.len)
	copy(no.seq, o.seq[start:end])

	return no
}

func (o *Oligo) Clone() oligo.Oligo {
	no := new(Oligo)
	no.len = o.len
	no.seq = make([]byte, no.len)
	copy(no.seq, o.seq)

	return no
}

func (o *Oligo) Append(other oligo.Oligo) bool {
	o.len += other.Len()
	for i := 0; i < other.Len(); i++ {
		o.seq = append(o.seq, byte(other.At(i)))
	}

	return true
}

// Bytes returns the underlying per-nucleotide byte slice (values 0-3,
// see the oligo package constants). Callers must not mutate it.
func (o *Oligo) Bytes() []byte {
	return o.seq
}
