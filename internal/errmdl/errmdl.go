// Package errmdl generates synthetic sequencing-style errors for tests,
// adapted from the teacher's utils/errmdl/simple package. It injects
// single-base substitutions, insertions, and deletions so the block
// decoder can be exercised against corrupted input, such as spec.md §8's
// single-base corruption scenario.
package errmdl

import (
	"math/rand"

	"github.com/lanl/oligofs/oligo"
)

// Model injects errors into oligo sequences at fixed per-position
// probabilities.
type Model struct {
	insertP    float64 // probability of insertion
	indelP     float64 // cumulative probability of insertion or deletion
	totalP     float64 // cumulative probability of any error (rest is substitution)
	rnd        *rand.Rand
}

// New builds a Model. ins, del, sub are per-position probabilities for
// each error class; seed makes the sequence of injected errors
// reproducible across test runs.
func New(ins, del, sub float64, seed int64) *Model {
	return &Model{
		insertP: ins,
		indelP:  ins + del,
		totalP:  ins + del + sub,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Corrupt returns a mutated copy of seq's string form, plus the number
// of errors injected.
func (m *Model) Corrupt(seq string) (string, int) {
	errnum := 0
	for i := 0; i < len(seq); i++ {
		p := m.rnd.Float64()
		if p > m.totalP {
			continue
		}

		switch {
		case p < m.insertP:
			seq = seq[:i] + oligo.Nt2String(m.rnd.Intn(4)) + seq[i:]
			i++
		case p < m.indelP:
			if i+1 < len(seq) {
				seq = seq[:i] + seq[i+1:]
			} else {
				seq = seq[:i]
			}
			i--
		default:
			seq = substituteAt(seq, i, m.rnd)
		}
		errnum++
	}

	return seq, errnum
}

func substituteAt(seq string, i int, rnd *rand.Rand) string {
	var tail string
	if i+1 < len(seq) {
		tail = seq[i+1:]
	}

	cur := oligo.String2Nt(string(seq[i]))
	n := rnd.Intn(3)
	if n >= cur {
		n++
	}

	return seq[:i] + oligo.Nt2String(n) + tail
}

// FlipOneBase substitutes a single base at position idx with a
// different, deterministically-chosen base — used by tests that need a
// guaranteed single-base corruption rather than a probabilistic one.
func FlipOneBase(seq string, idx int) string {
	cur := oligo.String2Nt(string(seq[idx]))
	repl := (cur + 1) % 4
	return seq[:idx] + oligo.Nt2String(repl) + seq[idx+1:]
}
