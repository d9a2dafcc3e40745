// Package criteria defines which oligo sequences are acceptable, i.e. can
// be synthesized and sequenced without running into homopolymer or other
// sequence-quality issues.
package criteria

import (
	"fmt"

	"github.com/lanl/oligofs/oligo"
)

type Criteria interface {
	// Unique identifier for the criteria. Only the low 48 bits should be used
	Id() uint64

	// Length of the features the criteria checks. For example, a
	// criteria that rejects homopolymers of length 4 returns 4.
	FeatureLength() int

	// Textual ID of the criteria
	String() string

	// Check returns true if the oligo is acceptable
	Check(o oligo.Oligo) bool
}

var criterias map[string]Criteria

func Register(name string, c Criteria) (err error) {
	if criterias == nil {
		criterias = make(map[string]Criteria)
	}

	if criterias[name] != nil {
		return fmt.Errorf("criteria with name %q already registered", name)
	}

	criterias[name] = c
	return
}

func Find(name string) Criteria {
	return criterias[name]
}

func init() {
	Register("h4", H4)
}
