package criteria

import (
	"testing"

	"github.com/lanl/oligofs/oligo/long"
)

func TestH4RejectsRunOfFour(t *testing.T) {
	o, _ := long.FromString("ACGGGGT")
	if H4.Check(o) {
		t.Fatalf("H4 should reject a run of 4 identical bases")
	}
}

func TestH4AcceptsRunOfThree(t *testing.T) {
	o, _ := long.FromString("ACGGGT")
	if !H4.Check(o) {
		t.Fatalf("H4 should accept a run of exactly 3 identical bases")
	}
}

func TestH4AcceptsNoRuns(t *testing.T) {
	o, _ := long.FromString("ACGTACGTACGT")
	if !H4.Check(o) {
		t.Fatalf("H4 should accept an oligo with no homopolymer runs")
	}
}

func TestFindRegistered(t *testing.T) {
	if Find("h4") != H4 {
		t.Fatalf("Find(\"h4\") should return H4")
	}
	if Find("nonexistent") != nil {
		t.Fatalf("Find of an unregistered name should return nil")
	}
}
