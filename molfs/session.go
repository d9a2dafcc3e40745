package molfs

import (
	"github.com/lanl/oligofs/block"
	"github.com/lanl/oligofs/oligo"
	"github.com/lanl/oligofs/primer"
)

// Session replaces the duck-typed MolFS-facing object described in
// spec.md §9 (a runtime attribute lookup for "Pool", "Block", "encode",
// "decode") with an explicit interface. "Current pool/block" is a
// property of the caller's session, not of the codec itself.
type Session interface {
	// SetCurrent selects which (pool, block) subsequent Encode/Decode
	// calls address.
	SetCurrent(pool, blk uint32)

	// Encode frames data for the current pool/block into oligos.
	Encode(data []byte) ([]oligo.Oligo, block.Metadata, error)

	// Decode classifies and reassembles candidate sequences for the
	// current pool/block.
	Decode(candidates []string, originalLength int) ([]byte, block.Stats)
}

// registrySession is the Registry-backed Session implementation.
type registrySession struct {
	reg  *primer.Registry
	pool uint32
	blk  uint32
}

// NewSession creates a Session backed by reg.
func NewSession(reg *primer.Registry) Session {
	return &registrySession{reg: reg}
}

func (s *registrySession) SetCurrent(pool, blk uint32) {
	s.pool = pool
	s.blk = blk
}

func (s *registrySession) Encode(data []byte) ([]oligo.Oligo, block.Metadata, error) {
	return block.Encode(s.reg, s.pool, s.blk, data)
}

func (s *registrySession) Decode(candidates []string, originalLength int) ([]byte, block.Stats) {
	return block.Decode(s.reg, s.pool, s.blk, candidates, originalLength)
}
