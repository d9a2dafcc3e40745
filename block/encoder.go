// Package block implements the block encoder (C3) and decoder (C4):
// splitting a byte block into payload-sized chunks and framing them into
// oligos, and the reverse pipeline that classifies, validates, and
// reassembles a noisy oligo multiset back into block bytes.
package block

import (
	"fmt"

	"github.com/lanl/oligofs/frame"
	"github.com/lanl/oligofs/oligo"
	"github.com/lanl/oligofs/oligo/long"
	"github.com/lanl/oligofs/primer"
)

// Encode splits data into frame.PayloadLen-byte chunks, addresses them
// 0..K-1, and frames each with the primers registered for (pool, block).
// It fails fast (spec.md §7) if no primers are registered.
func Encode(reg *primer.Registry, pool, blk uint32, data []byte) ([]oligo.Oligo, Metadata, error) {
	entry, ok := reg.Lookup(pool, blk)
	if !ok {
		return nil, Metadata{}, fmt.Errorf("block: encode pool %d block %d: %w", pool, blk, primer.ErrPrimerMissing)
	}

	fwd, ok := long.FromString(entry.Forward)
	if !ok {
		return nil, Metadata{}, fmt.Errorf("block: invalid forward primer for pool %d block %d", pool, blk)
	}
	rev, ok := long.FromString(entry.Reverse)
	if !ok {
		return nil, Metadata{}, fmt.Errorf("block: invalid reverse primer for pool %d block %d", pool, blk)
	}

	k := (len(data) + frame.PayloadLen - 1) / frame.PayloadLen
	if k == 0 {
		k = 1 // an empty block still gets one all-zero chunk, address 0
	}
	if k > frame.MaxAddress {
		return nil, Metadata{}, fmt.Errorf("block: %d chunks exceeds max address %d", k, frame.MaxAddress)
	}

	oligos := make([]oligo.Oligo, k)
	for i := 0; i < k; i++ {
		chunk := make([]byte, frame.PayloadLen)
		start := i * frame.PayloadLen
		end := start + frame.PayloadLen
		if end > len(data) {
			end = len(data)
		}
		copy(chunk, data[start:end])

		o, err := frame.Build(fwd, rev, uint32(i), chunk)
		if err != nil {
			return nil, Metadata{}, fmt.Errorf("block: building oligo %d: %w", i, err)
		}
		oligos[i] = o
	}

	md := Metadata{
		BlockIndex:     blk,
		PoolID:         pool,
		OriginalLength: len(data),
		NumOligos:      k,
	}

	return oligos, md, nil
}
