package molfs

import (
	"errors"
	"fmt"

	"github.com/lanl/oligofs/block"
)

// Chunk is one contiguous byte block carved out of a file by Split.
type Chunk struct {
	Index int
	Data  []byte
}

// Split divides data into contiguous blocks of at most blockSize bytes,
// indices starting at 0 and contiguous (spec.md §4.6).
func Split(data []byte, blockSize int) []Chunk {
	if blockSize <= 0 {
		panic("molfs: blockSize must be positive")
	}

	var chunks []Chunk
	for start, idx := 0, 0; start < len(data); start, idx = start+blockSize, idx+1 {
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, Chunk{Index: idx, Data: data[start:end]})
	}
	return chunks
}

// Dispatch resolves which pools should carry each block under strategy.
func Dispatch(numBlocks int, strategy Strategy) map[int][]uint32 {
	assign := make(map[int][]uint32, numBlocks)
	for i := 0; i < numBlocks; i++ {
		assign[i] = strategy.Pools(i, numBlocks)
	}
	return assign
}

// BlockResult is one decoded copy of a block, tagged with the pool that
// served it.
type BlockResult struct {
	BlockIndex int
	Pool       uint32
	Data       []byte
	Stats      block.Stats
}

// ErrBlockMissing marks a gap in Reassemble's output; BlockMissingError
// satisfies errors.Is(err, ErrBlockMissing).
var ErrBlockMissing = errors.New("molfs: block missing from input")

// BlockMissingError names which block index was entirely absent.
type BlockMissingError struct {
	Index int
}

func (e *BlockMissingError) Error() string {
	return fmt.Sprintf("molfs: block %d missing from input", e.Index)
}

func (e *BlockMissingError) Is(target error) bool {
	return target == ErrBlockMissing
}

// Reassemble concatenates the best decoded copy of each block, in
// ascending block-index order. blockLengths[i] is the expected byte
// length of block i (from file-level metadata); when a block has no
// surviving copy at all, a zero-filled gap of that length is emitted and
// a *BlockMissingError is returned alongside the (necessarily partial)
// output.
//
// When multiple pools produced a copy of the same block, the one with
// fewest MissingAddresses wins, ties broken by fewest CrcInvalid, then
// by first-encountered — spec.md §4.6.
func Reassemble(results []BlockResult, blockLengths []int) ([]byte, []error) {
	best := make(map[int]BlockResult)
	for _, r := range results {
		cur, ok := best[r.BlockIndex]
		if !ok || preferred(r, cur) {
			best[r.BlockIndex] = r
		}
	}

	var out []byte
	var errs []error
	for i, length := range blockLengths {
		r, ok := best[i]
		if !ok {
			errs = append(errs, &BlockMissingError{Index: i})
			out = append(out, make([]byte, length)...)
			continue
		}
		out = append(out, r.Data...)
	}

	return out, errs
}

// preferred reports whether candidate is a strictly better copy of a
// block than incumbent.
func preferred(candidate, incumbent BlockResult) bool {
	if len(candidate.Stats.MissingAddresses) != len(incumbent.Stats.MissingAddresses) {
		return len(candidate.Stats.MissingAddresses) < len(incumbent.Stats.MissingAddresses)
	}
	if candidate.Stats.CrcInvalid != incumbent.Stats.CrcInvalid {
		return candidate.Stats.CrcInvalid < incumbent.Stats.CrcInvalid
	}
	return false // first-encountered (the incumbent) wins ties
}
