package molfs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lanl/oligofs/block"
)

func TestSplitContiguousIndices(t *testing.T) {
	data := make([]byte, 25)
	for i := range data {
		data[i] = byte(i)
	}

	chunks := Split(data, 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
	}
	if len(chunks[2].Data) != 5 {
		t.Fatalf("last chunk should have the 5 remaining bytes, got %d", len(chunks[2].Data))
	}

	var reassembled []byte
	for _, c := range chunks {
		reassembled = append(reassembled, c.Data...)
	}
	if !bytes.Equal(reassembled, data) {
		t.Fatalf("chunk data doesn't reassemble to the original")
	}
}

func TestSplitEmptyData(t *testing.T) {
	if chunks := Split(nil, 10); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestDispatchStrategies(t *testing.T) {
	assign := Dispatch(4, RoundRobin{PoolList: []uint32{1, 2}})
	want := map[int][]uint32{0: {1}, 1: {2}, 2: {1}, 3: {2}}
	for i, pools := range want {
		if !equalPools(assign[i], pools) {
			t.Fatalf("block %d: got %v, want %v", i, assign[i], pools)
		}
	}

	assign = Dispatch(2, Single{Pool: 7})
	if !equalPools(assign[0], []uint32{7}) || !equalPools(assign[1], []uint32{7}) {
		t.Fatalf("Single strategy should route every block to pool 7: %v", assign)
	}

	assign = Dispatch(2, MirrorAll{PoolList: []uint32{1, 2, 3}})
	if !equalPools(assign[0], []uint32{1, 2, 3}) {
		t.Fatalf("MirrorAll should route every block to every pool: %v", assign[0])
	}
}

func equalPools(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReassembleBestCopyWins(t *testing.T) {
	results := []BlockResult{
		{BlockIndex: 0, Pool: 1, Data: []byte("AAAA"), Stats: block.Stats{MissingAddresses: []uint32{0, 1}}},
		{BlockIndex: 0, Pool: 2, Data: []byte("BBBB"), Stats: block.Stats{MissingAddresses: nil}},
	}

	out, errs := Reassemble(results, []int{4})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if string(out) != "BBBB" {
		t.Fatalf("expected the copy with fewer missing addresses to win, got %q", out)
	}
}

func TestReassembleTieBreaksOnCrcInvalid(t *testing.T) {
	results := []BlockResult{
		{BlockIndex: 0, Pool: 1, Data: []byte("AAAA"), Stats: block.Stats{CrcInvalid: 2}},
		{BlockIndex: 0, Pool: 2, Data: []byte("BBBB"), Stats: block.Stats{CrcInvalid: 0}},
	}

	out, _ := Reassemble(results, []int{4})
	if string(out) != "BBBB" {
		t.Fatalf("expected the copy with fewer CRC-invalid oligos to win, got %q", out)
	}
}

func TestReassembleFirstEncounteredWinsTrueTies(t *testing.T) {
	results := []BlockResult{
		{BlockIndex: 0, Pool: 1, Data: []byte("AAAA")},
		{BlockIndex: 0, Pool: 2, Data: []byte("BBBB")},
	}

	out, _ := Reassemble(results, []int{4})
	if string(out) != "AAAA" {
		t.Fatalf("expected the first-encountered copy to win a true tie, got %q", out)
	}
}

func TestReassembleMissingBlockZeroFills(t *testing.T) {
	results := []BlockResult{
		{BlockIndex: 0, Pool: 1, Data: []byte("AAAA")},
	}

	out, errs := Reassemble(results, []int{4, 3})
	if len(out) != 7 {
		t.Fatalf("expected a zero-filled gap for the missing block, got len %d", len(out))
	}
	if !bytes.Equal(out[4:], make([]byte, 3)) {
		t.Fatalf("missing block should be zero-filled: %v", out[4:])
	}

	if len(errs) != 1 {
		t.Fatalf("expected one error for the missing block, got %d", len(errs))
	}
	var missing *BlockMissingError
	if !errors.As(errs[0], &missing) || missing.Index != 1 {
		t.Fatalf("expected a BlockMissingError for index 1, got %v", errs[0])
	}
	if !errors.Is(errs[0], ErrBlockMissing) {
		t.Fatalf("BlockMissingError should satisfy errors.Is(ErrBlockMissing)")
	}
}
