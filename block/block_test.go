package block

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lanl/oligofs/frame"
	"github.com/lanl/oligofs/primer"
)

func newTestRegistry(t *testing.T) *primer.Registry {
	r := primer.NewRegistry()
	if err := r.Register(1, 0, "CGACATCTCGATGGCAGCAT", "CAGTGAGCTGGCAACTTCCA"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return r
}

func TestEncodeDecodeRoundTripNoiseless(t *testing.T) {
	r := newTestRegistry(t)
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, to pad past one chunk")

	oligos, md, err := Encode(r, 1, 0, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	candidates := make([]string, len(oligos))
	for i, o := range oligos {
		candidates[i] = o.String()
	}

	got, stats := Decode(r, 1, 0, candidates, md.OriginalLength)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, data)
	}
	if stats.CrcInvalid != 0 || stats.Malformed != 0 || len(stats.MissingAddresses) != 0 {
		t.Fatalf("unexpected drops on a noiseless round trip: %+v", stats)
	}
}

func TestDecodeToleratesPermutedOrder(t *testing.T) {
	r := newTestRegistry(t)
	data := make([]byte, frame.PayloadLen*5)
	for i := range data {
		data[i] = byte(i)
	}

	oligos, md, err := Encode(r, 1, 0, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	candidates := make([]string, len(oligos))
	for i, o := range oligos {
		candidates[len(oligos)-1-i] = o.String() // reversed delivery order
	}

	got, stats := Decode(r, 1, 0, candidates, md.OriginalLength)
	if !bytes.Equal(got, data) {
		t.Fatalf("permuted-order round trip mismatch")
	}
	if stats.CrcValid != len(oligos) {
		t.Fatalf("expected all %d oligos valid, got %d", len(oligos), stats.CrcValid)
	}
}

func TestDecodeDropsCorruptedPayload(t *testing.T) {
	r := newTestRegistry(t)
	data := make([]byte, frame.PayloadLen)
	for i := range data {
		data[i] = 0xAB
	}

	oligos, md, err := Encode(r, 1, 0, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s := oligos[0].String()
	corrupted := flipChar(s, len(s)/2)

	got, stats := Decode(r, 1, 0, []string{corrupted}, md.OriginalLength)
	if stats.CrcValid != 0 {
		t.Fatalf("expected the corrupted oligo to fail CRC, stats: %+v", stats)
	}
	if len(stats.MissingAddresses) != 1 || stats.MissingAddresses[0] != 0 {
		t.Fatalf("expected address 0 to be reported missing, got %+v", stats.MissingAddresses)
	}
	if len(got) != frame.PayloadLen {
		t.Fatalf("expected a zero-filled chunk of length %d, got %d", frame.PayloadLen, len(got))
	}
}

func TestDecodeUnknownLengthUsesMaxAddress(t *testing.T) {
	r := newTestRegistry(t)
	data := make([]byte, frame.PayloadLen)
	for i := range data {
		data[i] = 1
	}

	oligos, _, err := Encode(r, 1, 0, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s := oligos[0].String()
	corrupted := flipChar(s, len(s)/2)

	got, stats := Decode(r, 1, 0, []string{corrupted}, -1)
	if len(stats.MissingAddresses) != 1 || stats.MissingAddresses[0] != 0 {
		t.Fatalf("a lone corrupted oligo with unknown length should still report address 0 missing: %+v", stats)
	}
	if len(got) != frame.PayloadLen {
		t.Fatalf("expected one zero-filled payload chunk, got %d bytes", len(got))
	}
}

func TestDecodeDeduplicatesByAddress(t *testing.T) {
	r := newTestRegistry(t)
	data := make([]byte, frame.PayloadLen)

	oligos, md, err := Encode(r, 1, 0, data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dup := oligos[0].String()
	_, stats := Decode(r, 1, 0, []string{dup, dup, dup}, md.OriginalLength)
	if stats.CrcValid != 3 {
		t.Fatalf("expected all 3 duplicates to individually pass CRC, got %d", stats.CrcValid)
	}
	if stats.CrcConflict != 0 {
		t.Fatalf("identical duplicates should not conflict, got %d", stats.CrcConflict)
	}
}

func TestDecodeCountsConflictingDuplicates(t *testing.T) {
	r := newTestRegistry(t)
	data1 := bytes.Repeat([]byte{0x00}, frame.PayloadLen)
	data2 := bytes.Repeat([]byte{0xFF}, frame.PayloadLen)

	o1, _, err := Encode(r, 1, 0, data1)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	o2, _, err := Encode(r, 1, 0, data2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, stats := Decode(r, 1, 0, []string{o1[0].String(), o2[0].String()}, frame.PayloadLen)
	if stats.CrcValid != 2 {
		t.Fatalf("expected both candidates to pass CRC individually, got %d", stats.CrcValid)
	}
	if stats.CrcConflict != 1 {
		t.Fatalf("expected one conflict between the two addr-0 payloads, got %d", stats.CrcConflict)
	}
}

func TestEncodeMissingPrimersFails(t *testing.T) {
	r := primer.NewRegistry()
	_, _, err := Encode(r, 9, 9, []byte("data"))
	if !errors.Is(err, primer.ErrPrimerMissing) {
		t.Fatalf("expected ErrPrimerMissing, got %v", err)
	}
}

func TestDecodeUnclassifiedWhenPrimersMissing(t *testing.T) {
	r := primer.NewRegistry()
	_, stats := Decode(r, 9, 9, []string{"ACGTACGT"}, -1)
	if stats.Unclassified != 1 {
		t.Fatalf("expected the single candidate to be unclassified, got %+v", stats)
	}
}

func TestEncodeEmptyDataProducesOneChunk(t *testing.T) {
	r := newTestRegistry(t)
	oligos, md, err := Encode(r, 1, 0, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(oligos) != 1 || md.NumOligos != 1 {
		t.Fatalf("expected one all-zero chunk for empty input, got %d oligos", len(oligos))
	}
}

func flipChar(s string, i int) string {
	var repl byte
	switch s[i] {
	case 'A':
		repl = 'G'
	case 'C':
		repl = 'T'
	case 'G':
		repl = 'A'
	default:
		repl = 'C'
	}
	return s[:i] + string(repl) + s[i+1:]
}
