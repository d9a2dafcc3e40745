package block

import (
	"runtime"
	"sort"
	"sync"

	"github.com/lanl/oligofs/frame"
	"github.com/lanl/oligofs/oligo/long"
	"github.com/lanl/oligofs/primer"
)

// Stats accumulates the drop-and-count outcomes from spec.md §4.4/§7.
// Nothing here is fatal: apart from CrcValid, which counts the oligos that
// passed the CRC gate, every count is a class of oligo that was silently
// excluded from the reconstructed bytes.
type Stats struct {
	CrcValid         int
	CrcInvalid       int
	CrcConflict      int // two CRC-valid payloads disagreed for one address
	Unclassified     int // no registered primer pair matched
	Malformed        int // wrong length, or a non-ACGT base in a coded field
	MissingAddresses []uint32
}

// classified is the per-candidate outcome of the parallel classify/parse
// pass, carried through to the sequential dedup/assemble pass below.
type classified struct {
	matched  bool // reached the registered (pool, block)
	parseErr bool
	address  uint32
	payload  []byte
	crc      uint32
	crcOK    bool
}

// Decode classifies candidates against the primers registered for
// (pool, block), validates CRCs, deduplicates by address, and
// reconstructs the block's bytes in address order. originalLength, if
// >= 0, trims the trailing zero padding of the final chunk and bounds
// the number of expected addresses; pass -1 when it isn't known, and the
// reconstructed length is (highest parsed address + 1) * 12, where the
// highest parsed address includes candidates that then fail the CRC.
//
// Classification and CRC validation run in parallel across candidates,
// each worker taking a contiguous slice so results land back in input
// order; the dedup/assemble pass that follows is sequential, since it
// needs first-encountered order to resolve conflicting duplicates.
func Decode(reg *primer.Registry, pool, blk uint32, candidates []string, originalLength int) ([]byte, Stats) {
	var stats Stats

	entry, ok := reg.Lookup(pool, blk)
	if !ok {
		stats.Unclassified = len(candidates)
		return nil, stats
	}

	results := classifyAll(reg, entry, candidates)

	payloads := make(map[uint32][]byte)
	maxAddr := -1

	for _, c := range results {
		if !c.matched {
			stats.Unclassified++
			continue
		}
		if c.parseErr {
			stats.Malformed++
			continue
		}

		if int(c.address) > maxAddr {
			maxAddr = int(c.address)
		}

		if !c.crcOK {
			stats.CrcInvalid++
			continue
		}
		stats.CrcValid++

		if existing, seen := payloads[c.address]; seen {
			if !bytesEqual(existing, c.payload) {
				stats.CrcConflict++
			}
			continue // first encountered wins either way
		}

		payloads[c.address] = c.payload
	}

	k := maxAddr + 1
	if originalLength >= 0 {
		k = (originalLength + frame.PayloadLen - 1) / frame.PayloadLen
		if k == 0 {
			k = 1
		}
	}

	data := make([]byte, k*frame.PayloadLen)
	for addr := 0; addr < k; addr++ {
		chunk, ok := payloads[uint32(addr)]
		if !ok {
			stats.MissingAddresses = append(stats.MissingAddresses, uint32(addr))
			continue
		}
		copy(data[addr*frame.PayloadLen:], chunk)
	}

	if originalLength >= 0 && originalLength < len(data) {
		data = data[:originalLength]
	}

	sort.Slice(stats.MissingAddresses, func(i, j int) bool { return stats.MissingAddresses[i] < stats.MissingAddresses[j] })

	return data, stats
}

// classifyAll runs classification, framing, and CRC checking for every
// candidate, split across a fixed number of worker goroutines each
// taking a contiguous range — mirroring the chunking of the teacher's
// utils.Pool.Parallel fan-out, but joined with a WaitGroup so every
// result is in place before the caller's sequential pass begins.
func classifyAll(reg *primer.Registry, entry primer.Entry, candidates []string) []classified {
	results := make([]classified, len(candidates))

	procs := runtime.GOMAXPROCS(0)
	if procs > len(candidates) {
		procs = len(candidates)
	}
	if procs < 1 {
		procs = 1
	}

	perProc := 1 + len(candidates)/procs

	var wg sync.WaitGroup
	for i := 0; i < procs; i++ {
		start := i * perProc
		if start >= len(candidates) {
			break
		}
		end := start + perProc
		if end > len(candidates) {
			end = len(candidates)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				results[j] = classifyOne(reg, entry, candidates[j])
			}
		}(start, end)
	}
	wg.Wait()

	return results
}

func classifyOne(reg *primer.Registry, entry primer.Entry, s string) classified {
	e, ok := reg.Classify(s)
	if !ok || e.Key != entry.Key {
		return classified{matched: false}
	}

	ol, ok := long.FromString(s)
	if !ok {
		return classified{matched: true, parseErr: true}
	}

	parsed, err := frame.Parse(ol, len(e.Forward), len(e.Reverse))
	if err != nil {
		return classified{matched: true, parseErr: true}
	}

	crc := frame.Checksum(parsed.Payload)
	return classified{
		matched: true,
		address: parsed.Address,
		payload: parsed.Payload,
		crc:     parsed.Crc,
		crcOK:   crc == parsed.Crc,
	}
}

func bytesEqual(a, b []byte) bool {
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
