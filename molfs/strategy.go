// Package molfs implements the file splitter/reassembler (C6) and the
// explicit Session interface that replaces the duck-typed MolFS object
// referenced in spec.md §9.
package molfs

// Strategy decides which pools receive a given block. It is the
// "(block_idx, total_blocks) -> list<pool>" callback from spec.md §9,
// re-architected as an interface with a small set of built-ins plus room
// for caller-supplied policies.
type Strategy interface {
	Pools(blockIndex, totalBlocks int) []uint32
}

// Single always dispatches every block to one pool.
type Single struct {
	Pool uint32
}

func (s Single) Pools(blockIndex, totalBlocks int) []uint32 {
	return []uint32{s.Pool}
}

// RoundRobin cycles blocks across a fixed list of pools, one pool per
// block.
type RoundRobin struct {
	PoolList []uint32
}

func (r RoundRobin) Pools(blockIndex, totalBlocks int) []uint32 {
	if len(r.PoolList) == 0 {
		return nil
	}
	return []uint32{r.PoolList[blockIndex%len(r.PoolList)]}
}

// MirrorAll sends every block to every pool in the list, for redundancy.
type MirrorAll struct {
	PoolList []uint32
}

func (m MirrorAll) Pools(blockIndex, totalBlocks int) []uint32 {
	out := make([]uint32, len(m.PoolList))
	copy(out, m.PoolList)
	return out
}

// StrategyFunc adapts a plain function to the Strategy interface, for
// caller-supplied policies that don't need any state.
type StrategyFunc func(blockIndex, totalBlocks int) []uint32

func (f StrategyFunc) Pools(blockIndex, totalBlocks int) []uint32 {
	return f(blockIndex, totalBlocks)
}
