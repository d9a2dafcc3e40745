package block

// Metadata is the per-block sidecar described in spec.md §6: the only
// place the original (pre-padding) byte length of a block survives, so a
// decoder without it falls back to K*12 and leaves any trailing zero
// padding for a higher layer to trim.
type Metadata struct {
	BlockIndex     uint32 `json:"block_index"`
	PoolID         uint32 `json:"pool_id"`
	OriginalLength int    `json:"original_block_length_bytes"`
	NumOligos      int    `json:"num_oligos"`
}
