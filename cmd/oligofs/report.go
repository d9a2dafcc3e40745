package main

import (
	"github.com/lanl/oligofs/block"
	"github.com/lanl/oligofs/internal/logging"
)

func logReport(blockIndex int, pool uint32, stats block.Stats) {
	log := logging.WithPhase("decode")
	log.Info().
		Int("block", blockIndex).
		Uint32("pool", pool).
		Int("crc_valid", stats.CrcValid).
		Int("crc_invalid", stats.CrcInvalid).
		Int("crc_conflict", stats.CrcConflict).
		Int("unclassified", stats.Unclassified).
		Int("malformed", stats.Malformed).
		Uints32("missing_addresses", stats.MissingAddresses).
		Msg("block decoded")
}
