// Package frame builds and parses the fixed-geometry oligo described in
// spec.md §3: forward primer, channel-coded address, channel-coded
// payload, channel-coded CRC32, reverse primer.
package frame

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/lanl/oligofs/channel"
	"github.com/lanl/oligofs/oligo"
)

const (
	AddressBits = 19
	PayloadBits = 96
	PayloadLen  = PayloadBits / 8 // 12 bytes
	CrcBits     = 32

	MaxAddress = 1 << AddressBits // 524288, addresses are in [0, MaxAddress)
)

// ErrMalformed is returned when a candidate sequence doesn't have the
// expected field geometry for the given primer lengths.
var ErrMalformed = errors.New("frame: malformed oligo")

// ErrAddressRange is returned when an address doesn't fit in AddressBits.
var ErrAddressRange = errors.New("frame: address out of range")

// ErrPayloadSize is returned when the payload isn't exactly PayloadLen bytes.
var ErrPayloadSize = errors.New("frame: payload must be exactly 12 bytes")

// Build assembles one oligo: fwd ∥ addr_dna ∥ payload_dna ∥ crc_dna ∥ rev.
// crc is computed over the raw payload bytes, per the IEEE 802.3 CRC32
// polynomial, before channel coding.
func Build(fwd, rev oligo.Oligo, address uint32, payload []byte) (oligo.Oligo, error) {
	if address >= MaxAddress {
		return nil, fmt.Errorf("%w: %d", ErrAddressRange, address)
	}
	if len(payload) != PayloadLen {
		return nil, fmt.Errorf("%w: got %d", ErrPayloadSize, len(payload))
	}

	crc := crc32.ChecksumIEEE(payload)

	addrDNA := channel.EncodeBitsToDNA(channel.UintToBits(uint64(address), AddressBits))
	payloadDNA := channel.EncodeBitsToDNA(channel.BytesToBits(payload))
	crcDNA := channel.EncodeBitsToDNA(channel.UintToBits(uint64(crc), CrcBits))

	o := fwd.Clone()
	o.Append(addrDNA)
	o.Append(payloadDNA)
	o.Append(crcDNA)
	o.Append(rev)

	return o, nil
}

// Parsed is the result of a successful Parse.
type Parsed struct {
	Forward oligo.Oligo
	Reverse oligo.Oligo
	Address uint32
	Payload []byte
	Crc     uint32
}

// Parse slices s into its five fields using the known primer lengths and
// decodes the three channel-coded fields. It does not recompute or check
// the CRC32 — that's the caller's job (spec.md §4.4 step 3).
func Parse(s oligo.Oligo, fwdLen, revLen int) (*Parsed, error) {
	want := fwdLen + AddressBits + PayloadBits + CrcBits + revLen
	if s.Len() != want {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformed, s.Len(), want)
	}

	addrStart := fwdLen
	payloadStart := addrStart + AddressBits
	crcStart := payloadStart + PayloadBits
	revStart := crcStart + CrcBits

	fwd := s.Slice(0, addrStart)
	addrDNA := s.Slice(addrStart, payloadStart)
	payloadDNA := s.Slice(payloadStart, crcStart)
	crcDNA := s.Slice(crcStart, revStart)
	rev := s.Slice(revStart, s.Len())

	addrBits, err := channel.DecodeDNAToBits(addrDNA)
	if err != nil {
		return nil, fmt.Errorf("%w: address field: %v", ErrMalformed, err)
	}

	payloadBits, err := channel.DecodeDNAToBits(payloadDNA)
	if err != nil {
		return nil, fmt.Errorf("%w: payload field: %v", ErrMalformed, err)
	}

	crcBits, err := channel.DecodeDNAToBits(crcDNA)
	if err != nil {
		return nil, fmt.Errorf("%w: crc field: %v", ErrMalformed, err)
	}

	return &Parsed{
		Forward: fwd,
		Reverse: rev,
		Address: uint32(channel.BitsToUint(addrBits)),
		Payload: channel.BitsToBytes(payloadBits),
		Crc:     uint32(channel.BitsToUint(crcBits)),
	}, nil
}

// Checksum recomputes the IEEE 802.3 CRC32 of a raw payload.
func Checksum(payload []byte) uint32 {
	return crc32.ChecksumIEEE(payload)
}
