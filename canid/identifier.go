// Package canid decodes and encodes the bit-packed identifier fields of
// Controller Area Network frames: the 11-bit identifiers of the classical
// base frame format and the 29-bit extended identifiers structured by SAE
// J1939 for heavy vehicle networks.
package canid

import (
	"cmp"
	"fmt"
)

// Maximum raw values for the two identifier schemes.
const (
	StandardMax uint16 = 0x7FF      // 11 bits
	ExtendedMax uint32 = 0x1FFFFFFF // 29 bits
)

// Bit layout of a 29-bit identifier, most significant field first:
// Priority(3) | Reserved(1) | DataPage(1) | PDUFormat(8) | PDUSpecific(8) | SourceAddress(8).
// J1939 calls the reserved bit the "Extended Data Page" (EDP).
const (
	offSourceAddress = 0
	offPDUSpecific   = 8
	offPDUFormat     = 16
	offDataPage      = 24
	offReserved      = 25
	offPriority      = 26
)

// Standard is an 11-bit identifier of the classical CAN base frame format.
// The zero value is identifier zero.
type Standard struct {
	bits uint16
}

// NewStandard returns the identifier for the given raw value. Values above
// StandardMax are rejected with ErrValueOutOfRange.
func NewStandard(bits uint16) (Standard, error) {
	if bits > StandardMax {
		return Standard{}, fmt.Errorf("identifier %#x exceeds %#x: %w", bits, StandardMax, ErrValueOutOfRange)
	}
	return Standard{bits: bits}, nil
}

// StandardFromBits truncates the given value to 11 bits. It never fails;
// use NewStandard to reject wide values instead of masking them off.
func StandardFromBits(bits uint16) Standard {
	return Standard{bits: bits & StandardMax}
}

// ParseStandard reads an identifier from at most four hex digits, the
// width of the container. Values above StandardMax are rejected.
func ParseStandard(s string) (Standard, error) {
	bits, err := parseHex(s, 4, uint64(StandardMax))
	if err != nil {
		return Standard{}, err
	}
	return Standard{bits: uint16(bits)}, nil
}

// Bits returns the raw identifier value.
func (id Standard) Bits() uint16 {
	return id.bits
}

// Compare orders identifiers by raw value.
func (id Standard) Compare(other Standard) int {
	return cmp.Compare(id.bits, other.bits)
}

// Extended is a 29-bit identifier of the CAN extended frame format carrying
// the J1939 sub-fields. The zero value is identifier zero.
type Extended struct {
	bits uint32
}

// NewExtended returns the identifier for the given raw value. Values above
// ExtendedMax are rejected with ErrValueOutOfRange.
func NewExtended(bits uint32) (Extended, error) {
	if bits > ExtendedMax {
		return Extended{}, fmt.Errorf("identifier %#x exceeds %#x: %w", bits, ExtendedMax, ErrValueOutOfRange)
	}
	return Extended{bits: bits}, nil
}

// ExtendedFromBits truncates the given value to 29 bits. It never fails;
// use NewExtended to reject wide values instead of masking them off.
func ExtendedFromBits(bits uint32) Extended {
	return Extended{bits: bits & ExtendedMax}
}

// ParseExtended reads an identifier from at most eight hex digits.
func ParseExtended(s string) (Extended, error) {
	bits, err := parseHex(s, 8, uint64(ExtendedMax))
	if err != nil {
		return Extended{}, err
	}
	return Extended{bits: uint32(bits)}, nil
}

// Bits returns the raw identifier value.
func (id Extended) Bits() uint32 {
	return id.bits
}

// Compare orders identifiers by raw value.
func (id Extended) Compare(other Extended) int {
	return cmp.Compare(id.bits, other.bits)
}

// Priority returns the 3-bit transmission priority. Lower values win
// arbitration.
func (id Extended) Priority() uint8 {
	return uint8(extractBits(uint64(id.bits), offPriority, 3))
}

// Reserved reports the reserved bit, the J1939 extended data page.
func (id Extended) Reserved() bool {
	return extractBits(uint64(id.bits), offReserved, 1) == 1
}

// DataPage reports the data page bit.
func (id Extended) DataPage() bool {
	return extractBits(uint64(id.bits), offDataPage, 1) == 1
}

// PDUFormat returns the 8-bit PF field.
func (id Extended) PDUFormat() PDUFormat {
	return PDUFormat(extractBits(uint64(id.bits), offPDUFormat, 8))
}

// PDUSpecific returns the raw 8-bit PS field, whatever its interpretation.
func (id Extended) PDUSpecific() uint8 {
	return uint8(extractBits(uint64(id.bits), offPDUSpecific, 8))
}

// SourceAddress returns the address of the transmitting node.
func (id Extended) SourceAddress() uint8 {
	return uint8(extractBits(uint64(id.bits), offSourceAddress, 8))
}

// DestinationAddress returns the target node address. Present only for
// PDU1 (point-to-point) identifiers.
func (id Extended) DestinationAddress() (uint8, bool) {
	if id.PDUFormat().PDU2() {
		return 0, false
	}
	return id.PDUSpecific(), true
}

// GroupExtension returns the PGN group extension byte. Present only for
// PDU2 (broadcast) identifiers.
func (id Extended) GroupExtension() (uint8, bool) {
	if !id.PDUFormat().PDU2() {
		return 0, false
	}
	return id.PDUSpecific(), true
}

// CommunicationMode reports whether the identifier addresses a single node
// or the whole bus.
func (id Extended) CommunicationMode() CommunicationMode {
	return id.PDUFormat().Mode()
}

// PGN returns the 18-bit parameter group number. For point-to-point
// identifiers the low byte is zero: the destination is not part of the
// group identity.
func (id Extended) PGN() PGN {
	pgn := uint32(extractBits(uint64(id.bits), offDataPage, 2)) << 16
	pgn |= uint32(id.PDUFormat()) << 8
	if id.PDUFormat().PDU2() {
		pgn |= uint32(id.PDUSpecific())
	}
	return PGN(pgn)
}

// Split breaks the identifier into the four values bus applications key on.
// The destination is 0xFF, the global address, for broadcast identifiers.
func (id Extended) Split() (priority uint8, pgn PGN, src, dst uint8) {
	dst = 0xFF
	if d, ok := id.DestinationAddress(); ok {
		dst = d
	}
	return id.Priority(), id.PGN(), id.SourceAddress(), dst
}

// Compose builds an identifier from a group number and the addressing
// values. PDU1 groups take dst as the PS byte; PDU2 groups carry their own
// group extension and ignore dst. Priorities above 7 and group numbers
// above PGNMax are rejected with ErrValueOutOfRange.
func Compose(priority uint8, pgn PGN, src, dst uint8) (Extended, error) {
	if priority > 7 {
		return Extended{}, fmt.Errorf("priority %d exceeds 7: %w", priority, ErrValueOutOfRange)
	}
	if uint32(pgn) > PGNMax {
		return Extended{}, fmt.Errorf("pgn %#x exceeds %#x: %w", uint32(pgn), PGNMax, ErrValueOutOfRange)
	}
	ps := dst
	if pgn.PDUFormat().PDU2() {
		ps = pgn.PDUSpecific()
	}
	var bits uint64
	bits = packBits(bits, offPriority, 3, uint64(priority))
	bits = packBits(bits, offDataPage, 2, uint64(pgn.Bits()>>16))
	bits = packBits(bits, offPDUFormat, 8, uint64(pgn.PDUFormat()))
	bits = packBits(bits, offPDUSpecific, 8, uint64(ps))
	bits = packBits(bits, offSourceAddress, 8, uint64(src))
	return Extended{bits: uint32(bits)}, nil
}

// Parts carries the raw sub-fields of a 29-bit identifier.
type Parts struct {
	Priority      uint8
	Reserved      bool
	DataPage      bool
	PDUFormat     uint8
	PDUSpecific   uint8
	SourceAddress uint8
}

// Parts decomposes the identifier into its raw sub-fields.
func (id Extended) Parts() Parts {
	return Parts{
		Priority:      id.Priority(),
		Reserved:      id.Reserved(),
		DataPage:      id.DataPage(),
		PDUFormat:     uint8(id.PDUFormat()),
		PDUSpecific:   id.PDUSpecific(),
		SourceAddress: id.SourceAddress(),
	}
}

// FromParts assembles an identifier from raw sub-fields. Priorities above 7
// are rejected with ErrValueOutOfRange; the byte-wide fields accept their
// full range.
func FromParts(p Parts) (Extended, error) {
	if p.Priority > 7 {
		return Extended{}, fmt.Errorf("priority %d exceeds 7: %w", p.Priority, ErrValueOutOfRange)
	}
	var bits uint64
	bits = packBits(bits, offPriority, 3, uint64(p.Priority))
	bits = packBits(bits, offReserved, 1, boolBit(p.Reserved))
	bits = packBits(bits, offDataPage, 1, boolBit(p.DataPage))
	bits = packBits(bits, offPDUFormat, 8, uint64(p.PDUFormat))
	bits = packBits(bits, offPDUSpecific, 8, uint64(p.PDUSpecific))
	bits = packBits(bits, offSourceAddress, 8, uint64(p.SourceAddress))
	return Extended{bits: uint32(bits)}, nil
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
