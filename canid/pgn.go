package canid

import "fmt"

// PGNMax is the largest 18-bit parameter group number.
const PGNMax uint32 = 0x3FFFF

// PDU2Min is the first PDU format value of the broadcast range. The
// boundary is strict: PF 239 is PDU1, PF 240 is PDU2.
const PDU2Min PDUFormat = 240

// PDUFormat is the 8-bit PF field of a 29-bit identifier. Values below 240
// address a single node (PDU1), values of 240 and above address the whole
// bus (PDU2).
type PDUFormat uint8

// PDU1 reports whether the format carries a destination address.
func (pf PDUFormat) PDU1() bool {
	return pf < PDU2Min
}

// PDU2 reports whether the format is broadcast-only.
func (pf PDUFormat) PDU2() bool {
	return pf >= PDU2Min
}

// Mode returns the communication mode selected by the format.
func (pf PDUFormat) Mode() CommunicationMode {
	if pf.PDU2() {
		return ModeBroadcast
	}
	return ModeP2P
}

// CommunicationMode distinguishes addressed traffic from broadcast traffic.
type CommunicationMode uint8

const (
	// ModeP2P is point-to-point, PDU1 traffic.
	ModeP2P CommunicationMode = iota
	// ModeBroadcast is bus-wide, PDU2 traffic.
	ModeBroadcast
)

func (m CommunicationMode) String() string {
	if m == ModeBroadcast {
		return "Broadcast"
	}
	return "P2P"
}

// Assignment classifies who owns a parameter group definition.
type Assignment uint8

const (
	// AssignmentSAE marks groups assigned by the SAE standards.
	AssignmentSAE Assignment = iota
	// AssignmentManufacturer marks proprietary groups.
	AssignmentManufacturer
	// AssignmentUnknown marks group numbers with no published owner.
	AssignmentUnknown
)

func (a Assignment) String() string {
	switch a {
	case AssignmentSAE:
		return "SAE"
	case AssignmentManufacturer:
		return "Manufacturer"
	default:
		return "Unknown"
	}
}

// PGN is an 18-bit parameter group number: reserved bit, data page bit, PDU
// format byte and PDU specific byte, most significant first. Point-to-point
// groups keep their low byte zero; the destination address is carried by
// the identifier, not by the group number.
type PGN uint32

// NewPGN returns the group number for the given raw value. Values above
// PGNMax are rejected with ErrValueOutOfRange.
func NewPGN(bits uint32) (PGN, error) {
	if bits > PGNMax {
		return 0, fmt.Errorf("pgn %#x exceeds %#x: %w", bits, PGNMax, ErrValueOutOfRange)
	}
	return PGN(bits), nil
}

// ParsePGN reads a group number from at most five hex digits.
func ParsePGN(s string) (PGN, error) {
	bits, err := parseHex(s, 5, uint64(PGNMax))
	if err != nil {
		return 0, err
	}
	return PGN(bits), nil
}

// Bits returns the raw 18-bit value.
func (p PGN) Bits() uint32 {
	return uint32(p)
}

// Reserved reports the reserved bit, the J1939 extended data page.
func (p PGN) Reserved() bool {
	return extractBits(uint64(p), 17, 1) == 1
}

// DataPage reports the data page bit.
func (p PGN) DataPage() bool {
	return extractBits(uint64(p), 16, 1) == 1
}

// PDUFormat returns the 8-bit PF field.
func (p PGN) PDUFormat() PDUFormat {
	return PDUFormat(extractBits(uint64(p), 8, 8))
}

// PDUSpecific returns the low byte.
func (p PGN) PDUSpecific() uint8 {
	return uint8(extractBits(uint64(p), 0, 8))
}

// GroupExtension returns the group extension byte. Present only for
// broadcast (PDU2) groups.
func (p PGN) GroupExtension() (uint8, bool) {
	if !p.PDUFormat().PDU2() {
		return 0, false
	}
	return p.PDUSpecific(), true
}

// CommunicationMode reports the traffic mode of the group.
func (p PGN) CommunicationMode() CommunicationMode {
	return p.PDUFormat().Mode()
}

// Assignment reports who owns the group number. SAE keeps 0x0000-0xEE00,
// 0xF000-0xFEFF and their data page 1 counterparts; manufacturers get
// 0xEF00, 0xFF00-0xFFFF and counterparts; the gaps have no published owner.
func (p PGN) Assignment() Assignment {
	switch {
	case p <= 0xEE00,
		p >= 0xF000 && p <= 0xFEFF,
		p >= 0x10000 && p <= 0x1EE00,
		p >= 0x1F000 && p <= 0x1FEFF:
		return AssignmentSAE
	case p == 0xEF00,
		p >= 0xFF00 && p <= 0xFFFF,
		p == 0x1EF00,
		p >= 0x1FF00 && p <= 0x1FFFF:
		return AssignmentManufacturer
	default:
		return AssignmentUnknown
	}
}
