package canid

import (
	"encoding/binary"
	"fmt"
)

// Name is the 64-bit J1939 device identity. Bit layout, most significant
// field first: ArbitraryAddress(1) | IndustryGroup(3) |
// VehicleSystemInstance(4) | VehicleSystem(7) | Reserved(1) | Function(8) |
// FunctionInstance(5) | ECUInstance(3) | ManufacturerCode(11) |
// IdentityNumber(21).
type Name uint64

const (
	offIdentityNumber        = 0
	offManufacturerCode      = 21
	offECUInstance           = 32
	offFunctionInstance      = 35
	offFunction              = 40
	offNameReserved          = 48
	offVehicleSystem         = 49
	offVehicleSystemInstance = 56
	offIndustryGroup         = 60
	offArbitraryAddress      = 63
)

// NameFromBits wraps a raw 64-bit value. Every value is a valid name.
func NameFromBits(bits uint64) Name {
	return Name(bits)
}

// ParseName reads a name from at most sixteen hex digits.
func ParseName(s string) (Name, error) {
	bits, err := parseHex(s, 16, ^uint64(0))
	if err != nil {
		return 0, err
	}
	return Name(bits), nil
}

// NameFromBytes decodes the wire representation. Names travel least
// significant byte first.
func NameFromBytes(b [8]byte) Name {
	return Name(binary.LittleEndian.Uint64(b[:]))
}

// Bits returns the raw 64-bit value.
func (n Name) Bits() uint64 {
	return uint64(n)
}

// Bytes encodes the wire representation, least significant byte first.
func (n Name) Bytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n))
	return b
}

// ArbitraryAddress reports whether the ECU can negotiate its address.
func (n Name) ArbitraryAddress() bool {
	return extractBits(uint64(n), offArbitraryAddress, 1) == 1
}

// IndustryGroup returns the industry the device belongs to, such as
// on-highway or agricultural equipment.
func (n Name) IndustryGroup() uint8 {
	return uint8(extractBits(uint64(n), offIndustryGroup, 3))
}

// VehicleSystemInstance separates multiple vehicle systems on one network.
func (n Name) VehicleSystemInstance() uint8 {
	return uint8(extractBits(uint64(n), offVehicleSystemInstance, 4))
}

// VehicleSystem returns the system class within the industry group.
func (n Name) VehicleSystem() uint8 {
	return uint8(extractBits(uint64(n), offVehicleSystem, 7))
}

// Reserved reports the reserved bit. Always zero in published names.
func (n Name) Reserved() bool {
	return extractBits(uint64(n), offNameReserved, 1) == 1
}

// Function returns the device function code. Values of 128 and above are
// assigned relative to the industry group.
func (n Name) Function() uint8 {
	return uint8(extractBits(uint64(n), offFunction, 8))
}

// FunctionInstance separates devices with the same function.
func (n Name) FunctionInstance() uint8 {
	return uint8(extractBits(uint64(n), offFunctionInstance, 5))
}

// ECUInstance separates multiple ECUs of the same kind.
func (n Name) ECUInstance() uint8 {
	return uint8(extractBits(uint64(n), offECUInstance, 3))
}

// ManufacturerCode returns the 11-bit SAE-assigned manufacturer code.
func (n Name) ManufacturerCode() uint16 {
	return uint16(extractBits(uint64(n), offManufacturerCode, 11))
}

// IdentityNumber returns the manufacturer-assigned serial number.
func (n Name) IdentityNumber() uint32 {
	return uint32(extractBits(uint64(n), offIdentityNumber, 21))
}

// NameFields carries the decomposed name fields.
type NameFields struct {
	ArbitraryAddress      bool
	IndustryGroup         uint8
	VehicleSystemInstance uint8
	VehicleSystem         uint8
	Reserved              bool
	Function              uint8
	FunctionInstance      uint8
	ECUInstance           uint8
	ManufacturerCode      uint16
	IdentityNumber        uint32
}

// Fields decomposes the name.
func (n Name) Fields() NameFields {
	return NameFields{
		ArbitraryAddress:      n.ArbitraryAddress(),
		IndustryGroup:         n.IndustryGroup(),
		VehicleSystemInstance: n.VehicleSystemInstance(),
		VehicleSystem:         n.VehicleSystem(),
		Reserved:              n.Reserved(),
		Function:              n.Function(),
		FunctionInstance:      n.FunctionInstance(),
		ECUInstance:           n.ECUInstance(),
		ManufacturerCode:      n.ManufacturerCode(),
		IdentityNumber:        n.IdentityNumber(),
	}
}

// Name assembles the fields, rejecting any that overflow their bit width
// with ErrValueOutOfRange.
func (f NameFields) Name() (Name, error) {
	if f.IndustryGroup > 7 {
		return 0, fmt.Errorf("industry group %d exceeds 7: %w", f.IndustryGroup, ErrValueOutOfRange)
	}
	if f.VehicleSystemInstance > 15 {
		return 0, fmt.Errorf("vehicle system instance %d exceeds 15: %w", f.VehicleSystemInstance, ErrValueOutOfRange)
	}
	if f.VehicleSystem > 127 {
		return 0, fmt.Errorf("vehicle system %d exceeds 127: %w", f.VehicleSystem, ErrValueOutOfRange)
	}
	if f.FunctionInstance > 31 {
		return 0, fmt.Errorf("function instance %d exceeds 31: %w", f.FunctionInstance, ErrValueOutOfRange)
	}
	if f.ECUInstance > 7 {
		return 0, fmt.Errorf("ecu instance %d exceeds 7: %w", f.ECUInstance, ErrValueOutOfRange)
	}
	if f.ManufacturerCode > 0x7FF {
		return 0, fmt.Errorf("manufacturer code %d exceeds %d: %w", f.ManufacturerCode, 0x7FF, ErrValueOutOfRange)
	}
	if f.IdentityNumber > 0x1FFFFF {
		return 0, fmt.Errorf("identity number %d exceeds %d: %w", f.IdentityNumber, 0x1FFFFF, ErrValueOutOfRange)
	}

	var bits uint64
	bits = packBits(bits, offArbitraryAddress, 1, boolBit(f.ArbitraryAddress))
	bits = packBits(bits, offIndustryGroup, 3, uint64(f.IndustryGroup))
	bits = packBits(bits, offVehicleSystemInstance, 4, uint64(f.VehicleSystemInstance))
	bits = packBits(bits, offVehicleSystem, 7, uint64(f.VehicleSystem))
	bits = packBits(bits, offNameReserved, 1, boolBit(f.Reserved))
	bits = packBits(bits, offFunction, 8, uint64(f.Function))
	bits = packBits(bits, offFunctionInstance, 5, uint64(f.FunctionInstance))
	bits = packBits(bits, offECUInstance, 3, uint64(f.ECUInstance))
	bits = packBits(bits, offManufacturerCode, 11, uint64(f.ManufacturerCode))
	bits = packBits(bits, offIdentityNumber, 21, uint64(f.IdentityNumber))
	return Name(bits), nil
}
