package canid

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

var testName = NameFields{
	ArbitraryAddress:      true,
	IndustryGroup:         0,
	VehicleSystemInstance: 5,
	VehicleSystem:         6,
	Reserved:              false,
	Function:              5,
	FunctionInstance:      2,
	ECUInstance:           1,
	ManufacturerCode:      0x122,
	IdentityNumber:        0xB0309,
}

func TestNameWire(t *testing.T) {
	name, err := testName.Name()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name.Bits(), test.ShouldEqual, uint64(0x850C0511244B0309))

	// Names travel least significant byte first.
	wire := [8]byte{0x09, 0x03, 0x4B, 0x24, 0x11, 0x05, 0x0C, 0x85}
	test.That(t, name.Bytes(), test.ShouldResemble, wire)
	test.That(t, NameFromBytes(wire), test.ShouldEqual, name)
}

func TestNameFieldsRoundTrip(t *testing.T) {
	name, err := testName.Name()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name.Fields(), test.ShouldResemble, testName)

	test.That(t, name.ArbitraryAddress(), test.ShouldBeTrue)
	test.That(t, name.IndustryGroup(), test.ShouldEqual, 0)
	test.That(t, name.VehicleSystemInstance(), test.ShouldEqual, 5)
	test.That(t, name.VehicleSystem(), test.ShouldEqual, 6)
	test.That(t, name.Reserved(), test.ShouldBeFalse)
	test.That(t, name.Function(), test.ShouldEqual, 5)
	test.That(t, name.FunctionInstance(), test.ShouldEqual, 2)
	test.That(t, name.ECUInstance(), test.ShouldEqual, 1)
	test.That(t, name.ManufacturerCode(), test.ShouldEqual, 0x122)
	test.That(t, name.IdentityNumber(), test.ShouldEqual, 0xB0309)
}

func TestNameFieldWidths(t *testing.T) {
	for _, tc := range []struct {
		Case   string
		Fields NameFields
	}{
		{"industry group", NameFields{IndustryGroup: 8}},
		{"vehicle system instance", NameFields{VehicleSystemInstance: 16}},
		{"vehicle system", NameFields{VehicleSystem: 128}},
		{"function instance", NameFields{FunctionInstance: 32}},
		{"ecu instance", NameFields{ECUInstance: 8}},
		{"manufacturer code", NameFields{ManufacturerCode: 0x800}},
		{"identity number", NameFields{IdentityNumber: 0x200000}},
	} {
		t.Run(tc.Case, func(t *testing.T) {
			_, err := tc.Fields.Name()
			test.That(t, errors.Is(err, ErrValueOutOfRange), test.ShouldBeTrue)
		})
	}
}

func TestParseName(t *testing.T) {
	name, err := ParseName("850C0511244B0309")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name.Bits(), test.ShouldEqual, uint64(0x850C0511244B0309))

	// Any 64-bit value is a valid name, so only the digit count can fail.
	_, err = ParseName("0850C0511244B0309")
	test.That(t, errors.Is(err, ErrHexTooLong), test.ShouldBeTrue)

	_, err = ParseName("FFFFFFFFFFFFFFFF")
	test.That(t, err, test.ShouldBeNil)
}
