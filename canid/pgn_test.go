package canid

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestPDUFormatBoundary(t *testing.T) {
	test.That(t, PDUFormat(239).PDU1(), test.ShouldBeTrue)
	test.That(t, PDUFormat(239).PDU2(), test.ShouldBeFalse)
	test.That(t, PDUFormat(239).Mode(), test.ShouldEqual, ModeP2P)

	test.That(t, PDU2Min.PDU1(), test.ShouldBeFalse)
	test.That(t, PDU2Min.PDU2(), test.ShouldBeTrue)
	test.That(t, PDU2Min.Mode(), test.ShouldEqual, ModeBroadcast)

	test.That(t, PDUFormat(255).PDU2(), test.ShouldBeTrue)
	test.That(t, PDUFormat(0).PDU1(), test.ShouldBeTrue)
}

func TestPGNFields(t *testing.T) {
	t.Run("broadcast group", func(t *testing.T) {
		pgn, err := NewPGN(0xFEF2)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pgn.Reserved(), test.ShouldBeFalse)
		test.That(t, pgn.DataPage(), test.ShouldBeFalse)
		test.That(t, pgn.PDUFormat(), test.ShouldEqual, 0xFE)
		test.That(t, pgn.PDUSpecific(), test.ShouldEqual, 0xF2)
		test.That(t, pgn.CommunicationMode(), test.ShouldEqual, ModeBroadcast)

		ge, ok := pgn.GroupExtension()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, ge, test.ShouldEqual, 0xF2)
	})

	t.Run("point to point group", func(t *testing.T) {
		pgn, err := NewPGN(0x1EF00)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pgn.Reserved(), test.ShouldBeFalse)
		test.That(t, pgn.DataPage(), test.ShouldBeTrue)
		test.That(t, pgn.PDUFormat(), test.ShouldEqual, 0xEF)
		test.That(t, pgn.CommunicationMode(), test.ShouldEqual, ModeP2P)

		_, ok := pgn.GroupExtension()
		test.That(t, ok, test.ShouldBeFalse)
	})

	t.Run("reserved page", func(t *testing.T) {
		pgn, err := NewPGN(0x30000)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pgn.Reserved(), test.ShouldBeTrue)
		test.That(t, pgn.DataPage(), test.ShouldBeTrue)
	})
}

func TestPGNRange(t *testing.T) {
	pgn, err := NewPGN(PGNMax)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pgn.Bits(), test.ShouldEqual, PGNMax)

	_, err = NewPGN(PGNMax + 1)
	test.That(t, errors.Is(err, ErrValueOutOfRange), test.ShouldBeTrue)
}

func TestParsePGN(t *testing.T) {
	pgn, err := ParsePGN("1EF00")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pgn.Bits(), test.ShouldEqual, 126720)

	pgn, err = ParsePGN("3ffff")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pgn.Bits(), test.ShouldEqual, PGNMax)

	_, err = ParsePGN("40000")
	test.That(t, errors.Is(err, ErrValueOutOfRange), test.ShouldBeTrue)

	_, err = ParsePGN("03FFFF")
	test.That(t, errors.Is(err, ErrHexTooLong), test.ShouldBeTrue)
}

func TestAssignmentRanges(t *testing.T) {
	for _, tc := range []struct {
		In   uint32
		Want Assignment
	}{
		{0x00000, AssignmentSAE},
		{0x0EE00, AssignmentSAE},
		{0x0EE01, AssignmentUnknown},
		{0x0EF00, AssignmentManufacturer},
		{0x0EF01, AssignmentUnknown},
		{0x0F000, AssignmentSAE},
		{0x0F004, AssignmentSAE},
		{0x0FEF2, AssignmentSAE},
		{0x0FEFF, AssignmentSAE},
		{0x0FF00, AssignmentManufacturer},
		{0x0FF21, AssignmentManufacturer},
		{0x0FFFF, AssignmentManufacturer},
		{0x10000, AssignmentSAE},
		{0x1EE00, AssignmentSAE},
		{0x1EE01, AssignmentUnknown},
		{0x1EF00, AssignmentManufacturer},
		{0x1EF01, AssignmentUnknown},
		{0x1F000, AssignmentSAE},
		{0x1FEFF, AssignmentSAE},
		{0x1FF00, AssignmentManufacturer},
		{0x1FFFF, AssignmentManufacturer},
		{0x20000, AssignmentUnknown},
		{0x3FFFF, AssignmentUnknown},
	} {
		pgn, err := NewPGN(tc.In)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, pgn.Assignment(), test.ShouldEqual, tc.Want)
	}
}

func TestModeStrings(t *testing.T) {
	test.That(t, ModeP2P.String(), test.ShouldEqual, "P2P")
	test.That(t, ModeBroadcast.String(), test.ShouldEqual, "Broadcast")

	test.That(t, AssignmentSAE.String(), test.ShouldEqual, "SAE")
	test.That(t, AssignmentManufacturer.String(), test.ShouldEqual, "Manufacturer")
	test.That(t, AssignmentUnknown.String(), test.ShouldEqual, "Unknown")
}
