package canid

import (
	"errors"
	"testing"

	"github.com/brutella/can"
	"go.viam.com/test"
)

func TestExtendedFrameRoundTrip(t *testing.T) {
	id, err := ParseExtended("0CF00400")
	test.That(t, err, test.ShouldBeNil)

	frame := id.Frame()
	test.That(t, frame.ID, test.ShouldEqual, 0x8CF00400)

	back, err := ExtendedFromFrame(frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back, test.ShouldResemble, id)
}

func TestStandardFrameRoundTrip(t *testing.T) {
	id, err := NewStandard(0x123)
	test.That(t, err, test.ShouldBeNil)

	frame := id.Frame()
	test.That(t, frame.ID, test.ShouldEqual, 0x123)

	back, err := StandardFromFrame(frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back, test.ShouldResemble, id)
}

func TestFrameFormatMismatch(t *testing.T) {
	for _, tc := range []struct {
		Case string
		ID   uint32
	}{
		{"error frame", 0x20000123},
		{"remote request", 0xC0000123},
		{"base format", 0x00000123},
	} {
		t.Run(tc.Case, func(t *testing.T) {
			_, err := ExtendedFromFrame(can.Frame{ID: tc.ID})
			test.That(t, errors.Is(err, ErrFrameFormat), test.ShouldBeTrue)
		})
	}

	_, err := StandardFromFrame(can.Frame{ID: 0x8CF00400})
	test.That(t, errors.Is(err, ErrFrameFormat), test.ShouldBeTrue)

	_, err = StandardFromFrame(can.Frame{ID: 0x40000123})
	test.That(t, errors.Is(err, ErrFrameFormat), test.ShouldBeTrue)
}
