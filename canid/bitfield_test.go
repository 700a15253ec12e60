package canid

import (
	"testing"

	"go.viam.com/test"
)

func TestExtractBits(t *testing.T) {
	const id = 0x0CF00400

	test.That(t, extractBits(id, 26, 3), test.ShouldEqual, 3)
	test.That(t, extractBits(id, 25, 1), test.ShouldEqual, 0)
	test.That(t, extractBits(id, 24, 1), test.ShouldEqual, 0)
	test.That(t, extractBits(id, 16, 8), test.ShouldEqual, 0xF0)
	test.That(t, extractBits(id, 8, 8), test.ShouldEqual, 4)
	test.That(t, extractBits(id, 0, 8), test.ShouldEqual, 0)

	test.That(t, extractBits(^uint64(0), 63, 1), test.ShouldEqual, 1)
	test.That(t, extractBits(^uint64(0), 0, 64), test.ShouldEqual, ^uint64(0))
}

func TestPackBits(t *testing.T) {
	var v uint64
	v = packBits(v, 26, 3, 3)
	v = packBits(v, 16, 8, 0xF0)
	v = packBits(v, 8, 8, 4)
	test.That(t, v, test.ShouldEqual, 0x0CF00400)

	// Packing replaces the old field value.
	v = packBits(0xFFFFFFFF, 8, 8, 0)
	test.That(t, v, test.ShouldEqual, 0xFFFF00FF)
}

func TestBitFieldPanics(t *testing.T) {
	t.Run("field wider than region", func(t *testing.T) {
		test.That(t, func() { packBits(0, 0, 3, 8) }, test.ShouldPanic)
	})
	t.Run("region past bit 63", func(t *testing.T) {
		test.That(t, func() { extractBits(0, 60, 8) }, test.ShouldPanic)
	})
	t.Run("zero width", func(t *testing.T) {
		test.That(t, func() { extractBits(0, 0, 0) }, test.ShouldPanic)
	})
}
