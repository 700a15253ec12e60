package canid

import "fmt"

// extractBits returns the width-bit field of v starting offset bits from
// the least significant bit.
func extractBits(v uint64, offset, width uint) uint64 {
	checkField(offset, width)
	return (v >> offset) & fieldMask(width)
}

// packBits writes field into the width-bit region of v starting offset bits
// from the least significant bit, replacing whatever was there. The field
// must fit in width bits.
func packBits(v uint64, offset, width uint, field uint64) uint64 {
	checkField(offset, width)
	if field&^fieldMask(width) != 0 {
		panic(fmt.Sprintf("canid: field %#x wider than %d bits", field, width))
	}
	return v&^(fieldMask(width)<<offset) | field<<offset
}

func fieldMask(width uint) uint64 {
	return 1<<width - 1
}

// Bad offsets and widths are defects in this package, never user input.
func checkField(offset, width uint) {
	if width == 0 || offset+width > 64 {
		panic(fmt.Sprintf("canid: bit field offset %d width %d out of range", offset, width))
	}
}
