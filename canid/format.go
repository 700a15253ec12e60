//go:build !canid_nofmt

package canid

import "fmt"

// Hex rendering sits behind the canid_nofmt tag so constrained builds can
// drop the text surface while keeping every numeric accessor.

// String renders the identifier as three upper-case hex digits.
func (id Standard) String() string {
	return fmt.Sprintf("%03X", id.bits)
}

// String renders the identifier as eight upper-case hex digits.
func (id Extended) String() string {
	return fmt.Sprintf("%08X", id.bits)
}

// String renders the group number as five upper-case hex digits.
func (p PGN) String() string {
	return fmt.Sprintf("%05X", uint32(p))
}

// String renders the name as sixteen upper-case hex digits.
func (n Name) String() string {
	return fmt.Sprintf("%016X", uint64(n))
}
