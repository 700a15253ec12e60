package canid

import (
	"errors"
	"fmt"
	"unicode"
)

// Errors returned by parsing and validated construction.
var (
	// ErrInvalidHexCharacter reports a character outside 0-9, a-f, A-F, or
	// an empty input.
	ErrInvalidHexCharacter = errors.New("invalid hex character")

	// ErrHexTooLong reports more hex digits than the identifier scheme
	// allows.
	ErrHexTooLong = errors.New("hex string too long")

	// ErrValueOutOfRange reports a value that does not fit the scheme's bit
	// width.
	ErrValueOutOfRange = errors.New("value out of range")
)

// parseHex reads an unprefixed, case-insensitive hex string of at most
// maxDigits digits whose value is at most max. Shorter strings read as
// their numeric value.
func parseHex(s string, maxDigits int, max uint64) (uint64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty string: %w", ErrInvalidHexCharacter)
	}
	if len(s) > maxDigits {
		return 0, fmt.Errorf("%q has %d digits, limit is %d: %w", s, len(s), maxDigits, ErrHexTooLong)
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		n := scanNibble(s[i])
		if n > 15 {
			return 0, fmt.Errorf("%q index %d: %w", s, i, ErrInvalidHexCharacter)
		}
		v = v<<4 | uint64(n)
	}
	if v > max {
		return 0, fmt.Errorf("%q exceeds %#x: %w", s, max, ErrValueOutOfRange)
	}
	return v, nil
}

func scanNibble(c byte) byte {
	if unicode.IsDigit(rune(c)) {
		return c - '0'
	}
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 10
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 16
}
