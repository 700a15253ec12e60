package canid

import (
	"errors"
	"fmt"

	"github.com/brutella/can"
)

// SocketCAN flag bits carried in the upper bits of a frame ID word.
const (
	frameFlagExtended uint32 = 0x80000000 // EFF, extended frame format
	frameFlagRemote   uint32 = 0x40000000 // RTR, remote transmission request
	frameFlagError    uint32 = 0x20000000 // ERR, error message frame
)

// ErrFrameFormat reports a frame whose flag bits do not match the requested
// identifier scheme.
var ErrFrameFormat = errors.New("frame format mismatch")

// ExtendedFromFrame pulls the 29-bit identifier out of an extended format
// frame. Remote requests, error frames and base format frames are rejected
// with ErrFrameFormat.
func ExtendedFromFrame(frame can.Frame) (Extended, error) {
	if err := checkFrameFlags(frame.ID); err != nil {
		return Extended{}, err
	}
	if frame.ID&frameFlagExtended == 0 {
		return Extended{}, fmt.Errorf("frame id %#x is base format: %w", frame.ID, ErrFrameFormat)
	}
	return Extended{bits: frame.ID & ExtendedMax}, nil
}

// StandardFromFrame pulls the 11-bit identifier out of a base format frame.
// Remote requests, error frames and extended format frames are rejected
// with ErrFrameFormat.
func StandardFromFrame(frame can.Frame) (Standard, error) {
	if err := checkFrameFlags(frame.ID); err != nil {
		return Standard{}, err
	}
	if frame.ID&frameFlagExtended != 0 {
		return Standard{}, fmt.Errorf("frame id %#x is extended format: %w", frame.ID, ErrFrameFormat)
	}
	return Standard{bits: uint16(frame.ID) & StandardMax}, nil
}

func checkFrameFlags(id uint32) error {
	if id&frameFlagError != 0 {
		return fmt.Errorf("frame id %#x is an error frame: %w", id, ErrFrameFormat)
	}
	if id&frameFlagRemote != 0 {
		return fmt.Errorf("frame id %#x is a remote request: %w", id, ErrFrameFormat)
	}
	return nil
}

// Frame returns a data-less extended format frame carrying the identifier.
func (id Extended) Frame() can.Frame {
	return can.Frame{ID: id.bits | frameFlagExtended}
}

// Frame returns a data-less base format frame carrying the identifier.
func (id Standard) Frame() can.Frame {
	return can.Frame{ID: uint32(id.bits)}
}
