package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/erh/gocanid/canid"
	"github.com/erh/gocanid/common"
)

// A Record is one decoded identifier, shaped for JSON output and CBOR
// capture logs. Field keys stay stable across versions; capture readers
// match on the integer keys.
type Record struct {
	Input      string `json:"input" cbor:"1,keyasint"`
	Standard   bool   `json:"standard,omitempty" cbor:"2,keyasint,omitempty"`
	Bits       uint32 `json:"bits" cbor:"3,keyasint"`
	Priority   uint8  `json:"prio" cbor:"4,keyasint"`
	PGN        uint32 `json:"pgn" cbor:"5,keyasint"`
	Src        uint8  `json:"src" cbor:"6,keyasint"`
	SrcName    string `json:"srcName,omitempty" cbor:"7,keyasint,omitempty"`
	Dst        *uint8 `json:"dst,omitempty" cbor:"8,keyasint,omitempty"`
	DstName    string `json:"dstName,omitempty" cbor:"9,keyasint,omitempty"`
	GroupExt   *uint8 `json:"ge,omitempty" cbor:"10,keyasint,omitempty"`
	Mode       string `json:"mode,omitempty" cbor:"11,keyasint,omitempty"`
	Assignment string `json:"assignment,omitempty" cbor:"12,keyasint,omitempty"`
}

// NewRecord decodes a 29-bit identifier into a Record. input is echoed back
// verbatim so callers can line output up with what they fed in.
func NewRecord(input string, id canid.Extended) Record {
	rec := Record{
		Input:      input,
		Bits:       id.Bits(),
		Priority:   id.Priority(),
		PGN:        id.PGN().Bits(),
		Src:        id.SourceAddress(),
		SrcName:    canid.Addr(id.SourceAddress()).String(),
		Mode:       id.CommunicationMode().String(),
		Assignment: id.PGN().Assignment().String(),
	}
	if dst, ok := id.DestinationAddress(); ok {
		rec.Dst = &dst
		rec.DstName = canid.Addr(dst).String()
	}
	if ge, ok := id.GroupExtension(); ok {
		rec.GroupExt = &ge
	}
	return rec
}

// NewStandardRecord wraps an 11-bit identifier. Base frame identifiers carry
// no routing fields, so only the raw bits are kept.
func NewStandardRecord(input string, id canid.Standard) Record {
	return Record{
		Input:    input,
		Standard: true,
		Bits:     uint32(id.Bits()),
	}
}

func renderText(rec Record) string {
	if rec.Standard {
		return fmt.Sprintf("%s id=%03X", rec.Input, rec.Bits)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s prio=%d pgn=%d src=%d (%s)", rec.Input, rec.Priority, rec.PGN, rec.Src, rec.SrcName)
	if rec.Dst != nil {
		fmt.Fprintf(&b, " dst=%d (%s)", *rec.Dst, rec.DstName)
	}
	if rec.GroupExt != nil {
		fmt.Fprintf(&b, " ge=%d", *rec.GroupExt)
	}
	fmt.Fprintf(&b, " %s", rec.Mode)
	return b.String()
}

func renderName(name canid.Name) string {
	f := name.Fields()
	return fmt.Sprintf("name=%016X aa=%t ig=%d vsi=%d vs=%d fn=%d fi=%d ecu=%d mc=%d id=%d",
		name.Bits(), f.ArbitraryAddress, f.IndustryGroup, f.VehicleSystemInstance, f.VehicleSystem,
		f.Function, f.FunctionInstance, f.ECUInstance, f.ManufacturerCode, f.IdentityNumber)
}

// A CaptureHeader opens every capture session so readers can tell sessions
// apart and know which version wrote them.
type CaptureHeader struct {
	Session string    `json:"session" cbor:"1,keyasint"`
	Version string    `json:"version" cbor:"2,keyasint"`
	Started time.Time `json:"started" cbor:"3,keyasint"`
}

func newCaptureHeader() CaptureHeader {
	return CaptureHeader{
		Session: uuid.New().String(),
		Version: common.Version,
		Started: common.Now(),
	}
}

var (
	captureEncMode cbor.EncMode
	captureDecMode cbor.DecMode
)

func init() {
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	var err error
	captureEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture encode mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	captureDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture decode mode: %v", err))
	}
}

// A CaptureWriter appends decoded records to a binary log file. Each open
// writes a fresh session header before any records.
type CaptureWriter struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewCaptureWriter opens or creates the capture file at path in append mode
// and writes the session header.
func NewCaptureWriter(path string) (*CaptureWriter, error) {
	//nolint:gosec
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file %s: %w", path, err)
	}
	w := &CaptureWriter{
		file:    file,
		encoder: captureEncMode.NewEncoder(file),
	}
	if err := w.encoder.Encode(newCaptureHeader()); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to write capture header: %w", err)
	}
	return w, nil
}

// Write appends one record. Encoding errors are dropped; capture must not
// disrupt decoding.
func (w *CaptureWriter) Write(rec Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	_ = w.encoder.Encode(rec)
}

// Close flushes and closes the capture file. Close is idempotent.
func (w *CaptureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	return w.file.Close()
}

// A CaptureDecoder reads one capture session back: the header first, then
// records until io.EOF.
type CaptureDecoder struct {
	dec *cbor.Decoder
}

// NewCaptureDecoder reads a capture stream from r.
func NewCaptureDecoder(r io.Reader) *CaptureDecoder {
	return &CaptureDecoder{dec: captureDecMode.NewDecoder(r)}
}

// Header reads the session header. Call it once, before Next.
func (d *CaptureDecoder) Header() (CaptureHeader, error) {
	var h CaptureHeader
	if err := d.dec.Decode(&h); err != nil {
		return CaptureHeader{}, err
	}
	return h, nil
}

// Next reads the next record, returning io.EOF at the end of the stream.
func (d *CaptureDecoder) Next() (Record, error) {
	var rec Record
	if err := d.dec.Decode(&rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
