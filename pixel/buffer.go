package pixel

import (
	"encoding/binary"
	"errors"
)

// BytesPerPixel is the size of one ARGB pixel in a buffer.
const BytesPerPixel = 4

// ErrArgument is matched by every *ArgumentError.
var ErrArgument = errors.New("pixel: argument error")

// ArgumentError reports a missing or malformed buffer argument. The buffer is left untouched.
type ArgumentError struct {
	// Arg is the name of the offending argument.
	Arg string

	// Reason describes what is wrong with it.
	Reason string
}

func (err *ArgumentError) Error() string {
	return "pixel: argument error: " + err.Arg + " " + err.Reason
}

func (err *ArgumentError) Unwrap() error {
	return ErrArgument
}

func needBuffer(name string, buf []byte) error {
	if buf == nil {
		return &ArgumentError{Arg: name, Reason: "needs a byte buffer"}
	}
	return nil
}

// Len returns the number of whole pixels in buf.
func Len(buf []byte) int {
	return len(buf) / BytesPerPixel
}

// Make allocates a zeroed (transparent) buffer for n pixels. The compositing functions never
// allocate; this is a convenience for the owners of buffers.
func Make(n int) []byte {
	return make([]byte, n*BytesPerPixel)
}

// At returns pixel i of buf.
func At(buf []byte, i int) ARGB {
	return ARGB(binary.LittleEndian.Uint32(buf[i*BytesPerPixel:]))
}

// Set stores c as pixel i of buf.
func Set(buf []byte, i int, c ARGB) {
	binary.LittleEndian.PutUint32(buf[i*BytesPerPixel:], uint32(c))
}

// view is a uint32 window over a byte buffer, with its length captured once.
type view struct {
	pix []byte
	n   int
}

func newView(buf []byte, n int) view {
	return view{pix: buf[:n*BytesPerPixel], n: n}
}

func (v view) at(i int) uint32 {
	return binary.LittleEndian.Uint32(v.pix[i*BytesPerPixel:])
}

func (v view) set(i int, c uint32) {
	binary.LittleEndian.PutUint32(v.pix[i*BytesPerPixel:], c)
}
