// Package framebuffer previews LED frames on the operating system's native framebuffer.
//
// This requires framebuffer device support in the operating system and a 32 bits per pixel
// XRGB video mode, which stores pixels exactly like ARGB frame buffers. The framebuffer can
// be opened with the [Open] call and drawn on like any other image.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format, need 32-bit XRGB")
)

// bitField describes one color channel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a frame buffer
// device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) isXRGB() bool {
	return info.BitsPerPixel == 32 &&
		info.Red.Offset == 16 && info.Red.Length == 8 &&
		info.Green.Offset == 8 && info.Green.Length == 8 &&
		info.Blue.Offset == 0 && info.Blue.Length == 8 &&
		(info.Alpha.Length == 0 || info.Alpha.Offset == 24 && info.Alpha.Length == 8)
}

// Device is a framebuffer mapped into memory.
type Device struct {
	*pixel.ARGBImage
	name  string
	close func() error
}

// newDevice wraps the visible part of mem, the framebuffer memory with lineLength bytes per
// line.
func newDevice(name string, mem []byte, info *varScreenInfo, lineLength uint32) (*Device, error) {
	if !info.isXRGB() {
		return nil, ErrFormat
	}
	var (
		w      = int(info.Xres)
		h      = int(info.Yres)
		stride = int(lineLength)
		offset = int(info.Yoffset)*stride + int(info.Xoffset)*pixel.BytesPerPixel
	)
	if w <= 0 || h <= 0 || stride < w*pixel.BytesPerPixel || offset+(h-1)*stride+w*pixel.BytesPerPixel > len(mem) {
		return nil, fmt.Errorf("framebuffer: %s: %dx%d does not fit in %d bytes", name, w, h, len(mem))
	}

	return &Device{
		ARGBImage: &pixel.ARGBImage{
			Buffer: pixel.Buffer{
				Rect:   image.Rect(0, 0, w, h),
				Pix:    mem[offset:],
				Stride: stride,
			},
		},
		name: name,
	}, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("framebuffer %s %s", d.name, d.Bounds().Size())
}

// Close the framebuffer device.
func (d *Device) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// Sink draws every frame as an LED preview, see draw.Strip.
type Sink struct {
	dst  draw.Image
	opts draw.Options
}

// NewSink draws frames on dst, a nil opts means draw.DefaultOptions. If dst is an io.Closer
// it is closed with the sink.
func NewSink(dst draw.Image, opts *draw.Options) *Sink {
	s := &Sink{
		dst:  dst,
		opts: draw.DefaultOptions,
	}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

func (s *Sink) String() string {
	if v, ok := s.dst.(fmt.Stringer); ok {
		return v.String()
	}
	return fmt.Sprintf("image %s", s.dst.Bounds().Size())
}

func (s *Sink) Write(pix []byte) error {
	draw.Strip(s.dst, pix, &s.opts)
	return nil
}

func (s *Sink) Close() error {
	if c, ok := s.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
