package pixel

import (
	"fmt"
	"image/color"
)

// ARGBModel converts any color to a non-premultiplied ARGB value.
var ARGBModel color.Model = color.ModelFunc(argbModel)

// Common colors.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xff000000
	White       ARGB = 0xffffffff
)

// ARGB is a 32-bit color packed as 0xAARRGGBB. The color channels are not premultiplied.
type ARGB uint32

// NewARGB packs the four channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A is the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R is the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G is the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B is the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// Channels splits the color into alpha, red, green and blue.
func (c ARGB) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// WithAlpha replaces the alpha channel.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00ffffff | ARGB(a)<<24
}

func (c ARGB) String() string {
	return fmt.Sprintf("%#08x", uint32(c))
}

func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// pack combines channels that are already known to be within [0,255].
func pack(a, r, g, b uint32) ARGB {
	return ARGB(a<<24 | r<<16 | g<<8 | b)
}

func argbModel(c color.Color) color.Color {
	if _, ok := c.(ARGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewARGB(n.A, n.R, n.G, n.B)
}
