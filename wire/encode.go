package wire

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/BeatGlow/ledstrip/pixel"
)

// BytesPerLED is the size of one LED in an encoded stream.
const BytesPerLED = 3

// Order is the color order of LEDs on the wire.
type Order uint8

// Supported orders.
const (
	GRB Order = iota // WS2812 and most clones
	RGB
	BGR
)

func (o Order) String() string {
	switch o {
	case GRB:
		return "GRB"
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder parses the name of a color order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "GRB", "grb":
		return GRB, nil
	case "RGB", "rgb":
		return RGB, nil
	case "BGR", "bgr":
		return BGR, nil
	default:
		return 0, fmt.Errorf("wire: unsupported color order %q", s)
	}
}

// gamma maps sRGB encoded channel values onto linear LED duty cycles.
var gamma [256]uint8

func init() {
	for i := range gamma {
		v := float64(i) / 255
		r, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		gamma[i] = uint8(r*255 + 0.5)
	}
}

// Gamma returns the gamma corrected value of an 8-bit channel.
func Gamma(v uint8) uint8 {
	return gamma[v]
}

// Encoder converts ARGB buffers into the 3 bytes per LED stream driven to a strip. LEDs have
// no alpha channel: it is ignored, so callers composite onto an opaque background first.
type Encoder struct {
	// Order of the color bytes.
	Order Order

	// Brightness scales every channel, 255 is full brightness.
	Brightness uint8

	// Gamma applies gamma correction after brightness.
	Gamma bool
}

// DefaultEncoder is a full brightness GRB encoder without gamma correction.
var DefaultEncoder = Encoder{
	Order:      GRB,
	Brightness: 255,
}

// Len is the number of bytes needed to encode n LEDs.
func (e Encoder) Len(n int) int {
	return n * BytesPerLED
}

// Encode writes min(len(src)/4, len(dst)/3) LEDs from src into dst and returns that count.
func (e Encoder) Encode(dst, src []byte) int {
	n := min(pixel.Len(src), len(dst)/BytesPerLED)
	bri := int(e.Brightness)
	for i := 0; i < n; i++ {
		c := pixel.At(src, i)
		r := uint8(pixel.Scale(int(c.R()), 0, 255, 0, bri))
		g := uint8(pixel.Scale(int(c.G()), 0, 255, 0, bri))
		b := uint8(pixel.Scale(int(c.B()), 0, 255, 0, bri))
		if e.Gamma {
			r, g, b = gamma[r], gamma[g], gamma[b]
		}

		o := dst[i*BytesPerLED : i*BytesPerLED+BytesPerLED]
		switch e.Order {
		case RGB:
			o[0], o[1], o[2] = r, g, b
		case BGR:
			o[0], o[1], o[2] = b, g, r
		default:
			o[0], o[1], o[2] = g, r, b
		}
	}
	return n
}

// Decode reads min(len(src)/3, len(dst)/4) LEDs in order o from src into dst as opaque ARGB
// pixels and returns that count. Brightness and gamma of the encoder that wrote src can not be
// undone.
func (o Order) Decode(dst, src []byte) int {
	n := min(len(src)/BytesPerLED, pixel.Len(dst))
	for i := 0; i < n; i++ {
		var (
			in      = src[i*BytesPerLED : i*BytesPerLED+BytesPerLED]
			r, g, b uint8
		)
		switch o {
		case RGB:
			r, g, b = in[0], in[1], in[2]
		case BGR:
			b, g, r = in[0], in[1], in[2]
		default:
			g, r, b = in[0], in[1], in[2]
		}
		pixel.Set(dst, i, pixel.NewARGB(0xff, r, g, b))
	}
	return n
}
