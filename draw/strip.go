package draw

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ledstrip/pixel"
)

// Options control how LEDs are laid out in a preview.
type Options struct {
	// Width is the number of LEDs per row, 0 puts all LEDs on one row.
	Width int

	// Size of each LED in pixels.
	Size int

	// Spacing between LEDs in pixels.
	Spacing int

	// Reversed renders rows right to left.
	Reversed bool

	// Shape of each LED.
	Shape Shape

	// Background is the opaque color behind the LEDs, transparent LEDs show it.
	Background pixel.ARGB
}

// DefaultOptions render 10 pixel rounded LEDs 2 pixels apart on black.
var DefaultOptions = Options{
	Size:       10,
	Spacing:    2,
	Shape:      Rounded,
	Background: pixel.Black,
}

func (o *Options) grid(n int) (cols, rows int) {
	cols = o.Width
	if cols <= 0 || cols > n {
		cols = n
	}
	if cols == 0 {
		return 0, 0
	}
	return cols, (n + cols - 1) / cols
}

// Bounds is the size of a preview of n LEDs.
func (o *Options) Bounds(n int) image.Rectangle {
	if o == nil {
		o = &DefaultOptions
	}
	cols, rows := o.grid(n)
	if cols == 0 {
		return image.Rectangle{}
	}
	step := o.Size + o.Spacing
	return image.Rect(0, 0, cols*step-o.Spacing, rows*step-o.Spacing)
}

// Strip renders the LEDs in pix into dst, with the top left LED at dst.Bounds().Min. A nil
// Options uses DefaultOptions.
func Strip(dst Image, pix []byte, o *Options) {
	if o == nil {
		o = &DefaultOptions
	}

	var (
		n          = pixel.Len(pix)
		cols, _    = o.grid(n)
		step       = o.Size + o.Spacing
		origin     = dst.Bounds().Min
		background = o.Background | 0xff000000
	)
	Box(dst, o.Bounds(n).Add(origin), background)

	for i := 0; i < n; i++ {
		x, y := i%cols, i/cols
		if o.Reversed {
			x = cols - 1 - x
		}
		var (
			c    = o.Color(pixel.At(pix, i))
			at   = origin.Add(image.Pt(x*step, y*step))
			rect = image.Rectangle{Min: at, Max: at.Add(image.Pt(o.Size, o.Size))}
		)
		switch o.Shape {
		case Rounded:
			RoundedBox(dst, rect, o.Size/4, c)
		case Round:
			Disc(dst, rect, c)
		default:
			Box(dst, rect, c)
		}
	}
}

// Preview renders pix into a new image sized with [Options.Bounds].
func Preview(pix []byte, o *Options) *image.RGBA {
	dst := image.NewRGBA(o.Bounds(pixel.Len(pix)))
	Strip(dst, pix, o)
	return dst
}

// Color converts an LED color into an opaque color over the background.
func (o *Options) Color(c pixel.ARGB) color.Color {
	if o == nil {
		o = &DefaultOptions
	}
	return pixel.Blend(o.Background|0xff000000, c)
}
