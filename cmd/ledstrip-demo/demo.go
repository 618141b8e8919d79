package main

import (
	"github.com/BeatGlow/ledstrip/pixel"
)

// demo composes its frames from layers, like an animation engine would.
type demo struct {
	n     int
	dot   pixel.ARGB
	back  []byte // black background
	grad  []byte
	layer []byte // gradient with the dot on top
	fade  []byte // alpha mask darkening towards the end of the strip
}

func newDemo(n int, from, to, dot pixel.ARGB) *demo {
	d := &demo{
		n:     n,
		dot:   dot.WithAlpha(0xc0),
		back:  pixel.Make(n),
		grad:  pixel.Make(n),
		layer: pixel.Make(n),
		fade:  pixel.Make(n),
	}
	_ = pixel.GradientFill(d.grad, from, to, pixel.All)
	_ = pixel.GradientFill(d.fade, pixel.Black, 0x40000000, pixel.All)
	return d
}

// render writes frame number frame into dst.
func (d *demo) render(dst []byte, frame int) error {
	if err := pixel.Fill(d.back, pixel.Black, pixel.All); err != nil {
		return err
	}

	layer := d.layer
	copy(layer, d.grad)
	pos := frame % d.n
	if err := pixel.BlendColor(layer, d.dot, pixel.Span(pos, pos+1)); err != nil {
		return err
	}
	if err := pixel.ApplyBrightness(layer, pixel.Mask(d.fade), pixel.All); err != nil {
		return err
	}

	// Pulse the layer between 50% and 100% opacity.
	pulse := frame % 32
	if pulse >= 16 {
		pulse = 31 - pulse
	}
	if err := pixel.ApplyOpacity(layer, pixel.Scalar(128+pulse*8), pixel.All); err != nil {
		return err
	}

	if err := pixel.BlendPixels(d.back, layer, pixel.All); err != nil {
		return err
	}
	copy(dst, d.back)
	return nil
}
