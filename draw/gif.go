package draw

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when encoding an animation without frames.
var ErrNoFrames = errors.New("draw: animation has no frames")

// Animation collects preview frames for an animated GIF.
type Animation struct {
	frames []*image.Paletted
	delays []int
}

// Len is the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Add appends a frame shown for d, dithered onto the Plan 9 palette.
func (a *Animation) Add(src image.Image, d time.Duration) {
	r := src.Bounds()
	p := image.NewPaletted(r.Sub(r.Min), palette.Plan9)
	xdraw.FloydSteinberg.Draw(p, p.Bounds(), src, r.Min)

	delay := int(d / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	a.frames = append(a.frames, p)
	a.delays = append(a.delays, delay)
}

// Encode writes the animation as a looping GIF.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &gif.GIF{
		Image:     a.frames,
		Delay:     a.delays,
		LoopCount: 0,
	})
}
