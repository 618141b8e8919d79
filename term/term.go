// Package term previews LED frames in a terminal.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/ledstrip/pixel"
)

// Cell is the rune drawn for one LED.
const Cell = '█'

// Renderer draws frames as one colored cell per LED.
type Renderer struct {
	// X and Y are the screen position of the first LED.
	X, Y int

	// Width is the number of LEDs per row, 0 fits the screen width.
	Width int

	// Reversed draws rows right to left.
	Reversed bool

	// Background LEDs are blended over, alpha is ignored.
	Background pixel.ARGB
}

// Rows is the number of screen rows a frame of n LEDs occupies on s.
func (r *Renderer) Rows(s tcell.Screen, n int) int {
	w := r.width(s)
	return (n + w - 1) / w
}

func (r *Renderer) width(s tcell.Screen) int {
	if r.Width > 0 {
		return r.Width
	}
	w, _ := s.Size()
	if w -= r.X; w < 1 {
		return 1
	}
	return w
}

// Draw puts the frame on s, call s.Show to display it. Cells outside the screen are clipped
// by tcell.
func (r *Renderer) Draw(s tcell.Screen, pix []byte) {
	var (
		w  = r.width(s)
		n  = pixel.Len(pix)
		bg = r.Background | 0xff000000
	)
	for i := 0; i < n; i++ {
		col := i % w
		if r.Reversed {
			col = w - 1 - col
		}
		c := pixel.Blend(bg, pixel.At(pix, i))
		s.SetContent(r.X+col, r.Y+i/w, Cell, nil, tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))).
			Background(tcell.ColorBlack))
	}
}
