// Package draw renders LED strip and matrix frames into images for previews and recordings.
package draw

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = xdraw.Image

// Op is an alias for image/draw.Op
type Op = xdraw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over = xdraw.Over

	// Src specifies ``src in mask''.
	Src = xdraw.Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	xdraw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Scale returns src enlarged by an integer factor using nearest neighbour sampling, which keeps
// LED edges sharp.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, xdraw.Src, nil)
	return dst
}
