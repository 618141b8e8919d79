package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values of an LED matrix laid out row by row.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels, owned by the caller.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes the pixels inside Rect, bytes between rows are left alone.
func (p *Buffer) Clear() {
	if p.Rect.Empty() {
		return
	}
	n := p.Rect.Dx() * BytesPerPixel
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		o := p.PixOffset(p.Rect.Min.X, y) * BytesPerPixel
		clear(p.Pix[o : o+n])
	}
}

// PixOffset returns the pixel index (not the byte offset) of (x, y) in Pix.
func (p *Buffer) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride/BytesPerPixel + (x - p.Rect.Min.X)
}

// Region returns the pixels of row y between x0 and x1 (inclusive) as a Region usable with the
// compositing functions on Pix.
func (p *Buffer) Region(y, x0, x1 int) Region {
	return Span(p.PixOffset(x0, y), p.PixOffset(x1, y))
}

// ARGBImage is a 32-bit per pixel ARGB image over a caller owned buffer. A single row image
// is an LED strip.
type ARGBImage struct {
	Buffer
}

// NewImage wraps pix as a w x h image. It does not copy pix.
func NewImage(pix []byte, w, h int) (*ARGBImage, error) {
	if err := needBuffer("pix", pix); err != nil {
		return nil, err
	}
	if w < 0 || h < 0 || Len(pix) < w*h {
		return nil, &ArgumentError{Arg: "pix", Reason: "is too short for the image size"}
	}
	return &ARGBImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix[:w*h*BytesPerPixel],
			Stride: w * BytesPerPixel,
		},
	}, nil
}

func (p *ARGBImage) ColorModel() color.Model {
	return ARGBModel
}

func (p *ARGBImage) At(x, y int) color.Color {
	return p.ARGBAt(x, y)
}

func (p *ARGBImage) ARGBAt(x, y int) ARGB {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Transparent
	}
	return At(p.Pix, p.PixOffset(x, y))
}

func (p *ARGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	Set(p.Pix, p.PixOffset(x, y), argbModel(c).(ARGB))
}

func (p *ARGBImage) SetARGB(x, y int, c ARGB) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	Set(p.Pix, p.PixOffset(x, y), c)
}

// Fill sets every pixel inside Rect to c.
func (p *ARGBImage) Fill(c color.Color) {
	if p.Rect.Empty() {
		return
	}
	v := argbModel(c).(ARGB)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		_ = Fill(p.Pix, v, p.Region(y, p.Rect.Min.X, p.Rect.Max.X-1))
	}
}

// Interface checks.
var (
	_ Image = (*ARGBImage)(nil)
)
