package draw

import (
	"image"
	"image/color"
)

// Shape of a rendered LED.
type Shape uint8

// Supported shapes.
const (
	Square Shape = iota
	Rounded
	Round
)

func (s Shape) String() string {
	switch s {
	case Rounded:
		return "rounded"
	case Round:
		return "round"
	default:
		return "square"
	}
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Draw(dst, rect, image.NewUniform(c), image.Point{}, Src)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if limit := min(rect.Dx(), rect.Dy()) / 2; radius > limit {
		radius = limit
	}
	if radius <= 0 {
		Box(dst, rect, c)
		return
	}

	// Center band, then the rows above and below it that lose their corners.
	Box(dst, image.Rect(rect.Min.X, rect.Min.Y+radius, rect.Max.X, rect.Max.Y-radius), c)
	for dy := 0; dy < radius; dy++ {
		inset := radius - cornerWidth(radius, radius-dy)
		Box(dst, image.Rect(rect.Min.X+inset, rect.Min.Y+dy, rect.Max.X-inset, rect.Min.Y+dy+1), c)
		Box(dst, image.Rect(rect.Min.X+inset, rect.Max.Y-dy-1, rect.Max.X-inset, rect.Max.Y-dy), c)
	}
}

// Disc draws a filled circle inscribed in rect.
func Disc(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	RoundedBox(dst, rect, (min(rect.Dx(), rect.Dy())+1)/2, c)
}

// cornerWidth is the horizontal extent of a quarter circle of radius r, dy rows away from its
// center, found with the midpoint circle algorithm.
func cornerWidth(r, dy int) int {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	width := 0
	for x <= y {
		if y == dy && x > width {
			width = x
		}
		if x == dy && y > width {
			width = y
		}
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
	}
	return width
}
