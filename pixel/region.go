package pixel

// Region is an inclusive range of pixel indices. Negative indices count from the end of the
// buffer, so -1 is the last pixel.
type Region struct {
	Start int
	End   int
}

// All covers the entire buffer.
var All = Region{Start: 0, End: -1}

// Span returns the region [start, end].
func Span(start, end int) Region {
	return Region{Start: start, End: end}
}

// From returns the region from start up to and including the last pixel.
func From(start int) Region {
	return Region{Start: start, End: -1}
}

// Resolve normalizes the region against a buffer of width pixels. It returns ok=false if the
// region is empty, in which case operations do nothing. Otherwise 0 <= start <= end < width.
func (r Region) Resolve(width int) (start, end int, ok bool) {
	start, end = r.Start, r.End
	if start < 0 {
		start += width
	}
	if end < 0 {
		end += width
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start >= width {
		return 0, 0, false
	}
	if end >= width {
		end = width - 1
	}
	if end < start {
		return 0, 0, false
	}
	return start, end, true
}

// Len is the number of pixels the region covers in a buffer of width pixels.
func (r Region) Len(width int) int {
	start, end, ok := r.Resolve(width)
	if !ok {
		return 0
	}
	return end - start + 1
}
