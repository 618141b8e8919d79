package pixel

// MaxFactor is the largest scalar opacity or brightness, meaning 200%.
const MaxFactor = 511

// Factor is the per-pixel scaling applied by [ApplyOpacity] and [ApplyBrightness]: either one
// scalar for every pixel or the alpha channel of a mask buffer.
type Factor struct {
	mask   []byte
	value  uint16
	isMask bool
}

// Scalar returns a uniform factor. Values in [0,255] scale down (0% to 100%), values in
// [256,511] scale up (100% to 200%). Values outside [0,511] are clamped.
func Scalar(v int) Factor {
	if v < 0 {
		v = 0
	} else if v > MaxFactor {
		v = MaxFactor
	}
	return Factor{value: uint16(v)}
}

// Mask returns a factor that reads the alpha channel of the same index in mask.
func Mask(mask []byte) Factor {
	return Factor{mask: mask, isMask: true}
}

// IsMask reports whether f reads a mask buffer.
func (f Factor) IsMask() bool { return f.isMask }

// Value is the scalar of a uniform factor.
func (f Factor) Value() int { return int(f.value) }

// Identity is the factor that leaves pixels unchanged.
var Identity = Scalar(255)

// BlendPixels lays every pixel of src over the pixel with the same index in dst, within the
// region. The effective width is the smaller of both buffers. Transparent source pixels are
// skipped and opaque ones copied.
func BlendPixels(dst, src []byte, region Region) error {
	if err := needBuffer("dst", dst); err != nil {
		return err
	}
	if err := needBuffer("src", src); err != nil {
		return err
	}

	width := min(Len(dst), Len(src))
	start, end, ok := region.Resolve(width)
	if !ok {
		return nil
	}

	d, s := newView(dst, width), newView(src, width)
	for i := start; i <= end; i++ {
		c := s.at(i)
		switch c >> 24 {
		case 0:
		case 255:
			d.set(i, c)
		default:
			d.set(i, over(d.at(i), c))
		}
	}
	return nil
}

// GradientFill fills the region with a linear gradient from c1 at its first pixel to c2 at
// its last pixel. All four channels are interpolated; both endpoints are exact.
func GradientFill(buf []byte, c1, c2 ARGB, region Region) error {
	if err := needBuffer("buf", buf); err != nil {
		return err
	}

	width := Len(buf)
	start, end, ok := region.Resolve(width)
	if !ok {
		return nil
	}

	v := newView(buf, width)
	v.set(start, uint32(c1))
	if start == end {
		return nil
	}
	v.set(end, uint32(c2))
	if end-start <= 1 {
		return nil
	}

	var (
		a1, r1, g1, b1 = c1.Channels()
		a2, r2, g2, b2 = c2.Channels()
		steps          = end - start
	)
	for i := start + 1; i < end; i++ {
		pos := i - start
		v.set(i, uint32(pack(
			uint32(Scale(pos, 0, steps, int(a1), int(a2))),
			uint32(Scale(pos, 0, steps, int(r1), int(r2))),
			uint32(Scale(pos, 0, steps, int(g1), int(g2))),
			uint32(Scale(pos, 0, steps, int(b1), int(b2))),
		)))
	}
	return nil
}

// BlendColor lays the solid color c over every pixel in the region. A transparent c does
// nothing.
func BlendColor(buf []byte, c ARGB, region Region) error {
	if err := needBuffer("buf", buf); err != nil {
		return err
	}

	width := Len(buf)
	start, end, ok := region.Resolve(width)
	if !ok || c>>24 == 0 {
		return nil
	}

	v := newView(buf, width)
	for i := start; i <= end; i++ {
		v.set(i, over(v.at(i), uint32(c)))
	}
	return nil
}

// ApplyOpacity scales the alpha channel of every pixel in the region by f. Color channels are
// left untouched.
func ApplyOpacity(buf []byte, f Factor, region Region) error {
	if err := needBuffer("buf", buf); err != nil {
		return err
	}
	if f.isMask {
		if err := needBuffer("mask", f.mask); err != nil {
			return err
		}
	}

	width := Len(buf)
	start, end, ok := region.Resolve(width)
	if !ok {
		return nil
	}

	v := newView(buf, width)
	if f.isMask {
		m := newView(f.mask, Len(f.mask))
		if m.n < width {
			width = m.n
		}
		if end >= width {
			end = width - 1
		}
		for i := start; i <= end; i++ {
			c := v.at(i)
			a := scale8(m.at(i)>>24, 0, c>>24)
			v.set(i, a<<24|c&0x00ffffff)
		}
		return nil
	}

	k := uint32(f.value)
	if k <= 255 {
		for i := start; i <= end; i++ {
			c := v.at(i)
			a := scale8(k, 0, c>>24)
			v.set(i, a<<24|c&0x00ffffff)
		}
		return nil
	}

	k -= 255
	for i := start; i <= end; i++ {
		c := v.at(i)
		a := amplify(c>>24, k)
		v.set(i, a<<24|c&0x00ffffff)
	}
	return nil
}

// ApplyBrightness scales the color channels of every pixel in the region by f. The alpha
// channel is left untouched.
func ApplyBrightness(buf []byte, f Factor, region Region) error {
	if err := needBuffer("buf", buf); err != nil {
		return err
	}
	if f.isMask {
		if err := needBuffer("mask", f.mask); err != nil {
			return err
		}
	}

	width := Len(buf)
	start, end, ok := region.Resolve(width)
	if !ok {
		return nil
	}

	v := newView(buf, width)
	if f.isMask {
		m := newView(f.mask, Len(f.mask))
		if m.n < width {
			width = m.n
		}
		if end >= width {
			end = width - 1
		}
		for i := start; i <= end; i++ {
			var (
				c = v.at(i)
				k = m.at(i) >> 24
				r = scale8(k, 0, c>>16&0xff)
				g = scale8(k, 0, c>>8&0xff)
				b = scale8(k, 0, c&0xff)
			)
			v.set(i, c&0xff000000|r<<16|g<<8|b)
		}
		return nil
	}

	k := uint32(f.value)
	if k <= 255 {
		for i := start; i <= end; i++ {
			var (
				c = v.at(i)
				r = scale8(c>>16&0xff, 0, k)
				g = scale8(c>>8&0xff, 0, k)
				b = scale8(c&0xff, 0, k)
			)
			v.set(i, c&0xff000000|r<<16|g<<8|b)
		}
		return nil
	}

	k -= 255
	for i := start; i <= end; i++ {
		var (
			c = v.at(i)
			r = amplify(c>>16&0xff, k)
			g = amplify(c>>8&0xff, k)
			b = amplify(c&0xff, k)
		)
		v.set(i, c&0xff000000|r<<16|g<<8|b)
	}
	return nil
}

// Fill overwrites every pixel in the region with c.
func Fill(buf []byte, c ARGB, region Region) error {
	if err := needBuffer("buf", buf); err != nil {
		return err
	}

	width := Len(buf)
	start, end, ok := region.Resolve(width)
	if !ok {
		return nil
	}

	v := newView(buf, width)
	for i := start; i <= end; i++ {
		v.set(i, uint32(c))
	}
	return nil
}
