package pixel

// Blend lays src over dst using the alpha channel of src and returns the result.
//
// Color channels are the weighted sum Scale(255-a,0,255,0,d) + Scale(a,0,255,0,s) and the
// resulting alpha accumulates as a1 + (255-a1)*a2/255, saturating at 255. A fully transparent
// src returns dst unchanged.
func Blend(dst, src ARGB) ARGB {
	if src>>24 == 0 {
		return dst
	}
	return ARGB(over(uint32(dst), uint32(src)))
}

// BlendLinear cross-fades between a and b: every channel, alpha included, is
// Scale(alpha, 0, 255, b, a). An alpha of 0 yields b, 255 yields a.
func BlendLinear(a, b ARGB, alpha uint8) ARGB {
	v := uint32(alpha)
	return pack(
		scale8(v, uint32(b.A()), uint32(a.A())),
		scale8(v, uint32(b.R()), uint32(a.R())),
		scale8(v, uint32(b.G()), uint32(a.G())),
		scale8(v, uint32(b.B()), uint32(a.B())),
	)
}

// over is the blend kernel shared by Blend, BlendPixels and BlendColor. The caller handles a
// transparent src.
func over(dst, src uint32) uint32 {
	var (
		a1 = dst >> 24
		r1 = dst >> 16 & 0xff
		g1 = dst >> 8 & 0xff
		b1 = dst & 0xff
		a2 = src >> 24
		r2 = src >> 16 & 0xff
		g2 = src >> 8 & 0xff
		b2 = src & 0xff
		ia = 255 - a2
	)
	r := scale8(ia, 0, r1) + scale8(a2, 0, r2)
	g := scale8(ia, 0, g1) + scale8(a2, 0, g2)
	b := scale8(ia, 0, b1) + scale8(a2, 0, b2)

	a := a1 + uint32(Scale(int((255-a1)*a2), 0, 255*255, 0, 255))
	if a > 255 {
		a = 255
	}
	return a<<24 | r<<16 | g<<8 | b
}
