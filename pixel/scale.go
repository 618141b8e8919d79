package pixel

// Scale linearly maps v from [fromMin, fromMax] onto [toMin, toMax] using integer arithmetic,
// truncating toward zero. The destination range may be reversed (toMin > toMax). A degenerate
// source range maps everything to toMin.
//
// Scale is the single rescale primitive behind blending, gradients, opacity and brightness.
func Scale(v, fromMin, fromMax, toMin, toMax int) int {
	if fromMax == fromMin {
		return toMin
	}
	return toMin + (v-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}

// scale8 is Scale for the common [0,255] source range.
func scale8(v, toMin, toMax uint32) uint32 {
	return uint32(Scale(int(v), 0, 255, int(toMin), int(toMax)))
}

// amplify scales v by (256+k)/256 for k in [1,256], saturating at 255.
func amplify(v, k uint32) uint32 {
	v += uint32(Scale(int(v*k), 0, 255*256, 0, 255))
	if v > 255 {
		v = 255
	}
	return v
}
