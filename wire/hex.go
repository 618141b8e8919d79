// Package wire implements the serialized forms of ARGB frames: the hex transfer format
// consumed by render sinks, JSON Lines frame recordings and the byte streams sent to LEDs.
package wire

import (
	"encoding/hex"
	"errors"

	"github.com/BeatGlow/ledstrip/pixel"
)

// HexPixelLen is the number of hex characters per pixel.
const HexPixelLen = 2 * pixel.BytesPerPixel

// Errors
var (
	ErrHexLength = errors.New("wire: hex frame length is not a multiple of 8")
)

// EncodeHex returns the hex transfer form of buf: 8 uppercase hex characters per pixel in
// AARRGGBB order, regardless of the in-memory byte order.
func EncodeHex(buf []byte) string {
	return string(AppendHex(make([]byte, 0, pixel.Len(buf)*HexPixelLen), buf))
}

// AppendHex appends the hex transfer form of buf to dst.
func AppendHex(dst, buf []byte) []byte {
	const digits = "0123456789ABCDEF"
	for i, n := 0, pixel.Len(buf); i < n; i++ {
		c := uint32(pixel.At(buf, i))
		for shift := 28; shift >= 0; shift -= 4 {
			dst = append(dst, digits[c>>uint(shift)&0xf])
		}
	}
	return dst
}

// DecodeHex decodes the hex transfer form s into dst and returns the number of pixels
// written. Pixels that do not fit in dst are ignored. Upper and lower case are accepted.
func DecodeHex(dst []byte, s string) (n int, err error) {
	if len(s)%HexPixelLen != 0 {
		return 0, ErrHexLength
	}

	var (
		width = pixel.Len(dst)
		word  [pixel.BytesPerPixel]byte
	)
	for ; n < width && len(s) > 0; n++ {
		if _, err = hex.Decode(word[:], []byte(s[:HexPixelLen])); err != nil {
			return n, err
		}
		pixel.Set(dst, n, pixel.ARGB(uint32(word[0])<<24|uint32(word[1])<<16|uint32(word[2])<<8|uint32(word[3])))
		s = s[HexPixelLen:]
	}
	return n, nil
}

// HexLen is the number of pixels in the hex transfer form s.
func HexLen(s string) int {
	return len(s) / HexPixelLen
}
