package pixel

import (
	"image/color"
	"testing"
)

func TestARGBChannels(t *testing.T) {
	for _, test := range []struct {
		c          ARGB
		a, r, g, b uint8
	}{
		{0x00000000, 0x00, 0x00, 0x00, 0x00},
		{0xffffffff, 0xff, 0xff, 0xff, 0xff},
		{0x80ff4020, 0x80, 0xff, 0x40, 0x20},
		{0x01020304, 0x01, 0x02, 0x03, 0x04},
	} {
		t.Run(test.c.String(), func(it *testing.T) {
			a, r, g, b := test.c.Channels()
			if a != test.a || r != test.r || g != test.g || b != test.b {
				it.Errorf("expected channels %#02x %#02x %#02x %#02x, got %#02x %#02x %#02x %#02x",
					test.a, test.r, test.g, test.b, a, r, g, b)
			}
			if v := test.c.A(); v != test.a {
				it.Errorf("expected alpha %#02x, got %#02x", test.a, v)
			}
			if v := test.c.R(); v != test.r {
				it.Errorf("expected red %#02x, got %#02x", test.r, v)
			}
			if v := test.c.G(); v != test.g {
				it.Errorf("expected green %#02x, got %#02x", test.g, v)
			}
			if v := test.c.B(); v != test.b {
				it.Errorf("expected blue %#02x, got %#02x", test.b, v)
			}
			if v := NewARGB(test.a, test.r, test.g, test.b); v != test.c {
				it.Errorf("expected packed %s, got %s", test.c, v)
			}
		})
	}
}

func TestARGBWithAlpha(t *testing.T) {
	if v := ARGB(0xff123456).WithAlpha(0x40); v != 0x40123456 {
		t.Errorf("expected 0x40123456, got %s", v)
	}
}

func TestARGBModel(t *testing.T) {
	for _, test := range []struct {
		in   color.Color
		want ARGB
	}{
		{color.RGBA{R: 0xff, A: 0xff}, 0xffff0000},
		{color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, 0x80102030},
		{color.Transparent, Transparent},
		{color.Black, Black},
		{color.White, White},
		{ARGB(0x7f010203), 0x7f010203},
	} {
		if v := ARGBModel.Convert(test.in); v != test.want {
			t.Errorf("expected %v to convert to %s, got %v", test.in, test.want, v)
		}
	}
}

func TestARGBRGBA(t *testing.T) {
	r, g, b, a := ARGB(0xffff8000).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("expected (0xffff, 0x8080, 0, 0xffff), got (%#04x, %#04x, %#04x, %#04x)", r, g, b, a)
	}
}

func TestAtSet(t *testing.T) {
	buf := Make(2)
	Set(buf, 1, 0x11223344)
	if buf[4] != 0x44 || buf[5] != 0x33 || buf[6] != 0x22 || buf[7] != 0x11 {
		t.Errorf("expected little-endian bytes 44 33 22 11, got % x", buf[4:])
	}
	if v := At(buf, 1); v != 0x11223344 {
		t.Errorf("expected 0x11223344, got %s", v)
	}
	if v := At(buf, 0); v != Transparent {
		t.Errorf("expected transparent, got %s", v)
	}
}
