package framebuffer

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/pixel"
)

func testInfo(w, h uint32) *varScreenInfo {
	return &varScreenInfo{
		Xres:         w,
		Yres:         h,
		BitsPerPixel: 32,
		Red:          bitField{Offset: 16, Length: 8},
		Green:        bitField{Offset: 8, Length: 8},
		Blue:         bitField{Offset: 0, Length: 8},
	}
}

func TestNewDevice(t *testing.T) {
	const (
		w, h   = 4, 3
		stride = w*4 + 8
	)
	mem := make([]byte, stride*h)
	d, err := newDevice("test", mem, testInfo(w, h), stride)
	if err != nil {
		t.Fatal(err)
	}
	if v := d.Bounds(); !v.Eq(image.Rect(0, 0, w, h)) {
		t.Errorf("expected bounds %s, got %s", image.Rect(0, 0, w, h), v)
	}

	d.SetARGB(1, 2, 0xff102030)
	o := 2*stride + 1*4
	if v := mem[o : o+4]; v[0] != 0x30 || v[1] != 0x20 || v[2] != 0x10 || v[3] != 0xff {
		t.Errorf("expected XRGB bytes 30 20 10 ff at offset %d, got % x", o, v)
	}
	if v := d.ARGBAt(1, 2); v != 0xff102030 {
		t.Errorf("expected 0xff102030, got %s", v)
	}
	if err = d.Close(); err != nil {
		t.Error(err)
	}
}

func TestNewDeviceOffset(t *testing.T) {
	info := testInfo(2, 2)
	info.Xoffset, info.Yoffset = 1, 1
	mem := make([]byte, 3*3*4)
	d, err := newDevice("test", mem, info, 3*4)
	if err != nil {
		t.Fatal(err)
	}
	d.SetARGB(0, 0, pixel.White)
	if v := pixel.At(mem, 4); v != pixel.White {
		t.Errorf("expected pixel 4 to be white, got %s", v)
	}
}

func TestNewDeviceErrors(t *testing.T) {
	info := testInfo(4, 4)
	info.BitsPerPixel = 16
	if _, err := newDevice("test", make([]byte, 64), info, 16); err != ErrFormat {
		t.Errorf("expected ErrFormat, got %v", err)
	}

	info = testInfo(4, 4)
	info.Red, info.Blue = info.Blue, info.Red
	if _, err := newDevice("test", make([]byte, 64), info, 16); err != ErrFormat {
		t.Errorf("expected ErrFormat for BGR, got %v", err)
	}

	if _, err := newDevice("test", make([]byte, 60), testInfo(4, 4), 16); err == nil {
		t.Error("expected error for short memory")
	}
	if _, err := newDevice("test", make([]byte, 64), testInfo(4, 4), 8); err == nil {
		t.Error("expected error for short lines")
	}
}

func TestSink(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	s := NewSink(dst, &draw.Options{Size: 1, Spacing: 1, Shape: draw.Square, Background: pixel.Black})
	if v := s.String(); v != "image (4,1)" {
		t.Errorf("expected image (4,1), got %q", v)
	}

	buf := pixel.Make(2)
	pixel.Set(buf, 0, 0xffff0000)
	pixel.Set(buf, 1, 0xff00ff00)
	if err := s.Write(buf); err != nil {
		t.Fatal(err)
	}
	if v := dst.RGBAAt(0, 0); v != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("expected red at (0,0), got %v", v)
	}
	if v := dst.RGBAAt(2, 0); v != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("expected green at (2,0), got %v", v)
	}
	if err := s.Close(); err != nil {
		t.Error(err)
	}
}

func TestSinkDevice(t *testing.T) {
	mem := make([]byte, 3*3*4)
	d, err := newDevice("fb9", mem, testInfo(3, 3), 3*4)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSink(d, &draw.Options{Size: 3, Shape: draw.Square})
	if v := s.String(); v != "framebuffer fb9 (3,3)" {
		t.Errorf("expected framebuffer fb9 (3,3), got %q", v)
	}

	buf := pixel.Make(1)
	pixel.Set(buf, 0, 0xff0000ff)
	if err = s.Write(buf); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 9; i++ {
		if v := pixel.At(mem, i); v != 0xff0000ff {
			t.Errorf("expected pixel %d to be 0xff0000ff, got %s", i, v)
		}
	}
}
