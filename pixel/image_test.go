package pixel

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestARGBImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(60, 1),
		image.Pt(16, 16),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i, err := NewImage(Make(test.X*test.Y), test.X, test.Y)
			if err != nil {
				it.Fatal(err)
			}

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != ARGBModel {
				it.Errorf("expected color model %T, got %T", ARGBModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("row-major", func(itt *testing.T) {
				if test.X == 0 || test.Y == 0 {
					return
				}
				x, y := test.X-1, test.Y-1
				i.SetARGB(x, y, 0x80123456)
				if v := At(i.Pix, y*test.X+x); v != 0x80123456 {
					itt.Fatalf("expected pixel %d to be 0x80123456, got %s", y*test.X+x, v)
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ARGBAt(x, y); v != Transparent {
						itt.Fatalf("pixel (%d,%d) is %s, expected transparent", x, y, v)
					}
				}
			})
		})
	}
}

func TestNewImageTooShort(t *testing.T) {
	if _, err := NewImage(Make(3), 2, 2); !errors.Is(err, ErrArgument) {
		t.Errorf("expected argument error, got %v", err)
	}
	if _, err := NewImage(nil, 0, 0); !errors.Is(err, ErrArgument) {
		t.Errorf("expected argument error for nil buffer, got %v", err)
	}
}

func TestBufferRegion(t *testing.T) {
	i, err := NewImage(Make(8*4), 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err = Fill(i.Pix, White, i.Region(2, 1, 3)); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := Transparent
			if y == 2 && x >= 1 && x <= 3 {
				want = White
			}
			if v := i.ARGBAt(x, y); v != want {
				t.Errorf("expected pixel (%d,%d) to be %s, got %s", x, y, want, v)
			}
		}
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}

func TestARGBImageStride(t *testing.T) {
	// 2x2 visible pixels in rows of 3, followed by an off-screen row.
	pix := Make(9)
	i := &ARGBImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, 2, 2),
			Pix:    pix,
			Stride: 3 * BytesPerPixel,
		},
	}
	outside := []int{2, 5, 6, 7, 8}

	i.Fill(White)
	for _, n := range []int{0, 1, 3, 4} {
		if v := At(pix, n); v != White {
			t.Errorf("fill: expected pixel %d to be white, got %s", n, v)
		}
	}
	for _, n := range outside {
		if v := At(pix, n); v != Transparent {
			t.Errorf("fill: expected pixel %d outside the image to be untouched, got %s", n, v)
		}
	}

	for n := 0; n < 9; n++ {
		Set(pix, n, 0xff102030)
	}
	i.Clear()
	for _, n := range []int{0, 1, 3, 4} {
		if v := At(pix, n); v != Transparent {
			t.Errorf("clear: expected pixel %d to be cleared, got %s", n, v)
		}
	}
	for _, n := range outside {
		if v := At(pix, n); v != 0xff102030 {
			t.Errorf("clear: expected pixel %d outside the image to be untouched, got %s", n, v)
		}
	}
}
