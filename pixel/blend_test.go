package pixel

import (
	"math/rand"
	"testing"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		dst, src ARGB
		want     ARGB
	}{
		{"half white over opaque black", 0xff000000, 0x80ffffff, 0xff808080},
		{"half red over transparent", 0x00000000, 0x80ff0000, 0x80800000},
		{"integer weights", 0xff404040, 0x80c0c0c0, 0xff7f7f7f},
		{"quarter white over half color", 0x80102030, 0x40ffffff, 0x9f4b5763},
		{"transparent source", 0x12345678, 0x00ffffff, 0x12345678},
		{"opaque source", 0x12345678, 0xffabcdef, 0xffabcdef},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.dst, tt.src); got != tt.want {
				t.Errorf("Blend(%s, %s) = %s, want %s", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestBlendTransparentIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		dst := ARGB(r.Uint32())
		src := ARGB(r.Uint32()) & 0x00ffffff
		if got := Blend(dst, src); got != dst {
			t.Fatalf("Blend(%s, %s) = %s, expected destination", dst, src, got)
		}
	}
}

func TestBlendOpaqueIsSource(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		dst := ARGB(r.Uint32())
		src := ARGB(r.Uint32()) | 0xff000000
		if got := Blend(dst, src); got != src {
			t.Fatalf("Blend(%s, %s) = %s, expected source", dst, src, got)
		}
	}
}

func TestBlendLinear(t *testing.T) {
	tests := []struct {
		name  string
		a, b  ARGB
		alpha uint8
		want  ARGB
	}{
		{"zero yields b", 0xff0000ff, 0x00ff0000, 0, 0x00ff0000},
		{"full yields a", 0xff0000ff, 0x00ff0000, 255, 0xff0000ff},
		{"half", 0xff0000ff, 0x00ff0000, 128, 0x807f0080},
		{"same color", 0x80404040, 0x80404040, 77, 0x80404040},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendLinear(tt.a, tt.b, tt.alpha); got != tt.want {
				t.Errorf("BlendLinear(%s, %s, %d) = %s, want %s", tt.a, tt.b, tt.alpha, got, tt.want)
			}
		})
	}
}
