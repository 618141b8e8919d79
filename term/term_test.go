package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/ledstrip/pixel"
)

func testScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func expectCell(t *testing.T, s tcell.Screen, x, y int, want pixel.ARGB) {
	t.Helper()
	r, _, style, _ := s.GetContent(x, y)
	if r != Cell {
		t.Errorf("expected LED at (%d,%d), got %q", x, y, r)
		return
	}
	fg, _, _ := style.Decompose()
	v := tcell.NewRGBColor(int32(want.R()), int32(want.G()), int32(want.B()))
	if fg != v {
		t.Errorf("expected (%d,%d) to be %s, got %v", x, y, want, fg)
	}
}

func testStrip(colors ...pixel.ARGB) []byte {
	buf := pixel.Make(len(colors))
	for i, c := range colors {
		pixel.Set(buf, i, c)
	}
	return buf
}

func TestRendererDraw(t *testing.T) {
	s := testScreen(t, 10, 4)
	r := &Renderer{Width: 2}
	r.Draw(s, testStrip(0xffff0000, 0xff00ff00, 0x800000ff))

	expectCell(t, s, 0, 0, 0xffff0000)
	expectCell(t, s, 1, 0, 0xff00ff00)
	expectCell(t, s, 0, 1, 0xff000080)
	if v, _, _, _ := s.GetContent(1, 1); v == Cell {
		t.Error("expected no LED at (1,1)")
	}
	if v := r.Rows(s, 3); v != 2 {
		t.Errorf("expected 2 rows, got %d", v)
	}
}

func TestRendererReversed(t *testing.T) {
	s := testScreen(t, 3, 1)
	r := &Renderer{Reversed: true, Background: pixel.White}
	r.Draw(s, testStrip(0xffff0000, pixel.Transparent, 0xff0000ff))

	expectCell(t, s, 2, 0, 0xffff0000)
	expectCell(t, s, 1, 0, pixel.White)
	expectCell(t, s, 0, 0, 0xff0000ff)
}

func TestRendererOffset(t *testing.T) {
	s := testScreen(t, 5, 3)
	r := &Renderer{X: 2, Y: 1}
	r.Draw(s, testStrip(pixel.White, pixel.White, pixel.White, pixel.White))

	if v := r.Rows(s, 4); v != 2 {
		t.Errorf("expected 2 rows, got %d", v)
	}
	expectCell(t, s, 2, 1, pixel.White)
	expectCell(t, s, 4, 1, pixel.White)
	expectCell(t, s, 2, 2, pixel.White)
	if v, _, _, _ := s.GetContent(0, 1); v == Cell {
		t.Error("expected no LED left of the origin")
	}
}
