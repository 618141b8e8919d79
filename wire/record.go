package wire

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/BeatGlow/ledstrip/pixel"
)

// Recording errors.
var (
	ErrHeader = errors.New("wire: recording needs exactly one leds header before the first frame")
)

// header is the first line of a recording.
type header struct {
	Leds int `json:"leds"`
}

// line is any line of a recording.
type line struct {
	Leds *int   `json:"leds,omitempty"`
	T    *int64 `json:"t,omitempty"`
	Buf  string `json:"buf,omitempty"`
}

// Frame is one recorded frame.
type Frame struct {
	// T is the time of the frame since the start of the recording.
	T time.Duration

	// Pix are the frame pixels.
	Pix []byte
}

// Recorder writes a JSON Lines recording: a {"leds":N} header, then one
// {"t":<ms>,"buf":"<hex>"} line per frame with the pixels in AARRGGBB form.
type Recorder struct {
	w    *bufio.Writer
	leds int
	line []byte
}

// NewRecorder writes the header for a strip of leds pixels to w.
func NewRecorder(w io.Writer, leds int) (*Recorder, error) {
	r := &Recorder{
		w:    bufio.NewWriter(w),
		leds: leds,
	}
	b, err := json.Marshal(header{Leds: leds})
	if err != nil {
		return nil, err
	}
	if _, err = r.w.Write(append(b, '\n')); err != nil {
		return nil, err
	}
	return r, r.w.Flush()
}

// Leds is the strip size announced in the header.
func (r *Recorder) Leds() int {
	return r.leds
}

// WriteFrame appends a frame taken at t. Only the first Leds pixels of buf are recorded.
func (r *Recorder) WriteFrame(t time.Duration, buf []byte) error {
	if n := r.leds * pixel.BytesPerPixel; len(buf) > n {
		buf = buf[:n]
	}
	r.line = append(r.line[:0], `{"t":`...)
	r.line = strconv.AppendInt(r.line, t.Milliseconds(), 10)
	r.line = append(r.line, `,"buf":"`...)
	r.line = AppendHex(r.line, buf)
	r.line = append(r.line, "\"}\n"...)
	if _, err := r.w.Write(r.line); err != nil {
		return err
	}
	return r.w.Flush()
}

// Player reads a recording written by a [Recorder].
type Player struct {
	s    *bufio.Scanner
	leds int
}

// NewPlayer reads the recording header from r.
func NewPlayer(r io.Reader) (*Player, error) {
	p := &Player{s: bufio.NewScanner(r)}
	p.s.Buffer(nil, 1<<24)

	l, err := p.next()
	if err == io.EOF {
		return nil, ErrHeader
	} else if err != nil {
		return nil, err
	}
	if l.Leds == nil || l.T != nil {
		return nil, ErrHeader
	}
	p.leds = *l.Leds
	return p, nil
}

// Leds is the strip size announced in the header.
func (p *Player) Leds() int {
	return p.leds
}

// Next returns the next frame, or io.EOF at the end of the recording. The frame is always
// Leds pixels long; missing pixels are transparent. A frame of exactly 6 hex characters per
// LED holds GRB LED bytes and decodes to opaque pixels, any other length is AARRGGBB.
func (p *Player) Next() (Frame, error) {
	l, err := p.next()
	if err != nil {
		return Frame{}, err
	}
	if l.Leds != nil {
		return Frame{}, ErrHeader
	}
	if l.T == nil {
		return Frame{}, fmt.Errorf("wire: frame without timestamp")
	}

	f := Frame{
		T:   time.Duration(*l.T) * time.Millisecond,
		Pix: pixel.Make(p.leds),
	}
	if p.leds > 0 && len(l.Buf) == 2*BytesPerLED*p.leds {
		// LED bytes in GRB order, as written by strip emulators.
		raw, err := hex.DecodeString(l.Buf)
		if err != nil {
			return Frame{}, fmt.Errorf("wire: frame at %s: %w", f.T, err)
		}
		GRB.Decode(f.Pix, raw)
		return f, nil
	}
	if _, err = DecodeHex(f.Pix, l.Buf); err != nil {
		return Frame{}, fmt.Errorf("wire: frame at %s: %w", f.T, err)
	}
	return f, nil
}

func (p *Player) next() (l line, err error) {
	for p.s.Scan() {
		b := p.s.Bytes()
		if len(b) == 0 {
			continue
		}
		if err = json.Unmarshal(b, &l); err != nil {
			return l, err
		}
		return l, nil
	}
	if err = p.s.Err(); err != nil {
		return l, err
	}
	return l, io.EOF
}
