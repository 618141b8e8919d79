package ledstrip

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/BeatGlow/ledstrip/wire"
)

// Sink receives rendered frames.
type Sink interface {
	String() string

	// Write sends one frame of ARGB pixels.
	Write(pix []byte) error

	// Close the sink.
	Close() error
}

// HexSink writes every frame as one line in the hex transfer format.
type HexSink struct {
	w    io.Writer
	line []byte
}

// NewHexSink writes hex frames to w, w is closed with the sink if it is an io.Closer.
func NewHexSink(w io.Writer) *HexSink {
	return &HexSink{w: w}
}

func (s *HexSink) String() string {
	return "hex"
}

func (s *HexSink) Write(pix []byte) error {
	s.line = append(wire.AppendHex(s.line[:0], pix), '\n')
	_, err := s.w.Write(s.line)
	return err
}

func (s *HexSink) Close() error {
	return closeWriter(s.w)
}

// RecordSink writes frames to a recording, stamped with the time since the first frame.
type RecordSink struct {
	// Now is the clock used for frame times.
	Now func() time.Time

	mu    sync.Mutex
	w     io.Writer
	rec   *wire.Recorder
	start time.Time
}

// NewRecordSink starts a recording of a leds pixels strip on w.
func NewRecordSink(w io.Writer, leds int) (*RecordSink, error) {
	rec, err := wire.NewRecorder(w, leds)
	if err != nil {
		return nil, fmt.Errorf("ledstrip: recording header: %w", err)
	}
	return &RecordSink{
		Now: time.Now,
		w:   w,
		rec: rec,
	}, nil
}

func (s *RecordSink) String() string {
	return fmt.Sprintf("recording of %d LEDs", s.rec.Leds())
}

func (s *RecordSink) Write(pix []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	if s.start.IsZero() {
		s.start = now
	}
	return s.rec.WriteFrame(now.Sub(s.start), pix)
}

func (s *RecordSink) Close() error {
	return closeWriter(s.w)
}

func closeWriter(w io.Writer) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var (
	_ Sink = (*HexSink)(nil)
	_ Sink = (*RecordSink)(nil)
)
