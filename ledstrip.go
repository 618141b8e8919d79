// Package ledstrip drives addressable LED strips from ARGB frame buffers.
//
// A [Strip] owns one frame buffer that callers compose with the operations of the pixel
// package, and pushes it to a [Sink] on every [Strip.Refresh]. Sinks render frames as hex
// lines, record them, or encode them for LEDs connected over SPI or I²C.
package ledstrip

import (
	"errors"
	"os"

	"github.com/BeatGlow/ledstrip/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("LEDSTRIP_DEBUG") != ""
}

// Errors
var (
	ErrPixels = errors.New("ledstrip: strip needs at least one pixel")
	ErrSink   = errors.New("ledstrip: no sink")
	ErrClosed = errors.New("ledstrip: strip is closed")
)

// Config is the strip configuration.
type Config struct {
	// Pixels is the number of LEDs on the strip.
	Pixels int

	// Width of a matrix in pixels, 0 for a single row.
	Width int

	// Reversed strips are wired right to left, the frame is mirrored before it is sent.
	Reversed bool
}

// DefaultConfig is a 60 LED strip, one meter of the most common density.
var DefaultConfig = Config{
	Pixels: 60,
}

// Strip is an LED strip with its frame buffer.
type Strip struct {
	sink     Sink
	pix      []byte
	out      []byte
	width    int
	reversed bool
	closed   bool
}

// New allocates the frame buffer for a strip and attaches it to sink. A nil config means
// DefaultConfig.
func New(config *Config, sink Sink) (*Strip, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Pixels <= 0 {
		return nil, ErrPixels
	}
	if sink == nil {
		return nil, ErrSink
	}

	s := &Strip{
		sink:     sink,
		pix:      pixel.Make(config.Pixels),
		width:    config.Width,
		reversed: config.Reversed,
	}
	if s.reversed {
		s.out = pixel.Make(config.Pixels)
	}
	return s, nil
}

func (s *Strip) String() string {
	return s.sink.String()
}

// Pixels is the frame buffer, changes are sent on the next Refresh.
func (s *Strip) Pixels() []byte {
	return s.pix
}

// Len is the number of LEDs.
func (s *Strip) Len() int {
	return pixel.Len(s.pix)
}

// Image is a matrix view of the frame buffer, a strip without Width is a single row.
func (s *Strip) Image() (*pixel.ARGBImage, error) {
	w := s.width
	if w <= 0 {
		w = s.Len()
	}
	return pixel.NewImage(s.pix, w, s.Len()/w)
}

// Clear the frame buffer to transparent black.
func (s *Strip) Clear() {
	_ = pixel.Fill(s.pix, pixel.Transparent, pixel.All)
}

// Refresh sends the frame buffer to the sink.
func (s *Strip) Refresh() error {
	if s.closed {
		return ErrClosed
	}
	if !s.reversed {
		return s.sink.Write(s.pix)
	}
	n := s.Len()
	for i := 0; i < n; i++ {
		pixel.Set(s.out, n-1-i, pixel.At(s.pix, i))
	}
	return s.sink.Write(s.out)
}

// Close the sink, the strip can not be refreshed afterwards.
func (s *Strip) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.sink.Close()
}
