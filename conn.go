package ledstrip

import (
	"errors"
	"fmt"
	"io"
	"log"

	pconn "periph.io/x/conn/v3"

	"github.com/BeatGlow/ledstrip/conn"
	"github.com/BeatGlow/ledstrip/pixel"
	"github.com/BeatGlow/ledstrip/wire"
)

// Conn errors.
var (
	ErrConn = errors.New("ledstrip: no connection")
)

// ConnSink encodes frames for the LEDs and writes them over a periph connection.
type ConnSink struct {
	c         pconn.Conn
	closer    io.Closer
	encoder   wire.Encoder
	batchSize int
	buf       []byte
}

// NewConnSink writes frames encoded with e over c in writes of at most batchSize bytes, or the
// connection's own limit if that is smaller. A batchSize of 0 means DefaultSPIConfig.BatchSize.
// If c is an io.Closer it is closed with the sink.
func NewConnSink(c pconn.Conn, e wire.Encoder, batchSize int) (*ConnSink, error) {
	if c == nil {
		return nil, ErrConn
	}
	if batchSize <= 0 {
		batchSize = int(DefaultSPIConfig.BatchSize)
	}
	if l, ok := c.(pconn.Limits); ok {
		if limit := l.MaxTxSize(); limit > 0 && limit < batchSize {
			batchSize = limit
		}
	}

	s := &ConnSink{
		c:         c,
		encoder:   e,
		batchSize: batchSize,
	}
	s.closer, _ = c.(io.Closer)
	return s, nil
}

func (s *ConnSink) String() string {
	return fmt.Sprintf("%s %s", s.encoder.Order, s.c)
}

// BatchSize is the largest single write.
func (s *ConnSink) BatchSize() int {
	return s.batchSize
}

func (s *ConnSink) Write(pix []byte) error {
	if size := s.encoder.Len(pixel.Len(pix)); cap(s.buf) < size {
		s.buf = make([]byte, size)
	} else {
		s.buf = s.buf[:size]
	}
	s.encoder.Encode(s.buf, pix)
	return s.writeChunked(s.buf)
}

func (s *ConnSink) writeChunked(data []byte) (err error) {
	if len(data) <= s.batchSize {
		return s.c.Tx(data, nil)
	}

	if debug {
		log.Printf("write %d bytes of data in %d chunks", len(data), (len(data)+s.batchSize-1)/s.batchSize)
	}
	for len(data) > 0 {
		n := min(len(data), s.batchSize)
		if err = s.c.Tx(data[:n], nil); err != nil {
			return
		}
		data = data[n:]
	}
	return
}

func (s *ConnSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	Mode      conn.SPIMode
	SpeedHz   uint32
	BatchSize uint

	// Encoder converts frames to LED bytes.
	Encoder wire.Encoder
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	Mode:      conn.SPIMode0,
	SpeedHz:   2_000_000,
	BatchSize: 4096,
	Encoder:   wire.DefaultEncoder,
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	28_000_000,
	32_000_000,
}

// ValidSPISpeed checks if hz is one of the ValidSPISpeeds.
func ValidSPISpeed(hz uint32) bool {
	for _, speed := range ValidSPISpeeds {
		if speed == hz {
			return true
		}
	}
	return false
}

// OpenSPI opens an SPI port for the LEDs. A nil config means DefaultSPIConfig; host drivers
// must be initialised before.
func OpenSPI(config *SPIConfig) (*ConnSink, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}
	if !ValidSPISpeed(config.SpeedHz) {
		return nil, fmt.Errorf("ledstrip: invalid SPI speed %dHz", config.SpeedHz)
	}

	c, err := conn.OpenSPI(config.Bus, config.Device, config.SpeedHz, config.Mode)
	if err != nil {
		return nil, err
	}

	s, err := NewConnSink(c, config.Encoder, int(config.BatchSize))
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return s, nil
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// BatchSize is the largest single write.
	BatchSize uint

	// Encoder converts frames to LED bytes.
	Encoder wire.Encoder
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device:    -1,
	Addr:      0x74,
	BatchSize: 32,
	Encoder:   wire.Encoder{Order: wire.RGB, Brightness: 255},
}

// OpenI2C opens an I²C bus for an LED controller. A nil config means DefaultI2CConfig.
func OpenI2C(config *I2CConfig) (*ConnSink, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultI2CConfig.BatchSize
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	s, err := NewConnSink(c, config.Encoder, int(config.BatchSize))
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return s, nil
}

var _ Sink = (*ConnSink)(nil)
