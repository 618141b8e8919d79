package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPIMode is the SPI clock polarity and phase.
type SPIMode = spi.Mode

const (
	SPIMode0 = spi.Mode0
	SPIMode1 = spi.Mode1
	SPIMode2 = spi.Mode2
	SPIMode3 = spi.Mode3
)

// SPI is an SPI port connected at a fixed speed and mode.
type SPI struct {
	port  spi.PortCloser
	conn  spi.Conn
	mode  SPIMode
	speed physic.Frequency
}

// OpenSPI opens the numbered SPI bus and device, as registered with periph. The device often
// corresponds to the CS pin for that bus.
func OpenSPI(bus, device int, hz uint32, mode SPIMode) (*SPI, error) {
	name := fmt.Sprintf("SPI%d.%d", bus, device)
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	speed := physic.Frequency(hz) * physic.Hertz
	c, err := port.Connect(speed, mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("conn: SPI %s at %s: %w", name, speed, err)
	}

	return &SPI{
		port:  port,
		conn:  c,
		mode:  mode,
		speed: speed,
	}, nil
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s mode=%d speed=%s", c.port, c.mode, c.speed)
}

// Tx implements conn.Conn.
func (c *SPI) Tx(w, r []byte) error {
	return c.conn.Tx(w, r)
}

// Duplex implements conn.Conn.
func (c *SPI) Duplex() conn.Duplex {
	return c.conn.Duplex()
}

// MaxTxSize implements conn.Limits, 0 means no limit.
func (c *SPI) MaxTxSize() int {
	if l, ok := c.conn.(conn.Limits); ok {
		return l.MaxTxSize()
	}
	return 0
}

var (
	_ conn.Conn   = (*SPI)(nil)
	_ conn.Limits = (*SPI)(nil)
)
