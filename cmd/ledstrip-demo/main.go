package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/framebuffer"
	"github.com/BeatGlow/ledstrip/pixel"
	"github.com/BeatGlow/ledstrip/wire"
)

func main() {
	ledsFlag := flag.Int("leds", ledstrip.DefaultConfig.Pixels, "Number of LEDs")
	widthFlag := flag.Int("width", 0, "Matrix width (0 for a strip)")
	reversedFlag := flag.Bool("reversed", false, "Strip is wired right to left")
	fpsFlag := flag.Int("fps", 20, "Frames per second")
	framesFlag := flag.Int("frames", 0, "Stop after this many frames (0 runs forever)")
	outFlag := flag.String("o", "-", "Output file for the hex and record sinks")
	fromFlag := flag.String("from", "#ff0000", "Gradient start color")
	toFlag := flag.String("to", "#0000ff", "Gradient end color")
	dotFlag := flag.String("dot", "#ffffff", "Moving dot color")
	spiBusFlag := flag.Int("spi-bus", ledstrip.DefaultSPIConfig.Bus, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", ledstrip.DefaultSPIConfig.Device, "SPI device")
	speedFlag := flag.Uint("speed", uint(ledstrip.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	i2cDeviceFlag := flag.Int("i2c-dev", ledstrip.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ledstrip.DefaultI2CConfig.Addr), "I²C device address")
	orderFlag := flag.String("order", wire.DefaultEncoder.Order.String(), "LED color order (GRB, RGB or BGR)")
	brightnessFlag := flag.Uint("brightness", uint(wire.DefaultEncoder.Brightness), "LED brightness (0-255)")
	gammaFlag := flag.Bool("gamma", false, "Apply gamma correction")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device")
	sizeFlag := flag.Int("size", draw.DefaultOptions.Size, "Framebuffer LED size in pixels")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <hex|record|spi|i2c|fb>\n", os.Args[0])
		os.Exit(1)
	}

	var (
		from = parseColor(*fromFlag)
		to   = parseColor(*toFlag)
		dot  = parseColor(*dotFlag)
	)

	order, err := wire.ParseOrder(*orderFlag)
	if err != nil {
		fatal(err)
	}
	if *brightnessFlag > 255 {
		fatal(fmt.Errorf("invalid brightness %d", *brightnessFlag))
	}
	encoder := wire.Encoder{
		Order:      order,
		Brightness: uint8(*brightnessFlag),
		Gamma:      *gammaFlag,
	}

	var sink ledstrip.Sink
	switch sinkType := flag.Arg(0); sinkType {
	case "hex":
		sink = ledstrip.NewHexSink(output(*outFlag))
	case "record":
		sink, err = ledstrip.NewRecordSink(output(*outFlag), *ledsFlag)
	case "fb":
		var dev *framebuffer.Device
		if dev, err = framebuffer.Open(*fbFlag); err == nil {
			opts := draw.DefaultOptions
			opts.Width = *widthFlag
			opts.Size = *sizeFlag
			sink = framebuffer.NewSink(dev, &opts)
		}
	case "spi", "i2c":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		if sinkType == "spi" {
			sink, err = ledstrip.OpenSPI(&ledstrip.SPIConfig{
				Bus:     *spiBusFlag,
				Device:  *spiDeviceFlag,
				Mode:    ledstrip.DefaultSPIConfig.Mode,
				SpeedHz: uint32(*speedFlag),
				Encoder: encoder,
			})
		} else {
			sink, err = ledstrip.OpenI2C(&ledstrip.I2CConfig{
				Device:  *i2cDeviceFlag,
				Addr:    uint8(*i2cAddrFlag),
				Encoder: encoder,
			})
		}
	default:
		err = fmt.Errorf("unsupported sink %q", sinkType)
	}
	if err != nil {
		fatal(err)
	}

	strip, err := ledstrip.New(&ledstrip.Config{
		Pixels:   *ledsFlag,
		Width:    *widthFlag,
		Reversed: *reversedFlag,
	}, sink)
	if err != nil {
		_ = sink.Close()
		fatal(err)
	}
	defer strip.Close()
	fmt.Fprintf(os.Stderr, "using sink: %s\n", strip)

	if *fpsFlag <= 0 {
		fatal(fmt.Errorf("invalid frame rate %d", *fpsFlag))
	}
	var (
		d      = newDemo(strip.Len(), from, to, dot)
		ticker = time.NewTicker(time.Second / time.Duration(*fpsFlag))
	)
	defer ticker.Stop()

	fmt.Fprintln(os.Stderr, "hit control-c to stop...")
	for frame := 0; *framesFlag == 0 || frame < *framesFlag; frame++ {
		if err = d.render(strip.Pixels(), frame); err != nil {
			fatal(err)
		}
		if err = strip.Refresh(); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
}

func parseColor(s string) pixel.ARGB {
	c, err := colorful.Hex(s)
	if err != nil {
		fatal(fmt.Errorf("invalid color %q: %w", s, err))
	}
	r, g, b := c.RGB255()
	return pixel.NewARGB(0xff, r, g, b)
}

func output(name string) *os.File {
	if name == "-" {
		return os.Stdout
	}
	f, err := os.Create(name)
	if err != nil {
		fatal(err)
	}
	return f
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
