package main

import (
	"flag"
	"fmt"
	"log"

	"periph.io/x/host/v3"

	"github.com/BeatGlow/ledstrip"
)

func main() {
	busFlag := flag.Int("bus", ledstrip.DefaultSPIConfig.Bus, "SPI bus")
	deviceFlag := flag.Int("device", ledstrip.DefaultSPIConfig.Device, "SPI device")
	speedFlag := flag.Uint("speed", uint(ledstrip.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalln("host init failed: ", err)
	}

	config := ledstrip.DefaultSPIConfig
	config.Bus = *busFlag
	config.Device = *deviceFlag
	config.SpeedHz = uint32(*speedFlag)

	s, err := ledstrip.OpenSPI(&config)
	if err != nil {
		log.Fatalln("open failed: ", err)
	}
	fmt.Println("connected using", s, "with", s.BatchSize(), "byte writes")
	if err = s.Close(); err != nil {
		log.Fatalln("close failed: ", err)
	}
}
