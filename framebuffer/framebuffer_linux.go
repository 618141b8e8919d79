package framebuffer

import (
	"errors"
	"os"
	"syscall"

	"github.com/BeatGlow/ledstrip/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fd   = f.Fd()
		info fixScreenInfo
		mode varScreenInfo
	)
	if err = ioctl.Do(fd, fbioGetFScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(fd, fbioGetVScreenInfo, &mode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if !mode.isXRGB() {
		_ = f.Close()
		return nil, ErrFormat
	}

	mem, err := syscall.Mmap(int(fd), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	d, err := newDevice(name, mem, &mode, info.LineLength)
	if err != nil {
		_ = syscall.Munmap(mem)
		_ = f.Close()
		return nil, err
	}
	d.close = func() error {
		return errors.Join(syscall.Munmap(mem), f.Close())
	}
	return d, nil
}
