//go:build !linux

package framebuffer

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}
