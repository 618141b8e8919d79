// Package pixel implements ARGB pixel buffer compositing for addressable LED strips and matrices.
//
// Buffers are plain byte slices owned by the caller, holding one little-endian 32-bit
// 0xAARRGGBB value per pixel. Every operation works in place on an inclusive [Region] of
// the buffer and never allocates, resizes or retains it.
//
// The [Image] type provides a view compatible with Go's native [image.Image] and
// [draw.Image] interfaces.
package pixel
