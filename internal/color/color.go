// Package color provides packed 32-bit ARGB pixel access for xbrz.
//
// Pixels are stored as uint32 values laid out as (a<<24)|(r<<16)|(g<<8)|b.
// Channels are straight (not premultiplied) 8-bit values.
package color

// Transparent is fully transparent black.
const Transparent uint32 = 0

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is straight, never premultiplied.
type ColorU8 struct {
	R, G, B, A uint8
}

// Alpha returns the alpha channel of a packed pixel.
func Alpha(p uint32) int { return int(p >> 24 & 0xFF) }

// Red returns the red channel of a packed pixel.
func Red(p uint32) int { return int(p >> 16 & 0xFF) }

// Green returns the green channel of a packed pixel.
func Green(p uint32) int { return int(p >> 8 & 0xFF) }

// Blue returns the blue channel of a packed pixel.
func Blue(p uint32) int { return int(p & 0xFF) }

// Pack builds a packed pixel from channel values in [0,255].
// Values outside the range are truncated to their low 8 bits.
func Pack(a, r, g, b int) uint32 {
	//nolint:gosec // G115: channels are masked to 8 bits
	return uint32(a&0xFF)<<24 | uint32(r&0xFF)<<16 | uint32(g&0xFF)<<8 | uint32(b&0xFF)
}

// PackRGB builds a fully opaque packed pixel.
func PackRGB(r, g, b int) uint32 {
	return Pack(0xFF, r, g, b)
}

// Unpack splits a packed pixel into its channels.
func Unpack(p uint32) ColorU8 {
	return ColorU8{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// PackU8 is the inverse of Unpack.
func PackU8(c ColorU8) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
