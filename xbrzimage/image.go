// Package xbrzimage adapts the xbrz scaler to image.Image.
//
// Images are converted to packed ARGB with straight alpha, scaled, and
// returned as *image.NRGBA. ScaleTo reaches arbitrary target sizes by
// scaling with the smallest sufficient xbrz factor and smoothing the rest
// of the way with golang.org/x/image/draw.
package xbrzimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/xbrz"
	"github.com/gogpu/xbrz/internal/cache"
	argb "github.com/gogpu/xbrz/internal/color"
)

// ErrInvalidSize is returned by ScaleTo for an empty source or target.
var ErrInvalidSize = errors.New("xbrzimage: invalid image size")

type scalerKey struct {
	factor    int
	withAlpha bool
}

// scalers holds at most one Scaler per (factor, alpha) pair.
var scalers = cache.New[scalerKey, *xbrz.Scaler](0)

// ScalerFor returns a shared Scaler with the default configuration.
// Scalers are immutable, so the same instance serves every caller.
func ScalerFor(factor int, withAlpha bool) (*xbrz.Scaler, error) {
	return scalers.GetOrCreate(scalerKey{factor, withAlpha}, func() (*xbrz.Scaler, error) {
		return xbrz.New(factor, withAlpha)
	})
}

// Pixels converts img to row-major packed ARGB pixels with straight alpha.
// hasAlpha reports whether any pixel is not fully opaque.
func Pixels(img image.Image) (pix []uint32, width, height int, hasAlpha bool) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, false
	}
	pix = make([]uint32, width*height)

	// Fast path for NRGBA images
	if m, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range width {
				p := row[x*4 : x*4+4 : x*4+4]
				pix[y*width+x] = argb.PackU8(argb.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]})
				hasAlpha = hasAlpha || p[3] != 0xFF
			}
		}
		return pix, width, height, hasAlpha
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pix[y*width+x] = argb.PackU8(argb.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A})
			hasAlpha = hasAlpha || c.A != 0xFF
		}
	}
	return pix, width, height, hasAlpha
}

// ToNRGBA builds a width x height image from packed ARGB pixels.
func ToNRGBA(pix []uint32, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("%w: have %d pixels, want %d", xbrz.ErrSourceTooSmall, len(pix), width*height)
	}

	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		row := m.Pix[y*m.Stride : y*m.Stride+width*4]
		for x, p := range pix[y*width : (y+1)*width] {
			c := argb.Unpack(p)
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return m, nil
}

// Scale enlarges img by factor using a shared Scaler. Alpha handling is
// enabled when img has any pixel that is not fully opaque.
func Scale(img image.Image, factor int) (*image.NRGBA, error) {
	pix, w, h, hasAlpha := Pixels(img)
	s, err := ScalerFor(factor, hasAlpha)
	if err != nil {
		return nil, err
	}
	if w == 0 || h == 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}

	out, err := s.Scale(pix, w, h)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(out, w*factor, h*factor)
}
