package xbrzimage

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/xbrz"
)

// FindFactor returns the smallest factor in [1, xbrz.MaxFactor] that scales
// a srcWidth x srcHeight image to at least targetWidth x targetHeight, or
// xbrz.MaxFactor when none does. 1 means no xbrz pass is needed.
func FindFactor(srcWidth, srcHeight, targetWidth, targetHeight int) int {
	factor := 1
	for (srcWidth*factor < targetWidth || srcHeight*factor < targetHeight) && factor < xbrz.MaxFactor {
		factor++
	}
	return factor
}

// ScaleTo resizes img to width x height.
//
// The image is first enlarged with the smallest xbrz factor that covers the
// target (see FindFactor). If that does not land on the target exactly, the
// result is resized smoothly with Catmull-Rom; reductions to less than half
// the size go through intermediate halving steps so that no source pixels
// are skipped.
func ScaleTo(img image.Image, width, height int) (*image.NRGBA, error) {
	b := img.Bounds()
	if width <= 0 || height <= 0 || b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d to %dx%d", ErrInvalidSize, b.Dx(), b.Dy(), width, height)
	}

	factor := FindFactor(b.Dx(), b.Dy(), width, height)
	xbrz.Logger().Debug("xbrzimage: scale to size",
		"src", b.Size(), "width", width, "height", height, "factor", factor)

	var scaled *image.NRGBA
	if factor == 1 {
		pix, w, h, _ := Pixels(img)
		m, err := ToNRGBA(pix, w, h)
		if err != nil {
			return nil, err
		}
		scaled = m
	} else {
		m, err := Scale(img, factor)
		if err != nil {
			return nil, err
		}
		scaled = m
	}

	if scaled.Rect.Dx() == width && scaled.Rect.Dy() == height {
		return scaled, nil
	}

	return resizeSmooth(scaled, width, height, xdraw.CatmullRom), nil
}

// resizeSmooth scales src to width x height with interp. A target below half
// the source size in either direction is first reached at twice its size,
// recursively, using the cheaper ApproxBiLinear. Every step renders into
// NRGBA so that translucent colors are not quantized as premultiplied bytes.
func resizeSmooth(src image.Image, width, height int, interp xdraw.Interpolator) *image.NRGBA {
	b := src.Bounds()
	halfWidth, halfHeight := b.Dx()/2, b.Dy()/2

	if width < halfWidth || height < halfHeight {
		w, h := width, height
		if width < halfWidth {
			w = width * 2
		}
		if height < halfHeight {
			h = height * 2
		}
		src = resizeSmooth(src, w, h, xdraw.ApproxBiLinear)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
