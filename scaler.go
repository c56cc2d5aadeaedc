package xbrz

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/gogpu/xbrz/internal/color"
	"github.com/gogpu/xbrz/internal/pool"
)

// Supported scale factors.
const (
	MinFactor = 2
	MaxFactor = 6
)

// MaxOutputPixels is the largest target buffer a Scaler will allocate or
// write, in pixels.
const MaxOutputPixels = math.MaxInt32

// rowBuffers recycles the per-call blend lookahead rows.
var rowBuffers = pool.NewPool(16)

// Scaler upscales packed ARGB pixel buffers by a fixed integer factor.
//
// A Scaler is immutable after New and safe for concurrent use: every call
// keeps its scratch state (kernel window, lookahead row, output cursor) to
// itself. Concurrent ScaleRange calls may target disjoint row ranges of the
// same destination buffer.
type Scaler struct {
	factor    int
	withAlpha bool
	cfg       Config
	dist      ColorDistance
	gradient  color.Gradient
	rot       *rotationTable
	patterns  *scalePatterns
}

// New creates a Scaler for factor, which must be in [MinFactor, MaxFactor].
//
// With withAlpha set, pixels outside the image read as transparent black,
// color distances account for alpha and blends weigh colors by alpha.
// Without it, the image edge is replicated and results are fully opaque.
func New(factor int, withAlpha bool, opts ...Option) (*Scaler, error) {
	if factor < MinFactor || factor > MaxFactor {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidFactor, factor, MinFactor, MaxFactor)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	dist := o.distance
	if dist == nil {
		dist = YCbCrDistance(o.config.LuminanceWeight)
	}

	s := &Scaler{
		factor:    factor,
		withAlpha: withAlpha,
		cfg:       o.config,
		dist:      dist,
		gradient:  color.GradientRGB,
		rot:       newRotationTable(factor),
		patterns:  patternsFor(factor),
	}
	if withAlpha {
		s.dist = AlphaDistance(dist)
		s.gradient = color.GradientARGB
	}

	Logger().Debug("xbrz: scaler created",
		"factor", factor, "alpha", withAlpha, "customDistance", o.distance != nil)
	return s, nil
}

// Factor returns the scale factor.
func (s *Scaler) Factor() int { return s.factor }

// HasAlpha reports whether the scaler treats the alpha channel.
func (s *Scaler) HasAlpha() bool { return s.withAlpha }

// Config returns a copy of the scaler's heuristics.
func (s *Scaler) Config() Config { return s.cfg }

// OutputLen returns (width*factor) * (height*factor), the length of the
// target buffer, or ErrAllocation if it overflows or exceeds
// MaxOutputPixels. A non-positive width or height yields 0.
func OutputLen(width, height, factor int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, nil
	}
	if factor < MinFactor || factor > MaxFactor {
		return 0, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidFactor, factor, MinFactor, MaxFactor)
	}

	hiW, w := bits.Mul64(uint64(width), uint64(factor))
	hiH, h := bits.Mul64(uint64(height), uint64(factor))
	hi, n := bits.Mul64(w, h)
	if hiW != 0 || hiH != 0 || hi != 0 || n > MaxOutputPixels {
		return 0, fmt.Errorf("%w: %dx%d scaled by %d", ErrAllocation, width, height, factor)
	}
	return int(n), nil
}

// Scale returns a new buffer holding src scaled by the scaler's factor.
// src is row-major with stride width and must hold width*height pixels.
func (s *Scaler) Scale(src []uint32, width, height int) ([]uint32, error) {
	return s.ScaleInto(src, nil, width, height)
}

// ScaleInto scales the whole of src into dst and returns dst. A nil dst is
// allocated with the exact target length.
//
// A zero-area source is a no-op that returns dst unchanged.
func (s *Scaler) ScaleInto(src, dst []uint32, width, height int) ([]uint32, error) {
	if width <= 0 || height <= 0 {
		return dst, nil
	}

	n, err := OutputLen(width, height, s.factor)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]uint32, n)
	}

	if err := s.ScaleRange(src, dst, width, height, 0, height); err != nil {
		return nil, err
	}
	return dst, nil
}

// ScaleRange writes the output rows that correspond to source rows
// [yFirst, yLast) into dst. The range is clamped to [0, height).
//
// dst must hold the whole scaled image. Calls for disjoint row ranges may
// run concurrently on the same src and dst; the result equals a single
// call over the union of the ranges.
func (s *Scaler) ScaleRange(src, dst []uint32, width, height, yFirst, yLast int) error {
	yFirst = max(yFirst, 0)
	yLast = min(yLast, height)
	if yFirst >= yLast || width <= 0 {
		return nil
	}

	n, err := OutputLen(width, height, s.factor)
	if err != nil {
		return err
	}
	if len(src) < width*height {
		return fmt.Errorf("%w: have %d pixels, want %d", ErrSourceTooSmall, len(src), width*height)
	}
	if len(dst) < n {
		return fmt.Errorf("%w: have %d pixels, want %d", ErrDestTooSmall, len(dst), n)
	}

	s.scaleRange(src, dst, width, height, yFirst, yLast)
	return nil
}

// ScaleImage is shorthand for New(factor, withAlpha) followed by Scale.
func ScaleImage(factor int, withAlpha bool, src []uint32, width, height int) ([]uint32, error) {
	s, err := New(factor, withAlpha)
	if err != nil {
		return nil, err
	}
	return s.Scale(src, width, height)
}

// scaleRange runs the two-pass scan over source rows [yFirst, yLast).
//
// Corner classification of the block at the bottom-right of (x, y)
// contributes to four pixels: bottom-right of (x, y), bottom-left of
// (x+1, y), top-right of (x, y+1) and top-left of (x+1, y+1). A pixel's
// code is complete once its own block has been classified, which the
// scan order guarantees. preProc carries the partial codes of the next row.
func (s *Scaler) scaleRange(src, trg []uint32, srcWidth, srcHeight, yFirst, yLast int) {
	preProc := rowBuffers.Get(srcWidth)
	defer rowBuffers.Put(preProc)

	var ker kernel4x4
	ker.reset(src, srcWidth, srcHeight, s.withAlpha)

	var out outputMatrix
	out.reset(trg, srcWidth*s.factor, s.rot, s.gradient)

	// Seed the top-left and top-right corners of row yFirst from row
	// yFirst-1. Every stripe does this on its own.
	ker.positionY(yFirst - 1)
	res := s.preProcessCorners(&ker)
	preProc[0] = byte(res.k)

	for x := range srcWidth {
		ker.shift()
		ker.readDHLP(x)

		res = s.preProcessCorners(&ker)
		preProc[x] = byte(blendCode(preProc[x]).addTopR(res.j))
		if x+1 < srcWidth {
			preProc[x+1] = byte(res.k)
		}
	}

	for y := yFirst; y < yLast; y++ {
		out.positionY(y)
		ker.positionY(y)

		// Corners of (0, y+1) and (0, y) seen from x = -1.
		res = s.preProcessCorners(&ker)
		blendXY1 := blendCode(res.k)
		preProc[0] = byte(blendCode(preProc[0]).addBottomL(res.g))

		for x := range srcWidth {
			ker.shift()
			ker.readDHLP(x)

			res = s.preProcessCorners(&ker)
			blendXY := blendCode(preProc[x]).addBottomR(res.f)

			blendXY1 = blendXY1.addTopR(res.j)
			preProc[x] = byte(blendXY1)

			if x+1 < srcWidth {
				blendXY1 = blendCode(res.k)
				preProc[x+1] = byte(blendCode(preProc[x+1]).addBottomL(res.g))
			}

			out.fillBlock(ker.f)

			if blendXY != 0 {
				s.blendPixel(rot0, &ker, &out, blendXY)
				s.blendPixel(rot90, &ker, &out, blendXY)
				s.blendPixel(rot180, &ker, &out, blendXY)
				s.blendPixel(rot270, &ker, &out, blendXY)
			}
			out.incrementX()
		}
	}
}

// eq reports whether two pixels are within EqualColorTolerance.
func (s *Scaler) eq(p1, p2 uint32) bool {
	return s.dist.Distance(p1, p2) < s.cfg.EqualColorTolerance
}

// blendPixel blends the corner of the current pixel that info marks at
// the bottom-right once rotated by rot.
func (s *Scaler) blendPixel(rot rotation, ker *kernel4x4, out *outputMatrix, info blendCode) {
	blend := info.rotate(rot)
	if blend.bottomR() < blendNormal {
		return
	}

	k := read3x3(ker, rot)
	e, f, g, h, c, i := k.e, k.f, k.g, k.h, k.c, k.i

	var doLineBlend bool
	switch {
	case blend.bottomR() >= blendDominant:
		doLineBlend = true

	// No second blend in an adjacent rotation of this pixel: handles
	// insular pixels. Double blending is kept for 90 degree corners.
	case blend.topR() != blendNone && !s.eq(e, g):
		doLineBlend = false
	case blend.bottomL() != blendNone && !s.eq(e, c):
		doLineBlend = false

	// L-shapes get a corner blend only.
	case !s.eq(e, i) && s.eq(g, h) && s.eq(h, i) && s.eq(i, f) && s.eq(f, c):
		doLineBlend = false

	default:
		doLineBlend = true
	}

	// Most similar neighbor.
	px := h
	if s.dist.Distance(e, f) <= s.dist.Distance(e, h) {
		px = f
	}

	p := s.patterns
	if !doLineBlend {
		p.corner.apply(out, rot, px)
		return
	}

	fg := s.dist.Distance(f, g)
	hc := s.dist.Distance(h, c)

	shallow := s.cfg.SteepDirectionThreshold*fg <= hc && e != g && k.d != g
	steep := s.cfg.SteepDirectionThreshold*hc <= fg && e != c && k.b != c

	switch {
	case shallow && steep:
		p.steepAndShallow.apply(out, rot, px)
	case shallow:
		p.shallow.apply(out, rot, px)
	case steep:
		p.steep.apply(out, rot, px)
	default:
		p.diagonal.apply(out, rot, px)
	}
}
