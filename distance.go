package xbrz

import (
	"fmt"
	"math"

	"github.com/gogpu/xbrz/internal/cache"
	"github.com/gogpu/xbrz/internal/color"
)

// ColorDistance measures the perceptual difference between two packed
// pixels. Implementations must be symmetric, return 0 for identical pixels
// and be safe for concurrent use.
//
// The distances in this package ignore alpha; wrap them with AlphaDistance
// to account for transparency. A Scaler created with alpha enabled does
// that automatically.
type ColorDistance interface {
	Distance(p1, p2 uint32) float64
}

// ColorDistanceFunc adapts an ordinary function to the ColorDistance
// interface.
type ColorDistanceFunc func(p1, p2 uint32) float64

// Distance calls f(p1, p2).
func (f ColorDistanceFunc) Distance(p1, p2 uint32) float64 { return f(p1, p2) }

// ITU-R BT.2020 luma coefficients.
//
// These are variables so that the derived coefficients are computed in
// float64 arithmetic, matching the reference implementation bit for bit.
var (
	kB = 0.0593
	kR = 0.2627
	kG = 1 - kB - kR

	scaleB = 0.5 / (1 - kB)
	scaleR = 0.5 / (1 - kR)
)

// RGBDistance returns the Euclidean distance in RGB space.
func RGBDistance() ColorDistance {
	return ColorDistanceFunc(func(p1, p2 uint32) float64 {
		dr := color.Red(p1) - color.Red(p2)
		dg := color.Green(p1) - color.Green(p2)
		db := color.Blue(p1) - color.Blue(p2)
		return math.Sqrt(float64(dr*dr + dg*dg + db*db))
	})
}

// YCbCrDistance returns the distance in analog YCbCr space with the luma
// difference scaled by lumaWeight. This is the default distance.
//
// The conversion is linear, so channel differences are transformed instead
// of both colors. Results stay in the 0..255 range of the channels rather
// than being normalized.
func YCbCrDistance(lumaWeight float64) ColorDistance {
	return yCbCrDistance{lumaWeight: lumaWeight}
}

type yCbCrDistance struct {
	lumaWeight float64
}

func (d yCbCrDistance) Distance(p1, p2 uint32) float64 {
	dr := float64(color.Red(p1) - color.Red(p2))
	dg := float64(color.Green(p1) - color.Green(p2))
	db := float64(color.Blue(p1) - color.Blue(p2))

	y := kR*dr + kG*dg + kB*db
	cb := scaleB * (db - y)
	cr := scaleR * (dr - y)

	if d.lumaWeight != 1 {
		y *= d.lumaWeight
	}
	return math.Sqrt(y*y + cb*cb + cr*cr)
}

// Fixed-point precision of IntegerYCbCrDistance.
const (
	precision   = 100_000
	precisionSq = precision * precision

	kBInt = 5_930  // precision * 0.0593
	kRInt = 26_270 // precision * 0.2627
	kGInt = precision - kBInt - kRInt

	denomB = 2 * (precision - kBInt)
	denomR = 2 * (precision - kRInt)
)

// IntegerYCbCrDistance returns YCbCrDistance computed in int64 fixed-point
// arithmetic with a precision of 1e5. The squared distance is truncated to
// an integer before the final square root, so results agree with
// YCbCrDistance within a few hundredths.
func IntegerYCbCrDistance(lumaWeight float64) ColorDistance {
	return integerYCbCrDistance{lumaWeight: int64(precision * lumaWeight)}
}

type integerYCbCrDistance struct {
	lumaWeight int64
}

func (d integerYCbCrDistance) Distance(p1, p2 uint32) float64 {
	dr := int64(color.Red(p1) - color.Red(p2))
	dg := int64(color.Green(p1) - color.Green(p2))
	db := int64(color.Blue(p1) - color.Blue(p2))

	y := kRInt*dr + kGInt*dg + kBInt*db
	cb := precision * (precision*db - y) / denomB
	cr := precision * (precision*dr - y) / denomR

	if d.lumaWeight != precision {
		y = y * d.lumaWeight / precision
	}
	return math.Sqrt(float64((y*y + cb*cb + cr*cr) / precisionSq))
}

// Channel differences span -255..255, i.e. 9 bits.
const diffBits = 9

// bufferedTables shares lookup tables between distances with equal sigBits.
// An 8-bit table holds 16M entries (64 MiB), so at most a few are kept.
var bufferedTables = cache.New[int, []float32](4)

// BufferedYCbCrDistance returns an unweighted YCbCr distance backed by a
// lookup table over quantized channel differences. Each difference is
// reduced to sigBits significant bits, so the table holds 1<<(3*sigBits)
// entries and the error grows with the quantization step 1<<(9-sigBits).
//
// sigBits must be in [2, 8]. Tables are built once per sigBits and shared.
func BufferedYCbCrDistance(sigBits int) (ColorDistance, error) {
	if sigBits < 2 || sigBits > 8 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSigBits, sigBits)
	}

	table, err := bufferedTables.GetOrCreate(sigBits, func() ([]float32, error) {
		Logger().Debug("xbrz: building distance table",
			"sigBits", sigBits, "entries", 1<<(3*sigBits))
		return buildDistanceTable(sigBits), nil
	})
	if err != nil {
		return nil, err
	}

	return &bufferedYCbCrDistance{
		sigBits: uint(sigBits),
		adjBits: uint(diffBits - sigBits),
		table:   table,
	}, nil
}

// buildDistanceTable evaluates the YCbCr distance at the midpoint of every
// quantization bucket.
func buildDistanceTable(sigBits int) []float32 {
	adjBits := diffBits - sigBits
	mask := 1<<sigBits - 1
	table := make([]float32, 1<<(3*sigBits))

	expand := func(q int) float64 {
		return float64(q<<adjBits - 255 + 1<<(adjBits-1))
	}

	for i := range table {
		dr := expand(i >> (2 * sigBits) & mask)
		dg := expand(i >> sigBits & mask)
		db := expand(i & mask)

		y := kR*dr + kG*dg + kB*db
		cb := scaleB * (db - y)
		cr := scaleR * (dr - y)
		table[i] = float32(math.Sqrt(y*y + cb*cb + cr*cr))
	}
	return table
}

type bufferedYCbCrDistance struct {
	sigBits uint
	adjBits uint
	table   []float32
}

func (d *bufferedYCbCrDistance) Distance(p1, p2 uint32) float64 {
	dr := color.Red(p1) - color.Red(p2) + 255
	dg := color.Green(p1) - color.Green(p2) + 255
	db := color.Blue(p1) - color.Blue(p2) + 255

	index := (dr>>d.adjBits)<<(2*d.sigBits) |
		(dg>>d.adjBits)<<d.sigBits |
		db>>d.adjBits
	return float64(d.table[index])
}

// AlphaDistance extends a color-only distance to pixels with alpha.
//
// With a1, a2 the two alphas and d the color distance:
// equal alphas give a1/255*d, and as the alphas diverge the result moves
// toward the full opaque-versus-transparent distance of 255.
func AlphaDistance(d ColorDistance) ColorDistance {
	return alphaDistance{base: d}
}

type alphaDistance struct {
	base ColorDistance
}

func (d alphaDistance) Distance(p1, p2 uint32) float64 {
	a1 := color.Alpha(p1)
	a2 := color.Alpha(p2)
	dist := d.base.Distance(p1, p2)
	if a1 < a2 {
		return float64(a1)/255*dist + float64(a2-a1)
	}
	return float64(a2)/255*dist + float64(a1-a2)
}
