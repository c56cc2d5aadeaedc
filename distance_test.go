package xbrz

import (
	"errors"
	"math"
	"testing"
)

// Reference YCbCr distances with a luminance weight of 1.
var yCbCrReference = []struct {
	p1, p2 uint32
	want   float64
}{
	{0xFF000000, 0xFF000000, 0},
	{0xFF000000, 0xFF404040, 64},
	{0xFF000000, 0xFF808080, 128},
	{0xFF000000, 0xFFC0C0C0, 192},
	{0xFF000000, 0xFFFFFFFF, 255},
	{0xFF403050, 0xFF000000, 56.226890},
	{0xFF403050, 0xFF404040, 18.236254},
	{0xFF403050, 0xFF808080, 75.469587},
	{0xFF403050, 0xFFC0B0D0, 128},
	{0xFF403050, 0xFFFFFFFF, 201.482146},
	{0xFF808080, 0xFF000000, 128},
	{0xFF808080, 0xFF404040, 64},
	{0xFF808080, 0xFF808080, 0},
	{0xFF808080, 0xFFC0C0C0, 64},
	{0xFF808080, 0xFFFFFFFF, 127},
	{0xFFC0D0B0, 0xFF000000, 202.479267},
	{0xFFC0D0B0, 0xFF405030, 128},
	{0xFFC0D0B0, 0xFF808080, 75.469587},
	{0xFFC0D0B0, 0xFFC0C0C0, 18.236254},
	{0xFFC0D0B0, 0xFFFFFFFF, 55.265375},
	{0xFFFFFFFF, 0xFF000000, 255},
	{0xFFFFFFFF, 0xFF404040, 191},
	{0xFFFFFFFF, 0xFF808080, 127},
	{0xFFFFFFFF, 0xFFC0C0C0, 63},
	{0xFFFFFFFF, 0xFFFFFFFF, 0},
}

func checkReference(t *testing.T, d ColorDistance, tolerance float64) {
	t.Helper()
	for _, tt := range yCbCrReference {
		got := d.Distance(tt.p1, tt.p2)
		if math.Abs(got-tt.want) > tolerance {
			t.Errorf("Distance(%#08x, %#08x) = %.6f, want %.6f ± %v", tt.p1, tt.p2, got, tt.want, tolerance)
		}
	}
}

func TestYCbCrDistance(t *testing.T) {
	checkReference(t, YCbCrDistance(1), 1e-5)
}

func TestYCbCrDistanceLuminanceWeight(t *testing.T) {
	// Gray differences are pure luma.
	if got := YCbCrDistance(2).Distance(0xFF000000, 0xFF404040); math.Abs(got-128) > 1e-9 {
		t.Errorf("weighted gray distance = %v, want 128", got)
	}
	if got := YCbCrDistance(0).Distance(0xFF000000, 0xFF404040); math.Abs(got) > 1e-9 {
		t.Errorf("zero-weight gray distance = %v, want 0", got)
	}
}

func TestIntegerYCbCrDistance(t *testing.T) {
	checkReference(t, IntegerYCbCrDistance(1), 0.05)
}

func TestBufferedYCbCrDistance(t *testing.T) {
	d, err := BufferedYCbCrDistance(5)
	if err != nil {
		t.Fatalf("BufferedYCbCrDistance(5) = %v", err)
	}
	checkReference(t, d, 8)
}

func TestBufferedYCbCrDistanceInvalid(t *testing.T) {
	for _, sigBits := range []int{-1, 0, 1, 9, 16} {
		if _, err := BufferedYCbCrDistance(sigBits); !errors.Is(err, ErrInvalidSigBits) {
			t.Errorf("BufferedYCbCrDistance(%d) error = %v, want ErrInvalidSigBits", sigBits, err)
		}
	}
}

func TestBufferedYCbCrDistanceSharesTable(t *testing.T) {
	d1, err := BufferedYCbCrDistance(4)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := BufferedYCbCrDistance(4)
	if err != nil {
		t.Fatal(err)
	}

	t1 := d1.(*bufferedYCbCrDistance).table
	t2 := d2.(*bufferedYCbCrDistance).table
	if len(t1) != 1<<12 {
		t.Errorf("table length = %d, want %d", len(t1), 1<<12)
	}
	if &t1[0] != &t2[0] {
		t.Error("distances with equal sigBits do not share their table")
	}
}

func TestRGBDistance(t *testing.T) {
	d := RGBDistance()
	if got, want := d.Distance(0xFF000000, 0xFFFFFFFF), 255*math.Sqrt(3); math.Abs(got-want) > 1e-9 {
		t.Errorf("black/white = %v, want %v", got, want)
	}
	if got := d.Distance(0xFF000000, 0xFF030400); got != 5 {
		t.Errorf("3-4-5 = %v, want 5", got)
	}
	// Alpha is ignored.
	if got := d.Distance(0x00102030, 0xFF102030); got != 0 {
		t.Errorf("alpha-only difference = %v, want 0", got)
	}
}

// The buffered distance is left out: its buckets are not centered on zero.
func TestDistanceSymmetry(t *testing.T) {
	distances := map[string]ColorDistance{
		"rgb":      RGBDistance(),
		"ycbcr":    YCbCrDistance(1),
		"weighted": YCbCrDistance(1.5),
		"integer":  IntegerYCbCrDistance(1),
		"alpha":    AlphaDistance(YCbCrDistance(1)),
	}
	pixels := []uint32{0xFF000000, 0x80FF0000, 0xFF403050, 0x00FFFFFF, 0xC0C0D0B0}

	for name, d := range distances {
		t.Run(name, func(t *testing.T) {
			for _, p1 := range pixels {
				if got := d.Distance(p1, p1); got > 1e-9 {
					t.Errorf("Distance(%#08x, itself) = %v, want 0", p1, got)
				}
				for _, p2 := range pixels {
					if d.Distance(p1, p2) != d.Distance(p2, p1) {
						t.Errorf("Distance(%#08x, %#08x) is not symmetric", p1, p2)
					}
				}
			}
		})
	}
}

func TestAlphaDistance(t *testing.T) {
	base := RGBDistance()
	d := AlphaDistance(base)
	bw := base.Distance(0xFF000000, 0xFFFFFFFF)

	tests := []struct {
		name   string
		p1, p2 uint32
		want   float64
	}{
		{"opaque", 0xFF000000, 0xFFFFFFFF, bw},
		{"both transparent", 0x00000000, 0x00FFFFFF, 0},
		{"half alpha", 0x80000000, 0x80FFFFFF, 128.0 / 255 * bw},
		{"alpha grows", 0x80000000, 0xFFFFFFFF, 128.0/255*bw + 127},
		{"alpha shrinks", 0xFF000000, 0x80FFFFFF, 128.0/255*bw + 127},
		{"same color", 0x40123456, 0xC0123456, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Distance(tt.p1, tt.p2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkColorDistance(b *testing.B) {
	buffered, err := BufferedYCbCrDistance(5)
	if err != nil {
		b.Fatal(err)
	}
	benchmarks := []struct {
		name string
		d    ColorDistance
	}{
		{"RGB", RGBDistance()},
		{"YCbCr", YCbCrDistance(1)},
		{"Integer", IntegerYCbCrDistance(1)},
		{"Buffered5", buffered},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			var sum float64
			for b.Loop() {
				sum += bm.d.Distance(0xFF403050, 0xFFC0D0B0)
			}
			_ = sum
		})
	}
}
