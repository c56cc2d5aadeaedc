package xbrz

import (
	"fmt"
	"math"
)

// Config holds the tunable heuristics of the scaler.
//
// Config is a plain value: New copies it, so changing a Config after
// constructing a Scaler does not affect that Scaler.
type Config struct {
	// LuminanceWeight scales the luma difference in the default YCbCr
	// color distance. 1 means unweighted.
	LuminanceWeight float64

	// EqualColorTolerance is the distance below which two colors are
	// treated as equal by the blend guards.
	EqualColorTolerance float64

	// CenterDirectionBias weighs the distance across the center diagonal
	// of a 2x2 block against its outer context.
	CenterDirectionBias float64

	// DominantDirectionThreshold is how many times cheaper one diagonal
	// must be for its corners to be marked dominant.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold decides between shallow, steep and plain
	// diagonal line blends.
	SteepDirectionThreshold float64
}

// DefaultConfig returns the reference xBRZ tuning.
func DefaultConfig() Config {
	return Config{
		LuminanceWeight:            1,
		EqualColorTolerance:        30,
		CenterDirectionBias:        4,
		DominantDirectionThreshold: 3.6,
		SteepDirectionThreshold:    2.2,
	}
}

// Validate reports whether every field is a finite, non-negative number.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"LuminanceWeight", c.LuminanceWeight},
		{"EqualColorTolerance", c.EqualColorTolerance},
		{"CenterDirectionBias", c.CenterDirectionBias},
		{"DominantDirectionThreshold", c.DominantDirectionThreshold},
		{"SteepDirectionThreshold", c.SteepDirectionThreshold},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}
