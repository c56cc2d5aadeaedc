package xbrz

import "errors"

// Errors returned by the scaler.
var (
	// ErrInvalidFactor is returned by New when the scale factor is
	// outside [MinFactor, MaxFactor].
	ErrInvalidFactor = errors.New("xbrz: invalid scale factor")

	// ErrInvalidConfig is returned when a Config field is negative,
	// NaN or infinite.
	ErrInvalidConfig = errors.New("xbrz: invalid config")

	// ErrInvalidSigBits is returned by BufferedYCbCrDistance when the
	// number of significant bits is outside [2, 8].
	ErrInvalidSigBits = errors.New("xbrz: invalid significant bits")

	// ErrAllocation is returned when the target buffer size overflows or
	// exceeds MaxOutputPixels. It is reported before any allocation.
	ErrAllocation = errors.New("xbrz: target buffer too large")

	// ErrSourceTooSmall is returned when the source slice holds fewer
	// than width*height pixels.
	ErrSourceTooSmall = errors.New("xbrz: source buffer too small")

	// ErrDestTooSmall is returned when the destination slice cannot hold
	// the scaled image.
	ErrDestTooSmall = errors.New("xbrz: destination buffer too small")
)
