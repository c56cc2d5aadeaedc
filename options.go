package xbrz

// Option configures a Scaler during creation.
// Use functional options to customize the scaling heuristics.
//
// Example:
//
//	// Reference tuning, YCbCr color distance
//	s, err := xbrz.New(3, true)
//
//	// Stricter equality, RGB distance
//	cfg := xbrz.DefaultConfig()
//	cfg.EqualColorTolerance = 20
//	s, err := xbrz.New(3, true,
//		xbrz.WithConfig(cfg),
//		xbrz.WithColorDistance(xbrz.RGBDistance()))
type Option func(*scalerOptions)

// scalerOptions holds optional configuration for Scaler creation.
type scalerOptions struct {
	config   Config
	distance ColorDistance
}

// defaultOptions returns the default scaler options.
func defaultOptions() scalerOptions {
	return scalerOptions{
		config:   DefaultConfig(),
		distance: nil, // YCbCrDistance(config.LuminanceWeight) if nil
	}
}

// WithConfig replaces the default heuristics.
//
// Unless WithColorDistance is also given, the YCbCr color distance is built
// with cfg.LuminanceWeight.
func WithConfig(cfg Config) Option {
	return func(o *scalerOptions) {
		o.config = cfg
	}
}

// WithColorDistance sets the color distance used to classify corners and
// pick blend colors. Config.LuminanceWeight is ignored when a custom
// distance is set.
//
// The distance must not consider alpha: when the scaler is created with
// alpha enabled it wraps d with AlphaDistance itself.
func WithColorDistance(d ColorDistance) Option {
	return func(o *scalerOptions) {
		o.distance = d
	}
}
