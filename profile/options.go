// SPDX-License-Identifier: MIT
// Package profile: shared defaults and functional options for the
// synthetic generators.
//
// Contract:
//   - Options mutate a private config; generators resolve it once per call.
//   - Out-of-range knobs are clamped to their documented floor rather than
//     panicking, so fixtures stay usable in table-driven tests.

package profile

// Defaults — single source of truth for zero-option behavior.
const (
	// DefaultCycle is the cycle length in samples: 24 (hourly data, daily cycle).
	DefaultCycle = 24.0

	// DefaultAmplitude is the half-range of the cyclic component.
	DefaultAmplitude = 0.25

	// DefaultBase is the mean level of the generated profile.
	DefaultBase = 0.5

	// DefaultNoise is the Gaussian noise standard deviation.
	DefaultNoise = 0.02

	// DefaultTrend is the linear increment per sample (0 = flat).
	DefaultTrend = 0.0
)

// config holds the resolved knobs for one generator call.
type config struct {
	cycle float64 // samples per cycle, > 0
	amp   float64 // cyclic amplitude
	base  float64 // mean level
	sigma float64 // Gaussian noise sigma, ≥ 0
	trend float64 // linear increment per sample
}

// Option mutates the generator configuration.
type Option func(*config)

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		cycle: DefaultCycle,
		amp:   DefaultAmplitude,
		base:  DefaultBase,
		sigma: DefaultNoise,
		trend: DefaultTrend,
	}
}

// resolve applies opts over the defaults and clamps invalid knobs.
func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cycle <= 0 {
		cfg.cycle = DefaultCycle
	}
	if cfg.sigma < 0 {
		cfg.sigma = 0
	}

	return cfg
}

// WithCycle sets the cycle length in samples (values ≤ 0 fall back to 24).
func WithCycle(samples float64) Option {
	return func(c *config) { c.cycle = samples }
}

// WithAmplitude sets the half-range of the cyclic component.
func WithAmplitude(amp float64) Option {
	return func(c *config) { c.amp = amp }
}

// WithBase sets the mean level of the profile.
func WithBase(base float64) Option {
	return func(c *config) { c.base = base }
}

// WithNoise sets the Gaussian noise sigma (negative values clamp to 0).
func WithNoise(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithTrend sets the linear increment per sample.
func WithTrend(trend float64) Option {
	return func(c *config) { c.trend = trend }
}
