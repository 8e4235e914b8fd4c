package sdf

import "errors"

// Config holds SDF generation parameters.
type Config struct {
	// Range is the distance field extent in pixels on each side of the
	// glyph bounding box. Larger values allow softer effects (glow,
	// outline) at the cost of atlas space.
	// Default: 6
	Range int
}

// DefaultConfig returns the default SDF configuration.
func DefaultConfig() Config {
	return Config{
		Range: 6,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Range < 1 {
		return &ConfigError{Field: "Range", Reason: "must be at least 1"}
	}
	if c.Range > 128 {
		return &ConfigError{Field: "Range", Reason: "must be at most 128"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdf: invalid config." + e.Field + ": " + e.Reason
}

// Sentinel errors for the sdf package.
var (
	// ErrDegenerateFont is returned when the font reports zero units per em.
	ErrDegenerateFont = errors.New("sdf: units per em is zero")

	// ErrZeroArea is returned when an inked glyph rasterizes to a
	// zero-area image. The glyph is unrenderable but remains metrically
	// present for advance purposes.
	ErrZeroArea = errors.New("sdf: glyph rasterizes to zero area")
)
