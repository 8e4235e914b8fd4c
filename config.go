package textmesh

import "github.com/gogpu/textmesh/tessellate"

// Config holds synthesis parameters shared by all text objects of a
// pipeline.
type Config struct {
	// Quality selects the outline mesh tessellation precision.
	// Default: tessellate.QualityHigh
	Quality tessellate.Quality

	// FontScale multiplies em-normalized glyph geometry into layout
	// units.
	// Default: 1
	FontScale float64

	// Profile selects whether the combined solid outline mesh is
	// built, and for what purpose.
	// Default: ProfileDepthOnly
	Profile ProfileMode
}

// DefaultConfig returns the default synthesis configuration.
func DefaultConfig() Config {
	return Config{
		Quality:   tessellate.DefaultQuality,
		FontScale: 1,
		Profile:   ProfileDepthOnly,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.FontScale <= 0 {
		return &ConfigError{Field: "FontScale", Reason: "must be positive"}
	}
	if c.Profile < ProfileNone || c.Profile > ProfileVisible {
		return &ConfigError{Field: "Profile", Reason: "unknown profile mode"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "textmesh: invalid config." + e.Field + ": " + e.Reason
}
