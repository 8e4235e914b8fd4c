package atlas

// Config holds atlas packing parameters.
type Config struct {
	// Range is the SDF padding in pixels around each glyph bounding box.
	// Must match the generation range so texture coordinates can be
	// inset back to the glyph box.
	// Default: 6
	Range int

	// MinSize is the minimum edge length of a newly allocated atlas
	// texture in pixels. Textures are always square powers of two.
	// Default: 1024
	MinSize int

	// Padding is the pixel gap inserted between packed glyphs.
	// Default: 0 (the SDF range already separates glyph boxes)
	Padding int
}

// DefaultConfig returns the default atlas configuration.
func DefaultConfig() Config {
	return Config{
		Range:   6,
		MinSize: 1024,
		Padding: 0,
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
	if c.MinSize < 1 {
		return &ConfigError{Field: "MinSize", Reason: "must be at least 1"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
