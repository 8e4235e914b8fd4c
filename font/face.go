package font

// GlyphMetrics holds per-glyph layout metrics in em-normalized units
// (font units divided by units per em).
type GlyphMetrics struct {
	// Advance is the cursor advance after rendering the glyph.
	Advance Point

	// Offset is the position of the glyph bounding box minimum corner
	// relative to the cursor.
	Offset Point

	// Size is the glyph bounding box dimensions.
	// Zero for glyphs without ink (e.g., space).
	Size Point
}

// loadOptions holds options for Load.
type loadOptions struct {
	parser string
}

// Option configures Load.
type Option func(*loadOptions)

// WithParser selects a registered font parsing backend by name.
// Unknown names fall back to the default backend.
func WithParser(name string) Option {
	return func(o *loadOptions) {
		o.parser = name
	}
}

// Face is an immutable parsed font exposing glyph metrics and outlines.
// It is created once by Load and read-only thereafter.
//
// A font reporting zero units per em is degraded rather than rejected:
// every derived value (metrics, outlines, line gap) collapses to
// zero/empty and an error is logged once.
type Face struct {
	data   []byte
	parsed ParsedFont
	upem   int

	metrics map[rune]metricsEntry

	degradedLogged bool
}

// metricsEntry caches a metrics lookup, including negative results.
type metricsEntry struct {
	metrics GlyphMetrics
	ok      bool
}

// Load parses font data (TTF or OTF) and returns a Face.
// Malformed data fails with a *LoadError; loading is not retried.
func Load(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := getParser(o.parser).Parse(data)
	if err != nil {
		return nil, &LoadError{Parser: o.parser, Err: err}
	}

	f := &Face{
		data:    data,
		parsed:  parsed,
		upem:    parsed.UnitsPerEm(),
		metrics: make(map[rune]metricsEntry),
	}

	if name, ok := f.Name(); ok {
		logger().Debug("font: loaded face", "family", name, "upem", f.upem)
	} else {
		logger().Debug("font: loaded face", "upem", f.upem)
	}
	return f, nil
}

// UnitsPerEm returns the font's units per em.
func (f *Face) UnitsPerEm() int {
	return f.upem
}

// Name returns the best-effort family name of the font.
// It reads the raw name table, trying UTF-8 then UTF-16BE; if that
// fails it asks the parsing backend. Absence is not an error.
func (f *Face) Name() (string, bool) {
	if name, ok := familyName(f.data); ok {
		return name, true
	}
	if name := f.parsed.Name(); name != "" {
		return name, true
	}
	return "", false
}

// Metrics returns em-normalized metrics for a codepoint.
// Returns false if the font has no glyph for the codepoint; the caller
// skips such glyphs. Glyphs without ink still return metrics with zero
// Offset and Size.
func (f *Face) Metrics(r rune) (GlyphMetrics, bool) {
	if entry, ok := f.metrics[r]; ok {
		return entry.metrics, entry.ok
	}

	m, ok := f.computeMetrics(r)
	f.metrics[r] = metricsEntry{metrics: m, ok: ok}
	return m, ok
}

func (f *Face) computeMetrics(r rune) (GlyphMetrics, bool) {
	gid, ok := f.parsed.GlyphIndex(r)
	if !ok {
		return GlyphMetrics{}, false
	}

	if f.upem == 0 {
		f.logDegradedOnce()
		return GlyphMetrics{}, true
	}
	scale := 1 / float64(f.upem)

	var m GlyphMetrics
	if advance, ok := f.parsed.Advance(gid); ok {
		m.Advance = Point{X: advance * scale}
	}
	if bounds, ok := f.parsed.Bounds(gid); ok {
		m.Offset = bounds.Min().Mul(scale)
		m.Size = Point{X: bounds.Width(), Y: bounds.Height()}.Mul(scale)
	}
	return m, true
}

// Outline returns the glyph outline for a codepoint in font units.
// Ink-less or absent glyphs produce an empty outline, never nil.
func (f *Face) Outline(r rune) *GlyphOutline {
	gid, ok := f.parsed.GlyphIndex(r)
	if !ok {
		return &GlyphOutline{}
	}
	if f.upem == 0 {
		f.logDegradedOnce()
		return &GlyphOutline{}
	}

	outline, err := f.parsed.Outline(gid)
	if err != nil {
		logger().Warn("font: outline extraction failed", "codepoint", string(r), "error", err)
		return &GlyphOutline{}
	}
	return outline
}

// LineGap returns the em-normalized vertical distance between
// consecutive baselines (ascender minus descender).
func (f *Face) LineGap() float64 {
	if f.upem == 0 {
		f.logDegradedOnce()
		return 0
	}
	ascender, descender, ok := f.parsed.Extents()
	if !ok {
		return 0
	}
	return (ascender - descender) / float64(f.upem)
}

// logDegradedOnce reports a zero units-per-em font a single time.
func (f *Face) logDegradedOnce() {
	if f.degradedLogged {
		return
	}
	f.degradedLogged = true
	logger().Error("font: units per em is zero, font is unusable for rendering")
}
