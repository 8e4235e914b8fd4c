package font

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
// All coordinates are in font units with Y pointing up.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns false if the font has no glyph for the rune.
	GlyphIndex(r rune) (uint16, bool)

	// Advance returns the horizontal advance for a glyph in font units.
	Advance(gid uint16) (float64, bool)

	// Bounds returns the bounding box for a glyph in font units.
	// Returns false for glyphs without ink (e.g., space).
	Bounds(gid uint16) (Rect, bool)

	// Outline returns the vector outline for a glyph in font units.
	// Ink-less glyphs produce an empty outline and a nil error.
	Outline(gid uint16) (*GlyphOutline, error)

	// Extents returns the ascender and descender in font units.
	// The descender is negative for typical fonts.
	Extents() (ascender, descender float64, ok bool)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
