package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// Glyphs are loaded at ppem equal to the font's units per em, so the
// 26.6 fixed-point coordinates come back in font-unit magnitudes.
// sfnt uses Y-down coordinates; they are flipped to Y-up here.
//
// The sfnt buffer is reused across calls. ParsedFont methods are not
// safe for concurrent use, matching the single-threaded pipeline model.
type ximageParsedFont struct {
	font *opentype.Font
	buf  sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// ppem returns the load size that maps 26.6 coordinates to font units.
func (f *ximageParsedFont) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.font.UnitsPerEm()) << 6
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) (uint16, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return uint16(idx), true
}

// Advance implements ParsedFont.Advance.
func (f *ximageParsedFont) Advance(gid uint16) (float64, bool) {
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.ppem(), xfont.HintingNone)
	if err != nil {
		return 0, false
	}
	return fixedToFloat64(advance), true
}

// Bounds implements ParsedFont.Bounds.
func (f *ximageParsedFont) Bounds(gid uint16) (Rect, bool) {
	bounds, _, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.ppem(), xfont.HintingNone)
	if err != nil {
		return Rect{}, false
	}
	if bounds.Min.X == bounds.Max.X || bounds.Min.Y == bounds.Max.Y {
		// No ink (e.g., space).
		return Rect{}, false
	}

	// Flip Y-down to Y-up.
	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: -fixedToFloat64(bounds.Max.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: -fixedToFloat64(bounds.Min.Y),
	}, true
}

// Outline implements ParsedFont.Outline.
func (f *ximageParsedFont) Outline(gid uint16) (*GlyphOutline, error) {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem(), nil)
	if err != nil {
		return nil, &LoadError{Parser: "ximage", Err: err}
	}

	outline := &GlyphOutline{Segments: make([]Segment, 0, len(segments))}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outline.MoveTo(fixedPointToPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			outline.LineTo(fixedPointToPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			outline.QuadTo(fixedPointToPoint(seg.Args[0]), fixedPointToPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			outline.CubicTo(fixedPointToPoint(seg.Args[0]), fixedPointToPoint(seg.Args[1]), fixedPointToPoint(seg.Args[2]))
		}
	}
	return outline, nil
}

// Extents implements ParsedFont.Extents.
func (f *ximageParsedFont) Extents() (ascender, descender float64, ok bool) {
	metrics, err := f.font.Metrics(&f.buf, f.ppem(), xfont.HintingNone)
	if err != nil {
		return 0, 0, false
	}
	// sfnt reports both ascent and descent as positive distances from
	// the baseline; descender is negative in the Y-up convention.
	return fixedToFloat64(metrics.Ascent), -fixedToFloat64(metrics.Descent), true
}

// fixedPointToPoint converts a fixed.Point26_6 to a Y-up Point.
func fixedPointToPoint(p fixed.Point26_6) Point {
	return Point{
		X: fixedToFloat64(p.X),
		Y: -fixedToFloat64(p.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
