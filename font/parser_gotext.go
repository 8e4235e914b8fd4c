package font

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using go-text/typesetting.
// It is registered as "gotext"; select it with WithParser("gotext").
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// go-text outlines are already in font units with Y up, so no
// coordinate conversion is needed.
//
// font.Face is not safe for concurrent use, matching the
// single-threaded pipeline model.
type gotextParsedFont struct {
	face *gtfont.Face
}

// Name implements ParsedFont.Name. The go-text backend does not expose
// the name table; Face falls back to parsing it from the raw data.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) (uint16, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return uint16(gid), true
}

// Advance implements ParsedFont.Advance.
func (f *gotextParsedFont) Advance(gid uint16) (float64, bool) {
	return float64(f.face.HorizontalAdvance(gtfont.GID(gid))), true
}

// Bounds implements ParsedFont.Bounds.
func (f *gotextParsedFont) Bounds(gid uint16) (Rect, bool) {
	ext, ok := f.face.GlyphExtents(gtfont.GID(gid))
	if !ok {
		return Rect{}, false
	}
	if ext.Width == 0 || ext.Height == 0 {
		// No ink (e.g., space).
		return Rect{}, false
	}

	// Width is positive and Height negative in the extents convention:
	// YBearing is the glyph top, YBearing+Height the bottom.
	a := Point{X: float64(ext.XBearing), Y: float64(ext.YBearing)}
	b := Point{X: float64(ext.XBearing + ext.Width), Y: float64(ext.YBearing + ext.Height)}
	return RectFromCorners(a, b), true
}

// Outline implements ParsedFont.Outline.
func (f *gotextParsedFont) Outline(gid uint16) (*GlyphOutline, error) {
	data := f.face.GlyphData(gtfont.GID(gid))
	glyphOutline, ok := data.(gtfont.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph; treated as ink-less for mesh purposes.
		return &GlyphOutline{}, nil
	}

	outline := &GlyphOutline{Segments: make([]Segment, 0, len(glyphOutline.Segments))}
	for _, seg := range glyphOutline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			outline.MoveTo(segmentPointToPoint(seg.Args[0]))
		case ot.SegmentOpLineTo:
			outline.LineTo(segmentPointToPoint(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			outline.QuadTo(segmentPointToPoint(seg.Args[0]), segmentPointToPoint(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			outline.CubicTo(segmentPointToPoint(seg.Args[0]), segmentPointToPoint(seg.Args[1]), segmentPointToPoint(seg.Args[2]))
		}
	}
	return outline, nil
}

// Extents implements ParsedFont.Extents.
func (f *gotextParsedFont) Extents() (ascender, descender float64, ok bool) {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return 0, 0, false
	}
	return float64(ext.Ascender), float64(ext.Descender), true
}

// segmentPointToPoint converts a go-text segment point.
func segmentPointToPoint(p gtfont.SegmentPoint) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}
