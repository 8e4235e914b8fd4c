package sdf

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// emTarget is the approximate pixel extent the em square maps to.
// The generation scale is emTarget / unitsPerEm.
const emTarget = 100.0

// scaleWarnMin and scaleWarnMax bound the expected generation scale.
// Scales outside this window indicate a font with unusual units per em
// and produce a quality warning, not a failure.
const (
	scaleWarnMin = 0.01
	scaleWarnMax = 0.2
)

// Generator creates signed distance field images from glyph outlines.
type Generator struct {
	config Config
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// DefaultGenerator creates a generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate rasterizes one glyph outline into a padded SDF image.
//
// The outline is in font units; unitsPerEm scales it so the em square
// maps to roughly 100 pixels. The glyph bounding box sits Range pixels
// inside the raster border on all sides.
//
// An ink-less outline returns a defined 1x1 fully transparent image,
// never an error. An inked glyph whose raster computes to zero area
// fails with ErrZeroArea. A zero unitsPerEm fails with ErrDegenerateFont.
func (g *Generator) Generate(outline *font.GlyphOutline, unitsPerEm int) (*Image, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if unitsPerEm == 0 {
		return nil, ErrDegenerateFont
	}

	scale := emTarget / float64(unitsPerEm)
	if scale < scaleWarnMin || scale > scaleWarnMax {
		logger().Warn("sdf: generation scale outside expected range, quality may suffer",
			"scale", scale, "unitsPerEm", unitsPerEm)
	}

	shape := buildShape(outline)
	if outline.IsEmpty() || shape.edgeCount() == 0 {
		return g.generateEmpty(), nil
	}

	bbox := shape.bounds()
	inkW := int(math.Ceil(bbox.Width() * scale))
	inkH := int(math.Ceil(bbox.Height() * scale))
	if inkW <= 0 || inkH <= 0 {
		return nil, ErrZeroArea
	}

	pad := g.config.Range
	img := newImage(inkW+2*pad, inkH+2*pad)
	g.fill(img, shape, bbox, scale)
	return img, nil
}

// generateEmpty returns the 1x1 fully transparent placeholder used for
// glyphs without ink (e.g., space). The glyph still occupies an atlas
// slot so layout treats it like any other placement.
func (g *Generator) generateEmpty() *Image {
	img := newImage(1, 1)
	img.SetAlpha(0, 0, 0)
	return img
}

// fill rasterizes the distance field. Rows run bottom-up.
func (g *Generator) fill(img *Image, shape *shape, bbox font.Rect, scale float64) {
	pad := float64(g.config.Range)
	spread := 2 * pad

	for y := 0; y < img.Height; y++ {
		oy := bbox.MinY + (float64(y)+0.5-pad)/scale
		for x := 0; x < img.Width; x++ {
			ox := bbox.MinX + (float64(x)+0.5-pad)/scale
			p := font.Point{X: ox, Y: oy}

			dist := shape.distanceAt(p) * scale
			if shape.windingAt(p) == 0 {
				dist = -dist
			}

			img.SetAlpha(x, y, distanceToByte(dist, spread))
		}
	}
}

// distanceToByte maps a signed pixel distance to [0, 255].
// 128 represents the edge, above is inside, below is outside.
func distanceToByte(distPx, spread float64) byte {
	normalized := 0.5 + distPx/spread
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return byte(math.Round(normalized * 255))
}
