package atlas

import (
	"github.com/gogpu/textmesh/font"
	"github.com/gogpu/textmesh/sdf"
)

// GlyphSource supplies glyph data for one font. *font.Face satisfies it.
type GlyphSource interface {
	// Metrics returns em-normalized metrics for a codepoint, false if
	// the font has no glyph for it.
	Metrics(r rune) (font.GlyphMetrics, bool)

	// Outline returns the glyph outline in font units, never nil.
	Outline(r rune) *font.GlyphOutline

	// UnitsPerEm returns the font's units per em.
	UnitsPerEm() int

	// LineGap returns the em-normalized baseline-to-baseline distance.
	LineGap() float64
}

// Placement records where a glyph's SDF bitmap lives.
type Placement struct {
	// AtlasIndex selects the texture, in creation order.
	AtlasIndex int

	// Rect is the pixel rectangle inside the texture, including the
	// SDF range border. Y-up like the texture row order.
	Rect font.Rect
}

// Set is the glyph atlas collection for one font. Codepoints are added
// by Request and keep their placement for the lifetime of the set.
//
// A Set is not safe for concurrent use.
type Set struct {
	source GlyphSource
	config Config
	gen    *sdf.Generator

	textures   []*Texture
	placements map[rune]Placement

	// attempted remembers every requested codepoint, including ones
	// that failed, so failures are logged once and never retried.
	attempted map[rune]struct{}
}

// NewSet creates an atlas set over a glyph source.
func NewSet(source GlyphSource, config Config) (*Set, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Set{
		source:     source,
		config:     config,
		gen:        sdf.NewGenerator(sdf.Config{Range: config.Range}),
		placements: make(map[rune]Placement),
		attempted:  make(map[rune]struct{}),
	}, nil
}

// DefaultSet creates an atlas set with the default configuration.
func DefaultSet(source GlyphSource) *Set {
	s, err := NewSet(source, DefaultConfig())
	if err != nil {
		panic("atlas: default config invalid: " + err.Error())
	}
	return s
}

// Request ensures every codepoint in chars has a placement. Requests
// are idempotent; already placed or already failed codepoints are
// skipped. One failing codepoint never blocks the others.
func (s *Set) Request(chars []rune) {
	for _, r := range chars {
		if _, seen := s.attempted[r]; seen {
			continue
		}
		s.attempted[r] = struct{}{}
		s.add(r)
	}
}

func (s *Set) add(r rune) {
	if _, ok := s.source.Metrics(r); !ok {
		logger().Warn("atlas: font has no glyph for codepoint", "codepoint", string(r))
		return
	}

	img, err := s.gen.Generate(s.source.Outline(r), s.source.UnitsPerEm())
	if err != nil {
		logger().Warn("atlas: glyph generation failed", "codepoint", string(r), "error", err)
		return
	}

	s.placements[r] = s.place(r, img)
}

// place blits the bitmap into the first texture with room, allocating
// a new texture when every existing one is full.
func (s *Set) place(r rune, img *sdf.Image) Placement {
	for i, t := range s.textures {
		if x, y, ok := t.alloc.allocate(img.Width, img.Height); ok {
			t.blit(img, x, y)
			return pixelPlacement(i, x, y, img)
		}
	}

	size := nextPow2(max(img.MaxDim()+s.config.Padding, s.config.MinSize))
	t := newTexture(size, s.config.Padding)
	s.textures = append(s.textures, t)
	logger().Debug("atlas: allocated texture",
		"index", len(s.textures)-1, "size", size, "codepoint", string(r))

	// A fresh texture is sized to hold the bitmap, so this cannot fail.
	x, y, _ := t.alloc.allocate(img.Width, img.Height)
	t.blit(img, x, y)
	return pixelPlacement(len(s.textures)-1, x, y, img)
}

func pixelPlacement(index, x, y int, img *sdf.Image) Placement {
	return Placement{
		AtlasIndex: index,
		Rect: font.Rect{
			MinX: float64(x),
			MinY: float64(y),
			MaxX: float64(x + img.Width),
			MaxY: float64(y + img.Height),
		},
	}
}

// Placement returns the pixel placement of a codepoint, false if it
// was never requested or failed.
func (s *Set) Placement(r rune) (Placement, bool) {
	p, ok := s.placements[r]
	return p, ok
}

// GlyphRect returns normalized texture coordinates for a codepoint's
// glyph bounding box: the placement rect inset by the SDF range, in
// [0, 1] texture space. Returns false for unplaced codepoints.
func (s *Set) GlyphRect(r rune) (font.Rect, bool) {
	p, ok := s.placements[r]
	if !ok {
		return font.Rect{}, false
	}
	inv := 1 / float64(s.textures[p.AtlasIndex].Size)
	pad := float64(s.config.Range)
	minX, maxX := insetSpan(p.Rect.MinX, p.Rect.MaxX, pad)
	minY, maxY := insetSpan(p.Rect.MinY, p.Rect.MaxY, pad)
	return font.Rect{
		MinX: minX * inv, MinY: minY * inv,
		MaxX: maxX * inv, MaxY: maxY * inv,
	}, true
}

// insetSpan shrinks [lo, hi] by pad on both ends. A span narrower than
// the total inset (the 1x1 placeholder for ink-less glyphs) collapses
// to its center instead of inverting.
func insetSpan(lo, hi, pad float64) (float64, float64) {
	if hi-lo <= 2*pad {
		c := (lo + hi) / 2
		return c, c
	}
	return lo + pad, hi - pad
}

// Metrics returns em-normalized metrics for a codepoint.
func (s *Set) Metrics(r rune) (font.GlyphMetrics, bool) {
	return s.source.Metrics(r)
}

// Outline returns the glyph outline in font units, never nil.
func (s *Set) Outline(r rune) *font.GlyphOutline {
	return s.source.Outline(r)
}

// UnitsPerEm returns the font's units per em.
func (s *Set) UnitsPerEm() int {
	return s.source.UnitsPerEm()
}

// LineGap returns the em-normalized baseline-to-baseline distance.
func (s *Set) LineGap() float64 {
	return s.source.LineGap()
}

// Texture returns the atlas texture at the given index.
func (s *Set) Texture(i int) *Texture {
	return s.textures[i]
}

// AtlasCount returns the number of atlas textures allocated so far.
func (s *Set) AtlasCount() int {
	return len(s.textures)
}

// nextPow2 returns the smallest power of two not below n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
