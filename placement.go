package textmesh

import "github.com/gogpu/textmesh/font"

// RGBA is a linear vertex color with float32 components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// White is the default glyph color.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// GlyphPlacement positions one character instance in layout space.
// The caller produces placements (layout, kerning, line breaking are
// its concern); the synthesizer turns them into geometry.
type GlyphPlacement struct {
	// Char is the codepoint to render.
	Char rune

	// Rect is the destination rectangle. Its minimum corner is the
	// glyph cursor position; glyph metrics offset from there.
	Rect font.Rect

	// Color is the vertex color applied to the glyph quad.
	Color RGBA
}

// ProfileMode selects whether and for what purpose the combined solid
// outline mesh is built. The synthesizer only decides how to build the
// mesh; the host decides how to render it.
type ProfileMode int

const (
	// ProfileNone skips the outline mesh entirely.
	ProfileNone ProfileMode = iota

	// ProfileDepthOnly builds the outline mesh for depth or shadow
	// passes. This is the default.
	ProfileDepthOnly

	// ProfileVisible builds the outline mesh for visible debug
	// rendering.
	ProfileVisible
)

// String returns the name of the profile mode.
func (m ProfileMode) String() string {
	switch m {
	case ProfileNone:
		return "None"
	case ProfileDepthOnly:
		return "DepthOnly"
	case ProfileVisible:
		return "Visible"
	default:
		return "Unknown"
	}
}
