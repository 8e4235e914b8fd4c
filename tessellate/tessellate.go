package tessellate

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// Mesh is a filled triangle mesh in em units, origin at the outline
// bounding box minimum.
type Mesh struct {
	// Vertices are the 2D triangle vertices.
	Vertices []font.Point

	// Indices reference Vertices, three per triangle.
	Indices []uint32
}

// IsEmpty returns true if the mesh contains no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Error is returned for numerically degenerate outlines.
// Per-glyph tessellation failures are isolated: the caller skips that
// glyph's contribution and processes siblings normally.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "tessellate: " + e.Reason
}

// Tessellate converts a glyph outline into a filled triangle mesh.
//
// The outline is in font units; output coordinates are normalized to
// em units with the origin at the outline bounding box minimum. Curves
// are approximated within tolerance (em units); smaller tolerances
// yield monotonically more triangles. Fill follows the nonzero winding
// rule, so hole contours of either orientation are handled.
//
// An empty outline produces an empty mesh and a nil error. Degenerate
// input (non-finite coordinates, unclosable contours) fails with *Error.
func Tessellate(outline *font.GlyphOutline, unitsPerEm int, tolerance float64) (*Mesh, error) {
	mesh := &Mesh{}
	if outline.IsEmpty() {
		return mesh, nil
	}
	if unitsPerEm <= 0 {
		return nil, &Error{Reason: "units per em must be positive"}
	}
	if tolerance <= 0 {
		tolerance = DefaultQuality.Tolerance()
	}

	if !outlineIsFinite(outline) {
		return nil, &Error{Reason: "outline contains non-finite coordinates"}
	}

	scale := 1 / float64(unitsPerEm)
	origin := outline.Bounds().Min()

	rings := flattenOutline(outline, scale, origin, tolerance)
	for _, g := range groupRings(rings) {
		if err := triangulateGroup(g, mesh); err != nil {
			return nil, err
		}
	}
	return mesh, nil
}

// outlineIsFinite reports whether every outline coordinate is a
// finite number.
func outlineIsFinite(outline *font.GlyphOutline) bool {
	for _, seg := range outline.Segments {
		for _, p := range seg.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
				math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return false
			}
		}
	}
	return true
}

// TessellateQuality is a convenience wrapper taking a named level.
func TessellateQuality(outline *font.GlyphOutline, unitsPerEm int, q Quality) (*Mesh, error) {
	return Tessellate(outline, unitsPerEm, q.Tolerance())
}
