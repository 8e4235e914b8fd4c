package font

// SegmentOp is the type of path operation in a glyph outline.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubicTo draws a cubic bezier curve.
	SegmentOpCubicTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment represents a single path segment of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op SegmentOp

	// Points contains the control and end points for this segment.
	//   - MoveTo: Points[0] is the target point
	//   - LineTo: Points[0] is the target point
	//   - QuadTo: Points[0] is control, Points[1] is target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]Point
}

// GlyphOutline represents the vector outline of a glyph.
// Coordinates are in font units with Y pointing up. Contours are
// implicitly closed: a MoveTo ends the previous contour, which closes
// back to its starting point.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []Segment
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Bounds returns the control-point bounding box of the outline.
// Control points of curves are included, so the box may be slightly
// larger than the ink extent. Returns a zero rect for empty outlines.
func (o *GlyphOutline) Bounds() Rect {
	if o.IsEmpty() {
		return Rect{}
	}

	minX, minY := 1e300, 1e300
	maxX, maxY := -1e300, -1e300
	update := func(p Point) {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	for _, seg := range o.Segments {
		for j := 0; j < seg.pointCount(); j++ {
			update(seg.Points[j])
		}
	}

	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// pointCount returns the number of meaningful points for the segment op.
func (s Segment) pointCount() int {
	switch s.Op {
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubicTo:
		return 3
	default:
		return 1
	}
}

// MoveTo appends a MoveTo segment.
func (o *GlyphOutline) MoveTo(p Point) {
	o.Segments = append(o.Segments, Segment{Op: SegmentOpMoveTo, Points: [3]Point{p}})
}

// LineTo appends a LineTo segment.
func (o *GlyphOutline) LineTo(p Point) {
	o.Segments = append(o.Segments, Segment{Op: SegmentOpLineTo, Points: [3]Point{p}})
}

// QuadTo appends a quadratic bezier segment.
func (o *GlyphOutline) QuadTo(ctrl, p Point) {
	o.Segments = append(o.Segments, Segment{Op: SegmentOpQuadTo, Points: [3]Point{ctrl, p}})
}

// CubicTo appends a cubic bezier segment.
func (o *GlyphOutline) CubicTo(ctrl1, ctrl2, p Point) {
	o.Segments = append(o.Segments, Segment{Op: SegmentOpCubicTo, Points: [3]Point{ctrl1, ctrl2, p}})
}
