package sdf

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// contour is one closed loop of edges.
type contour struct {
	edges []edge
}

// shape holds a glyph's contours plus a flattened copy used for the
// winding test. Contours are closed: a trailing gap between the last
// end point and the start point is bridged with a line edge.
type shape struct {
	contours []contour

	// rings are flattened closed polylines mirroring the contours,
	// used for the nonzero winding sign test.
	rings [][]font.Point
}

// flattenSteps is the fixed curve subdivision used for the winding
// rings. Winding only needs crossing counts, not tight geometry.
const flattenSteps = 16

// buildShape converts a glyph outline into distance edges and winding
// rings. Contours are implicitly closed at each MoveTo and at the end.
func buildShape(outline *font.GlyphOutline) *shape {
	s := &shape{}

	var cur contour
	var ring []font.Point
	var start, pos font.Point
	started := false

	closeContour := func() {
		if !started {
			return
		}
		if pos.Sub(start).LengthSquared() > 1e-12 {
			cur.edges = append(cur.edges, lineEdge(pos, start))
			ring = append(ring, start)
		}
		if len(cur.edges) > 0 {
			s.contours = append(s.contours, cur)
			s.rings = append(s.rings, ring)
		}
		cur = contour{}
		ring = nil
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case font.SegmentOpMoveTo:
			closeContour()
			start = seg.Points[0]
			pos = start
			ring = append(ring, pos)
			started = true

		case font.SegmentOpLineTo:
			end := seg.Points[0]
			if end.Sub(pos).LengthSquared() > 1e-12 {
				cur.edges = append(cur.edges, lineEdge(pos, end))
				ring = append(ring, end)
			}
			pos = end

		case font.SegmentOpQuadTo:
			e := quadEdge(pos, seg.Points[0], seg.Points[1])
			cur.edges = append(cur.edges, e)
			ring = appendFlattened(ring, &e)
			pos = seg.Points[1]

		case font.SegmentOpCubicTo:
			e := cubicEdge(pos, seg.Points[0], seg.Points[1], seg.Points[2])
			cur.edges = append(cur.edges, e)
			ring = appendFlattened(ring, &e)
			pos = seg.Points[2]
		}
	}
	closeContour()

	return s
}

// appendFlattened appends fixed-step curve samples to a winding ring.
func appendFlattened(ring []font.Point, e *edge) []font.Point {
	for i := 1; i <= flattenSteps; i++ {
		ring = append(ring, e.pointAt(float64(i)/flattenSteps))
	}
	return ring
}

// edgeCount returns the total number of edges across all contours.
func (s *shape) edgeCount() int {
	count := 0
	for i := range s.contours {
		count += len(s.contours[i].edges)
	}
	return count
}

// bounds returns the tight ink bounding box of the shape.
func (s *shape) bounds() font.Rect {
	first := true
	var b font.Rect
	for i := range s.contours {
		for j := range s.contours[i].edges {
			eb := s.contours[i].edges[j].bounds()
			if first {
				b = eb
				first = false
			} else {
				b = b.Union(eb)
			}
		}
	}
	return b
}

// distanceAt returns the unsigned distance from p to the nearest edge.
func (s *shape) distanceAt(p font.Point) float64 {
	best := math.MaxFloat64
	for i := range s.contours {
		for j := range s.contours[i].edges {
			if d := s.contours[i].edges[j].distance(p); d < best {
				best = d
			}
		}
	}
	return best
}

// windingAt returns the nonzero winding number at p. Nonzero means the
// point is inside the glyph ink.
func (s *shape) windingAt(p font.Point) int {
	w := 0
	for _, ring := range s.rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if a.Y <= p.Y {
				if b.Y > p.Y && b.Sub(a).Cross(p.Sub(a)) > 0 {
					w++
				}
			} else {
				if b.Y <= p.Y && b.Sub(a).Cross(p.Sub(a)) < 0 {
					w--
				}
			}
		}
	}
	return w
}
