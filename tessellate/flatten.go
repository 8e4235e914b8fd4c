package tessellate

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// maxCurveSteps caps the subdivision of a single curve so extreme
// tolerances cannot allocate unbounded geometry.
const maxCurveSteps = 1024

// flattenOutline converts a normalized outline into closed polygon
// rings. Curves are subdivided so the polyline stays within tolerance
// of the true curve. Consecutive duplicate points and rings with fewer
// than three points are dropped.
func flattenOutline(outline *font.GlyphOutline, scale float64, origin font.Point, tolerance float64) []ring {
	var rings []ring
	var cur ring
	var pos font.Point
	started := false

	norm := func(p font.Point) font.Point {
		return p.Sub(origin).Mul(scale)
	}

	closeRing := func() {
		if !started {
			return
		}
		cur = cur.dedup()
		if len(cur) >= 3 {
			rings = append(rings, cur)
		}
		cur = nil
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case font.SegmentOpMoveTo:
			closeRing()
			pos = norm(seg.Points[0])
			cur = append(cur, pos)
			started = true

		case font.SegmentOpLineTo:
			pos = norm(seg.Points[0])
			cur = append(cur, pos)

		case font.SegmentOpQuadTo:
			ctrl, end := norm(seg.Points[0]), norm(seg.Points[1])
			steps := quadSteps(pos, ctrl, end, tolerance)
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				cur = append(cur, font.Point{
					X: u*u*pos.X + 2*u*t*ctrl.X + t*t*end.X,
					Y: u*u*pos.Y + 2*u*t*ctrl.Y + t*t*end.Y,
				})
			}
			pos = end

		case font.SegmentOpCubicTo:
			c1, c2, end := norm(seg.Points[0]), norm(seg.Points[1]), norm(seg.Points[2])
			steps := cubicSteps(pos, c1, c2, end, tolerance)
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				u2, t2 := u*u, t*t
				cur = append(cur, font.Point{
					X: u*u2*pos.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t*t2*end.X,
					Y: u*u2*pos.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t*t2*end.Y,
				})
			}
			pos = end
		}
	}
	closeRing()

	return rings
}

// quadSteps returns the uniform subdivision count keeping a quadratic
// bezier within tolerance (Wang's bound on the second derivative).
func quadSteps(p0, p1, p2 font.Point, tolerance float64) int {
	m := p0.Sub(p1.Mul(2)).Add(p2).Length() * 2
	return stepsForDeviation(m, tolerance)
}

// cubicSteps returns the uniform subdivision count keeping a cubic
// bezier within tolerance.
func cubicSteps(p0, p1, p2, p3 font.Point, tolerance float64) int {
	m1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	m2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	return stepsForDeviation(6*max(m1, m2), tolerance)
}

// stepsForDeviation converts a second-derivative bound into a step
// count: n >= sqrt(m / (8 * tolerance)).
func stepsForDeviation(m, tolerance float64) int {
	if tolerance <= 0 || m <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(m / (8 * tolerance))))
	if n < 1 {
		return 1
	}
	if n > maxCurveSteps {
		return maxCurveSteps
	}
	return n
}
