package sdf

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// edgeKind classifies edge segments by their geometric type.
type edgeKind int

const (
	edgeLine edgeKind = iota
	edgeQuad
	edgeCubic
)

// edge is a single contour segment used for distance calculation.
type edge struct {
	kind edgeKind

	// pts contains the control and end points.
	//   line:  pts[0] (start), pts[1] (end)
	//   quad:  pts[0] (start), pts[1] (control), pts[2] (end)
	//   cubic: pts[0] (start), pts[1], pts[2] (controls), pts[3] (end)
	pts [4]font.Point
}

func lineEdge(a, b font.Point) edge {
	return edge{kind: edgeLine, pts: [4]font.Point{a, b}}
}

func quadEdge(a, ctrl, b font.Point) edge {
	return edge{kind: edgeQuad, pts: [4]font.Point{a, ctrl, b}}
}

func cubicEdge(a, ctrl1, ctrl2, b font.Point) edge {
	return edge{kind: edgeCubic, pts: [4]font.Point{a, ctrl1, ctrl2, b}}
}

// pointAt evaluates the edge at parameter t in [0, 1].
func (e *edge) pointAt(t float64) font.Point {
	switch e.kind {
	case edgeLine:
		return e.pts[0].Lerp(e.pts[1], t)
	case edgeQuad:
		return evalQuad(e.pts[0], e.pts[1], e.pts[2], t)
	default:
		return evalCubic(e.pts[0], e.pts[1], e.pts[2], e.pts[3], t)
	}
}

// distance returns the unsigned Euclidean distance from p to the edge.
// The sign is applied later from the winding number of the whole shape,
// which is more robust than per-edge orientation.
func (e *edge) distance(p font.Point) float64 {
	switch e.kind {
	case edgeLine:
		return lineDistance(e.pts[0], e.pts[1], p)
	case edgeQuad:
		return quadDistance(e.pts[0], e.pts[1], e.pts[2], p)
	default:
		return cubicDistance(e.pts[0], e.pts[1], e.pts[2], e.pts[3], p)
	}
}

// bounds returns the tight bounding box of the edge, accounting for
// curve extrema.
func (e *edge) bounds() font.Rect {
	switch e.kind {
	case edgeLine:
		return font.RectFromCorners(e.pts[0], e.pts[1])
	case edgeQuad:
		return quadBounds(e.pts[0], e.pts[1], e.pts[2])
	default:
		return cubicBounds(e.pts[0], e.pts[1], e.pts[2], e.pts[3])
	}
}

// evalQuad evaluates a quadratic bezier at parameter t.
func evalQuad(p0, p1, p2 font.Point, t float64) font.Point {
	u := 1 - t
	return font.Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic bezier at parameter t.
func evalCubic(p0, p1, p2, p3 font.Point, t float64) font.Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return font.Point{
		X: u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		Y: u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

// cubicDeriv returns the first derivative of a cubic bezier at t.
func cubicDeriv(p0, p1, p2, p3 font.Point, t float64) font.Point {
	u := 1 - t
	return font.Point{
		X: 3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		Y: 3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// cubicDeriv2 returns the second derivative of a cubic bezier at t.
func cubicDeriv2(p0, p1, p2, p3 font.Point, t float64) font.Point {
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// lineDistance returns the distance from p to segment a-b.
func lineDistance(a, b, p font.Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		return ap.Length()
	}

	t := ap.Dot(ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// quadDistance returns the distance from p to a quadratic bezier.
// The squared distance is quartic in t; its derivative is a cubic whose
// real roots in [0, 1], plus the endpoints, are the candidates.
func quadDistance(p0, p1, p2, p font.Point) float64 {
	qa := p0.Sub(p)
	qb := p1.Sub(p)
	qc := p2.Sub(p)

	// Curve relative to p: B(t) = a*t^2 + b*t + c.
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := 2*a.Dot(c) + b.Dot(b)
	c0 := b.Dot(c)

	best := math.MaxFloat64
	check := func(t float64) {
		d := p.Sub(evalQuad(p0, p1, p2, t)).Length()
		if d < best {
			best = d
		}
	}

	check(0)
	check(1)
	for _, t := range solveCubic(c3, c2, c1, c0) {
		check(t)
	}
	return best
}

// cubicDistance returns the distance from p to a cubic bezier.
// The closest-point condition is quintic, so sampled starting points
// are refined with Newton iteration.
func cubicDistance(p0, p1, p2, p3, p font.Point) float64 {
	best := math.MaxFloat64
	check := func(t float64) {
		d := p.Sub(evalCubic(p0, p1, p2, p3, t)).Length()
		if d < best {
			best = d
		}
	}

	check(0)
	check(1)

	const samples = 8
	for i := 0; i <= samples; i++ {
		t := newtonRefineCubic(p0, p1, p2, p3, p, float64(i)/samples)
		check(t)
	}
	return best
}

// newtonRefineCubic refines a closest-point parameter with Newton's method.
func newtonRefineCubic(p0, p1, p2, p3, p font.Point, t float64) float64 {
	const maxIter = 8
	const epsilon = 1e-10

	for i := 0; i < maxIter; i++ {
		diff := evalCubic(p0, p1, p2, p3, t).Sub(p)
		d1 := cubicDeriv(p0, p1, p2, p3, t)
		d2 := cubicDeriv2(p0, p1, p2, p3, t)

		// f(t) = diff.Dot(d1) is the derivative of squared distance.
		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)
		if math.Abs(fp) < epsilon {
			break
		}

		dt := -f / fp
		if math.Abs(dt) < epsilon {
			break
		}

		t += dt
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// solveCubic solves a*x^3 + b*x^2 + c*x + d = 0.
// Returns real roots in [0, 1].
func solveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-14 {
		return solveQuadratic(b, c, d)
	}

	// Normalize and depress the cubic for Cardano's method.
	b /= a
	c /= a
	d /= a
	p := c - b*b/3
	q := d - b*c/3 + 2*b*b*b/27
	discriminant := q*q/4 + p*p*p/27

	var roots []float64
	appendRoot := func(root float64) {
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}

	switch {
	case discriminant > 1e-14:
		// One real root.
		sqrtD := math.Sqrt(discriminant)
		appendRoot(cbrt(-q/2+sqrtD) + cbrt(-q/2-sqrtD) - b/3)
	case discriminant < -1e-14:
		// Three real roots.
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(-q / (2 * r))
		cubeRootR := math.Pow(r, 1.0/3.0)
		for k := 0; k < 3; k++ {
			appendRoot(2*cubeRootR*math.Cos((phi+float64(2*k)*math.Pi)/3) - b/3)
		}
	default:
		// Repeated roots.
		u := cbrt(-q / 2)
		appendRoot(2*u - b/3)
		appendRoot(-u - b/3)
	}
	return roots
}

// solveQuadratic solves a*x^2 + b*x + c = 0.
// Returns real roots in [0, 1].
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		// Linear.
		if math.Abs(b) < 1e-14 {
			return nil
		}
		root := -c / b
		if root >= 0 && root <= 1 {
			return []float64{root}
		}
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	var roots []float64
	for _, root := range [2]float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)} {
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}
	return roots
}

// cbrt returns the cube root of x (handles negative values).
func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1.0/3.0)
	}
	return math.Pow(x, 1.0/3.0)
}

// quadBounds returns the bounding box of a quadratic bezier.
func quadBounds(p0, p1, p2 font.Point) font.Rect {
	bounds := font.RectFromCorners(p0, p2)

	// Derivative root: t = (p0-p1)/(p0-2*p1+p2), per axis.
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-10 {
		if t := (p0.X - p1.X) / dx; t > 0 && t < 1 {
			x := evalQuad(p0, p1, p2, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}
	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-10 {
		if t := (p0.Y - p1.Y) / dy; t > 0 && t < 1 {
			y := evalQuad(p0, p1, p2, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}
	return bounds
}

// cubicBounds returns the bounding box of a cubic bezier.
func cubicBounds(p0, p1, p2, p3 font.Point) font.Rect {
	bounds := font.RectFromCorners(p0, p3)

	// The derivative is quadratic per axis; extrema lie at its roots.
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2*p0.X - 4*p1.X + 2*p2.X
	cx := -p0.X + p1.X
	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := evalCubic(p0, p1, p2, p3, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2*p0.Y - 4*p1.Y + 2*p2.Y
	cy := -p0.Y + p1.Y
	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := evalCubic(p0, p1, p2, p3, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}
	return bounds
}
