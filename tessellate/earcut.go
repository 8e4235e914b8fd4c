package tessellate

import (
	"math"

	"github.com/gogpu/textmesh/font"
)

// areaEps is the signed-area threshold below which a triangle is
// considered degenerate. Coordinates are in em units.
const areaEps = 1e-12

// triangulateGroup triangulates one outer ring with its holes,
// appending geometry to the mesh.
func triangulateGroup(g fillGroup, mesh *Mesh) error {
	poly := g.outer
	for _, hole := range g.holes {
		merged, err := bridgeHole(poly, hole)
		if err != nil {
			return err
		}
		poly = merged
	}
	return earClip(poly, mesh)
}

// bridgeHole merges a hole ring into the outer polygon by inserting a
// two-way bridge between the hole's rightmost vertex and a visible
// polygon vertex, so the result is a single convex-clippable ring.
func bridgeHole(poly, hole ring) (ring, error) {
	// Rightmost hole vertex.
	hi := 0
	for i, p := range hole {
		if p.X > hole[hi].X {
			hi = i
		}
	}
	m := hole[hi]

	pi, ok := findBridgeVertex(poly, m)
	if !ok {
		return nil, &Error{Reason: "hole cannot be bridged to outer contour"}
	}

	// poly[0..pi], hole cycle from hi back to hi, then poly[pi..].
	merged := make(ring, 0, len(poly)+len(hole)+2)
	merged = append(merged, poly[:pi+1]...)
	for i := 0; i <= len(hole); i++ {
		merged = append(merged, hole[(hi+i)%len(hole)])
	}
	merged = append(merged, poly[pi:]...)
	return merged, nil
}

// findBridgeVertex returns the index of a polygon vertex visible from
// m along the +X direction, using a ray cast to locate the nearest
// edge and falling back to the reflex vertex blocking the triangle if
// the direct connection is obstructed.
func findBridgeVertex(poly ring, m font.Point) (int, bool) {
	n := len(poly)
	bestX := math.MaxFloat64
	candidate := -1
	var hit font.Point

	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if (a.Y > m.Y) == (b.Y > m.Y) {
			continue
		}
		x := a.X + (m.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x < m.X || x >= bestX {
			continue
		}
		bestX = x
		hit = font.Point{X: x, Y: m.Y}
		// Take the endpoint of the intersected edge with the larger X.
		if a.X > b.X {
			candidate = i
		} else {
			candidate = (i + 1) % n
		}
	}
	if candidate < 0 {
		return 0, false
	}

	// If a reflex vertex lies inside triangle (m, hit, candidate), the
	// direct bridge is blocked; bridge to the blocking vertex closest
	// in angle to the +X ray instead.
	p := poly[candidate]
	bestTan := math.MaxFloat64
	blocked := -1
	for i := 0; i < n; i++ {
		if i == candidate {
			continue
		}
		v := poly[i]
		if v.X < m.X || !pointInTriangle(m, hit, p, v) {
			continue
		}
		tan := math.Abs(v.Y-m.Y) / (v.X - m.X + 1e-30)
		if tan < bestTan || (tan == bestTan && v.X > poly[blocked].X) {
			bestTan = tan
			blocked = i
		}
	}
	if blocked >= 0 {
		return blocked, true
	}
	return candidate, true
}

// earClip triangulates a single (possibly bridged) ring and appends
// the result to the mesh. The ring must wind counter-clockwise.
func earClip(poly ring, mesh *Mesh) error {
	n := len(poly)
	if n < 3 {
		return nil
	}

	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, poly...)

	prev := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = (i + n - 1) % n
		next[i] = (i + 1) % n
	}

	remaining := n
	ear := 0
	for remaining > 3 {
		found := false
		for scan := 0; scan < remaining; scan++ {
			if isEar(poly, prev, next, ear) {
				found = true
				break
			}
			ear = next[ear]
		}
		if !found {
			return &Error{Reason: "no ear found, contour is degenerate or self-intersecting"}
		}

		a, b, c := prev[ear], ear, next[ear]
		mesh.Indices = append(mesh.Indices, base+uint32(a), base+uint32(b), base+uint32(c))

		next[a] = c
		prev[c] = a
		ear = c
		remaining--
	}

	a, b, c := ear, next[ear], next[next[ear]]
	mesh.Indices = append(mesh.Indices, base+uint32(a), base+uint32(b), base+uint32(c))
	return nil
}

// isEar reports whether the vertex is a clippable ear: convex (or
// collinear) with no remaining vertex inside its triangle.
func isEar(poly ring, prev, next []int, i int) bool {
	a, b, c := poly[prev[i]], poly[i], poly[next[i]]

	cross := b.Sub(a).Cross(c.Sub(b))
	if cross < -areaEps {
		// Reflex vertex.
		return false
	}
	if cross <= areaEps {
		// Collinear; clip it as a zero-area ear.
		return true
	}

	for j := next[next[i]]; j != prev[i]; j = next[j] {
		if samePoint(poly[j], a) || samePoint(poly[j], b) || samePoint(poly[j], c) {
			// Bridge duplicates coincide with triangle corners.
			continue
		}
		if pointInTriangle(a, b, c, poly[j]) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies inside or on triangle abc.
func pointInTriangle(a, b, c, p font.Point) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(p, a, b font.Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func samePoint(a, b font.Point) bool {
	return a.Sub(b).LengthSquared() <= 1e-18
}
