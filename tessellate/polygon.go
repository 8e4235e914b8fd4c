package tessellate

import (
	"math"
	"sort"

	"github.com/gogpu/textmesh/font"
)

// ring is a closed polygon; the segment from the last point back to
// the first is implied.
type ring []font.Point

// dedup removes consecutive duplicate points, including a trailing
// point that duplicates the first.
func (r ring) dedup() ring {
	if len(r) == 0 {
		return r
	}
	out := r[:1]
	for _, p := range r[1:] {
		if p.Sub(out[len(out)-1]).LengthSquared() > 1e-18 {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1].Sub(out[0]).LengthSquared() <= 1e-18 {
		out = out[:len(out)-1]
	}
	return out
}

// signedArea returns the signed area (positive for counter-clockwise).
func (r ring) signedArea() float64 {
	var area float64
	n := len(r)
	for i := 0; i < n; i++ {
		area += r[i].Cross(r[(i+1)%n])
	}
	return area / 2
}

// reversed returns the ring with opposite orientation.
func (r ring) reversed() ring {
	out := make(ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// contains reports whether p lies strictly inside the ring, by the
// even-odd crossing rule. Points on the boundary are unspecified.
func (r ring) contains(p font.Point) bool {
	inside := false
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// fillGroup is one outer ring with the holes it contains.
type fillGroup struct {
	outer ring
	holes []ring
}

// groupRings nests rings by the nonzero winding rule. The winding
// number just outside a ring is the sum of the orientations of every
// ring containing it. A ring whose interior side is nonzero while its
// exterior side is zero starts a filled region; the reverse bounds a
// hole; a ring with both sides nonzero lies in already filled area and
// contributes nothing. Outers are normalized counter-clockwise and
// holes clockwise, the orientation the ear clipper expects.
func groupRings(rings []ring) []fillGroup {
	n := len(rings)
	orient := make([]int, n)
	for i := range rings {
		if rings[i].signedArea() >= 0 {
			orient[i] = 1
		} else {
			orient[i] = -1
		}
	}

	outside := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rings[j].contains(rings[i][0]) {
				outside[i] += orient[j]
			}
		}
	}

	isOuter := make([]bool, n)
	isHole := make([]bool, n)
	for i := 0; i < n; i++ {
		inside := outside[i] + orient[i]
		isOuter[i] = outside[i] == 0 && inside != 0
		isHole[i] = outside[i] != 0 && inside == 0
	}

	groupOf := make(map[int]int)
	var groups []fillGroup

	// Outers first, in input order.
	for i := 0; i < n; i++ {
		if !isOuter[i] {
			continue
		}
		outer := rings[i]
		if outer.signedArea() < 0 {
			outer = outer.reversed()
		}
		groupOf[i] = len(groups)
		groups = append(groups, fillGroup{outer: outer})
	}

	for i := 0; i < n; i++ {
		if !isHole[i] {
			continue
		}
		// Innermost containing outer is the one with the smallest
		// absolute area.
		parent := -1
		bestArea := math.MaxFloat64
		for j := 0; j < n; j++ {
			if !isOuter[j] || !rings[j].contains(rings[i][0]) {
				continue
			}
			area := math.Abs(rings[j].signedArea())
			if area < bestArea {
				bestArea = area
				parent = j
			}
		}
		if parent < 0 {
			continue
		}
		hole := rings[i]
		if hole.signedArea() > 0 {
			hole = hole.reversed()
		}
		gi := groupOf[parent]
		groups[gi].holes = append(groups[gi].holes, hole)
	}

	// Bridge holes right-to-left for stable merging.
	for gi := range groups {
		sort.SliceStable(groups[gi].holes, func(a, b int) bool {
			return maxX(groups[gi].holes[a]) > maxX(groups[gi].holes[b])
		})
	}

	return groups
}

// maxX returns the largest X coordinate in the ring.
func maxX(r ring) float64 {
	m := r[0].X
	for _, p := range r[1:] {
		m = max(m, p.X)
	}
	return m
}
