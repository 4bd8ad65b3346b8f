package geom

import "gonum.org/v1/gonum/spatial/r2"

// areaEps is the smallest triangle/polygon area treated as non-degenerate.
const areaEps = 1e-12

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c r2.Vec) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func triArea(a, b, c r2.Vec) float64 {
	s := cross(a, b, c) / 2
	if s < 0 {
		return -s
	}
	return s
}

// Triangulate decomposes a simple counter-clockwise ring into triangle
// index triples over the ring's own vertex indices. Quadrilaterals are
// split along the diagonal that yields the more balanced pair of
// triangles; anything larger goes through ear clipping. Degenerate input
// (fewer than 3 vertices, zero area, clockwise winding, or an
// unclippable polygon, which indicates self-intersection) fails with a
// GeometryError tagged with wall.
func Triangulate(ring Ring, wall int) ([][3]int, error) {
	if len(ring) < 3 {
		return nil, geomErr(wall, ring, "polygon needs at least 3 vertices, got %d", len(ring))
	}
	sa := ring.signedArea()
	if sa < 0 {
		return nil, geomErr(wall, ring, "polygon winds clockwise")
	}
	if sa < areaEps {
		return nil, geomErr(wall, ring, "degenerate polygon (zero area)")
	}
	switch len(ring) {
	case 3:
		return [][3]int{{0, 1, 2}}, nil
	case 4:
		return splitQuad(ring), nil
	}
	return earClip(ring, wall)
}

// splitQuad cuts a convex quadrilateral along one diagonal, preferring
// the diagonal whose smaller triangle is largest (avoids near-zero-area
// slivers on stretched quads).
func splitQuad(ring Ring) [][3]int {
	// diagonal 0-2
	a1 := triArea(ring[0], ring[1], ring[2])
	a2 := triArea(ring[0], ring[2], ring[3])
	// diagonal 1-3
	b1 := triArea(ring[0], ring[1], ring[3])
	b2 := triArea(ring[1], ring[2], ring[3])
	if min(a1, a2) >= min(b1, b2) {
		return [][3]int{{0, 1, 2}, {0, 2, 3}}
	}
	return [][3]int{{0, 1, 3}, {1, 2, 3}}
}

// earClip triangulates a simple CCW polygon by repeatedly removing a
// convex vertex whose triangle contains no other remaining vertex.
func earClip(ring Ring, wall int) ([][3]int, error) {
	idx := make([]int, len(ring))
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]int, 0, len(ring)-2)
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			p := idx[(i+len(idx)-1)%len(idx)]
			e := idx[i]
			n := idx[(i+1)%len(idx)]
			if cross(ring[p], ring[e], ring[n]) <= 0 {
				continue // reflex or collinear vertex, not an ear
			}
			if containsAny(ring, idx, p, e, n) {
				continue
			}
			tris = append(tris, [3]int{p, e, n})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, geomErr(wall, ring, "no ear found; polygon is self-intersecting or degenerate")
		}
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	return tris, nil
}

// containsAny reports whether any remaining vertex other than p, e, n
// lies inside triangle (p, e, n).
func containsAny(ring Ring, idx []int, p, e, n int) bool {
	for _, v := range idx {
		if v == p || v == e || v == n {
			continue
		}
		if pointInTriangle(ring[v], ring[p], ring[e], ring[n]) {
			return true
		}
	}
	return false
}

func pointInTriangle(pt, a, b, c r2.Vec) bool {
	d1 := cross(a, b, pt)
	d2 := cross(b, c, pt)
	d3 := cross(c, a, pt)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
