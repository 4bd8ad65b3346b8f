package geom

import "gonum.org/v1/gonum/spatial/r3"

// Extrude lifts a triangulated footprint into a closed prism: bottom ring
// at z=0, top ring at z=height, caps from tris (bottom reversed so its
// normals face down), and two side triangles per ring edge wound so their
// normals face away from the interior. The result is watertight for any
// simple CCW ring. wall tags errors with the originating wall index.
func Extrude(ring Ring, tris [][3]int, height float64, wall int) (Mesh, error) {
	if height <= 0 {
		return Mesh{}, geomErr(wall, ring, "height must be positive, got %g", height)
	}
	n := len(ring)
	m := Mesh{
		Vertices:  make([]r3.Vec, 0, 2*n),
		Triangles: make([][3]int, 0, 2*len(tris)+2*n),
	}
	for _, p := range ring {
		m.Vertices = append(m.Vertices, r3.Vec{X: p.X, Y: p.Y, Z: 0})
	}
	for _, p := range ring {
		m.Vertices = append(m.Vertices, r3.Vec{X: p.X, Y: p.Y, Z: height})
	}
	// bottom cap, reversed winding
	for _, t := range tris {
		m.Triangles = append(m.Triangles, [3]int{t[0], t[2], t[1]})
	}
	// top cap, winding as given
	for _, t := range tris {
		m.Triangles = append(m.Triangles, [3]int{t[0] + n, t[1] + n, t[2] + n})
	}
	// side faces
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Triangles = append(m.Triangles,
			[3]int{i, j, j + n},
			[3]int{i, j + n, i + n},
		)
	}
	return m, nil
}
