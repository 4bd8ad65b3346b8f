package geom

import "gonum.org/v1/gonum/spatial/r3"

// Floor derives a single ground-plane quad spanning every wall footprint:
// the bounding rectangle of all footprint vertices expanded by margin on
// each side, two triangles at z = zOffset with the normal facing up. The
// bounding rectangle is used as-is even when footprints overlap; no
// polygon union is attempted. An empty footprint list is a GeometryError.
func Floor(footprints []Ring, margin, zOffset float64) (Mesh, error) {
	if len(footprints) == 0 {
		return Mesh{}, geomErr(FloorWall, footprints, "no wall footprints to derive floor from")
	}
	bb := Bounds(footprints).Expand(margin)
	return Mesh{
		Vertices: []r3.Vec{
			{X: bb.MinX, Y: bb.MinY, Z: zOffset},
			{X: bb.MaxX, Y: bb.MinY, Z: zOffset},
			{X: bb.MaxX, Y: bb.MaxY, Z: zOffset},
			{X: bb.MinX, Y: bb.MaxY, Z: zOffset},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}, nil
}
