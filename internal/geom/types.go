package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FloorWall marks a GeometryError that originated in floor generation
// rather than in a particular wall.
const FloorWall = -1

// GeometryError reports a violated geometric precondition. Wall is the
// originating wall index, or FloorWall for floor-level failures; Input is
// the raw input that triggered the error.
type GeometryError struct {
	Wall  int
	Input string
	Msg   string
}

func (e *GeometryError) Error() string {
	if e.Wall == FloorWall {
		return fmt.Sprintf("geometry: floor: %s (input %s)", e.Msg, e.Input)
	}
	return fmt.Sprintf("geometry: wall %d: %s (input %s)", e.Wall, e.Msg, e.Input)
}

func geomErr(wall int, input any, format string, args ...any) *GeometryError {
	return &GeometryError{Wall: wall, Input: fmt.Sprintf("%v", input), Msg: fmt.Sprintf(format, args...)}
}

// Ring is a closed 2D polygon boundary; the last vertex connects back to
// the first implicitly. Engine-produced rings wind counter-clockwise.
type Ring []r2.Vec

// signedArea is positive for counter-clockwise rings (shoelace formula).
func (r Ring) signedArea() float64 {
	var s float64
	for i, a := range r {
		b := r[(i+1)%len(r)]
		s += a.X*b.Y - b.X*a.Y
	}
	return s / 2
}

// Area returns the absolute area enclosed by the ring.
func (r Ring) Area() float64 {
	a := r.signedArea()
	if a < 0 {
		return -a
	}
	return a
}

// BBox is an axis-aligned bounding rectangle.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include p.
func (b *BBox) Extend(p r2.Vec) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Expand returns the box grown by m on every side.
func (b BBox) Expand(m float64) BBox {
	return BBox{MinX: b.MinX - m, MinY: b.MinY - m, MaxX: b.MaxX + m, MaxY: b.MaxY + m}
}

// Contains reports whether o lies fully inside b.
func (b BBox) Contains(o BBox) bool {
	return o.MinX >= b.MinX && o.MinY >= b.MinY && o.MaxX <= b.MaxX && o.MaxY <= b.MaxY
}

// Bounds returns the bounding rectangle of every vertex in the rings.
func Bounds(rings []Ring) BBox {
	var bb BBox
	first := true
	for _, ring := range rings {
		for _, p := range ring {
			if first {
				bb = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				first = false
				continue
			}
			bb.Extend(p)
		}
	}
	return bb
}

// Mesh is an indexed triangle mesh: vertex positions plus index triples.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// Validate checks that every index triple is in range.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	for ti, t := range m.Triangles {
		for _, v := range t {
			if v < 0 || v >= n {
				return fmt.Errorf("mesh: triangle %d references vertex %d of %d", ti, v, n)
			}
		}
	}
	return nil
}

// Watertight reports whether every undirected edge is shared by exactly
// two triangles with opposite winding, i.e. the mesh is a closed manifold.
func (m Mesh) Watertight() bool {
	directed := make(map[[2]int]int)
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			e := [2]int{t[i], t[(i+1)%3]}
			directed[e]++
		}
	}
	for e, n := range directed {
		if n != 1 {
			return false
		}
		if directed[[2]int{e[1], e[0]}] != 1 {
			return false
		}
	}
	return len(directed) > 0
}

// EulerCharacteristic returns V - E + F with E counted as undirected
// edges. A closed mesh without holes yields 2.
func (m Mesh) EulerCharacteristic() int {
	edges := make(map[[2]int]bool)
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = true
		}
	}
	return len(m.Vertices) - len(edges) + len(m.Triangles)
}

// Bounds2D projects the mesh onto the ground plane and returns its
// bounding rectangle.
func (m Mesh) Bounds2D() BBox {
	var bb BBox
	for i, v := range m.Vertices {
		if i == 0 {
			bb = BBox{MinX: v.X, MinY: v.Y, MaxX: v.X, MaxY: v.Y}
			continue
		}
		bb.Extend(r2.Vec{X: v.X, Y: v.Y})
	}
	return bb
}
