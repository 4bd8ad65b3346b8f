package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// triNormal returns the (unnormalized) face normal of triangle i.
func triNormal(m Mesh, i int) r3.Vec {
	a := m.Vertices[m.Triangles[i][0]]
	b := m.Vertices[m.Triangles[i][1]]
	c := m.Vertices[m.Triangles[i][2]]
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

func mustFootprint(t *testing.T, x1, y1, x2, y2, th float64) Ring {
	t.Helper()
	ring, err := Footprint(r2.Vec{X: x1, Y: y1}, r2.Vec{X: x2, Y: y2}, th, 0)
	require.NoError(t, err)
	return ring
}

func TestExtrude_WallPrism(t *testing.T) {
	t.Parallel()

	ring := mustFootprint(t, 0, 0, 5, 0, 0.1)
	tris, err := Triangulate(ring, 0)
	require.NoError(t, err)
	m, err := Extrude(ring, tris, 2.5, 0)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 8, "4 bottom + 4 top")
	assert.Len(t, m.Triangles, 12, "2 caps x 2 + 4 side faces x 2")
	require.NoError(t, m.Validate())
	assert.True(t, m.Watertight())
	assert.Equal(t, 2, m.EulerCharacteristic())

	// bottom ring at z=0, top ring at z=height
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, m.Vertices[i].Z)
		assert.Equal(t, 2.5, m.Vertices[i+4].Z)
	}
}

func TestExtrude_CapOrientation(t *testing.T) {
	t.Parallel()

	ring := mustFootprint(t, 0, 0, 1, 0, 0.2)
	tris, err := Triangulate(ring, 0)
	require.NoError(t, err)
	m, err := Extrude(ring, tris, 1, 0)
	require.NoError(t, err)

	nCap := len(tris)
	for i := 0; i < nCap; i++ {
		assert.Less(t, triNormal(m, i).Z, 0.0, "bottom cap triangle %d must face down", i)
	}
	for i := nCap; i < 2*nCap; i++ {
		assert.Greater(t, triNormal(m, i).Z, 0.0, "top cap triangle %d must face up", i)
	}
	// side faces are vertical: normals have no z component
	for i := 2 * nCap; i < len(m.Triangles); i++ {
		assert.InDelta(t, 0.0, triNormal(m, i).Z, 1e-12, "side triangle %d", i)
	}
}

func TestExtrude_SideNormalsPointOutward(t *testing.T) {
	t.Parallel()

	ring := mustFootprint(t, 0, 0, 1, 0, 0.2)
	tris, err := Triangulate(ring, 0)
	require.NoError(t, err)
	m, err := Extrude(ring, tris, 1, 0)
	require.NoError(t, err)

	center := r3.Vec{X: 0.5, Y: 0, Z: 0.5}
	for i := 2 * len(tris); i < len(m.Triangles); i++ {
		a := m.Vertices[m.Triangles[i][0]]
		b := m.Vertices[m.Triangles[i][1]]
		c := m.Vertices[m.Triangles[i][2]]
		centroid := r3.Scale(1.0/3.0, r3.Add(r3.Add(a, b), c))
		out := r3.Sub(centroid, center)
		assert.Greater(t, r3.Dot(triNormal(m, i), out), 0.0, "side triangle %d must face away from the interior", i)
	}
}

func TestExtrude_LShapePrismIsWatertight(t *testing.T) {
	t.Parallel()

	ring := Ring{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	tris, err := Triangulate(ring, 0)
	require.NoError(t, err)
	m, err := Extrude(ring, tris, 3, 0)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 12)
	assert.True(t, m.Watertight())
	assert.Equal(t, 2, m.EulerCharacteristic())
}

func TestExtrude_InvalidHeight(t *testing.T) {
	t.Parallel()

	ring := mustFootprint(t, 0, 0, 1, 0, 0.1)
	tris, err := Triangulate(ring, 0)
	require.NoError(t, err)

	for _, h := range []float64{0, -2.5} {
		_, err := Extrude(ring, tris, h, 4)
		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 4, gerr.Wall)
	}
}
