package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloor_SpansAllFootprints(t *testing.T) {
	t.Parallel()

	fps := []Ring{
		mustFootprint(t, 0, 0, 0, 1, 0.1),
		mustFootprint(t, 1, 0, 1, 1, 0.1),
		mustFootprint(t, 0, 1, 1, 1, 0.1),
	}
	m, err := Floor(fps, 0.5, -0.05)
	require.NoError(t, err)

	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.Triangles, 2)
	require.NoError(t, m.Validate())
	for _, v := range m.Vertices {
		assert.Equal(t, -0.05, v.Z)
	}
	// floor bounds minus margin still contain the wall footprint bounds
	assert.True(t, m.Bounds2D().Contains(Bounds(fps)))
	want := Bounds(fps).Expand(0.5)
	assert.Equal(t, want, m.Bounds2D())
}

func TestFloor_NormalFacesUp(t *testing.T) {
	t.Parallel()

	m, err := Floor([]Ring{mustFootprint(t, 0, 0, 2, 0, 0.1)}, 0.25, 0)
	require.NoError(t, err)
	for i := range m.Triangles {
		assert.Greater(t, triNormal(m, i).Z, 0.0, "floor triangle %d", i)
	}
}

func TestFloor_EmptyFootprints(t *testing.T) {
	t.Parallel()

	_, err := Floor(nil, 0.5, -0.05)
	var gerr *GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, FloorWall, gerr.Wall)
	assert.Contains(t, gerr.Error(), "floor")
}
