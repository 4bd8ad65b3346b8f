package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestFootprint_AxisAlignedWall(t *testing.T) {
	t.Parallel()

	ring, err := Footprint(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, 0.1, 0)
	require.NoError(t, err)
	require.Len(t, ring, 4)

	// square caps: the footprint ends exactly at the segment endpoints
	want := Ring{
		{X: 0, Y: -0.05},
		{X: 1, Y: -0.05},
		{X: 1, Y: 0.05},
		{X: 0, Y: 0.05},
	}
	for i := range want {
		assert.InDelta(t, want[i].X, ring[i].X, 1e-12, "corner %d x", i)
		assert.InDelta(t, want[i].Y, ring[i].Y, 1e-12, "corner %d y", i)
	}
	assert.Greater(t, ring.signedArea(), 0.0, "ring must wind counter-clockwise")
	assert.InDelta(t, 0.1, ring.Area(), 1e-12)
}

func TestFootprint_DiagonalWallAreaAndWinding(t *testing.T) {
	t.Parallel()

	ring, err := Footprint(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 4, Y: 5}, 0.2, 0)
	require.NoError(t, err)
	// length 5 segment, thickness 0.2
	assert.InDelta(t, 1.0, ring.Area(), 1e-12)
	assert.Greater(t, ring.signedArea(), 0.0)
}

func TestFootprint_Errors(t *testing.T) {
	t.Parallel()

	t.Run("zero-length segment", func(t *testing.T) {
		t.Parallel()
		_, err := Footprint(r2.Vec{X: 2, Y: 3}, r2.Vec{X: 2, Y: 3}, 0.1, 7)
		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 7, gerr.Wall)
		assert.Contains(t, gerr.Error(), "wall 7")
	})

	t.Run("non-positive thickness", func(t *testing.T) {
		t.Parallel()
		_, err := Footprint(r2.Vec{}, r2.Vec{X: 1}, 0, 2)
		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 2, gerr.Wall)

		_, err = Footprint(r2.Vec{}, r2.Vec{X: 1}, -0.5, 2)
		require.True(t, errors.As(err, &gerr))
	})
}
