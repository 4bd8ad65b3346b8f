package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	p := Default()

	t.Run("unknown tag falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, p["default"], p.Resolve("unknown_type"))
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, p.Resolve("bedroom"), p.Resolve("Bedroom"))
		assert.Equal(t, p["kitchen"], p.Resolve("KITCHEN"))
	})
}

func TestMerge_OverridesSingleKey(t *testing.T) {
	t.Parallel()

	merged, err := Merge(map[string]RGB{"kitchen": {R: 1, G: 1, B: 0}})
	require.NoError(t, err)

	assert.Equal(t, RGB{R: 1, G: 1, B: 0}, merged.Resolve("kitchen"))
	// every other entry is untouched
	for k, v := range Default() {
		if k == "kitchen" {
			continue
		}
		assert.Equal(t, v, merged[k], "key %s", k)
	}
}

func TestMerge_KeysAreLowercased(t *testing.T) {
	t.Parallel()

	merged, err := Merge(map[string]RGB{"Bedroom": {R: 0.5, G: 0.5, B: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0.5, G: 0.5, B: 0.5}, merged.Resolve("bedroom"))
}

func TestMerge_ChannelOutOfRange(t *testing.T) {
	t.Parallel()

	for _, bad := range []RGB{{R: 1.5}, {G: -0.1}, {B: 2}} {
		_, err := Merge(map[string]RGB{"kitchen": bad})
		var cerr *ColorFormatError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "kitchen", cerr.Key)
	}
}

func TestMerge_DoesNotMutateBuiltin(t *testing.T) {
	t.Parallel()

	before := Default()
	_, err := Merge(map[string]RGB{"bedroom": {R: 0, G: 0, B: 0}})
	require.NoError(t, err)
	assert.Equal(t, before, Default())
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("bedroom", "#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)

	// leading '#' optional
	c2, err := ParseHex("bedroom", "ff0000")
	require.NoError(t, err)
	assert.Equal(t, c, c2)

	for _, bad := range []string{"", "zzz", "#gg0000"} {
		_, err := ParseHex("walls", bad)
		var cerr *ColorFormatError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "walls", cerr.Key)
	}
}

func TestMergeHex(t *testing.T) {
	t.Parallel()

	merged, err := MergeHex(map[string]string{"kitchen": "#ffff00"})
	require.NoError(t, err)
	got := merged.Resolve("kitchen")
	assert.InDelta(t, 1.0, got.R, 1e-9)
	assert.InDelta(t, 1.0, got.G, 1e-9)
	assert.InDelta(t, 0.0, got.B, 1e-9)

	_, err = MergeHex(map[string]string{"kitchen": "not-a-color"})
	var cerr *ColorFormatError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "kitchen", cerr.Key)
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ffcc00", RGB{R: 1, G: 0.8, B: 0}.Hex())
}
