package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDimensions(t *testing.T) {
	set, err := ParseDimensions(dimensionsYAML)
	require.NoError(t, err)
	require.Len(t, set.Dimensions, 6)

	assert.Equal(t, []string{"parallel", "volcanic"}, set.Unlocked(0))
	assert.Equal(t, []string{"parallel", "alien", "volcanic"}, set.Unlocked(1))
	assert.Len(t, set.Unlocked(99), 6)
	assert.Equal(t, 4, set.Extras())

	water, ok := set.Get("water")
	require.True(t, ok)
	assert.Equal(t, GrappleSwing, water.GrappleMode)
	assert.Equal(t, color.RGBA{R: 7, G: 20, B: 39, A: 255}, water.Background.RGBA)

	_, ok = set.Get("nowhere")
	assert.False(t, ok)
	assert.Equal(t, "parallel", set.Lookup("nowhere").Name)
}

func TestParseDimensionsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "dimensions: []"},
		{"not yaml", "dimensions: [::"},
		{"missing name", "dimensions:\n  - gravity: 1\n"},
		{"duplicate", "dimensions:\n  - name: a\n  - name: a\n"},
		{"bad mode", "dimensions:\n  - name: a\n    grapple_mode: fly\n"},
		{"bad color", "dimensions:\n  - name: a\n    tint: \"#12\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDimensions([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseDimensionsDefaults(t *testing.T) {
	set, err := ParseDimensions([]byte("dimensions:\n  - name: a\n"))
	require.NoError(t, err)
	assert.Equal(t, GrapplePull, set.Dimensions[0].GrappleMode)
	assert.Equal(t, "a", set.Dimensions[0].Display)
}

func TestNextDimension(t *testing.T) {
	unlocked := []string{"parallel", "alien", "volcanic"}
	assert.Equal(t, "alien", Next(unlocked, "parallel"))
	assert.Equal(t, "parallel", Next(unlocked, "volcanic"))
	assert.Equal(t, "parallel", Next(unlocked, "moon"))
	assert.Equal(t, "moon", Next(nil, "moon"))
}

func TestGrappleModeToggle(t *testing.T) {
	assert.Equal(t, GrappleSwing, GrapplePull.Toggle())
	assert.Equal(t, GrapplePull, GrappleSwing.Toggle())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 128}, c)

	c, err = ParseHexColor("0e3e57")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 14, G: 62, B: 87, A: 255}, c)

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestPlayerNeighborRadius(t *testing.T) {
	assert.Equal(t, 6, Player.NeighborRadius())
}

func TestWatchDimensionsReloads(t *testing.T) {
	original := Dimensions()
	t.Cleanup(func() { SetDimensions(original) })

	dir := t.TempDir()
	path := filepath.Join(dir, DimensionsFile)
	require.NoError(t, os.WriteFile(path, []byte("dimensions:\n  - name: first\n"), 0o644))

	w, err := WatchDimensions(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	assert.Equal(t, "first", Dimensions().Dimensions[0].Name)

	require.NoError(t, os.WriteFile(path, []byte("dimensions:\n  - name: second\n"), 0o644))
	assert.Eventually(t, func() bool {
		return Dimensions().Dimensions[0].Name == "second"
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("dimensions: [::"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "second", Dimensions().Dimensions[0].Name, "bad edits keep the last good settings")
}
