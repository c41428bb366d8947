package turntable

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
)

func testConfig(t *testing.T) Config {
	return Config{
		Mesh:        mesh.NewCube(1),
		Material:    material.FromColor(colors.Red),
		OutputDir:   t.TempDir(),
		Size:        16,
		Supersample: 1,
		Frames:      3,
		Workers:     2,
		Elevation:   mathutil.Deg2Rad(20),
	}
}

func decodeFrame(t *testing.T, path string) (w, h int, center color.NRGBA) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := webp.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	mid := color.NRGBAModel.Convert(img.At(b.Dx()/2, b.Dy()/2)).(color.NRGBA)
	return b.Dx(), b.Dy(), mid
}

func TestRunRendersAllFrames(t *testing.T) {
	cfg := testConfig(t)
	results := Run(cfg)

	require.Len(t, results, cfg.Frames)
	for i, r := range results {
		assert.Equal(t, i, r.Frame)
		assert.True(t, r.Success, r.Error)
		assert.FileExists(t, r.Path)
	}
	assert.Equal(t, "frame_000.webp", filepath.Base(results[0].Path))
	assert.Equal(t, "frame_002.webp", filepath.Base(results[2].Path))

	// The cube sits on the orbit target, so the middle of every frame
	// is a lit face of the red material.
	for _, r := range results {
		w, h, mid := decodeFrame(t, r.Path)
		assert.Equal(t, cfg.Size, w)
		assert.Equal(t, cfg.Size, h)
		assert.Equal(t, uint8(255), mid.A)
		assert.Greater(t, mid.R, uint8(0))
		assert.Equal(t, uint8(0), mid.G)
		assert.Equal(t, uint8(0), mid.B)
	}
}

func TestRunSupersampleKeepsOutputSize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Supersample = 2
	results := Run(cfg)

	require.Len(t, results, cfg.Frames)
	for _, r := range results {
		require.True(t, r.Success, r.Error)
		w, h, mid := decodeFrame(t, r.Path)
		assert.Equal(t, cfg.Size, w)
		assert.Equal(t, cfg.Size, h)
		assert.Greater(t, mid.R, uint8(0))
	}
}

func TestRunFailsWhenOutputDirIsFile(t *testing.T) {
	dir := t.TempDir()
	occupied := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("x"), 0644))

	cfg := testConfig(t)
	cfg.OutputDir = occupied
	results := Run(cfg)

	require.Len(t, results, cfg.Frames)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestFitDistance(t *testing.T) {
	// half the diagonal of a 2-unit cube
	radius := float32(math.Sqrt(3))
	assert.InDelta(t, 2.7*radius, FitDistance(mesh.NewCube(2).Bounds()), 1e-3)

	assert.Equal(t, float32(1), FitDistance(mathutil.EmptyBox3()))
}
