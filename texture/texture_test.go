package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanw/toru/colors"
)

// checker builds a 2×2 texture: red green / blue white.
func checker() *Texture[colors.Color] {
	t := New[colors.Color](2, 2)
	t.Set(0, 0, colors.Red)
	t.Set(1, 0, colors.Green)
	t.Set(0, 1, colors.Blue)
	t.Set(1, 1, colors.White)
	return t
}

func TestAtBounds(t *testing.T) {
	tex := checker()
	assert.Equal(t, colors.Red, tex.At(0, 0))
	assert.Equal(t, colors.Color{}, tex.At(-1, 0))
	assert.Equal(t, colors.Color{}, tex.At(0, 2))

	// out-of-range writes are dropped
	tex.Set(5, 5, colors.White)
	assert.Equal(t, colors.White, tex.At(1, 1))
}

func TestSampleNearestCorners(t *testing.T) {
	tex := checker()
	assert.Equal(t, colors.Red, tex.Sample(0, 0))
	assert.Equal(t, colors.Green, tex.Sample(1, 0))
	assert.Equal(t, colors.Blue, tex.Sample(0, 1))
	assert.Equal(t, colors.White, tex.Sample(1, 1))
}

func TestSampleClamp(t *testing.T) {
	tex := checker()
	assert.Equal(t, colors.Red, tex.Sample(-3, -1))
	assert.Equal(t, colors.White, tex.Sample(2, 7))
}

func TestSampleRepeat(t *testing.T) {
	tex := checker()
	tex.Wrap = Repeat
	assert.Equal(t, tex.Sample(0.2, 0.2), tex.Sample(1.2, 0.2))
	assert.Equal(t, tex.Sample(0.2, 0.2), tex.Sample(-0.8, 0.2))
}

func TestSampleBilinear(t *testing.T) {
	tex := New[colors.Color](2, 1)
	tex.Set(0, 0, colors.Color{R: 0, G: 0, B: 0, A: 255})
	tex.Set(1, 0, colors.Color{R: 255, G: 0, B: 0, A: 255})
	tex.Filter = Bilinear

	mid := tex.Sample(0.5, 0)
	assert.InDelta(t, 128, int(mid.R), 1)

	quarter := tex.Sample(0.25, 0)
	assert.InDelta(t, 64, int(quarter.R), 1)
}

func TestSampleEmpty(t *testing.T) {
	tex := New[colors.Color](0, 0)
	assert.Equal(t, colors.Color{}, tex.Sample(0.5, 0.5))
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 128})

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoad(t *testing.T) {
	tex, err := Load(writeTestPNG(t))
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, colors.Red, tex.At(0, 0))
	assert.Equal(t, colors.Color{R: 255, G: 255, B: 255, A: 128}, tex.At(1, 1))
}

func TestLoadTGA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 128})

	path := filepath.Join(t.TempDir(), "tex.tga")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, tga.Encode(f, img))
	require.NoError(t, f.Close())

	tex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, colors.Red, tex.At(0, 0))
	assert.Equal(t, colors.Color{R: 0, G: 0, B: 255, A: 128}, tex.At(1, 0))
}

func TestLoadJPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{90, 170, 255, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "tex.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 100}))
	require.NoError(t, f.Close())

	tex, err := Load(path)
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	got := tex.At(2, 2)
	assert.InDelta(t, 90, int(got.R), 8)
	assert.InDelta(t, 170, int(got.G), 8)
	assert.InDelta(t, 255, int(got.B), 8)
	assert.Equal(t, uint8(255), got.A)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.bmp")
	require.NoError(t, os.WriteFile(path, []byte("BM"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	path := writeTestPNG(t)
	c := NewCache()

	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = c.Load(path + ".missing")
	assert.Error(t, err)
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	img.SetNRGBA(10, 10, color.NRGBA{1, 2, 3, 255})
	img.SetNRGBA(11, 10, color.NRGBA{4, 5, 6, 255})

	tex := FromImage(img)
	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, colors.Color{R: 1, G: 2, B: 3, A: 255}, tex.At(0, 0))
	assert.Equal(t, colors.Color{R: 4, G: 5, B: 6, A: 255}, tex.At(1, 0))
}
