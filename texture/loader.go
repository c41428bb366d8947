package texture

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"

	"github.com/ryanw/toru/colors"
)

// Load reads a PNG, JPEG or TGA file into a color texture. The format
// comes from the file extension: TGA files carry no magic bytes, so
// content sniffing cannot pick the decoder.
func Load(path string) (*Texture[colors.Color], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	default:
		return nil, fmt.Errorf("texture: %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies an image into a color texture.
func FromImage(img image.Image) *Texture[colors.Color] {
	src := toNRGBA(img)
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	t := New[colors.Color](w, h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			t.pix[y*w+x] = colors.RGBA(row[x*4], row[x*4+1], row[x*4+2], row[x*4+3])
		}
	}
	return t
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
