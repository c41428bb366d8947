// Package texture provides pixel-addressable images sampled by
// normalized UV coordinates, generic over the pipeline's pixel type.
package texture

import (
	"github.com/chewxy/math32"

	"github.com/ryanw/toru/colors"
)

// Wrap controls how UV coordinates outside [0,1] resolve.
type Wrap int

const (
	Clamp Wrap = iota
	Repeat
)

// Filter controls texel interpolation.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

// Texture is a dense pixel grid sampled in normalized coordinates.
// The zero value of Wrap and Filter defaults to Clamp and Nearest.
type Texture[P colors.Blendable[P]] struct {
	width  int
	height int
	pix    []P

	Wrap   Wrap
	Filter Filter
}

func New[P colors.Blendable[P]](width, height int) *Texture[P] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Texture[P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

func (t *Texture[P]) Size() (int, int) {
	return t.width, t.height
}

// At returns the texel at x,y, or the zero pixel when out of range.
func (t *Texture[P]) At(x, y int) P {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		var zero P
		return zero
	}
	return t.pix[y*t.width+x]
}

func (t *Texture[P]) Set(x, y int, p P) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pix[y*t.width+x] = p
}

func (t *Texture[P]) wrap(c float32) float32 {
	switch t.Wrap {
	case Repeat:
		c -= math32.Floor(c)
		if c < 0 {
			c += 1
		}
		return c
	default:
		if c < 0 {
			return 0
		}
		if c > 1 {
			return 1
		}
		return c
	}
}

// Sample reads the texture at normalized coordinates. u,v outside
// [0,1] resolve by the wrap mode.
func (t *Texture[P]) Sample(u, v float32) P {
	if t.width == 0 || t.height == 0 {
		var zero P
		return zero
	}
	u = t.wrap(u)
	v = t.wrap(v)

	fx := u * float32(t.width-1)
	fy := v * float32(t.height-1)

	if t.Filter == Nearest {
		x := int(fx + 0.5)
		y := int(fy + 0.5)
		return t.pix[y*t.width+x]
	}

	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	if x1 >= t.width {
		x1 = t.width - 1
	}
	y1 := y0 + 1
	if y1 >= t.height {
		y1 = t.height - 1
	}
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	top := t.pix[y0*t.width+x0].Lerp(t.pix[y0*t.width+x1], tx)
	bottom := t.pix[y1*t.width+x0].Lerp(t.pix[y1*t.width+x1], tx)
	return top.Lerp(bottom, ty)
}
