// Package raster holds the fixed stages of the pipeline: buffers,
// homogeneous clipping and scanline rasterization. It is generic over
// the varyings and pixel types; programs in package shader supply the
// programmable stages.
package raster

import "github.com/chewxy/math32"

// Buffer is a dense row-major 2D pixel grid. Pix is exposed for hot
// loops; index (x,y) lives at Pix[y*Width()+x].
type Buffer[P any] struct {
	width  int
	height int
	Pix    []P
}

func NewBuffer[P any](width, height int) *Buffer[P] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer[P]{
		width:  width,
		height: height,
		Pix:    make([]P, width*height),
	}
}

// NewDepthBuffer returns a depth buffer cleared to +Inf. Smaller
// values are nearer.
func NewDepthBuffer(width, height int) *Buffer[float32] {
	b := NewBuffer[float32](width, height)
	b.Fill(math32.Inf(1))
	return b
}

func (b *Buffer[P]) Width() int  { return b.width }
func (b *Buffer[P]) Height() int { return b.height }

// At returns the pixel at x,y and whether the coordinates were in
// range.
func (b *Buffer[P]) At(x, y int) (P, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		var zero P
		return zero, false
	}
	return b.Pix[y*b.width+x], true
}

// Set writes the pixel at x,y; writes outside the buffer are dropped.
func (b *Buffer[P]) Set(x, y int, p P) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.Pix[y*b.width+x] = p
}

func (b *Buffer[P]) Fill(p P) {
	for i := range b.Pix {
		b.Pix[i] = p
	}
}

// Resize reallocates the buffer to the new size. Content after a
// resize is the zero pixel; same-size calls keep the buffer as is.
func (b *Buffer[P]) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.Pix = make([]P, width*height)
}

// Each visits every pixel in row-major order.
func (b *Buffer[P]) Each(fn func(x, y int, p P)) {
	i := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fn(x, y, b.Pix[i])
			i++
		}
	}
}
