// Package canvas ties the pipeline together: it owns the color and
// depth buffers, the model transform stack and the per-frame draw
// callback, and hands shaders and meshes to the rasterizer.
package canvas

import (
	"image"
	"time"

	"github.com/chewxy/math32"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/raster"
)

// Canvas renders frames into a color buffer of pixel type O with a
// shared depth buffer. Each Tick clears both buffers and runs the draw
// callback with a fresh DrawContext.
type Canvas[O colors.Blendable[O]] struct {
	color     *raster.Buffer[O]
	depth     *raster.Buffer[float32]
	stack     []mathutil.Mat4
	transform mathutil.Mat4
	lastTick  time.Time
	draw      func(ctx *DrawContext[O], dt float32)
}

func New[O colors.Blendable[O]](width, height int, draw func(ctx *DrawContext[O], dt float32)) *Canvas[O] {
	return &Canvas[O]{
		color:     raster.NewBuffer[O](width, height),
		depth:     raster.NewDepthBuffer(width, height),
		transform: mathutil.Mat4Identity(),
		lastTick:  time.Now(),
		draw:      draw,
	}
}

func (c *Canvas[O]) Width() int  { return c.color.Width() }
func (c *Canvas[O]) Height() int { return c.color.Height() }

// Resize grows or shrinks both buffers. Content is discarded on a real
// size change; same-size calls do nothing.
func (c *Canvas[O]) Resize(width, height int) {
	if width == c.Width() && height == c.Height() {
		return
	}
	c.color.Resize(width, height)
	c.depth.Resize(width, height)
	c.depth.Fill(math32.Inf(1))
}

func (c *Canvas[O]) clear() {
	var zero O
	c.color.Fill(zero)
	c.depth.Fill(math32.Inf(1))
}

// Tick advances the frame clock, clears the buffers and runs the draw
// callback. It returns the seconds elapsed since the previous tick.
func (c *Canvas[O]) Tick() float32 {
	now := time.Now()
	dt := float32(now.Sub(c.lastTick).Seconds())
	c.lastTick = now

	c.clear()
	if c.draw != nil {
		c.draw(&DrawContext[O]{canvas: c}, dt)
	}
	return dt
}

// EachPixel visits the rendered pixels in row-major order. This is the
// hand-off point for presenters: terminals, windows and encoders all
// read frames through it or through Image.
func (c *Canvas[O]) EachPixel(fn func(x, y int, p O)) {
	c.color.Each(fn)
}

// Image copies a color canvas into a straight-alpha image for encoders
// and window blits.
func Image(c *Canvas[colors.Color]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	i := 0
	for _, p := range c.color.Pix {
		img.Pix[i+0] = p.R
		img.Pix[i+1] = p.G
		img.Pix[i+2] = p.B
		img.Pix[i+3] = p.A
		i += 4
	}
	return img
}
