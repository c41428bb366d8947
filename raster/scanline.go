package raster

import (
	"github.com/chewxy/math32"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/shader"
)

// painter carries the per-draw state of the scanline walk.
type painter[F shader.Varyings[F], O colors.Blendable[O]] struct {
	fb    *Buffer[O]
	depth *Buffer[float32]
	frag  shader.FragmentShader[F, O]
}

func xOf[F shader.Varyings[F]](f F) float32 { return f.Position()[0] }
func yOf[F shader.Varyings[F]](f F) float32 { return f.Position()[1] }

// DrawTriangle rasterizes one post-clip clip-space triangle into the
// color and depth buffers through the fragment shader. The buffers
// must share dimensions. Fragments write when strictly nearer than
// the stored depth, so later equal-depth fragments are skipped.
func DrawTriangle[F shader.Varyings[F], O colors.Blendable[O]](fb *Buffer[O], depth *Buffer[float32], frag shader.FragmentShader[F, O], tri [3]F) {
	a := shader.DividePerspective(tri[0])
	b := shader.DividePerspective(tri[1])
	c := shader.DividePerspective(tri[2])

	// front faces wind counter-clockwise in NDC; backfaces and
	// zero-area triangles drop here
	pa, pb, pc := a.Position(), b.Position(), c.Position()
	if (pb[0]-pa[0])*(pc[1]-pa[1])-(pb[1]-pa[1])*(pc[0]-pa[0]) <= 0 {
		return
	}

	p := painter[F, O]{fb: fb, depth: depth, frag: frag}
	a, b, c = p.screen(a), p.screen(b), p.screen(c)

	// sort by screen y, top row first
	if yOf(b) < yOf(a) {
		a, b = b, a
	}
	if yOf(c) < yOf(b) {
		b, c = c, b
	}
	if yOf(b) < yOf(a) {
		a, b = b, a
	}

	switch {
	case yOf(a) == yOf(b):
		p.fillFlatTop(a, b, c, false)
	case yOf(b) == yOf(c):
		p.fillFlatBottom(a, b, c)
	default:
		// split at the middle vertex's row; the second half skips
		// its first row so the shared row rasterizes once
		t := (yOf(b) - yOf(a)) / (yOf(c) - yOf(a))
		mid := a.Lerp(c, t)
		p.fillFlatBottom(a, b, mid)
		p.fillFlatTop(b, mid, c, true)
	}
}

// screen maps an NDC position onto whole pixel coordinates, y down.
func (p *painter[F, O]) screen(f F) F {
	pos := f.Position()
	w := float32(p.fb.width)
	h := float32(p.fb.height)
	return f.WithPosition(mathutil.Vec4{
		math32.Round(w * (pos[0]/2 + 0.5)),
		h - math32.Round(h*(pos[1]/2+0.5)),
		pos[2],
		pos[3],
	})
}

// fillFlatBottom walks a triangle whose flat edge b1–b2 is below the
// apex, accumulating both edges row by row.
func (p *painter[F, O]) fillFlatBottom(top, b1, b2 F) {
	y0 := int(yOf(top))
	y1 := int(yOf(b1))
	rows := y1 - y0
	if rows <= 0 {
		p.span(b1, b2, y0)
		return
	}

	t := 1 / float32(rows)
	stepL := shader.LerpStep(top, b1, t)
	stepR := shader.LerpStep(top, b2, t)
	left, right := top, top
	for y := y0; ; y++ {
		p.span(left, right, y)
		if y == y1 {
			break
		}
		left = left.Add(stepL)
		right = right.Add(stepR)
	}
}

// fillFlatTop walks a triangle whose flat edge t1–t2 is above the
// apex. skipFirst drops the top row when it was already drawn by the
// flat-bottom half of a split.
func (p *painter[F, O]) fillFlatTop(t1, t2, bot F, skipFirst bool) {
	y0 := int(yOf(t1))
	y1 := int(yOf(bot))
	rows := y1 - y0
	if rows <= 0 {
		if !skipFirst {
			p.span(t1, t2, y0)
		}
		return
	}

	t := 1 / float32(rows)
	stepL := shader.LerpStep(t1, bot, t)
	stepR := shader.LerpStep(t2, bot, t)
	left, right := t1, t2
	y := y0
	if skipFirst {
		left = left.Add(stepL)
		right = right.Add(stepR)
		y++
	}
	for ; ; y++ {
		p.span(left, right, y)
		if y == y1 {
			break
		}
		left = left.Add(stepL)
		right = right.Add(stepR)
	}
}

// span walks one row between two edge varyings, depth-testing and
// blending each covered pixel.
func (p *painter[F, O]) span(left, right F, y int) {
	if y < 0 || y >= p.fb.height {
		return
	}
	lx := int(xOf(left))
	rx := int(xOf(right))
	if rx < lx {
		left, right = right, left
		lx, rx = rx, lx
	}

	steps := rx - lx
	var step F
	if steps > 0 {
		step = shader.LerpStep(left, right, 1/float32(steps))
	}

	w := p.fb.width
	cur := left
	for x := lx; x <= rx; x++ {
		if x >= 0 && x < w {
			z := cur.Position()[2]
			i := y*w + x
			if z < p.depth.Pix[i] {
				p.depth.Pix[i] = z
				p.fb.Pix[i] = p.frag.Fragment(cur).Blend(p.fb.Pix[i])
			}
		}
		if steps > 0 {
			cur = cur.Add(step)
		}
	}
}
