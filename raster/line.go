package raster

import (
	"github.com/chewxy/math32"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/shader"
)

// DrawLine rasterizes one post-clip clip-space segment into the color
// and depth buffers. Line fragments replace the pixel outright rather
// than blending, so wireframes stay crisp over filled geometry.
func DrawLine[F shader.Varyings[F], O colors.Blendable[O]](fb *Buffer[O], depth *Buffer[float32], frag shader.FragmentShader[F, O], start, end F) {
	p := painter[F, O]{fb: fb, depth: depth, frag: frag}
	a := p.screen(shader.DividePerspective(start))
	b := p.screen(shader.DividePerspective(end))

	pa, pb := a.Position(), b.Position()
	dx := math32.Abs(pb[0] - pa[0])
	dy := math32.Abs(pb[1] - pa[1])
	steps := int(math32.Max(dx, dy))
	if steps == 0 {
		p.plot(a)
		return
	}

	step := shader.LerpStep(a, b, 1/float32(steps))
	cur := a
	for i := 0; i <= steps; i++ {
		p.plot(cur)
		cur = cur.Add(step)
	}
}

func (p *painter[F, O]) plot(f F) {
	pos := f.Position()
	x := int(math32.Round(pos[0]))
	y := int(math32.Round(pos[1]))
	if x < 0 || y < 0 || x >= p.fb.width || y >= p.fb.height {
		return
	}
	i := y*p.fb.width + x
	if pos[2] < p.depth.Pix[i] {
		p.depth.Pix[i] = pos[2]
		p.fb.Pix[i] = p.frag.Fragment(f)
	}
}
