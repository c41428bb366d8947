package shader

import (
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
)

// flatLight is the fixed directional light of the built-in mesh
// program, pointing from surfaces toward the light.
var flatLight = mathutil.Vec3{0.8, 0.3, 0.8}.Normalize()

const flatAmbient = 0.1

// FlatVaryings is the interpolated state of the built-in mesh program.
// UV carries (u/w, v/w, 1/w) so screen-space interpolation stays
// perspective-correct; Tint carries straight-alpha channels as floats
// (0..255) so interpolation math never wraps.
type FlatVaryings struct {
	Pos   mathutil.Vec4
	UV    mathutil.Vec3
	Shade float32
	Tint  mathutil.Vec4
}

func (f FlatVaryings) Position() mathutil.Vec4 { return f.Pos }

func (f FlatVaryings) WithPosition(p mathutil.Vec4) FlatVaryings {
	f.Pos = p
	return f
}

func (f FlatVaryings) Add(o FlatVaryings) FlatVaryings {
	return FlatVaryings{
		Pos:   f.Pos.Add(o.Pos),
		UV:    f.UV.Add(o.UV),
		Shade: f.Shade + o.Shade,
		Tint:  f.Tint.Add(o.Tint),
	}
}

func (f FlatVaryings) Sub(o FlatVaryings) FlatVaryings {
	return FlatVaryings{
		Pos:   f.Pos.Sub(o.Pos),
		UV:    f.UV.Sub(o.UV),
		Shade: f.Shade - o.Shade,
		Tint:  f.Tint.Sub(o.Tint),
	}
}

func (f FlatVaryings) Lerp(o FlatVaryings, t float32) FlatVaryings {
	return FlatVaryings{
		Pos:   f.Pos.Lerp(o.Pos, t),
		UV:    f.UV.Lerp(o.UV, t),
		Shade: f.Shade + (o.Shade-f.Shade)*t,
		Tint:  f.Tint.Lerp(o.Tint, t),
	}
}

// FlatVertexShader projects mesh vertices and computes a per-face
// lambert brightness. Set Model/View/Projection before the draw call;
// Setup composes them once.
type FlatVertexShader struct {
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4

	mvp mathutil.Mat4
}

func (s *FlatVertexShader) Setup() {
	s.mvp = mathutil.Mat4Mul(s.Projection, mathutil.Mat4Mul(s.View, s.Model))
}

func (s *FlatVertexShader) Vertex(v mesh.Vertex) FlatVaryings {
	pos := s.mvp.MulVec4(v.Position.Homogeneous())
	w := clampW(pos[3])

	shade := s.Model.TransformVector(v.Normal).Normalize().Dot(flatLight)
	if shade < flatAmbient {
		shade = flatAmbient
	}

	var tint mathutil.Vec4
	if v.Color.A > 0 {
		tint = mathutil.Vec4{
			float32(v.Color.R),
			float32(v.Color.G),
			float32(v.Color.B),
			float32(v.Color.A),
		}
	}

	return FlatVaryings{
		Pos:   pos,
		UV:    mathutil.Vec3{v.UV[0] / w, v.UV[1] / w, 1 / w},
		Shade: shade,
		Tint:  tint,
	}
}

// FlatFragmentShader shades fragments from a material, preferring the
// triangle's own tint when one was set.
type FlatFragmentShader struct {
	Material material.Material[colors.Color]
}

func (s *FlatFragmentShader) Fragment(f FlatVaryings) colors.Color {
	var base colors.Color
	if f.Tint[3] > 0 {
		base = colors.RGBA(
			clamp255(f.Tint[0]),
			clamp255(f.Tint[1]),
			clamp255(f.Tint[2]),
			clamp255(f.Tint[3]),
		)
	} else {
		invW := f.UV[2]
		if invW < wEpsilon {
			invW = wEpsilon
		}
		base = s.Material.Sample(f.UV[0]/invW, f.UV[1]/invW)
	}
	return base.Scale(f.Shade)
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
