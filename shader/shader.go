// Package shader defines the programmable stages of the rendering
// pipeline: vertex shaders turn application vertices into varyings,
// the rasterizer interpolates varyings across primitives, and fragment
// shaders turn interpolated varyings into pixels.
package shader

import "github.com/ryanw/toru/mathutil"

// Varyings carries a homogeneous clip-space position plus whatever
// attributes a program interpolates across a primitive. Implementations
// are value types and F is always the implementing type itself.
//
// The pipeline treats varyings as a vector space: Add, Sub and Lerp act
// componentwise on every attribute including the position. Attributes
// that must not interpolate (flags, palette indices) should be constant
// across a primitive's vertices so interpolation leaves them fixed.
type Varyings[F any] interface {
	// Position is the homogeneous position: clip space after the
	// vertex shader, NDC after DividePerspective.
	Position() mathutil.Vec4
	// WithPosition returns a copy with the position replaced.
	WithPosition(p mathutil.Vec4) F
	Add(step F) F
	Sub(other F) F
	Lerp(other F, t float32) F
}

// LerpStep returns the increment that advances a toward b by t per
// step, so a.Add(LerpStep(a, b, t)) equals a.Lerp(b, t).
func LerpStep[F Varyings[F]](a, b F, t float32) F {
	return a.Lerp(b, t).Sub(a)
}

const wEpsilon = 1e-8

func clampW(w float32) float32 {
	if w < wEpsilon && w > -wEpsilon {
		if w < 0 {
			return -wEpsilon
		}
		return wEpsilon
	}
	return w
}

// DividePerspective divides the position through by w, mapping clip
// space to normalized device coordinates. Apply exactly once per
// vertex, after clipping. w near zero is clamped to ±1e-8.
func DividePerspective[F Varyings[F]](f F) F {
	p := f.Position()
	w := clampW(p[3])
	return f.WithPosition(mathutil.Vec4{p[0] / w, p[1] / w, p[2] / w, 1})
}

// ProjPosition returns the projected xyz of an undivided position.
func ProjPosition[F Varyings[F]](f F) mathutil.Vec3 {
	p := f.Position()
	w := clampW(p[3])
	return mathutil.Vec3{p[0] / w, p[1] / w, p[2] / w}
}

// VertexShader turns one application vertex into varyings. Setup runs
// once per draw call before any Vertex call, so per-call state such as
// a composed model-view-projection matrix is computed once.
type VertexShader[V any, F Varyings[F]] interface {
	Setup()
	Vertex(v V) F
}

// FragmentShader computes the output pixel for one covered fragment.
type FragmentShader[F Varyings[F], O any] interface {
	Fragment(f F) O
}

// Program binds a vertex shader and a fragment shader. V is the
// application vertex type, F the varyings flowing between the stages,
// O the output pixel type.
type Program[V any, F Varyings[F], O any] struct {
	Vert VertexShader[V, F]
	Frag FragmentShader[F, O]
}

func NewProgram[V any, F Varyings[F], O any](vert VertexShader[V, F], frag FragmentShader[F, O]) *Program[V, F, O] {
	return &Program[V, F, O]{Vert: vert, Frag: frag}
}
