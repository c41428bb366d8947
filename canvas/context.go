package canvas

import (
	"github.com/ryanw/toru/camera"
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/raster"
	"github.com/ryanw/toru/shader"
)

// DrawContext is the drawing surface handed to the frame callback. It
// scopes model transforms and feeds primitives through clipping into
// the rasterizer.
type DrawContext[O colors.Blendable[O]] struct {
	canvas *Canvas[O]
}

func (ctx *DrawContext[O]) Width() int  { return ctx.canvas.Width() }
func (ctx *DrawContext[O]) Height() int { return ctx.canvas.Height() }

// Transform returns the current model transform.
func (ctx *DrawContext[O]) Transform() mathutil.Mat4 {
	return ctx.canvas.transform
}

// PushTransform composes m onto the current transform, saving the
// previous one for PopTransform.
func (ctx *DrawContext[O]) PushTransform(m mathutil.Mat4) {
	c := ctx.canvas
	c.stack = append(c.stack, c.transform)
	c.transform = mathutil.Mat4Mul(c.transform, m)
}

// PopTransform restores the transform saved by the matching
// PushTransform. Popping past the bottom resets to the identity.
func (ctx *DrawContext[O]) PopTransform() {
	c := ctx.canvas
	if len(c.stack) == 0 {
		c.transform = mathutil.Mat4Identity()
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// WithTransform runs fn with m composed onto the current transform,
// restoring the previous transform afterwards even if fn panics.
func (ctx *DrawContext[O]) WithTransform(m mathutil.Mat4, fn func()) {
	ctx.PushTransform(m)
	defer ctx.PopTransform()
	fn()
}

// Clear wipes the frame mid-draw.
func (ctx *DrawContext[O]) Clear() {
	ctx.canvas.clear()
}

// DrawTriangles runs vertices through a program three at a time,
// clipping each triangle to the x and y frustum bounds. A trailing
// partial triangle is ignored.
func DrawTriangles[V any, F shader.Varyings[F], O colors.Blendable[O]](ctx *DrawContext[O], prog *shader.Program[V, F, O], verts []V) {
	prog.Vert.Setup()
	for i := 0; i+2 < len(verts); i += 3 {
		tri := [3]F{
			prog.Vert.Vertex(verts[i]),
			prog.Vert.Vertex(verts[i+1]),
			prog.Vert.Vertex(verts[i+2]),
		}
		for _, piece := range raster.ClipTriangle(tri) {
			raster.DrawTriangle(ctx.canvas.color, ctx.canvas.depth, prog.Frag, piece)
		}
	}
}

// DrawLines runs vertices through a program two at a time. A trailing
// unpaired vertex is ignored.
func DrawLines[V any, F shader.Varyings[F], O colors.Blendable[O]](ctx *DrawContext[O], prog *shader.Program[V, F, O], verts []V) {
	prog.Vert.Setup()
	for i := 0; i+1 < len(verts); i += 2 {
		a := prog.Vert.Vertex(verts[i])
		b := prog.Vert.Vertex(verts[i+1])
		if ca, cb, ok := raster.ClipLine(a, b); ok {
			raster.DrawLine(ctx.canvas.color, ctx.canvas.depth, prog.Frag, ca, cb)
		}
	}
}

// DrawMesh renders a mesh with the built-in flat-shaded program under
// the context's current transform. Meshes whose bounds fall outside
// the camera frustum are skipped before any vertex work; surviving
// triangles clip against all six frustum planes.
func DrawMesh(ctx *DrawContext[colors.Color], m mesh.Mesh, cam camera.Camera, mat material.Material[colors.Color]) {
	model := ctx.Transform()
	view := cam.View()
	proj := cam.Projection()

	frustum := camera.NewFrustum(mathutil.Mat4Mul(proj, view))
	if !frustum.IntersectsBox(m.Bounds().Transformed(model)) {
		return
	}

	vert := &shader.FlatVertexShader{Model: model, View: view, Projection: proj}
	frag := &shader.FlatFragmentShader{Material: mat}
	vert.Setup()

	for tri := range m.Triangles() {
		vs := tri.Vertices()
		clip := [3]shader.FlatVaryings{
			vert.Vertex(vs[0]),
			vert.Vertex(vs[1]),
			vert.Vertex(vs[2]),
		}
		for _, piece := range raster.ClipTriangleZ(clip) {
			raster.DrawTriangle(ctx.canvas.color, ctx.canvas.depth, frag, piece)
		}
	}
}
