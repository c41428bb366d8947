package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/texture"
)

// testVaryings is a minimal two-attribute varyings implementation.
type testVaryings struct {
	pos mathutil.Vec4
	val float32
}

func (v testVaryings) Position() mathutil.Vec4 { return v.pos }
func (v testVaryings) WithPosition(p mathutil.Vec4) testVaryings {
	v.pos = p
	return v
}
func (v testVaryings) Add(o testVaryings) testVaryings {
	return testVaryings{v.pos.Add(o.pos), v.val + o.val}
}
func (v testVaryings) Sub(o testVaryings) testVaryings {
	return testVaryings{v.pos.Sub(o.pos), v.val - o.val}
}
func (v testVaryings) Lerp(o testVaryings, t float32) testVaryings {
	return testVaryings{v.pos.Lerp(o.pos, t), v.val + (o.val-v.val)*t}
}

func TestLerpStepComposition(t *testing.T) {
	a := testVaryings{mathutil.Vec4{0, 0, 0, 1}, 10}
	b := testVaryings{mathutil.Vec4{4, -2, 8, 3}, 30}

	for _, tt := range []float32{0, 0.25, 0.5, 1} {
		direct := a.Lerp(b, tt)
		stepped := a.Add(LerpStep(a, b, tt))
		for i := 0; i < 4; i++ {
			assert.InDelta(t, direct.pos[i], stepped.pos[i], 1e-5)
		}
		assert.InDelta(t, direct.val, stepped.val, 1e-4)
	}
}

func TestLerpStepAccumulates(t *testing.T) {
	a := testVaryings{mathutil.Vec4{0, 0, 0, 1}, 0}
	b := testVaryings{mathutil.Vec4{10, 0, 0, 1}, 100}

	step := LerpStep(a, b, 0.1)
	cur := a
	for i := 0; i < 10; i++ {
		cur = cur.Add(step)
	}
	assert.InDelta(t, b.pos[0], cur.pos[0], 1e-4)
	assert.InDelta(t, b.val, cur.val, 1e-3)
}

func TestDividePerspective(t *testing.T) {
	v := DividePerspective(testVaryings{mathutil.Vec4{2, 4, 6, 2}, 5})
	assert.Equal(t, mathutil.Vec4{1, 2, 3, 1}, v.pos)
	// attributes other than position are untouched
	assert.Equal(t, float32(5), v.val)
}

func TestDividePerspectiveTinyW(t *testing.T) {
	for _, w := range []float32{0, 1e-12, -1e-12} {
		v := DividePerspective(testVaryings{pos: mathutil.Vec4{1, 1, 1, w}})
		for i := 0; i < 3; i++ {
			assert.False(t, v.pos[i] != v.pos[i], "NaN component")
		}
	}
}

func TestProjPosition(t *testing.T) {
	got := ProjPosition(testVaryings{pos: mathutil.Vec4{2, 4, 6, 2}})
	assert.Equal(t, mathutil.Vec3{1, 2, 3}, got)
}

func identityFlat() *FlatVertexShader {
	return &FlatVertexShader{
		Model:      mathutil.Mat4Identity(),
		View:       mathutil.Mat4Identity(),
		Projection: mathutil.Mat4Identity(),
	}
}

func TestFlatVertexShaderPassthrough(t *testing.T) {
	vs := identityFlat()
	vs.Setup()

	out := vs.Vertex(mesh.Vertex{
		Position: mathutil.Vec3{0.5, -0.5, 0},
		Normal:   mathutil.Vec3{0, 0, 1},
		UV:       mathutil.Vec2{0.25, 0.75},
	})
	assert.Equal(t, mathutil.Vec4{0.5, -0.5, 0, 1}, out.Pos)
	assert.Equal(t, mathutil.Vec3{0.25, 0.75, 1}, out.UV)
	// facing partly toward the light
	assert.InDelta(t, 0.6835, out.Shade, 1e-3)
	assert.Equal(t, mathutil.Vec4{}, out.Tint)
}

func TestFlatVertexShaderAmbientFloor(t *testing.T) {
	vs := identityFlat()
	vs.Setup()
	out := vs.Vertex(mesh.Vertex{Normal: mathutil.Vec3{-0.8, -0.3, -0.8}})
	assert.InDelta(t, flatAmbient, out.Shade, 1e-6)
}

func TestFlatVertexShaderComposesMVP(t *testing.T) {
	vs := identityFlat()
	vs.Model = mathutil.Mat4Translation(mathutil.Vec3{1, 0, 0})
	vs.View = mathutil.Mat4Translation(mathutil.Vec3{0, 0, -3})
	vs.Setup()

	out := vs.Vertex(mesh.Vertex{Position: mathutil.Vec3{0, 0, 0}})
	assert.Equal(t, mathutil.Vec4{1, 0, -3, 1}, out.Pos)
}

func TestFlatVertexShaderPerspectiveUV(t *testing.T) {
	vs := identityFlat()
	// projection row makes w = -z
	vs.Projection = mathutil.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -1, 0,
	}
	vs.Setup()

	out := vs.Vertex(mesh.Vertex{
		Position: mathutil.Vec3{0, 0, -2},
		UV:       mathutil.Vec2{0.5, 1},
	})
	assert.InDelta(t, 0.25, out.UV[0], 1e-6)
	assert.InDelta(t, 0.5, out.UV[1], 1e-6)
	assert.InDelta(t, 0.5, out.UV[2], 1e-6)
}

func TestFlatFragmentTint(t *testing.T) {
	fs := &FlatFragmentShader{Material: material.FromColor(colors.Blue)}
	out := fs.Fragment(FlatVaryings{
		Tint:  mathutil.Vec4{200, 100, 50, 255},
		Shade: 0.5,
	})
	assert.Equal(t, colors.Color{R: 100, G: 50, B: 25, A: 255}, out)
}

func TestFlatFragmentMaterialUV(t *testing.T) {
	tex := texture.New[colors.Color](2, 1)
	tex.Set(0, 0, colors.Green)
	tex.Set(1, 0, colors.Blue)
	fs := &FlatFragmentShader{Material: material.FromTexture(tex)}

	// w=2: uv arrives pre-divided and the fragment divides back
	out := fs.Fragment(FlatVaryings{
		UV:    mathutil.Vec3{0.5, 0, 0.5},
		Shade: 1,
	})
	assert.Equal(t, colors.Blue, out)
}

func TestProgramBinding(t *testing.T) {
	vs := identityFlat()
	fs := &FlatFragmentShader{Material: material.FromColor(colors.Red)}
	prog := NewProgram[mesh.Vertex, FlatVaryings, colors.Color](vs, fs)
	assert.NotNil(t, prog.Vert)
	assert.NotNil(t, prog.Frag)
}
