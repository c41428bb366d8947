// Package mesh provides triangle geometry and the built-in mesh
// sources: a cube, a noise terrain, and a Wavefront OBJ loader.
package mesh

import (
	"iter"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/mathutil"
)

// Vertex is the application vertex consumed by the built-in mesh
// program. Color zero means "use the bound material".
type Vertex struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
	UV       mathutil.Vec2
	Color    colors.Color
}

// Mesh is a finite, restartable stream of triangles with a precomputed
// local-space bounding box.
type Mesh interface {
	Triangles() iter.Seq[Triangle]
	Bounds() mathutil.Box3
}

// triangleList is the shared storage behind the built-in mesh types.
type triangleList struct {
	tris   []Triangle
	bounds mathutil.Box3
}

func newTriangleList(tris []Triangle) triangleList {
	b := mathutil.EmptyBox3()
	for _, t := range tris {
		for _, p := range t.Points {
			b = b.ExpandByPoint(p)
		}
	}
	return triangleList{tris: tris, bounds: b}
}

func (l *triangleList) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for _, t := range l.tris {
			if !yield(t) {
				return
			}
		}
	}
}

func (l *triangleList) Bounds() mathutil.Box3 {
	return l.bounds
}
