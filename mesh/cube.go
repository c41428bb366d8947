package mesh

import "github.com/ryanw/toru/mathutil"

// Cube is an axis-aligned cube centered at the origin, one full UV
// tile per face.
type Cube struct {
	triangleList
}

func NewCube(size float32) *Cube {
	h := size / 2
	tris := make([]Triangle, 0, 12)

	// bl, br, tr, tl as seen from outside the face
	quad := func(bl, br, tr, tl mathutil.Vec3) {
		tris = append(tris,
			Triangle{
				Points: [3]mathutil.Vec3{bl, br, tr},
				UVs:    [3]mathutil.Vec2{{0, 1}, {1, 1}, {1, 0}},
			},
			Triangle{
				Points: [3]mathutil.Vec3{bl, tr, tl},
				UVs:    [3]mathutil.Vec2{{0, 1}, {1, 0}, {0, 0}},
			},
		)
	}

	// front +Z
	quad(mathutil.Vec3{-h, -h, h}, mathutil.Vec3{h, -h, h}, mathutil.Vec3{h, h, h}, mathutil.Vec3{-h, h, h})
	// back −Z
	quad(mathutil.Vec3{h, -h, -h}, mathutil.Vec3{-h, -h, -h}, mathutil.Vec3{-h, h, -h}, mathutil.Vec3{h, h, -h})
	// right +X
	quad(mathutil.Vec3{h, -h, h}, mathutil.Vec3{h, -h, -h}, mathutil.Vec3{h, h, -h}, mathutil.Vec3{h, h, h})
	// left −X
	quad(mathutil.Vec3{-h, -h, -h}, mathutil.Vec3{-h, -h, h}, mathutil.Vec3{-h, h, h}, mathutil.Vec3{-h, h, -h})
	// top +Y
	quad(mathutil.Vec3{-h, h, h}, mathutil.Vec3{h, h, h}, mathutil.Vec3{h, h, -h}, mathutil.Vec3{-h, h, -h})
	// bottom −Y
	quad(mathutil.Vec3{-h, -h, -h}, mathutil.Vec3{h, -h, -h}, mathutil.Vec3{h, -h, h}, mathutil.Vec3{-h, -h, h})

	return &Cube{newTriangleList(tris)}
}
