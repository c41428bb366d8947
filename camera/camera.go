// Package camera provides the view and projection side of the
// pipeline: a free-flying camera, an orbiting camera and frustum
// extraction for visibility culling.
package camera

import "github.com/ryanw/toru/mathutil"

// Camera produces the view and projection matrices for a draw pass.
type Camera interface {
	Position() mathutil.Vec3
	View() mathutil.Mat4
	Projection() mathutil.Mat4
	// Resize sets the viewport dimensions the projection derives its
	// aspect ratio from.
	Resize(width, height int)
	// SetPixelRatio compensates for non-square output pixels, such as
	// terminal cells that are twice as tall as they are wide.
	SetPixelRatio(ratio float32)
}

// lens holds the projection state shared by every camera.
type lens struct {
	width      float32
	height     float32
	pixelRatio float32
	fov        float32
	near       float32
	far        float32
}

func defaultLens() lens {
	return lens{
		width:      1,
		height:     1,
		pixelRatio: 1,
		fov:        mathutil.Deg2Rad(45),
		near:       0.1,
		far:        1000,
	}
}

func (l *lens) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	l.width = float32(width)
	l.height = float32(height)
}

func (l *lens) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	l.pixelRatio = ratio
}

func (l *lens) Projection() mathutil.Mat4 {
	aspect := (l.width / l.pixelRatio) / l.height
	return mathutil.Mat4Perspective(l.fov, aspect, l.near, l.far)
}
