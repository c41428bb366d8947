package camera

import (
	"math"

	"github.com/ryanw/toru/mathutil"
)

const maxPitch = math.Pi / 2

// Free is a first-person camera: a position plus pitch and yaw.
type Free struct {
	lens
	position mathutil.Vec3
	pitch    float32
	yaw      float32
}

func NewFree(position mathutil.Vec3) *Free {
	return &Free{lens: defaultLens(), position: position}
}

func (c *Free) Position() mathutil.Vec3 { return c.position }

// rotation is yaw then pitch, the order a head turns.
func (c *Free) rotation() mathutil.Mat4 {
	return mathutil.Mat4Mul(mathutil.Mat4RotationY(c.yaw), mathutil.Mat4RotationX(c.pitch))
}

func (c *Free) View() mathutil.Mat4 {
	world := mathutil.Mat4Mul(mathutil.Mat4Translation(c.position), c.rotation())
	return world.Inverse()
}

// Translate moves relative to where the camera faces, so a negative z
// delta always moves forward.
func (c *Free) Translate(delta mathutil.Vec3) {
	c.position = c.position.Add(c.rotation().TransformVector(delta))
}

// TranslateAbsolute moves along the world axes regardless of heading.
func (c *Free) TranslateAbsolute(delta mathutil.Vec3) {
	c.position = c.position.Add(delta)
}

// Rotate adjusts pitch and yaw in radians. Pitch clamps at straight up
// and straight down.
func (c *Free) Rotate(pitch, yaw float32) {
	c.pitch = clamp(c.pitch+pitch, -maxPitch, maxPitch)
	c.yaw += yaw
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
