package camera

import "github.com/ryanw/toru/mathutil"

// Orbit circles a target point at a fixed distance, steered by
// longitude and latitude angles.
type Orbit struct {
	lens
	target   mathutil.Vec3
	distance float32
	lon      float32
	lat      float32
}

func NewOrbit(target mathutil.Vec3, distance float32) *Orbit {
	c := &Orbit{lens: defaultLens(), target: target}
	c.SetDistance(distance)
	return c
}

// world places the camera on the end of a boom swung around the
// target: longitude around y, latitude toward the poles.
func (c *Orbit) world() mathutil.Mat4 {
	boom := mathutil.Mat4Mul(
		mathutil.Mat4RotationX(c.lat),
		mathutil.Mat4Translation(mathutil.Vec3{0, 0, c.distance}),
	)
	return mathutil.Mat4Mul(
		mathutil.Mat4Translation(c.target),
		mathutil.Mat4Mul(mathutil.Mat4RotationY(c.lon), boom),
	)
}

func (c *Orbit) Position() mathutil.Vec3 {
	return c.world().MulPoint(mathutil.Vec3{})
}

func (c *Orbit) View() mathutil.Mat4 {
	return c.world().Inverse()
}

func (c *Orbit) Target() mathutil.Vec3 { return c.target }

func (c *Orbit) SetTarget(target mathutil.Vec3) { c.target = target }

func (c *Orbit) Distance() float32 { return c.distance }

func (c *Orbit) SetDistance(distance float32) {
	if distance < c.near {
		distance = c.near
	}
	c.distance = distance
}

// Zoom moves the camera along the boom; negative deltas move closer.
func (c *Orbit) Zoom(delta float32) {
	c.SetDistance(c.distance + delta)
}

// Rotate swings the boom. Latitude clamps at the poles.
func (c *Orbit) Rotate(lon, lat float32) {
	c.lon += lon
	c.lat = clamp(c.lat+lat, -maxPitch, maxPitch)
}
