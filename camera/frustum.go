package camera

import "github.com/ryanw/toru/mathutil"

// Frustum is the six inward-facing planes of a view volume, in the
// order left, right, bottom, top, near, far.
type Frustum [6]mathutil.Plane

// NewFrustum extracts the planes from a combined view-projection
// matrix by adding and subtracting its rows.
func NewFrustum(viewProjection mathutil.Mat4) Frustum {
	r0 := viewProjection.Row(0)
	r1 := viewProjection.Row(1)
	r2 := viewProjection.Row(2)
	r3 := viewProjection.Row(3)

	coeffs := [6]mathutil.Vec4{
		r3.Add(r0),
		r3.Sub(r0),
		r3.Add(r1),
		r3.Sub(r1),
		r3.Add(r2),
		r3.Sub(r2),
	}

	var f Frustum
	for i, p := range coeffs {
		f[i] = mathutil.PlaneFromCoeffs(p[0], p[1], p[2], p[3])
	}
	return f
}

func (f Frustum) ContainsPoint(v mathutil.Vec3) bool {
	for _, plane := range f {
		if plane.DistanceToPoint(v) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox reports whether the box touches the view volume. Only
// the box corner furthest along each plane normal needs testing; if
// that corner is behind the plane the whole box is.
func (f Frustum) IntersectsBox(box mathutil.Box3) bool {
	if box.IsEmpty() {
		return false
	}
	for _, plane := range f {
		v := box.Min
		for i := 0; i < 3; i++ {
			if plane.Normal[i] > 0 {
				v[i] = box.Max[i]
			}
		}
		if plane.DistanceToPoint(v) < 0 {
			return false
		}
	}
	return true
}
