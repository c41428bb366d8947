package mathutil

// Plane is an infinite plane through Point with unit Normal. Points on
// the normal side have positive distance.
type Plane struct {
	Point  Vec3
	Normal Vec3
}

// PlaneFromCoeffs builds a plane from ax+by+cz+d=0 coefficients,
// normalizing so distances come out in world units.
func PlaneFromCoeffs(a, b, c, d float32) Plane {
	n := Vec3{a, b, c}
	l := n.Len()
	if l < 1e-12 {
		return Plane{Normal: Vec3{0, 0, 1}}
	}
	n = n.Scale(1 / l)
	return Plane{
		Point:  n.Scale(-d / l),
		Normal: n,
	}
}

func (p Plane) DistanceToPoint(v Vec3) float32 {
	return p.Normal.Dot(v.Sub(p.Point))
}
