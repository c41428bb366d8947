package mathutil

import (
	"math"

	"github.com/chewxy/math32"
)

// Mat4 is a 4×4 matrix stored row-major. Points transform as m·v.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulPoint transforms a 3D point (w=1), dropping the projective row.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulVec4 transforms a homogeneous vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// TransformVector transforms a direction (w=0): rotation and scale only.
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// Row returns row r as a Vec4.
func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[r*4+0], m[r*4+1], m[r*4+2], m[r*4+3]}
}

func Mat4Translation(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v[0],
		0, 1, 0, v[1],
		0, 0, 1, v[2],
		0, 0, 0, 1,
	}
}

func Mat4Scaling(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationX returns a rotation around the X axis. Angle in radians.
func Mat4RotationX(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationY returns a rotation around the Y axis.
func Mat4RotationY(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZ returns a rotation around the Z axis.
func Mat4RotationZ(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Perspective builds a perspective projection looking down −Z.
// fovy is the vertical field of view in radians. NDC z runs −1 (near)
// to +1 (far); clip w is the positive eye-space distance.
func Mat4Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Inverse returns the matrix inverse, or identity when the matrix is
// singular.
func (m Mat4) Inverse() Mat4 {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det > -1e-12 && det < 1e-12 {
		return Mat4Identity()
	}
	d := 1 / det

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * d,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * d,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * d,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * d,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * d,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * d,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * d,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * d,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * d,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * d,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * d,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * d,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * d,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * d,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * d,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * d,
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-5 || d < -1e-5 {
			return false
		}
	}
	return true
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math.Pi / 180
}
