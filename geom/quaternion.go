package geom

import "math"

type Vector4 struct {
	X Element
	Y Element
	Z Element
	W Element
}

type Quaternion = Vector4

// NewQuaternionFromMatrix4 returns the rotation of the upper 3x3 part. The part must be orthonormal.
func NewQuaternionFromMatrix4(m *Matrix4) *Quaternion {
	m11, m12, m13 := float64(m[0]), float64(m[4]), float64(m[8])
	m21, m22, m23 := float64(m[1]), float64(m[5]), float64(m[9])
	m31, m32, m33 := float64(m[2]), float64(m[6]), float64(m[10])

	trace := m11 + m22 + m33
	var x, y, z, w float64
	if trace > 0 {
		s := 0.5 / math.Sqrt(trace+1.0)
		w = 0.25 / s
		x = (m32 - m23) * s
		y = (m13 - m31) * s
		z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s := 2.0 * math.Sqrt(1.0+m11-m22-m33)
		w = (m32 - m23) / s
		x = 0.25 * s
		y = (m12 + m21) / s
		z = (m13 + m31) / s
	} else if m22 > m33 {
		s := 2.0 * math.Sqrt(1.0+m22-m11-m33)
		w = (m13 - m31) / s
		x = (m12 + m21) / s
		y = 0.25 * s
		z = (m23 + m32) / s
	} else {
		s := 2.0 * math.Sqrt(1.0+m33-m11-m22)
		w = (m21 - m12) / s
		x = (m13 + m31) / s
		y = (m23 + m32) / s
		z = 0.25 * s
	}
	return &Quaternion{X: Element(x), Y: Element(y), Z: Element(z), W: Element(w)}
}

func (v *Vector4) Len() Element {
	return Element(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)))
}

// Normalize scales v in place. A zero quaternion becomes the identity.
func (v *Vector4) Normalize() *Vector4 {
	l := v.Len()
	if l > 0 {
		v.X /= l
		v.Y /= l
		v.Z /= l
		v.W /= l
	} else {
		v.W = 1
	}
	return v
}
