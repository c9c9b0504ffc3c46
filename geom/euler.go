package geom

import "math"

type RotationOrder int

const (
	// R = Rx*Ry*Rz
	RotationOrderXYZ RotationOrder = iota
	// R = Rz*Ry*Rx (FBX eEulerXYZ)
	RotationOrderZYX
)

type EulerAngles struct {
	Vector3
	Order RotationOrder
}

func NewEuler(x, y, z float32, order RotationOrder) *EulerAngles {
	return &EulerAngles{Vector3: Vector3{x, y, z}, Order: order}
}

// NewEulerFromDegrees converts degrees to radians.
func NewEulerFromDegrees(x, y, z float32, order RotationOrder) *EulerAngles {
	return NewEuler(DegToRad(x), DegToRad(y), DegToRad(z), order)
}

func NewEulerFromMatrix4(mat *Matrix4, order RotationOrder) *EulerAngles {
	const eps = 0.00000001
	m11, m21, m31 := float64(mat[0]), float64(mat[1]), float64(mat[2])
	m12, m22, m32 := float64(mat[4]), float64(mat[5]), float64(mat[6])
	m13, m23, m33 := float64(mat[8]), float64(mat[9]), float64(mat[10])

	ret := &EulerAngles{Order: order}
	switch order {
	case RotationOrderXYZ:
		ret.Y = Element(math.Asin(math.Max(-1, math.Min(m13, 1))))
		if math.Abs(m13) < 1-eps {
			ret.X = Element(math.Atan2(-m23, m33))
			ret.Z = Element(math.Atan2(-m12, m11))
		} else {
			ret.X = Element(math.Atan2(m32, m22))
			ret.Z = 0
		}
	case RotationOrderZYX:
		ret.Y = Element(math.Asin(-math.Max(-1, math.Min(m31, 1))))
		if math.Abs(m31) < 1-eps {
			ret.X = Element(math.Atan2(m32, m33))
			ret.Z = Element(math.Atan2(m21, m11))
		} else {
			// gimbal lock
			ret.X = 0
			ret.Z = Element(math.Atan2(-m12, m22))
		}
	}
	return ret
}

func (v *EulerAngles) ToMatrix4() *Matrix4 {
	if v.Order == RotationOrderZYX {
		return NewEulerRotationMatrix4(v.X, v.Y, v.Z, 1)
	}
	return NewEulerRotationMatrix4(v.X, v.Y, v.Z, 0)
}

// Degrees returns angles in degrees.
func (v *EulerAngles) Degrees() *Vector3 {
	return &Vector3{X: RadToDeg(v.X), Y: RadToDeg(v.Y), Z: RadToDeg(v.Z)}
}
