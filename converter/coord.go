package converter

import (
	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/geom"
)

// DefaultScale converts shape units (m) to scene units (cm).
const DefaultScale = 100

// AxisFix maps shape axes to the Y-up scene. AxisFix * AxisFix = I
var AxisFix = geom.NewMatrix4FromRows(
	[3]geom.Element{-1, 0, 0},
	[3]geom.Element{0, 0, 1},
	[3]geom.Element{0, 1, 0},
)

func toTargetPosition(p *dts.Point, scale float32, axisFix bool) *geom.Vector3 {
	v := p.Scale(scale)
	if !axisFix {
		return v
	}
	return AxisFix.Mul(geom.NewTranslateMatrix4(v.X, v.Y, v.Z)).GetTranslation()
}

// toTargetRotation returns Euler XYZ angles in degrees.
// Shape quaternions rotate the frame, so the matrix is transposed.
func toTargetRotation(q *dts.Quat) *geom.Vector3 {
	n := *q
	n.Normalize()
	m := geom.NewRotationMatrix4FromQuaternion(&n).Transposed3x3()
	return geom.NewEulerFromMatrix4(m, geom.RotationOrderZYX).Degrees()
}

func rotationMatrix(deg *geom.Vector3) *geom.Matrix4 {
	return geom.NewEulerFromDegrees(deg.X, deg.Y, deg.Z, geom.RotationOrderZYX).ToMatrix4()
}

// fixTransform applies AxisFix to a local transform as one matrix.
func fixTransform(t, r *geom.Vector3) (*geom.Vector3, *geom.Vector3) {
	m := AxisFix.Mul(geom.NewTranslateMatrix4(t.X, t.Y, t.Z)).Mul(rotationMatrix(r))
	return m.GetTranslation(), geom.NewEulerFromMatrix4(m, geom.RotationOrderZYX).Degrees()
}
