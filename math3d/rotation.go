package math3d

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/adammck/hexapod-kinematics/utils"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotation returns a matrix which rotates by theta degrees about the given
// axis, then translates by (tx, ty, tz).
func Rotation(axis Axis, theta float64, tx float64, ty float64, tz float64) Matrix44 {
	var r mgl64.Mat4
	rad := utils.Rad(theta)

	switch axis {
	case AxisX:
		r = mgl64.HomogRotate3DX(rad)

	case AxisY:
		r = mgl64.HomogRotate3DY(rad)

	case AxisZ:
		r = mgl64.HomogRotate3DZ(rad)

	default:
		panic("invalid axis")
	}

	return Translation(tx, ty, tz).Multiply(Matrix44{r})
}

// RotX rotates about the X axis by theta degrees.
func RotX(theta float64) Matrix44 {
	return Rotation(AxisX, theta, 0, 0, 0)
}

// RotY rotates about the Y axis by theta degrees.
func RotY(theta float64) Matrix44 {
	return Rotation(AxisY, theta, 0, 0, 0)
}

// RotZ rotates about the Z axis by theta degrees.
func RotZ(theta float64) Matrix44 {
	return Rotation(AxisZ, theta, 0, 0, 0)
}

// RotXYZ returns Rx * Ry * Rz, i.e. the Z rotation is applied to a point
// first and the X rotation last.
func RotXYZ(x float64, y float64, z float64) Matrix44 {
	return RotX(x).Multiply(RotY(y)).Multiply(RotZ(z))
}

// AlignVectors returns the rotation which takes unit vector a onto unit
// vector b (Rodrigues' formula).
//
// When a and b are parallel OR anti-parallel their cross product is zero and
// the identity is returned, so anti-parallel inputs are not flipped.
func AlignVectors(a r3.Vector, b r3.Vector) Matrix44 {
	v := a.Cross(b)
	s := v.Norm()
	if s == 0 {
		return Identity
	}

	c := a.Dot(b)
	d := (1 - c) / (s * s)

	vx := mgl64.Mat3{
		0, v.Z, -v.Y,
		-v.Z, 0, v.X,
		v.Y, -v.X, 0,
	}

	r := mgl64.Ident3().Add(vx).Add(vx.Mul3(vx).Mul(d))
	return Matrix44{r.Mat4()}
}
