package math3d

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/adammck/hexapod-kinematics/utils"
)

// IsTriangle returns true if three segments of the given lengths can form a
// (non-degenerate) triangle.
func IsTriangle(a float64, b float64, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// VectorFromTo returns the vector from a to b.
func VectorFromTo(a r3.Vector, b r3.Vector) r3.Vector {
	return b.Sub(a)
}

// Unit returns v scaled to a length of one. The zero vector stays zero.
func Unit(v r3.Vector) r3.Vector {
	return v.Normalize()
}

// IsCounterClockwise returns true if the shortest rotation from a to b is
// counter-clockwise, looking down the normal n.
func IsCounterClockwise(a r3.Vector, b r3.Vector, n r3.Vector) bool {
	return a.Dot(b.Cross(n)) > 0
}

// NormalOfThreePoints returns the unit normal of the plane through a, b and c,
// oriented by the right-hand rule (ab x ac).
func NormalOfThreePoints(a r3.Vector, b r3.Vector, c r3.Vector) r3.Vector {
	n := VectorFromTo(a, b).Cross(VectorFromTo(a, c))
	return n.Mul(1 / n.Norm())
}

// AngleOppositeOfLastSide returns the angle (in degrees) opposite side c of a
// triangle with sides a, b and c, by the law of cosines. The second return
// value is false if a or b is zero, in which case the angle is undefined.
func AngleOppositeOfLastSide(a float64, b float64, c float64) (float64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}

	cos := (a*a + b*b - c*c) / (2 * a * b)
	return utils.AcosDeg(cos), true
}

// AngleBetween returns the angle (in degrees, 0..180) between two vectors.
// Zero-length vectors have no direction, so the angle is zero.
func AngleBetween(a r3.Vector, b r3.Vector) float64 {
	if a.Norm() == 0 || b.Norm() == 0 {
		return 0
	}

	cos := a.Dot(b) / math.Sqrt(a.Dot(a)*b.Dot(b))
	return utils.AcosDeg(cos)
}

// ProjectOntoPlane returns the projection of u onto the plane with normal n.
func ProjectOntoPlane(u r3.Vector, n r3.Vector) r3.Vector {
	s := u.Dot(n) / n.Dot(n)
	return u.Sub(n.Mul(s))
}
