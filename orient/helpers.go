package orient

import (
	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "orient",
})

const (
	// How far outside the support triangle (in barycentric terms) the center
	// of gravity may fall and still count as stable.
	StabilityTolerance = 0.001

	// How far (in the same units as the dimensions) a point may be below the
	// ground plane before it counts as penetrating it.
	HeightTolerance = 1.0
)

// Trio is three leg IDs which might hold the body up.
type Trio [3]int

// SomeLegTrios are tried first. They favor legs which are spread out or
// opposite each other.
var SomeLegTrios = []Trio{
	{0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4}, {0, 2, 5},
	{0, 3, 4}, {0, 3, 5}, {1, 2, 4}, {1, 2, 5}, {1, 3, 4},
	{1, 3, 5}, {1, 4, 5}, {2, 3, 5}, {2, 4, 5},
}

// AdjacentLegTrios are three neighboring legs. They're only tried after
// SomeLegTrios.
var AdjacentLegTrios = []Trio{
	{0, 1, 2}, {1, 2, 3}, {2, 3, 4},
	{3, 4, 5}, {0, 4, 5}, {0, 1, 5},
}

// Contains returns true if the leg ID is one of the three.
func (t Trio) Contains(id int) bool {
	return lo.Contains(t[:], id)
}

// Others returns the three leg IDs not in the trio, in order.
func (t Trio) Others() [3]int {
	var o [3]int
	n := 0
	for id := 0; id < legs.NumLegs && n < 3; id++ {
		if !t.Contains(id) {
			o[n] = id
			n++
		}
	}
	return o
}

// Plane is the ground, in the coordinate space of the (unrotated) hexapod.
// A point p lies on the plane when -Normal·p == Height, so Height is the
// distance from the center of gravity down to the ground.
type Plane struct {
	Normal r3.Vector
	Height float64
}

// PlaneThrough returns the plane containing the three points, with the normal
// oriented by the right-hand rule.
func PlaneThrough(p0 r3.Vector, p1 r3.Vector, p2 r3.Vector) Plane {
	n := math3d.NormalOfThreePoints(p0, p1, p2)
	return Plane{
		Normal: n,
		Height: -n.Dot(p0),
	}
}

// Depth returns how far below the center of gravity the point is, measured
// along the plane normal.
func (pl Plane) Depth(p r3.Vector) float64 {
	return -pl.Normal.Dot(p)
}

// IsStable returns true if the center of gravity (the origin), projected onto
// the plane through the three points, falls within the triangle they form.
func IsStable(p0 r3.Vector, p1 r3.Vector, p2 r3.Vector) bool {
	u := math3d.VectorFromTo(p0, p1)
	v := math3d.VectorFromTo(p0, p2)
	w := math3d.VectorFromTo(p0, r3.Vector{})
	n := u.Cross(v)
	n2 := n.Dot(n)

	beta := u.Cross(w).Dot(n) / n2
	gamma := w.Cross(v).Dot(n) / n2
	alpha := 1 - beta - gamma

	// Collinear points give NaN here, and NaN is never in range.
	in := func(x float64) bool {
		return x >= -StabilityTolerance && x <= 1+StabilityTolerance
	}

	return in(alpha) && in(beta) && in(gamma)
}

// IsLower returns true if the point is below the plane by more than tol.
func IsLower(p r3.Vector, pl Plane, tol float64) bool {
	return pl.Depth(p) > pl.Height+tol
}

// SameHeight returns true if the point is within tol of the plane, either
// side.
func SameHeight(p r3.Vector, pl Plane, tol float64) bool {
	return scalar.EqualWithinAbs(pl.Height, pl.Depth(p), tol)
}

// FindLegsOnGround returns the legs which have any point other than their
// body contact point on the plane.
func FindLegsOnGround(ls []legs.Linkage, pl Plane) []legs.Linkage {
	return lo.Filter(ls, func(l legs.Linkage, _ int) bool {
		for i := legs.FootTipPoint; i > legs.BodyContactPoint; i-- {
			if SameHeight(l.Points[i].Vector, pl, HeightTolerance) {
				return true
			}
		}
		return false
	})
}
