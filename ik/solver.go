package ik

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/sirupsen/logrus"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "ik",
})

// The largest absolute angles (in degrees) each joint can take.
const (
	MaxAlpha = 90.0
	MaxBeta  = 180.0
	MaxGamma = 180.0
)

// Targets are where the body and feet should end up.
type Targets struct {
	// Where each leg should meet the body, i.e. the vertices of the moved
	// hexagon.
	BodyContactPoints [legs.NumLegs]math3d.Vector

	// Where each foot tip should touch the ground.
	GroundContactPoints [legs.NumLegs]math3d.Vector

	// The local axes of the moved body. Only X and Z are used.
	Axes hexapod.Axes
}

// Solver finds the pose which puts the body and feet on their targets. If any
// leg can't get there, or too many legs would be left in the air, there is no
// solution and Message explains why.
type Solver struct {
	Pose                  legs.Pose
	FoundSolution         bool
	LegPositionsOffGround []legs.Position
	Message               Message
}

func NewSolver() *Solver {
	return &Solver{
		Message: initializedMessage,
	}
}

// legProperties are derived from the body and ground contact points of one leg.
//
//	pB   pC
//	 *---*  body plane
//	  \   \
//	   \   *
//	    \ /
//	     *  ground
//	     pG
type legProperties struct {
	coxiaUnit  r3.Vector
	coxiaPoint math3d.Vector

	// Angle between the coxia and pB->pG, at pB.
	rho float64

	// Distance from pB to pG.
	summa float64
}

func initialLegProperties(pos legs.Position, body math3d.Vector, ground math3d.Vector, zAxis r3.Vector, coxia float64) legProperties {
	bodyToFoot := math3d.VectorFromTo(body.Vector, ground.Vector)
	unit := math3d.Unit(math3d.ProjectOntoPlane(bodyToFoot, zAxis))
	p := body.Vector.Add(unit.Mul(coxia))

	return legProperties{
		coxiaUnit:  unit,
		coxiaPoint: math3d.NamedVector(p.X, p.Y, p.Z, pos.String()+"-"+legs.CoxiaPoint.String(), ""),
		rho:        math3d.AngleBetween(unit, bodyToFoot),
		summa:      bodyToFoot.Norm(),
	}
}

// ComputeAlpha returns the alpha of a leg whose coxia points along coxiaUnit,
// given the leg's fixed axis angle and the local axes of the body.
func ComputeAlpha(coxiaUnit r3.Vector, axisAngle float64, xAxis r3.Vector, zAxis r3.Vector) float64 {
	sign := 1.0
	if math3d.IsCounterClockwise(coxiaUnit, xAxis, zAxis) {
		sign = -1.0
	}

	return wrapAlpha(sign*math3d.AngleBetween(coxiaUnit, xAxis) - axisAngle)
}

// wrapAlpha brings an angle into (-180, 180].
func wrapAlpha(alpha float64) float64 {
	alpha = math.Mod(alpha, 360)
	if alpha < 0 {
		alpha += 360
	}

	if alpha > 180 {
		return alpha - 360
	}

	// TODO: Find what produces exactly 180 here rather than zeroing it.
	if alpha == 180 {
		return 0
	}

	return alpha
}

func (s *Solver) Solve(dims legs.LegDimensions, t Targets) *Solver {
	for _, v := range t.BodyContactPoints {
		if v.Z < 0 {
			return s.fail(badPointMessage(v))
		}
	}

	var pose legs.Pose
	xAxis, zAxis := t.Axes.X.Vector, t.Axes.Z.Vector

	for _, pos := range legs.Positions {
		known := initialLegProperties(pos, t.BodyContactPoints[pos], t.GroundContactPoints[pos], zAxis, dims.Coxia)
		if known.coxiaPoint.Z < 0 {
			return s.fail(badPointMessage(known.coxiaPoint))
		}

		alpha := ComputeAlpha(known.coxiaUnit, pos.AxisAngle(), xAxis, zAxis)
		if math.Abs(alpha) > MaxAlpha {
			return s.fail(alphaNotInRangeMessage(pos, alpha, MaxAlpha))
		}

		leg := NewLegSolver(pos).Solve(dims.Coxia, dims.Femur, dims.Tibia, known.summa, known.rho)
		log.WithFields(logrus.Fields{
			"leg":   pos,
			"state": leg.State,
		}).Debug("solved leg")

		if !leg.ObtainedSolution() {
			return s.fail(badLegMessage(leg))
		}

		if math.Abs(leg.Beta) > MaxBeta {
			return s.fail(angleNotInRangeMessage(pos, "beta", leg.Beta, MaxBeta))
		}

		if math.Abs(leg.Gamma) > MaxGamma {
			return s.fail(angleNotInRangeMessage(pos, "gamma", leg.Gamma, MaxGamma))
		}

		if !leg.ReachedTarget() {
			s.LegPositionsOffGround = append(s.LegPositionsOffGround, pos)
			if unstable, reason := CheckSupport(s.LegPositionsOffGround); unstable {
				return s.fail(noSupportMessage(reason))
			}
		}

		pose[pos] = legs.LegPose{
			Alpha: alpha,
			Beta:  leg.Beta,
			Gamma: leg.Gamma,
		}
	}

	s.Pose = pose
	s.FoundSolution = true

	if len(s.LegPositionsOffGround) == 0 {
		s.Message = successMessage
	} else {
		s.Message = successLegsOnAirMessage(s.LegPositionsOffGround)
	}

	return s
}

func (s *Solver) fail(m Message) *Solver {
	s.FoundSolution = false
	s.Message = m
	return s
}
