package ik

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
	"github.com/adammck/hexapod-kinematics/utils"
)

// LegState is where a LegSolver ended up.
type LegState int

const (
	Initialized LegState = iota
	TargetReached
	TargetNotReached
	Blocked
	FemurTooLong
	TibiaTooLong
)

func (s LegState) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case TargetReached:
		return "targetReached"
	case TargetNotReached:
		return "targetNotReached"
	case Blocked:
		return "blocked"
	case FemurTooLong:
		return "femurTooLong"
	case TibiaTooLong:
		return "tibiaTooLong"
	default:
		return fmt.Sprintf("LegState(%d)", int(s))
	}
}

// ObtainedSolution returns true if the leg has usable angles, whether or not
// it reaches the target.
func (s LegState) ObtainedSolution() bool {
	return s == TargetReached || s == TargetNotReached
}

// ReachedTarget returns true if the foot tip can be placed on the target.
// A blocked leg could reach it, but only by digging into the ground.
func (s LegState) ReachedTarget() bool {
	return s == TargetReached || s == Blocked
}

// Err returns the error for the failed states, or nil.
func (s LegState) Err() error {
	switch s {
	case Blocked:
		return ErrBlocked
	case FemurTooLong:
		return ErrFemurTooLong
	case TibiaTooLong:
		return ErrTibiaTooLong
	}

	return nil
}

func (s LegState) message(pos legs.Position) string {
	switch s {
	case TargetReached:
		return fmt.Sprintf("Success! (%s)", pos)
	case TargetNotReached:
		return fmt.Sprintf("Success! But this leg won't reach the target ground point. (%s)", pos)
	case Blocked:
		return fmt.Sprintf("Failure. The ground is blocking the path. The target point can only be reached by digging the ground. (%s)", pos)
	case FemurTooLong:
		return fmt.Sprintf("Failure. Femur length too long. (%s)", pos)
	case TibiaTooLong:
		return fmt.Sprintf("Failure. Tibia length too long. (%s)", pos)
	default:
		return fmt.Sprintf("Haven't solved anything yet. (%s)", pos)
	}
}

var legXAxis = r3.Vector{X: 1, Y: 0, Z: 0}

// LegSolver finds the beta and gamma of a single leg, in the leg's own plane.
//
//	p0   p1          p0: body contact point
//	 *---*           p1: coxia point
//	      \   * p2   p2: femur point
//	  pars \ /       p3: target foot tip
//	        * p3
//
// The target is described by summa (the distance from p0 to p3) and rho (the
// angle below the leg X axis at p0). Pars is the distance from p1 to p3.
type LegSolver struct {
	Position legs.Position
	State    LegState

	Beta  float64
	Gamma float64

	Target r3.Vector
	Pars   float64
}

func NewLegSolver(pos legs.Position) *LegSolver {
	return &LegSolver{
		Position: pos,
		State:    Initialized,
	}
}

// Message describes the state of the solver.
func (s *LegSolver) Message() string {
	return s.State.message(s.Position)
}

func (s *LegSolver) ObtainedSolution() bool {
	return s.State.ObtainedSolution()
}

func (s *LegSolver) ReachedTarget() bool {
	return s.State.ReachedTarget()
}

func (s *LegSolver) Solve(coxia float64, femur float64, tibia float64, summa float64, rho float64) *LegSolver {
	sin, cos := utils.SinCos(rho)
	s.Target = r3.Vector{X: summa * cos, Y: 0, Z: -summa * sin}

	coxiaPoint := r3.Vector{X: coxia, Y: 0, Z: 0}
	parsVec := math3d.VectorFromTo(coxiaPoint, s.Target)
	s.Pars = parsVec.Norm()

	if math3d.IsTriangle(s.Pars, femur, tibia) {
		s.solveTriangle(femur, tibia, parsVec)
	} else {
		s.solveEdgeCase(femur, tibia, parsVec)
	}

	return s
}

func (s *LegSolver) solveTriangle(femur float64, tibia float64, parsVec r3.Vector) {
	theta, _ := math3d.AngleOppositeOfLastSide(femur, s.Pars, tibia)
	phi := math3d.AngleBetween(parsVec, legXAxis)

	if s.Target.Z < 0 {
		s.Beta = theta - phi
	} else {
		s.Beta = theta + phi
	}

	// The femur joint would have to be below the foot tip.
	sinBeta, _ := utils.SinCos(s.Beta)
	femurZ := femur * sinBeta
	if s.Target.Z > femurZ {
		s.State = Blocked
		return
	}

	epsi, _ := math3d.AngleOppositeOfLastSide(femur, tibia, s.Pars)
	s.Gamma = epsi - 90
	s.State = TargetReached
}

func (s *LegSolver) solveEdgeCase(femur float64, tibia float64, parsVec r3.Vector) {
	if s.Pars+tibia < femur {
		s.State = FemurTooLong
		return
	}

	if s.Pars+femur < tibia {
		s.State = TibiaTooLong
		return
	}

	// Stretch the leg straight out towards the target.
	s.Beta = -math3d.AngleBetween(parsVec, legXAxis)
	s.Gamma = 90
	s.State = TargetNotReached
}
