package ik

import (
	"strings"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

// Params describe how to move the body of a hexapod standing in its start
// pose. TX, TY and TZ are fractions of the middle, side and tibia lengths.
// RX, RY and RZ are rotations in degrees. HipStance and LegStance shape the
// start pose.
type Params struct {
	TX        float64 `json:"tx"`
	TY        float64 `json:"ty"`
	TZ        float64 `json:"tz"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	RZ        float64 `json:"rz"`
	HipStance float64 `json:"hipStance"`
	LegStance float64 `json:"legStance"`
}

func (p Params) fields() logrus.Fields {
	return logrus.Fields{
		"tx": p.TX, "ty": p.TY, "tz": p.TZ,
		"rx": p.RX, "ry": p.RY, "rz": p.RZ,
		"hipStance": p.HipStance,
		"legStance": p.LegStance,
	}
}

type Flags struct {
	// Rotate the body before shifting it. Otherwise shift, then rotate about
	// the origin.
	RotateThenShift bool
}

func DefaultFlags() Flags {
	return Flags{RotateThenShift: true}
}

// Result is the outcome of SolveInverseKinematics. Pose and Hexapod are nil
// unless ObtainedSolution is true.
type Result struct {
	Pose                  *legs.Pose
	ObtainedSolution      bool
	Message               Message
	Hexapod               *hexapod.VirtualHexapod
	LegPositionsOffGround []legs.Position
}

// Err returns nil if a solution was found.
func (r Result) Err() error {
	return r.Message.Err()
}

// BuildStartPose returns the pose of the hexapod before its body is moved.
// The feet stay where they are in this pose.
func BuildStartPose(hipStance float64, legStance float64) legs.Pose {
	alphas := [legs.NumLegs]float64{0, -hipStance, hipStance, 0, -hipStance, hipStance}

	var pose legs.Pose
	for i, a := range alphas {
		pose[i] = legs.LegPose{
			Alpha: a,
			Beta:  legStance,
			Gamma: -legStance,
		}
	}
	return pose
}

// BuildTargets moves the body of the start hexapod according to p, and keeps
// its feet where they are.
func BuildTargets(start *hexapod.VirtualHexapod, p Params, flags Flags) Targets {
	dims := start.Dimensions
	m := math3d.RotXYZ(p.RX, p.RY, p.RZ)
	tx, ty, tz := p.TX*dims.Middle, p.TY*dims.Side, p.TZ*dims.Tibia

	var body legs.Hexagon
	if flags.RotateThenShift {
		body = start.Body.CloneTrot(m).CloneShift(tx, ty, tz)
	} else {
		body = start.Body.CloneShift(tx, ty, tz).CloneTrot(m)
	}

	t := Targets{
		BodyContactPoints: body.Vertices,
		Axes:              hexapod.DefaultLocalAxes.Rotate(m),
	}

	for i, l := range start.Legs {
		t.GroundContactPoints[i] = l.MaybeGroundContactPoint()
	}

	return t
}

// SolveInverseKinematics finds the pose which moves the body of a hexapod, in
// the start pose described by p, without moving its feet.
func SolveInverseKinematics(dims legs.Dimensions, p Params, flags Flags) Result {
	log.WithFields(p.fields()).Debug("solving")

	start := hexapod.New(dims, BuildStartPose(p.HipStance, p.LegStance), hexapod.Flags{})
	if !start.FoundSolution {
		return Result{
			Message: noSupportMessage("The start pose has no stable orientation."),
		}
	}

	targets := BuildTargets(start, p, flags)
	solver := NewSolver().Solve(dims.LegDimensions, targets)
	if !solver.FoundSolution {
		return Result{
			Message:               solver.Message,
			LegPositionsOffGround: solver.LegPositionsOffGround,
		}
	}

	// The solved hexapod has its center of gravity above the origin. Move it
	// so that it steps on the target points.
	h := hexapod.New(dims, solver.Pose, hexapod.Flags{})
	if p1, p2, ok := findTwoPivotPoints(h.GroundContactPoints(), targets.GroundContactPoints[:], solver.LegPositionsOffGround); ok {
		h = rotateShiftGivenPivots(h, p1, p2)
	}

	pose := solver.Pose
	return Result{
		Pose:                  &pose,
		ObtainedSolution:      true,
		Message:               solver.Message,
		Hexapod:               h,
		LegPositionsOffGround: solver.LegPositionsOffGround,
	}
}

type pivot struct {
	current math3d.Vector
	target  math3d.Vector
}

// positionOfPoint returns the leg position a point belongs to, from its name.
func positionOfPoint(v math3d.Vector) (legs.Position, bool) {
	name, _, ok := strings.Cut(v.Name, "-")
	if !ok {
		return 0, false
	}

	pos, err := legs.ParsePosition(name)
	if err != nil {
		return 0, false
	}

	return pos, true
}

// findTwoPivotPoints returns the first two current ground contact points which
// have a target of the same name, skipping legs which are off the ground.
func findTwoPivotPoints(current []math3d.Vector, targets []math3d.Vector, excluded []legs.Position) (pivot, pivot, bool) {
	byName := lo.KeyBy(targets, func(v math3d.Vector) string {
		return v.Name
	})

	var found []pivot
	for _, c := range current {
		if pos, ok := positionOfPoint(c); ok && lo.Contains(excluded, pos) {
			continue
		}

		t, ok := byName[c.Name]
		if !ok {
			continue
		}

		found = append(found, pivot{current: c, target: t})
		if len(found) == 2 {
			return found[0], found[1], true
		}
	}

	return pivot{}, pivot{}, false
}

// rotateShiftGivenPivots twists the hexapod about the Z axis and shifts it
// along the ground, so that both pivots' current points land on their targets.
func rotateShiftGivenPivots(h *hexapod.VirtualHexapod, p1 pivot, p2 pivot) *hexapod.VirtualHexapod {
	targetVec := math3d.VectorFromTo(p1.target.Vector, p2.target.Vector)
	currentVec := math3d.VectorFromTo(p1.current.Vector, p2.current.Vector)

	twist := math3d.AngleBetween(currentVec, targetVec)
	if !math3d.IsCounterClockwise(currentVec, targetVec, r3.Vector{X: 0, Y: 0, Z: 1}) {
		twist = -twist
	}

	m := math3d.RotZ(twist)
	shift := math3d.VectorFromTo(m.Apply(p1.current.Vector), p1.target.Vector)

	log.WithFields(logrus.Fields{
		"twist": twist,
		"dx":    shift.X,
		"dy":    shift.Y,
	}).Debug("moving onto pivots")

	return h.CloneTrot(m).CloneShift(shift.X, shift.Y, 0)
}
