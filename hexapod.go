package hexapod

import (
	"github.com/sirupsen/logrus"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
	"github.com/adammck/hexapod-kinematics/orient"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "hexapod",
})

// DefaultPose has every angle of every leg at zero: legs straight out, tibias
// pointing straight down.
var DefaultPose = legs.Pose{}

// DefaultLocalAxes are the axes of a hexapod which hasn't been rotated.
var DefaultLocalAxes = Axes{
	X: math3d.NamedVector(1, 0, 0, "hexapodXaxis", ""),
	Y: math3d.NamedVector(0, 1, 0, "hexapodYaxis", ""),
	Z: math3d.NamedVector(0, 0, 1, "hexapodZaxis", ""),
}

// Axes is the local coordinate frame of a hexapod, relative to the world.
type Axes struct {
	X math3d.Vector
	Y math3d.Vector
	Z math3d.Vector
}

// Rotate returns the axes rotated by m. Axes are directions, so translation
// is never applied to them.
func (a Axes) Rotate(m math3d.Matrix44) Axes {
	return Axes{
		X: a.X.CloneTrot(m),
		Y: a.Y.CloneTrot(m),
		Z: a.Z.CloneTrot(m),
	}
}

// Flags control how a VirtualHexapod is solved.
type Flags struct {
	// Assume that every leg reaches the ground at its lowest point, and use
	// the fast orientation solver.
	AssumeKnownGroundPoints bool

	// Skip resolving the twist about the Z axis.
	WontRotate bool

	// Passed to the general orientation solver.
	Orient orient.Options
}

// Info summarizes whether a stable orientation was found.
type Info struct {
	IsAlert bool   `json:"isAlert"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// VirtualHexapod is a hexapod of the given dimensions, in the given pose,
// resting on the ground (the XY plane at Z=0).
type VirtualHexapod struct {
	Dimensions legs.Dimensions
	Pose       legs.Pose
	Body       legs.Hexagon
	Legs       [legs.NumLegs]legs.Linkage
	LocalAxes  Axes

	// The positions of the legs which touch the ground. This is computed once
	// when the hexapod is built, and carried over (not recomputed) when it is
	// cloned.
	LegPositionsOnGround []legs.Position

	// False if no stable orientation could be found. In that case the body and
	// legs are left unrotated, with the center of gravity at the origin.
	FoundSolution bool
}

// New builds a hexapod and works out how it rests on the ground.
func New(dims legs.Dimensions, pose legs.Pose, flags Flags) *VirtualHexapod {
	flat := legs.NewHexagon(dims.BodyDimensions)
	dangling := legs.BuildLegs(flat.Vertices, pose, dims.LegDimensions)

	h := &VirtualHexapod{
		Dimensions: dims,
		Pose:       pose,
		Body:       flat,
		Legs:       dangling,
		LocalAxes:  DefaultLocalAxes,
	}

	var solved orient.Solution
	var ok bool
	if flags.AssumeKnownGroundPoints {
		solved, ok = orient.SolveSpecific(dangling)
	} else {
		solved, ok = orient.SolveGeneral(dangling, flags.Orient)
	}

	if !ok {
		log.Debug("no stable orientation")
		return h
	}

	h.FoundSolution = true
	h.LegPositionsOnGround = solved.GroundPositions()

	// Rotate the ground normal onto the Z axis, and lift the body so that the
	// ground is at Z=0.
	m := math3d.AlignVectors(solved.Normal, DefaultLocalAxes.Z.Vector)
	tr := math3d.RotateThenShift(m, 0, 0, solved.Height)
	h.Body = flat.Transform(tr)
	for i, l := range dangling {
		h.Legs[i] = l.Transform(tr)
	}
	h.LocalAxes = DefaultLocalAxes.Rotate(m)

	if flags.WontRotate {
		return h
	}

	if pose.AllAlphaZero() {
		return h
	}

	if twist := SimpleTwist(solved.GroundLegs); twist != 0 {
		h.twist(twist)
		return h
	}

	if MightTwist(solved.GroundLegs) {
		h.handleComplexTwist(flat)
	}

	return h
}

// handleComplexTwist compares the current ground contact points with those of
// a hexapod of the same size in the default pose.
func (h *VirtualHexapod) handleComplexTwist(flat legs.Hexagon) {
	var defaults [legs.NumLegs]math3d.Vector
	for i, l := range legs.BuildLegs(flat.Vertices, DefaultPose, h.Dimensions.LegDimensions) {
		defaults[i] = l.CloneShift(0, 0, h.Dimensions.Tibia).MaybeGroundContactPoint()
	}

	if twist := ComplexTwist(h.GroundContactPoints(), defaults); twist != 0 {
		h.twist(twist)
	}
}

func (h *VirtualHexapod) twist(theta float64) {
	log.WithField("theta", theta).Debug("twisting")

	m := math3d.RotZ(theta)
	h.Body = h.Body.CloneTrot(m)
	for i, l := range h.Legs {
		h.Legs[i] = l.CloneTrot(m)
	}
	h.LocalAxes = h.LocalAxes.Rotate(m)
}

// DistanceFromGround returns the height of the center of gravity.
func (h *VirtualHexapod) DistanceFromGround() float64 {
	return h.Body.COG.Z
}

// Flattens a point onto the ground.
var groundProjection = math3d.MakeMatrix44([4][4]float64{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 1},
})

// COGProjection returns the point on the ground directly below the center of
// gravity.
func (h *VirtualHexapod) COGProjection() math3d.Vector {
	return h.Body.COG.Trot(groundProjection, "centerOfGravityProjectionPoint", "")
}

// GroundContactPoints returns the lowest point of each leg on the ground.
func (h *VirtualHexapod) GroundContactPoints() []math3d.Vector {
	out := make([]math3d.Vector, len(h.LegPositionsOnGround))
	for i, pos := range h.LegPositionsOnGround {
		out[i] = h.Legs[pos].MaybeGroundContactPoint()
	}
	return out
}

func (h *VirtualHexapod) Info() Info {
	if h.FoundSolution {
		return Info{
			IsAlert: false,
			Subject: "Success!",
			Body:    "Stable orientation found.",
		}
	}

	return Info{
		IsAlert: true,
		Subject: "Unstable position.",
		Body:    "error in solving for orientation ",
	}
}

// Transform returns a copy of the hexapod with every point transformed. The
// local axes follow any rotation. Which legs are on the ground is not
// recomputed.
func (h *VirtualHexapod) Transform(t math3d.Transform) *VirtualHexapod {
	clone := *h
	clone.LegPositionsOnGround = append([]legs.Position(nil), h.LegPositionsOnGround...)
	clone.Body = h.Body.Transform(t)
	for i, l := range h.Legs {
		clone.Legs[i] = l.Transform(t)
	}

	if t.Op != math3d.OpShift {
		clone.LocalAxes = h.LocalAxes.Rotate(t.Matrix)
	}

	return &clone
}

// CloneTrot rotates the hexapod. The matrix should be a pure rotation.
func (h *VirtualHexapod) CloneTrot(m math3d.Matrix44) *VirtualHexapod {
	return h.Transform(math3d.Rotate(m))
}

func (h *VirtualHexapod) CloneShift(tx float64, ty float64, tz float64) *VirtualHexapod {
	return h.Transform(math3d.Shift(tx, ty, tz))
}

func (h *VirtualHexapod) CloneTrotShift(m math3d.Matrix44, tx float64, ty float64, tz float64) *VirtualHexapod {
	return h.Transform(math3d.RotateThenShift(m, tx, ty, tz))
}

// World returns a matrix to transform a vector in the hexapod coordinate space
// into the world space.
func (h *VirtualHexapod) World() math3d.Matrix44 {
	x, y, z, c := h.LocalAxes.X, h.LocalAxes.Y, h.LocalAxes.Z, h.Body.COG
	return math3d.MakeMatrix44([4][4]float64{
		{x.X, y.X, z.X, c.X},
		{x.Y, y.Y, z.Y, c.Y},
		{x.Z, y.Z, z.Z, c.Z},
		{0, 0, 0, 1},
	})
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the hexapod's space, taking into account its current position and
// rotation.
func (h *VirtualHexapod) Local() math3d.Matrix44 {
	return h.World().Inverse()
}
