package legs

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/adammck/hexapod-kinematics/math3d"
)

// PointType names the four joints along a leg, proximal to distal.
type PointType int

const (
	BodyContactPoint PointType = iota
	CoxiaPoint
	FemurPoint
	FootTipPoint
)

const NumLegPoints = 4

var pointTypeNames = [NumLegPoints]string{
	"bodyContactPoint",
	"coxiaPoint",
	"femurPoint",
	"footTipPoint",
}

func (pt PointType) String() string {
	if pt < 0 || int(pt) >= NumLegPoints {
		return fmt.Sprintf("PointType(%d)", int(pt))
	}

	return pointTypeNames[pt]
}

// Linkage is a single leg: four points from the body contact to the foot tip,
// derived from the leg's pose and dimensions.
//
//	p0 *----* p1        p0: bodyContactPoint
//	         \          p1: coxiaPoint
//	          * p2      p2: femurPoint
//	          |         p3: footTipPoint
//	          * p3
type Linkage struct {
	Dimensions LegDimensions
	Pose       LegPose
	Position   Position
	Points     [NumLegPoints]math3d.Vector
}

// NewLinkage computes the points of a leg mounted at origin.
func NewLinkage(dims LegDimensions, pos Position, origin math3d.Vector, pose LegPose) Linkage {
	root := MakeRootSegment(math3d.Rotation(math3d.AxisZ, pos.AxisAngle()+pose.Alpha, origin.X, origin.Y, origin.Z))
	coxia := MakeLinkSegment("coxia", root, -pose.Beta, dims.Coxia)
	femur := MakeLinkSegment("femur", coxia, 90-pose.Gamma, dims.Femur)
	tibia := MakeLinkSegment("tibia", femur, 0, dims.Tibia)

	l := Linkage{
		Dimensions: dims,
		Pose:       pose,
		Position:   pos,
	}

	joints := [NumLegPoints]r3.Vector{coxia.Start(), coxia.End(), femur.End(), tibia.End()}
	for i, j := range joints {
		pt := PointType(i)
		l.Points[i] = math3d.Vector{Vector: j, Name: l.pointName(pt), ID: l.pointID(pt)}
	}

	return l
}

// BuildLegs returns the six legs of a hexapod, each mounted at the matching
// body vertex.
func BuildLegs(vertices [NumLegs]math3d.Vector, pose Pose, dims LegDimensions) [NumLegs]Linkage {
	var ls [NumLegs]Linkage
	for _, pos := range Positions {
		ls[pos] = NewLinkage(dims, pos, vertices[pos], pose[pos])
	}
	return ls
}

func (l Linkage) pointName(pt PointType) string {
	return fmt.Sprintf("%s-%s", l.Position, pt)
}

func (l Linkage) pointID(pt PointType) string {
	return fmt.Sprintf("%d-%d", l.Position.ID(), int(pt))
}

func (l Linkage) String() string {
	return fmt.Sprintf("&Linkage{%s %s}", l.Position, l.Pose)
}

// ID returns the leg ID, which is the same as its position.
func (l Linkage) ID() int {
	return l.Position.ID()
}

// Name returns e.g. "rightMiddleLeg".
func (l Linkage) Name() string {
	return l.Position.String() + "Leg"
}

func (l Linkage) BodyContactPoint() math3d.Vector {
	return l.Points[BodyContactPoint]
}

func (l Linkage) CoxiaPoint() math3d.Vector {
	return l.Points[CoxiaPoint]
}

func (l Linkage) FemurPoint() math3d.Vector {
	return l.Points[FemurPoint]
}

func (l Linkage) FootTipPoint() math3d.Vector {
	return l.Points[FootTipPoint]
}

// GroundContactPointType returns the type of the lowest point of the leg. When
// several points are equally low, the one closest to the foot tip wins.
func (l Linkage) GroundContactPointType() PointType {
	lowest := FootTipPoint
	for i := FootTipPoint - 1; i >= BodyContactPoint; i-- {
		if l.Points[i].Z < l.Points[lowest].Z {
			lowest = i
		}
	}

	return lowest
}

// MaybeGroundContactPoint returns the lowest point of the leg. It is probably
// the one touching the ground, but nothing guarantees that.
func (l Linkage) MaybeGroundContactPoint() math3d.Vector {
	return l.Points[l.GroundContactPointType()]
}

// Transform returns a copy of the leg with every point transformed. The pose
// is not recomputed.
func (l Linkage) Transform(t math3d.Transform) Linkage {
	clone := l
	for i, p := range l.Points {
		clone.Points[i] = p.Transform(t)
	}
	return clone
}

func (l Linkage) CloneTrot(m math3d.Matrix44) Linkage {
	return l.Transform(math3d.Rotate(m))
}

func (l Linkage) CloneShift(tx float64, ty float64, tz float64) Linkage {
	return l.Transform(math3d.Shift(tx, ty, tz))
}

func (l Linkage) CloneTrotShift(m math3d.Matrix44, tx float64, ty float64, tz float64) Linkage {
	return l.Transform(math3d.RotateThenShift(m, tx, ty, tz))
}
