package legs

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/adammck/hexapod-kinematics/math3d"
)

// Segment is one link of a kinematic chain. Its local matrix takes a vector in
// the segment's own coordinate space (whose origin is the end of the segment)
// into its parent's space.
type Segment struct {
	Name   string
	parent *Segment
	Child  *Segment
	local  math3d.Matrix44
}

func MakeSegment(name string, parent *Segment, local math3d.Matrix44) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		local:  local,
	}

	if parent != nil {
		parent.Child = s
	}

	return s
}

// MakeRootSegment returns a zero-length segment which places the chain in the
// world space.
func MakeRootSegment(m math3d.Matrix44) *Segment {
	return MakeSegment("root", nil, m)
}

// MakeLinkSegment returns a segment which pitches by theta degrees about its
// start, then extends by length along its own X axis.
func MakeLinkSegment(name string, parent *Segment, theta float64, length float64) *Segment {
	return MakeSegment(name, parent, math3d.Rotation(math3d.AxisY, theta, length, 0, 0))
}

func (s Segment) String() string {
	var childStr string

	if s.Child != nil {
		childStr = s.Child.String()
	} else {
		childStr = "nil"
	}

	return fmt.Sprintf("&Seg{%s: %s}", s.Name, childStr)
}

// Start returns the coordinates of the start of this segment, in the world
// coordinate space.
func (s *Segment) Start() r3.Vector {
	if s.parent == nil {
		return s.End()
	}

	return s.parent.End()
}

// End returns the coordinates of the end of this segment, in the world
// coordinate space.
func (s *Segment) End() r3.Vector {
	return s.Project(r3.Vector{})
}

// WorldMatrix returns a matrix which can be applied to a vector in this
// segment's coordinate space to convert it to the world space.
func (s *Segment) WorldMatrix() math3d.Matrix44 {
	if s.parent != nil {
		return s.parent.WorldMatrix().Multiply(s.local)
	}

	return s.local
}

// Project transforms a vector in this segment's coordinate space into the
// world space.
func (s *Segment) Project(v r3.Vector) r3.Vector {
	return s.WorldMatrix().Apply(v)
}
