package legs

import (
	"strconv"

	"github.com/adammck/hexapod-kinematics/math3d"
)

// Hexagon is the body of the hexapod. It has one vertex per leg position
// (where that leg is mounted), a center of gravity which starts out at the
// origin, and a head point at the front.
type Hexagon struct {
	Dimensions BodyDimensions
	Vertices   [NumLegs]math3d.Vector
	COG        math3d.Vector
	Head       math3d.Vector
}

func NewHexagon(dims BodyDimensions) Hexagon {
	f, m, s := dims.Front, dims.Middle, dims.Side
	xs := [NumLegs]float64{m, f, -f, -m, -f, f}
	ys := [NumLegs]float64{0, s, s, 0, -s, -s}

	h := Hexagon{
		Dimensions: dims,
		COG:        math3d.NamedVector(0, 0, 0, "centerOfGravityPoint", "6"),
		Head:       math3d.NamedVector(0, s, 0, "headPoint", "7"),
	}

	for _, pos := range Positions {
		h.Vertices[pos] = math3d.NamedVector(xs[pos], ys[pos], 0, pos.String()+"Vertex", strconv.Itoa(pos.ID()))
	}

	return h
}

// ClosedPoints returns the vertices with the first repeated at the end, which
// is handy for drawing the outline.
func (h Hexagon) ClosedPoints() []math3d.Vector {
	return append(h.Vertices[:], h.Vertices[0])
}

// AllPoints returns the vertices followed by the COG and the head.
func (h Hexagon) AllPoints() []math3d.Vector {
	return append(h.Vertices[:], h.COG, h.Head)
}

// Transform returns a copy of the body with every point transformed.
func (h Hexagon) Transform(t math3d.Transform) Hexagon {
	clone := h
	clone.COG = h.COG.Transform(t)
	clone.Head = h.Head.Transform(t)
	for i, v := range h.Vertices {
		clone.Vertices[i] = v.Transform(t)
	}
	return clone
}

func (h Hexagon) CloneTrot(m math3d.Matrix44) Hexagon {
	return h.Transform(math3d.Rotate(m))
}

func (h Hexagon) CloneShift(tx float64, ty float64, tz float64) Hexagon {
	return h.Transform(math3d.Shift(tx, ty, tz))
}

func (h Hexagon) CloneTrotShift(m math3d.Matrix44, tx float64, ty float64, tz float64) Hexagon {
	return h.Transform(math3d.RotateThenShift(m, tx, ty, tz))
}
