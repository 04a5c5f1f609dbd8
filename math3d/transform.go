package math3d

import (
	"fmt"

	"github.com/golang/geo/r3"
)

type TransformOp int

const (
	OpRotate TransformOp = iota
	OpShift
	OpRotateThenShift
)

func (op TransformOp) String() string {
	switch op {
	case OpRotate:
		return "rotate"
	case OpShift:
		return "shift"
	case OpRotateThenShift:
		return "rotateThenShift"
	default:
		return fmt.Sprintf("TransformOp(%d)", int(op))
	}
}

// Transform is a rigid transformation which can be applied to every point of
// a body, leg, or whole hexapod. Build them with Rotate, Shift, and
// RotateThenShift.
type Transform struct {
	Op     TransformOp
	Matrix Matrix44
	Shift  r3.Vector
}

// Rotate transforms points by the matrix alone.
func Rotate(m Matrix44) Transform {
	return Transform{Op: OpRotate, Matrix: m}
}

// Shift translates points.
func Shift(tx float64, ty float64, tz float64) Transform {
	return Transform{Op: OpShift, Matrix: Identity, Shift: r3.Vector{X: tx, Y: ty, Z: tz}}
}

// RotateThenShift transforms points by the matrix, then translates them.
func RotateThenShift(m Matrix44, tx float64, ty float64, tz float64) Transform {
	return Transform{Op: OpRotateThenShift, Matrix: m, Shift: r3.Vector{X: tx, Y: ty, Z: tz}}
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform{%s %s shift=%v}", t.Op, t.Matrix, t.Shift)
}

// Apply transforms a single point.
func (t Transform) Apply(v r3.Vector) r3.Vector {
	switch t.Op {
	case OpRotate:
		return t.Matrix.Apply(v)

	case OpShift:
		return v.Add(t.Shift)

	case OpRotateThenShift:
		return t.Matrix.Apply(v).Add(t.Shift)

	default:
		panic("invalid transform op")
	}
}
