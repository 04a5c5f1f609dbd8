package math3d

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vector is a point (or direction) in 3D space, tagged with a name and an ID
// so that it can still be identified after being transformed.
type Vector struct {
	r3.Vector
	Name string
	ID   string
}

var (
	ZeroVector = Vector{}
)

// MakeVector returns a new, unnamed Vector.
func MakeVector(x float64, y float64, z float64) Vector {
	return Vector{Vector: r3.Vector{X: x, Y: y, Z: z}}
}

// NamedVector returns a new Vector with the given name and ID.
func NamedVector(x float64, y float64, z float64, name string, id string) Vector {
	return Vector{
		Vector: r3.Vector{X: x, Y: y, Z: z},
		Name:   name,
		ID:     id,
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("&Vec3{%s x=%0.2f y=%0.2f z=%0.2f}", v.Name, v.X, v.Y, v.Z)
}

// Markdown renders the point the way the IK failure messages show it.
func (v Vector) Markdown() string {
	return fmt.Sprintf("%s\n\n(x: %0.2f, y: %0.2f, z: %0.2f)", v.Name, v.X, v.Y, v.Z)
}

// WithCoords returns a copy of the vector with the same name and ID at the
// given coordinates.
func (v Vector) WithCoords(c r3.Vector) Vector {
	return Vector{Vector: c, Name: v.Name, ID: v.ID}
}

// Trot rotates and translates the vector by the given matrix, and returns the
// result under a new name and ID.
func (v Vector) Trot(m Matrix44, name string, id string) Vector {
	return Vector{Vector: m.Apply(v.Vector), Name: name, ID: id}
}

// CloneTrot is like Trot, but keeps the name and ID.
func (v Vector) CloneTrot(m Matrix44) Vector {
	return v.WithCoords(m.Apply(v.Vector))
}

// CloneShift translates the vector, keeping its name and ID.
func (v Vector) CloneShift(tx float64, ty float64, tz float64) Vector {
	return v.WithCoords(r3.Vector{X: v.X + tx, Y: v.Y + ty, Z: v.Z + tz})
}

// CloneTrotShift rotates by m, then translates.
func (v Vector) CloneTrotShift(m Matrix44, tx float64, ty float64, tz float64) Vector {
	return v.CloneTrot(m).CloneShift(tx, ty, tz)
}

// Transform applies the given transform to the vector.
func (v Vector) Transform(t Transform) Vector {
	return v.WithCoords(t.Apply(v.Vector))
}
