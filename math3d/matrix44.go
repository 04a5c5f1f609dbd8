package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Matrix44 is a 4x4 homogeneous transform matrix. Points are treated as
// column vectors, so the translation lives in the fourth column and the
// bottom row is always [0, 0, 0, 1].
type Matrix44 struct {
	m mgl64.Mat4
}

var (
	Identity = Matrix44{mgl64.Ident4()}
)

// MakeMatrix44 returns a matrix with the given rows. The caller is
// responsible for the bottom row.
func MakeMatrix44(rows [4][4]float64) Matrix44 {
	return Matrix44{mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// Translation returns a pure translation matrix.
func Translation(tx float64, ty float64, tz float64) Matrix44 {
	return Matrix44{mgl64.Translate3D(tx, ty, tz)}
}

func (m Matrix44) String() string {
	e := m.Elements()
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		e[0][0], e[0][1], e[0][2], e[0][3],
		e[1][0], e[1][1], e[1][2], e[1][3],
		e[2][0], e[2][1], e[2][2], e[2][3],
		e[3][0], e[3][1], e[3][2], e[3][3])
}

// Elements returns the matrix as rows of float64s. This is pretty much only
// useful for dumping its contents.
func (m Matrix44) Elements() [4][4]float64 {
	var e [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e[r][c] = m.m.At(r, c)
		}
	}
	return e
}

// At returns the element at the given row and column.
func (m Matrix44) At(row int, col int) float64 {
	return m.m.At(row, col)
}

// Multiply returns m * o. Applying the result to a point is the same as
// applying o first, then m.
func (m Matrix44) Multiply(o Matrix44) Matrix44 {
	return Matrix44{m.m.Mul4(o.m)}
}

// Inverse returns the inverse of the matrix.
func (m Matrix44) Inverse() Matrix44 {
	return Matrix44{m.m.Inv()}
}

// Apply transforms a point by the matrix. Only the top three rows are used.
func (m Matrix44) Apply(v r3.Vector) r3.Vector {
	p := m.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// ApproxEqual returns true if every element of the two matrices is within
// eps of the other.
func (m Matrix44) ApproxEqual(o Matrix44, eps float64) bool {
	for i := range m.m {
		if !scalar.EqualWithinAbs(m.m[i], o.m[i], eps) {
			return false
		}
	}
	return true
}
