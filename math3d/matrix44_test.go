package math3d

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

// http://www.wolframalpha.com/input/?i=%7B%7B1%2C2%2C3%2C4%7D%2C%7B5%2C6%2C7%2C8%7D%2C%7B9%2C10%2C11%2C12%7D%2C%7B13%2C14%2C15%2C16%7D%7D+*+%7B%7B17%2C18%2C19%2C20%7D%2C%7B21%2C22%2C23%2C24%7D%2C%7B25%2C26%2C27%2C28%7D%2C%7B29%2C30%2C31%2C32%7D%7D
func TestMultiply(t *testing.T) {
	a := MakeMatrix44([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	b := MakeMatrix44([4][4]float64{
		{17, 18, 19, 20},
		{21, 22, 23, 24},
		{25, 26, 27, 28},
		{29, 30, 31, 32},
	})
	m := a.Multiply(b)

	exp := [4][4]float64{
		{250, 260, 270, 280},
		{618, 644, 670, 696},
		{986, 1028, 1070, 1112},
		{1354, 1412, 1470, 1528},
	}

	for r, row := range m.Elements() {
		for c, val := range row {
			if val != exp[r][c] {
				t.Errorf("m%d%d is %v, expected %v", (r + 1), (c + 1), val, exp[r][c])
			}
		}
	}
}

func TestRotation(t *testing.T) {
	type eg struct {
		m   Matrix44
		in  r3.Vector
		out r3.Vector
	}

	examples := []eg{
		{RotX(90), r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 0, Y: 0, Z: 1}},
		{RotY(90), r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 0, Z: -1}},
		{RotZ(90), r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0}},
		{RotZ(180), r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: -1, Y: -2, Z: 3}},
		{Rotation(AxisZ, 90, 10, 20, 30), r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 10, Y: 21, Z: 30}},
		{Rotation(AxisY, 0, 5, 0, 0), r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 5, Y: 0, Z: 0}},
	}

	for i, x := range examples {
		act := x.m.Apply(x.in)
		assert.InDelta(t, x.out.X, act.X, 1e-9, "example %d:X", i+1)
		assert.InDelta(t, x.out.Y, act.Y, 1e-9, "example %d:Y", i+1)
		assert.InDelta(t, x.out.Z, act.Z, 1e-9, "example %d:Z", i+1)
	}
}

func TestRotXYZOrder(t *testing.T) {
	// Z is applied first: (1,0,0) -> (0,1,0), then X takes it to (0,0,1).
	act := RotXYZ(90, 0, 90).Apply(r3.Vector{X: 1, Y: 0, Z: 0})
	assert.InDelta(t, 0.0, act.X, 1e-9)
	assert.InDelta(t, 0.0, act.Y, 1e-9)
	assert.InDelta(t, 1.0, act.Z, 1e-9)
}

func TestBottomRow(t *testing.T) {
	matrices := []Matrix44{
		Identity,
		RotX(33),
		Rotation(AxisY, -12, 1, 2, 3),
		RotXYZ(10, 20, 30),
		AlignVectors(r3.Vector{X: 0, Y: 0.6, Z: 0.8}, r3.Vector{X: 0, Y: 0, Z: 1}),
	}

	for i, m := range matrices {
		assert.Equal(t, [4]float64{0, 0, 0, 1}, m.Elements()[3], "matrix %d", i+1)
	}
}

func TestInverse(t *testing.T) {
	m := Rotation(AxisZ, 30, 1, 2, 3).Multiply(RotX(15))
	assert.True(t, m.Multiply(m.Inverse()).ApproxEqual(Identity, 1e-9))

	v := r3.Vector{X: 4, Y: -5, Z: 6}
	act := m.Inverse().Apply(m.Apply(v))
	assert.InDelta(t, v.X, act.X, 1e-9)
	assert.InDelta(t, v.Y, act.Y, 1e-9)
	assert.InDelta(t, v.Z, act.Z, 1e-9)
}

func TestApproxEqual(t *testing.T) {
	type eg struct {
		m   Matrix44
		eps float64
		exp bool
	}

	near := func(d float64) Matrix44 {
		return MakeMatrix44([4][4]float64{
			{1, d, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1 + d, 0},
			{0, 0, 0, 1},
		})
	}

	data := []eg{
		{Identity, 0, true},
		{near(1e-12), 1e-9, true},
		{near(-1e-12), 1e-9, true},
		{near(1e-6), 1e-9, false},
		{near(1e-6), 1e-5, true},
		{Translation(0, 0, 1e-3), 1e-4, false},
	}

	for i, e := range data {
		assert.Equal(t, e.exp, e.m.ApproxEqual(Identity, e.eps), "example %d", i+1)
	}
}

func TestAlignVectors(t *testing.T) {
	type eg struct {
		a r3.Vector
		b r3.Vector
	}

	examples := []eg{
		{r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0}},
		{r3.Vector{X: 0, Y: 0.6, Z: 0.8}, r3.Vector{X: 0, Y: 0, Z: 1}},
		{r3.Vector{X: 0.48, Y: 0.6, Z: 0.64}, r3.Vector{X: 0, Y: 0, Z: 1}},
	}

	for i, x := range examples {
		act := AlignVectors(x.a, x.b).Apply(x.a)
		assert.InDelta(t, x.b.X, act.X, 1e-9, "example %d:X", i+1)
		assert.InDelta(t, x.b.Y, act.Y, 1e-9, "example %d:Y", i+1)
		assert.InDelta(t, x.b.Z, act.Z, 1e-9, "example %d:Z", i+1)
	}
}

func TestAlignVectorsParallel(t *testing.T) {
	a := r3.Vector{X: 0.6, Y: 0, Z: 0.8}
	assert.Equal(t, Identity, AlignVectors(a, a))

	// Anti-parallel vectors have no unique rotation axis, and are left alone.
	assert.Equal(t, Identity, AlignVectors(a, a.Mul(-1)))
}
