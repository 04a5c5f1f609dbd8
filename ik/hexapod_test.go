package ik

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

func TestBuildStartPose(t *testing.T) {
	pose := BuildStartPose(25, 10)

	alphas := []float64{0, -25, 25, 0, -25, 25}
	for i, lp := range pose {
		assert.Equal(t, legs.LegPose{Alpha: alphas[i], Beta: 10, Gamma: -10}, lp)
	}
}

func TestSolveInverseKinematicsStill(t *testing.T) {
	res := SolveInverseKinematics(legs.DefaultDimensions(), Params{HipStance: 25}, DefaultFlags())
	require.True(t, res.ObtainedSolution, res.Message.String())
	require.NoError(t, res.Err())

	assert.Equal(t, successMessage, res.Message)
	assert.Empty(t, res.LegPositionsOffGround)

	exp := BuildStartPose(25, 0)
	for i, lp := range res.Pose {
		assert.InDelta(t, exp[i].Alpha, lp.Alpha, 1e-4, legs.Position(i).String())
		assert.InDelta(t, 0.0, lp.Beta, 1e-4, legs.Position(i).String())
		assert.InDelta(t, 0.0, lp.Gamma, 1e-4, legs.Position(i).String())
	}

	cog := res.Hexapod.Body.COG
	assert.InDelta(t, 0.0, cog.X, 1e-4)
	assert.InDelta(t, 0.0, cog.Y, 1e-4)
	assert.InDelta(t, 100.0, cog.Z, 1e-4)
}

func TestSolveInverseKinematicsShift(t *testing.T) {
	dims := legs.DefaultDimensions()
	params := Params{TX: 0.1, HipStance: 25}

	res := SolveInverseKinematics(dims, params, DefaultFlags())
	require.True(t, res.ObtainedSolution, res.Message.String())

	// The body moves, the feet don't.
	cog := res.Hexapod.Body.COG
	assert.InDelta(t, 10.0, cog.X, 1e-4)
	assert.InDelta(t, 0.0, cog.Y, 1e-4)
	assert.InDelta(t, 100.0, cog.Z, 1e-4)

	start := SolveInverseKinematics(dims, Params{HipStance: 25}, DefaultFlags())
	for i, l := range res.Hexapod.Legs {
		a := l.FootTipPoint()
		b := start.Hexapod.Legs[i].FootTipPoint()
		assert.InDelta(t, 0.0, a.Sub(b.Vector).Norm(), 1e-4, l.Name())
	}

	// Nothing about the middle legs changes.
	assert.InDelta(t, 0.0, res.Pose[legs.RightMiddle].Alpha, 1e-4)
	assert.InDelta(t, 0.0, res.Pose[legs.LeftMiddle].Alpha, 1e-4)
}

func TestSolveInverseKinematicsFailures(t *testing.T) {
	type example struct {
		params Params
		kind   Kind
		err    error
	}

	data := []example{
		// Body pushed through the floor.
		{Params{TZ: -1.5}, KindBadPoint, ErrBadPoint},

		// Body lifted out of reach of every leg.
		{Params{TZ: 2}, KindNoSupport, ErrNoSupport},

		// Body twisted too far for the hips.
		{Params{RZ: 100}, KindAlphaNotInRange, ErrAlphaNotInRange},
	}

	for i, eg := range data {
		res := SolveInverseKinematics(legs.DefaultDimensions(), eg.params, DefaultFlags())
		assert.False(t, res.ObtainedSolution, "example %d", i+1)
		assert.Nil(t, res.Pose, "example %d", i+1)
		assert.Nil(t, res.Hexapod, "example %d", i+1)
		assert.Equal(t, eg.kind, res.Message.Kind, "example %d", i+1)
		assert.True(t, errors.Is(res.Err(), eg.err), "example %d: %v", i+1, res.Err())
	}
}

func TestSolveInverseKinematicsBadLeg(t *testing.T) {
	type example struct {
		dims   legs.Dimensions
		params Params
		err    error
	}

	dims := func(coxia float64, femur float64, tibia float64) legs.Dimensions {
		d := legs.DefaultDimensions()
		d.LegDimensions = legs.LegDimensions{Coxia: coxia, Femur: femur, Tibia: tibia}
		return d
	}

	data := []example{
		// The body slides 100 towards the right middle foot, which is 300
		// away and 50 down. The femur can't fold back far enough.
		{dims(100, 300, 50), Params{TX: 1}, ErrFemurTooLong},

		// The body drops 90 towards feet which are 300 down. The tibia can't
		// fold up far enough.
		{dims(100, 50, 300), Params{TZ: -0.3}, ErrTibiaTooLong},
	}

	for i, eg := range data {
		res := SolveInverseKinematics(eg.dims, eg.params, DefaultFlags())
		assert.False(t, res.ObtainedSolution, "example %d", i+1)
		assert.Nil(t, res.Hexapod, "example %d", i+1)
		assert.Equal(t, KindBadLeg, res.Message.Kind, "example %d", i+1)
		assert.Equal(t, "Failure: Bad leg.", res.Message.Subject, "example %d", i+1)
		assert.Contains(t, res.Message.Body, "(rightMiddle)", "example %d", i+1)
		assert.True(t, errors.Is(res.Err(), eg.err), "example %d: %v", i+1, res.Err())
		assert.True(t, errors.Is(res.Err(), ErrBadLeg), "example %d: %v", i+1, res.Err())
	}
}

func TestSolveInverseKinematicsTooHigh(t *testing.T) {
	res := SolveInverseKinematics(legs.DefaultDimensions(), Params{TZ: 2}, DefaultFlags())

	assert.Equal(t, "Failure: No Support.", res.Message.Subject)
	assert.Equal(t, reasonTooManyLegsOff+"\n", res.Message.Body)
	assert.Equal(t, legs.Positions[:4], res.LegPositionsOffGround)
}

func TestFindTwoPivotPoints(t *testing.T) {
	current := []math3d.Vector{
		math3d.NamedVector(1, 0, 0, "rightMiddle-footTipPoint", "0-3"),
		math3d.NamedVector(2, 0, 0, "rightFront-femurPoint", "1-2"),
		math3d.NamedVector(3, 0, 0, "leftFront-footTipPoint", "2-3"),
		math3d.NamedVector(4, 0, 0, "leftMiddle-footTipPoint", "3-3"),
	}

	targets := []math3d.Vector{
		math3d.NamedVector(10, 0, 0, "rightMiddle-footTipPoint", "0-3"),
		math3d.NamedVector(20, 0, 0, "rightFront-footTipPoint", "1-3"),
		math3d.NamedVector(30, 0, 0, "leftFront-footTipPoint", "2-3"),
		math3d.NamedVector(40, 0, 0, "leftMiddle-footTipPoint", "3-3"),
	}

	p1, p2, ok := findTwoPivotPoints(current, targets, nil)
	require.True(t, ok)
	assert.Equal(t, pivot{current[0], targets[0]}, p1)
	assert.Equal(t, pivot{current[2], targets[2]}, p2)

	// Legs off the ground can't be pivots.
	p1, p2, ok = findTwoPivotPoints(current, targets, []legs.Position{legs.RightMiddle})
	require.True(t, ok)
	assert.Equal(t, pivot{current[2], targets[2]}, p1)
	assert.Equal(t, pivot{current[3], targets[3]}, p2)

	_, _, ok = findTwoPivotPoints(current, targets, []legs.Position{legs.RightMiddle, legs.LeftFront})
	assert.False(t, ok)
}

func TestRotateShiftGivenPivots(t *testing.T) {
	res := SolveInverseKinematics(legs.DefaultDimensions(), Params{HipStance: 25}, DefaultFlags())
	require.True(t, res.ObtainedSolution)

	h := res.Hexapod
	a := h.Legs[legs.RightMiddle].FootTipPoint()
	b := h.Legs[legs.LeftMiddle].FootTipPoint()

	// Move the targets a quarter turn around, and up the Y axis.
	m := math3d.RotZ(90)
	p1 := pivot{current: a, target: a.CloneTrot(m).CloneShift(0, 50, 0)}
	p2 := pivot{current: b, target: b.CloneTrot(m).CloneShift(0, 50, 0)}

	moved := rotateShiftGivenPivots(h, p1, p2)
	for _, p := range []pivot{p1, p2} {
		pos, ok := positionOfPoint(p.current)
		require.True(t, ok)

		foot := moved.Legs[pos].FootTipPoint()
		assert.InDelta(t, 0.0, foot.Sub(p.target.Vector).Norm(), 1e-4, pos.String())
	}

	assert.InDelta(t, 50.0, moved.Body.COG.Y, 1e-4)
	assert.InDelta(t, 1.0, moved.LocalAxes.X.Y, 1e-4)
}
