package ik

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/utils"
)

func TestLegSolver(t *testing.T) {
	type example struct {
		coxia, femur, tibia float64
		summa, rho          float64

		state LegState
		beta  float64
		gamma float64
	}

	data := []example{
		// Femur flat, tibia straight down.
		{100, 100, 100, math.Hypot(200, 100), utils.Deg(math.Atan2(100, 200)), TargetReached, 0, 0},

		// Too far away; stretch out towards it.
		{100, 100, 100, 500, 0, TargetNotReached, 0, 90},

		{0, 100, 10, 10, 90, FemurTooLong, 0, 0},
		{0, 10, 100, 10, 90, TibiaTooLong, 0, 0},

		// Target is above the femur joint.
		{0, 100, 100, 50, -80, Blocked, 0, 0},
	}

	for i, eg := range data {
		s := NewLegSolver(legs.RightFront).Solve(eg.coxia, eg.femur, eg.tibia, eg.summa, eg.rho)
		require.Equal(t, eg.state, s.State, "example %d", i+1)

		if s.ObtainedSolution() {
			assert.InDelta(t, eg.beta, s.Beta, 1e-6, "example %d", i+1)
			assert.InDelta(t, eg.gamma, s.Gamma, 1e-6, "example %d", i+1)
		}
	}
}

func TestLegStates(t *testing.T) {
	type example struct {
		state    LegState
		obtained bool
		reached  bool
		err      error
	}

	data := []example{
		{Initialized, false, false, nil},
		{TargetReached, true, true, nil},
		{TargetNotReached, true, false, nil},
		{Blocked, false, true, ErrBlocked},
		{FemurTooLong, false, false, ErrFemurTooLong},
		{TibiaTooLong, false, false, ErrTibiaTooLong},
	}

	for _, eg := range data {
		assert.Equal(t, eg.obtained, eg.state.ObtainedSolution(), eg.state.String())
		assert.Equal(t, eg.reached, eg.state.ReachedTarget(), eg.state.String())
		assert.Equal(t, eg.err, eg.state.Err(), eg.state.String())
	}
}

func TestLegSolverMessage(t *testing.T) {
	s := NewLegSolver(legs.LeftBack)
	assert.Equal(t, "Haven't solved anything yet. (leftBack)", s.Message())

	s.Solve(0, 100, 10, 10, 90)
	assert.Equal(t, "Failure. Femur length too long. (leftBack)", s.Message())
}
