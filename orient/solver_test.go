package orient

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/hexapod-kinematics/legs"
)

func buildLegs(dims legs.Dimensions, pose legs.Pose) [legs.NumLegs]legs.Linkage {
	body := legs.NewHexagon(dims.BodyDimensions)
	return legs.BuildLegs(body.Vertices, pose, dims.LegDimensions)
}

func assertRestingOnFeet(t *testing.T, s Solution) {
	assert.InDelta(t, 100.0, s.Height, 1e-6)
	assert.InDelta(t, 0.0, s.Normal.X, 1e-9)
	assert.InDelta(t, 0.0, s.Normal.Y, 1e-9)
	assert.InDelta(t, 1.0, s.Normal.Z, 1e-9)
	assert.Equal(t, legs.Positions[:], s.GroundPositions())
}

func TestSolveSpecificDefaultPose(t *testing.T) {
	ls := buildLegs(legs.DefaultDimensions(), legs.Pose{})

	s, ok := SolveSpecific(ls)
	require.True(t, ok)
	assertRestingOnFeet(t, s)
}

func TestSolveGeneralDefaultPose(t *testing.T) {
	ls := buildLegs(legs.DefaultDimensions(), legs.Pose{})

	s, ok := SolveGeneral(ls, Options{})
	require.True(t, ok)
	assertRestingOnFeet(t, s)
}

func TestSolveGeneralParallel(t *testing.T) {
	pose := legs.Pose{}
	pose[legs.RightMiddle].Beta = 30
	pose[legs.LeftFront].Gamma = -20
	pose[legs.LeftBack].Alpha = 15
	ls := buildLegs(legs.DefaultDimensions(), pose)

	seq, ok := SolveGeneral(ls, Options{})
	require.True(t, ok)

	par, ok := SolveGeneral(ls, Options{Parallel: true})
	require.True(t, ok)

	assert.Equal(t, seq, par)

	// The raised leg is not on the ground.
	assert.NotContains(t, seq.GroundPositions(), legs.RightMiddle)
}

func TestSolveGeneralShuffle(t *testing.T) {
	ls := buildLegs(legs.DefaultDimensions(), legs.Pose{})

	a, ok := SolveGeneral(ls, Options{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	require.True(t, ok)

	b, ok := SolveGeneral(ls, Options{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	require.True(t, ok)

	assert.Equal(t, a, b)

	// The package-level source works too.
	_, ok = SolveGeneral(ls, Options{Shuffle: true})
	assert.True(t, ok)

	// Shuffling works on a copy.
	assert.Equal(t, Trio{0, 1, 3}, SomeLegTrios[0])
}

func TestSolveGeneralFlatFallback(t *testing.T) {
	// Every leg points straight up, so the body sits on its coxia joints.
	ls := buildLegs(legs.DefaultDimensions(), legs.Uniform(legs.LegPose{Beta: 90}))

	s, ok := SolveGeneral(ls, Options{})
	require.True(t, ok)
	assert.Equal(t, 0.0, s.Height)
	assert.InDelta(t, 1.0, s.Normal.Z, 1e-9)
	assert.Len(t, s.GroundLegs, 6)

	s, ok = SolveSpecific(ls)
	require.True(t, ok)
	assert.Equal(t, 0.0, s.Height)
}

func TestSolveNoSolution(t *testing.T) {
	// With no size at all, every point is at the origin.
	ls := buildLegs(legs.Dimensions{}, legs.Pose{})

	_, ok := SolveSpecific(ls)
	assert.False(t, ok)

	_, ok = SolveGeneral(ls, Options{})
	assert.False(t, ok)

	_, ok = SolveGeneral(ls, Options{Parallel: true})
	assert.False(t, ok)
}
