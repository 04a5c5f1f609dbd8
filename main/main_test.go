package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/adammck/hexapod-kinematics/gait"
	"github.com/adammck/hexapod-kinematics/legs"
)

func run(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer

	app := newApp()
	app.Writer = &buf
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"hexapod"}, args...))
	return buf.String(), err
}

func TestIKCommand(t *testing.T) {
	out, err := run(t, "ik", "--hip-stance", "25", "--json")
	require.NoError(t, err)

	var res struct {
		ObtainedSolution bool      `json:"obtainedSolution"`
		Pose             legs.Pose `json:"pose"`
		Message          struct {
			Kind string `json:"kind"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.ObtainedSolution)
	assert.Equal(t, "success", res.Message.Kind)
	assert.InDelta(t, -25.0, res.Pose[legs.RightFront].Alpha, 1e-4)
}

func TestIKCommandFailure(t *testing.T) {
	out, err := run(t, "ik", "--tz", "-1.5")
	assert.Error(t, err)
	assert.Contains(t, out, "Failure: Bad Point.")
}

func TestIKCommandTable(t *testing.T) {
	out, err := run(t, "ik", "--hip-stance", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "All legs are on the floor.")
	assert.Contains(t, out, "LEG")
	assert.Contains(t, out, "leftBack")
}

func TestPoseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pose.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"leftFront": {"beta": 30}}`), 0o600))

	out, err := run(t, "pose", "--pose", path, "--json")
	require.NoError(t, err)

	var res poseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.FoundSolution)
	assert.NotContains(t, res.LegPositionsOnGround, legs.LeftFront)
	assert.InDelta(t, 100.0, res.DistanceFromGround, 1e-4)
	assert.Contains(t, res.Points, "leftFront-footTipPoint")
}

func TestPoseCommandDefault(t *testing.T) {
	out, err := run(t, "pose")
	require.NoError(t, err)
	assert.Contains(t, out, "Stable orientation found.")
	assert.Contains(t, out, "Distance from ground: 100.00")
}

func TestPoseCommandPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "pose.png")
	out, err := run(t, "pose", "--plot", plot)
	require.NoError(t, err)
	assert.Contains(t, out, "Stable orientation found.")

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestWalkCommand(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "walk.png")
	out, err := run(t, "walk", "--gait", "ripple", "--mode", "rotating", "--plot", plot)
	require.NoError(t, err)

	var seq map[string]gait.LegSequence
	require.NoError(t, json.Unmarshal([]byte(out), &seq))
	assert.Len(t, seq["rightBack"].Beta, 30)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestWalkCommandBadGait(t *testing.T) {
	_, err := run(t, "walk", "--gait", "gallop")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexapod.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ik": {"hipStance": 25, "tz": "2"}}`), 0o600))

	// Too high to stand, unless the flag brings it back down.
	_, err := run(t, "--config", path, "ik")
	assert.Error(t, err)

	_, err = run(t, "--config", path, "ik", "--tz", "0")
	assert.NoError(t, err)
}
