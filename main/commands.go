package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/config"
	"github.com/adammck/hexapod-kinematics/gait"
	"github.com/adammck/hexapod-kinematics/ik"
	"github.com/adammck/hexapod-kinematics/legs"
)

func loadConfig(c *cli.Context) (config.Config, error) {
	path := c.String(flagConfig)
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

type ikFlag struct {
	name  string
	usage string
	field func(*ik.Params) *float64
}

var ikFlagList = []ikFlag{
	{"tx", "shift along X, as a fraction of the middle length", func(p *ik.Params) *float64 { return &p.TX }},
	{"ty", "shift along Y, as a fraction of the side length", func(p *ik.Params) *float64 { return &p.TY }},
	{"tz", "shift along Z, as a fraction of the tibia length", func(p *ik.Params) *float64 { return &p.TZ }},
	{"rx", "rotation about X, in degrees", func(p *ik.Params) *float64 { return &p.RX }},
	{"ry", "rotation about Y, in degrees", func(p *ik.Params) *float64 { return &p.RY }},
	{"rz", "rotation about Z, in degrees", func(p *ik.Params) *float64 { return &p.RZ }},
	{"hip-stance", "alpha of the front and back legs in the start pose", func(p *ik.Params) *float64 { return &p.HipStance }},
	{"leg-stance", "beta (and negative gamma) in the start pose", func(p *ik.Params) *float64 { return &p.LegStance }},
}

func ikFlags() []cli.Flag {
	out := make([]cli.Flag, len(ikFlagList))
	for i, f := range ikFlagList {
		out[i] = &cli.Float64Flag{Name: f.name, Usage: f.usage}
	}
	return out
}

// ikParams returns the params from the config, overridden by any flags.
func ikParams(c *cli.Context, base ik.Params) ik.Params {
	p := base
	for _, f := range ikFlagList {
		if c.IsSet(f.name) {
			*f.field(&p) = c.Float64(f.name)
		}
	}
	return p
}

func ikCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	params := ikParams(c, cfg.IK)
	res := ik.SolveInverseKinematics(cfg.Dimensions, params, ik.DefaultFlags())

	w := c.App.Writer
	if c.Bool(flagJSON) {
		if err := writeJSON(w, newIKOutput(res)); err != nil {
			return err
		}
	} else {
		renderIKResult(w, res)
	}

	if err := res.Err(); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

type ikOutput struct {
	ObtainedSolution      bool            `json:"obtainedSolution"`
	Message               ik.Message      `json:"message"`
	Pose                  *legs.Pose      `json:"pose,omitempty"`
	LegPositionsOffGround []legs.Position `json:"legPositionsOffGround,omitempty"`
}

func newIKOutput(res ik.Result) ikOutput {
	return ikOutput{
		ObtainedSolution:      res.ObtainedSolution,
		Message:               res.Message,
		Pose:                  res.Pose,
		LegPositionsOffGround: res.LegPositionsOffGround,
	}
}

func readPose(path string) (legs.Pose, error) {
	if path == "" {
		return hexapod.DefaultPose, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return legs.Pose{}, errors.Wrap(err, "reading pose")
	}

	var p legs.Pose
	if err := json.Unmarshal(b, &p); err != nil {
		return legs.Pose{}, errors.Wrapf(err, "parsing pose %s", path)
	}

	return p, nil
}

func poseCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	pose, err := readPose(c.String(flagPose))
	if err != nil {
		return err
	}

	h := hexapod.New(cfg.Dimensions, pose, cfg.HexapodFlags())
	log.WithFields(logrus.Fields{
		"found":  h.FoundSolution,
		"ground": h.LegPositionsOnGround,
	}).Info("solved orientation")

	if path := c.String(flagPlot); path != "" {
		if err := plotHexapod(h, path); err != nil {
			return err
		}
	}

	w := c.App.Writer
	if c.Bool(flagJSON) {
		return writeJSON(w, newPoseOutput(h))
	}

	renderHexapod(w, h)
	return nil
}

type poseOutput struct {
	FoundSolution        bool             `json:"foundSolution"`
	Info                 hexapod.Info     `json:"info"`
	DistanceFromGround   float64          `json:"distanceFromGround"`
	LegPositionsOnGround []legs.Position  `json:"legPositionsOnGround"`
	Points               map[string]point `json:"points"`
}

// point is X, Y, Z.
type point [3]float64

func newPoseOutput(h *hexapod.VirtualHexapod) poseOutput {
	points := map[string]point{}
	for _, v := range h.Body.AllPoints() {
		points[v.Name] = point{v.X, v.Y, v.Z}
	}
	for _, l := range h.Legs {
		for _, v := range l.Points {
			points[v.Name] = point{v.X, v.Y, v.Z}
		}
	}

	return poseOutput{
		FoundSolution:        h.FoundSolution,
		Info:                 h.Info(),
		DistanceFromGround:   h.DistanceFromGround(),
		LegPositionsOnGround: h.LegPositionsOnGround,
		Points:               points,
	}
}

func walkCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	g, err := gait.ParseGaitType(c.String(flagGait))
	if err != nil {
		return err
	}

	mode, err := gait.ParseWalkMode(c.String(flagMode))
	if err != nil {
		return err
	}

	seq, ok := gait.WalkSequence(cfg.Dimensions, cfg.Walk, g, mode)
	if !ok {
		return cli.Exit("no stance to walk from: the pose is infeasible, or some legs are off the ground", 1)
	}

	log.WithFields(logrus.Fields{
		"gait":   g,
		"mode":   mode,
		"length": seq.Length(),
	}).Info("built walk sequence")

	if path := c.String(flagPlot); path != "" {
		if err := plotSequence(seq, fmt.Sprintf("%s gait (%s)", g, mode), path); err != nil {
			return err
		}
	}

	return writeJSON(c.App.Writer, seq)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "writing json")
}
