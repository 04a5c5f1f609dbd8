package gait

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/adammck/hexapod-kinematics/legs"
)

// GaitType is the order in which the legs are lifted.
type GaitType int

const (
	// Tripod lifts three legs at a time.
	Tripod GaitType = iota

	// Ripple lifts one leg at a time, each a phase behind the last.
	Ripple
)

func (g GaitType) String() string {
	switch g {
	case Tripod:
		return "tripod"
	case Ripple:
		return "ripple"
	default:
		return fmt.Sprintf("GaitType(%d)", int(g))
	}
}

func ParseGaitType(s string) (GaitType, error) {
	switch s {
	case "tripod":
		return Tripod, nil
	case "ripple":
		return Ripple, nil
	}

	return 0, errors.Errorf("invalid gait type: %q", s)
}

// WalkMode is which way the hips swing.
type WalkMode int

const (
	Walking WalkMode = iota
	Rotating
)

func (m WalkMode) String() string {
	switch m {
	case Walking:
		return "walking"
	case Rotating:
		return "rotating"
	default:
		return fmt.Sprintf("WalkMode(%d)", int(m))
	}
}

func ParseWalkMode(s string) (WalkMode, error) {
	switch s {
	case "walking":
		return Walking, nil
	case "rotating":
		return Rotating, nil
	}

	return 0, errors.Errorf("invalid walk mode: %q", s)
}

// LegSequence is the angles of one leg at each tick of a gait cycle.
type LegSequence struct {
	Alpha []float64 `json:"alpha"`
	Beta  []float64 `json:"beta"`
	Gamma []float64 `json:"gamma"`
}

// Sequence is a complete gait cycle for all six legs. The cycle loops: the
// frame after the last is the first.
type Sequence struct {
	legs   [legs.NumLegs]LegSequence
	length int
}

func newSequence(ls [legs.NumLegs]LegSequence) Sequence {
	return Sequence{
		legs:   ls,
		length: len(ls[0].Alpha),
	}
}

// Length returns the number of ticks necessary to complete a full cycle of the
// gait.
func (s Sequence) Length() int {
	return s.length
}

// Leg returns the sequence of a single leg.
func (s Sequence) Leg(pos legs.Position) LegSequence {
	return s.legs[pos]
}

// Frame returns the angles of the given leg at tick n, wrapping around at the
// end of the cycle. An empty sequence has only zero frames.
func (s Sequence) Frame(pos legs.Position, n int) legs.LegPose {
	if s.length == 0 {
		return legs.LegPose{}
	}

	ls := s.legs[pos]
	n %= s.length
	if n < 0 {
		n += s.length
	}

	return legs.LegPose{
		Alpha: ls.Alpha[n],
		Beta:  ls.Beta[n],
		Gamma: ls.Gamma[n],
	}
}

// Pose returns the angles of every leg at tick n.
func (s Sequence) Pose(n int) legs.Pose {
	var p legs.Pose
	for _, pos := range legs.Positions {
		p[pos] = s.Frame(pos, n)
	}
	return p
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	m := make(map[string]LegSequence, legs.NumLegs)
	for _, pos := range legs.Positions {
		m[pos.String()] = s.legs[pos]
	}
	return json.Marshal(m)
}

// BuildSequence returns n equal increments from start, the last of which is
// start+delta. The start value itself isn't included.
func BuildSequence(start float64, delta float64, n int) []float64 {
	if n < 1 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start + delta
		return out
	}

	return floats.Span(out, start+delta/float64(n), start+delta)
}

// fill returns n copies of v.
func fill(v float64, n int) []float64 {
	out := make([]float64, n)
	floats.AddConst(v, out)
	return out
}

func reversed(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

func concat(parts ...[]float64) []float64 {
	var out []float64
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
