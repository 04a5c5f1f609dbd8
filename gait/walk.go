package gait

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/adammck/hexapod-kinematics/ik"
	"github.com/adammck/hexapod-kinematics/legs"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

// Params describe the stance to walk from, and the size of each step. The
// body can be shifted and tilted, but not slid sideways or twisted.
type Params struct {
	TX        float64 `json:"tx"`
	TZ        float64 `json:"tz"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	HipStance float64 `json:"hipStance"`
	LegStance float64 `json:"legStance"`

	// Ticks per phase of the cycle.
	StepCount int `json:"stepCount"`

	// How far (in degrees) each hip swings either side of its stance. The
	// sign is ignored; the walk mode decides which way each hip swings.
	HipSwing float64 `json:"hipSwing"`

	// How far (in degrees) each femur lifts. The sign is ignored.
	LiftSwing float64 `json:"liftSwing"`
}

func DefaultParams() Params {
	return Params{
		HipStance: 25,
		StepCount: 5,
		HipSwing:  25,
		LiftSwing: 40,
	}
}

func (p Params) Validate() error {
	var err error

	if p.StepCount < 1 {
		err = multierr.Append(err, errors.Errorf("stepCount must be positive, got %d", p.StepCount))
	}

	if !finite(p.HipSwing) {
		err = multierr.Append(err, errors.Errorf("hipSwing must be finite, got %v", p.HipSwing))
	}

	if !finite(p.LiftSwing) {
		err = multierr.Append(err, errors.Errorf("liftSwing must be finite, got %v", p.LiftSwing))
	}

	return err
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Params) ikParams() ik.Params {
	return ik.Params{
		TX:        p.TX,
		TZ:        p.TZ,
		RX:        p.RX,
		RY:        p.RY,
		HipStance: p.HipStance,
		LegStance: p.LegStance,
	}
}

// hipSwings returns the signed swing of each hip. When walking, the legs on
// each side swing opposite ways so that the body moves forwards; when
// rotating, they all swing the same way.
func hipSwings(h float64, mode WalkMode) [legs.NumLegs]float64 {
	if mode == Rotating {
		return [legs.NumLegs]float64{h, h, h, h, h, h}
	}

	var s [legs.NumLegs]float64
	s[legs.LeftFront] = -h
	s[legs.RightMiddle] = h
	s[legs.LeftBack] = -h
	s[legs.RightFront] = h
	s[legs.LeftMiddle] = -h
	s[legs.RightBack] = h
	return s
}

// WalkSequence returns one cycle of the given gait, starting from the stance
// described by p. The second return value is false if p is invalid, or if
// that stance can't be reached with every foot on the ground.
func WalkSequence(dims legs.Dimensions, p Params, g GaitType, mode WalkMode) (Sequence, bool) {
	if err := p.Validate(); err != nil {
		log.WithError(err).Warn("invalid walk params")
		return Sequence{}, false
	}

	res := ik.SolveInverseKinematics(dims, p.ikParams(), ik.DefaultFlags())
	if !res.ObtainedSolution || len(res.LegPositionsOffGround) > 0 {
		log.WithFields(logrus.Fields{
			"subject": res.Message.Subject,
			"off":     res.LegPositionsOffGround,
		}).Debug("no stance to walk from")
		return Sequence{}, false
	}

	liftSwing := math.Abs(p.LiftSwing)
	swings := hipSwings(math.Abs(p.HipSwing), mode)

	var ls [legs.NumLegs]LegSequence
	for _, pos := range legs.Positions {
		start := res.Pose[pos]

		switch g {
		case Ripple:
			ls[pos] = rippleLegSequence(start, liftSwing, swings[pos], p.StepCount, rippleOffsets[pos])
		default:
			ls[pos] = tripodLegSequence(start, liftSwing, swings[pos], p.StepCount, tripodGroupA[pos])
		}
	}

	return newSequence(ls), true
}
