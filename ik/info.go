package ik

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

var (
	ErrNoSupport       = errors.New("no support")
	ErrBadPoint        = errors.New("bad point")
	ErrBadLeg          = errors.New("bad leg")
	ErrAlphaNotInRange = errors.New("alpha not in range")
	ErrAngleNotInRange = errors.New("angle not in range")

	// Leg failures are all bad legs.
	ErrBlocked      = errors.WithMessage(ErrBadLeg, "blocked by the ground")
	ErrFemurTooLong = errors.WithMessage(ErrBadLeg, "femur too long")
	ErrTibiaTooLong = errors.WithMessage(ErrBadLeg, "tibia too long")
)

// Kind is the category of an IK outcome.
type Kind int

const (
	KindInitialized Kind = iota
	KindSuccess
	KindNoSupport
	KindBadPoint
	KindBadLeg
	KindAlphaNotInRange
	KindAngleNotInRange
)

func (k Kind) String() string {
	switch k {
	case KindInitialized:
		return "initialized"
	case KindSuccess:
		return "success"
	case KindNoSupport:
		return "noSupport"
	case KindBadPoint:
		return "badPoint"
	case KindBadLeg:
		return "badLeg"
	case KindAlphaNotInRange:
		return "alphaNotInRange"
	case KindAngleNotInRange:
		return "angleNotInRange"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Message is a human-readable explanation of an IK outcome.
type Message struct {
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	err error
}

func (m Message) String() string {
	return m.Subject + " " + m.Body
}

// Err returns nil for success, or an error matching one of the Err* sentinels.
func (m Message) Err() error {
	return m.err
}

func bulletPoints(positions []legs.Position) string {
	var sb strings.Builder
	for _, p := range positions {
		fmt.Fprintf(&sb, " - %s\n", p)
	}
	return sb.String()
}

var initializedMessage = Message{
	Kind:    KindInitialized,
	Subject: "Initialized",
	Body:    "Has not solved for anything yet.",
}

var successMessage = Message{
	Kind:    KindSuccess,
	Subject: "Success.",
	Body:    "All legs are on the floor.",
}

func successLegsOnAirMessage(offGround []legs.Position) Message {
	return Message{
		Kind:    KindSuccess,
		Subject: "Success.",
		Body:    "But some legs won't reach target points on the ground:\n" + bulletPoints(offGround),
	}
}

func noSupportMessage(reason string) Message {
	return Message{
		Kind:    KindNoSupport,
		Subject: "Failure: No Support.",
		Body:    reason + "\n",
		err:     errors.WithMessage(ErrNoSupport, reason),
	}
}

func badPointMessage(p math3d.Vector) Message {
	return Message{
		Kind:    KindBadPoint,
		Subject: "Failure: Bad Point.",
		Body:    "At least one point would be shoved to the ground:\n" + p.Markdown(),
		err:     errors.WithMessagef(ErrBadPoint, "%s is below the ground", p.Name),
	}
}

func badLegMessage(ls *LegSolver) Message {
	return Message{
		Kind:    KindBadLeg,
		Subject: "Failure: Bad leg.",
		Body:    ls.Message(),
		err:     errors.WithMessage(ls.State.Err(), ls.Position.String()),
	}
}

func alphaNotInRangeMessage(pos legs.Position, alpha float64, max float64) Message {
	return Message{
		Kind:    KindAlphaNotInRange,
		Subject: "Failure: Alpha not within range",
		Body:    fmt.Sprintf("The alpha (%v) computed for %s leg is not within -%v < alpha < %v", alpha, pos, max, max),
		err:     errors.WithMessagef(ErrAlphaNotInRange, "%s: %v", pos, alpha),
	}
}

func angleNotInRangeMessage(pos legs.Position, name string, angle float64, max float64) Message {
	return Message{
		Kind:    KindAngleNotInRange,
		Subject: "Failure: Angle not within range",
		Body:    fmt.Sprintf("The %s (%v) computed for %s leg is not within -%v < %s < %v", name, angle, pos, max, name, max),
		err:     errors.WithMessagef(ErrAngleNotInRange, "%s %s: %v", pos, name, angle),
	}
}
