package legs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Position identifies one of the six leg mounts around the body. The numeric
// value doubles as the leg ID, and is also the index of the leg in every
// six-element array in this module.
//
//	    2           1
//	     \   head  /
//	      *---*---*
//	     /    |    \
//	3 --*----cog----*-- 0
//	     \    |    /
//	      *---*---*
//	     /         \
//	    4           5
type Position int

const (
	RightMiddle Position = iota
	RightFront
	LeftFront
	LeftMiddle
	LeftBack
	RightBack
)

const NumLegs = 6

// Positions lists every position in leg ID order.
var Positions = [NumLegs]Position{
	RightMiddle,
	RightFront,
	LeftFront,
	LeftMiddle,
	LeftBack,
	RightBack,
}

var positionNames = [NumLegs]string{
	"rightMiddle",
	"rightFront",
	"leftFront",
	"leftMiddle",
	"leftBack",
	"rightBack",
}

// The angle (in degrees) between the hexapod X axis and the local X axis of
// the leg mounted at each position.
var axisAngles = [NumLegs]float64{0, 45, 135, 180, 225, 315}

var isLeft = [NumLegs]bool{false, false, true, true, true, false}

// ParsePosition returns the position with the given name, e.g. "leftFront".
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}

	return 0, errors.Errorf("invalid leg position: %q", name)
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}

	return positionNames[p]
}

// Valid returns true if p is one of the six known positions.
func (p Position) Valid() bool {
	return p >= 0 && int(p) < NumLegs
}

// ID returns the numeric leg ID.
func (p Position) ID() int {
	return int(p)
}

// AxisAngle returns the fixed angle of the leg's local X axis.
func (p Position) AxisAngle() float64 {
	return axisAngles[p]
}

// IsLeft returns true for legs on the left side of the body.
func (p Position) IsLeft() bool {
	return isLeft[p]
}

func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.Errorf("invalid leg position: %d", int(p))
	}

	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}

	*p = pos
	return nil
}
