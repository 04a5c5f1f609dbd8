package ik

import (
	"github.com/samber/lo"

	"github.com/adammck/hexapod-kinematics/legs"
)

const (
	reasonMightBeStableLess = "Might be stable.\nLess than three known legs are off the ground."
	reasonTooManyLegsOff    = "Definitely Unstable.\nToo many legs are off the floor."
	reasonRightLegsOff      = "Definitely Unstable.\nAll right legs are off the floor."
	reasonLeftLegsOff       = "Definitely Unstable.\nAll left legs are off the floor."
	reasonMightBeStableMore = "Might be stable.\nThree known legs are off the ground.\nOne is on the opposite side of the other two."
)

// CheckSupport decides, from the legs which won't reach the ground alone,
// whether the hexapod is definitely unstable. A false result only means that
// it might be stable.
func CheckSupport(offGround []legs.Position) (bool, string) {
	if len(offGround) < 3 {
		return false, reasonMightBeStableLess
	}

	if len(offGround) >= 4 {
		return true, reasonTooManyLegsOff
	}

	if lo.EveryBy(offGround, func(p legs.Position) bool { return !p.IsLeft() }) {
		return true, reasonRightLegsOff
	}

	if lo.EveryBy(offGround, legs.Position.IsLeft) {
		return true, reasonLeftLegsOff
	}

	return false, reasonMightBeStableMore
}
