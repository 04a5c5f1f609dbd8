package gait

import (
	"github.com/adammck/hexapod-kinematics/legs"
)

// Legs which lift in the first half of a tripod cycle. The others lift in the
// second half.
var tripodGroupA = [legs.NumLegs]bool{
	legs.LeftFront:   true,
	legs.RightMiddle: true,
	legs.LeftBack:    true,
}

// tripodLegSequence returns 4n ticks. The hip sweeps across 2*hipSwing and back
// again, while the femur is lifted and lowered over the first half of the cycle
// for group A, or the second half for group B. A resting foot holds the first
// lifted frame.
func tripodLegSequence(start legs.LegPose, liftSwing float64, hipSwing float64, n int, groupA bool) LegSequence {
	forward := BuildSequence(start.Alpha-hipSwing, 2*hipSwing, 2*n)
	betaLift := BuildSequence(start.Beta, liftSwing, n)
	gammaLift := BuildSequence(start.Gamma, -liftSwing/2, n)

	betaRest := fill(betaLift[0], 2*n)
	gammaRest := fill(gammaLift[0], 2*n)

	if groupA {
		return LegSequence{
			Alpha: concat(forward, reversed(forward)),
			Beta:  concat(betaLift, reversed(betaLift), betaRest),
			Gamma: concat(gammaLift, reversed(gammaLift), gammaRest),
		}
	}

	return LegSequence{
		Alpha: concat(reversed(forward), forward),
		Beta:  concat(betaRest, betaLift, reversed(betaLift)),
		Gamma: concat(gammaRest, gammaLift, reversed(gammaLift)),
	}
}
