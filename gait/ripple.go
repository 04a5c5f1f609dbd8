package gait

import (
	"github.com/adammck/hexapod-kinematics/legs"
)

const ripplePhases = 6

// Which phase each leg starts the cycle in.
var rippleOffsets = [legs.NumLegs]int{
	legs.LeftBack:    0,
	legs.RightFront:  1,
	legs.LeftMiddle:  2,
	legs.RightBack:   3,
	legs.LeftFront:   4,
	legs.RightMiddle: 5,
}

// rippleLegSequence returns 6n ticks. The leg lifts and swings forwards over
// two phases, then swings back over four with its foot resting on the first
// lifted frame. The phases are rotated left by offset, so that no two legs
// lift at once.
func rippleLegSequence(start legs.LegPose, liftSwing float64, hipSwing float64, n int, offset int) LegSequence {
	backStep := hipSwing / 2

	alpha := [ripplePhases][]float64{
		BuildSequence(start.Alpha-hipSwing, hipSwing, n),
		BuildSequence(start.Alpha, hipSwing, n),
		BuildSequence(start.Alpha+hipSwing, -backStep, n),
		BuildSequence(start.Alpha+backStep, -backStep, n),
		BuildSequence(start.Alpha, -backStep, n),
		BuildSequence(start.Alpha-backStep, -backStep, n),
	}

	betaLift := BuildSequence(start.Beta, liftSwing, n)
	gammaLift := BuildSequence(start.Gamma, -liftSwing/2, n)

	beta := [ripplePhases][]float64{betaLift, reversed(betaLift)}
	gamma := [ripplePhases][]float64{gammaLift, reversed(gammaLift)}

	for i := 2; i < ripplePhases; i++ {
		beta[i] = fill(betaLift[0], n)
		gamma[i] = fill(gammaLift[0], n)
	}

	return LegSequence{
		Alpha: rotatePhases(alpha, offset),
		Beta:  rotatePhases(beta, offset),
		Gamma: rotatePhases(gamma, offset),
	}
}

func rotatePhases(phases [ripplePhases][]float64, offset int) []float64 {
	var out []float64
	for i := 0; i < ripplePhases; i++ {
		out = append(out, phases[(i+offset)%ripplePhases]...)
	}
	return out
}
