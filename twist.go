package hexapod

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
	"github.com/adammck/hexapod-kinematics/utils"
)

// SimpleTwist returns the rotation about the Z axis needed when every leg on
// the ground has the same alpha, and touches the ground with the same kind of
// point. Otherwise it returns zero.
func SimpleTwist(ground []legs.Linkage) float64 {
	if len(ground) == 0 {
		return 0
	}

	first := ground[0]

	sameAlpha := lo.EveryBy(ground, func(l legs.Linkage) bool {
		return l.Pose.Alpha == first.Pose.Alpha
	})

	if !sameAlpha {
		return 0
	}

	pt := first.GroundContactPointType()
	samePoint := lo.EveryBy(ground, func(l legs.Linkage) bool {
		return l.GroundContactPointType() == pt
	})

	if !samePoint {
		return 0
	}

	switch pt {
	case legs.BodyContactPoint, legs.CoxiaPoint:
		return 0

	case legs.FemurPoint:
		// The body is lying on the ground.
		if first.BodyContactPoint().Z == first.FemurPoint().Z {
			return 0
		}
	}

	return -first.Pose.Alpha
}

// MightTwist returns false if the hexapod certainly won't twist. That's the
// case unless at least three legs which touch the ground with their foot tips
// have alphas of the same (non-zero) sign.
func MightTwist(ground []legs.Linkage) bool {
	pos, neg := 0, 0

	for _, l := range ground {
		if l.GroundContactPointType() != legs.FootTipPoint || l.Pose.Alpha == 0 {
			continue
		}

		if l.Pose.Alpha > 0 {
			pos++
		} else {
			neg++
		}
	}

	return pos >= 3 || neg >= 3
}

// ComplexTwist returns the rotation about the Z axis which moves the first
// foot tip in current onto the azimuth of the same leg's foot tip in defaults,
// which are the ground contact points of a hexapod in the default pose. It
// returns zero if no current point is a foot tip.
func ComplexTwist(current []math3d.Vector, defaults [legs.NumLegs]math3d.Vector) float64 {
	for _, p := range current {
		name, kind, ok := strings.Cut(p.Name, "-")
		if !ok || kind != legs.FootTipPoint.String() {
			continue
		}

		pos, err := legs.ParsePosition(name)
		if err != nil {
			continue
		}

		d := defaults[pos]
		return utils.Deg(math.Atan2(d.Y, d.X) - math.Atan2(p.Y, p.X))
	}

	return 0
}
