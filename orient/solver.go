package orient

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/adammck/hexapod-kinematics/legs"
)

// Solution is how the body rests on the ground.
type Solution struct {
	Plane

	// The legs (in their unrotated form) which touch the ground.
	GroundLegs []legs.Linkage
}

// GroundPositions returns the positions of the legs on the ground.
func (s Solution) GroundPositions() []legs.Position {
	return lo.Map(s.GroundLegs, func(l legs.Linkage, _ int) legs.Position {
		return l.Position
	})
}

func newSolution(ls []legs.Linkage, pl Plane) Solution {
	return Solution{
		Plane:      pl,
		GroundLegs: FindLegsOnGround(ls, pl),
	}
}

// SolveSpecific finds the ground plane assuming that the lowest point of every
// leg is the one which might touch the ground. It is fast, but only correct
// when all of the legs can reach the ground.
func SolveSpecific(ls [legs.NumLegs]legs.Linkage) (Solution, bool) {
	var points [legs.NumLegs]r3.Vector
	for i, l := range ls {
		points[i] = l.MaybeGroundContactPoint().Vector
	}

	for _, trio := range legTrios(Options{}) {
		p0, p1, p2 := points[trio[0]], points[trio[1]], points[trio[2]]
		if !IsStable(p0, p1, p2) {
			continue
		}

		pl := PlaneThrough(p0, p1, p2)

		lower := false
		for _, id := range trio.Others() {
			if IsLower(points[id], pl, HeightTolerance) {
				lower = true
				break
			}
		}

		if lower {
			continue
		}

		log.WithFields(logrus.Fields{
			"trio":   trio,
			"height": pl.Height,
		}).Debug("found support trio")

		return newSolution(ls[:], pl), true
	}

	return Solution{}, false
}

// Options tweak the general solver.
type Options struct {
	// Shuffle the order in which SomeLegTrios are tried. The adjacent trios
	// are always tried last, in order.
	Shuffle bool

	// Source of randomness for Shuffle. If nil, a package-level source is
	// used.
	Rand *rand.Rand

	// Evaluate each trio in its own goroutine. The result is the same as the
	// sequential search.
	Parallel bool
}

// The three points of a leg which can touch the ground: coxia, femur and foot
// tip. Every combination of them across three legs, in lexicographic order.
var jointIndexTrios = func() [][3]legs.PointType {
	cs := combin.Cartesian([]int{3, 3, 3})
	out := make([][3]legs.PointType, len(cs))
	for i, c := range cs {
		for j := range c {
			out[i][j] = legs.PointType(c[j] + 1)
		}
	}
	return out
}()

// trioResult is the outcome of searching every joint combination of one trio.
type trioResult struct {
	plane    Plane
	found    bool
	fallback Plane
	hasFall  bool
}

// SolveGeneral finds the ground plane by brute force: for each trio of legs,
// and each combination of which joint of those legs touches the ground, check
// that the body is stable and that no other point is below the plane.
//
// A plane with a height of exactly zero (the body lying flat on the ground) is
// only returned if nothing else works.
func SolveGeneral(ls [legs.NumLegs]legs.Linkage, opts Options) (Solution, bool) {
	trios := legTrios(opts)

	results := make([]trioResult, len(trios))
	if opts.Parallel {
		var g errgroup.Group
		for i, trio := range trios {
			i, trio := i, trio
			g.Go(func() error {
				results[i] = searchTrio(ls, trio)
				return nil
			})
		}

		// Nothing returns an error.
		_ = g.Wait()

	} else {
		for i, trio := range trios {
			results[i] = searchTrio(ls, trio)
			if results[i].found {
				break
			}
		}
	}

	for i, r := range results {
		if r.found {
			log.WithFields(logrus.Fields{
				"trio":   trios[i],
				"height": r.plane.Height,
			}).Debug("found support trio")

			return newSolution(ls[:], r.plane), true
		}
	}

	for i, r := range results {
		if r.hasFall {
			log.WithField("trio", trios[i]).Debug("using flat fallback")
			return newSolution(ls[:], r.fallback), true
		}
	}

	return Solution{}, false
}

// legTrios returns SomeLegTrios (maybe shuffled) followed by AdjacentLegTrios,
// in a fresh slice.
func legTrios(opts Options) []Trio {
	some := make([]Trio, len(SomeLegTrios))
	copy(some, SomeLegTrios)

	if opts.Shuffle {
		if opts.Rand != nil {
			opts.Rand.Shuffle(len(some), func(i, j int) {
				some[i], some[j] = some[j], some[i]
			})
		} else {
			some = lo.Shuffle(some)
		}
	}

	return append(some, AdjacentLegTrios...)
}

// searchTrio tries every joint combination of one trio, stopping at the first
// which qualifies. The first flat fallback is recorded along the way.
func searchTrio(ls [legs.NumLegs]legs.Linkage, trio Trio) trioResult {
	var res trioResult
	others := trio.Others()

	for _, joints := range jointIndexTrios {
		p0 := ls[trio[0]].Points[joints[0]].Vector
		p1 := ls[trio[1]].Points[joints[1]].Vector
		p2 := ls[trio[2]].Points[joints[2]].Vector

		if !IsStable(p0, p1, p2) {
			continue
		}

		pl := PlaneThrough(p0, p1, p2)

		if sameLegIsLower(ls, trio, joints, pl) {
			continue
		}

		if otherLegIsLower(ls, others, pl) {
			continue
		}

		if pl.Height == 0 {
			if !res.hasFall {
				res.fallback = pl
				res.hasFall = true
			}
			continue
		}

		res.plane = pl
		res.found = true
		return res
	}

	return res
}

// sameLegIsLower returns true if any point of the three chosen legs, other than
// the chosen joint and the body contact point, is below the plane.
func sameLegIsLower(ls [legs.NumLegs]legs.Linkage, trio Trio, joints [3]legs.PointType, pl Plane) bool {
	for n, id := range trio {
		for pt := legs.CoxiaPoint; pt <= legs.FootTipPoint; pt++ {
			if pt == joints[n] {
				continue
			}

			if IsLower(ls[id].Points[pt].Vector, pl, HeightTolerance) {
				return true
			}
		}
	}

	return false
}

// otherLegIsLower returns true if any point of the other legs, other than the
// body contact point, is below the plane.
func otherLegIsLower(ls [legs.NumLegs]legs.Linkage, others [3]int, pl Plane) bool {
	for _, id := range others {
		for _, p := range ls[id].Points[legs.CoxiaPoint:] {
			if IsLower(p.Vector, pl, HeightTolerance) {
				return true
			}
		}
	}

	return false
}
