package legs

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// LegDimensions are the segment lengths of a single leg, proximal to distal.
type LegDimensions struct {
	Coxia float64 `json:"coxia"`
	Femur float64 `json:"femur"`
	Tibia float64 `json:"tibia"`
}

// BodyDimensions describe the shape of the body hexagon.
//
//	    |-f-|
//	    *---*---*--------   f: front
//	   /    |    \     |    s: side
//	  /     |     \    s    m: middle
//	 /      |      \   |
//	*------cog------* ---
//	 \      |      /|
//	  \     |     / |
//	   *---*---*    |
//	        |       |
//	        |---m---|
type BodyDimensions struct {
	Front  float64 `json:"front"`
	Middle float64 `json:"middle"`
	Side   float64 `json:"side"`
}

// Dimensions is everything needed to build a hexapod. All six legs share the
// same LegDimensions.
type Dimensions struct {
	BodyDimensions
	LegDimensions
}

// DefaultDimensions returns dimensions with every length set to 100.
func DefaultDimensions() Dimensions {
	return Dimensions{
		BodyDimensions: BodyDimensions{Front: 100, Middle: 100, Side: 100},
		LegDimensions:  LegDimensions{Coxia: 100, Femur: 100, Tibia: 100},
	}
}

// Validate returns an error describing every length which is negative or not
// a finite number, or nil if they're all fine.
func (d Dimensions) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"front", d.Front},
		{"middle", d.Middle},
		{"side", d.Side},
		{"coxia", d.Coxia},
		{"femur", d.Femur},
		{"tibia", d.Tibia},
	}

	var err error
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			err = multierr.Append(err, errors.Errorf("%s: not a finite number", f.name))
		} else if f.val < 0 {
			err = multierr.Append(err, errors.Errorf("%s: must not be negative, got %v", f.name, f.val))
		}
	}

	return err
}
