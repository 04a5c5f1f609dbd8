package legs

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// LegPose holds the three joint angles of one leg, in degrees.
//
// Alpha is the hip yaw, measured from the leg's local X axis. Beta is the
// pitch of the femur relative to the coxia. Gamma is the angle of the tibia
// away from the vertical of the femur joint.
type LegPose struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

func (lp LegPose) String() string {
	return fmt.Sprintf("{a=%0.2f b=%0.2f g=%0.2f}", lp.Alpha, lp.Beta, lp.Gamma)
}

// Pose is the joint angles of every leg, indexed by Position. It is encoded
// to JSON as an object keyed by position name.
type Pose [NumLegs]LegPose

// Uniform returns a pose in which every leg has the same angles.
func Uniform(lp LegPose) Pose {
	var p Pose
	for i := range p {
		p[i] = lp
	}
	return p
}

// AllAlphaZero returns true if no leg is rotated about its hip.
func (p Pose) AllAlphaZero() bool {
	for _, lp := range p {
		if lp.Alpha != 0 {
			return false
		}
	}
	return true
}

func (p Pose) MarshalJSON() ([]byte, error) {
	m := make(map[string]LegPose, NumLegs)
	for _, pos := range Positions {
		m[pos.String()] = p[pos]
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads a pose keyed by position name. Positions which are
// missing are left as they were.
func (p *Pose) UnmarshalJSON(data []byte) error {
	var m map[string]LegPose
	if err := json.Unmarshal(data, &m); err != nil {
		return errors.Wrap(err, "decoding pose")
	}

	for name, lp := range m {
		pos, err := ParsePosition(name)
		if err != nil {
			return err
		}
		p[pos] = lp
	}

	return nil
}
