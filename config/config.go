// Package config loads the dimensions and parameters shared by the CLI
// commands.
package config

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/gait"
	"github.com/adammck/hexapod-kinematics/ik"
	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/orient"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "config",
})

// Solver controls how forward kinematics finds the ground.
type Solver struct {
	AssumeKnownGroundPoints bool `json:"assumeKnownGroundPoints"`
	WontRotate              bool `json:"wontRotate"`
	Parallel                bool `json:"parallel"`
	Shuffle                 bool `json:"shuffle"`

	// Seeds the shuffle, so that it's repeatable. Unset means a different
	// order every time.
	Seed *int64 `json:"seed,omitempty"`
}

type Config struct {
	Dimensions legs.Dimensions `json:"dimensions"`
	IK         ik.Params       `json:"ik"`
	Walk       gait.Params     `json:"walk"`
	Solver     Solver          `json:"solver"`
}

func Default() Config {
	return Config{
		Dimensions: legs.DefaultDimensions(),
		Walk:       gait.DefaultParams(),
	}
}

// Load reads a JSON config file. Anything missing from the file keeps its
// default value. Numbers may be given as strings.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}

	c, err := Decode(raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "in config %s", path)
	}

	log.WithField("path", path).Debug("loaded config")
	return c, nil
}

// Decode applies raw values over the defaults, and validates the result.
func Decode(raw map[string]interface{}) (Config, error) {
	c := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &c,
		Squash:           true,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	return multierr.Combine(
		errors.Wrap(c.Dimensions.Validate(), "dimensions"),
		errors.Wrap(c.Walk.Validate(), "walk"),
	)
}

// HexapodFlags returns the flags to build a VirtualHexapod with.
func (c Config) HexapodFlags() hexapod.Flags {
	return hexapod.Flags{
		AssumeKnownGroundPoints: c.Solver.AssumeKnownGroundPoints,
		WontRotate:              c.Solver.WontRotate,
		Orient:                  c.Solver.orientOptions(),
	}
}

func (s Solver) orientOptions() orient.Options {
	opts := orient.Options{
		Shuffle:  s.Shuffle,
		Parallel: s.Parallel,
	}

	if s.Shuffle && s.Seed != nil {
		opts.Rand = rand.New(rand.NewSource(*s.Seed))
	}

	return opts
}
