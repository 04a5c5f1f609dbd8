package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

const (
	flagConfig = "config"
	flagDebug  = "debug"
	flagJSON   = "json"
	flagPose   = "pose"
	flagGait   = "gait"
	flagMode   = "mode"
	flagPlot   = "plot"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hexapod",
		Usage: "solve the pose of a six-legged robot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "load dimensions and parameters from a JSON `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "log what the solvers are doing",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "ik",
				Usage:  "find the pose which moves the body without moving the feet",
				Flags:  append(ikFlags(), jsonFlag()),
				Action: ikCommand,
			},
			{
				Name:  "pose",
				Usage: "find how a hexapod in the given pose rests on the ground",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagPose,
						Usage: "read the pose from a JSON `FILE`, keyed by leg position",
					},
					&cli.StringFlag{
						Name:  flagPlot,
						Usage: "also draw the hexapod from above and from the side to a PNG `FILE`",
					},
					jsonFlag(),
				},
				Action: poseCommand,
			},
			{
				Name:  "walk",
				Usage: "print one cycle of a walking gait",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagGait,
						Value: "tripod",
						Usage: "tripod or ripple",
					},
					&cli.StringFlag{
						Name:  flagMode,
						Value: "walking",
						Usage: "walking or rotating",
					},
					&cli.StringFlag{
						Name:  flagPlot,
						Usage: "also draw the joint angles to a PNG `FILE`",
					},
				},
				Action: walkCommand,
			},
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  flagJSON,
		Usage: "print the result as JSON",
	}
}
