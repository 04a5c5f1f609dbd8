package main

import (
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/gait"
	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

type angleSeries struct {
	name string
	get  func(gait.LegSequence) []float64
}

var angles = []angleSeries{
	{"Alpha", func(ls gait.LegSequence) []float64 { return ls.Alpha }},
	{"Beta", func(ls gait.LegSequence) []float64 { return ls.Beta }},
	{"Gamma", func(ls gait.LegSequence) []float64 { return ls.Gamma }},
}

// plotSequence draws the angles of every leg over one cycle, one plot per
// joint stacked vertically, and writes them to a PNG.
func plotSequence(seq gait.Sequence, title string, path string) error {
	plots := make([][]*plot.Plot, len(angles))

	for i, a := range angles {
		p := plot.New()
		p.Title.Text = title + " - " + a.name
		p.X.Label.Text = "Tick"
		p.Y.Label.Text = "Degrees"

		for j, pos := range legs.Positions {
			vals := a.get(seq.Leg(pos))
			pts := make(plotter.XYs, len(vals))
			for k, v := range vals {
				pts[k] = plotter.XY{X: float64(k), Y: v}
			}

			line, err := plotter.NewLine(pts)
			if err != nil {
				return errors.Wrapf(err, "plotting %s of %s", a.name, pos)
			}
			line.Color = plotutil.Color(j)
			line.Width = vg.Points(1)
			p.Add(line)
			p.Legend.Add(pos.String(), line)
		}

		plots[i] = []*plot.Plot{p}
	}

	return savePNG(plots, 10*vg.Inch, 12*vg.Inch, path)
}

type view struct {
	name string
	axis string
	get  func(math3d.Vector) plotter.XY
}

var views = []view{
	{"Top", "Y", func(v math3d.Vector) plotter.XY { return plotter.XY{X: v.X, Y: v.Y} }},
	{"Side", "Z", func(v math3d.Vector) plotter.XY { return plotter.XY{X: v.X, Y: v.Z} }},
}

func (v view) xys(vs []math3d.Vector) plotter.XYs {
	pts := make(plotter.XYs, len(vs))
	for i, p := range vs {
		pts[i] = v.get(p)
	}
	return pts
}

// plotHexapod draws the body outline and legs from above and from the side,
// with the ground contact points and the shadow of the COG marked.
func plotHexapod(h *hexapod.VirtualHexapod, path string) error {
	row := make([]*plot.Plot, len(views))

	for i, v := range views {
		p := plot.New()
		p.Title.Text = v.name
		p.X.Label.Text = "X"
		p.Y.Label.Text = v.axis

		body, err := plotter.NewLine(v.xys(h.Body.ClosedPoints()))
		if err != nil {
			return errors.Wrapf(err, "plotting body (%s)", v.name)
		}
		body.Width = vg.Points(2)
		p.Add(body)
		p.Legend.Add("body", body)

		for j, l := range h.Legs {
			line, err := plotter.NewLine(v.xys(l.Points[:]))
			if err != nil {
				return errors.Wrapf(err, "plotting %s (%s)", l.Position, v.name)
			}
			line.Color = plotutil.Color(j)
			p.Add(line)
			p.Legend.Add(l.Position.String(), line)
		}

		marks, err := plotter.NewScatter(v.xys(append(h.GroundContactPoints(), h.COGProjection())))
		if err != nil {
			return errors.Wrapf(err, "plotting ground points (%s)", v.name)
		}
		p.Add(marks)

		row[i] = p
	}

	return savePNG([][]*plot.Plot{row}, 14*vg.Inch, 7*vg.Inch, path)
}

func savePNG(plots [][]*plot.Plot, width vg.Length, height vg.Length, path string) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Points(8),
		PadY: vg.Points(8),
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return errors.Wrap(err, "writing plot")
	}

	return f.Close()
}
