package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	hexapod "github.com/adammck/hexapod-kinematics"
	"github.com/adammck/hexapod-kinematics/ik"
	"github.com/adammck/hexapod-kinematics/legs"
	"github.com/adammck/hexapod-kinematics/math3d"
)

func poseTable(p legs.Pose) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Leg", "Alpha", "Beta", "Gamma"})
	for _, pos := range legs.Positions {
		lp := p[pos]
		t.AppendRow(table.Row{
			pos.String(),
			fmt.Sprintf("%.2f", lp.Alpha),
			fmt.Sprintf("%.2f", lp.Beta),
			fmt.Sprintf("%.2f", lp.Gamma),
		})
	}
	return t.Render()
}

func pointsTable(vs []math3d.Vector) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "X", "Y", "Z"})
	for _, v := range vs {
		t.AppendRow(table.Row{
			v.ID,
			v.Name,
			fmt.Sprintf("%.2f", v.X),
			fmt.Sprintf("%.2f", v.Y),
			fmt.Sprintf("%.2f", v.Z),
		})
	}
	return t.Render()
}

func renderIKResult(w io.Writer, res ik.Result) {
	fmt.Fprintf(w, "%s\n%s\n", res.Message.Subject, res.Message.Body)
	if !res.ObtainedSolution {
		return
	}

	fmt.Fprintln(w, poseTable(*res.Pose))
	if len(res.LegPositionsOffGround) > 0 {
		fmt.Fprintf(w, "Off the ground: %v\n", res.LegPositionsOffGround)
	}

	if res.Hexapod != nil {
		fmt.Fprintln(w, pointsTable(res.Hexapod.GroundContactPoints()))
	}
}

func renderHexapod(w io.Writer, h *hexapod.VirtualHexapod) {
	info := h.Info()
	fmt.Fprintf(w, "%s\n%s\n", info.Subject, info.Body)
	if !h.FoundSolution {
		return
	}

	fmt.Fprintf(w, "On the ground: %v\n", h.LegPositionsOnGround)
	fmt.Fprintf(w, "Distance from ground: %.2f\n", h.DistanceFromGround())

	points := h.Body.AllPoints()
	for _, l := range h.Legs {
		points = append(points, l.Points[:]...)
	}
	fmt.Fprintln(w, pointsTable(points))
}
