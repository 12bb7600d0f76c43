/*
 * gridplot.go, part of espgrid.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * espgrid is developed alongside goChem at the Universidad de Santiago
 * de Chile (USACH)
 *
 */

// Package gridplot draws grids built by the grid package, to check by eye
// that a grid surrounds its molecule as expected.
package gridplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rmera/espgrid/grid"
	v3 "github.com/rmera/espgrid/v3"
)

// Plane is a pair of cartesian axes on which points are projected.
type Plane [2]int

var (
	XY = Plane{0, 1}
	XZ = Plane{0, 2}
	YZ = Plane{1, 2}
)

var axisNames = [3]string{"X", "Y", "Z"}

// String returns the name of the plane, i.e. "XY".
func (P Plane) String() string {
	return axisNames[P[0]] + axisNames[P[1]]
}

// ParsePlane returns the Plane named by s (XY, XZ or YZ).
func ParsePlane(s string) (Plane, error) {
	for _, p := range []Plane{XY, XZ, YZ} {
		if p.String() == s {
			return p, nil
		}
	}
	return Plane{}, fmt.Errorf("gridplot: unknown plane %q", s)
}

// Size of the saved plots.
var (
	Width  = 6 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	pointColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	atomColor  = color.RGBA{R: 200, A: 255}
)

func project(n int, at func(int) [3]float64, plane Plane) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		p := at(i)
		pts[i].X = p[plane[0]]
		pts[i].Y = p[plane[1]]
	}
	return pts
}

// Projection returns a scatter plot of the points of G, and the atoms in conformer,
// projected on the given plane. The conformer can be nil.
func Projection(G *grid.Grid, conformer *v3.Matrix, plane Plane, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = axisNames[plane[0]] + " (A)"
	p.Y.Label.Text = axisNames[plane[1]] + " (A)"
	p.Add(plotter.NewGrid())
	if G.Len() > 0 {
		s, err := plotter.NewScatter(project(G.Len(), G.Point, plane))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = pointColor
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("grid (%d)", G.Len()), s)
	}
	if conformer != nil && conformer.NVecs() > 0 {
		s, err := plotter.NewScatter(project(conformer.NVecs(), conformer.Vec, plane))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = atomColor
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add("atoms", s)
	}
	p.Legend.Top = true
	return p, nil
}

// Histogram returns a histogram of the distances from each point of G to its nearest atom
// in conformer, with the given number of bins. It returns an error for empty grids.
func Histogram(G *grid.Grid, conformer *v3.Matrix, bins int, title string) (*plot.Plot, error) {
	if G.Len() == 0 {
		return nil, fmt.Errorf("gridplot: can't build a histogram of an empty grid")
	}
	d, err := G.NearestDistances(conformer)
	if err != nil {
		return nil, err
	}
	h, err := plotter.NewHist(plotter.Values(d), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = pointColor
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance to the nearest atom (A)"
	p.Y.Label.Text = "Points"
	p.Add(h)
	return p, nil
}

// SaveProjection builds the projection plot of G and conformer and saves it to filename.
// The format is taken from the extension (png, svg, pdf...).
func SaveProjection(filename string, G *grid.Grid, conformer *v3.Matrix, plane Plane, title string) error {
	p, err := Projection(G, conformer, plane, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}

// SaveHistogram builds the nearest-atom distance histogram of G and saves it to filename.
func SaveHistogram(filename string, G *grid.Grid, conformer *v3.Matrix, bins int, title string) error {
	p, err := Histogram(G, conformer, bins, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height/2, filename)
}
