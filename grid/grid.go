/*
 * grid.go, part of espgrid.
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

package grid

import (
	"fmt"
	"math"

	v3 "github.com/rmera/espgrid/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Grid is an ordered set of points around a molecule. The zero value
// is an empty grid, which is a valid result of Generate.
type Grid struct {
	data []float64 //row-major, 3 values per point.
}

// Len returns the number of points in the grid.
func (G *Grid) Len() int {
	if G == nil {
		return 0
	}
	return len(G.data) / 3
}

// Empty is true if the grid has no points.
func (G *Grid) Empty() bool {
	return G.Len() == 0
}

// Point returns the ith point of the grid. Panics if out of range.
func (G *Grid) Point(i int) [3]float64 {
	if i < 0 || i >= G.Len() {
		panic(fmt.Sprintf("grid: point %d requested from a grid with %d points", i, G.Len()))
	}
	return [3]float64{G.data[3*i], G.data[3*i+1], G.data[3*i+2]}
}

// Data returns a copy of the coordinates of all points, row-major.
// It returns nil for a nil or empty grid.
func (G *Grid) Data() []float64 {
	if G.Empty() {
		return nil
	}
	ret := make([]float64, len(G.data))
	copy(ret, G.data)
	return ret
}

// Matrix returns the points of the grid as a new (n_points x 3) matrix,
// or nil if the grid is empty.
func (G *Grid) Matrix() *v3.Matrix {
	if G.Empty() {
		return nil
	}
	m, _ := v3.NewMatrix(G.Data()) //can't fail for a non-empty grid.
	return m
}

// Generate returns the grid of points around the molecule with the given radii and coordinates,
// according to settings. radii must have one element per atom in conformer, in the same order.
// Neither radii nor conformer are modified. The settings are validated first, and a *ConfigError
// is returned if they are invalid. A *ShapeError is returned if radii and conformer don't match.
// A grid with no points is not an error.
func Generate(radii []float64, conformer *v3.Matrix, settings *Settings) (*Grid, error) {
	G := new(Grid)
	err := Walk(radii, conformer, settings, func(p [3]float64) {
		G.data = append(G.data, p[0], p[1], p[2])
	})
	if err != nil {
		return nil, errDecorate(err, "Generate")
	}
	return G, nil
}

// Walk calls fn for each point of the grid that Generate would return, in the same order,
// without storing the grid. Errors are returned before fn is called for the first time.
func Walk(radii []float64, conformer *v3.Matrix, settings *Settings, fn func(p [3]float64)) error {
	if err := settings.Check(); err != nil {
		return errDecorate(err, "Walk")
	}
	if err := checkShape(radii, conformer); err != nil {
		return errDecorate(err, "Walk")
	}
	inner := make([]float64, len(radii))
	floats.ScaleTo(inner, settings.InnerVdwScale, radii)
	outer := make([]float64, len(radii))
	floats.ScaleTo(outer, settings.OuterVdwScale, radii)

	center := Centroid(conformer)
	n := cells(conformer, outer, settings.Spacing)
	natoms := conformer.NVecs()
	fccWalk(n, func(x, y, z int) {
		var p [3]float64
		for j, idx := range [3]int{x, y, z} {
			p[j] = float64(idx-n)*0.5*settings.Spacing + center[j]
		}
		inside := false
		for i := 0; i < natoms; i++ {
			d := distance(p, conformer.RawRowView(i))
			if d < inner[i] {
				return //too close to an atom.
			}
			if d <= outer[i] {
				inside = true
			}
		}
		if inside {
			fn(p)
		}
	})
	return nil
}

func checkShape(radii []float64, conformer *v3.Matrix) error {
	if conformer == nil || conformer.Dense == nil || conformer.IsEmpty() {
		return &ShapeError{Radii: len(radii), msg: "no coordinates given", deco: []string{"checkShape"}}
	}
	if _, c := conformer.Dims(); c != 3 {
		return &ShapeError{Radii: len(radii), msg: fmt.Sprintf("coordinates must have 3 columns, got %d", c), deco: []string{"checkShape"}}
	}
	natoms := conformer.NVecs()
	if len(radii) != natoms {
		return &ShapeError{Radii: len(radii), Atoms: natoms, deco: []string{"checkShape"}}
	}
	for i, r := range radii {
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return &ShapeError{Radii: len(radii), Atoms: natoms, msg: fmt.Sprintf("invalid radius %v for atom %d", r, i), deco: []string{"checkShape"}}
		}
	}
	return nil
}

// Centroid returns the geometric center of the coordinates in coords.
func Centroid(coords *v3.Matrix) [3]float64 {
	var ret [3]float64
	col := make([]float64, coords.NVecs())
	for j := range ret {
		mat.Col(col, j, coords)
		ret[j] = stat.Mean(col, nil)
	}
	return ret
}

// cells returns the number of lattice cells needed, on each side of the centroid,
// to cover the box containing the outer shells of all atoms.
func cells(coords *v3.Matrix, outer []float64, spacing float64) int {
	natoms := coords.NVecs()
	lo := make([]float64, natoms)
	hi := make([]float64, natoms)
	extent := 0.0
	for j := 0; j < 3; j++ {
		for i := 0; i < natoms; i++ {
			c := coords.At(i, j)
			lo[i] = c - outer[i]
			hi[i] = c + outer[i]
		}
		extent = math.Max(extent, floats.Max(hi)-floats.Min(lo))
	}
	return int(math.Ceil(extent / spacing))
}

// distance is the Euclidean distance between p and the first 3 elements of q.
func distance(p [3]float64, q []float64) float64 {
	dx := p[0] - q[0]
	dy := p[1] - q[1]
	dz := p[2] - q[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
