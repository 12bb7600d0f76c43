/*
 * stats.go, part of espgrid.
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

	"github.com/rmera/espgrid/histo"
	v3 "github.com/rmera/espgrid/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a grid by the distance from each point to its
// nearest atom.
type Stats struct {
	Points   int
	MinDist  float64
	MeanDist float64
	MaxDist  float64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d points, nearest-atom distance min %.3f mean %.3f max %.3f A", s.Points, s.MinDist, s.MeanDist, s.MaxDist)
}

// NearestDistances returns, for each point of the grid, the distance to the closest
// atom in conformer.
func (G *Grid) NearestDistances(conformer *v3.Matrix) ([]float64, error) {
	if conformer == nil || conformer.Dense == nil || conformer.IsEmpty() {
		return nil, &ShapeError{msg: "no coordinates given", deco: []string{"NearestDistances"}}
	}
	natoms := conformer.NVecs()
	ret := make([]float64, G.Len())
	for i := range ret {
		p := G.Point(i)
		nearest := math.Inf(1)
		for j := 0; j < natoms; j++ {
			nearest = math.Min(nearest, distance(p, conformer.RawRowView(j)))
		}
		ret[i] = nearest
	}
	return ret, nil
}

// Stats returns the nearest-atom distance statistics of the grid around conformer.
// For an empty grid, only Points (0) is set.
func (G *Grid) Stats(conformer *v3.Matrix) (Stats, error) {
	d, err := G.NearestDistances(conformer)
	if err != nil {
		return Stats{}, errDecorate(err, "Stats")
	}
	s := Stats{Points: len(d)}
	if len(d) == 0 {
		return s, nil
	}
	s.MinDist = floats.Min(d)
	s.MaxDist = floats.Max(d)
	s.MeanDist = stat.Mean(d, nil)
	return s, nil
}

// DistanceHistogram returns a histogram, with the given number of bins, of the distances
// from each point of the grid to its nearest atom. The bins span the range of the
// distances, or [0, 1] for an empty grid.
func (G *Grid) DistanceHistogram(conformer *v3.Matrix, bins int) (*histo.Data, error) {
	if bins < 1 {
		return nil, newConfigError("bins", "DistanceHistogram", "need at least one bin, got %d", bins)
	}
	d, err := G.NearestDistances(conformer)
	if err != nil {
		return nil, errDecorate(err, "DistanceHistogram")
	}
	lo, hi := 0.0, 1.0
	if len(d) > 0 {
		lo, hi = floats.Min(d), floats.Max(d)
		if hi <= lo {
			hi = lo + 1
		}
	}
	return histo.NewData(histo.Uniform(lo, hi, bins), d), nil
}
