/*
 * grid_test.go, part of espgrid.
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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	v3 "github.com/rmera/espgrid/v3"
	"gonum.org/v1/gonum/floats"
)

// methane, as used in the Psi4 tests.
func methane(Te *testing.T) (*v3.Matrix, []float64) {
	Te.Helper()
	coords, err := v3.NewMatrix([]float64{
		-0.0000658, -0.0000061, 0.0000215,
		-0.0566733, 1.0873573, -0.0859463,
		0.6194599, -0.3971111, -0.8071615,
		-1.0042799, -0.4236047, -0.0695677,
		0.4415590, -0.2666354, 0.9626540,
	})
	if err != nil {
		Te.Fatal(err)
	}
	return coords, []float64{1.7, 1.2, 1.2, 1.2, 1.2}
}

func origin(Te *testing.T) *v3.Matrix {
	Te.Helper()
	coords, err := v3.NewMatrix([]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	return coords
}

func points(G *Grid) [][3]float64 {
	ret := make([][3]float64, G.Len())
	for i := range ret {
		ret[i] = G.Point(i)
	}
	return ret
}

// checkShell verifies that every point in G is outside all the inner shells
// and inside at least one outer shell.
func checkShell(Te *testing.T, G *Grid, coords *v3.Matrix, radii []float64, s *Settings) {
	Te.Helper()
	for i := 0; i < G.Len(); i++ {
		p := G.Point(i)
		inside := false
		for j := 0; j < coords.NVecs(); j++ {
			d := distance(p, coords.RawRowView(j))
			if d < radii[j]*s.InnerVdwScale {
				Te.Fatalf("point %d %v is %.4f A from atom %d, inside its inner shell", i, p, d, j)
			}
			if d <= radii[j]*s.OuterVdwScale {
				inside = true
			}
		}
		if !inside {
			Te.Fatalf("point %d %v is outside all outer shells", i, p)
		}
	}
}

func TestSingleAtom(Te *testing.T) {
	coords := origin(Te)
	s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: 1.0, OuterVdwScale: 2.0}
	G, err := Generate([]float64{1.0}, coords, s)
	if err != nil {
		Te.Fatal(err)
	}
	if G.Empty() {
		Te.Fatal("no points around a single atom")
	}
	set := make(map[[3]float64]bool, G.Len())
	for _, p := range points(G) {
		d := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if d < 1.0 || d > 2.0 {
			Te.Errorf("point %v at distance %.4f, outside [1, 2]", p, d)
		}
		set[p] = true
	}
	for p := range set {
		for _, sign := range [][3]float64{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}, {-1, -1, -1}} {
			q := [3]float64{p[0] * sign[0], p[1] * sign[1], p[2] * sign[2]}
			for j := range q {
				if q[j] == 0 {
					q[j] = 0 //no negative zeros in the keys
				}
			}
			if !set[q] {
				Te.Errorf("point %v is in the grid but its reflection %v is not", p, q)
			}
		}
	}
}

func TestShellMembership(Te *testing.T) {
	coords, radii := methane(Te)
	for _, s := range []*Settings{
		DefaultSettings(),
		{Type: FCC, Spacing: 0.3, InnerVdwScale: 1.2, OuterVdwScale: 1.6},
		{Type: FCC, Spacing: 1.0, InnerVdwScale: 1.0, OuterVdwScale: 3.0},
	} {
		G, err := Generate(radii, coords, s)
		if err != nil {
			Te.Fatal(err)
		}
		if G.Empty() {
			Te.Errorf("empty grid with settings %v", s)
		}
		checkShell(Te, G, coords, radii, s)
	}
}

func TestDeterminism(Te *testing.T) {
	coords, radii := methane(Te)
	G1, err := Generate(radii, coords, DefaultSettings())
	if err != nil {
		Te.Fatal(err)
	}
	G2, err := Generate(radii, coords, DefaultSettings())
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(points(G1), points(G2)); diff != "" {
		Te.Errorf("two runs gave different grids (-first +second):\n%s", diff)
	}
}

func TestInputsNotModified(Te *testing.T) {
	coords, radii := methane(Te)
	coordsCopy := append([]float64(nil), coords.RawMatrix().Data...)
	radiiCopy := append([]float64(nil), radii...)
	if _, err := Generate(radii, coords, DefaultSettings()); err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(radiiCopy, radii); diff != "" {
		Te.Errorf("radii modified:\n%s", diff)
	}
	if diff := cmp.Diff(coordsCopy, coords.RawMatrix().Data); diff != "" {
		Te.Errorf("coordinates modified:\n%s", diff)
	}
}

// The lattice is anchored to the centroid, and its phase depends on the parity of the
// number of cells, so the scales are chosen to keep that number even.
func TestScaleMonotonicity(Te *testing.T) {
	coords := origin(Te)
	radii := []float64{1.0}
	prev := -1
	for _, outer := range []float64{1.5, 2.0, 2.5, 3.0} {
		s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: 1.0, OuterVdwScale: outer}
		G, err := Generate(radii, coords, s)
		if err != nil {
			Te.Fatal(err)
		}
		if G.Len() < prev {
			Te.Errorf("outer scale %.2f gave %d points, fewer than the %d of the previous scale", outer, G.Len(), prev)
		}
		prev = G.Len()
	}
	mcoords, mradii := methane(Te)
	prev = math.MaxInt
	for _, inner := range []float64{1.0, 1.2, 1.4, 1.6, 1.8} {
		s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: inner, OuterVdwScale: 2.0}
		G, err := Generate(mradii, mcoords, s)
		if err != nil {
			Te.Fatal(err)
		}
		if G.Len() > prev {
			Te.Errorf("inner scale %.2f gave %d points, more than the %d of the previous scale", inner, G.Len(), prev)
		}
		prev = G.Len()
	}
}

func TestTranslation(Te *testing.T) {
	coords, radii := methane(Te)
	shift, _ := v3.NewMatrix([]float64{1.25, -2.5, 3.75})
	moved := v3.Zeros(coords.NVecs())
	moved.AddVec(coords, shift)
	G, err := Generate(radii, coords, DefaultSettings())
	if err != nil {
		Te.Fatal(err)
	}
	GM, err := Generate(radii, moved, DefaultSettings())
	if err != nil {
		Te.Fatal(err)
	}
	if G.Len() != GM.Len() {
		Te.Fatalf("translated molecule gave %d points, expected %d", GM.Len(), G.Len())
	}
	expected := points(G)
	for i := range expected {
		for j, v := range []float64{1.25, -2.5, 3.75} {
			expected[i][j] += v
		}
	}
	if diff := cmp.Diff(expected, points(GM), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		Te.Errorf("translated grid doesn't match (-expected +got):\n%s", diff)
	}
}

func TestEmptyShell(Te *testing.T) {
	coords, radii := methane(Te)
	s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: 2.0, OuterVdwScale: 1.5}
	G, err := Generate(radii, coords, s)
	if err != nil {
		Te.Fatalf("an inverted shell should give an empty grid, not an error: %v", err)
	}
	if G == nil || !G.Empty() {
		Te.Errorf("expected an empty grid, got %d points", G.Len())
	}
	if G.Matrix() != nil {
		Te.Error("the matrix of an empty grid should be nil")
	}
}

// With equal scales only points lying exactly on a shell survive.
func TestEqualScales(Te *testing.T) {
	s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: 1.5, OuterVdwScale: 1.5}
	coords := origin(Te)
	G, err := Generate([]float64{1.0}, coords, s)
	if err != nil {
		Te.Fatalf("equal scales should not give an error: %v", err)
	}
	//(1.5, 0, 0) and its images are lattice points.
	if G.Len() == 0 {
		Te.Error("points exactly on the shell should be kept")
	}
	mcoords, radii := methane(Te)
	M, err := Generate(radii, mcoords, s)
	if err != nil {
		Te.Fatal(err)
	}
	for _, g := range []struct {
		G      *Grid
		coords *v3.Matrix
		radii  []float64
	}{{G, coords, []float64{1.0}}, {M, mcoords, radii}} {
		for _, p := range points(g.G) {
			onShell := false
			for j, r := range g.radii {
				if math.Abs(distance(p, g.coords.RawRowView(j))-r*1.5) < 1e-9 {
					onShell = true
				}
			}
			if !onShell {
				Te.Errorf("point %v is not on any shell", p)
			}
		}
	}
}

func TestNilGrid(Te *testing.T) {
	var G *Grid
	if G.Len() != 0 || !G.Empty() || G.Data() != nil || G.Matrix() != nil {
		Te.Error("a nil grid should behave as an empty one")
	}
}

func TestShapeError(Te *testing.T) {
	coords, radii := methane(Te)
	G, err := Generate(radii[:3], coords, DefaultSettings())
	var serr *ShapeError
	if !errors.As(err, &serr) {
		Te.Fatalf("expected a *ShapeError, got %v", err)
	}
	if G != nil {
		Te.Error("no grid should be returned along with an error")
	}
	if serr.Radii != 3 || serr.Atoms != 5 {
		Te.Errorf("wrong counts in error: %v", serr)
	}
	if deco := serr.Decorate(""); len(deco) == 0 || deco[len(deco)-1] != "Generate" {
		Te.Errorf("error not decorated by Generate: %v", deco)
	}
	if _, err = Generate([]float64{1}, nil, DefaultSettings()); !errors.As(err, &serr) {
		Te.Errorf("nil coordinates should give a *ShapeError, got %v", err)
	}
	bad := append([]float64(nil), radii...)
	bad[2] = -1
	if _, err = Generate(bad, coords, DefaultSettings()); !errors.As(err, &serr) {
		Te.Errorf("a negative radius should give a *ShapeError, got %v", err)
	}
}

func TestConfigErrorBeforeShape(Te *testing.T) {
	coords, radii := methane(Te)
	_, err := Generate(radii[:2], coords, &Settings{Type: FCC, Spacing: 0, InnerVdwScale: 1, OuterVdwScale: 2})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		Te.Fatalf("expected a *ConfigError, got %v", err)
	}
	if cerr.Field != "spacing" {
		Te.Errorf("wrong field in error: %s", cerr.Field)
	}
}

func TestWalkMatchesGenerate(Te *testing.T) {
	coords, radii := methane(Te)
	G, err := Generate(radii, coords, DefaultSettings())
	if err != nil {
		Te.Fatal(err)
	}
	var walked [][3]float64
	err = Walk(radii, coords, DefaultSettings(), func(p [3]float64) {
		walked = append(walked, p)
	})
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(points(G), walked); diff != "" {
		Te.Errorf("Walk and Generate differ:\n%s", diff)
	}
	m := G.Matrix()
	if m.NVecs() != G.Len() || m.Vec(0) != G.Point(0) {
		Te.Errorf("Matrix doesn't match the grid points")
	}
}

func TestCells(Te *testing.T) {
	if n := cells(origin(Te), []float64{2.0}, 0.5); n != 8 {
		Te.Errorf("expected 8 cells, got %d", n)
	}
	coords, radii := methane(Te)
	outer := make([]float64, len(radii))
	for i, r := range radii {
		outer[i] = r * 2
	}
	//the widest box side is the y one: (1.0873573+2.4) - (-0.0000061-3.4) = 6.887
	if n := cells(coords, outer, 0.5); n != 14 {
		Te.Errorf("expected 14 cells, got %d", n)
	}
}

func TestFCC(Te *testing.T) {
	for _, c := range []struct {
		x, y, z int
		want    bool
	}{
		{0, 0, 0, true}, {1, 1, 0, true}, {0, 1, 1, true}, {1, 0, 1, true},
		{1, 1, 1, false}, {1, 0, 0, false}, {0, 1, 0, false}, {0, 0, 1, false},
		{2, 4, 6, true}, {3, 5, 2, true}, {3, 5, 7, false},
	} {
		if got := isFCC(c.x, c.y, c.z); got != c.want {
			Te.Errorf("isFCC(%d, %d, %d) = %v", c.x, c.y, c.z, got)
		}
	}
	var order [][3]int
	fccWalk(1, func(x, y, z int) { order = append(order, [3]int{x, y, z}) })
	//the conventional FCC cell: 8 corners and 6 face centers.
	if len(order) != 14 {
		Te.Fatalf("expected 14 points in a single FCC cell, got %d", len(order))
	}
	if order[0] != [3]int{0, 0, 0} || order[1] != [3]int{0, 0, 2} || order[len(order)-1] != [3]int{2, 2, 2} {
		Te.Errorf("wrong enumeration order: %v", order)
	}
}

func TestStats(Te *testing.T) {
	coords := origin(Te)
	s := &Settings{Type: FCC, Spacing: 0.5, InnerVdwScale: 1.0, OuterVdwScale: 2.0}
	G, err := Generate([]float64{1.0}, coords, s)
	if err != nil {
		Te.Fatal(err)
	}
	st, err := G.Stats(coords)
	if err != nil {
		Te.Fatal(err)
	}
	if st.Points != G.Len() || st.MinDist < 1.0 || st.MaxDist > 2.0 || st.MeanDist < st.MinDist || st.MeanDist > st.MaxDist {
		Te.Errorf("inconsistent stats: %v", st)
	}
	h, err := G.DistanceHistogram(coords, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if h.Total() != G.Len() || floats.Sum(h.View()) != float64(G.Len()) {
		Te.Errorf("every point should be in one bin: %v", h)
	}
	if d := h.Dividers(); d[0] != st.MinDist || d[len(d)-1] < st.MaxDist {
		Te.Errorf("the bins should span the distances %v, got %v", st, d)
	}
	empty := new(Grid)
	if st, err = empty.Stats(coords); err != nil || st.Points != 0 {
		Te.Errorf("empty grid stats: %v %v", st, err)
	}
	if h, err = empty.DistanceHistogram(coords, 5); err != nil || h.Total() != 0 {
		Te.Errorf("empty grid histogram: %v %v", h, err)
	}
	if _, err = G.DistanceHistogram(coords, 0); err == nil {
		Te.Error("zero bins should give an error")
	}
}
