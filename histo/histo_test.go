/*
 * histo_test.go, part of espgrid.
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

package histo

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAddData(Te *testing.T) {
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1, -1})
	want := []float64{2, 6, 2, 7, 9}
	if !cmp.Equal(D.View(), want) {
		Te.Errorf("bins %v, expected %v", D.View(), want)
	}
	if D.Total() != 30 {
		Te.Errorf("total %d, expected 30", D.Total())
	}
	D.Normalize()
	D.Normalize()
	if !cmp.Equal(D.View(), []float64{2.0 / 30, 0.2, 2.0 / 30, 7.0 / 30, 0.3}, cmpopts.EquateApprox(0, 1e-12)) {
		Te.Errorf("wrong normalized histogram %v", D.View())
	}
	D.AddData(0.5)
	D.UnNormalize()
	if !cmp.Equal(D.View(), []float64{3, 6, 2, 7, 9}, cmpopts.EquateApprox(0, 1e-9)) {
		Te.Errorf("wrong histogram after adding to a normalized one %v", D.View())
	}
}

func TestUniform(Te *testing.T) {
	d := Uniform(1, 2, 4)
	if len(d) != 5 || d[0] != 1 || d[2] != 1.5 || d[4] <= 2 {
		Te.Errorf("wrong dividers %v", d)
	}
	D := NewData(d, []float64{1, 2})
	if D.View()[0] != 1 || D.View()[3] != 1 {
		Te.Errorf("the limits should fall in the first and last bins: %v", D.View())
	}
}

func TestAdd(Te *testing.T) {
	a := NewData([]float64{0, 1, 2}, []float64{0.5, 1.5, 1.2})
	b := NewData([]float64{0, 1, 2}, []float64{0.1, 3})
	var c Data
	c.Add(a, b)
	if !cmp.Equal(c.View(), []float64{2, 2}) || c.Total() != 5 {
		Te.Errorf("wrong sum %v total %d", c.View(), c.Total())
	}
}

func TestJSON(Te *testing.T) {
	D := NewData([]float64{0, 1, 2}, []float64{0.5, 1.5, 1.2})
	b, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	var E Data
	if err = json.Unmarshal(b, &E); err != nil {
		Te.Fatal(err)
	}
	if !cmp.Equal(D.Dividers(), E.Dividers()) || !cmp.Equal(D.View(), E.View()) || E.Total() != 3 {
		Te.Errorf("JSON round trip gave %s", E.String())
	}
	if err = json.Unmarshal([]byte(`{"dividers": [0, 1], "histo": [1, 2]}`), &E); err == nil {
		Te.Error("mismatched dividers and bins should give an error")
	}
}
