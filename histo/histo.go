/*
 * histo.go, part of espgrid.
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

// Package histo implements simple histograms with arbitrary dividers.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
// Values outside the dividers are counted in the total, but not in any bin.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Uniform returns n+1 dividers splitting [lo, hi] in n bins of equal width.
// The last divider is nudged up so that hi itself falls in the last bin.
func Uniform(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) {
		panic("goChem/histo.Uniform: need at least one bin and hi > lo")
	}
	d := make([]float64, n+1)
	floats.Span(d, lo, hi)
	d[n] = nextUp(hi)
	return d
}

func nextUp(f float64) float64 {
	return f + 1e-9*(1+abs(f))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// NewData returns a new histogram with the given dividers, which must be sorted
// in increasing order, containing the values in rawdata, which can be nil.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("goChem/histo.NewData: need at least 2 sorted dividers")
	}
	d := &Data{dividers: make([]float64, len(dividers))}
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	d.AddData(rawdata...)
	return d
}

// AddData adds the given values to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		//index of the first divider larger than v
		i := sort.Search(len(D.dividers), func(j int) bool { return D.dividers[j] > v })
		if i > 0 && i <= last {
			D.histo[i-1]++
		}
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

// Total returns the number of values added to the histogram.
func (D *Data) Total() int { return D.total }

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides every bin by the total number of values.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize takes the histogram back to counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

// Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins of the histogram. Changes to the slice change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Add puts in the receiver the sum of the un-normalized histograms a and b, which
// must have the same dividers.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("goChem/histo.Data.Add: Dividers must match in added histograms")
	}
	if a.normalized || b.normalized {
		panic("goChem/histo.Data.Add: Can't add normalized histograms")
	}
	h := make([]float64, len(a.histo))
	floats.AddTo(h, a.histo, b.histo)
	D.dividers = a.Dividers()
	D.histo = h
	D.total = a.total + b.total
	D.normalized = false
}

// String prints the bins and their values in two lines.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + strings.Join(d, " ") + "\n" + strings.Join(h, " ")
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{Normalized: D.normalized, Total: D.total, Dividers: D.dividers, Histo: D.histo})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("goChem/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
