/*
 * matrix.go, part of espgrid.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space, one per row.
// It embeds a gonum Dense, so any gonum function taking a mat.Matrix
// will take a Matrix.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is used as the backing slice, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 {
		return nil, &Error{message: "Empty input slice", deco: []string{"NewMatrix"}, critical: true}
	}
	if l%cols != 0 {
		return nil, &Error{message: fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), deco: []string{"NewMatrix"}, critical: true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// Vec returns a copy of the ith vector of F as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	row := F.RawRowView(i)
	return [3]float64{row[0], row[1], row[2]}
}

// AddVec adds the vector vec to each vector of A, putting the result
// in the receiver. F and A may be the same Matrix. Panics if
// the matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	fr, fc := F.Dims()
	if ac != vc || vr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		a := A.RawRowView(i)
		f := F.RawRowView(i)
		for j := 0; j < cols; j++ {
			f[j] = a[j] + v[j]
		}
	}
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
