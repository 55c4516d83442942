/*
 * gocoords.go, part of ocelot.
 *
 * Copyright 2019 The ocelot authors
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
 */

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SomeVecs puts in F the vectors of A with the indexes in clist, in the
// same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetRow(key, A.Vec(val))
	}
}

// Span returns, for each of the 3 axes, the difference between the largest
// and the smallest coordinate in F. An empty matrix spans nothing.
func (F *Matrix) Span() [3]float64 {
	var span [3]float64
	if F.NVecs() == 0 {
		return span
	}
	col := make([]float64, F.NVecs())
	for j := 0; j < cols; j++ {
		mat.Col(col, j, F.Dense)
		span[j] = floats.Max(col) - floats.Min(col)
	}
	return span
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, cols)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		sep := "\n"
		if i == r-1 {
			sep = ""
		}
		v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f%s", row[0], row[1], row[2], sep)
	}
	return strings.Join(v, "")
}
