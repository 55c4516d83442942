/*
 * v3_test.go, part of ocelot.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, []float64{4, 5, 6}, A.Vec(1))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)

	E, err := NewMatrix(nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, E.NVecs())
	assert.Equal(Te, 0, Zeros(0).NVecs())
	assert.Equal(Te, "[ ]", E.String())
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	view := A.VecView(1)
	view.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "changes in the view must reach the parent matrix")
	A.SetVec(0, []float64{-1, -2, -3})
	assert.Equal(Te, []float64{-1, -2, -3}, A.Vec(0))
}

func TestMul(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	B := Zeros(2)
	B.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(A, B))
	//receiver as operand
	scale := mat.NewDense(3, 3, []float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	A.Mul(A, scale)
	assert.Equal(Te, []float64{2, 4, 6}, A.Vec(0))
}

func TestSomeVecsAndSpan(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 1, -2, 3, 4, 5, -6})
	require.NoError(Te, err)
	B := Zeros(2)
	B.SomeVecs(A, []int{2, 0})
	assert.Equal(Te, []float64{4, 5, -6}, B.Vec(0))
	assert.Equal(Te, []float64{0, 0, 0}, B.Vec(1))
	assert.Equal(Te, [3]float64{4, 7, 9}, A.Span())
	assert.Equal(Te, [3]float64{}, Zeros(0).Span())
}
