/*
 * material_test.go, part of ocelot.
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

package ocelot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func graphene(Te *testing.T) *Material {
	Te.Helper()
	bravais := mat.NewDense(3, 3, []float64{
		math.Sqrt(3) / 2, -0.5, 0,
		math.Sqrt(3) / 2, 0.5, 0,
		0, 0, 20 / 2.47,
	})
	atoms := []*Atom{mustAtom(Te, 6, 0, 0, 0), mustAtom(Te, 6, 1.0/3, 1.0/3, 0)}
	M, err := NewMaterial(atoms, 2.47, bravais, true)
	require.NoError(Te, err)
	return M
}

func assertDense(Te *testing.T, want []float64, got mat.Matrix, delta float64) {
	Te.Helper()
	r, c := got.Dims()
	require.Equal(Te, len(want), r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(Te, want[i*c+j], got.At(i, j), delta, "element %d,%d", i, j)
		}
	}
}

func TestNewMaterial(Te *testing.T) {
	M, err := NewMaterial(nil, 1, nil, true)
	require.NoError(Te, err)
	assertDense(Te, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, M.BravaisVector(), 0)
	assert.Equal(Te, 0, M.Len())

	_, err = NewMaterial(nil, 0, nil, true)
	assert.ErrorIs(Te, err, ErrLatticeConstant)
	_, err = NewMaterial(nil, math.NaN(), nil, true)
	assert.ErrorIs(Te, err, ErrLatticeConstant)
	_, err = NewMaterial(nil, 1, mat.NewDense(2, 3, nil), true)
	assert.ErrorIs(Te, err, ErrLatticeShape)

	assert.ErrorIs(Te, M.SetLatticeConstant(-2), ErrLatticeConstant)
	assert.Equal(Te, 1.0, M.LatticeConstant())
	assert.ErrorIs(Te, M.SetBravaisVector(mat.NewDense(3, 2, nil)), ErrLatticeShape)
}

func TestBravaisLattice(Te *testing.T) {
	M := graphene(Te)
	L := M.BravaisLattice()
	assertDense(Te, []float64{
		2.47 * math.Sqrt(3) / 2, -1.235, 0,
		2.47 * math.Sqrt(3) / 2, 1.235, 0,
		0, 0, 20,
	}, L, 1e-12)

	// Changes in the lattice constant or the vectors are seen by the next call.
	require.NoError(Te, M.SetLatticeConstant(5))
	assert.InDelta(Te, 5*math.Sqrt(3)/2, M.BravaisLattice().At(0, 0), 1e-12)
	require.NoError(Te, M.SetBravaisVector(mat.NewDense(3, 3, []float64{2, 0, 0, 0, 2, 0, 0, 0, 2})))
	assertDense(Te, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10}, M.BravaisLattice(), 1e-12)

	// The returned matrices are copies.
	M.BravaisLattice().Set(0, 0, 100)
	M.BravaisVector().Set(0, 0, 100)
	assert.Equal(Te, 10.0, M.BravaisLattice().At(0, 0))
	assert.InDelta(Te, 1000, M.Volume(), 1e-9)
}

func TestReciprocalLattice(Te *testing.T) {
	M := graphene(Te)
	R, err := M.ReciprocalLattice()
	require.NoError(Te, err)
	var P mat.Dense
	P.Mul(R, M.BravaisLattice().T())
	assertDense(Te, []float64{2 * math.Pi, 0, 0, 0, 2 * math.Pi, 0, 0, 0, 2 * math.Pi}, &P, 1e-9)

	require.NoError(Te, M.SetBravaisVector(mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 0})))
	_, err = M.ReciprocalLattice()
	assert.ErrorIs(Te, err, ErrSingularLattice)
	require.NoError(Te, M.SetBravaisVector(mat.NewDense(3, 3, []float64{1, 2, 3, 2, 4, 6, 0, 0, 1})))
	_, err = M.ReciprocalLattice()
	assert.ErrorIs(Te, err, ErrSingularLattice)
	_, err = M.SupercellLattice(nil)
	assert.ErrorIs(Te, err, ErrSingularLattice)
}

func TestSupercellLattice(Te *testing.T) {
	M, err := NewMaterial(nil, 1, nil, true)
	require.NoError(Te, err)
	S, err := M.SupercellLattice(mat.NewDiagDense(3, []float64{2, 2, 1}))
	require.NoError(Te, err)
	assertDense(Te, []float64{2, 0, 0, 0, 2, 0, 0, 0, 1}, S, 0)

	// The product is element-wise, not a matrix product.
	require.NoError(Te, M.SetBravaisVector(mat.NewDense(3, 3, []float64{1, 1, 0, 0, 1, 0, 0, 0, 1})))
	twos := mat.NewDense(3, 3, []float64{2, 2, 2, 2, 2, 2, 2, 2, 2})
	S, err = M.SupercellLattice(twos)
	require.NoError(Te, err)
	assertDense(Te, []float64{2, 2, 0, 0, 2, 0, 0, 0, 2}, S, 0)

	S, err = M.SupercellLattice(nil)
	require.NoError(Te, err)
	assertDense(Te, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, S, 0)

	_, err = M.SupercellLattice(mat.NewDense(2, 2, nil))
	assert.ErrorIs(Te, err, ErrLatticeShape)
}

func TestCartesianFractional(Te *testing.T) {
	M := graphene(Te)
	C := M.CartesianTable()
	_, c := C.Row(1)
	assert.InDelta(Te, 1.426055164898376, c[0], 1e-12)
	assert.InDelta(Te, 0, c[1], 1e-12)
	assert.InDelta(Te, 0, c[2], 1e-12)
	// Stored coordinates are untouched.
	_, f := M.Table().Row(1)
	assert.InDelta(Te, 1.0/3, f[0], 1e-15)

	F, err := M.FractionalTable()
	require.NoError(Te, err)
	assert.Equal(Te, M.Table(), F)

	cart, err := NewMaterial([]*Atom{mustAtom(Te, 6, c...)}, 2.47, M.BravaisVector(), false)
	require.NoError(Te, err)
	assert.Equal(Te, cart.Table(), cart.CartesianTable())
	F, err = cart.FractionalTable()
	require.NoError(Te, err)
	_, f = F.Row(0)
	assertDense(Te, []float64{1.0 / 3, 1.0 / 3, 0}, mat.NewDense(1, 3, f), 1e-12)

	empty, err := NewMaterial(nil, 1, nil, true)
	require.NoError(Te, err)
	assert.Equal(Te, 0, empty.CartesianTable().Len())
}

func TestKGridPlanewave(Te *testing.T) {
	M := graphene(Te)
	K, err := NewKGrid(M, mat.NewDiagDense(3, []float64{4, 4, 1}), [3]float64{0.5, 0.5, 0})
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{0.5, 0.5, 0}, K.Shift())
	assert.Equal(Te, 4.0, K.Matrix().At(0, 0))
	S, err := K.Supercell()
	require.NoError(Te, err)
	assert.InDelta(Te, 4*2.47*math.Sqrt(3)/2, S.At(0, 0), 1e-12)
	assert.InDelta(Te, 20, S.At(2, 2), 1e-12)
	assert.Zero(Te, S.At(0, 1))
	assert.Equal(Te, 2, K.Len(), "a KGrid is a Material")

	_, err = NewKGrid(M, mat.NewDense(3, 1, nil), [3]float64{})
	assert.ErrorIs(Te, err, ErrLatticeShape)

	P, err := NewPlanewave(K, DefaultEnergyCutoff, Hartree)
	require.NoError(Te, err)
	c, unit := P.EnergyCutoff()
	assert.Equal(Te, DefaultEnergyCutoff, c)
	assert.Equal(Te, Hartree, unit)
	ev, err := P.CutoffIn(ElectronVolt)
	require.NoError(Te, err)
	assert.InDelta(Te, 20*Ha2EV, ev, 1e-9)
	ry, err := P.CutoffIn(Rydberg)
	require.NoError(Te, err)
	assert.InDelta(Te, 40, ry, 1e-12)
	_, err = P.CutoffIn(EnergyUnit(7))
	assert.ErrorIs(Te, err, ErrEnergyUnit)

	_, err = NewPlanewave(K, 0, Hartree)
	assert.ErrorIs(Te, err, ErrEnergyCutoff)
	_, err = NewPlanewave(K, 10, EnergyUnit(-1))
	assert.ErrorIs(Te, err, ErrEnergyUnit)

	for s, want := range map[string]EnergyUnit{"Ha": Hartree, "eV": ElectronVolt, "ry": Rydberg, " EV ": ElectronVolt} {
		u, err := ParseEnergyUnit(s)
		require.NoError(Te, err)
		assert.Equal(Te, want, u)
	}
	_, err = ParseEnergyUnit("kcal")
	assert.ErrorIs(Te, err, ErrEnergyUnit)
	assert.Equal(Te, "eV", ElectronVolt.String())
}
