/*
 * material.go, part of ocelot.
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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/ocelotmaterials/ocelot/v3"
)

// Material is a periodic collection of atoms. The lattice is given by a lattice
// constant and 3 Bravais vectors (rows of a 3x3 matrix) in units of the lattice constant.
// If the material is crystallographic, the coordinates of its atoms are fractional,
// i.e. in units of the lattice vectors; otherwise they are Cartesian.
type Material struct {
	atoms            []*Atom
	latticeConstant  float64
	bravais          *mat.Dense
	crystallographic bool
	table            PeriodicTable
}

// NewMaterial returns a material made of copies of atoms. A nil bravais gives
// the identity matrix.
func NewMaterial(atoms []*Atom, latticeConstant float64, bravais mat.Matrix, crystallographic bool) (*Material, error) {
	M := &Material{
		atoms:            copyAtoms(atoms),
		crystallographic: crystallographic,
		table:            Elements,
	}
	if err := M.SetLatticeConstant(latticeConstant); err != nil {
		return nil, errDecorate(err, "NewMaterial")
	}
	if bravais == nil {
		bravais = eye3()
	}
	if err := M.SetBravaisVector(bravais); err != nil {
		return nil, errDecorate(err, "NewMaterial")
	}
	return M, nil
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// Atoms returns the atoms of the material. They belong to the material;
// modifying them modifies the material.
func (M *Material) Atoms() []*Atom {
	return M.atoms
}

// Len returns the number of atoms in the material.
func (M *Material) Len() int {
	return len(M.atoms)
}

// LatticeConstant returns the lattice constant, in A.
func (M *Material) LatticeConstant() float64 {
	return M.latticeConstant
}

// SetLatticeConstant sets the lattice constant. It must be a positive real number.
func (M *Material) SetLatticeConstant(lc float64) error {
	if !(lc > 0) || math.IsInf(lc, 0) {
		err := newError(fmt.Sprintf("lattice constant %v", lc), ErrLatticeConstant)
		err.Decorate("SetLatticeConstant")
		return err
	}
	M.latticeConstant = lc
	return nil
}

// BravaisVector returns a copy of the Bravais vectors, in units of the lattice constant.
func (M *Material) BravaisVector() *mat.Dense {
	return mat.DenseCopyOf(M.bravais)
}

// SetBravaisVector sets the Bravais vectors from the rows of b, which must be 3x3.
// b is copied.
func (M *Material) SetBravaisVector(b mat.Matrix) error {
	if r, c := b.Dims(); r != 3 || c != 3 {
		err := newError(fmt.Sprintf("got a %dx%d Bravais matrix", r, c), ErrLatticeShape)
		err.Decorate("SetBravaisVector")
		return err
	}
	M.bravais = mat.DenseCopyOf(b)
	return nil
}

// Crystallographic reports whether the coordinates of the atoms are fractional.
func (M *Material) Crystallographic() bool {
	return M.crystallographic
}

// SetCrystallographic changes how the coordinates of the atoms are interpreted.
// The coordinates themselves are not converted.
func (M *Material) SetCrystallographic(c bool) {
	M.crystallographic = c
}

// PeriodicTable returns the element data used by the material.
func (M *Material) PeriodicTable() PeriodicTable {
	return M.table
}

// SetPeriodicTable replaces the element data used by the material. A nil
// table restores Elements.
func (M *Material) SetPeriodicTable(pt PeriodicTable) {
	if pt == nil {
		pt = Elements
	}
	M.table = pt
}

// Table returns the tabulated view of the material, with the coordinates as stored.
func (M *Material) Table() *Table {
	return Tabulate(M.atoms)
}

// BravaisLattice returns the lattice vectors in A, as rows: the Bravais vectors
// scaled by the lattice constant. It is computed anew on each call.
func (M *Material) BravaisLattice() *mat.Dense {
	var L mat.Dense
	L.Scale(M.latticeConstant, M.bravais)
	return &L
}

// ReciprocalLattice returns the reciprocal lattice vectors, as rows,
// 2*pi times the transposed inverse of the Bravais lattice.
func (M *Material) ReciprocalLattice() (*mat.Dense, error) {
	inv, err := invertLattice(M.BravaisLattice())
	if err != nil {
		return nil, errDecorate(err, "ReciprocalLattice")
	}
	var R mat.Dense
	R.Scale(2*math.Pi, inv.T())
	return &R, nil
}

// SupercellLattice returns the element-wise product of the Bravais lattice and m.
// A nil m is taken as the identity matrix.
func (M *Material) SupercellLattice(m mat.Matrix) (*mat.Dense, error) {
	L := M.BravaisLattice()
	if singular(L) {
		err := newError("the Bravais lattice has no inverse", ErrSingularLattice)
		err.Decorate("SupercellLattice")
		return nil, err
	}
	if m == nil {
		m = eye3()
	}
	if r, c := m.Dims(); r != 3 || c != 3 {
		err := newError(fmt.Sprintf("got a %dx%d supercell matrix", r, c), ErrLatticeShape)
		err.Decorate("SupercellLattice")
		return nil, err
	}
	var S mat.Dense
	S.MulElem(L, m)
	return &S, nil
}

// Volume returns the volume of the unit cell, in A^3.
func (M *Material) Volume() float64 {
	return math.Abs(mat.Det(M.BravaisLattice()))
}

// CartesianTable returns the tabulated view of the material with Cartesian
// coordinates, in A.
func (M *Material) CartesianTable() *Table {
	T := M.Table()
	if !M.crystallographic || T.Len() == 0 {
		return T
	}
	C := v3.Zeros(T.Len())
	C.Mul(T.Coords(), M.BravaisLattice())
	return T.withCoords(C)
}

// FractionalTable returns the tabulated view of the material with fractional
// coordinates.
func (M *Material) FractionalTable() (*Table, error) {
	T := M.Table()
	if M.crystallographic || T.Len() == 0 {
		return T, nil
	}
	inv, err := invertLattice(M.BravaisLattice())
	if err != nil {
		return nil, errDecorate(err, "FractionalTable")
	}
	C := v3.Zeros(T.Len())
	C.Mul(T.Coords(), inv)
	return T.withCoords(C), nil
}

// singular reports whether the rows of L are (numerically) linearly dependent.
func singular(L *mat.Dense) bool {
	scale := 1.0
	for i := 0; i < 3; i++ {
		n := floats.Norm(L.RawRowView(i), 2)
		if n == 0 {
			return true
		}
		scale *= n
	}
	return math.Abs(mat.Det(L)) <= 1e-12*scale
}

func invertLattice(L *mat.Dense) (*mat.Dense, error) {
	err := newError("the Bravais lattice has no inverse", ErrSingularLattice)
	err.Decorate("invertLattice")
	if singular(L) {
		return nil, err
	}
	var inv mat.Dense
	if ierr := inv.Inverse(L); ierr != nil {
		//gonum still returns the inverse of ill-conditioned, non-singular matrices.
		var cond mat.Condition
		if !errors.As(ierr, &cond) || math.IsInf(float64(cond), 1) {
			return nil, err
		}
	}
	return &inv, nil
}
