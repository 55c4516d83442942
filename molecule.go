/*
 * molecule.go, part of ocelot.
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

// DefaultVacuum is the padding, in A, put around an isolated molecule.
const DefaultVacuum = 15.0

// Molecule is a finite (non-periodic) collection of atoms with a charge
// and a spin. Coordinates are absolute Cartesian positions.
type Molecule struct {
	atoms  []*Atom
	charge float64
	spin   float64
	vacuum float64
	table  PeriodicTable
}

// NewMolecule returns a molecule made of copies of atoms, with the given charge and spin.
// A nil atoms gives a molecule with a single unset atom at the origin.
func NewMolecule(atoms []*Atom, charge, spin float64) *Molecule {
	if atoms == nil {
		atoms = []*Atom{{}}
	}
	return &Molecule{
		atoms:  copyAtoms(atoms),
		charge: charge,
		spin:   spin,
		vacuum: DefaultVacuum,
		table:  Elements,
	}
}

// Atoms returns the atoms of the molecule. They belong to the molecule;
// modifying them modifies the molecule.
func (M *Molecule) Atoms() []*Atom {
	return M.atoms
}

// Atom returns the atom i. It panics if i is out of range.
func (M *Molecule) Atom(i int) *Atom {
	return M.atoms[i]
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

func (M *Molecule) Charge() float64 {
	return M.charge
}

func (M *Molecule) SetCharge(c float64) {
	M.charge = c
}

func (M *Molecule) Spin() float64 {
	return M.spin
}

func (M *Molecule) SetSpin(s float64) {
	M.spin = s
}

func (M *Molecule) Vacuum() float64 {
	return M.vacuum
}

func (M *Molecule) SetVacuum(v float64) {
	M.vacuum = v
}

// PeriodicTable returns the element data used by the molecule.
func (M *Molecule) PeriodicTable() PeriodicTable {
	return M.table
}

// SetPeriodicTable replaces the element data used by the molecule. A nil
// table restores Elements.
func (M *Molecule) SetPeriodicTable(pt PeriodicTable) {
	if pt == nil {
		pt = Elements
	}
	M.table = pt
}

// Table returns the tabulated view of the molecule.
func (M *Molecule) Table() *Table {
	return Tabulate(M.atoms)
}

// Extent returns the size of the molecule along each Cartesian axis.
func (M *Molecule) Extent() [3]float64 {
	return M.Table().Coords().Span()
}

// Box returns the dimensions of an orthorhombic box holding the molecule
// with its vacuum padding on both sides along each axis.
func (M *Molecule) Box() [3]float64 {
	box := M.Extent()
	for i := range box {
		box[i] += 2 * M.vacuum
	}
	return box
}
