/*
 * bonds.go, part of ocelot.
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
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	v3 "github.com/ocelotmaterials/ocelot/v3"
)

// DefaultBondTolerance is the relative tolerance on the sum of covalent radii
// used to decide whether two atoms are bonded.
const DefaultBondTolerance = 0.3

// Molecules with at least this many atoms get their bonds searched concurrently.
const concBondsThreshold = 256

// Bond is a pair of bonded atoms. I and J are the indexes of the atoms in the
// molecule, with I < J.
type Bond struct {
	I, J     int
	Species1 int
	Species2 int
	Dist     float64
}

// Bonds returns the bonds of the molecule, inferred from the covalent radii R of
// the atoms: atoms i and j are bonded if 0 < d(i,j) < (Ri+Rj)*(1+tolerance).
// Each bonded pair appears once, and the bonds are sorted by I, then J.
func (M *Molecule) Bonds(tolerance float64) ([]Bond, error) {
	n := len(M.atoms)
	radii := make([]float64, n)
	for i, a := range M.atoms {
		r, err := M.table.CovalentRadius(a.species)
		if err != nil {
			return nil, errDecorate(err, "Bonds")
		}
		radii[i] = r
	}
	C := atomsMatrix(M.atoms)
	if n < concBondsThreshold {
		return M.bondsFrom(C, radii, tolerance, 0, n), nil
	}
	//Rows are split in blocks, each block searched in its own goroutine.
	//Early rows have more partners, so blocks are many and small.
	blocks := 4 * runtime.GOMAXPROCS(0)
	size := (n + blocks - 1) / blocks
	found := make([][]Bond, blocks)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for b := 0; b < blocks; b++ {
		b := b // per-iteration copy (go 1.21 loop semantics)
		from, to := b*size, min((b+1)*size, n)
		if from >= to {
			break
		}
		g.Go(func() error {
			found[b] = M.bondsFrom(C, radii, tolerance, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "Bonds")
	}
	var bonds []Bond
	for _, f := range found {
		bonds = append(bonds, f...)
	}
	return bonds, nil
}

// bondsFrom searches the bonds between the atoms from..to-1 and the atoms after them.
func (M *Molecule) bondsFrom(C *v3.Matrix, radii []float64, tolerance float64, from, to int) []Bond {
	var bonds []Bond
	n := len(radii)
	for i := from; i < to; i++ {
		ci := C.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(ci, C.RawRowView(j), 2)
			if d > 0 && d < (radii[i]+radii[j])*(1+tolerance) {
				bonds = append(bonds, Bond{
					I:        i,
					J:        j,
					Species1: M.atoms[i].species,
					Species2: M.atoms[j].species,
					Dist:     d,
				})
			}
		}
	}
	return bonds
}

// Angles is not implemented.
func (M *Molecule) Angles(tolerance float64) ([][3]int, error) {
	return nil, notImplemented("bond angle detection", "Angles")
}

// Dihedrals is not implemented.
func (M *Molecule) Dihedrals(tolerance float64) ([][4]int, error) {
	return nil, notImplemented("dihedral detection", "Dihedrals")
}

// Impropers is not implemented.
func (M *Molecule) Impropers(tolerance float64) ([][4]int, error) {
	return nil, notImplemented("improper dihedral detection", "Impropers")
}
