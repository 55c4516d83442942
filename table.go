/*
 * table.go, part of ocelot.
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
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	v3 "github.com/ocelotmaterials/ocelot/v3"
)

// Table is the tabulated view of a list of atoms: a species column and the
// x, y, z columns (as a v3.Matrix), sorted by ascending species. Atoms with the same
// species keep their relative order. All the writers consume this view.
type Table struct {
	species []int
	coords  *v3.Matrix
}

// Tabulate builds the tabulated view of atoms. The returned table has
// exactly one row per atom.
func Tabulate(atoms []*Atom) *Table {
	n := len(atoms)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return atoms[order[i]].species < atoms[order[j]].species
	})
	raw := atomsMatrix(atoms)
	T := &Table{species: make([]int, n), coords: v3.Zeros(n)}
	for row, i := range order {
		T.species[row] = atoms[i].species
	}
	T.coords.SomeVecs(raw, order)
	return T
}

// atomsMatrix returns the coordinates of atoms, in order, as a Matrix.
func atomsMatrix(atoms []*Atom) *v3.Matrix {
	data := make([]float64, 0, 3*len(atoms))
	for _, a := range atoms {
		data = append(data, a.coords[:]...)
	}
	C, _ := v3.NewMatrix(data)
	return C
}

// Len returns the number of rows in the table.
func (T *Table) Len() int {
	return len(T.species)
}

// Species returns the atomic number in row i.
func (T *Table) Species(i int) int {
	return T.species[i]
}

// Coords returns the coordinate columns of the table. They are not a copy.
func (T *Table) Coords() *v3.Matrix {
	return T.coords
}

// Row returns the species and a copy of the coordinates in row i.
func (T *Table) Row(i int) (int, []float64) {
	return T.species[i], T.coords.Vec(i)
}

// withCoords returns a table with the species of T and the coordinates C.
func (T *Table) withCoords(C *v3.Matrix) *Table {
	return &Table{species: T.species, coords: C}
}

// SpeciesCount is the number of atoms of a given species.
type SpeciesCount struct {
	Species int
	Count   int
}

// Groups returns each distinct species in the table with its number of atoms,
// in order of first appearance.
func (T *Table) Groups() []SpeciesCount {
	var ret []SpeciesCount
	for _, z := range T.species {
		if l := len(ret); l > 0 && ret[l-1].Species == z {
			ret[l-1].Count++
			continue
		}
		ret = append(ret, SpeciesCount{Species: z, Count: 1})
	}
	return ret
}

// String renders the table with a row index column.
func (T *Table) String() string {
	b := &strings.Builder{}
	table := tablewriter.NewTable(b, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header([]string{"#", "species", "x", "y", "z"})
	for i := range T.species {
		row := []string{strconv.Itoa(i), strconv.Itoa(T.species[i])}
		for _, c := range T.coords.Vec(i) {
			row = append(row, strconv.FormatFloat(c, 'f', 8, 64))
		}
		table.Append(row)
	}
	table.Render()
	return b.String()
}
