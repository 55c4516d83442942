/*
 * interfaces.go, part of ocelot.
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

import "io"

// Chemical is the capability shared by molecules and materials: an ordered list of
// atoms that can be tabulated and read from, or written to, the supported formats.
type Chemical interface {
	//Atoms returns the atoms of the collection, in insertion (or read) order.
	Atoms() []*Atom

	//Len returns the number of atoms.
	Len() int

	//Table returns the tabulated view of the atoms, as stored.
	Table() *Table

	//ReadXYZ replaces the atoms of the collection with those read from r.
	//On error, the collection is left unchanged.
	ReadXYZ(r io.Reader) error

	//WriteXYZ writes the collection to w in XYZ format.
	WriteXYZ(w io.Writer) error

	//ReadXYZFile and WriteXYZFile do the same with named files.
	ReadXYZFile(name string) error
	WriteXYZFile(name string) error
}

var (
	_ Chemical = (*Molecule)(nil)
	_ Chemical = (*Material)(nil)
)
