/*
 * doc.go, part of ocelot.
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

/*Package ocelot is the main package of the ocelot library. It provides atom, molecule and
material structures, the lattice algebra of periodic materials, and facilities for reading
and writing some files used in computational materials science.



	**ocelot Capabilities**


    Atoms with a validated atomic number and 3 real coordinates.

    Isolated molecules with charge, spin and vacuum padding, with covalent bonds inferred
	from the covalent radii of their atoms. Large molecules are searched concurrently.

    Periodic materials, with fractional (crystallographic) or Cartesian coordinates.
	Bravais, reciprocal and supercell lattices, and conversion between fractional and
	Cartesian coordinates.

    A tabulated view of any collection of atoms, sorted by species, consumed by all
	the writers.

    Reads/writes XYZ files, writes POSCAR (VASP) and YAML files. Files ending in .gz
	or .zst are transparently (de)compressed.

    K-grid and plane-wave cutoff parameters for a material (storage only).

    The element data (symbols and covalent radii) come from a PeriodicTable, which
	can be replaced for each molecule or material.

*/
package ocelot
