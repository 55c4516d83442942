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

/*
Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent the positions of sets of atoms in ocelot, both in
fractional and in Cartesian coordinates. It is based on gonum's (gonum.org/v1/gonum/mat)
Dense type, with some additional restrictions because of the fixed number of columns.

A Matrix can hold zero vectors. Such an empty Matrix reports NVecs()==0 and must not be
used as an operand of gonum operations.
*/
package v3
