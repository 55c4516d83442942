/*
 * conversion.go, part of ocelot.
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

//This provides useful conversion factors

//Conversions
const (
	Ha2EV  = 27.211386245988 //Hartree to eV
	EV2Ha  = 1 / 27.211386245988
	Ha2Ry  = 2.0 //Hartree to Rydberg
	Ry2Ha  = 0.5
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
)
