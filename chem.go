/*
 * chem.go, part of ocelot.
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
	"fmt"
	"math"
)

// MaxSpecies is the largest atomic number known to ocelot.
const MaxSpecies = 118

// Atom is a chemical site: a species, given by its atomic number, and a
// position. Whether the position is fractional or Cartesian is decided by the
// collection that owns the atom.
type Atom struct {
	species int
	coords  [3]float64
}

// NewAtom returns an atom with the given atomic number and coordinates.
// species may be 0, which means "unset"; any other value must be
// between 1 and MaxSpecies. A nil coords places the atom at the origin.
func NewAtom(species int, coords []float64) (*Atom, error) {
	if species < 0 || species > MaxSpecies {
		err := newError(fmt.Sprintf("species %d: atomic number must be between 0 and %d", species, MaxSpecies), ErrInvalidSpecies)
		err.Decorate("NewAtom")
		return nil, err
	}
	A := &Atom{species: species}
	if coords != nil {
		if err := A.SetCoordinates(coords); err != nil {
			return nil, errDecorate(err, "NewAtom")
		}
	}
	return A, nil
}

// Species returns the atomic number of the atom.
func (A *Atom) Species() int {
	return A.species
}

// SetSpecies sets the atomic number of the atom. Unlike in NewAtom, 0
// is not accepted.
func (A *Atom) SetSpecies(z int) error {
	if z < 1 || z > MaxSpecies {
		err := newError(fmt.Sprintf("species %d: atomic number must be between 1 and %d", z, MaxSpecies), ErrOutOfRange, ErrInvalidSpecies)
		err.Decorate("SetSpecies")
		return err
	}
	A.species = z
	return nil
}

// AssignSpecies sets the atomic number from a dynamically typed value, as
// obtained from configuration files. Any Go integer type is accepted and
// checked as in SetSpecies, anything else is an ErrInvalidSpecies.
func (A *Atom) AssignSpecies(v any) error {
	var z int64
	switch x := v.(type) {
	case int:
		z = int64(x)
	case int8:
		z = int64(x)
	case int16:
		z = int64(x)
	case int32:
		z = int64(x)
	case int64:
		z = x
	case uint:
		z = int64(x)
	case uint8:
		z = int64(x)
	case uint16:
		z = int64(x)
	case uint32:
		z = int64(x)
	case uint64:
		z = int64(x)
	default:
		err := newError(fmt.Sprintf("species %v (%T): atomic species must be given by their atomic number", v, v), ErrInvalidSpecies)
		err.Decorate("AssignSpecies")
		return err
	}
	if z < 1 || z > MaxSpecies {
		err := newError(fmt.Sprintf("species %v: atomic number must be between 1 and %d", v, MaxSpecies), ErrOutOfRange, ErrInvalidSpecies)
		err.Decorate("AssignSpecies")
		return err
	}
	A.species = int(z)
	return nil
}

// Coordinates returns a copy of the position of the atom.
func (A *Atom) Coordinates() []float64 {
	return []float64{A.coords[0], A.coords[1], A.coords[2]}
}

// SetCoordinates sets the position of the atom. coords must have exactly
// 3 finite components.
func (A *Atom) SetCoordinates(coords []float64) error {
	if len(coords) != 3 {
		err := newError(fmt.Sprintf("got %d coordinates, 3 are required", len(coords)), ErrInvalidCoordinateLength)
		err.Decorate("SetCoordinates")
		return err
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			err := newError(fmt.Sprintf("coordinate %d is %v, a real number is required", i, c), ErrInvalidCoordinateType)
			err.Decorate("SetCoordinates")
			return err
		}
	}
	copy(A.coords[:], coords)
	return nil
}

// Copy returns a copy of the atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("ocelot: Attempted to copy a nil atom")
	}
	c := *A
	return &c
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom{%d %.8f %.8f %.8f}", A.species, A.coords[0], A.coords[1], A.coords[2])
}

func copyAtoms(atoms []*Atom) []*Atom {
	ret := make([]*Atom, len(atoms))
	for i, a := range atoms {
		ret[i] = a.Copy()
	}
	return ret
}
