/*
 * potential.go, part of ocelot.
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

// Package potential defines the surface of bonded and non-bonded potential energies
// between the atoms of a structure. The energy terms themselves are not implemented yet.
package potential

import (
	"errors"
	"fmt"

	"github.com/ocelotmaterials/ocelot"
)

// Structure is what a potential needs from a molecule: its atoms and its bonds.
// *ocelot.Molecule implements it.
type Structure interface {
	Atoms() []*ocelot.Atom
	Bonds(tolerance float64) ([]ocelot.Bond, error)
}

var _ Structure = (*ocelot.Molecule)(nil)

// ErrFixedUnset is returned by the harmonic terms when it was never decided
// whether the structure is fixed.
var ErrFixedUnset = errors.New("potential: fixed flag not set")

// Potential is a potential energy among the atoms of a structure.
type Potential struct {
	s        Structure
	fixed    bool
	fixedSet bool
}

// New returns a potential for s.
func New(s Structure) *Potential {
	return &Potential{s: s}
}

// SetFixed sets whether the structure is fixed, in which case the harmonic
// terms do not apply.
func (P *Potential) SetFixed(fixed bool) {
	P.fixed = fixed
	P.fixedSet = true
}

// Fixed returns the fixed flag, and whether it was ever set.
func (P *Potential) Fixed() (fixed, set bool) {
	return P.fixed, P.fixedSet
}

// Topology is the part of a structure the energy terms are evaluated on.
type Topology struct {
	Atoms []*ocelot.Atom
	Bonds []ocelot.Bond
}

// Topology collects the atoms of the structure and its bonds, detected with
// the given tolerance.
func (P *Potential) Topology(tolerance float64) (*Topology, error) {
	bonds, err := P.s.Bonds(tolerance)
	if err != nil {
		return nil, fmt.Errorf("potential: topology: %w", err)
	}
	return &Topology{Atoms: P.s.Atoms(), Bonds: bonds}, nil
}

func notImplemented(term string) error {
	return fmt.Errorf("potential: %s: %w", term, ocelot.ErrNotImplemented)
}

// LennardJones is the 12-6 Lennard-Jones energy of the non-bonded pairs,
// V(r) = 4e((s/r)^12 - (s/r)^6).
func (P *Potential) LennardJones() (float64, error) {
	return 0, notImplemented("Lennard-Jones")
}

// ReducedLennardJones is the Lennard-Jones energy truncated at 2.5s and shifted
// to be continuous at the cutoff.
func (P *Potential) ReducedLennardJones() (float64, error) {
	return 0, notImplemented("reduced Lennard-Jones")
}

// Buckingham is V(r) = A exp(-Br) - C/r^6.
func (P *Potential) Buckingham() (float64, error) {
	return 0, notImplemented("Buckingham")
}

func (P *Potential) StillingerWeber() (float64, error) {
	return 0, notImplemented("Stillinger-Weber")
}

// Coulomb is the electrostatic energy between charged particles.
func (P *Potential) Coulomb() (float64, error) {
	return 0, notImplemented("Coulomb")
}

// Morse is V(r) = D(1 - exp(-a(r-re)))^2.
func (P *Potential) Morse() (float64, error) {
	return 0, notImplemented("Morse")
}

// harmonic checks the fixed flag before reporting the term as not implemented.
func (P *Potential) harmonic(term string) (float64, error) {
	if !P.fixedSet {
		return 0, fmt.Errorf("potential: %s: %w", term, ErrFixedUnset)
	}
	return 0, notImplemented(term)
}

func (P *Potential) HarmonicBonds() (float64, error) {
	return P.harmonic("harmonic bonds")
}

func (P *Potential) HarmonicAngles() (float64, error) {
	return P.harmonic("harmonic angles")
}

func (P *Potential) HarmonicDihedral() (float64, error) {
	return P.harmonic("harmonic dihedral")
}

func (P *Potential) HarmonicImproper() (float64, error) {
	return P.harmonic("harmonic improper")
}
