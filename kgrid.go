/*
 * kgrid.go, part of ocelot.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

// KGrid is a sampling of the Brillouin zone of a material, stored as a 3x3 matrix
// of divisions and a shift. Only storage is provided; no k-points are generated.
type KGrid struct {
	*Material
	matrix *mat.Dense
	shift  [3]float64
}

// NewKGrid returns a k-grid for M. A nil matrix gives the identity.
func NewKGrid(M *Material, matrix mat.Matrix, shift [3]float64) (*KGrid, error) {
	if matrix == nil {
		matrix = eye3()
	}
	if r, c := matrix.Dims(); r != 3 || c != 3 {
		err := newError(fmt.Sprintf("got a %dx%d k-grid matrix", r, c), ErrLatticeShape)
		err.Decorate("NewKGrid")
		return nil, err
	}
	return &KGrid{Material: M, matrix: mat.DenseCopyOf(matrix), shift: shift}, nil
}

// Matrix returns a copy of the k-grid matrix.
func (K *KGrid) Matrix() *mat.Dense {
	return mat.DenseCopyOf(K.matrix)
}

// Shift returns the shift of the grid.
func (K *KGrid) Shift() [3]float64 {
	return K.shift
}

// Supercell returns the element-wise product of the Bravais lattice of the
// material and the k-grid matrix.
func (K *KGrid) Supercell() (*mat.Dense, error) {
	S, err := K.SupercellLattice(K.matrix)
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	return S, nil
}

// EnergyUnit is the unit of an energy cutoff.
type EnergyUnit int

const (
	Hartree EnergyUnit = iota
	ElectronVolt
	Rydberg
)

func (u EnergyUnit) String() string {
	switch u {
	case Hartree:
		return "Ha"
	case ElectronVolt:
		return "eV"
	case Rydberg:
		return "Ry"
	}
	return fmt.Sprintf("EnergyUnit(%d)", int(u))
}

// toHartree is the factor that takes an energy in u to Hartree.
func (u EnergyUnit) toHartree() (float64, error) {
	switch u {
	case Hartree:
		return 1, nil
	case ElectronVolt:
		return EV2Ha, nil
	case Rydberg:
		return Ry2Ha, nil
	}
	err := newError(fmt.Sprintf("unknown energy unit %d", int(u)), ErrEnergyUnit)
	return 0, err
}

// ParseEnergyUnit returns the unit named by s: "Ha", "eV" or "Ry", in any case.
func ParseEnergyUnit(s string) (EnergyUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ha", "hartree":
		return Hartree, nil
	case "ev":
		return ElectronVolt, nil
	case "ry", "rydberg":
		return Rydberg, nil
	}
	err := newError(fmt.Sprintf("unknown energy unit %q", s), ErrEnergyUnit)
	err.Decorate("ParseEnergyUnit")
	return 0, err
}

// DefaultEnergyCutoff is the plane-wave cutoff used when none is given, in Hartree.
const DefaultEnergyCutoff = 20.0

// Planewave is a plane-wave basis on a k-grid, given by its energy cutoff.
// As with KGrid, only the parameters are stored.
type Planewave struct {
	*KGrid
	cutoff float64
	unit   EnergyUnit
}

// NewPlanewave returns a plane-wave basis with the given cutoff, which must be
// positive, expressed in unit.
func NewPlanewave(K *KGrid, cutoff float64, unit EnergyUnit) (*Planewave, error) {
	if _, err := unit.toHartree(); err != nil {
		return nil, errDecorate(err, "NewPlanewave")
	}
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		err := newError(fmt.Sprintf("energy cutoff %v", cutoff), ErrEnergyCutoff)
		err.Decorate("NewPlanewave")
		return nil, err
	}
	return &Planewave{KGrid: K, cutoff: cutoff, unit: unit}, nil
}

// EnergyCutoff returns the cutoff and the unit it is expressed in.
func (P *Planewave) EnergyCutoff() (float64, EnergyUnit) {
	return P.cutoff, P.unit
}

// CutoffIn returns the cutoff expressed in unit.
func (P *Planewave) CutoffIn(unit EnergyUnit) (float64, error) {
	to, err := unit.toHartree()
	if err != nil {
		return 0, errDecorate(err, "CutoffIn")
	}
	from, _ := P.unit.toHartree()
	return P.cutoff * from / to, nil
}
