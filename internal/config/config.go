/*
 * config.go, part of ocelot.
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

// Package config loads the description of a structure, and the settings of
// the ocelot command, from a YAML file and OCELOT_* environment variables.
package config

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ocelotmaterials/ocelot"
)

// Kinds of structure.
const (
	KindMolecule = "molecule"
	KindMaterial = "material"
)

// Config is a structure description plus the settings of the command line tool.
type Config struct {
	Kind  string       `mapstructure:"kind"`
	Atoms []AtomConfig `mapstructure:"atoms"`

	//Molecules
	Charge float64 `mapstructure:"charge"`
	Spin   float64 `mapstructure:"spin"`
	Vacuum float64 `mapstructure:"vacuum"`

	//Materials
	LatticeConstant  float64          `mapstructure:"lattice_constant"`
	BravaisVector    [][]float64      `mapstructure:"bravais_vector"`
	Crystallographic bool             `mapstructure:"crystallographic"`
	KGrid            *KGridConfig     `mapstructure:"kgrid"`
	Planewave        *PlanewaveConfig `mapstructure:"planewave"`

	BondTolerance float64   `mapstructure:"bond_tolerance"`
	Log           LogConfig `mapstructure:"log"`
}

// AtomConfig is one atom. Species is either an atomic number or an element symbol.
type AtomConfig struct {
	Species     any       `mapstructure:"species"`
	Coordinates []float64 `mapstructure:"coordinates"`
}

type KGridConfig struct {
	Matrix [][]float64 `mapstructure:"matrix"`
	Shift  []float64   `mapstructure:"shift"`
}

type PlanewaveConfig struct {
	Cutoff float64 `mapstructure:"cutoff"`
	Unit   string  `mapstructure:"unit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate checks the settings that do not need a structure to be built.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindMolecule, KindMaterial:
	default:
		return fmt.Errorf("kind must be %q or %q, got %q", KindMolecule, KindMaterial, c.Kind)
	}
	if c.BondTolerance < 0 {
		return fmt.Errorf("bond_tolerance must not be negative, got %v", c.BondTolerance)
	}
	if c.Kind == KindMolecule && (c.KGrid != nil || c.Planewave != nil) {
		return fmt.Errorf("kgrid and planewave only apply to materials")
	}
	if c.Planewave != nil && c.KGrid == nil {
		return fmt.Errorf("a planewave needs a kgrid")
	}
	return nil
}

// Structure is what a Config builds. Exactly one of Molecule and Material is
// set; KGrid and Planewave may be set for materials.
type Structure struct {
	Molecule  *ocelot.Molecule
	Material  *ocelot.Material
	KGrid     *ocelot.KGrid
	Planewave *ocelot.Planewave
}

// Chemical returns the molecule or the material.
func (s *Structure) Chemical() ocelot.Chemical {
	if s.Molecule != nil {
		return s.Molecule
	}
	return s.Material
}

// Build builds the structure described by c.
func (c *Config) Build() (*Structure, error) {
	atoms, err := c.atoms()
	if err != nil {
		return nil, err
	}
	if c.Kind == KindMolecule {
		M := ocelot.NewMolecule(atoms, c.Charge, c.Spin)
		M.SetVacuum(c.Vacuum)
		return &Structure{Molecule: M}, nil
	}
	bravais, err := matrix3("bravais_vector", c.BravaisVector)
	if err != nil {
		return nil, err
	}
	M, err := ocelot.NewMaterial(atoms, c.LatticeConstant, bravais, c.Crystallographic)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	S := &Structure{Material: M}
	if c.KGrid == nil {
		return S, nil
	}
	matrix, err := matrix3("kgrid.matrix", c.KGrid.Matrix)
	if err != nil {
		return nil, err
	}
	var shift [3]float64
	if c.KGrid.Shift != nil {
		if len(c.KGrid.Shift) != 3 {
			return nil, fmt.Errorf("config: kgrid.shift needs 3 components, got %d", len(c.KGrid.Shift))
		}
		copy(shift[:], c.KGrid.Shift)
	}
	if S.KGrid, err = ocelot.NewKGrid(M, matrix, shift); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Planewave == nil {
		return S, nil
	}
	unit, err := ocelot.ParseEnergyUnit(c.Planewave.Unit)
	if err != nil {
		return nil, fmt.Errorf("config: planewave.unit: %w", err)
	}
	if S.Planewave, err = ocelot.NewPlanewave(S.KGrid, c.Planewave.Cutoff, unit); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return S, nil
}

func (c *Config) atoms() ([]*ocelot.Atom, error) {
	atoms := make([]*ocelot.Atom, len(c.Atoms))
	for i, ac := range c.Atoms {
		a, err := ocelot.NewAtom(0, ac.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("config: atom %d: %w", i, err)
		}
		species := ac.Species
		if sym, ok := species.(string); ok {
			if species, err = ocelot.Elements.AtomicNumber(sym); err != nil {
				return nil, fmt.Errorf("config: atom %d: %w", i, err)
			}
		}
		if err := a.AssignSpecies(species); err != nil {
			return nil, fmt.Errorf("config: atom %d: %w", i, err)
		}
		atoms[i] = a
	}
	return atoms, nil
}

// matrix3 turns rows into a 3x3 matrix. No rows give a nil matrix.
func matrix3(key string, rows [][]float64) (mat.Matrix, error) {
	if rows == nil {
		return nil, nil
	}
	if len(rows) != 3 {
		return nil, fmt.Errorf("config: %s needs 3 rows, got %d", key, len(rows))
	}
	data := make([]float64, 0, 9)
	for i, r := range rows {
		if len(r) != 3 {
			return nil, fmt.Errorf("config: %s row %d needs 3 components, got %d", key, i, len(r))
		}
		data = append(data, r...)
	}
	return mat.NewDense(3, 3, data), nil
}
