/*
 * config_test.go, part of ocelot.
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

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocelotmaterials/ocelot"
)

const graphene = `kind: material
lattice_constant: 2.47
bravais_vector:
  - [0.8660254037844386, -0.5, 0.0]
  - [0.8660254037844386, 0.5, 0.0]
  - [0.0, 0.0, 8.097165991902834]
atoms:
  - species: C
    coordinates: [0.0, 0.0, 0.0]
  - species: 6
    coordinates: [0.3333333333333333, 0.3333333333333333, 0.0]
kgrid:
  matrix:
    - [6, 0, 0]
    - [0, 6, 0]
    - [0, 0, 1]
planewave:
  cutoff: 680
  unit: eV
`

const methane = `kind: molecule
charge: 0
spin: 0
atoms:
  - {species: C, coordinates: [0.86380, 1.07246, 1.16831]}
  - {species: H, coordinates: [0.76957, 0.07016, 1.64057]}
  - {species: H, coordinates: [1.93983, 1.32622, 1.04881]}
  - {species: H, coordinates: [0.37285, 1.83372, 1.81325]}
  - {species: 1, coordinates: [0.37294, 1.05973, 0.17061]}
`

func writeConfig(Te *testing.T, content string) string {
	name := filepath.Join(Te.TempDir(), "structure.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestLoadMaterial(Te *testing.T) {
	cfg, err := Load(writeConfig(Te, graphene))
	require.NoError(Te, err)
	assert.Equal(Te, KindMaterial, cfg.Kind)
	assert.True(Te, cfg.Crystallographic)
	assert.Equal(Te, ocelot.DefaultBondTolerance, cfg.BondTolerance)
	assert.Equal(Te, DefaultLogLevel, cfg.Log.Level)

	S, err := cfg.Build()
	require.NoError(Te, err)
	require.NotNil(Te, S.Material)
	assert.Nil(Te, S.Molecule)
	assert.Equal(Te, 2, S.Chemical().Len())
	assert.InDelta(Te, 2.47, S.Material.LatticeConstant(), 1e-12)
	assert.Equal(Te, 6, S.Material.Atoms()[1].Species())

	require.NotNil(Te, S.KGrid)
	sc, err := S.KGrid.Supercell()
	require.NoError(Te, err)
	assert.InDelta(Te, 6*2.47*math.Sqrt(3)/2, sc.At(0, 0), 1e-9)
	assert.InDelta(Te, 0, sc.At(0, 1), 1e-12)

	require.NotNil(Te, S.Planewave)
	ha, err := S.Planewave.CutoffIn(ocelot.Hartree)
	require.NoError(Te, err)
	assert.InDelta(Te, 680/ocelot.Ha2EV, ha, 1e-9)
}

func TestLoadMolecule(Te *testing.T) {
	cfg, err := Load(writeConfig(Te, methane))
	require.NoError(Te, err)
	assert.Equal(Te, ocelot.DefaultVacuum, cfg.Vacuum)
	S, err := cfg.Build()
	require.NoError(Te, err)
	require.NotNil(Te, S.Molecule)
	bonds, err := S.Molecule.Bonds(cfg.BondTolerance)
	require.NoError(Te, err)
	assert.Len(Te, bonds, 4)
}

func TestEnvOverride(Te *testing.T) {
	Te.Setenv("OCELOT_LATTICE_CONSTANT", "3.5")
	Te.Setenv("OCELOT_LOG_LEVEL", "debug")
	cfg, err := Load(writeConfig(Te, graphene))
	require.NoError(Te, err)
	assert.Equal(Te, 3.5, cfg.LatticeConstant)
	assert.Equal(Te, "debug", cfg.Log.Level)

	cfg, err = LoadFromEnv()
	require.NoError(Te, err)
	assert.Equal(Te, 3.5, cfg.LatticeConstant)
	assert.Empty(Te, cfg.Atoms)
}

func TestEnvFile(Te *testing.T) {
	Te.Setenv("OCELOT_LOG_LEVEL", "warn")
	env := filepath.Join(Te.TempDir(), "ocelot.env")
	require.NoError(Te, os.WriteFile(env, []byte("OCELOT_KIND=molecule\nOCELOT_LOG_LEVEL=error\n"), 0o644))
	require.NoError(Te, LoadEnvFile(env))
	Te.Cleanup(func() { os.Unsetenv("OCELOT_KIND") })
	cfg, err := LoadFromEnv()
	require.NoError(Te, err)
	assert.Equal(Te, KindMolecule, cfg.Kind)
	assert.Equal(Te, "warn", cfg.Log.Level, "variables already set win")

	assert.Error(Te, LoadEnvFile(filepath.Join(Te.TempDir(), "none.env")))
}

func TestInvalid(Te *testing.T) {
	_, err := Load(writeConfig(Te, "kind: crystal\n"))
	assert.Error(Te, err)

	_, err = Load(writeConfig(Te, "kind: molecule\nkgrid:\n  shift: [0, 0, 0]\n"))
	assert.Error(Te, err)

	_, err = Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)

	cfg, err := Load(writeConfig(Te, "atoms:\n  - species: 1.5\n    coordinates: [0, 0, 0]\n"))
	require.NoError(Te, err)
	_, err = cfg.Build()
	assert.ErrorIs(Te, err, ocelot.ErrInvalidSpecies)

	cfg, err = Load(writeConfig(Te, "atoms:\n  - species: 119\n"))
	require.NoError(Te, err)
	_, err = cfg.Build()
	assert.ErrorIs(Te, err, ocelot.ErrOutOfRange)

	cfg, err = Load(writeConfig(Te, "atoms:\n  - species: Xx\n"))
	require.NoError(Te, err)
	_, err = cfg.Build()
	assert.ErrorIs(Te, err, ocelot.ErrUnknownElement)

	cfg, err = Load(writeConfig(Te, "bravais_vector:\n  - [1, 0]\n"))
	require.NoError(Te, err)
	_, err = cfg.Build()
	assert.Error(Te, err)
}
