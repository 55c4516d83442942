/*
 * potential_test.go, part of ocelot.
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

package potential

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocelotmaterials/ocelot"
)

func methane(Te *testing.T) *ocelot.Molecule {
	coords := [][]float64{
		{0.86380, 1.07246, 1.16831},
		{0.76957, 0.07016, 1.64057},
		{1.93983, 1.32622, 1.04881},
		{0.37285, 1.83372, 1.81325},
		{0.37294, 1.05973, 0.17061},
	}
	atoms := make([]*ocelot.Atom, len(coords))
	for i, c := range coords {
		z := 1
		if i == 0 {
			z = 6
		}
		a, err := ocelot.NewAtom(z, c)
		require.NoError(Te, err)
		atoms[i] = a
	}
	return ocelot.NewMolecule(atoms, 0, 0)
}

func TestTopology(Te *testing.T) {
	P := New(methane(Te))
	top, err := P.Topology(ocelot.DefaultBondTolerance)
	require.NoError(Te, err)
	assert.Len(Te, top.Atoms, 5)
	assert.Len(Te, top.Bonds, 4)
}

func TestTermsNotImplemented(Te *testing.T) {
	P := New(methane(Te))
	for name, term := range map[string]func() (float64, error){
		"LennardJones":        P.LennardJones,
		"ReducedLennardJones": P.ReducedLennardJones,
		"Buckingham":          P.Buckingham,
		"StillingerWeber":     P.StillingerWeber,
		"Coulomb":             P.Coulomb,
		"Morse":               P.Morse,
	} {
		_, err := term()
		assert.True(Te, errors.Is(err, ocelot.ErrNotImplemented), name)
	}
}

func TestHarmonicNeedsFixed(Te *testing.T) {
	P := New(methane(Te))
	harmonic := []func() (float64, error){P.HarmonicBonds, P.HarmonicAngles, P.HarmonicDihedral, P.HarmonicImproper}
	for _, term := range harmonic {
		_, err := term()
		assert.ErrorIs(Te, err, ErrFixedUnset)
	}
	P.SetFixed(false)
	fixed, set := P.Fixed()
	assert.False(Te, fixed)
	assert.True(Te, set)
	for _, term := range harmonic {
		_, err := term()
		assert.ErrorIs(Te, err, ocelot.ErrNotImplemented)
	}
}
