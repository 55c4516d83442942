/*
 * plot_test.go, part of ocelot.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocelotmaterials/ocelot"
)

func TestBondLengths(Te *testing.T) {
	bonds := []ocelot.Bond{
		{I: 0, J: 1, Species1: 6, Species2: 1, Dist: 1.09},
		{I: 0, J: 2, Species1: 1, Species2: 6, Dist: 1.10},
		{I: 0, J: 3, Species1: 6, Species2: 6, Dist: 1.54},
	}
	lengths, err := BondLengths(bonds, nil)
	require.NoError(Te, err)
	assert.Len(Te, lengths, 2)
	assert.Equal(Te, []float64{1.09, 1.10}, []float64(lengths["C-H"]))
	assert.Equal(Te, []float64{1.54}, []float64(lengths["C-C"]))

	_, err = BondLengths([]ocelot.Bond{{Species1: 200, Species2: 1}}, nil)
	assert.ErrorIs(Te, err, ocelot.ErrUnknownElement)
}

func TestBondHistogram(Te *testing.T) {
	bonds := []ocelot.Bond{
		{I: 0, J: 1, Species1: 6, Species2: 1, Dist: 1.09},
		{I: 0, J: 2, Species1: 6, Species2: 1, Dist: 1.10},
		{I: 0, J: 3, Species1: 6, Species2: 6, Dist: 1.54},
	}
	name := filepath.Join(Te.TempDir(), "bonds")
	require.NoError(Te, BondHistogram(bonds, nil, 0, "Test bonds", name))
	info, err := os.Stat(name + ".png")
	require.NoError(Te, err)
	assert.Greater(Te, info.Size(), int64(0))

	assert.Error(Te, BondHistogram(nil, nil, 10, "empty", name))
}

func TestColors(Te *testing.T) {
	r, g, b := iHVS2RGB(0, 1, 1)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = iHVS2RGB(0, 0.5, 0)
	assert.Equal(Te, [3]uint8{127, 127, 127}, [3]uint8{r, g, b})
}
