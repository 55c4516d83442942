/*
 * bondplot.go, part of ocelot.
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

// Package chemplot draws plots of ocelot structures with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ocelotmaterials/ocelot"
)

// DefaultBins is the number of bins used when a non-positive number is given.
const DefaultBins = 20

func basicHistPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Bond length (A)"
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	return p
}

// BondLengths groups the lengths of bonds by the pair of species bonded, labeled
// with their symbols (heaviest first, as in "C-H"). pt resolves the symbols;
// Elements is used if it is nil.
func BondLengths(bonds []ocelot.Bond, pt ocelot.PeriodicTable) (map[string]plotter.Values, error) {
	if pt == nil {
		pt = ocelot.Elements
	}
	ret := make(map[string]plotter.Values)
	for _, b := range bonds {
		z1, z2 := b.Species1, b.Species2
		if z1 < z2 {
			z1, z2 = z2, z1
		}
		s1, err := pt.Symbol(z1)
		if err != nil {
			return nil, err
		}
		s2, err := pt.Symbol(z2)
		if err != nil {
			return nil, err
		}
		label := s1 + "-" + s2
		ret[label] = append(ret[label], b.Dist)
	}
	return ret, nil
}

// BondHistogram draws a histogram of the lengths of bonds, one colored series per
// pair of bonded species, and saves it as plotname.png.
func BondHistogram(bonds []ocelot.Bond, pt ocelot.PeriodicTable, bins int, title, plotname string) error {
	if len(bonds) == 0 {
		return fmt.Errorf("chemplot: no bonds to plot")
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	lengths, err := BondLengths(bonds, pt)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	labels := make([]string, 0, len(lengths))
	for l := range lengths {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	p := basicHistPlot(title)
	for key, label := range labels {
		h, err := plotter.NewHist(lengths[label], bins)
		if err != nil {
			return fmt.Errorf("chemplot: %s: %w", label, err)
		}
		r, g, b := colors(key, len(labels))
		h.FillColor = color.RGBA{R: r, G: g, B: b, A: 160}
		p.Add(h)
		p.Legend.Add(label, h)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	return nil
}
