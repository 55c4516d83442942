/*
 * atomicdata.go, part of ocelot.
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
	"strings"
)

//element holds the data ocelot needs for each element.
type element struct {
	symbol string
	covrad float64
}

//elementData is indexed by atomic number minus one.
//Covalent radii (in A) from Cordero et al., 2008 (DOI:10.1039/B801115J) up to Cm,
//and from Pyykko & Atsumi, 2009 (DOI:10.1002/chem.200800987) for the heavier elements.
var elementData = [MaxSpecies]element{
	{"H", 0.31},
	{"He", 0.28},
	{"Li", 1.28},
	{"Be", 0.96},
	{"B", 0.84},
	{"C", 0.76}, //sp3
	{"N", 0.71},
	{"O", 0.66},
	{"F", 0.57},
	{"Ne", 0.58},
	{"Na", 1.66},
	{"Mg", 1.41},
	{"Al", 1.21},
	{"Si", 1.11},
	{"P", 1.07},
	{"S", 1.05},
	{"Cl", 1.02},
	{"Ar", 1.06},
	{"K", 2.03},
	{"Ca", 1.76},
	{"Sc", 1.70},
	{"Ti", 1.60},
	{"V", 1.53},
	{"Cr", 1.39},
	{"Mn", 1.39}, //low spin
	{"Fe", 1.32}, //low spin
	{"Co", 1.26}, //low spin
	{"Ni", 1.24},
	{"Cu", 1.32},
	{"Zn", 1.22},
	{"Ga", 1.22},
	{"Ge", 1.20},
	{"As", 1.19},
	{"Se", 1.20},
	{"Br", 1.20},
	{"Kr", 1.16},
	{"Rb", 2.20},
	{"Sr", 1.95},
	{"Y", 1.90},
	{"Zr", 1.75},
	{"Nb", 1.64},
	{"Mo", 1.54},
	{"Tc", 1.47},
	{"Ru", 1.46},
	{"Rh", 1.42},
	{"Pd", 1.39},
	{"Ag", 1.45},
	{"Cd", 1.44},
	{"In", 1.42},
	{"Sn", 1.39},
	{"Sb", 1.39},
	{"Te", 1.38},
	{"I", 1.39},
	{"Xe", 1.40},
	{"Cs", 2.44},
	{"Ba", 2.15},
	{"La", 2.07},
	{"Ce", 2.04},
	{"Pr", 2.03},
	{"Nd", 2.01},
	{"Pm", 1.99},
	{"Sm", 1.98},
	{"Eu", 1.98},
	{"Gd", 1.96},
	{"Tb", 1.94},
	{"Dy", 1.92},
	{"Ho", 1.92},
	{"Er", 1.89},
	{"Tm", 1.90},
	{"Yb", 1.87},
	{"Lu", 1.87},
	{"Hf", 1.75},
	{"Ta", 1.70},
	{"W", 1.62},
	{"Re", 1.51},
	{"Os", 1.44},
	{"Ir", 1.41},
	{"Pt", 1.36},
	{"Au", 1.36},
	{"Hg", 1.32},
	{"Tl", 1.45},
	{"Pb", 1.46},
	{"Bi", 1.48},
	{"Po", 1.40},
	{"At", 1.50},
	{"Rn", 1.50},
	{"Fr", 2.60},
	{"Ra", 2.21},
	{"Ac", 2.15},
	{"Th", 2.06},
	{"Pa", 2.00},
	{"U", 1.96},
	{"Np", 1.90},
	{"Pu", 1.87},
	{"Am", 1.80},
	{"Cm", 1.69},
	{"Bk", 1.68}, //Pyykko single-bond radii from here on
	{"Cf", 1.68},
	{"Es", 1.65},
	{"Fm", 1.67},
	{"Md", 1.73},
	{"No", 1.76},
	{"Lr", 1.61},
	{"Rf", 1.57},
	{"Db", 1.49},
	{"Sg", 1.43},
	{"Bh", 1.41},
	{"Hs", 1.34},
	{"Mt", 1.29},
	{"Ds", 1.28},
	{"Rg", 1.21},
	{"Cn", 1.22},
	{"Nh", 1.36},
	{"Fl", 1.43},
	{"Mc", 1.62},
	{"Lv", 1.75},
	{"Ts", 1.65},
	{"Og", 1.57},
}

// PeriodicTable gives access to the per-element data ocelot uses. Lookups
// that miss fail with ErrUnknownElement.
type PeriodicTable interface {
	//Symbol returns the chemical symbol of the element with atomic number z.
	Symbol(z int) (string, error)

	//AtomicNumber returns the atomic number of the element with symbol sym.
	AtomicNumber(sym string) (int, error)

	//CovalentRadius returns the covalent radius, in A, of the element with
	//atomic number z.
	CovalentRadius(z int) (float64, error)
}

// Elements is the default PeriodicTable, covering every element up to Og.
var Elements PeriodicTable = newElementTable()

type elementTable struct {
	bySymbol map[string]int
}

func newElementTable() *elementTable {
	t := &elementTable{bySymbol: make(map[string]int, MaxSpecies)}
	for i, e := range elementData {
		t.bySymbol[e.symbol] = i + 1
	}
	return t
}

func (t *elementTable) lookup(z int, caller string) (element, error) {
	if z < 1 || z > MaxSpecies {
		err := newError(fmt.Sprintf("no element with atomic number %d", z), ErrUnknownElement)
		err.Decorate(caller)
		return element{}, err
	}
	return elementData[z-1], nil
}

func (t *elementTable) Symbol(z int) (string, error) {
	e, err := t.lookup(z, "Symbol")
	return e.symbol, err
}

func (t *elementTable) CovalentRadius(z int) (float64, error) {
	e, err := t.lookup(z, "CovalentRadius")
	return e.covrad, err
}

//AtomicNumber ignores surrounding whitespace but not case: "Co" is cobalt, "CO" is unknown.
func (t *elementTable) AtomicNumber(sym string) (int, error) {
	z, ok := t.bySymbol[strings.TrimSpace(sym)]
	if !ok {
		err := newError(fmt.Sprintf("unknown element symbol %q", sym), ErrUnknownElement)
		err.Decorate("AtomicNumber")
		return 0, err
	}
	return z, nil
}

// symbols resolves the symbol of each species in zs, in order.
func symbols(pt PeriodicTable, zs []int) ([]string, error) {
	ret := make([]string, len(zs))
	for i, z := range zs {
		s, err := pt.Symbol(z)
		if err != nil {
			return nil, err
		}
		ret[i] = s
	}
	return ret, nil
}
