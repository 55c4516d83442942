/*
 * xyz.go, part of ocelot.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	v3 "github.com/ocelotmaterials/ocelot/v3"
)

// ParseXYZ reads atoms in XYZ format from r: a line with the number of atoms n, a
// comment line, and n lines with an element symbol and 3 Cartesian coordinates.
// Symbols are resolved with pt (Elements if nil). Apart from blank lines, nothing
// may follow the n atom lines.
func ParseXYZ(r io.Reader, pt PeriodicTable) ([]*Atom, error) {
	if pt == nil {
		pt = Elements
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	lineno := 0
	next := func() (string, bool) {
		if !s.Scan() {
			return "", false
		}
		lineno++
		return s.Text(), true
	}
	malformed := func(format string, a ...any) error {
		err := newError(fmt.Sprintf("line %d: ", lineno)+fmt.Sprintf(format, a...), ErrMalformedXYZ)
		err.Decorate("ParseXYZ")
		return err
	}
	line, ok := next()
	if !ok {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("ocelot: reading XYZ: %w", err)
		}
		return nil, malformed("missing number of atoms")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return nil, malformed("%q is not a number of atoms", strings.TrimSpace(line))
	}
	if _, ok := next(); !ok {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("ocelot: reading XYZ: %w", err)
		}
		if n > 0 {
			return nil, malformed("missing comment line")
		}
	}
	atoms := make([]*Atom, 0, n)
	for i := 0; i < n; i++ {
		line, ok := next()
		if !ok {
			if err := s.Err(); err != nil {
				return nil, fmt.Errorf("ocelot: reading XYZ: %w", err)
			}
			return nil, malformed("%d atoms declared, %d found", n, i)
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, malformed("atom lines need 4 fields, got %d", len(fields))
		}
		z, err := pt.AtomicNumber(fields[0])
		if err != nil {
			return nil, errDecorate(err, "ParseXYZ")
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil || math.IsNaN(c[j]) || math.IsInf(c[j], 0) {
				return nil, malformed("%q is not a coordinate", fields[j+1])
			}
		}
		a, err := NewAtom(z, c[:])
		if err != nil {
			return nil, errDecorate(err, "ParseXYZ")
		}
		atoms = append(atoms, a)
	}
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, malformed("%d atoms declared, more found", n)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("ocelot: reading XYZ: %w", err)
	}
	return atoms, nil
}

// writeXYZ writes T to w in XYZ format, with an empty comment line.
// Symbols are resolved before anything is written.
func writeXYZ(w io.Writer, T *Table, pt PeriodicTable) error {
	syms, err := symbols(pt, T.species)
	if err != nil {
		return errDecorate(err, "writeXYZ")
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d\n\n", T.Len())
	for i, sym := range syms {
		c := T.Coords().RawRowView(i)
		fmt.Fprintf(out, "%s  %.8f  %.8f  %.8f\n", sym, c[0], c[1], c[2])
	}
	return out.Flush()
}

// ReadXYZ replaces the atoms of the molecule with those read from r.
// The molecule is unchanged if reading fails.
func (M *Molecule) ReadXYZ(r io.Reader) error {
	atoms, err := ParseXYZ(r, M.table)
	if err != nil {
		return errDecorate(err, "ReadXYZ")
	}
	M.atoms = atoms
	return nil
}

// WriteXYZ writes the tabulated molecule to w in XYZ format.
func (M *Molecule) WriteXYZ(w io.Writer) error {
	return errDecorate(writeXYZ(w, M.Table(), M.table), "WriteXYZ")
}

// ReadXYZ replaces the atoms of the material with those read from r. XYZ
// coordinates are Cartesian; they are made fractional if the material
// is crystallographic. The material is unchanged if reading fails.
func (M *Material) ReadXYZ(r io.Reader) error {
	atoms, err := ParseXYZ(r, M.table)
	if err != nil {
		return errDecorate(err, "ReadXYZ")
	}
	if M.crystallographic && len(atoms) > 0 {
		inv, err := invertLattice(M.BravaisLattice())
		if err != nil {
			return errDecorate(err, "ReadXYZ")
		}
		frac := v3.Zeros(len(atoms))
		frac.Mul(atomsMatrix(atoms), inv)
		for i, a := range atoms {
			copy(a.coords[:], frac.RawRowView(i))
		}
	}
	M.atoms = atoms
	return nil
}

// WriteXYZ writes the tabulated material to w in XYZ format, with
// Cartesian coordinates.
func (M *Material) WriteXYZ(w io.Writer) error {
	return errDecorate(writeXYZ(w, M.CartesianTable(), M.table), "WriteXYZ")
}
