/*
 * poscar.go, part of ocelot.
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
	"strconv"
	"strings"
)

// WritePOSCAR writes the material to w in the VASP POSCAR format, with fractional
// ("Direct") coordinates. Only crystallographic materials can be written for now.
func (M *Material) WritePOSCAR(w io.Writer) error {
	if !M.crystallographic {
		return notImplemented("POSCAR output of Cartesian materials", "WritePOSCAR")
	}
	T := M.Table()
	groups := T.Groups()
	syms := make([]string, len(groups))
	counts := make([]string, len(groups))
	for i, g := range groups {
		s, err := M.table.Symbol(g.Species)
		if err != nil {
			return errDecorate(err, "WritePOSCAR")
		}
		syms[i] = s
		counts[i] = strconv.Itoa(g.Count)
	}
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "POSCAR file generated by ocelot")
	fmt.Fprintf(out, "  %.8f\n", M.latticeConstant)
	for i := 0; i < 3; i++ {
		b := M.bravais.RawRowView(i)
		fmt.Fprintf(out, "    %.8f  %.8f  %.8f\n", b[0], b[1], b[2])
	}
	fmt.Fprintf(out, "    %s\n", strings.Join(syms, "  "))
	fmt.Fprintf(out, "    %s\n", strings.Join(counts, "  "))
	fmt.Fprintln(out, "Direct")
	for i := 0; i < T.Len(); i++ {
		c := T.Coords().RawRowView(i)
		fmt.Fprintf(out, "  %.8f  %.8f  %.8f\n", c[0], c[1], c[2])
	}
	return out.Flush()
}
