/*
 * yaml.go, part of ocelot.
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
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

func floatNode(f float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'f', 8, 64)}
}

func intNode(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func flowRow(nodes ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle, Content: nodes}
}

// WriteYAML writes the material to w as a YAML document with two keys: "cell", the
// 3 Bravais lattice vectors, and "atoms", which maps each row of the tabulated
// material to its species and its coordinates, as stored.
func (M *Material) WriteYAML(w io.Writer) error {
	L := M.BravaisLattice()
	cell := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i := 0; i < 3; i++ {
		r := L.RawRowView(i)
		cell.Content = append(cell.Content, flowRow(floatNode(r[0]), floatNode(r[1]), floatNode(r[2])))
	}
	T := M.Table()
	atoms := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < T.Len(); i++ {
		c := T.Coords().RawRowView(i)
		atoms.Content = append(atoms.Content, intNode(i),
			flowRow(intNode(T.Species(i)), floatNode(c[0]), floatNode(c[1]), floatNode(c[2])))
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{strNode("cell"), cell, strNode("atoms"), atoms},
	}}}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("ocelot: writing YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("ocelot: writing YAML: %w", err)
	}
	return nil
}

// ReadYAML is not implemented.
func (M *Material) ReadYAML(r io.Reader) error {
	return notImplemented("YAML input", "ReadYAML")
}
