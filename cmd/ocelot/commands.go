/*
 * commands.go, part of ocelot.
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

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/ocelotmaterials/ocelot"
	"github.com/ocelotmaterials/ocelot/chemplot"
)

// outputFormat guesses the format of name from its extension, ignoring
// a compression suffix.
func outputFormat(name string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(name), ".gz"), ".zst")
	switch {
	case strings.HasSuffix(base, ".xyz"):
		return "xyz"
	case strings.HasSuffix(base, ".yaml"), strings.HasSuffix(base, ".yml"):
		return "yaml"
	case strings.HasSuffix(base, ".vasp"), strings.HasPrefix(base, "POSCAR"):
		return "poscar"
	}
	return ""
}

func newConvertCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert OUTPUT",
		Short: "Write the structure as XYZ, POSCAR or YAML",
		Long: "convert writes the structure to OUTPUT. The format is taken from --format or,\n" +
			"failing that, from the name: *.xyz, *.yaml, *.vasp or POSCAR*. A .gz or .zst\n" +
			"suffix compresses the output.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]
			if format == "" {
				format = outputFormat(out)
			}
			a.logger.Debug("converting", "output", out, "format", format)
			switch format {
			case "xyz":
				return a.s.Chemical().WriteXYZFile(out)
			case "yaml", "poscar":
				M, err := a.material()
				if err != nil {
					return err
				}
				if format == "yaml" {
					return M.WriteYAMLFile(out)
				}
				return M.WritePOSCARFile(out)
			}
			return fmt.Errorf("cannot tell the output format of %q, use --format", out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: xyz, poscar or yaml")
	return cmd
}

func newBondsCmd(a *app) *cobra.Command {
	var tolerance float64
	cmd := &cobra.Command{
		Use:   "bonds",
		Short: "List the covalent bonds of a molecule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			M, err := a.molecule()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tolerance") {
				tolerance = a.cfg.BondTolerance
			}
			bonds, err := M.Bonds(tolerance)
			if err != nil {
				return err
			}
			a.logger.Debug("bonds found", "count", len(bonds), "tolerance", tolerance)
			return writeBonds(cmd.OutOrStdout(), bonds, M.PeriodicTable())
		},
	}
	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", ocelot.DefaultBondTolerance, "relative tolerance on the sum of covalent radii")
	return cmd
}

func writeBonds(w io.Writer, bonds []ocelot.Bond, pt ocelot.PeriodicTable) error {
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header([]string{"i", "j", "pair", "distance"})
	for _, b := range bonds {
		s1, err := pt.Symbol(b.Species1)
		if err != nil {
			return err
		}
		s2, err := pt.Symbol(b.Species2)
		if err != nil {
			return err
		}
		table.Append([]string{
			strconv.Itoa(b.I),
			strconv.Itoa(b.J),
			s1 + "-" + s2,
			strconv.FormatFloat(b.Dist, 'f', 5, 64),
		})
	}
	return table.Render()
}

func newLatticeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lattice",
		Short: "Report the Bravais, reciprocal and supercell lattices of a material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			M, err := a.material()
			if err != nil {
				return err
			}
			R, err := M.ReciprocalLattice()
			if err != nil {
				return err
			}
			table := tablewriter.NewTable(cmd.OutOrStdout(), tablewriter.WithHeaderAutoFormat(tw.Off))
			table.Header([]string{"lattice", "x", "y", "z"})
			appendRows(table, "bravais", M.BravaisLattice())
			appendRows(table, "reciprocal", R)
			if a.s.KGrid != nil {
				S, err := a.s.KGrid.Supercell()
				if err != nil {
					return err
				}
				appendRows(table, "supercell", S)
			}
			if err := table.Render(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "volume: %.8f A^3\n", M.Volume())
			if a.s.Planewave != nil {
				c, unit := a.s.Planewave.EnergyCutoff()
				fmt.Fprintf(cmd.OutOrStdout(), "energy cutoff: %.4f %s\n", c, unit)
			}
			return nil
		},
	}
}

func appendRows(table *tablewriter.Table, name string, L mat.Matrix) {
	for i := 0; i < 3; i++ {
		row := []string{fmt.Sprintf("%s %d", name, i+1)}
		for j := 0; j < 3; j++ {
			row = append(row, strconv.FormatFloat(L.At(i, j), 'f', 8, 64))
		}
		table.Append(row)
	}
}

func newTableCmd(a *app) *cobra.Command {
	var cartesian bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the tabulated structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			T := a.s.Chemical().Table()
			if cartesian && a.s.Material != nil {
				T = a.s.Material.CartesianTable()
			}
			_, err := io.WriteString(cmd.OutOrStdout(), T.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&cartesian, "cartesian", false, "print Cartesian coordinates for crystallographic materials")
	return cmd
}

func newPlotBondsCmd(a *app) *cobra.Command {
	var bins int
	var title string
	cmd := &cobra.Command{
		Use:   "plot-bonds NAME",
		Short: "Draw a histogram of the bond lengths of a molecule in NAME.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			M, err := a.molecule()
			if err != nil {
				return err
			}
			bonds, err := M.Bonds(a.cfg.BondTolerance)
			if err != nil {
				return err
			}
			a.logger.Info("plotting bond lengths", "bonds", len(bonds), "file", args[0]+".png")
			return chemplot.BondHistogram(bonds, M.PeriodicTable(), bins, title, args[0])
		},
	}
	cmd.Flags().IntVar(&bins, "bins", chemplot.DefaultBins, "number of bins")
	cmd.Flags().StringVar(&title, "title", "Bond lengths", "title of the plot")
	return cmd
}
