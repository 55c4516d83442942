/*
 * root.go, part of ocelot.
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

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ocelotmaterials/ocelot"
	"github.com/ocelotmaterials/ocelot/internal/config"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configPath string
	xyzPath    string
	kind       string
	envFile    string
	debug      bool
}

// app carries what the subcommands share once the root command has run.
type app struct {
	opts   rootOptions
	cfg    *config.Config
	s      *config.Structure
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "ocelot",
		Short: "Inspect and convert molecules and periodic materials",
		Long: "ocelot builds a molecule or a material from a structure description file\n" +
			"(YAML, see --config) and/or an XYZ file, and reports on it or writes it\n" +
			"in another format. Settings can be overridden with OCELOT_* variables.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", "", "structure description file (YAML)")
	pf.StringVarP(&a.opts.xyzPath, "xyz", "x", "", "read the atoms from this XYZ file (.gz and .zst are decompressed)")
	pf.StringVarP(&a.opts.kind, "kind", "k", "", "override the kind of structure: molecule or material")
	pf.StringVar(&a.opts.envFile, "env-file", "", "read OCELOT_* settings from this dotenv file")
	pf.BoolVar(&a.opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newConvertCmd(a),
		newBondsCmd(a),
		newLatticeCmd(a),
		newTableCmd(a),
		newPlotBondsCmd(a),
	)
	return cmd
}

// setup loads the configuration, sets the logger up and builds the structure.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
		Prefix:          "ocelot",
	})
	if a.opts.envFile != "" {
		if err := config.LoadEnvFile(a.opts.envFile); err != nil {
			return err
		}
	}
	var err error
	if a.opts.configPath != "" {
		a.cfg, err = config.Load(a.opts.configPath)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(a.cfg.Log.Level); err == nil {
		a.logger.SetLevel(level)
	} else {
		a.logger.Warn("unknown log level, using info", "level", a.cfg.Log.Level)
	}
	if a.opts.debug {
		a.logger.SetLevel(log.DebugLevel)
	}
	if a.opts.kind != "" {
		a.cfg.Kind = a.opts.kind
		if err := a.cfg.Validate(); err != nil {
			return fmt.Errorf("--kind: %w", err)
		}
	}
	a.s, err = a.cfg.Build()
	if err != nil {
		return err
	}
	if a.opts.xyzPath != "" {
		a.logger.Debug("reading atoms", "file", a.opts.xyzPath)
		if err := a.s.Chemical().ReadXYZFile(a.opts.xyzPath); err != nil {
			return err
		}
	}
	a.logger.Debug("structure ready", "kind", a.cfg.Kind, "atoms", a.s.Chemical().Len())
	return nil
}

// molecule returns the structure as a molecule, or an error if it is a material.
func (a *app) molecule() (*ocelot.Molecule, error) {
	if a.s.Molecule == nil {
		return nil, fmt.Errorf("this command needs a molecule (use --kind molecule)")
	}
	return a.s.Molecule, nil
}

// material returns the structure as a material, or an error if it is a molecule.
func (a *app) material() (*ocelot.Material, error) {
	if a.s.Material == nil {
		return nil, fmt.Errorf("this command needs a material (use --kind material)")
	}
	return a.s.Material, nil
}
