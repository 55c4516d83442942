/*
 * loader.go, part of ocelot.
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
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ocelotmaterials/ocelot"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "OCELOT"

// Defaults.
const (
	DefaultKind             = KindMaterial
	DefaultLatticeConstant  = 1.0
	DefaultCrystallographic = true
	DefaultLogLevel         = "info"
	DefaultEnergyUnit       = "Ha"
)

// newViper builds a Viper instance reading YAML, with OCELOT_ environment
// overrides ("lattice_constant" is OCELOT_LATTICE_CONSTANT, "log.level" is
// OCELOT_LOG_LEVEL) and the defaults.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("kind", DefaultKind)
	v.SetDefault("lattice_constant", DefaultLatticeConstant)
	v.SetDefault("crystallographic", DefaultCrystallographic)
	v.SetDefault("vacuum", ocelot.DefaultVacuum)
	v.SetDefault("charge", 0.0)
	v.SetDefault("spin", 0.0)
	v.SetDefault("bond_tolerance", ocelot.DefaultBondTolerance)
	v.SetDefault("log.level", DefaultLogLevel)
	return v
}

// Load reads the YAML file at configPath, merges any OCELOT_* environment
// variable overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from the defaults and OCELOT_* environment
// variables only. The structure it describes has no atoms.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// LoadEnvFile sets the variables in the dotenv file at path that are not set
// already, so that OCELOT_* settings can be kept in a file.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: failed to read env file %q: %w", path, err)
	}
	return nil
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if cfg.Planewave != nil {
		if cfg.Planewave.Unit == "" {
			cfg.Planewave.Unit = DefaultEnergyUnit
		}
		if cfg.Planewave.Cutoff == 0 {
			cfg.Planewave.Cutoff = ocelot.DefaultEnergyCutoff
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
