// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the hwtrace command line configuration.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the hwtrace command.
// Values are populated from .hwtrace.yaml, HWTRACE_* env vars, and CLI flags.
type Config struct {
	Output        string `mapstructure:"output"`
	LogDir        string `mapstructure:"log_dir"`
	Timescale     string `mapstructure:"timescale"`
	Atomic        bool   `mapstructure:"atomic"`
	Trace         bool   `mapstructure:"trace"`
	Workers       int    `mapstructure:"workers"`
	StepsPerCycle uint   `mapstructure:"steps_per_cycle"`
	Cycles        int    `mapstructure:"cycles"`
	Bits          int    `mapstructure:"bits"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("output", "trace.vcd")
	viper.SetDefault("log_dir", "")
	viper.SetDefault("timescale", "")
	viper.SetDefault("atomic", false)
	viper.SetDefault("trace", true)
	viper.SetDefault("workers", 1)
	viper.SetDefault("steps_per_cycle", 4)
	viper.SetDefault("cycles", 16)
	viper.SetDefault("bits", 8)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that numeric settings are usable.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("config: empty output path")
	}
	if c.Bits < 1 || c.Bits > 64 {
		return errors.Errorf("config: bits = %d, must be in [1, 64]", c.Bits)
	}
	if c.Cycles < 0 {
		return errors.Errorf("config: negative cycle count %d", c.Cycles)
	}
	return nil
}
