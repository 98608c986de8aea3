// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the hwtrace command line interface.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/db47h/hwtrace/internal/config"
	"github.com/db47h/hwtrace/vcd"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool

	logger *slog.Logger
}

// NewRootCommand creates the root command for the hwtrace CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hwtrace",
		Short: "Write VCD waveform traces",
		Long: "hwtrace writes Value Change Dump traces from stimulus scripts or\n" +
			"simulated circuits. The trace file is valid at all times while it is written.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default .hwtrace.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewCounterCommand(opts))

	return cmd
}

func (o *RootOptions) init(cmd *cobra.Command) error {
	if o.ConfigFile != "" {
		viper.SetConfigFile(o.ConfigFile)
	} else {
		viper.SetConfigName(".hwtrace")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("HWTRACE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine, an explicit one must exist.
		var nf viper.ConfigFileNotFoundError
		if o.ConfigFile != "" || !errors.As(err, &nf) {
			return errors.Wrap(err, "read config")
		}
	}

	if err := bindFlags(cmd.Flags()); err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") || !viper.IsSet("verbose") {
		viper.Set("verbose", o.Verbose)
	}

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)
	return nil
}

// bindFlags binds command flags to the config keys of the same name, with
// dashes replaced by underscores.
func bindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "verbose" {
			return
		}
		err = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return errors.Wrap(err, "bind flags")
}

// addTraceFlags adds the flags controlling trace output.
func addTraceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "trace.vcd", "output VCD file")
	cmd.Flags().String("timescale", "", "timescale declaration, like 1ns")
	cmd.Flags().Bool("atomic", false, "replace the output file atomically on each rebuild")
	cmd.Flags().String("log-dir", "", "directory for the temporary event log (default: output directory)")
	cmd.Flags().Bool("trace", true, "write the trace file (false runs without I/O)")
}

// openTracer returns the tracer configured by cfg. timescale, if not empty,
// overrides the configured timescale.
func (o *RootOptions) openTracer(cfg config.Config, timescale string) (vcd.Tracer, error) {
	if !cfg.Trace {
		return vcd.Nop{}, nil
	}
	if timescale == "" {
		timescale = cfg.Timescale
	}
	opts := []vcd.Option{
		vcd.WithTimescale(timescale),
		vcd.WithAtomic(cfg.Atomic),
		vcd.WithLogger(o.log()),
	}
	if cfg.LogDir != "" {
		opts = append(opts, vcd.WithLogDir(cfg.LogDir))
	}
	return vcd.New(cfg.Output, opts...)
}

func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
