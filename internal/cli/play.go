// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/hwtrace/internal/config"
	"github.com/db47h/hwtrace/internal/stimulus"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <script>",
		Short: "Write the trace of a stimulus script",
		Long: `Play a TOML or YAML stimulus script into a VCD trace.

The script's timescale, if any, takes precedence over the configured one.

Examples:
  hwtrace play bus.toml -o bus.vcd
  hwtrace play reset.yaml --atomic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd, args[0])
		},
	}
	addTraceFlags(cmd)

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command, script string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := stimulus.Load(script)
	if err != nil {
		return err
	}
	t, err := opts.openTracer(cfg, s.Timescale)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := t.Close(); err == nil {
			err = cErr
		}
	}()

	opts.log().Debug("playing stimulus", "script", script, "signals", len(s.Signals), "steps", len(s.Steps))
	if err = s.Play(t); err != nil {
		return err
	}
	if cfg.Trace {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d signals, time %d\n", cfg.Output, len(s.Signals), s.Duration())
	}
	return nil
}
