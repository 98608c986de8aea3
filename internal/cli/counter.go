// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	hw "github.com/db47h/hwtrace"
	hl "github.com/db47h/hwtrace/hwlib"
	"github.com/db47h/hwtrace/internal/config"
)

// CounterOptions holds flags for the counter command.
type CounterOptions struct {
	*RootOptions
}

// NewCounterCommand creates the counter command.
func NewCounterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CounterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Trace a simulated counter",
		Long: `Simulate a free running counter and trace all its wires.

Examples:
  hwtrace counter --bits 4 --cycles 20 -o counter.vcd
  hwtrace counter --trace=false --cycles 1000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounter(opts, cmd)
		},
	}
	addTraceFlags(cmd)
	cmd.Flags().Int("bits", 8, "counter width")
	cmd.Flags().Int("cycles", 16, "clock cycles to simulate")
	cmd.Flags().Uint("steps-per-cycle", 4, "simulation steps per clock cycle")
	cmd.Flags().Int("workers", 1, "simulation goroutines (0 for GOMAXPROCS)")

	return cmd
}

func runCounter(opts *CounterOptions, cmd *cobra.Command) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := hw.NewCircuit(cfg.Workers, cfg.StepsPerCycle,
		hl.Const(1, 1)("out=en"),
		hl.Counter(cfg.Bits)("en=en, out=count"),
	)
	if err != nil {
		return err
	}
	defer c.Dispose()

	t, err := opts.openTracer(cfg, "")
	if err != nil {
		return err
	}
	defer func() {
		if cErr := t.Close(); err == nil {
			err = cErr
		}
	}()

	if err = c.Trace(t); err != nil {
		return err
	}
	opts.log().Debug("simulating counter", "bits", cfg.Bits, "cycles", cfg.Cycles, "spc", c.SPC())
	for i := 0; i < cfg.Cycles && c.Err() == nil; i++ {
		c.TickTock()
	}
	if err = c.Err(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "count = %d after %d steps\n", c.Get(c.Wire("count")), c.Steps())
	return nil
}
