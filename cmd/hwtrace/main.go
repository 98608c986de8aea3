// Command hwtrace writes VCD waveform traces from stimulus scripts or simulated
// circuits.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/hwtrace/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
