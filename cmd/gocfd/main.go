// Command gocfd is the command-line interface for the gocfd
// compressible flow solver.
package main

import (
	"fmt"
	"os"

	"github.com/flowcfd/gocfd/internal/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
