package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(interactiveCmd)
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for a case file and run a solve.",
	Long:  "interactive prompts for a case file path (using --case if it was given on the command line) and then runs the same solve as the solve subcommand.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Interactive(os.Stdin, os.Stdout, caseFile))
	},
}

// Interactive prompts on out for a case file path, defaulting to
// defaultPath, reads it from in, loads and runs it.
func Interactive(in *os.File, out *os.File, defaultPath string) error {
	fmt.Fprintf(out, "case file [%s]: ", defaultPath)
	line, _ := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		line = defaultPath
	}

	if err := startup(line); err != nil {
		return err
	}
	return Solve(Config)
}
