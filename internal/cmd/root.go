// Package cmd contains the gocfd command-line interface: the cobra
// command tree, case-file loading, and the startup/completion
// banners, grounded on inmap/cmd/root.go's PersistentPreRunE banner
// and subcommand registration pattern.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flowcfd/gocfd/config"
)

// Version is the gocfd release string, overridden at link time with
// -ldflags "-X ...Version=...".
var Version = "dev"

var (
	caseFile string

	// Config holds the case file loaded by RootCmd's PersistentPreRunE.
	Config *config.CaseConfig

	// Log is the structured logger threaded into every run mode.
	Log logrus.FieldLogger = logrus.StandardLogger()
)

// RootCmd is the gocfd command tree's root.
var RootCmd = &cobra.Command{
	Use:   "gocfd",
	Short: "A ghost-cell immersed-boundary compressible flow solver.",
	Long: `gocfd solves the compressible Navier-Stokes equations on a uniform
Cartesian grid with embedded bodies handled by a ghost-cell immersed
boundary method. Use the subcommands below to preprocess a case,
run a solve, or re-export a restart file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == interactiveCmd {
			return nil // interactive prompts for the case file itself
		}
		return startup(caseFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		completedMessage()
	},
}

func startup(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	Config = cfg

	fmt.Println("\n" +
		"------------------------------------------\n" +
		"                 gocfd\n" +
		"  ghost-cell immersed-boundary flow solver\n" +
		"            version " + Version + "\n" +
		"------------------------------------------")
	return nil
}

func completedMessage() {
	fmt.Println("\n" +
		"------------------------\n" +
		"      gocfd done\n" +
		"------------------------")
}

func init() {
	RootCmd.PersistentFlags().StringVar(&caseFile, "case", "./case.toml", "case file location")
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("gocfd v%s\n", Version)
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRun:  func(cmd *cobra.Command, args []string) {},
}

// labelErr logs a non-nil err in structured form and returns it
// unchanged to cobra; main then exits with code 1 for every error
// kind (spec §6: every fatal kind maps to exit 1).
func labelErr(err error) error {
	if err == nil {
		return nil
	}
	Log.WithField("error", err).Error("gocfd: run failed")
	return err
}
