package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flowcfd/gocfd/config"
)

func init() {
	RootCmd.AddCommand(preprocessCmd)
}

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Build and validate the grid, partition, and body classification.",
	Long:  "preprocess builds Space, Partition, and classifies bodies from the case file, then writes only the initial EnSight step, without running the time driver.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Preprocess(Config))
	},
}

// Preprocess validates cfg by building the state it describes (the
// same Space/Partition/classification buildState uses for solve) and
// writes the resulting initial step, so a case file can be checked for
// configuration and geometry errors without running any time steps.
func Preprocess(cfg *config.CaseConfig) error {
	s, err := buildState(cfg)
	if err != nil {
		return err
	}
	return writeStep(cfg, s, 0)
}
