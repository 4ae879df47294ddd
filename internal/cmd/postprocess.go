package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcfd/gocfd/cfderr"
	"github.com/flowcfd/gocfd/config"
	"github.com/flowcfd/gocfd/ibm"
	"github.com/flowcfd/gocfd/restart"
)

var restartPath string

func init() {
	postprocessCmd.Flags().StringVar(&restartPath, "restart", "gocfd.restart", "restart file to re-export")
	RootCmd.AddCommand(postprocessCmd)
}

var postprocessCmd = &cobra.Command{
	Use:   "postprocess",
	Short: "Re-export a restart file to EnSight without stepping.",
	Long:  "postprocess rebuilds the grid and bodies from the case file, loads a restart file's saved state into it, and writes the matching EnSight step, without advancing the time driver.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Postprocess(Config, restartPath))
	},
}

// Postprocess rebuilds the Space/Partition/classification described
// by cfg, overlays the conservative field and body states saved in
// the restart file at restartFile, and writes the matching EnSight
// step using the exact iblank rule (offset=2) a live solve uses, so a
// restart can be inspected without re-running the solve.
func Postprocess(cfg *config.CaseConfig, restartFile string) error {
	s, err := buildState(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(restartFile)
	if err != nil {
		return fmt.Errorf("%w: opening restart file %q: %v", cfderr.ErrIO, restartFile, err)
	}
	defer f.Close()

	rs, err := restart.Load(f)
	if err != nil {
		return err
	}
	if len(rs.Field) != len(s.Field.Cur()) {
		return fmt.Errorf("%w: restart field has %d components, case describes %d", cfderr.ErrConfigError, len(rs.Field), len(s.Field.Cur()))
	}
	copy(s.Field.Cur(), rs.Field)
	s.StepCount = rs.StepCount
	s.CurrentTime = rs.CurrentTime

	bodies := make([]ibm.Body, len(rs.Bodies))
	for i, b := range rs.Bodies {
		bodies[i] = ibm.Body{Center: b.Center, Radius: b.Radius, U: b.U, Omega: b.Omega}
	}
	s.Bodies = bodies
	ibm.ClassifyDomain(s.Space, s.Partition.Interior(), s.Bodies)

	return writeStep(cfg, s, s.StepCount)
}
