// Package restart persists and reloads solver state as gob (spec §6,
// "Persisted solver state"), grounded directly on InMAP's save.go
// (gob.Register, a small versioned wrapper struct, Save/Load shaped
// as DomainManipulator-like functions taking an io.Writer/io.Reader).
package restart

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/flowcfd/gocfd/cfderr"
	"github.com/flowcfd/gocfd/geomkit"
)

// DataVersion is bumped whenever the on-disk layout of versionedState
// changes; Load refuses to read a file written by an incompatible
// version.
const DataVersion = "gocfd-restart-v1"

// BodyState is the persisted state of one embedded body: enough to
// reconstruct classification and, for a moving body, its kinematics.
type BodyState struct {
	Center geomkit.Vec3
	Radius float64
	U      geomkit.Vec3
	Omega  geomkit.Vec3
}

// State is everything a restart needs to resume a run (spec §6): step
// count, current time, all body states, and both conservative buffers
// at one time level (only Cur is persisted; Next is a scratch buffer
// the driver rebuilds on the first step after load).
type State struct {
	StepCount   int
	CurrentTime float64
	Bodies      []BodyState
	Field       []float64
}

type versionedState struct {
	DataVersion string
	State       State
}

// Save writes s to w as gob, tagged with DataVersion.
func Save(w io.Writer, s State) error {
	v := versionedState{DataVersion: DataVersion, State: s}
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("%w: restart.Save: %v", cfderr.ErrIO, err)
	}
	return nil
}

// Load reads a State from r, checking DataVersion exactly as InMAP
// checks VarGridDataVersion on load.
func Load(r io.Reader) (State, error) {
	var v versionedState
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		return State{}, fmt.Errorf("%w: restart.Load: %v", cfderr.ErrIO, err)
	}
	if v.DataVersion != DataVersion {
		return State{}, fmt.Errorf("%w: restart file version %q is not compatible with required version %q", cfderr.ErrIO, v.DataVersion, DataVersion)
	}
	return v.State, nil
}
