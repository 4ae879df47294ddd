// Package config parses a TOML case file into a CaseConfig (spec §6,
// "Case input"), grounded on inmap/cmd/config.go's ReadConfigFile.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowcfd/gocfd/cfderr"
)

// RegionBC declares the boundary condition for one named region of
// the case (typically one of the six domain faces).
type RegionBC struct {
	Region string
	Kind   string // "inlet", "outlet", "slip-wall", "no-slip-wall", "periodic", "fluid"
	Value  [5]float64
}

// InitialCondition declares the initial primitive state to paint over
// a named region.
type InitialCondition struct {
	Region string
	Value  [5]float64 // rho, u, v, w, p
}

// BodyConfig is one case-file body declaration: (x,y,z,r[,u,v,w,omega]).
type BodyConfig struct {
	X, Y, Z float64
	R       float64
	U, V, W float64
	OmegaX, OmegaY, OmegaZ float64
}

// CaseConfig mirrors spec §6's case-file grammar: domain cell
// counts/extents, ghost width, reference scales, total time, step
// cap, CFL number, output count, per-region BC kind/value,
// initial-condition regions and value, and the body list.
type CaseConfig struct {
	Ncx, Ncy, Ncz int
	Ng            int
	XMin, XMax    float64
	YMin, YMax    float64
	ZMin, ZMax    float64

	LRef, URef, RhoRef, TRef, MuRef float64

	TotalTime  float64
	TotalStep  int
	CFL        float64
	OutputCount int

	BoundaryConditions []RegionBC
	InitialConditions  []InitialCondition
	Bodies             []BodyConfig

	OutputDir string
}

// Load reads and parses filename into a CaseConfig. It returns a
// config-error, never a panic, for a missing file, malformed TOML, or
// a region/body name referenced by an IC/BC entry that was not
// declared.
func Load(filename string) (*CaseConfig, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: case file %q does not exist or cannot be opened: %v", cfderr.ErrConfigError, filename, err)
	}
	defer f.Close()

	cfg := new(CaseConfig)
	if _, err := toml.DecodeReader(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: malformed case file %q: %v", cfderr.ErrConfigError, filename, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CaseConfig) validate() error {
	if c.Ncx < 1 || c.Ncy < 1 || c.Ncz < 1 {
		return fmt.Errorf("%w: cell counts (%d,%d,%d) must all be >= 1", cfderr.ErrConfigError, c.Ncx, c.Ncy, c.Ncz)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	declaredRegions := map[string]bool{
		"xmin": true, "xmax": true, "ymin": true, "ymax": true, "zmin": true, "zmax": true, "interior": true,
	}
	for _, bc := range c.BoundaryConditions {
		if !declaredRegions[bc.Region] {
			return fmt.Errorf("%w: boundary condition references unknown region %q", cfderr.ErrConfigError, bc.Region)
		}
		if !validBCKind(bc.Kind) {
			return fmt.Errorf("%w: boundary condition region %q has unknown kind %q", cfderr.ErrConfigError, bc.Region, bc.Kind)
		}
	}
	for _, ic := range c.InitialConditions {
		if !declaredRegions[ic.Region] {
			return fmt.Errorf("%w: initial condition references unknown region %q", cfderr.ErrConfigError, ic.Region)
		}
	}
	return nil
}

func validBCKind(kind string) bool {
	switch kind {
	case "inlet", "outlet", "slip-wall", "no-slip-wall", "periodic", "fluid":
		return true
	default:
		return false
	}
}
