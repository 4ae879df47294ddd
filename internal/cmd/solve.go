package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flowcfd/gocfd/cfderr"
	"github.com/flowcfd/gocfd/config"
	"github.com/flowcfd/gocfd/driver"
	"github.com/flowcfd/gocfd/geomkit"
	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/ibm"
	"github.com/flowcfd/gocfd/output"
	"github.com/flowcfd/gocfd/params"
	"github.com/flowcfd/gocfd/partition"
	"github.com/flowcfd/gocfd/restart"
	"github.com/flowcfd/gocfd/thermo"
)

func init() {
	RootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a full solve.",
	Long:  "solve builds the grid and bodies from the case file, then runs the time driver to completion, writing EnSight output every OutputCount steps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Solve(Config))
	},
}

// boundarySlabIndex maps a case file's region name to its fixed slot
// in the partition's thirteen boxes (spec §3: boxes 1-6 are the six
// boundary slabs in -x,+x,-y,+y,-z,+z order).
var boundarySlabIndex = map[string]int{
	"xmin": 1, "xmax": 2, "ymin": 3, "ymax": 4, "zmin": 5, "zmax": 6,
}

var bcKind = map[string]partition.BCKind{
	"fluid": partition.BCFluid, "inlet": partition.BCInlet, "outlet": partition.BCOutlet,
	"slip-wall": partition.BCSlipWall, "no-slip-wall": partition.BCNoSlipWall, "periodic": partition.BCPeriodic,
}

// buildState turns a loaded case file into a ready-to-run driver.State:
// normalized params, a classified Space, and the partition's boundary
// conditions and initial conditions painted in from the case file.
func buildState(cfg *config.CaseConfig) (*driver.State, error) {
	in := params.Input{
		Ncx: cfg.Ncx, Ncy: cfg.Ncy, Ncz: cfg.Ncz, Ng: cfg.Ng,
		XMin: cfg.XMin, XMax: cfg.XMax, YMin: cfg.YMin, YMax: cfg.YMax, ZMin: cfg.ZMin, ZMax: cfg.ZMax,
		LRef: cfg.LRef, URef: cfg.URef, RhoRef: cfg.RhoRef, TRef: cfg.TRef, MuRef: cfg.MuRef,
		TotalTime: cfg.TotalTime, TotalStep: cfg.TotalStep,
	}
	n, err := params.InitParams(in)
	if err != nil {
		return nil, err
	}

	sp, err := grid.NewSpace(cfg.Ncx, cfg.Ncy, cfg.Ncz, cfg.Ng, n.XMin, n.XMax, n.YMin, n.YMax, n.ZMin, n.ZMax)
	if err != nil {
		return nil, err
	}
	sp.Log = Log

	bodies := make([]ibm.Body, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		bodies[i] = ibm.Body{
			Center: geomkit.Vec3{X: b.X / cfg.LRef, Y: b.Y / cfg.LRef, Z: b.Z / cfg.LRef},
			Radius: b.R / cfg.LRef,
			U:      geomkit.Vec3{X: b.U / cfg.URef, Y: b.V / cfg.URef, Z: b.W / cfg.URef},
			Omega:  geomkit.Vec3{X: b.OmegaX, Y: b.OmegaY, Z: b.OmegaZ},
		}
	}

	s := driver.New(sp, n.Gas, bodies, cfg.CFL, n.TotalTime, n.TotalStep)
	s.Log = Log

	for _, bc := range cfg.BoundaryConditions {
		applyRegionBC(s, bc)
	}
	for _, ic := range cfg.InitialConditions {
		paintInitialCondition(s, ic)
	}
	return s, nil
}

func applyRegionBC(s *driver.State, bc config.RegionBC) {
	idx, ok := boundarySlabIndex[bc.Region]
	if !ok {
		return // "interior" carries no boundary condition
	}
	s.Partition[idx].BC = bcKind[bc.Kind]
	s.Partition[idx].BCValue = bc.Value
}

func paintInitialCondition(s *driver.State, ic config.InitialCondition) {
	region := s.Partition.Interior()
	if idx, ok := boundarySlabIndex[ic.Region]; ok {
		region = &s.Partition[idx]
	}
	u := thermo.ToCons(thermo.Prim{Rho: ic.Value[0], U: ic.Value[1], V: ic.Value[2], W: ic.Value[3], P: ic.Value[4]}, s.Gas)
	cur := s.Field.Cur()
	for k := region.KSub; k < region.KSup; k++ {
		for j := region.JSub; j < region.JSup; j++ {
			for i := region.ISub; i < region.ISup; i++ {
				n := s.Space.Idx(k, j, i)
				copy(cur[n*grid.NumVars:(n+1)*grid.NumVars], u[:])
			}
		}
	}
}

// Solve runs cfg's case to completion, writing an EnSight step every
// OutputCount steps and a restart file at the end.
func Solve(cfg *config.CaseConfig) error {
	s, err := buildState(cfg)
	if err != nil {
		return err
	}

	var stepTimes []float64
	if err := writeStep(cfg, s, 0); err != nil {
		return err
	}
	stepTimes = append(stepTimes, s.CurrentTime)

	hooks := driver.StepHooks{
		func(s *driver.State) error {
			s.Log.WithFields(logrus.Fields{"step": s.StepCount, "time": s.CurrentTime}).Info("advanced")
			if cfg.OutputCount <= 0 || s.StepCount%cfg.OutputCount != 0 {
				return nil
			}
			if err := writeStep(cfg, s, s.StepCount); err != nil {
				return err
			}
			stepTimes = append(stepTimes, s.CurrentTime)
			return nil
		},
	}

	if err := s.Run(hooks); err != nil {
		return err
	}

	if err := writeRestart(cfg, s); err != nil {
		return err
	}
	return writeTransientCase(cfg, stepTimes)
}

func stepBaseName(step int) string { return fmt.Sprintf("gocfd.%06d", step) }

// writeStep exports one EnSight step: geometry+iblank and the six
// scalar fields plus the velocity vector, all derived from the
// current buffer by converting each node's conservative state to
// primitive on the fly.
func writeStep(cfg *config.CaseConfig, s *driver.State, step int) error {
	base := stepBaseName(step)
	geoPath := filepath.Join(cfg.OutputDir, base+".geo")
	f, err := os.Create(geoPath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, geoPath, err)
	}
	defer f.Close()
	if err := output.WriteGeo(f, s.Space, 2); err != nil {
		return err
	}

	n := s.Space.NMax
	rho, u, v, w, p, tField := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	cur := s.Field.Cur()
	for idx := 0; idx < n; idx++ {
		var c thermo.Cons
		copy(c[:], cur[idx*grid.NumVars:(idx+1)*grid.NumVars])
		prim, err := thermo.ToPrim(c, s.Gas)
		if err != nil {
			continue // solid/exterior nodes may carry no meaningful state
		}
		rho[idx], u[idx], v[idx], w[idx], p[idx], tField[idx] = prim.Rho, prim.U, prim.V, prim.W, prim.P, prim.T
	}

	for name, values := range map[string][]float64{"rho": rho, "u": u, "v": v, "w": w, "p": p, "T": tField} {
		if err := writeScalarFile(cfg, base, name, s.Space, values); err != nil {
			return err
		}
	}
	if err := writeVectorFile(cfg, base, s.Space, u, v, w); err != nil {
		return err
	}

	casePath := filepath.Join(cfg.OutputDir, base+".case")
	cf, err := os.Create(casePath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, casePath, err)
	}
	defer cf.Close()
	return output.WriteCase(cf, base)
}

func writeScalarFile(cfg *config.CaseConfig, base, field string, sp *grid.Space, values []float64) error {
	path := filepath.Join(cfg.OutputDir, base+"."+field)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, path, err)
	}
	defer f.Close()
	return output.WriteScalar(f, sp, values)
}

func writeVectorFile(cfg *config.CaseConfig, base string, sp *grid.Space, u, v, w []float64) error {
	path := filepath.Join(cfg.OutputDir, base+".vel")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, path, err)
	}
	defer f.Close()
	return output.WriteVector(f, sp, u, v, w)
}

func writeTransientCase(cfg *config.CaseConfig, stepTimes []float64) error {
	path := filepath.Join(cfg.OutputDir, "ensight.case")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, path, err)
	}
	defer f.Close()
	return output.WriteTransientCase(f, "gocfd", stepTimes)
}

func writeRestart(cfg *config.CaseConfig, s *driver.State) error {
	bodies := make([]restart.BodyState, len(s.Bodies))
	for i, b := range s.Bodies {
		bodies[i] = restart.BodyState{Center: b.Center, Radius: b.Radius, U: b.U, Omega: b.Omega}
	}
	rs := restart.State{
		StepCount:   s.StepCount,
		CurrentTime: s.CurrentTime,
		Bodies:      bodies,
		Field:       append([]float64(nil), s.Field.Cur()...),
	}

	path := filepath.Join(cfg.OutputDir, "gocfd.restart")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, path, err)
	}
	defer f.Close()

	particlePath := filepath.Join(cfg.OutputDir, "gocfd.particle")
	pf, err := os.Create(particlePath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", cfderr.ErrIO, particlePath, err)
	}
	defer pf.Close()
	if err := output.WriteParticles(pf, s.Bodies); err != nil {
		return err
	}

	return restart.Save(f, rs)
}
