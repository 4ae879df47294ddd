package cmd

import (
	"path/filepath"
	"testing"

	"github.com/flowcfd/gocfd/config"
)

func smallCase(t *testing.T, outDir string) *config.CaseConfig {
	t.Helper()
	return &config.CaseConfig{
		Ncx: 8, Ncy: 6, Ncz: 6, Ng: 2,
		XMin: 0, XMax: 1, YMin: 0, YMax: 0.75, ZMin: 0, ZMax: 0.75,
		LRef: 1, URef: 1, RhoRef: 1, TRef: 1, MuRef: 1,
		TotalTime: 1e-9, TotalStep: 2, CFL: 0.5, OutputCount: 1,
		BoundaryConditions: []config.RegionBC{
			{Region: "xmin", Kind: "inlet", Value: [5]float64{1, 1, 0, 0, 2.5}},
			{Region: "xmax", Kind: "outlet"},
		},
		InitialConditions: []config.InitialCondition{
			{Region: "interior", Value: [5]float64{1, 1, 0, 0, 2.5}},
		},
		OutputDir: outDir,
	}
}

func TestSolveRunsToCompletion(t *testing.T) {
	cfg := smallCase(t, t.TempDir())
	if err := Solve(cfg); err != nil {
		t.Fatal(err)
	}
}

func TestPreprocessWritesInitialStepOnly(t *testing.T) {
	cfg := smallCase(t, t.TempDir())
	if err := Preprocess(cfg); err != nil {
		t.Fatal(err)
	}
}

func TestPostprocessReexportsSavedState(t *testing.T) {
	dir := t.TempDir()
	cfg := smallCase(t, dir)
	if err := Solve(cfg); err != nil {
		t.Fatal(err)
	}
	if err := Postprocess(cfg, filepath.Join(dir, "gocfd.restart")); err != nil {
		t.Fatal(err)
	}
}
