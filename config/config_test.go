package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowcfd/gocfd/cfderr"
)

func writeCase(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "case.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const validCase = `
Ncx = 20
Ncy = 3
Ncz = 3
Ng = 2
XMin = 0.0
XMax = 1.0
YMin = 0.0
YMax = 0.15
ZMin = 0.0
ZMax = 0.15
LRef = 1.0
URef = 1.0
RhoRef = 1.0
TRef = 1.0
MuRef = 1.0
TotalTime = 0.2
TotalStep = -1
CFL = 0.5
OutputCount = 10

[[BoundaryConditions]]
Region = "xmin"
Kind = "inlet"
Value = [1.0, 0.0, 0.0, 0.0, 2.5]

[[BoundaryConditions]]
Region = "xmax"
Kind = "outlet"

[[Bodies]]
X = 0.5
Y = 0.5
Z = 0.5
R = 0.1
`

func TestLoadValidCase(t *testing.T) {
	path := writeCase(t, validCase)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ncx != 20 {
		t.Errorf("Ncx = %d, want 20", cfg.Ncx)
	}
	if len(cfg.BoundaryConditions) != 2 {
		t.Fatalf("len(BoundaryConditions) = %d, want 2", len(cfg.BoundaryConditions))
	}
	if len(cfg.Bodies) != 1 || cfg.Bodies[0].R != 0.1 {
		t.Errorf("Bodies = %+v, want one body with R=0.1", cfg.Bodies)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/case.toml")
	if !errors.Is(err, cfderr.ErrConfigError) {
		t.Errorf("expected ErrConfigError, got %v", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeCase(t, "this is not [valid toml")
	_, err := Load(path)
	if !errors.Is(err, cfderr.ErrConfigError) {
		t.Errorf("expected ErrConfigError, got %v", err)
	}
}

func TestLoadRejectsUnknownRegion(t *testing.T) {
	path := writeCase(t, validCase+"\n[[BoundaryConditions]]\nRegion = \"nowhere\"\nKind = \"inlet\"\n")
	_, err := Load(path)
	if !errors.Is(err, cfderr.ErrConfigError) {
		t.Errorf("expected ErrConfigError for unknown region, got %v", err)
	}
}

func TestLoadRejectsUnknownBCKind(t *testing.T) {
	path := writeCase(t, validCase+"\n[[BoundaryConditions]]\nRegion = \"ymin\"\nKind = \"made-up\"\n")
	_, err := Load(path)
	if !errors.Is(err, cfderr.ErrConfigError) {
		t.Errorf("expected ErrConfigError for unknown BC kind, got %v", err)
	}
}
