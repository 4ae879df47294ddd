package driver

import (
	"math"
	"testing"

	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/thermo"
)

func gasModel() thermo.GasModel {
	return thermo.GasModel{Gamma: 1.4, Cv: 1 / 0.4, R: 1, MuRef: 1e-4, TRef: 1}
}

func uniformSpace(t *testing.T, ncx, ng int) *grid.Space {
	t.Helper()
	sp, err := grid.NewSpace(ncx, 3, 3, ng, 0, 1, 0, float64(3)/float64(ncx), 0, float64(3)/float64(ncx))
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return sp
}

func fillUniform(s *State, p thermo.Prim) {
	gm := s.Gas
	u := thermo.ToCons(p, gm)
	cur := s.Field.Cur()
	for n := 0; n < s.Space.NMax; n++ {
		copy(cur[n*grid.NumVars:(n+1)*grid.NumVars], u[:])
	}
}

// TestStepPreservesUniformFlow checks that a single step applied to a
// spatially uniform state leaves it (nearly) unchanged: zero flux
// divergence, zero viscous stress.
func TestStepPreservesUniformFlow(t *testing.T) {
	sp := uniformSpace(t, 20, 2)
	gm := gasModel()
	s := New(sp, gm, nil, 0.5, 1.0, 10)
	fillUniform(s, thermo.Prim{Rho: 1, U: 0.1, V: 0, W: 0, P: 1})

	before := make([]float64, len(s.Field.Cur()))
	copy(before, s.Field.Cur())

	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	after := s.Field.Cur()
	for n := 0; n < len(before); n++ {
		if math.Abs(after[n]-before[n]) > 1e-9 {
			t.Fatalf("component %d drifted from %v to %v for a uniform field", n, before[n], after[n])
		}
	}
	if s.StepCount != 1 {
		t.Errorf("StepCount = %d, want 1", s.StepCount)
	}
}

// TestRunTerminatesOnStepCap checks the totalStep termination
// condition from spec §5.
func TestRunTerminatesOnStepCap(t *testing.T) {
	sp := uniformSpace(t, 20, 2)
	gm := gasModel()
	s := New(sp, gm, nil, 0.5, math.MaxFloat64, 3)
	fillUniform(s, thermo.Prim{Rho: 1, U: 0.1, V: 0, W: 0, P: 1})

	if err := s.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.StepCount != 3 {
		t.Errorf("StepCount = %d, want 3", s.StepCount)
	}
}

// TestRunTerminatesOnTotalTime checks the totalTime termination
// condition from spec §5.
func TestRunTerminatesOnTotalTime(t *testing.T) {
	sp := uniformSpace(t, 20, 2)
	gm := gasModel()
	s := New(sp, gm, nil, 0.5, 1e-9, 1000000)
	fillUniform(s, thermo.Prim{Rho: 1, U: 0.1, V: 0, W: 0, P: 1})

	if err := s.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.CurrentTime < s.TotalTime {
		t.Errorf("CurrentTime = %v, want >= %v", s.CurrentTime, s.TotalTime)
	}
	if s.StepCount != 1 {
		t.Errorf("StepCount = %d, want 1 (should stop after the first step crosses totalTime)", s.StepCount)
	}
}

// TestStepHooksRunInOrder checks the StepHooks middleware shape.
func TestStepHooksRunInOrder(t *testing.T) {
	sp := uniformSpace(t, 20, 2)
	gm := gasModel()
	s := New(sp, gm, nil, 0.5, math.MaxFloat64, 2)
	fillUniform(s, thermo.Prim{Rho: 1, U: 0.1, V: 0, W: 0, P: 1})

	var order []int
	hooks := StepHooks{
		func(*State) error { order = append(order, 1); return nil },
		func(*State) error { order = append(order, 2); return nil },
	}
	if err := s.Run(hooks); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) != 4 {
		t.Fatalf("hooks ran %d times, want 4 (2 steps x 2 hooks)", len(order))
	}
	for i := 0; i < len(order); i += 2 {
		if order[i] != 1 || order[i+1] != 2 {
			t.Errorf("hooks out of order at step %d: %v", i/2, order[i:i+2])
		}
	}
}
