package characteristic

import (
	"math"
	"testing"

	"github.com/flowcfd/gocfd/thermo"
)

func gasModel() thermo.GasModel {
	gamma := 1.4
	return thermo.GasModel{Gamma: gamma, Cv: 1 / (gamma - 1), R: 1}
}

func sampleStates() []thermo.Cons {
	gm := gasModel()
	prims := []thermo.Prim{
		{Rho: 1, U: 0.2, V: 0, W: 0, P: 1},
		{Rho: 0.8, U: -0.1, V: 0.3, W: -0.2, P: 0.9},
	}
	var out []thermo.Cons
	for _, p := range prims {
		out = append(out, thermo.ToCons(p, gm))
	}
	return out
}

func TestEigenvectorInverse(t *testing.T) {
	gm := gasModel()
	states := sampleStates()
	for _, d := range []Direction{X, Y, Z} {
		for _, avg := range []Averager{Arithmetic, Roe} {
			s, err := Average(states[0], states[1], gm, avg)
			if err != nil {
				t.Fatalf("Average: %v", err)
			}
			if s.C <= 0 {
				t.Fatalf("expected positive sound speed, got %v", s.C)
			}
			L := LeftEigenvectors(s, d)
			R := RightEigenvectors(s, d)
			prod := L.Mul(R)
			diff := prod.Sub(Identity5())
			if n := diff.InfNorm(); n > 1e-10 {
				t.Errorf("direction=%v avg=%v: ||L*R-I||_inf = %v, want < 1e-10", d, avg, n)
			}
		}
	}
}

func TestSplitterSumLaxFriedrichs(t *testing.T) {
	lambda := [5]float64{-3, 1, 1, 1, 4}
	plus, minus := Split(lambda, LaxFriedrichs)
	for i := range lambda {
		if got := plus[i] + minus[i]; got != lambda[i] {
			t.Errorf("component %d: plus+minus = %v, want exactly %v", i, got, lambda[i])
		}
	}
}

func TestSplitterSumStegerWarming(t *testing.T) {
	lambda := [5]float64{-3, 1, 1, 1, 4}
	plus, minus := Split(lambda, StegerWarming)
	for i := range lambda {
		if diff := math.Abs(plus[i] + minus[i] - lambda[i]); diff > 1e-12 {
			t.Errorf("component %d: plus+minus = %v, want ~%v", i, plus[i]+minus[i], lambda[i])
		}
		if plus[i] < -1e-9 {
			t.Errorf("component %d: Lambda+ = %v, want >= 0", i, plus[i])
		}
		if minus[i] > 1e-9 {
			t.Errorf("component %d: Lambda- = %v, want <= 0", i, minus[i])
		}
	}
}

func TestEigenvaluesOrdering(t *testing.T) {
	gm := gasModel()
	states := sampleStates()
	s, err := Average(states[0], states[1], gm, Roe)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}
	lambda := Eigenvalues(s, X)
	if lambda[0] >= lambda[1] || lambda[4] <= lambda[1] {
		t.Errorf("expected lambda[0] < lambda[1] < lambda[4], got %v", lambda)
	}
	if lambda[1] != lambda[2] || lambda[2] != lambda[3] {
		t.Errorf("expected the three middle eigenvalues to equal u_s, got %v", lambda)
	}
}
