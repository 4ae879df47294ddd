package characteristic

import (
	"math"

	"github.com/flowcfd/gocfd/thermo"
)

// Averager selects how the left/right states are combined into a
// single face state (spec §4.3).
type Averager int

const (
	Arithmetic Averager = iota
	Roe
)

// AveragedState is the face state (rho, u, v, w, hT, c) used to build
// the eigenvector matrices. Gamma is carried alongside so the left
// eigenvectors can be built without re-threading the gas model.
type AveragedState struct {
	Rho, U, V, W, HT, C, Gamma float64
}

// Average combines two conservative states into a single face state
// using the Roe or arithmetic averaging rule.
func Average(uL, uR thermo.Cons, gm thermo.GasModel, avg Averager) (AveragedState, error) {
	pL, err := thermo.ToPrim(uL, gm)
	if err != nil {
		return AveragedState{}, err
	}
	pR, err := thermo.ToPrim(uR, gm)
	if err != nil {
		return AveragedState{}, err
	}

	hL := (uL[4] + pL.P) / pL.Rho
	hR := (uR[4] + pR.P) / pR.Rho

	var d float64
	if avg == Roe {
		d = math.Sqrt(pR.Rho / pL.Rho)
	} else {
		d = 1
	}

	blend := func(phiL, phiR float64) float64 {
		return (phiL + d*phiR) / (1 + d)
	}

	u := blend(pL.U, pR.U)
	v := blend(pL.V, pR.V)
	w := blend(pL.W, pR.W)
	hT := blend(hL, hR)

	c2 := (gm.Gamma - 1) * (hT - 0.5*(u*u+v*v+w*w))
	return AveragedState{Rho: blend(pL.Rho, pR.Rho), U: u, V: v, W: w, HT: hT, C: math.Sqrt(c2), Gamma: gm.Gamma}, nil
}
