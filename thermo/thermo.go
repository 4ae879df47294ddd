// Package thermo converts between conservative and primitive flow
// variables and evaluates the Sutherland viscosity law (spec §4.2).
package thermo

import (
	"fmt"
	"math"

	"github.com/flowcfd/gocfd/cfderr"
)

// GasModel carries the (possibly nondimensionalized, per spec §4.7)
// gas properties needed by the thermodynamic relations. Values are
// passed explicitly rather than through package-level globals so that
// per-cell evaluation composes safely across goroutines.
type GasModel struct {
	Gamma float64 // ratio of specific heats
	Cv    float64 // specific heat at constant volume
	R     float64 // gas constant
	MuRef float64 // reference viscosity (normalized)
	TRef  float64 // reference temperature, used to dimensionalize T for Sutherland's law
}

const (
	sutherlandC1   = 1.458e-6
	sutherlandC2   = 110.4
	// Prandtl number for laminar air, spec §4.2.
	Prandtl = 0.71
)

// Prim is the primitive state (rho, u, v, w, p, T).
type Prim struct {
	Rho, U, V, W, P, T float64
}

// Cons is the 5-component conservative state (rho, rho*u, rho*v, rho*w, rho*E).
type Cons [5]float64

// ToPrim converts a conservative state to primitive variables. It
// returns a non-physical-state error, never a panic, when rho <= 0 or
// the derived pressure is <= 0; callers must not feed such states
// onward.
func ToPrim(u Cons, gm GasModel) (Prim, error) {
	rho := u[0]
	if rho <= 0 {
		return Prim{}, fmt.Errorf("%w: rho=%g <= 0", cfderr.ErrNonPhysicalState, rho)
	}
	vx := u[1] / rho
	vy := u[2] / rho
	vz := u[3] / rho
	kinetic := 0.5 * rho * (vx*vx + vy*vy + vz*vz)
	p := (gm.Gamma - 1) * (u[4] - kinetic)
	if p <= 0 {
		return Prim{}, fmt.Errorf("%w: p=%g <= 0", cfderr.ErrNonPhysicalState, p)
	}
	T := p / (rho * gm.R)
	return Prim{Rho: rho, U: vx, V: vy, W: vz, P: p, T: T}, nil
}

// ToCons converts a primitive state to conservative variables:
// U = (rho, rho*u, rho*v, rho*w, 1/2*rho*|v|^2 + p/(gamma-1)).
func ToCons(p Prim, gm GasModel) Cons {
	kinetic := 0.5 * p.Rho * (p.U*p.U + p.V*p.V + p.W*p.W)
	rhoE := kinetic + p.P/(gm.Gamma-1)
	return Cons{p.Rho, p.Rho * p.U, p.Rho * p.V, p.Rho * p.W, rhoE}
}

// Sutherland returns the dynamic viscosity [Pa*s] for a dimensional
// temperature T (kelvin), mu(T) = 1.458e-6 * T^1.5 / (T+110.4).
func Sutherland(tDimensional float64) float64 {
	return sutherlandC1 * math.Pow(tDimensional, 1.5) / (tDimensional + sutherlandC2)
}

// Viscosity returns the normalized dynamic viscosity at the
// nondimensional temperature T: mu_ref * mu_Sutherland(T*T_ref), per
// spec §4.2/§4.5 (mu_ref is already normalized by InitParams, spec
// §4.7).
func Viscosity(t float64, gm GasModel) float64 {
	return gm.MuRef * Sutherland(t*gm.TRef)
}

// ThermalConductivity returns k = gamma*cv*mu/Pr for the given
// (already normalized) viscosity mu.
func ThermalConductivity(mu float64, gm GasModel) float64 {
	return gm.Gamma * gm.Cv * mu / Prandtl
}
