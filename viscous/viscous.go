// Package viscous computes the face-centered viscous flux for the
// compressible Navier-Stokes equations (spec §4.5).
package viscous

import (
	"github.com/flowcfd/gocfd/characteristic"
	"github.com/flowcfd/gocfd/thermo"
)

// State is the subset of primitive quantities needed to build the
// viscous flux at a node: velocity components and temperature.
type State struct {
	U, V, W, T float64
}

func (s State) component(axis int) float64 {
	switch axis {
	case 0:
		return s.U
	case 1:
		return s.V
	default:
		return s.W
	}
}

// Stencil holds the node states a face-centered viscous flux needs:
// the two nodes straddling the face along its normal (Here, There),
// and the four nodes offset by one cell along each tangential axis —
// North/South for the first tangential axis, Up/Down for the second —
// each paired with its own normal-direction neighbor.
type Stencil struct {
	Here, There       State
	North, NorthThere State
	South, SouthThere State
	Up, UpThere       State
	Down, DownThere   State
}

func fourPoint(a, aThere, b, bThere, dd float64) float64 {
	return 0.25 * (a + aThere - b - bThere) * dd
}

// Flux returns the five-component viscous flux across the face
// between Here and There in direction d, given the grid-spacing
// reciprocals along the normal axis and the two tangential axes, and
// the gas model.
func Flux(s Stencil, d characteristic.Direction, ddNormal, ddT1, ddT2 float64, gm thermo.GasModel) [5]float64 {
	normal := d.NormalAxis()
	t1, t2 := d.TangentialAxes()

	dvnN := (s.There.component(normal) - s.Here.component(normal)) * ddNormal
	dvt1N := (s.There.component(t1) - s.Here.component(t1)) * ddNormal
	dvt2N := (s.There.component(t2) - s.Here.component(t2)) * ddNormal
	dTdN := (s.There.T - s.Here.T) * ddNormal

	dvnT1 := fourPoint(s.North.component(normal), s.NorthThere.component(normal), s.South.component(normal), s.SouthThere.component(normal), ddT1)
	dvt1T1 := fourPoint(s.North.component(t1), s.NorthThere.component(t1), s.South.component(t1), s.SouthThere.component(t1), ddT1)

	dvnT2 := fourPoint(s.Up.component(normal), s.UpThere.component(normal), s.Down.component(normal), s.DownThere.component(normal), ddT2)
	dvt2T2 := fourPoint(s.Up.component(t2), s.UpThere.component(t2), s.Down.component(t2), s.DownThere.component(t2), ddT2)

	uHat := 0.5 * (s.Here.U + s.There.U)
	vHat := 0.5 * (s.Here.V + s.There.V)
	wHat := 0.5 * (s.Here.W + s.There.W)
	tHat := 0.5 * (s.Here.T + s.There.T)

	muHat := thermo.Viscosity(tHat, gm)
	kHat := thermo.ThermalConductivity(muHat, gm)

	divV := dvnN + dvt1T1 + dvt2T2

	fNormal := muHat * (2*dvnN - (2.0/3.0)*divV)
	fT1 := muHat * (dvnT1 + dvt1N)
	fT2 := muHat * (dvnT2 + dvt2N)

	var out [5]float64
	out[1+normal] = fNormal
	out[1+t1] = fT1
	out[1+t2] = fT2
	out[4] = kHat*dTdN + out[1]*uHat + out[2]*vHat + out[3]*wHat
	return out
}
