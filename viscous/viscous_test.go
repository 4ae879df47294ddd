package viscous

import (
	"math"
	"testing"

	"github.com/flowcfd/gocfd/characteristic"
	"github.com/flowcfd/gocfd/thermo"
)

func gasModel() thermo.GasModel {
	return thermo.GasModel{Gamma: 1.4, Cv: 1 / 0.4, R: 1, MuRef: 1, TRef: 1}
}

// uniformStencil builds a stencil for a rigid uniform flow (every node
// shares the same state); all gradients, and hence the viscous flux,
// must vanish.
func uniformStencil(s State) Stencil {
	return Stencil{
		Here: s, There: s,
		North: s, NorthThere: s, South: s, SouthThere: s,
		Up: s, UpThere: s, Down: s, DownThere: s,
	}
}

func TestFluxVanishesForUniformFlow(t *testing.T) {
	gm := gasModel()
	s := uniformStencil(State{U: 0.3, V: -0.1, W: 0.2, T: 1})
	for _, d := range []characteristic.Direction{characteristic.X, characteristic.Y, characteristic.Z} {
		f := Flux(s, d, 1, 1, 1, gm)
		for i, v := range f {
			if math.Abs(v) > 1e-12 {
				t.Errorf("direction %v component %d: got %v, want 0 for uniform flow", d, i, v)
			}
		}
	}
}

// TestFluxNormalShearOnly checks the x-face normal-stress component
// against a hand-computed value for a pure du/dx gradient with
// everything else held uniform.
func TestFluxNormalShearOnly(t *testing.T) {
	gm := gasModel()
	here := State{U: 0, V: 0, W: 0, T: 1}
	there := State{U: 1, V: 0, W: 0, T: 1}
	s := Stencil{
		Here: here, There: there,
		North: here, NorthThere: there, South: here, SouthThere: there,
		Up: here, UpThere: there, Down: here, DownThere: there,
	}
	f := Flux(s, characteristic.X, 2, 1, 1, gm)

	dudx := (there.U - here.U) * 2.0
	muHat := thermo.Viscosity(1, gm)
	want := muHat * (2*dudx - (2.0/3.0)*dudx)
	if math.Abs(f[1]-want) > 1e-10 {
		t.Errorf("F1 = %v, want %v", f[1], want)
	}
	if math.Abs(f[2]) > 1e-10 || math.Abs(f[3]) > 1e-10 {
		t.Errorf("expected zero shear components, got F2=%v F3=%v", f[2], f[3])
	}
}
