// Package params normalizes user-supplied case dimensions and
// reference scales into the values the rest of the solver uses (spec
// §4.7).
package params

import (
	"fmt"
	"math"

	"github.com/flowcfd/gocfd/cfderr"
	"github.com/flowcfd/gocfd/thermo"
)

// gasRDimensional is the universal gas constant, J/(mol*K), spec §4.7.
const gasRDimensional = 8.314462175

// largeStepSentinel replaces a negative totalStep, spec §4.7.
const largeStepSentinel = 9e6

// Input collects the user-facing quantities a case file supplies.
type Input struct {
	Ncx, Ncy, Ncz int
	Ng            int
	XMin, XMax    float64
	YMin, YMax    float64
	ZMin, ZMax    float64

	LRef, URef, RhoRef, TRef, MuRef float64

	TotalTime float64
	TotalStep int
}

// Normalized holds the nondimensionalized quantities derived from an
// Input (spec §4.7 steps 2-4), plus the GasModel built from them.
type Normalized struct {
	Nx, Ny, Nz       int
	IMax, JMax, KMax int
	NMax             int

	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	Dx, Dy, Dz                         float64
	Ddx, Ddy, Ddz                      float64
	TinyL                              float64

	TotalTime float64
	TotalStep int

	Ma float64
	Gas thermo.GasModel
}

// InitParams derives node counts, normalized extents/spacing, the
// time/step caps, and the nondimensional gas model from in. It returns
// a config-out-of-range error for a ghost width below 1, a reference
// scale that is not finite and positive, or a non-positive derived
// spacing.
func InitParams(in Input) (Normalized, error) {
	if in.Ng < 1 {
		return Normalized{}, fmt.Errorf("%w: ghost width ng=%d must be >= 1", cfderr.ErrConfigOutOfRange, in.Ng)
	}
	for name, v := range map[string]float64{
		"L_ref": in.LRef, "U_ref": in.URef, "rho_ref": in.RhoRef, "T_ref": in.TRef, "mu_ref": in.MuRef,
	} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Normalized{}, fmt.Errorf("%w: reference scale %s=%g must be finite and positive", cfderr.ErrConfigOutOfRange, name, v)
		}
	}

	var n Normalized
	n.Nx, n.Ny, n.Nz = in.Ncx+2, in.Ncy+2, in.Ncz+2
	n.IMax = n.Nx + 2*in.Ng
	n.JMax = n.Ny + 2*in.Ng
	n.KMax = n.Nz + 2*in.Ng
	n.NMax = n.IMax * n.JMax * n.KMax

	n.XMin, n.XMax = in.XMin/in.LRef, in.XMax/in.LRef
	n.YMin, n.YMax = in.YMin/in.LRef, in.YMax/in.LRef
	n.ZMin, n.ZMax = in.ZMin/in.LRef, in.ZMax/in.LRef

	n.Dx = (n.XMax - n.XMin) / float64(n.Nx-1)
	n.Dy = (n.YMax - n.YMin) / float64(n.Ny-1)
	n.Dz = (n.ZMax - n.ZMin) / float64(n.Nz-1)
	if n.Dx <= 0 || n.Dy <= 0 || n.Dz <= 0 {
		return Normalized{}, fmt.Errorf("%w: non-positive derived spacing (dx=%g dy=%g dz=%g)", cfderr.ErrConfigOutOfRange, n.Dx, n.Dy, n.Dz)
	}
	n.Ddx, n.Ddy, n.Ddz = 1/n.Dx, 1/n.Dy, 1/n.Dz
	n.TinyL = 1e-3 * math.Min(n.Dx, math.Min(n.Dy, n.Dz))

	n.TotalTime = in.TotalTime * in.URef / in.LRef
	n.TotalStep = in.TotalStep
	if n.TotalStep < 0 {
		n.TotalStep = int(largeStepSentinel)
	}

	const gamma = 1.4
	n.Ma = in.URef / math.Sqrt(gamma*gasRDimensional*in.TRef)
	gasR := 1 / (gamma * n.Ma * n.Ma)
	cv := gasR / (gamma - 1)
	muRef := in.MuRef / (in.RhoRef * in.URef * in.LRef)

	n.Gas = thermo.GasModel{Gamma: gamma, Cv: cv, R: gasR, MuRef: muRef, TRef: in.TRef}
	return n, nil
}
