package partition

import (
	"github.com/flowcfd/gocfd/thermo"
)

// Accessor is the minimal grid surface ApplyBoundaryConditions needs:
// a flat index and a reader/writer over the current conservative
// buffer. grid.Space and grid.Field satisfy it through thin wrappers
// built by the driver package, keeping partition free of a grid import
// cycle.
type Accessor interface {
	Idx(k, j, i int) int
	Get(n int) thermo.Cons
	Set(n int, u thermo.Cons)
}

// ApplyBoundaryConditions fills the ghost layers of each boundary slab
// (boxes 1-6) according to its BC kind. Inlet sets the conservative
// state built from the slab's BCValue (interpreted as a primitive
// state rho,u,v,w,p); outlet and slip/no-slip walls extrapolate from
// the adjacent interior row (zero-gradient, with slip/no-slip walls
// additionally reflecting velocity across the wall); periodic copies
// from the corresponding row on the opposite side of the interior box.
func (p *Partition) ApplyBoundaryConditions(a Accessor, gm thermo.GasModel, ng int) {
	interior := p.Interior()
	for i := 1; i <= 6; i++ {
		p.applySlab(&p[i], interior, a, gm, ng)
	}
}

func (p *Partition) applySlab(slab, interior *Region, a Accessor, gm thermo.GasModel, ng int) {
	axis := normalAxisOf(slab.Normal)
	sign := slab.Normal[axisOrder(axis)]

	for k := slab.KSub; k < slab.KSup; k++ {
		for j := slab.JSub; j < slab.JSup; j++ {
			for i := slab.ISub; i < slab.ISup; i++ {
				n := a.Idx(k, j, i)
				switch slab.BC {
				case BCInlet:
					v := slab.BCValue
					a.Set(n, thermo.ToCons(thermo.Prim{Rho: v[0], U: v[1], V: v[2], W: v[3], P: v[4]}, gm))
				case BCPeriodic:
					src := periodicMirrorIndex(axis, sign, k, j, i, interior, ng)
					a.Set(n, a.Get(a.Idx(src.k, src.j, src.i)))
				case BCSlipWall, BCNoSlipWall:
					src := interiorMirrorIndex(axis, sign, k, j, i, interior, ng)
					u := a.Get(a.Idx(src.k, src.j, src.i))
					wallVel := [3]float64{slab.BCValue[1], slab.BCValue[2], slab.BCValue[3]}
					u = reflectNormal(u, axis, slab.BC == BCNoSlipWall, wallVel)
					a.Set(n, u)
				default: // BCOutlet, BCFluid: zero-gradient extrapolation
					src := interiorMirrorIndex(axis, sign, k, j, i, interior, ng)
					a.Set(n, a.Get(a.Idx(src.k, src.j, src.i)))
				}
			}
		}
	}
}

type nodeIdx struct{ k, j, i int }

// interiorMirrorIndex returns the interior-box node a boundary node
// should copy from for outlet and wall conditions: the row of interior
// nodes immediately adjacent to the boundary. Tangential indices that
// fall outside the interior box (edge and corner nodes of a slab) are
// clamped into it. Periodic conditions use periodicMirrorIndex instead.
func interiorMirrorIndex(axis, sign, k, j, i int, interior *Region, ng int) nodeIdx {
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi-1 {
			return hi - 1
		}
		return v
	}
	k, j, i = clamp(k, interior.KSub, interior.KSup), clamp(j, interior.JSub, interior.JSup), clamp(i, interior.ISub, interior.ISup)
	switch axis {
	case 0: // x
		if sign < 0 {
			return nodeIdx{k, j, interior.ISub}
		}
		return nodeIdx{k, j, interior.ISup - 1}
	case 1: // y
		if sign < 0 {
			return nodeIdx{k, interior.JSub, i}
		}
		return nodeIdx{k, interior.JSup - 1, i}
	default: // z
		if sign < 0 {
			return nodeIdx{interior.KSub, j, i}
		}
		return nodeIdx{interior.KSup - 1, j, i}
	}
}

// periodicMirrorIndex returns the interior node a periodic ghost layer
// at (k,j,i) should copy from. Unlike interiorMirrorIndex (correct for
// outlet/wall zero-gradient extrapolation, which deliberately reuses
// one adjacent interior row for every ghost layer), true periodicity
// needs each ghost layer to wrap to its own cyclically-corresponding
// interior row: for a ng-wide slab, the layer nearest the interior
// wraps to the interior row nearest the opposite face, and the layer
// furthest out wraps to the row ng-1 further in from that face.
func periodicMirrorIndex(axis, sign, k, j, i int, interior *Region, ng int) nodeIdx {
	switch axis {
	case 0: // x
		if sign < 0 {
			return nodeIdx{k, j, interior.ISup - ng + i}
		}
		return nodeIdx{k, j, interior.ISub + i - interior.ISup}
	case 1: // y
		if sign < 0 {
			return nodeIdx{k, interior.JSup - ng + j, i}
		}
		return nodeIdx{k, interior.JSub + j - interior.JSup, i}
	default: // z
		if sign < 0 {
			return nodeIdx{interior.KSup - ng + k, j, i}
		}
		return nodeIdx{interior.KSub + k - interior.KSup, j, i}
	}
}

// normalAxisOf reads the nonzero component of a (nZ,nY,nX) outward
// normal and returns the corresponding axis (0=x,1=y,2=z).
func normalAxisOf(normal [3]int) int {
	if normal[2] != 0 {
		return 0
	}
	if normal[1] != 0 {
		return 1
	}
	return 2
}

// axisOrder maps an axis (0=x,1=y,2=z) to its index within the
// (nZ,nY,nX) Normal array.
func axisOrder(axis int) int {
	return 2 - axis
}

// reflectNormal negates the velocity component along axis (wall
// no-penetration, the wall itself assumed stationary in its own normal
// direction); a no-slip wall additionally reflects the two tangential
// components about wallVel so the face average equals the wall's
// tangential velocity (zero for a stationary wall, nonzero for a
// translating one, e.g. spec §8's plane-Couette moving wall).
func reflectNormal(u thermo.Cons, axis int, noSlip bool, wallVel [3]float64) thermo.Cons {
	out := u
	out[1+axis] = -out[1+axis]
	if noSlip {
		rho := u[0]
		for a := 0; a < 3; a++ {
			if a != axis {
				out[1+a] = 2*rho*wallVel[a] - u[1+a]
			}
		}
		// Keep the internal energy (and so the pressure) of the source
		// state: only the kinetic part of rho*E follows the new momentum.
		out[4] = u[4] - 0.5*(u[1]*u[1]+u[2]*u[2]+u[3]*u[3])/rho + 0.5*(out[1]*out[1]+out[2]*out[2]+out[3]*out[3])/rho
	}
	return out
}
