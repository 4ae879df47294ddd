// Package partition enumerates the fixed thirteen index boxes the
// solver visits on the padded domain and carries each box's boundary
// condition (spec §3/§4, "Partition & boundary driver").
package partition

// BCKind identifies the boundary-condition family applied on a box.
type BCKind int

const (
	BCFluid BCKind = iota
	BCInlet
	BCOutlet
	BCSlipWall
	BCNoSlipWall
	BCPeriodic
)

func (k BCKind) String() string {
	switch k {
	case BCInlet:
		return "inlet"
	case BCOutlet:
		return "outlet"
	case BCSlipWall:
		return "slip-wall"
	case BCNoSlipWall:
		return "no-slip-wall"
	case BCPeriodic:
		return "periodic"
	default:
		return "fluid"
	}
}

// Role distinguishes what a box represents, so callers never hard-code
// "box 12 is the interior" (spec's REDESIGN FLAGS note).
type Role int

const (
	RoleWhole Role = iota
	RoleBoundarySlab
	RoleEdge
	RoleInterior
)

// Region is one of the partition's thirteen index boxes. Sub is
// inclusive, Sup is exclusive, on each axis.
type Region struct {
	Role                           Role
	KSub, KSup, JSub, JSup, ISub, ISup int
	BC                             BCKind
	BCValue                        [5]float64
	// Normal is the outward normal (nZ, nY, nX), each in {-1,0,1}.
	Normal [3]int
}

// Count returns the number of nodes the region spans.
func (r Region) Count() int {
	return (r.KSup - r.KSub) * (r.JSup - r.JSub) * (r.ISup - r.ISub)
}

// numBoxes is the fixed partition size: whole domain, six boundary
// slabs, six edges, one interior.
const numBoxes = 13

// indexInterior is the fixed slot for the innermost fluid interior box
// (spec §3: "box 12 is conventionally the innermost fluid interior").
const indexInterior = 12

// Partition is the fixed 13-box enumeration of the padded domain.
type Partition [numBoxes]Region

// Interior returns the innermost fluid interior region (box 12) through
// the named indexInterior slot, so callers need not hard-code 12.
func (p *Partition) Interior() *Region {
	return &p[indexInterior]
}

// Build enumerates the thirteen boxes for a padded domain of the given
// extents and ghost width ng: box 0 the whole domain, 1-6 the six
// exterior boundary slabs (-x,+x,-y,+y,-z,+z, each excluding the
// overlap with adjacent slabs so the six together exactly tile the
// ghost frame), 7-11 informational interior-edge bands, 12 the
// innermost fluid interior.
func Build(iMax, jMax, kMax, ng int) Partition {
	var p Partition

	p[0] = Region{Role: RoleWhole, KSub: 0, KSup: kMax, JSub: 0, JSup: jMax, ISub: 0, ISup: iMax}

	slab := func(kSub, kSup, jSub, jSup, iSub, iSup int, normal [3]int) Region {
		return Region{Role: RoleBoundarySlab, KSub: kSub, KSup: kSup, JSub: jSub, JSup: jSup, ISub: iSub, ISup: iSup, Normal: normal}
	}
	p[1] = slab(0, kMax, 0, jMax, 0, ng, [3]int{0, 0, -1})          // -x
	p[2] = slab(0, kMax, 0, jMax, iMax-ng, iMax, [3]int{0, 0, 1})   // +x
	p[3] = slab(0, kMax, 0, ng, ng, iMax-ng, [3]int{0, -1, 0})      // -y
	p[4] = slab(0, kMax, jMax-ng, jMax, ng, iMax-ng, [3]int{0, 1, 0}) // +y
	p[5] = slab(0, ng, ng, jMax-ng, ng, iMax-ng, [3]int{-1, 0, 0})  // -z
	p[6] = slab(kMax-ng, kMax, ng, jMax-ng, ng, iMax-ng, [3]int{1, 0, 0}) // +z

	edge := func(kSub, kSup, jSub, jSup, iSub, iSup int) Region {
		return Region{Role: RoleEdge, KSub: kSub, KSup: kSup, JSub: jSub, JSup: jSup, ISub: iSub, ISup: iSup}
	}
	// Boxes 7-11: the one-cell-thick interior bands immediately inside
	// five of the interior box's six faces, where the viscous flux's
	// four-point tangential stencil reaches across into the boundary
	// slabs rather than staying within the interior. These are
	// informational subdivisions of the interior (box 12 already covers
	// their nodes); they are not consulted by the classifier or by
	// ApplyBoundaryConditions, which only visit boxes 1-6 and 12.
	p[7] = edge(ng, kMax-ng, ng, jMax-ng, ng, ng+1)             // just inside -x
	p[8] = edge(ng, kMax-ng, ng, jMax-ng, iMax-ng-1, iMax-ng)   // just inside +x
	p[9] = edge(ng, kMax-ng, ng, ng+1, ng, iMax-ng)             // just inside -y
	p[10] = edge(ng, kMax-ng, jMax-ng-1, jMax-ng, ng, iMax-ng)  // just inside +y
	p[11] = edge(ng, ng+1, ng, jMax-ng, ng, iMax-ng)            // just inside -z

	p[indexInterior] = Region{
		Role: RoleInterior,
		KSub: ng, KSup: kMax - ng,
		JSub: ng, JSup: jMax - ng,
		ISub: ng, ISup: iMax - ng,
	}
	return p
}
