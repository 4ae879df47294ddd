package ibm

import (
	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/partition"
	"gonum.org/v1/gonum/mat"
)

// BodyOverlap counts, per unordered body-id pair, how many nodes were
// inside both bodies and so had their classification resolved by the
// last-tested-body tie-break (spec §4.6 step 2). It is purely
// diagnostic: it never changes classification, and callers typically
// only log it at debug level.
type BodyOverlap struct {
	counts *mat.SymDense
}

// NewBodyOverlap allocates a counter for n bodies.
func NewBodyOverlap(n int) *BodyOverlap {
	if n == 0 {
		n = 1
	}
	return &BodyOverlap{counts: mat.NewSymDense(n, nil)}
}

// Count returns the number of contested nodes between bodies a and b.
func (o *BodyOverlap) Count(a, b int) int {
	return int(o.counts.At(a, b))
}

// ClassifyDomainWithOverlap behaves like ClassifyDomain but additionally
// tallies contested nodes into a BodyOverlap counter.
func ClassifyDomainWithOverlap(sp *grid.Space, interior *partition.Region, bodies []Body) *BodyOverlap {
	overlap := NewBodyOverlap(len(bodies))
	var hits []int
	initializeExterior(sp)

	for k := interior.KSub; k < interior.KSup; k++ {
		z := sp.Z(k)
		for j := interior.JSub; j < interior.JSup; j++ {
			y := sp.Y(j)
			for i := interior.ISub; i < interior.ISup; i++ {
				x := sp.X(i)
				n := sp.Idx(k, j, i)
				sp.Flag[n] = grid.FlagFluid
				sp.GeoID[n] = -1
				hits = hits[:0]
				for b, body := range bodies {
					if !body.inside(x, y, z) {
						continue
					}
					sp.Flag[n] = grid.FlagSolid
					sp.GeoID[n] = b
					for _, a := range hits {
						overlap.counts.SetSym(a, b, overlap.counts.At(a, b)+1)
					}
					hits = append(hits, b)
				}
			}
		}
	}
	promoteGhosts(sp, interior)
	return overlap
}
