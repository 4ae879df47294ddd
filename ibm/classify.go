package ibm

import (
	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/partition"
)

// ClassifyDomain paints sp.Flag/sp.GeoID over the whole padded domain
// from the given interior region and body list (spec §4.6). It always
// re-initializes the exterior slabs as well as the interior in one
// pass, so it is safe to call again whenever a body moves (the Open
// Question resolution in SPEC_FULL.md): there is no partial "interior
// only" entry point.
func ClassifyDomain(sp *grid.Space, interior *partition.Region, bodies []Body) {
	initializeExterior(sp)
	markFluidAndSolid(sp, interior, bodies)
	promoteGhosts(sp, interior)
}

// initializeExterior sets every node in the padded domain to the
// exterior sentinel (spec §4.6 step 1); the interior/fluid/solid/ghost
// passes below then overwrite the interior box.
func initializeExterior(sp *grid.Space) {
	for n := range sp.Flag {
		sp.Flag[n] = grid.FlagExterior
		sp.GeoID[n] = -1
	}
}

// markFluidAndSolid is spec §4.6 step 2.
func markFluidAndSolid(sp *grid.Space, interior *partition.Region, bodies []Body) {
	for k := interior.KSub; k < interior.KSup; k++ {
		z := sp.Z(k)
		for j := interior.JSub; j < interior.JSup; j++ {
			y := sp.Y(j)
			for i := interior.ISub; i < interior.ISup; i++ {
				x := sp.X(i)
				n := sp.Idx(k, j, i)
				sp.Flag[n] = grid.FlagFluid
				sp.GeoID[n] = -1
				for b, body := range bodies {
					if body.inside(x, y, z) {
						sp.Flag[n] = grid.FlagSolid
						sp.GeoID[n] = b
					}
				}
			}
		}
	}
}

// promoteGhosts is spec §4.6 step 3: a solid node with at least one
// fluid 6-neighbor is promoted to ghost.
func promoteGhosts(sp *grid.Space, interior *partition.Region) {
	for k := interior.KSub; k < interior.KSup; k++ {
		for j := interior.JSub; j < interior.JSup; j++ {
			for i := interior.ISub; i < interior.ISup; i++ {
				n := sp.Idx(k, j, i)
				if sp.Flag[n] != grid.FlagSolid {
					continue
				}
				product := int(sp.Flag[sp.Idx(k-1, j, i)]) *
					int(sp.Flag[sp.Idx(k+1, j, i)]) *
					int(sp.Flag[sp.Idx(k, j-1, i)]) *
					int(sp.Flag[sp.Idx(k, j+1, i)]) *
					int(sp.Flag[sp.Idx(k, j, i-1)]) *
					int(sp.Flag[sp.Idx(k, j, i+1)])
				if product == 0 {
					sp.Flag[n] = grid.FlagGhost
				}
			}
		}
	}
}
