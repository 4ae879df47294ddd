// Package grid holds the uniform Cartesian grid (Space) and the
// double-buffered conservative-variable storage (Field) that the rest
// of the solver indexes into.
package grid

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/flowcfd/gocfd/cfderr"
	"github.com/flowcfd/gocfd/geomkit"
)

// Node flag values. Solid and ghost nodes additionally index into
// GeoID to identify the body they belong to.
const (
	FlagSolid    = -1
	FlagFluid    = 0
	FlagGhost    = 1
	FlagExterior = 2 // sentinel; any value >= 2 means exterior
)

// Space describes the padded uniform grid: extents, spacing, ghost
// width, and the per-node classification flag.
type Space struct {
	Ncx, Ncy, Ncz int // user-facing cell counts
	Ng            int // ghost layer width

	Nx, Ny, Nz    int // node-layer counts (interior + 2 boundary layers)
	IMax, JMax, KMax int // padded extents
	NMax          int // iMax*jMax*kMax

	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	Dx, Dy, Dz                         float64
	Ddx, Ddy, Ddz                      float64
	TinyL                              float64

	Flag  []int8 // FlagSolid/FlagFluid/FlagGhost/>=FlagExterior per node
	GeoID []int  // body id for solid/ghost nodes, -1 otherwise

	Log logrus.FieldLogger
}

// NewSpace builds a Space from cell counts, ghost width, and physical
// extents, and validates the invariants from spec §3: positive
// spacings, Ng >= 1. It returns a config-out-of-range error rather
// than panicking on invalid input.
func NewSpace(ncx, ncy, ncz, ng int, xMin, xMax, yMin, yMax, zMin, zMax float64) (*Space, error) {
	if ng < 1 {
		return nil, fmt.Errorf("%w: ghost width ng=%d must be >= 1", cfderr.ErrConfigOutOfRange, ng)
	}
	if ncx < 1 || ncy < 1 || ncz < 1 {
		return nil, fmt.Errorf("%w: cell counts (%d,%d,%d) must all be >= 1", cfderr.ErrConfigOutOfRange, ncx, ncy, ncz)
	}

	s := &Space{
		Ncx: ncx, Ncy: ncy, Ncz: ncz, Ng: ng,
		XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, ZMin: zMin, ZMax: zMax,
	}
	s.Nx, s.Ny, s.Nz = ncx+2, ncy+2, ncz+2
	s.IMax = s.Nx + 2*ng
	s.JMax = s.Ny + 2*ng
	s.KMax = s.Nz + 2*ng
	s.NMax = s.IMax * s.JMax * s.KMax

	s.Dx = (xMax - xMin) / float64(s.Nx-1)
	s.Dy = (yMax - yMin) / float64(s.Ny-1)
	s.Dz = (zMax - zMin) / float64(s.Nz-1)
	if s.Dx <= 0 || s.Dy <= 0 || s.Dz <= 0 || math.IsNaN(s.Dx) || math.IsNaN(s.Dy) || math.IsNaN(s.Dz) {
		return nil, fmt.Errorf("%w: non-positive grid spacing (dx=%g dy=%g dz=%g)", cfderr.ErrConfigOutOfRange, s.Dx, s.Dy, s.Dz)
	}
	s.Ddx, s.Ddy, s.Ddz = 1/s.Dx, 1/s.Dy, 1/s.Dz
	s.TinyL = 1e-3 * math.Min(s.Dx, math.Min(s.Dy, s.Dz))

	s.Flag = make([]int8, s.NMax)
	s.GeoID = make([]int, s.NMax)
	for i := range s.GeoID {
		s.GeoID[i] = -1
	}
	s.Log = logrus.StandardLogger()
	return s, nil
}

// Idx linearizes a (k,j,i) node index into this Space's flat offset.
func (s *Space) Idx(k, j, i int) int {
	return geomkit.Idx(k, j, i, s.JMax, s.IMax)
}

// X returns the physical x coordinate of node layer i.
func (s *Space) X(i int) float64 { return geomkit.NodeToCoord(i, s.Ng, s.XMin, s.Dx) }

// Y returns the physical y coordinate of node layer j.
func (s *Space) Y(j int) float64 { return geomkit.NodeToCoord(j, s.Ng, s.YMin, s.Dy) }

// Z returns the physical z coordinate of node layer k.
func (s *Space) Z(k int) float64 { return geomkit.NodeToCoord(k, s.Ng, s.ZMin, s.Dz) }

// NodeAtX returns the node-layer index closest to physical x.
func (s *Space) NodeAtX(x float64) int {
	return geomkit.CoordToNode(x, s.XMin, s.Ddx, s.Ng, 0, s.IMax)
}

// NodeAtY returns the node-layer index closest to physical y.
func (s *Space) NodeAtY(y float64) int {
	return geomkit.CoordToNode(y, s.YMin, s.Ddy, s.Ng, 0, s.JMax)
}

// NodeAtZ returns the node-layer index closest to physical z.
func (s *Space) NodeAtZ(z float64) int {
	return geomkit.CoordToNode(z, s.ZMin, s.Ddz, s.Ng, 0, s.KMax)
}
