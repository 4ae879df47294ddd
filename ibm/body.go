// Package ibm implements the ghost-cell immersed-boundary classifier
// (spec §4.6): it paints Space.Flag/GeoID from a list of embedded
// bodies.
package ibm

import "github.com/flowcfd/gocfd/geomkit"

// Body is one embedded solid, described either as a sphere (Center,
// Radius) or, via SignedDistance, as an arbitrary implicit surface
// (spec §3's "implicit generalization"). U and Omega carry linear and
// angular velocity for bodies declared with motion in the case file;
// the stationary classifier below does not use them, but the restart
// writer persists them and a moving-body re-classification has a
// field to read them from.
type Body struct {
	Center geomkit.Vec3
	Radius float64
	U      geomkit.Vec3
	Omega  geomkit.Vec3

	// SignedDistance, if non-nil, overrides the sphere test: a node is
	// inside the body when SignedDistance(x, y, z) < 0.
	SignedDistance func(x, y, z float64) float64
}

// inside reports whether the point (x,y,z) lies within the body.
func (b Body) inside(x, y, z float64) bool {
	if b.SignedDistance != nil {
		return b.SignedDistance(x, y, z) < 0
	}
	dx, dy, dz := x-b.Center.X, y-b.Center.Y, z-b.Center.Z
	d2 := dx*dx + dy*dy + dz*dz - b.Radius*b.Radius
	return d2 < 0
}
