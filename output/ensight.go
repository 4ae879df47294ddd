// Package output writes EnSight Gold field exports and restart
// companions (spec §6, "Field output"). Geometry and field blocks are
// IEEE-754 binary, little-endian, written directly with
// encoding/binary rather than through a netCDF dependency: this is a
// single-writer, single-reader format with one part and a fixed node
// ordering, grounded on InMAP's io.go writing raw binary blocks
// directly rather than pulling in a heavier structured format for
// data InMAP itself only ever reads back.
package output

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/ibm"
)

var byteOrder = binary.LittleEndian

// WriteGeo writes the .geo binary geometry file for sp: node
// coordinates in IJK order (sMin + (n-ng)*ds per spec §6) and an
// iblank flag per node, 1 iff the node is fluid or ghost (flag in
// [FlagFluid, offset)), 0 for solid interiors and exterior nodes.
func WriteGeo(w io.Writer, sp *grid.Space, offset int) error {
	for k := 0; k < sp.KMax; k++ {
		z := sp.Z(k)
		for j := 0; j < sp.JMax; j++ {
			y := sp.Y(j)
			for i := 0; i < sp.IMax; i++ {
				x := sp.X(i)
				if err := writeFloat32s(w, float32(x), float32(y), float32(z)); err != nil {
					return err
				}
			}
		}
	}
	for k := 0; k < sp.KMax; k++ {
		for j := 0; j < sp.JMax; j++ {
			for i := 0; i < sp.IMax; i++ {
				n := sp.Idx(k, j, i)
				iblank := int32(0)
				if sp.Flag[n] >= grid.FlagFluid && sp.Flag[n] < int8(offset) {
					iblank = 1
				}
				if err := binary.Write(w, byteOrder, iblank); err != nil {
					return fmt.Errorf("output: writing iblank: %w", err)
				}
			}
		}
	}
	return nil
}

// WriteScalar writes one scalar field (rho, u, v, w, p, or T) in IJK
// order as IEEE-754 float32.
func WriteScalar(w io.Writer, sp *grid.Space, values []float64) error {
	for k := 0; k < sp.KMax; k++ {
		for j := 0; j < sp.JMax; j++ {
			for i := 0; i < sp.IMax; i++ {
				n := sp.Idx(k, j, i)
				if err := writeFloat32s(w, float32(values[n])); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteVector writes the Vel vector field (u,v,w components
// interleaved per node) in IJK order.
func WriteVector(w io.Writer, sp *grid.Space, u, v, vw []float64) error {
	for k := 0; k < sp.KMax; k++ {
		for j := 0; j < sp.JMax; j++ {
			for i := 0; i < sp.IMax; i++ {
				n := sp.Idx(k, j, i)
				if err := writeFloat32s(w, float32(u[n]), float32(v[n]), float32(vw[n])); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeFloat32s(w io.Writer, vs ...float32) error {
	for _, v := range vs {
		if err := binary.Write(w, byteOrder, v); err != nil {
			return fmt.Errorf("output: writing float32: %w", err)
		}
	}
	return nil
}

// WriteCase writes the .case descriptor referring to the geometry,
// scalar, and vector files for a single step.
func WriteCase(w io.Writer, baseName string) error {
	_, err := fmt.Fprintf(w, "FORMAT\ntype: ensight gold\n\n"+
		"GEOMETRY\nmodel: %[1]s.geo\n\n"+
		"VARIABLE\n"+
		"scalar per node: rho %[1]s.rho\n"+
		"scalar per node: u %[1]s.u\n"+
		"scalar per node: v %[1]s.v\n"+
		"scalar per node: w %[1]s.w\n"+
		"scalar per node: p %[1]s.p\n"+
		"scalar per node: T %[1]s.T\n"+
		"vector per node: Vel %[1]s.vel\n", baseName)
	return err
}

// WriteTransientCase writes ensight.case, the transient step list
// referring to one geometry/field set per step index.
func WriteTransientCase(w io.Writer, baseName string, stepTimes []float64) error {
	if _, err := fmt.Fprintf(w, "FORMAT\ntype: ensight gold\n\n"+
		"GEOMETRY\nmodel: 1 %[1]s.*.geo\n\n"+
		"VARIABLE\n"+
		"scalar per node: 1 rho %[1]s.*.rho\n"+
		"scalar per node: 1 u %[1]s.*.u\n"+
		"scalar per node: 1 v %[1]s.*.v\n"+
		"scalar per node: 1 w %[1]s.*.w\n"+
		"scalar per node: 1 p %[1]s.*.p\n"+
		"scalar per node: 1 T %[1]s.*.T\n"+
		"vector per node: 1 Vel %[1]s.*.vel\n\n"+
		"TIME\ntime set: 1\nnumber of steps: %[2]d\n"+
		"filename start number: 0\nfilename increment: 1\ntime values:\n",
		baseName, len(stepTimes)); err != nil {
		return err
	}
	for _, t := range stepTimes {
		if _, err := fmt.Fprintf(w, "%g\n", t); err != nil {
			return err
		}
	}
	return nil
}

// WriteParticles writes the plain-text .particle restart companion:
// one line per body, center/radius/velocity.
func WriteParticles(w io.Writer, bodies []ibm.Body) error {
	for i, b := range bodies {
		if _, err := fmt.Fprintf(w, "%d %g %g %g %g %g %g %g %g %g %g\n",
			i, b.Center.X, b.Center.Y, b.Center.Z, b.Radius,
			b.U.X, b.U.Y, b.U.Z, b.Omega.X, b.Omega.Y, b.Omega.Z); err != nil {
			return err
		}
	}
	return nil
}
