package output

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/flowcfd/gocfd/geomkit"
	"github.com/flowcfd/gocfd/grid"
	"github.com/flowcfd/gocfd/ibm"
	"github.com/flowcfd/gocfd/partition"
)

// TestIblankExport is scenario S6: given a classified field, the .geo
// iblank output is 1 on fluid and ghost nodes, 0 on solid interiors
// and exterior slabs, and the node count per part equals the product
// of the box extents.
func TestIblankExport(t *testing.T) {
	const n, ng = 20, 2
	sp, err := grid.NewSpace(n, n, n, ng, 0, 1, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	par := partition.Build(sp.IMax, sp.JMax, sp.KMax, ng)
	bodies := []ibm.Body{{Center: geomkit.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Radius: 0.2}}
	ibm.ClassifyDomain(sp, par.Interior(), bodies)

	const offset = 2 // fluid(0) and ghost(1) are >= FlagFluid and < 2; solid(-1) is not

	var buf bytes.Buffer
	if err := WriteGeo(&buf, sp, offset); err != nil {
		t.Fatalf("WriteGeo: %v", err)
	}

	coordBytes := sp.NMax * 3 * 4
	iblankBytes := buf.Bytes()[coordBytes:]
	if len(iblankBytes) != sp.NMax*4 {
		t.Fatalf("iblank section length = %d, want %d", len(iblankBytes), sp.NMax*4)
	}

	for n := 0; n < sp.NMax; n++ {
		var iblank int32
		if err := binary.Read(bytes.NewReader(iblankBytes[n*4:n*4+4]), binary.LittleEndian, &iblank); err != nil {
			t.Fatalf("decode iblank[%d]: %v", n, err)
		}
		f := sp.Flag[n]
		want := int32(0)
		if f == grid.FlagFluid || f == grid.FlagGhost {
			want = 1
		}
		if iblank != want {
			t.Fatalf("node %d: flag=%d iblank=%d, want %d", n, f, iblank, want)
		}
	}
}

func TestWriteGeoNodeCountPerPart(t *testing.T) {
	sp, err := grid.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteGeo(&buf, sp, 2); err != nil {
		t.Fatalf("WriteGeo: %v", err)
	}
	wantLen := sp.NMax*3*4 + sp.NMax*4
	if buf.Len() != wantLen {
		t.Errorf("buf.Len() = %d, want %d", buf.Len(), wantLen)
	}
	par := partition.Build(sp.IMax, sp.JMax, sp.KMax, sp.Ng)
	interior := par.Interior()
	wantCount := (interior.KSup - interior.KSub) * (interior.JSup - interior.JSub) * (interior.ISup - interior.ISub)
	if interior.Count() != wantCount {
		t.Errorf("Count() = %d, want %d", interior.Count(), wantCount)
	}
}

func TestWriteCaseReferencesAllFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCase(&buf, "step0"); err != nil {
		t.Fatalf("WriteCase: %v", err)
	}
	for _, want := range []string{"step0.geo", "step0.rho", "step0.T", "step0.vel"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("case file missing reference to %q", want)
		}
	}
}

func TestWriteParticlesOneLinePerBody(t *testing.T) {
	bodies := []ibm.Body{
		{Center: geomkit.Vec3{X: 0.1, Y: 0.2, Z: 0.3}, Radius: 0.05},
		{Center: geomkit.Vec3{X: 0.4, Y: 0.5, Z: 0.6}, Radius: 0.07},
	}
	var buf bytes.Buffer
	if err := WriteParticles(&buf, bodies); err != nil {
		t.Fatalf("WriteParticles: %v", err)
	}
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	if lines != len(bodies) {
		t.Errorf("wrote %d lines, want %d", lines, len(bodies))
	}
}
