package geomkit

import "testing"

func TestIdxBijection(t *testing.T) {
	kMax, jMax, iMax := 4, 5, 6
	seen := make(map[int]bool)
	for k := 0; k < kMax; k++ {
		for j := 0; j < jMax; j++ {
			for i := 0; i < iMax; i++ {
				off := Idx(k, j, i, jMax, iMax)
				if off < 0 || off >= kMax*jMax*iMax {
					t.Fatalf("idx(%d,%d,%d) = %d out of range", k, j, i, off)
				}
				if seen[off] {
					t.Fatalf("idx(%d,%d,%d) = %d collides with a previous index", k, j, i, off)
				}
				seen[off] = true
			}
		}
	}
	if len(seen) != kMax*jMax*iMax {
		t.Fatalf("got %d distinct offsets, want %d", len(seen), kMax*jMax*iMax)
	}
}

func TestCoordNodeRoundTrip(t *testing.T) {
	const (
		ng   = 2
		n    = 12 // nx
		min  = 0.0
		max  = 1.0
	)
	d := (max - min) / float64(n-1)
	dInv := 1 / d
	nMin := ng
	nMax := n + 2*ng

	for _, x0 := range []float64{0.0, 0.123, 0.5, 0.999, 1.0} {
		i := CoordToNode(x0, min, dInv, ng, nMin, nMax)
		x := NodeToCoord(i, ng, min, d)
		if diff := x - x0; diff > d/2+1e-12 || diff < -d/2-1e-12 {
			t.Errorf("x0=%v round-tripped to %v through node %d (d=%v)", x0, x, i, d)
		}
	}
}

func TestCoordToNodeClamps(t *testing.T) {
	const ng = 2
	nMin, nMax := ng, 16
	i := CoordToNode(-100, 0, 11, ng, nMin, nMax)
	if i != nMin {
		t.Errorf("expected clamp to nMin=%d, got %d", nMin, i)
	}
	i = CoordToNode(100, 0, 11, ng, nMin, nMax)
	if i != nMax-1 {
		t.Errorf("expected clamp to nMax-1=%d, got %d", nMax-1, i)
	}
}
