package grid

import (
	"errors"
	"testing"

	"github.com/flowcfd/gocfd/cfderr"
)

func testSpace(t *testing.T) *Space {
	t.Helper()
	s, err := NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return s
}

func TestNewSpaceInvariants(t *testing.T) {
	s := testSpace(t)
	if s.Nx != 12 || s.IMax != 16 {
		t.Errorf("got nx=%d iMax=%d, want 12, 16", s.Nx, s.IMax)
	}
	if s.NMax != s.IMax*s.JMax*s.KMax {
		t.Errorf("nMax inconsistent with iMax*jMax*kMax")
	}
	if s.Dx <= 0 || s.Dy <= 0 || s.Dz <= 0 {
		t.Errorf("expected strictly positive spacing, got dx=%v dy=%v dz=%v", s.Dx, s.Dy, s.Dz)
	}
}

func TestNewSpaceRejectsBadInput(t *testing.T) {
	if _, err := NewSpace(10, 10, 10, 0, 0, 1, 0, 1, 0, 1); !errors.Is(err, cfderr.ErrConfigOutOfRange) {
		t.Errorf("expected config-out-of-range for ng=0, got %v", err)
	}
	if _, err := NewSpace(10, 10, 10, 2, 1, 1, 0, 1, 0, 1); !errors.Is(err, cfderr.ErrConfigOutOfRange) {
		t.Errorf("expected config-out-of-range for zero-width extent, got %v", err)
	}
}

func TestIdxBijection(t *testing.T) {
	s := testSpace(t)
	seen := make(map[int]bool, s.NMax)
	for k := 0; k < s.KMax; k++ {
		for j := 0; j < s.JMax; j++ {
			for i := 0; i < s.IMax; i++ {
				off := s.Idx(k, j, i)
				if off < 0 || off >= s.NMax || seen[off] {
					t.Fatalf("idx(%d,%d,%d)=%d is not a fresh value in [0,%d)", k, j, i, off, s.NMax)
				}
				seen[off] = true
			}
		}
	}
	if len(seen) != s.NMax {
		t.Fatalf("got %d distinct offsets, want %d", len(seen), s.NMax)
	}
}

func TestNodeCoordRoundTrip(t *testing.T) {
	s := testSpace(t)
	for _, x0 := range []float64{0, 0.3, 0.5, 0.99, 1.0} {
		i := s.NodeAtX(x0)
		x := s.X(i)
		if d := x - x0; d > s.Dx/2+1e-9 || d < -s.Dx/2-1e-9 {
			t.Errorf("x0=%v round-tripped to %v via node %d", x0, x, i)
		}
	}
}
