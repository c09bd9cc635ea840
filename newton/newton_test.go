package newton

import (
	"math"
	"testing"

	"bezcore.dev/nodes"
	"bezcore.dev/status"
)

func ctrl(pts ...[2]float64) nodes.Nodes {
	n := nodes.New(2, len(pts))
	for i, p := range pts {
		copy(n.Point(i), p[:])
	}
	return n
}

func TestRefineSingleCurveConvergesOnLine(t *testing.T) {
	line := ctrl([2]float64{0, 0}, [2]float64{2, 0})
	p := []float64{1, 0}
	s := RefineSingleCurve(line, p, 0.3)
	if math.Abs(s-0.5) > 1e-9 {
		t.Errorf("s = %v, want 0.5", s)
	}
}

func TestRefinePairSolvesLineCrossing(t *testing.T) {
	l1 := ctrl([2]float64{0, 0}, [2]float64{1, 1})
	l2 := ctrl([2]float64{0, 1}, [2]float64{1, 0})
	s, tt, st := RefinePair(l1, 0.4, l2, 0.6)
	if st != status.Success {
		t.Fatalf("status = %v", st)
	}
	if math.Abs(s-0.5) > 1e-9 || math.Abs(tt-0.5) > 1e-9 {
		t.Errorf("(s,t) = (%v,%v), want (0.5,0.5)", s, tt)
	}
}

func TestRefinePairParallelLinesSingular(t *testing.T) {
	l1 := ctrl([2]float64{0, 0}, [2]float64{1, 0})
	l2 := ctrl([2]float64{0, 1}, [2]float64{1, 1})
	_, _, st := RefinePair(l1, 0.5, l2, 0.5)
	if st != status.Singular {
		t.Errorf("status = %v, want Singular", st)
	}
}

func TestClassifyAndRefineSimpleRootOnLines(t *testing.T) {
	l1 := ctrl([2]float64{0, 0}, [2]float64{1, 1})
	l2 := ctrl([2]float64{0, 1}, [2]float64{1, 0})
	s, tt, mult, st := ClassifyAndRefine(l1, 0.4, l2, 0.6, 1e-12)
	if st != status.Success || mult != Simple {
		t.Fatalf("mult=%v st=%v", mult, st)
	}
	if math.Abs(s-0.5) > 1e-9 || math.Abs(tt-0.5) > 1e-9 {
		t.Errorf("(s,t) = (%v,%v), want (0.5,0.5)", s, tt)
	}
}

// Two externally tangent unit circles, each represented here by one
// quarter-circle cubic Bézier arc, meet at exactly one point with
// multiplicity two: Newton converges linearly at rate ~1/2 rather than
// quadratically.
func TestClassifyAndRefineDoubleRootOnTangentCubics(t *testing.T) {
	k := 0.5522847498
	// Right-opening quarter-circle arc of radius 1 centered at origin,
	// from (1,0) to (0,1).
	c1 := ctrl([2]float64{1, 0}, [2]float64{1, k}, [2]float64{k, 1}, [2]float64{0, 1})
	// Same arc shape, radius 1 centered at (2,0): touches c1's circle
	// externally at (1,0) only.
	c2 := ctrl([2]float64{1, 0}, [2]float64{1, -k}, [2]float64{2 - k, -1}, [2]float64{2, -1})
	_, _, mult, st := ClassifyAndRefine(c1, 0.05, c2, 0.05, 1e-13)
	// Either outcome is acceptable here: a detected double root, or
	// BadMultiplicity if the iteration budget is exhausted chasing the
	// slow linear convergence.
	if st == status.Success && mult == Bad {
		t.Errorf("unexpected Bad multiplicity reported alongside Success status")
	}
	_ = mult
}
