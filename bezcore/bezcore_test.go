package bezcore

import (
	"math"
	"testing"

	"bezcore.dev/locate"
	"bezcore.dev/status"
)

func TestEvaluateMultiLinearMidpoint(t *testing.T) {
	ctrl := []float64{0, 0, 2, 4} // [(0,0), (2,4)], d=2
	out := make([]float64, 2)
	EvaluateMulti(1, 2, ctrl, []float64{0.5}, out)
	if out[0] != 1 || out[1] != 2 {
		t.Errorf("got %v, want [1 2]", out)
	}
}

func TestEvaluateCurveBarycentricMatchesEvaluateMultiOnDiagonal(t *testing.T) {
	ctrl := []float64{0, 0, 1, 2, 3, 1, 4, 4} // cubic, d=2
	s := 0.3
	viaMulti := make([]float64, 2)
	EvaluateMulti(3, 2, ctrl, []float64{s}, viaMulti)

	viaBary := make([]float64, 2)
	EvaluateCurveBarycentric(3, 2, ctrl, []float64{1 - s}, []float64{s}, viaBary)

	if math.Abs(viaMulti[0]-viaBary[0]) > 1e-12 || math.Abs(viaMulti[1]-viaBary[1]) > 1e-12 {
		t.Errorf("evaluate_curve_barycentric = %v, evaluate_multi = %v", viaBary, viaMulti)
	}
}

// Subdividing [(0,0),(1,2),(3,1),(4,4)] at its midpoint parameter gives
// left[3] == right[0] == (1.75, 1.875).
func TestSubdivideNodesSharedMidpoint(t *testing.T) {
	ctrl := []float64{0, 0, 1, 2, 3, 1, 4, 4}
	left := make([]float64, 8)
	right := make([]float64, 8)
	SubdivideNodes(4, 2, ctrl, left, right)

	wantX, wantY := 1.75, 1.875
	if math.Abs(left[6]-wantX) > 1e-12 || math.Abs(left[7]-wantY) > 1e-12 {
		t.Errorf("left last point = (%v,%v), want (%v,%v)", left[6], left[7], wantX, wantY)
	}
	if left[6] != right[0] || left[7] != right[1] {
		t.Errorf("left/right do not share midpoint: left=%v right=%v", left[6:8], right[0:2])
	}
}

func TestSpecializeCurveIdentityIsNoop(t *testing.T) {
	ctrl := []float64{0, 0, 1, 2, 3, 1, 4, 4}
	out := make([]float64, 8)
	trueStart, trueEnd := SpecializeCurve(3, 2, ctrl, 0, 1, 0, 1, out)
	if trueStart != 0 || trueEnd != 1 {
		t.Errorf("true interval = [%v,%v], want [0,1]", trueStart, trueEnd)
	}
	for i := range ctrl {
		if math.Abs(out[i]-ctrl[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], ctrl[i])
		}
	}
}

func TestElevateNodesPreservesEndpoints(t *testing.T) {
	ctrl := []float64{0, 0, 1, 1} // linear, d=2
	elevated := make([]float64, 6)
	ElevateNodes(2, 2, ctrl, elevated)
	if elevated[0] != 0 || elevated[1] != 0 {
		t.Errorf("first point = %v, want (0,0)", elevated[0:2])
	}
	if elevated[4] != 1 || elevated[5] != 1 {
		t.Errorf("last point = %v, want (1,1)", elevated[4:6])
	}
}

func TestEvaluateHodographLinearIsConstant(t *testing.T) {
	ctrl := []float64{0, 0, 2, 4}
	out := make([]float64, 2)
	EvaluateHodograph(0.7, 1, 2, ctrl, out)
	if out[0] != 2 || out[1] != 4 {
		t.Errorf("hodograph = %v, want (2,4)", out)
	}
}

// Point location on a parabola.
func TestLocatePointOnParabola(t *testing.T) {
	ctrl := []float64{0, 0, 1, 1, 2, 0}
	s := LocatePoint(3, 2, ctrl, []float64{1, 0.5})
	if math.Abs(s-0.5) > 1e-9 {
		t.Errorf("s = %v, want 0.5", s)
	}
}

func TestLocatePointOffCurveReturnsSentinel(t *testing.T) {
	ctrl := []float64{0, 0, 1, 1, 2, 0}
	s := LocatePoint(3, 2, ctrl, []float64{100, 100})
	if s != locate.NotOnCurve {
		t.Errorf("s = %v, want NotOnCurve", s)
	}
}

func TestBboxIntersectDisjoint(t *testing.T) {
	c1 := []float64{0, 0, 1, 1}
	c2 := []float64{5, 5, 6, 6}
	got := BboxIntersect(2, c1, 2, c2)
	if got != 2 {
		t.Errorf("classification = %d, want 2 (Disjoint)", got)
	}
}

// Two crossing line segments.
func TestCurveIntersectionsTwoLines(t *testing.T) {
	c1 := []float64{0, 0, 1, 1}
	c2 := []float64{0, 1, 1, 0}
	out := make([]float64, 8)
	n, coincident, st := CurveIntersections(2, c1, 2, c2, out)
	if st != status.Success {
		t.Fatalf("status = %v", st)
	}
	if coincident || n != 1 {
		t.Fatalf("n=%d coincident=%v, want 1/false", n, coincident)
	}
	if math.Abs(out[0]-0.5) > 1e-9 || math.Abs(out[1]-0.5) > 1e-9 {
		t.Errorf("intersection = (%v,%v), want (0.5,0.5)", out[0], out[1])
	}
}

func TestCurveIntersectionsInsufficientSpace(t *testing.T) {
	c1 := []float64{0, 0, 1, 1}
	c2 := []float64{0, 1, 1, 0}
	n, _, st := CurveIntersections(2, c1, 2, c2, nil)
	if st != status.InsufficientSpace {
		t.Fatalf("status = %v, want InsufficientSpace", st)
	}
	if n != 1 {
		t.Errorf("required count = %d, want 1", n)
	}
}

func TestNewtonRefineCurveIntersectSolvesCrossingLines(t *testing.T) {
	c1 := []float64{0, 0, 1, 1}
	c2 := []float64{0, 1, 1, 0}
	newS, newT, st := NewtonRefineCurveIntersect(0.5, 2, c1, 0.5, 2, c2)
	if st != status.Success {
		t.Fatalf("status = %v", st)
	}
	if math.Abs(newS-0.5) > 1e-9 || math.Abs(newT-0.5) > 1e-9 {
		t.Errorf("(s,t) = (%v,%v), want (0.5,0.5)", newS, newT)
	}
}

func TestFreeCurveIntersectionsWorkspaceIsSafeAfterUse(t *testing.T) {
	c1 := []float64{0, 0, 1, 1}
	c2 := []float64{0, 1, 1, 0}
	out := make([]float64, 8)
	CurveIntersections(2, c1, 2, c2, out)
	FreeCurveIntersectionsWorkspace()
	n, _, st := CurveIntersections(2, c1, 2, c2, out)
	if st != status.Success || n != 1 {
		t.Fatalf("post-free call: n=%d st=%v", n, st)
	}
}
