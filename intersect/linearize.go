package intersect

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"bezcore.dev/nodes"
)

// linearizationTol bounds the scale-aware flatness test: a control
// polygon is close enough to a straight segment when every interior
// point's perpendicular distance from the chord is within
// linearizationTol times the chord's own length.
const linearizationTol = 1e-7

func isLinear(ctrl nodes.Nodes) bool {
	n := ctrl.Count()
	if n <= 2 {
		return true
	}
	p0, pl := ctrl.Point(0), ctrl.Point(n-1)
	dx, dy := pl[0]-p0[0], pl[1]-p0[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		for i := 1; i < n-1; i++ {
			p := ctrl.Point(i)
			if math.Hypot(p[0]-p0[0], p[1]-p0[1]) > linearizationTol {
				return false
			}
		}
		return true
	}
	for i := 1; i < n-1; i++ {
		p := ctrl.Point(i)
		dist := math.Abs(dy*(p[0]-p0[0])-dx*(p[1]-p0[1])) / length
		if dist > linearizationTol*length {
			return false
		}
	}
	return true
}

// solveLinearCrossing solves the 2x2 linear system for the crossing of
// the chords of two linearized candidates, mapping the local chord
// parameters back to the candidate's absolute (S,T) interval. It reports
// ok=false when the chords are (numerically) parallel or the crossing
// falls outside either chord's unit interval.
func solveLinearCrossing(cand Candidate) (guess, bool) {
	n1, n2 := cand.N1, cand.N2
	p0, p1 := n1.Point(0), n1.Point(n1.Count()-1)
	q0, q1 := n2.Point(0), n2.Point(n2.Count()-1)

	a := mat.NewDense(2, 2, []float64{
		p1[0] - p0[0], -(q1[0] - q0[0]),
		p1[1] - p0[1], -(q1[1] - q0[1]),
	})
	det := a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0)
	if math.Abs(det) < 1e-14 {
		return guess{}, false
	}
	rhs := mat.NewVecDense(2, []float64{q0[0] - p0[0], q0[1] - p0[1]})
	var aInv mat.Dense
	if err := aInv.Inverse(a); err != nil {
		return guess{}, false
	}
	var uv mat.VecDense
	uv.MulVec(&aInv, rhs)
	u, v := uv.AtVec(0), uv.AtVec(1)

	const eps = 1e-9
	if u < -eps || u > 1+eps || v < -eps || v > 1+eps {
		return guess{}, false
	}
	u, v = clamp01(u), clamp01(v)
	return guess{s: cand.S.At(u), t: cand.T.At(v)}, true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
