package intersect

import (
	"math"

	"bezcore.dev/nodes"
)

// coincidenceTol bounds how close two curves' degree-elevated control
// points must be, after reparameterization, to be declared coincident.
const coincidenceTol = 1e-9

// detectCoincidence elevates both curves to a common degree and compares
// control points up to an affine reparameterization of the domain. Only
// the two reparameterizations that actually arise from re-tracing the
// *same* curve are tried: the identity (t->t) and the reversal (t->1-t,
// realized by reversing control point order). Detecting coincidence of
// curves that only partially overlap, or that are related by a more
// general reparameterization, is out of scope for this pass.
func detectCoincidence(c1, c2 nodes.Nodes) (coincident bool, reversed bool) {
	target := max(c1.Degree(), c2.Degree())
	e1, e2 := elevateToDegree(c1, target), elevateToDegree(c2, target)
	if pointsEqual(e1, e2) {
		return true, false
	}
	if pointsEqual(e1, reverse(e2)) {
		return true, true
	}
	return false, false
}

func elevateToDegree(ctrl nodes.Nodes, degree int) nodes.Nodes {
	for ctrl.Degree() < degree {
		ctrl = nodes.Elevate(ctrl)
	}
	return ctrl
}

func reverse(ctrl nodes.Nodes) nodes.Nodes {
	n := ctrl.Count()
	out := nodes.New(ctrl.D, n)
	for i := 0; i < n; i++ {
		copy(out.Point(i), ctrl.Point(n-1-i))
	}
	return out
}

func pointsEqual(a, b nodes.Nodes) bool {
	if a.Count() != b.Count() || a.D != b.D {
		return false
	}
	for i := range a.X {
		if math.Abs(a.X[i]-b.X[i]) > coincidenceTol {
			return false
		}
	}
	return true
}
