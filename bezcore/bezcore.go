// Package bezcore is the public surface of this module: a C-ABI-shaped
// procedure table realized as Go functions over flat column-major
// float64 arrays rather than cgo exports (language bindings for other
// runtimes are out of scope; the calling convention is kept so a future
// cgo shim would be a thin wrapper, not a rewrite). Every procedure here
// composes the lower packages (nodes, bbox, newton, locate, intersect)
// and never implements algebra itself.
package bezcore

import (
	"bezcore.dev/affine"
	"bezcore.dev/bbox"
	"bezcore.dev/intersect"
	"bezcore.dev/locate"
	"bezcore.dev/newton"
	"bezcore.dev/nodes"
	"bezcore.dev/status"
)

func wrap(d int, flat []float64) nodes.Nodes {
	return nodes.Nodes{D: d, X: flat}
}

// EvaluateCurveBarycentric is evaluate_curve_barycentric: evaluates a
// degree-`degree` control polygon of `d`-dimensional points at the m
// independent barycentric weight pairs (lambda1[i], lambda2[i]), writing
// the d*m result into evaluated (which must be preallocated by the
// caller).
func EvaluateCurveBarycentric(degree, d int, ctrlNodes []float64, lambda1, lambda2 []float64, evaluated []float64) {
	ctrl := wrap(d, ctrlNodes)
	out := nodes.EvaluateBarycentric(ctrl, lambda1, lambda2)
	copy(evaluated, out.X)
}

// EvaluateMulti is evaluate_multi: evaluates the control polygon at the m
// ordinary parameters s[i], writing the d*m result into evaluated.
func EvaluateMulti(degree, d int, ctrlNodes []float64, s []float64, evaluated []float64) {
	ctrl := wrap(d, ctrlNodes)
	out := nodes.EvaluateMulti(ctrl, s)
	copy(evaluated, out.X)
}

// SpecializeCurve is specialize_curve: reparameterizes the control polygon
// to [start,end] and remaps [curveStart,curveEnd] onto the new endpoints,
// writing the d*(degree+1) result into newNodes and returning the true
// (root-curve-relative) interval endpoints.
func SpecializeCurve(degree, d int, ctrlNodes []float64, start, end, curveStart, curveEnd float64, newNodes []float64) (trueStart, trueEnd float64) {
	ctrl := wrap(d, ctrlNodes)
	parent := affine.Interval{Start: curveStart, End: curveEnd}
	out, trueIv := nodes.Specialize(ctrl, start, end, parent)
	copy(newNodes, out.X)
	return trueIv.Start, trueIv.End
}

// EvaluateHodograph is evaluate_hodograph: writes B'(s), the d-dimensional
// derivative of the control polygon at s, into hodographOut.
func EvaluateHodograph(s float64, degree, d int, ctrlNodes []float64, hodographOut []float64) {
	ctrl := wrap(d, ctrlNodes)
	copy(hodographOut, nodes.Hodograph(ctrl, s))
}

// SubdivideNodes is subdivide_nodes: splits the N-point, d-dimensional
// control polygon at its midpoint parameter, writing the two halves (each
// d*N) into left and right.
func SubdivideNodes(n, d int, ctrlNodes []float64, left, right []float64) {
	ctrl := wrap(d, ctrlNodes)
	l, r := nodes.Subdivide(ctrl)
	copy(left, l.X)
	copy(right, r.X)
}

// NewtonRefineCurve is the curve-only newton_refine procedure: one
// Newton step toward the parameter of the control polygon closest to
// point, starting from s.
func NewtonRefineCurve(n, d int, ctrlNodes []float64, point []float64, s float64) (updatedS float64) {
	ctrl := wrap(d, ctrlNodes)
	return newton.RefineSingleCurve(ctrl, point, s)
}

// LocatePoint is locate_point: returns the approximate parameter of the
// control polygon's closest approach to point, or the sentinels
// locate.NotOnCurve / locate.MultipleArcs on the two failure modes.
func LocatePoint(n, d int, ctrlNodes []float64, point []float64) (sApprox float64) {
	ctrl := wrap(d, ctrlNodes)
	return locate.Point(ctrl, point)
}

// ElevateNodes is elevate_nodes: raises the N-point control polygon's
// degree by one, writing the d*(N+1) result into elevated.
func ElevateNodes(n, d int, ctrlNodes []float64, elevated []float64) {
	ctrl := wrap(d, ctrlNodes)
	out := nodes.Elevate(ctrl)
	copy(elevated, out.X)
}

// BboxIntersect is BEZ_bbox_intersect: classifies the bounding-box overlap
// of two planar (d=2) control polygons, returning 0 (Intersection), 1
// (Tangent) or 2 (Disjoint).
func BboxIntersect(n1 int, ctrl1 []float64, n2 int, ctrl2 []float64) int {
	c1 := wrap(2, ctrl1)
	c2 := wrap(2, ctrl2)
	return int(bbox.Classify(bbox.Of(c1), bbox.Of(c2)))
}

// CurveIntersections is BEZ_curve_intersections: computes the pairwise
// planar intersections of the two control polygons into intersectionsOut
// (a flat 2*S buffer; S = len(intersectionsOut)/2 is the caller's
// capacity), using the process-wide default workspace under its mutex.
// It returns the intersection count (or, on status.InsufficientSpace,
// the required count), a coincidence flag, and a status: on
// status.TooManyCandidates the candidate count is returned in place of
// numIntersections, matching the single overloaded numeric output a
// literal C calling convention would give this procedure (see
// intersect.Intersect for the Go-shaped two-value form used by callers
// with their own workspace).
func CurveIntersections(n1 int, ctrl1 []float64, n2 int, ctrl2 []float64, intersectionsOut []float64) (numIntersections int, coincident bool, st status.Status) {
	c1 := wrap(2, ctrl1)
	c2 := wrap(2, ctrl2)
	s := len(intersectionsOut) / 2
	pairs := make([][2]float64, s)

	n, coincident, st := intersect.IntersectDefault(c1, c2, pairs)
	for i := 0; i < n && i < s; i++ {
		intersectionsOut[2*i] = pairs[i][0]
		intersectionsOut[2*i+1] = pairs[i][1]
	}
	return n, coincident, st
}

// NewtonRefineCurveIntersect is BEZ_newton_refine_curve_intersect: one
// Newton step solving F(s,t)=B1(s)-B2(t)=0 from the current guess (s,t).
func NewtonRefineCurveIntersect(s float64, n1 int, ctrl1 []float64, t float64, n2 int, ctrl2 []float64) (newS, newT float64, st status.Status) {
	c1 := wrap(2, ctrl1)
	c2 := wrap(2, ctrl2)
	return newton.RefinePair(c1, s, c2, t)
}

// FreeCurveIntersectionsWorkspace is BEZ_free_curve_intersections_workspace:
// releases the process-wide default intersection workspace's buffers.
func FreeCurveIntersectionsWorkspace() {
	intersect.FreeDefaultWorkspace()
}
