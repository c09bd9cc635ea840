// Package bbox implements axis-aligned bounding boxes over control
// polygons and the three-valued overlap classifier the pairwise
// intersector consults in its inner loop. Kept branch-light and
// side-effect-free.
package bbox

import "bezcore.dev/nodes"

// Box is an axis-aligned bounding box in the plane.
type Box struct {
	Min, Max [2]float64
}

// Of computes the componentwise min/max bounding box of a planar control
// polygon (ctrl.D must be 2).
func Of(ctrl nodes.Nodes) Box {
	p0 := ctrl.Point(0)
	b := Box{Min: [2]float64{p0[0], p0[1]}, Max: [2]float64{p0[0], p0[1]}}
	for i := 1; i < ctrl.Count(); i++ {
		p := ctrl.Point(i)
		if p[0] < b.Min[0] {
			b.Min[0] = p[0]
		}
		if p[1] < b.Min[1] {
			b.Min[1] = p[1]
		}
		if p[0] > b.Max[0] {
			b.Max[0] = p[0]
		}
		if p[1] > b.Max[1] {
			b.Max[1] = p[1]
		}
	}
	return b
}

// Contains reports whether p lies inside the planar box b, inclusive of
// the boundary. The point locator does not use it; it uses ContainsND.
func (b Box) Contains(p []float64) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] && p[1] >= b.Min[1] && p[1] <= b.Max[1]
}

// ContainsND reports whether p lies within the componentwise min/max
// bounding box of ctrl, for ctrl of any dimension. The point locator
// operates on curves of arbitrary dimension (unlike the planar-only
// intersector, which uses the fixed 2-D Box/Of/Classify path above), so
// it consults this general form instead of Of/Contains.
func ContainsND(ctrl nodes.Nodes, p []float64) bool {
	d := ctrl.Count()
	if d == 0 {
		return false
	}
	lo := make([]float64, ctrl.D)
	hi := make([]float64, ctrl.D)
	copy(lo, ctrl.Point(0))
	copy(hi, ctrl.Point(0))
	for i := 1; i < d; i++ {
		pt := ctrl.Point(i)
		for c := 0; c < ctrl.D; c++ {
			if pt[c] < lo[c] {
				lo[c] = pt[c]
			}
			if pt[c] > hi[c] {
				hi[c] = pt[c]
			}
		}
	}
	for c := 0; c < ctrl.D; c++ {
		if p[c] < lo[c] || p[c] > hi[c] {
			return false
		}
	}
	return true
}

// Classification is the three-valued outcome of classifying the overlap
// of two boxes.
type Classification int

const (
	// Intersection: overlap has positive area on both axes.
	Intersection Classification = iota
	// Tangent: overlap is non-empty but zero-area on at least one axis.
	Tangent
	// Disjoint: strict separation on at least one axis.
	Disjoint
)

// Classify is the three-valued overlap classifier.
func Classify(a, b Box) Classification {
	xLo, xHi := max(a.Min[0], b.Min[0]), min(a.Max[0], b.Max[0])
	yLo, yHi := max(a.Min[1], b.Min[1]), min(a.Max[1], b.Max[1])
	// Float comparisons to zero-area overlap are deliberate: they
	// distinguish a touching edge/corner (Tangent) from a genuine
	// disjoint separation, and must not be fuzzed with a tolerance.
	if xLo > xHi || yLo > yHi {
		return Disjoint
	}
	if xLo == xHi || yLo == yHi {
		return Tangent
	}
	return Intersection
}
