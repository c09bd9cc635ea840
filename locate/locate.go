// Package locate implements the adaptive point-locator: repeated
// bisection of a single curve against a query point, narrowed by a
// bounding-box prune, followed by one Newton refinement step.
package locate

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"bezcore.dev/affine"
	"bezcore.dev/bbox"
	"bezcore.dev/newton"
	"bezcore.dev/nodes"
)

// MaxSubdivisions is the hard round cap.
const MaxSubdivisions = 20

// StdDevCeiling is 2^-20: a surviving candidate parameter set with
// standard deviation above this is treated as multiple disjoint arcs
// through the query point.
const StdDevCeiling = 1.0 / (1 << 20)

// NotOnCurve is the sentinel returned when no candidate survives.
const NotOnCurve = -1.0

// MultipleArcs is the sentinel returned when the query point lies on
// more than one disjoint arc of the curve (self-intersection).
const MultipleArcs = -2.0

// candidate is a LocateCandidate: an arc of the original curve together
// with its specialized control polygon.
type candidate struct {
	iv    affine.Interval
	nodes nodes.Nodes
}

// Point returns the approximate parameter s_approx of the point on ctrl
// closest to p, using the sentinels NotOnCurve / MultipleArcs for the two
// failure modes.
func Point(ctrl nodes.Nodes, p []float64) float64 {
	current := []candidate{{iv: affine.Unit, nodes: ctrl}}
	for round := 0; round < MaxSubdivisions; round++ {
		var next []candidate
		for _, c := range current {
			if !bbox.ContainsND(c.nodes, p) {
				continue
			}
			mid := (c.iv.Start + c.iv.End) / 2
			left, right := nodes.Subdivide(c.nodes)
			leftIv := affine.Interval{Start: c.iv.Start, End: mid}
			rightIv := affine.Interval{Start: mid, End: c.iv.End}
			next = append(next, candidate{iv: leftIv, nodes: left})
			next = append(next, candidate{iv: rightIv, nodes: right})
		}
		if len(next) == 0 {
			return NotOnCurve
		}
		current = next
	}

	params := make([]float64, 0, 2*len(current))
	for _, c := range current {
		params = append(params, c.iv.Start, c.iv.End)
	}
	mu := stat.Mean(params, nil)
	stddev := stat.StdDev(params, nil)
	if stddev > StdDevCeiling {
		return MultipleArcs
	}
	return newton.RefineSingleCurve(ctrl, p, clamp01(mu))
}

func clamp01(s float64) float64 {
	return math.Max(0, math.Min(1, s))
}
