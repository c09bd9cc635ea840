// Package intersect implements the pairwise curve intersector: adaptive
// lock-step subdivision of two planar curves, pruned by bounding-box and
// convex-hull overlap, with linear/linear crossings solved directly and
// bounding-box touches taken as point guesses; those guesses are refined
// by Newton's method and deduplicated. Coincidence is checked first.
// Candidates still unresolved after MaxRounds are not refined: the call
// reports status.NoConverge.
package intersect

import (
	"math"
	"sort"

	"bezcore.dev/affine"
	"bezcore.dev/bbox"
	"bezcore.dev/hull"
	"bezcore.dev/newton"
	"bezcore.dev/nodes"
	"bezcore.dev/status"
)

// MaxRounds is the hard subdivision round cap.
const MaxRounds = 20

// guess is an unrefined (s,t) parameter-pair estimate awaiting Newton
// refinement against the original (unsubdivided) curves.
type guess struct {
	s, t float64
}

// Intersect computes the planar intersections of curves c1 and c2 into
// out, using e as the candidate workspace. It returns the number of
// intersections (on Success, the count written to out; on
// InsufficientSpace, the required count, leaving out unspecified), a
// coincidence flag, and a Status.
func Intersect(e *Engine, c1, c2 nodes.Nodes, out [][2]float64) (numIntersections int, coincident bool, st status.Status) {
	if coinc, reversed := detectCoincidence(c1, c2); coinc {
		return writeCoincidentResult(out, reversed)
	}

	e.Reset()
	e.current = append(e.current, Candidate{S: affine.Unit, T: affine.Unit, N1: c1, N2: c2})

	var guesses []guess
	for round := 0; round < MaxRounds; round++ {
		e.next = e.next[:0]
		for _, cand := range e.current {
			b1, b2 := bbox.Of(cand.N1), bbox.Of(cand.N2)
			switch bbox.Classify(b1, b2) {
			case bbox.Disjoint:
				continue
			case bbox.Tangent:
				guesses = append(guesses, guess{
					s: (cand.S.Start + cand.S.End) / 2,
					t: (cand.T.Start + cand.T.End) / 2,
				})
				continue
			case bbox.Intersection:
				if !hull.Overlap(cand.N1, cand.N2) {
					continue
				}
			}

			lin1, lin2 := isLinear(cand.N1), isLinear(cand.N2)
			if lin1 && lin2 {
				if g, ok := solveLinearCrossing(cand); ok {
					guesses = append(guesses, g)
				}
				continue
			}

			e.next = append(e.next, subdivideCandidate(cand)...)
		}

		if len(e.next) >= status.CandidateCapacityFloor {
			return len(e.next), false, status.TooManyCandidates
		}

		e.current, e.next = e.next, e.current[:0]
		if len(e.current) == 0 {
			break
		}
	}

	if len(e.current) > 0 {
		// Candidates never reduced to near-linear within the round budget.
		return 0, false, status.NoConverge
	}

	results, st := refine(c1, c2, guesses)
	if st != status.Success {
		return 0, false, st
	}
	if len(results) > len(out) {
		return len(results), false, status.InsufficientSpace
	}
	copy(out, results)
	return len(results), false, status.Success
}

func subdivideCandidate(cand Candidate) []Candidate {
	l1, r1 := nodes.Subdivide(cand.N1)
	l2, r2 := nodes.Subdivide(cand.N2)
	mid1 := (cand.S.Start + cand.S.End) / 2
	mid2 := (cand.T.Start + cand.T.End) / 2
	sl := affine.Interval{Start: cand.S.Start, End: mid1}
	sr := affine.Interval{Start: mid1, End: cand.S.End}
	tl := affine.Interval{Start: cand.T.Start, End: mid2}
	tr := affine.Interval{Start: mid2, End: cand.T.End}
	return []Candidate{
		{S: sl, T: tl, N1: l1, N2: l2},
		{S: sl, T: tr, N1: l1, N2: r2},
		{S: sr, T: tl, N1: r1, N2: l2},
		{S: sr, T: tr, N1: r1, N2: r2},
	}
}

// refine runs Newton's method (and its simple/double-root classifier)
// from each raw guess against the original curves, then deduplicates by
// parameter proximity. A singular Jacobian on any candidate fails the
// whole call with status.Singular; a candidate whose Newton refinement
// converges to neither a simple nor a double root fails it with
// status.BadMultiplicity.
func refine(c1, c2 nodes.Nodes, guesses []guess) ([][2]float64, status.Status) {
	type refined struct {
		s, t float64
	}
	var out []refined
	for _, g := range guesses {
		s, t, mult, st := newton.ClassifyAndRefine(c1, g.s, c2, g.t, 1e-12)
		if st == status.Singular {
			return nil, status.Singular
		}
		if st == status.BadMultiplicity || mult == newton.Bad {
			return nil, status.BadMultiplicity
		}
		s, t = clamp01(s), clamp01(t)
		if !withinTolerance(c1, s, c2, t) {
			continue
		}
		out = append(out, refined{s: s, t: t})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].s != out[j].s {
			return out[i].s < out[j].s
		}
		return out[i].t < out[j].t
	})

	const dedupeTol = 1e-7
	var deduped [][2]float64
	for _, r := range out {
		if n := len(deduped); n > 0 {
			last := deduped[n-1]
			if math.Abs(r.s-last[0]) < dedupeTol && math.Abs(r.t-last[1]) < dedupeTol {
				continue
			}
		}
		deduped = append(deduped, [2]float64{r.s, r.t})
	}
	return deduped, status.Success
}

// intersectionTolerance bounds ||B1(s)-B2(t)|| for a refined pair to be
// accepted as a genuine intersection.
const intersectionTolerance = 1e-10

func withinTolerance(c1 nodes.Nodes, s float64, c2 nodes.Nodes, t float64) bool {
	p1, p2 := nodes.Evaluate1(c1, s), nodes.Evaluate1(c2, t)
	return math.Hypot(p1[0]-p2[0], p1[1]-p2[1]) <= intersectionTolerance*10
}

func writeCoincidentResult(out [][2]float64, reversed bool) (int, bool, status.Status) {
	pairs := [][2]float64{{0, 0}, {1, 1}}
	if reversed {
		pairs = [][2]float64{{0, 1}, {1, 0}}
	}
	if len(out) < len(pairs) {
		return len(pairs), true, status.InsufficientSpace
	}
	copy(out, pairs)
	return len(pairs), true, status.Success
}
