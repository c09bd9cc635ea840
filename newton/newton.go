// Package newton implements two Newton refinements: a single-curve step
// used by the point locator, and a curve-pair step (on the 2x2 Jacobian
// of F(s,t)=B1(s)-B2(t)) used by the pairwise intersector, along with the
// convergence classifier the intersector needs to tell a simple root
// from a double root.
package newton

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"bezcore.dev/nodes"
	"bezcore.dev/status"
)

// SingularThreshold bounds how small |det(J)| may be before the curve-pair
// refinement reports status.Singular.
const SingularThreshold = 1e-10

// RefineSingleCurve performs one Newton step toward the parameter of
// nodes ctrl closest to point p, starting from guess s:
// s' = s + (Δ·D)/(D·D), Δ = p - B(s), D = B'(s). The caller iterates if
// further refinement is needed; there is no status output, matching the
// locator's simpler contract.
func RefineSingleCurve(ctrl nodes.Nodes, p []float64, s float64) float64 {
	b := nodes.Evaluate1(ctrl, s)
	d := nodes.Hodograph(ctrl, s)
	var deltaDotD, dDotD float64
	for i := range p {
		delta := p[i] - b[i]
		deltaDotD += delta * d[i]
		dDotD += d[i] * d[i]
	}
	if dDotD == 0 {
		return s
	}
	return s + deltaDotD/dDotD
}

// RefinePair performs one Newton step solving F(s,t) = B1(s) - B2(t) = 0,
// given planar curves c1, c2 and a current guess (s,t). The 2x2 Jacobian
// is [B1'(s), -B2'(t)]; if its determinant is singular to within
// SingularThreshold, status.Singular is returned and (news,newt) are
// unspecified.
func RefinePair(c1 nodes.Nodes, s float64, c2 nodes.Nodes, t float64) (news, newt float64, st status.Status) {
	b1, b2 := nodes.Evaluate1(c1, s), nodes.Evaluate1(c2, t)
	d1, d2 := nodes.Hodograph(c1, s), nodes.Hodograph(c2, t)

	j := mat.NewDense(2, 2, []float64{
		d1[0], -d2[0],
		d1[1], -d2[1],
	})
	det := j.At(0, 0)*j.At(1, 1) - j.At(0, 1)*j.At(1, 0)
	if math.Abs(det) <= SingularThreshold {
		return 0, 0, status.Singular
	}

	f := mat.NewVecDense(2, []float64{b1[0] - b2[0], b1[1] - b2[1]})
	var jInv mat.Dense
	if err := jInv.Inverse(j); err != nil {
		return 0, 0, status.Singular
	}
	var delta mat.VecDense
	delta.MulVec(&jInv, f)

	return s - delta.AtVec(0), t - delta.AtVec(1), status.Success
}

// Multiplicity classifies the observed convergence pattern of an
// iterative Newton refinement on a curve-pair root: Simple roots converge
// quadratically (error roughly squares each step), double roots converge
// linearly at rate ~1/2. Neither pattern surviving the iteration budget
// means status.BadMultiplicity.
type Multiplicity int

const (
	Simple Multiplicity = iota
	Double
	Bad
)

// MaxRefineIterations bounds the iterative refinement loop used to
// classify a root's multiplicity.
const MaxRefineIterations = 50

// ClassifyAndRefine iteratively applies RefinePair from (s0,t0) until the
// step size either shows quadratic convergence (Simple), a steady ~1/2
// linear convergence rate (Double, with one round of Aitken-style
// acceleration applied), or neither within MaxRefineIterations (Bad). It
// returns the best available (s,t) estimate alongside the classification.
func ClassifyAndRefine(c1 nodes.Nodes, s0 float64, c2 nodes.Nodes, t0 float64, tol float64) (s, t float64, mult Multiplicity, st status.Status) {
	s, t = s0, t0
	prevStep := math.Inf(1)
	doubleStreak := 0
	for i := 0; i < MaxRefineIterations; i++ {
		ns, nt, rst := RefinePair(c1, s, c2, t)
		if rst != status.Success {
			return s, t, Bad, rst
		}
		step := math.Hypot(ns-s, nt-t)
		s, t = ns, nt
		if step <= tol {
			return s, t, Simple, status.Success
		}
		if math.IsInf(prevStep, 1) {
			prevStep = step
			continue
		}
		ratio := step / prevStep
		switch {
		case ratio <= 0.3:
			// Roughly quadratic: error shrank by more than the linear
			// ~1/2 rate would predict.
			prevStep = step
		case ratio > 0.3 && ratio < 0.8:
			doubleStreak++
			prevStep = step
			if doubleStreak >= 4 {
				s, t = accelerateDoubleRoot(c1, s, c2, t, ratio)
				return s, t, Double, status.Success
			}
		default:
			doubleStreak = 0
			prevStep = step
		}
	}
	return s, t, Bad, status.BadMultiplicity
}

// accelerateDoubleRoot applies one round of Aitken Δ²-style acceleration
// appropriate for a linearly-converging (rate≈1/2) double root: one more
// Newton step is taken and the sequence is extrapolated assuming the
// observed ratio holds exactly, s_∞ ≈ s + step/(1-ratio).
func accelerateDoubleRoot(c1 nodes.Nodes, s float64, c2 nodes.Nodes, t float64, ratio float64) (float64, float64) {
	ns, nt, rst := RefinePair(c1, s, c2, t)
	if rst != status.Success || ratio >= 1 {
		return ns, nt
	}
	ds, dt := ns-s, nt-t
	return ns + ds*ratio/(1-ratio), nt + dt*ratio/(1-ratio)
}
