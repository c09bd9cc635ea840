// Package nodes implements the algebraic primitives shared by every other
// package in this module: de Casteljau evaluation, the hodograph
// (derivative curve), midpoint subdivision, sub-interval specialization,
// and degree elevation, all over a control polygon of arbitrary degree in
// arbitrary dimension.
package nodes

import "bezcore.dev/affine"

// Nodes is a control polygon (or any other ordered sequence of D-dimensional
// points, such as an evaluated sample set): a flat, column-major array of
// D*Count float64s, D varying fastest within each point. Degree is Count-1.
type Nodes struct {
	D int
	X []float64
}

// New allocates a zeroed Nodes of d dimensions and count points.
func New(d, count int) Nodes {
	return Nodes{D: d, X: make([]float64, d*count)}
}

// Count returns the number of points (N = degree+1 for a control polygon).
func (n Nodes) Count() int {
	if n.D == 0 {
		return 0
	}
	return len(n.X) / n.D
}

// Degree returns Count()-1.
func (n Nodes) Degree() int {
	return n.Count() - 1
}

// Point returns the i'th point as a D-length slice sharing n's backing
// array; mutating it mutates n.
func (n Nodes) Point(i int) []float64 {
	return n.X[i*n.D : (i+1)*n.D]
}

// Clone returns a deep copy.
func (n Nodes) Clone() Nodes {
	out := Nodes{D: n.D, X: make([]float64, len(n.X))}
	copy(out.X, n.X)
	return out
}

func midpoint(d int, a, b []float64) []float64 {
	m := make([]float64, d)
	for c := 0; c < d; c++ {
		m[c] = (a[c] + b[c]) / 2
	}
	return m
}

func lerp(d int, a, b []float64, t float64) []float64 {
	m := make([]float64, d)
	for c := 0; c < d; c++ {
		m[c] = a[c] + t*(b[c]-a[c])
	}
	return m
}

// binomialRow computes C(k,0..k) by the incremental update
// C(k,i) = C(k,i-1) * (k-i+1)/i, accumulated in float64 so that degrees up
// to 255 never overflow the way a factorial-based computation would.
func binomialRow(k int) []float64 {
	row := make([]float64, k+1)
	row[0] = 1
	for i := 1; i <= k; i++ {
		row[i] = row[i-1] * float64(k-i+1) / float64(i)
	}
	return row
}

// EvaluateBarycentric evaluates the control polygon ctrl at m barycentric
// weight pairs (lambda1[j], lambda2[j]), returning m points. When
// lambda1+lambda2 == 1 this reduces to ordinary curve evaluation; general
// weight pairs let de Casteljau's recursion be generalized to a pair of
// independent blossom arguments, which EvaluateMulti relies on.
func EvaluateBarycentric(ctrl Nodes, lambda1, lambda2 []float64) Nodes {
	k := ctrl.Degree()
	d := ctrl.D
	m := len(lambda1)
	out := New(d, m)
	if k < 0 {
		return out
	}
	binom := binomialRow(k)
	pow1 := make([]float64, k+1)
	pow2 := make([]float64, k+1)
	acc := make([]float64, d)
	for j := 0; j < m; j++ {
		l1, l2 := lambda1[j], lambda2[j]
		pow1[0], pow2[0] = 1, 1
		for i := 1; i <= k; i++ {
			pow1[i] = pow1[i-1] * l1
			pow2[i] = pow2[i-1] * l2
		}
		for c := range acc {
			acc[c] = 0
		}
		for i := 0; i <= k; i++ {
			w := binom[i] * pow1[k-i] * pow2[i]
			p := ctrl.Point(i)
			for c := 0; c < d; c++ {
				acc[c] += w * p[c]
			}
		}
		copy(out.Point(j), acc)
	}
	return out
}

// EvaluateMulti evaluates ctrl at ordinary parameters s[0..m-1] via
// EvaluateBarycentric(ctrl, 1-s, s).
func EvaluateMulti(ctrl Nodes, s []float64) Nodes {
	lambda1 := make([]float64, len(s))
	lambda2 := make([]float64, len(s))
	for i, si := range s {
		lambda1[i] = 1 - si
		lambda2[i] = si
	}
	return EvaluateBarycentric(ctrl, lambda1, lambda2)
}

// Evaluate1 evaluates ctrl at a single parameter s.
func Evaluate1(ctrl Nodes, s float64) []float64 {
	return EvaluateMulti(ctrl, []float64{s}).Point(0)
}

// Hodograph returns B'(s), the derivative of ctrl at s. The hodograph
// curve itself has degree-1 fewer control points, formed from first
// differences Pᵢ₊₁-Pᵢ; B'(s) = k * H(s) where H is the reduced curve and k
// the original degree.
func Hodograph(ctrl Nodes, s float64) []float64 {
	k := ctrl.Degree()
	d := ctrl.D
	out := make([]float64, d)
	if k <= 0 {
		return out
	}
	diff := New(d, k)
	for i := 0; i < k; i++ {
		p0, p1 := ctrl.Point(i), ctrl.Point(i+1)
		q := diff.Point(i)
		for c := 0; c < d; c++ {
			q[c] = p1[c] - p0[c]
		}
	}
	h := Evaluate1(diff, s)
	for c := 0; c < d; c++ {
		out[c] = float64(k) * h[c]
	}
	return out
}

// Subdivide splits ctrl into two control polygons covering [0,0.5] and
// [0.5,1], sharing a single point: left.Point(last) == right.Point(0).
// Counts 2, 3 and 4 use closed-form dyadic formulas; higher counts use the
// generic Pascal-triangle averaging path.
func Subdivide(ctrl Nodes) (left, right Nodes) {
	switch ctrl.Count() {
	case 2:
		return subdivide2(ctrl)
	case 3:
		return subdivide3(ctrl)
	case 4:
		return subdivide4(ctrl)
	default:
		return subdivideGeneric(ctrl)
	}
}

func subdivide2(ctrl Nodes) (Nodes, Nodes) {
	d := ctrl.D
	p0, p1 := ctrl.Point(0), ctrl.Point(1)
	mid := midpoint(d, p0, p1)
	left, right := New(d, 2), New(d, 2)
	copy(left.Point(0), p0)
	copy(left.Point(1), mid)
	copy(right.Point(0), mid)
	copy(right.Point(1), p1)
	return left, right
}

func subdivide3(ctrl Nodes) (Nodes, Nodes) {
	d := ctrl.D
	p0, p1, p2 := ctrl.Point(0), ctrl.Point(1), ctrl.Point(2)
	p01 := midpoint(d, p0, p1)
	p12 := midpoint(d, p1, p2)
	p012 := midpoint(d, p01, p12)
	left, right := New(d, 3), New(d, 3)
	copy(left.Point(0), p0)
	copy(left.Point(1), p01)
	copy(left.Point(2), p012)
	copy(right.Point(0), p012)
	copy(right.Point(1), p12)
	copy(right.Point(2), p2)
	return left, right
}

func subdivide4(ctrl Nodes) (Nodes, Nodes) {
	d := ctrl.D
	p0, p1, p2, p3 := ctrl.Point(0), ctrl.Point(1), ctrl.Point(2), ctrl.Point(3)
	p01 := midpoint(d, p0, p1)
	p12 := midpoint(d, p1, p2)
	p23 := midpoint(d, p2, p3)
	p012 := midpoint(d, p01, p12)
	p123 := midpoint(d, p12, p23)
	p0123 := midpoint(d, p012, p123)
	left, right := New(d, 4), New(d, 4)
	copy(left.Point(0), p0)
	copy(left.Point(1), p01)
	copy(left.Point(2), p012)
	copy(left.Point(3), p0123)
	copy(right.Point(0), p0123)
	copy(right.Point(1), p123)
	copy(right.Point(2), p23)
	copy(right.Point(3), p3)
	return left, right
}

func subdivideGeneric(ctrl Nodes) (Nodes, Nodes) {
	return splitAtGeneric(ctrl, 0.5)
}

// splitAtGeneric runs the Pascal-triangle de Casteljau split at an
// arbitrary parameter t, averaging (lerping by t) successive rows until a
// single point remains; the left edge of the triangle is the left curve's
// control polygon, the right edge is the right curve's.
func splitAtGeneric(ctrl Nodes, t float64) (Nodes, Nodes) {
	d, n := ctrl.D, ctrl.Count()
	k := n - 1
	row := make([][]float64, n)
	for i := 0; i < n; i++ {
		p := make([]float64, d)
		copy(p, ctrl.Point(i))
		row[i] = p
	}
	left, right := New(d, n), New(d, n)
	copy(left.Point(0), row[0])
	copy(right.Point(k), row[k])
	for r := 1; r <= k; r++ {
		next := make([][]float64, n-r)
		for i := 0; i < n-r; i++ {
			next[i] = lerp(d, row[i], row[i+1], t)
		}
		row = next
		copy(left.Point(r), row[0])
		copy(right.Point(k-r), row[len(row)-1])
	}
	return left, right
}

// Specialize reparameterizes ctrl to the sub-interval [start,end] ⊆ [0,1]
// and reports the affine remap of the parent interval [curveStart,
// curveEnd] onto the new endpoints, so that callers can recover "true"
// parameters against the original root curve after repeated specialization.
func Specialize(ctrl Nodes, start, end float64, parent affine.Interval) (Nodes, affine.Interval) {
	trueIv := parent.Restrict(affine.Interval{Start: start, End: end})
	switch ctrl.Count() {
	case 2:
		return specializeLinear(ctrl, start, end), trueIv
	case 3:
		return specializeQuadratic(ctrl, start, end), trueIv
	default:
		return specializeGeneric(ctrl, start, end), trueIv
	}
}

func specializeLinear(ctrl Nodes, start, end float64) Nodes {
	d := ctrl.D
	p0, p1 := ctrl.Point(0), ctrl.Point(1)
	out := New(d, 2)
	copy(out.Point(0), lerp(d, p0, p1, start))
	copy(out.Point(1), lerp(d, p0, p1, end))
	return out
}

// specializeQuadratic uses the closed-form blossom triple: the new control
// points are the symmetric bilinear blends B(a,a), B(a,b), B(b,b) of the
// original quadratic's blossom.
func specializeQuadratic(ctrl Nodes, a, b float64) Nodes {
	d := ctrl.D
	p0, p1, p2 := ctrl.Point(0), ctrl.Point(1), ctrl.Point(2)
	blossom := func(u, v float64) []float64 {
		out := make([]float64, d)
		w0 := (1 - u) * (1 - v)
		w1 := u*(1-v) + v*(1-u)
		w2 := u * v
		for c := 0; c < d; c++ {
			out[c] = w0*p0[c] + w1*p1[c] + w2*p2[c]
		}
		return out
	}
	out := New(d, 3)
	copy(out.Point(0), blossom(a, a))
	copy(out.Point(1), blossom(a, b))
	copy(out.Point(2), blossom(b, b))
	return out
}

// specializeGeneric performs two de Casteljau sweeps: split at `end` and
// keep the left piece [0,end], then split that piece at the rescaled
// start and keep its right piece, leaving exactly the [start,end]
// restriction.
func specializeGeneric(ctrl Nodes, start, end float64) Nodes {
	if start == 0 && end == 1 {
		return ctrl.Clone()
	}
	left, _ := splitAtGeneric(ctrl, end)
	if end == 0 {
		// Degenerate: zero-width interval at the origin.
		return left
	}
	rescaledStart := start / end
	_, right := splitAtGeneric(left, rescaledStart)
	return right
}

// Elevate raises ctrl's degree by one while preserving its point set:
// E_0=P_0, E_N=P_{N-1}, E_i = (i*P_{i-1} + (N-i)*P_i)/N for 1<=i<=N-1,
// where N = ctrl.Count().
func Elevate(ctrl Nodes) Nodes {
	d, n := ctrl.D, ctrl.Count()
	out := New(d, n+1)
	copy(out.Point(0), ctrl.Point(0))
	copy(out.Point(n), ctrl.Point(n-1))
	fn := float64(n)
	for i := 1; i <= n-1; i++ {
		pPrev, p := ctrl.Point(i-1), ctrl.Point(i)
		q := out.Point(i)
		for c := 0; c < d; c++ {
			q[c] = (float64(i)*pPrev[c] + float64(n-i)*p[c]) / fn
		}
	}
	return out
}

// SamplePoints evaluates ctrl at `count` evenly spaced parameters in
// [0,1], inclusive of both endpoints. It is test/property-verification
// support, not part of the public curve API: plain parameter spacing,
// since callers here just need reproducible points known to lie on the
// curve rather than an arc-length-uniform sampling.
func SamplePoints(ctrl Nodes, count int) (ts []float64, pts Nodes) {
	if count < 2 {
		count = 2
	}
	ts = make([]float64, count)
	for i := range ts {
		ts[i] = float64(i) / float64(count-1)
	}
	return ts, EvaluateMulti(ctrl, ts)
}
