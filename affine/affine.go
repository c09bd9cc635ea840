// Package affine implements the 1-D affine remapping used to move curve
// parameters between a sub-interval and its parent interval.
package affine

// Interval is a closed sub-range [Start, End] of a parent parameter
// domain, expressed as an affine map t -> Start + t*(End-Start).
type Interval struct {
	Start, End float64
}

// Width returns End-Start.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

// At evaluates the affine map at t, returning Start+t*(End-Start).
func (iv Interval) At(t float64) float64 {
	return iv.Start + t*iv.Width()
}

// Restrict composes iv with a child interval expressed in iv's own [0,1]
// domain, returning the child's true interval against iv's parent. This
// realizes specialize_curve's true_start/true_end remap: if iv is the
// current (curve_start, curve_end) and child is (start, end) in [0,1],
// Restrict(child) is (true_start, true_end).
func (iv Interval) Restrict(child Interval) Interval {
	return Interval{
		Start: iv.At(child.Start),
		End:   iv.At(child.End),
	}
}

// Unit is the identity interval [0, 1].
var Unit = Interval{Start: 0, End: 1}
