// Package hull implements the tighter convex-hull overlap test the
// pairwise intersector uses after a bounding-box pass has already
// accepted a candidate pair: a monotone-chain convex hull of each
// control polygon, tested for overlap by the separating axis theorem
// against both hulls' edge normals.
package hull

import (
	"sort"

	"bezcore.dev/nodes"
)

// Point is a 2-D point; kept distinct from nodes.Nodes's flat storage
// because hull construction and the SAT test both want ordinary
// []Point slices to sort and walk.
type Point struct{ X, Y float64 }

// Of computes the convex hull of a planar control polygon's points, in
// counter-clockwise order, via Andrew's monotone chain algorithm.
func Of(ctrl nodes.Nodes) []Point {
	pts := make([]Point, ctrl.Count())
	for i := range pts {
		p := ctrl.Point(i)
		pts[i] = Point{X: p[0], Y: p[1]}
	}
	return monotoneChain(pts)
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func monotoneChain(pts []Point) []Point {
	pts = append([]Point(nil), pts...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	// Deduplicate consecutive identical points.
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq
	n := len(pts)
	if n < 3 {
		return pts
	}
	hullPts := make([]Point, 2*n)
	k := 0
	for i := 0; i < n; i++ {
		for k >= 2 && cross(hullPts[k-2], hullPts[k-1], pts[i]) <= 0 {
			k--
		}
		hullPts[k] = pts[i]
		k++
	}
	lower := k + 1
	for i := n - 2; i >= 0; i-- {
		for k >= lower && cross(hullPts[k-2], hullPts[k-1], pts[i]) <= 0 {
			k--
		}
		hullPts[k] = pts[i]
		k++
	}
	return hullPts[:k-1]
}

// Overlap reports whether the convex hulls of two planar control polygons
// intersect (including touching), via the separating axis theorem: two
// convex polygons are disjoint iff some edge normal of either separates
// their projections.
func Overlap(a, b nodes.Nodes) bool {
	ha, hb := Of(a), Of(b)
	if len(ha) == 0 || len(hb) == 0 {
		return true
	}
	if len(ha) == 1 && len(hb) == 1 {
		return ha[0] == hb[0]
	}
	return !hasSeparatingAxis(ha, hb) && !hasSeparatingAxis(hb, ha)
}

func hasSeparatingAxis(hull, other []Point) bool {
	n := len(hull)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		p0, p1 := hull[i], hull[(i+1)%n]
		// Outward normal of edge p0->p1 (hull is CCW).
		nx, ny := p1.Y-p0.Y, -(p1.X - p0.X)
		minH, maxH := project(hull, nx, ny)
		minO, maxO := project(other, nx, ny)
		if maxH < minO || maxO < minH {
			return true
		}
	}
	return false
}

func project(pts []Point, nx, ny float64) (min, max float64) {
	min, max = pts[0].X*nx+pts[0].Y*ny, pts[0].X*nx+pts[0].Y*ny
	for _, p := range pts[1:] {
		v := p.X*nx + p.Y*ny
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
