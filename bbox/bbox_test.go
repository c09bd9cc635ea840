package bbox

import (
	"testing"

	"bezcore.dev/nodes"
)

func ctrl(pts ...[2]float64) nodes.Nodes {
	n := nodes.New(2, len(pts))
	for i, p := range pts {
		copy(n.Point(i), p[:])
	}
	return n
}

func TestOf(t *testing.T) {
	c := ctrl([2]float64{0, 0}, [2]float64{1, 2}, [2]float64{3, 1}, [2]float64{4, 4})
	b := Of(c)
	want := Box{Min: [2]float64{0, 0}, Max: [2]float64{4, 4}}
	if b != want {
		t.Errorf("Of = %+v, want %+v", b, want)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		a, b Box
		want Classification
	}{
		{
			"overlap",
			Box{Min: [2]float64{0, 0}, Max: [2]float64{2, 2}},
			Box{Min: [2]float64{1, 1}, Max: [2]float64{3, 3}},
			Intersection,
		},
		{
			"disjoint-x",
			Box{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}},
			Box{Min: [2]float64{2, 0}, Max: [2]float64{3, 1}},
			Disjoint,
		},
		{
			"touching-edge",
			Box{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}},
			Box{Min: [2]float64{1, 0}, Max: [2]float64{2, 1}},
			Tangent,
		},
		{
			"touching-corner",
			Box{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}},
			Box{Min: [2]float64{1, 1}, Max: [2]float64{2, 2}},
			Tangent,
		},
	}
	for _, c := range cases {
		if got := Classify(c.a, c.b); got != c.want {
			t.Errorf("%s: Classify = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestContains(t *testing.T) {
	b := Box{Min: [2]float64{0, 0}, Max: [2]float64{2, 2}}
	if !b.Contains([]float64{1, 1}) {
		t.Error("expected interior point contained")
	}
	if !b.Contains([]float64{0, 0}) {
		t.Error("expected boundary point contained")
	}
	if b.Contains([]float64{3, 1}) {
		t.Error("expected exterior point not contained")
	}
}

func TestContainsNDMatchesContainsInPlane(t *testing.T) {
	c := ctrl([2]float64{0, 0}, [2]float64{1, 2}, [2]float64{3, 1}, [2]float64{4, 4})
	for _, p := range [][]float64{{2, 2}, {0, 0}, {4, 4}, {5, 5}, {-1, 0}} {
		want := Of(c).Contains(p)
		if got := ContainsND(c, p); got != want {
			t.Errorf("ContainsND(%v) = %v, want %v (Contains)", p, got, want)
		}
	}
}

func TestContainsNDHandlesArbitraryDimension(t *testing.T) {
	n := nodes.New(3, 2)
	copy(n.Point(0), []float64{0, 0, 0})
	copy(n.Point(1), []float64{1, 1, 1})
	if !ContainsND(n, []float64{0.5, 0.5, 0.5}) {
		t.Error("expected interior 3-D point contained")
	}
	if ContainsND(n, []float64{2, 0, 0}) {
		t.Error("expected exterior 3-D point not contained")
	}
}
