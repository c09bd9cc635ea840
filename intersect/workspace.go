package intersect

import (
	"sync"

	"bezcore.dev/affine"
	"bezcore.dev/nodes"
	"bezcore.dev/status"
)

// Candidate is an intersection candidate: a pair of arcs of the two
// input curves, each described by its parameter range against the
// original curve and its specialized control polygon.
type Candidate struct {
	S, T   affine.Interval
	N1, N2 nodes.Nodes
}

// Engine is the candidate workspace: an explicit value a caller owns,
// rather than an implicit package-level global. The two candidate lists
// are grown (never shrunk) across calls and swapped between subdivision
// rounds; Engine itself assumes single-thread confinement — a caller
// sharing one Engine across goroutines must serialize access itself (or
// use the package-level default entry points below, which do that for
// it).
type Engine struct {
	current, next []Candidate
}

// NewEngine returns a fresh, empty workspace.
func NewEngine() *Engine {
	return &Engine{}
}

// Reset clears both candidate lists without releasing their backing
// arrays, so repeated calls on the same Engine amortize allocation.
func (e *Engine) Reset() {
	e.current = e.current[:0]
	e.next = e.next[:0]
}

// Free releases the workspace's backing arrays entirely. Call it when the
// Engine will not be reused, to return memory rather than amortize it.
func (e *Engine) Free() {
	e.current = nil
	e.next = nil
}

var (
	defaultEngineMu sync.Mutex
	defaultEngine   = NewEngine()
)

// withDefaultEngine runs fn against the process-wide default Engine under
// a mutex, for the literal C-shaped entry points that have no engine
// parameter of their own.
func withDefaultEngine(fn func(*Engine)) {
	defaultEngineMu.Lock()
	defer defaultEngineMu.Unlock()
	fn(defaultEngine)
}

// FreeDefaultWorkspace releases the process-wide default Engine's
// buffers. It is the Go realization of
// BEZ_free_curve_intersections_workspace.
func FreeDefaultWorkspace() {
	defaultEngineMu.Lock()
	defer defaultEngineMu.Unlock()
	defaultEngine.Free()
}

// IntersectDefault calls Intersect against the process-wide default
// Engine under its mutex, for callers (namely the literal C-shaped
// bezcore entry points) with no Engine of their own to pass.
func IntersectDefault(c1, c2 nodes.Nodes, out [][2]float64) (numIntersections int, coincident bool, st status.Status) {
	withDefaultEngine(func(e *Engine) {
		numIntersections, coincident, st = Intersect(e, c1, c2, out)
	})
	return
}
