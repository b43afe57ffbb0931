package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/kirkpatrick/dbg"
	"github.com/pkg/errors"
)

// The fixed triangle every polygon must lie strictly inside. Its corners become
// the three vertices that are never removed, so the hierarchy always bottoms
// out at this single triangle.
var DefaultOuterTriangle = [3]Point{{-10000, -10000}, {10000, -10000}, {0, 10000}}

// An outer triangle sized for a 650x650 canvas in screen coordinates.
var CanvasOuterTriangle = [3]Point{{325, 5}, {650, 650}, {5, 650}}

type Option func(*Hierarchy)

func WithOuterTriangle(outer [3]Point) Option {
	return func(h *Hierarchy) {
		h.outerTriangle = outer
	}
}

// Vertices with more neighbors than this are never removed.
func WithMaxDegree(maxDegree int) Option {
	return func(h *Hierarchy) {
		h.maxDegree = maxDegree
	}
}

func WithTriangulator(t Triangulator) Option {
	return func(h *Hierarchy) {
		h.triangulator = t
	}
}

// Trace construction and queries through a printf style function.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(h *Hierarchy) {
		h.logf = logf
	}
}

// A Kirkpatrick point location hierarchy over a simple polygon.
//
// Level 0 triangulates the polygon and the ring between the polygon and the
// outer triangle. Each reduction round removes an independent set of low
// degree vertices, re-triangulates the holes they leave, and records the
// resulting coarser triangulation as the next level. The triangle DAG links
// every new triangle to the old triangles it overlaps, and the single triangle
// left once only the outer corners remain is the DAG's root.
type Hierarchy struct {
	graph *PlanarGraph
	dag   *TriangleDAG

	outerTriangle [3]Point
	outer         [3]VertexID
	boundary      []VertexID
	inner         TriangleSet
	innerOrder    []TriangleID
	// Level at which each triangle first appeared, indexed by triangle id
	createdAt []int

	maxDegree    int
	triangulator Triangulator
	logf         func(format string, args ...interface{})
	halted       bool
}

// What a single reduction round did.
type Round struct {
	Level      int
	Removed    []VertexID
	Superseded []TriangleID
	Created    []TriangleID
}

// Build level 0 for a simple polygon, given in either winding. Nothing is
// reduced yet: call Build, or Step repeatedly.
func NewHierarchy(points []Point, opts ...Option) (h *Hierarchy, err error) {
	h = &Hierarchy{
		dag:           NewTriangleDAG(),
		outerTriangle: DefaultOuterTriangle,
		maxDegree:     DefaultMaxDegree,
		triangulator:  DefaultTriangulator(),
		inner:         make(TriangleSet),
	}
	for _, opt := range opts {
		opt(h)
	}

	if len(points) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "have %d", len(points))
	}
	h.outerTriangle = counterclockwise(h.outerTriangle)
	o := h.outerTriangle
	if Orientation(o[0], o[1], o[2]) == 0 {
		return nil, errors.Errorf("outer triangle %v is degenerate", o)
	}
	seen := make(map[Point]int)
	for i, p := range points {
		if !PointInTriangle(p, o[0], o[1], o[2]) {
			return nil, errors.Wrapf(ErrOutOfBounds, "polygon point %d %v", i, p)
		}
		if j, ok := seen[p]; ok {
			return nil, errors.Wrapf(ErrSelfIntersectingInput, "points %d and %d are both %v", j, i, p)
		}
		seen[p] = i
	}
	if !(Polygon{points}).IsSimple() {
		return nil, errors.Wrap(ErrSelfIntersectingInput, "polygon edges cross")
	}

	defer func() {
		if recovered := HandlePanicRecover(recover()); recovered != nil {
			h = nil
			err = recovered
		}
	}()

	g := NewPlanarGraph()
	h.graph = g
	for _, p := range points {
		h.boundary = append(h.boundary, g.AddVertex(p))
	}
	for i, v := range h.boundary {
		g.Connect(v, h.boundary[CircularIndex(i+1, len(h.boundary))])
	}

	inner, err := g.Triangulate(h.triangulator, h.boundary, nil)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating polygon")
	}
	for _, t := range inner {
		h.inner.Add(t)
	}
	h.innerOrder = inner

	for i, p := range h.outerTriangle {
		h.outer[i] = g.AddVertex(p)
		g.markOuter(h.outer[i])
	}
	ring, err := g.Triangulate(h.triangulator, h.outer[:], h.boundary)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating outer ring")
	}

	level := append(append([]TriangleID{}, inner...), ring...)
	g.RecordLevel(level)
	for _, t := range level {
		h.dag.AddNode(t)
		h.createdAt = append(h.createdAt, 0)
	}
	h.log("%s: level 0 has %d vertices, %d triangles (%d inside the polygon)",
		h.Name(), g.Active(), len(level), len(inner))
	return h, nil
}

func (h *Hierarchy) log(format string, args ...interface{}) {
	if h.logf != nil {
		h.logf(format, args...)
	}
}

// Remove an independent set of vertices and record the next level.
//
// For each vertex in turn, it is removed from the graph, the hole it leaves is
// re-triangulated, and every new triangle gets a DAG edge to each old triangle
// it overlaps. Once the whole set is removed, the next level is the previous
// level minus every superseded triangle, plus every created one.
//
// The set must be non-empty, made up of active non-outer vertices, and
// pairwise non-adjacent. Anything else, and any failure to re-triangulate, is
// fatal and halts the hierarchy.
func (h *Hierarchy) Reduce(set []VertexID) (round Round, err error) {
	if h.halted {
		return Round{}, ErrHalted
	}
	defer func() {
		if recovered := HandlePanicRecover(recover()); recovered != nil {
			h.halted = true
			round = Round{}
			err = recovered
		}
	}()

	g := h.graph
	if len(set) == 0 {
		fatalWrapf(ErrDegenerateIndependentSet, "empty set with %d active vertices", g.Active())
	}
	members := make(VertexSet)
	for _, v := range set {
		if int(v) < 0 || int(v) >= g.VertexCount() || g.Vertex(v).Removed || g.IsOuter(v) {
			fatalf("vertex %d cannot be removed", v)
		}
		for _, n := range g.adj[v] {
			if members.Contains(n) {
				fatalf("vertices %d and %d are adjacent", n, v)
			}
		}
		members.Add(v)
	}

	round.Level = g.LevelCount()
	round.Removed = append(round.Removed, set...)
	superseded := make(TriangleSet)
	for _, v := range set {
		old, hole := g.RemoveVertex(v)
		created, err := g.Triangulate(h.triangulator, hole, nil)
		if err != nil {
			fatalWrapf(err, "re-triangulating the hole left by vertex %d", v)
		}
		for _, t := range old {
			superseded.Add(t)
		}
		round.Superseded = append(round.Superseded, old...)

		covered := make(TriangleSet)
		for _, n := range created {
			if int(n) != len(h.createdAt) {
				fatalf("triangle %d created out of order", n)
			}
			h.createdAt = append(h.createdAt, round.Level)
			h.dag.AddNode(n)
			newPoints := g.TrianglePoints(n)
			linked := 0
			for _, o := range old {
				if TrianglesOverlap(newPoints, g.TrianglePoints(o)) {
					h.dag.AddEdge(n, o)
					covered.Add(o)
					linked++
				}
			}
			if linked == 0 {
				// A sliver from nearly collinear input can be too thin for the
				// overlap test. It still lies in the hole, so any of the old
				// triangles may hold a point inside it.
				for _, o := range old {
					h.dag.AddEdge(n, o)
					covered.Add(o)
				}
				h.log("%s: %s overlaps nothing, linked to all of %v", h.Name(), h.DbgName(n), old)
			}
		}
		// Same the other way around, so that no old triangle becomes unreachable.
		for _, o := range old {
			if covered.Contains(o) {
				continue
			}
			for _, n := range created {
				h.dag.AddEdge(n, o)
			}
			h.log("%s: %s is overlapped by nothing, linked from all of %v", h.Name(), h.DbgName(o), created)
		}
		round.Created = append(round.Created, created...)
	}

	var next []TriangleID
	for _, t := range g.levels[round.Level-1] {
		if !superseded.Contains(t) {
			next = append(next, t)
		}
	}
	next = append(next, round.Created...)
	g.RecordLevel(next)

	h.log("%s: level %d removed %d vertices, %d active, %d triangles",
		h.Name(), round.Level, len(set), g.Active(), len(next))

	if g.Active() == 3 {
		if len(next) != 1 {
			fatalf("%d triangles left with only the outer vertices active", len(next))
		}
		h.dag.SetRoot(next[0])
		h.log("%s: root is %s", h.Name(), h.DbgName(next[0]))
	}
	return round, nil
}

// Run one reduction round on a freshly selected independent set. Stepping a
// fully reduced hierarchy does nothing and returns a zero Round.
func (h *Hierarchy) Step() (Round, error) {
	if h.halted {
		return Round{}, ErrHalted
	}
	if h.Done() {
		return Round{}, nil
	}
	set := SelectIndependentSet(h.graph, h.maxDegree)
	if len(set) == 0 {
		h.halted = true
		return Round{}, errors.Wrapf(ErrDegenerateIndependentSet,
			"no vertex of degree at most %d among %d active", h.maxDegree, h.graph.Active())
	}
	return h.Reduce(set)
}

// Reduce until only the outer triangle remains.
func (h *Hierarchy) Build() error {
	for !h.Done() {
		if _, err := h.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Has the hierarchy been reduced down to its root?
func (h *Hierarchy) Done() bool {
	_, ok := h.dag.Root()
	return ok
}

func (h *Hierarchy) Halted() bool {
	return h.halted
}

func (h *Hierarchy) Graph() *PlanarGraph {
	return h.graph
}

func (h *Hierarchy) DAG() *TriangleDAG {
	return h.dag
}

func (h *Hierarchy) Root() (TriangleID, error) {
	root, ok := h.dag.Root()
	if !ok {
		return 0, ErrNotBuilt
	}
	return root, nil
}

// The polygon's vertices, in input order.
func (h *Hierarchy) Boundary() []VertexID {
	return append([]VertexID{}, h.boundary...)
}

// The level 0 triangles that lie inside the polygon.
func (h *Hierarchy) Inner() []TriangleID {
	return append([]TriangleID{}, h.innerOrder...)
}

func (h *Hierarchy) IsInner(t TriangleID) bool {
	return h.inner.Contains(t)
}

// The outer triangle's vertices, counterclockwise.
func (h *Hierarchy) Outer() [3]VertexID {
	return h.outer
}

func (h *Hierarchy) OuterTriangle() [3]Point {
	return h.outerTriangle
}

func (h *Hierarchy) MaxDegree() int {
	return h.maxDegree
}

// The level at which a triangle was created. Every DAG edge goes to a triangle
// created at a strictly lower level.
func (h *Hierarchy) CreatedAt(t TriangleID) int {
	return h.createdAt[t]
}

func (h *Hierarchy) Name() string {
	return dbg.Name(h)
}

func (h *Hierarchy) String() string {
	return fmt.Sprintf("Hierarchy %s <%d levels, %d active vertices, %d triangles, %d DAG edges>",
		h.Name(),
		h.graph.LevelCount(),
		h.graph.Active(),
		h.graph.TriangleCount(),
		h.dag.EdgeCount(),
	)
}

type triangleKey struct {
	h *Hierarchy
	t TriangleID
}

func (h *Hierarchy) DbgName(t TriangleID) string {
	name := fmt.Sprintf("%s#%d", dbg.Name(triangleKey{h, t}), t)
	tri := h.graph.Triangle(t)
	if h.IsInner(t) { // Inside the polygon
		name = aurora.Green(name).String()
	} else if h.createdAt[t] == 0 { // Between the polygon and the outer triangle
		name = aurora.Cyan(name).String()
	} else if tri.Has(h.outer[0]) || tri.Has(h.outer[1]) || tri.Has(h.outer[2]) {
		name = aurora.Red(name).String()
	}
	return name
}
