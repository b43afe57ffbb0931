package advanced

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// The triangle DAG links every triangle created by a reduction round to the
// triangles of the previous level that it overlaps. Edges point from the newer
// (coarser) triangle to the older (finer) ones, so a point location query
// walks edges from the root down to level 0.
//
// Triangle ids are allocated in creation order, so every edge goes from a
// higher id to a lower one, and the graph cannot contain a cycle.
type TriangleDAG struct {
	graph   *simple.DirectedGraph
	root    TriangleID
	hasRoot bool
}

func NewTriangleDAG() *TriangleDAG {
	return &TriangleDAG{graph: simple.NewDirectedGraph()}
}

func (d *TriangleDAG) AddNode(t TriangleID) {
	if d.graph.Node(int64(t)) != nil {
		return
	}
	d.graph.AddNode(simple.Node(t))
}

func (d *TriangleDAG) HasNode(t TriangleID) bool {
	return d.graph.Node(int64(t)) != nil
}

// Add the edge newer -> older. Adding an existing edge is a no-op.
func (d *TriangleDAG) AddEdge(newer, older TriangleID) {
	if newer <= older {
		fatalf("DAG edge must go from a newer triangle to an older one, got %d -> %d", newer, older)
	}
	if d.graph.HasEdgeFromTo(int64(newer), int64(older)) {
		return
	}
	d.graph.SetEdge(d.graph.NewEdge(simple.Node(newer), simple.Node(older)))
}

// The older triangles that t was built over, in ascending id order.
func (d *TriangleDAG) Children(t TriangleID) []TriangleID {
	return sortedIDs(d.graph.From(int64(t)))
}

// The newer triangles built over t, in ascending id order.
func (d *TriangleDAG) Parents(t TriangleID) []TriangleID {
	return sortedIDs(d.graph.To(int64(t)))
}

func sortedIDs(nodes graph.Nodes) []TriangleID {
	var ids []TriangleID
	for nodes.Next() {
		ids = append(ids, TriangleID(nodes.Node().ID()))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d *TriangleDAG) SetRoot(t TriangleID) {
	d.AddNode(t)
	d.root = t
	d.hasRoot = true
}

// The root triangle, or false if the hierarchy has not been reduced yet.
func (d *TriangleDAG) Root() (TriangleID, bool) {
	return d.root, d.hasRoot
}

func (d *TriangleDAG) NodeCount() int {
	return d.graph.Nodes().Len()
}

func (d *TriangleDAG) EdgeCount() int {
	return d.graph.Edges().Len()
}

// Check that the graph has no cycles.
func (d *TriangleDAG) Validate() error {
	if _, err := topo.Sort(d.graph); err != nil {
		return errors.Wrap(err, "triangle DAG is not acyclic")
	}
	return nil
}

// Depth first iterator over the triangles reachable from a starting triangle.
// Each triangle is produced once, even when several paths lead to it.
type DAGIterator struct {
	dag   *TriangleDAG
	stack []TriangleID
	seen  TriangleSet
}

func (d *TriangleDAG) Iterate(from TriangleID) *DAGIterator {
	return &DAGIterator{d, []TriangleID{from}, make(TriangleSet)}
}

func (iter *DAGIterator) Next() (TriangleID, bool) {
	for len(iter.stack) > 0 {
		t := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		if iter.seen.Contains(t) {
			continue
		}
		iter.seen.Add(t)
		// Push in reverse, so that the lowest id child is visited first
		children := iter.dag.Children(t)
		for i := len(children) - 1; i >= 0; i-- {
			iter.stack = append(iter.stack, children[i])
		}
		return t, true
	}
	return 0, false
}

// Every triangle reachable from t, including t itself, in visit order.
func (d *TriangleDAG) Reachable(t TriangleID) []TriangleID {
	var result []TriangleID
	iter := d.Iterate(t)
	for {
		next, ok := iter.Next()
		if !ok {
			return result
		}
		result = append(result, next)
	}
}
