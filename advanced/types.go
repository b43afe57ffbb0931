package advanced

type Point struct {
	X float64
	Y float64
}

// Vertex and triangle ids index flat arenas owned by the PlanarGraph. They are
// assigned densely from zero and never reused, so an id stays meaningful for
// the lifetime of the graph, even after the thing it names has been removed or
// superseded.
type VertexID int
type TriangleID int

type Vertex struct {
	ID      VertexID
	Point   Point
	Removed bool
	// Triangles currently touching this vertex. Membership is unique; order is
	// only significant in that it makes the fan walk deterministic.
	Triangles []TriangleID
}

// A triangle in the graph. Once created, its vertices never change. Triangles
// created through the adapter are always stored counterclockwise.
type Triangle struct {
	ID TriangleID
	V  [3]VertexID
}

// Has the triangle got v as one of its corners?
func (t Triangle) Has(v VertexID) bool {
	return t.V[0] == v || t.V[1] == v || t.V[2] == v
}

// The two corners other than v, in counterclockwise order around v.
func (t Triangle) Opposite(v VertexID) (VertexID, VertexID) {
	switch v {
	case t.V[0]:
		return t.V[1], t.V[2]
	case t.V[1]:
		return t.V[2], t.V[0]
	case t.V[2]:
		return t.V[0], t.V[1]
	}
	fatalf("vertex %d is not a corner of triangle %d", v, t.ID)
	return 0, 0
}

type VertexSet map[VertexID]struct{}

func (s VertexSet) Add(v VertexID) {
	s[v] = struct{}{}
}

func (s VertexSet) Contains(v VertexID) bool {
	_, ok := s[v]
	return ok
}

type TriangleSet map[TriangleID]struct{}

func (s TriangleSet) Add(t TriangleID) {
	s[t] = struct{}{}
}

func (s TriangleSet) Contains(t TriangleID) bool {
	_, ok := s[t]
	return ok
}
