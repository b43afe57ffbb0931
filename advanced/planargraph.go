package advanced

// The planar graph owns every vertex and triangle ever created. Vertices and
// triangles live in flat arenas indexed by id, and all relations between them
// (adjacency, incident triangles, triangulation levels) are stored as id lists
// rather than pointers. Nothing is ever deleted from the arenas: a removed
// vertex is only flagged, and a superseded triangle simply stops appearing in
// later levels while remaining addressable from the DAG.
type PlanarGraph struct {
	vertices  []Vertex
	adj       [][]VertexID
	triangles []Triangle
	levels    [][]TriangleID
	active    int
	outer     VertexSet
}

func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{outer: make(VertexSet)}
}

func (g *PlanarGraph) AddVertex(p Point) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Point: p})
	g.adj = append(g.adj, nil)
	g.active++
	return id
}

// Mark a vertex as one of the fixed outer triangle's corners. Outer vertices
// are never selected for removal.
func (g *PlanarGraph) markOuter(v VertexID) {
	g.outer.Add(v)
}

func (g *PlanarGraph) IsOuter(v VertexID) bool {
	return g.outer.Contains(v)
}

// Add the undirected edge uv. Connecting an existing edge (in either
// direction) is a no-op.
func (g *PlanarGraph) Connect(u, v VertexID) {
	if u == v {
		return
	}
	if containsVertexID(g.adj[u], v) || containsVertexID(g.adj[v], u) {
		return
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

func (g *PlanarGraph) Connected(u, v VertexID) bool {
	return containsVertexID(g.adj[u], v)
}

func (g *PlanarGraph) Degree(v VertexID) int {
	return len(g.adj[v])
}

// A copy of v's neighbors. Empty for a removed vertex.
func (g *PlanarGraph) Neighbors(v VertexID) []VertexID {
	neighbors := make([]VertexID, len(g.adj[v]))
	copy(neighbors, g.adj[v])
	return neighbors
}

// Number of vertices that have not been removed.
func (g *PlanarGraph) Active() int {
	return g.active
}

func (g *PlanarGraph) VertexCount() int {
	return len(g.vertices)
}

func (g *PlanarGraph) Vertex(v VertexID) Vertex {
	return g.vertices[v]
}

func (g *PlanarGraph) Point(v VertexID) Point {
	return g.vertices[v].Point
}

func (g *PlanarGraph) TriangleCount() int {
	return len(g.triangles)
}

func (g *PlanarGraph) Triangle(t TriangleID) Triangle {
	return g.triangles[t]
}

func (g *PlanarGraph) TrianglePoints(t TriangleID) [3]Point {
	tri := g.triangles[t]
	return [3]Point{
		g.vertices[tri.V[0]].Point,
		g.vertices[tri.V[1]].Point,
		g.vertices[tri.V[2]].Point,
	}
}

// Append a new triangle to the arena, connecting its edges and registering it
// with its corners. The caller is responsible for winding.
func (g *PlanarGraph) addTriangle(a, b, c VertexID) TriangleID {
	g.Connect(a, b)
	g.Connect(b, c)
	g.Connect(c, a)

	id := TriangleID(len(g.triangles))
	g.triangles = append(g.triangles, Triangle{ID: id, V: [3]VertexID{a, b, c}})
	for _, v := range [3]VertexID{a, b, c} {
		g.vertices[v].addTriangle(id)
	}
	return id
}

func (v *Vertex) addTriangle(t TriangleID) {
	for _, existing := range v.Triangles {
		if existing == t {
			return
		}
	}
	v.Triangles = append(v.Triangles, t)
}

// Remove a vertex from the triangulation, returning the triangles that touched
// it and the boundary of the hole left behind.
//
// The hole boundary is found by walking the fan of triangles around v. Each
// fan triangle, with v dropped, is an edge of the boundary:
/*
	    b-----c
	   / \   / \
	  a---v-----d        fan edges: ab, bc, cd, de, ea
	   \ / \   /
	    e-----+
*/
// We seed the walk with any edge, emitting both its ends, then repeatedly find
// the unconsumed edge sharing the most recently emitted vertex and emit its
// other end. After degree-2 steps every boundary vertex has been emitted once,
// and the one edge left over must close the cycle back to the start.
//
// The walk is validated in full before anything is mutated. A fan that is not
// a single closed cycle means the graph is not a valid triangulated disk, and
// is fatal.
func (g *PlanarGraph) RemoveVertex(v VertexID) (oldTriangles []TriangleID, hole []VertexID) {
	if int(v) < 0 || int(v) >= len(g.vertices) {
		fatalf("no such vertex %d", v)
	}
	vertex := &g.vertices[v]
	if vertex.Removed {
		fatalf("vertex %d is already removed", v)
	}
	if g.IsOuter(v) {
		fatalf("vertex %d is an outer triangle vertex", v)
	}

	degree := g.Degree(v)
	oldTriangles = make([]TriangleID, len(vertex.Triangles))
	copy(oldTriangles, vertex.Triangles)

	if degree < 3 || len(oldTriangles) != degree {
		fatalWrapf(ErrNonManifoldFan, "vertex %d has degree %d but %d incident triangles %v",
			v, degree, len(oldTriangles), oldTriangles)
	}

	// Fan edges, as the two non-v corners of each incident triangle
	type fanEdge struct {
		a, b VertexID
	}
	edges := make([]fanEdge, 0, len(oldTriangles))
	for _, t := range oldTriangles {
		a, b := g.triangles[t].Opposite(v)
		edges = append(edges, fanEdge{a, b})
	}

	hole = append(hole, edges[0].a, edges[0].b)
	query := edges[0].b
	edges = edges[1:]
	for i := 0; i < degree-2; i++ {
		found := -1
		for j, edge := range edges {
			if edge.a == query || edge.b == query {
				found = j
				break
			}
		}
		if found < 0 {
			fatalWrapf(ErrNonManifoldFan, "vertex %d: fan walk stuck at %d (triangles %v)", v, query, oldTriangles)
		}
		edge := edges[found]
		if edge.a == query {
			query = edge.b
		} else {
			query = edge.a
		}
		if containsVertexID(hole, query) {
			fatalWrapf(ErrNonManifoldFan, "vertex %d: fan revisits %d (triangles %v)", v, query, oldTriangles)
		}
		hole = append(hole, query)
		edges = append(edges[:found], edges[found+1:]...)
	}
	last := edges[0]
	if !(last.a == query && last.b == hole[0]) && !(last.b == query && last.a == hole[0]) {
		fatalWrapf(ErrNonManifoldFan, "vertex %d: fan does not close (triangles %v)", v, oldTriangles)
	}

	// The walk is sound, so now we can mutate.
	vertex.Removed = true
	g.active--

	for _, n := range g.adj[v] {
		g.adj[n] = removeVertexID(g.adj[n], v)
	}
	g.adj[v] = nil

	for _, t := range oldTriangles {
		for _, corner := range g.triangles[t].V {
			g.vertices[corner].Triangles = removeTriangleID(g.vertices[corner].Triangles, t)
		}
	}

	return oldTriangles, hole
}

// Append a triangulation level. Levels are never replaced or mutated.
func (g *PlanarGraph) RecordLevel(triangles []TriangleID) {
	level := make([]TriangleID, len(triangles))
	copy(level, triangles)
	g.levels = append(g.levels, level)
}

func (g *PlanarGraph) LevelCount() int {
	return len(g.levels)
}

// A copy of level i. Level 0 is the finest.
func (g *PlanarGraph) Level(i int) []TriangleID {
	level := make([]TriangleID, len(g.levels[i]))
	copy(level, g.levels[i])
	return level
}

func (g *PlanarGraph) Levels() [][]TriangleID {
	levels := make([][]TriangleID, len(g.levels))
	for i := range g.levels {
		levels[i] = g.Level(i)
	}
	return levels
}
