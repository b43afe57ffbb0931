package advanced

// Vertices of degree above this are never removed in a round. Every planar
// triangulation has average degree below 6, so a constant fraction of its
// vertices always have degree at most 8. That is what bounds the hierarchy to
// O(log n) levels, and each hole to O(1) re-triangulation work.
const DefaultMaxDegree = 8

// Greedily select a set of pairwise non-adjacent vertices of low degree.
//
// Active vertices other than the outer triangle's corners are visited in
// ascending id order. A vertex is taken if no earlier selection has forbidden
// it and its degree is at most maxDegree, and then all of its neighbors are
// forbidden. The result is in ascending id order.
func SelectIndependentSet(g *PlanarGraph, maxDegree int) []VertexID {
	var set []VertexID
	forbidden := make(VertexSet)
	for i := range g.vertices {
		v := VertexID(i)
		if g.vertices[v].Removed || g.IsOuter(v) || forbidden.Contains(v) {
			continue
		}
		if g.Degree(v) > maxDegree {
			continue
		}
		set = append(set, v)
		for _, n := range g.adj[v] {
			forbidden.Add(n)
		}
	}
	return set
}
