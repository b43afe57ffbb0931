package advanced

import "github.com/pkg/errors"

// Triangulate the polygon bounded by the given vertices (with an optional hole)
// and add the resulting triangles to the graph.
//
// The triangulator works in local index space over the combined sequence
// boundary ++ hole. Each local index is mapped back to a vertex id, each
// triangle is turned counterclockwise, its three edges are connected, and it is
// registered with its corners. The ids of the new triangles are returned.
//
// Triangulator output is checked before the graph is touched, so a failure
// leaves the graph as it was.
func (g *PlanarGraph) Triangulate(t Triangulator, boundary []VertexID, hole []VertexID) ([]TriangleID, error) {
	coords := make([]float64, 0, 2*(len(boundary)+len(hole)))
	for _, v := range boundary {
		p := g.vertices[v].Point
		coords = append(coords, p.X, p.Y)
	}
	var holeIndices []int
	if len(hole) > 0 {
		holeIndices = []int{len(boundary)}
		for _, v := range hole {
			p := g.vertices[v].Point
			coords = append(coords, p.X, p.Y)
		}
	}

	indices, err := t.Triangulate(coords, holeIndices)
	if err != nil {
		return nil, errors.Wrapf(ErrIncompleteTriangulation, "triangulating %v (hole %v): %v", boundary, hole, err)
	}
	if err := CheckTriangulation(coords, holeIndices, indices); err != nil {
		return nil, errors.Wrapf(err, "triangulating %v (hole %v)", boundary, hole)
	}

	toVertex := func(index int) VertexID {
		if index < len(boundary) {
			return boundary[index]
		}
		return hole[index-len(boundary)]
	}

	created := make([]TriangleID, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := toVertex(indices[i]), toVertex(indices[i+1]), toVertex(indices[i+2])
		if Orientation(g.Point(a), g.Point(b), g.Point(c)) < 0 {
			b, c = c, b
		}
		created = append(created, g.addTriangle(a, b, c))
	}
	return created, nil
}
