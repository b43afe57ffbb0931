package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	g := NewPlanarGraph()
	a := g.AddVertex(Point{0, 0})
	b := g.AddVertex(Point{1, 0})

	g.Connect(a, b)
	g.Connect(b, a)
	g.Connect(a, a)
	assert.True(t, g.Connected(a, b))
	assert.True(t, g.Connected(b, a))
	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
}

func TestAddTriangle(t *testing.T) {
	g := HexagonFan()
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 7, g.Active())
	assert.Equal(t, 6, g.TriangleCount())

	assert.Equal(t, 5, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 3, g.Degree(6))
	assert.ElementsMatch(t, []TriangleID{3, 4, 5}, g.Vertex(6).Triangles)
	assert.ElementsMatch(t, []TriangleID{0, 2, 3, 5}, g.Vertex(0).Triangles)
	assert.Equal(t, [3]Point{{4, 0}, {-2, 3}, {0, 0}}, g.TrianglePoints(3))
}

func TestRemoveVertex(t *testing.T) {
	g := HexagonFan()
	old, hole := g.RemoveVertex(6)
	assert.Equal(t, []TriangleID{3, 4, 5}, old)
	assert.Equal(t, []VertexID{0, 2, 4}, hole)

	assert.True(t, g.Vertex(6).Removed)
	assert.Equal(t, 6, g.Active())
	assert.Equal(t, 0, g.Degree(6))
	assert.Equal(t, 4, g.Degree(0))
	assert.False(t, g.Connected(0, 6))
	assert.ElementsMatch(t, []TriangleID{0, 2}, g.Vertex(0).Triangles)

	// Old triangles stay addressable
	assert.Equal(t, 6, g.TriangleCount())
	assert.Equal(t, [3]VertexID{0, 2, 6}, g.Triangle(3).V)

	created, err := g.Triangulate(EarClipper{}, hole, nil)
	require.NoError(t, err)
	assert.Equal(t, []TriangleID{6}, created)
	tri := g.Triangle(6)
	assert.ElementsMatch(t, []VertexID{0, 2, 4}, tri.V[:])
	points := g.TrianglePoints(6)
	assert.Greater(t, Orientation(points[0], points[1], points[2]), 0.0)
	assert.ElementsMatch(t, []TriangleID{0, 2, 6}, g.Vertex(0).Triangles)
}

func TestRemoveVertexFailures(t *testing.T) {
	remove := func(g *PlanarGraph, v VertexID) (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		g.RemoveVertex(v)
		return nil
	}

	t.Run("open fan", func(t *testing.T) {
		g := HexagonFan()
		// Vertex 1 only touches triangle 0
		err := remove(g, 1)
		assert.ErrorIs(t, err, ErrNonManifoldFan)
		assert.False(t, g.Vertex(1).Removed)
		assert.Equal(t, 7, g.Active())
	})

	t.Run("outer vertex", func(t *testing.T) {
		g := HexagonFan()
		g.markOuter(6)
		assert.Error(t, remove(g, 6))
		assert.False(t, g.Vertex(6).Removed)
	})

	t.Run("twice", func(t *testing.T) {
		g := HexagonFan()
		require.NoError(t, remove(g, 6))
		assert.Error(t, remove(g, 6))
	})

	t.Run("no such vertex", func(t *testing.T) {
		assert.Error(t, remove(HexagonFan(), 7))
	})
}

func TestLevels(t *testing.T) {
	g := HexagonFan()
	level := []TriangleID{0, 1, 2, 3, 4, 5}
	g.RecordLevel(level)
	level[0] = 99
	assert.Equal(t, 1, g.LevelCount())
	assert.Equal(t, []TriangleID{0, 1, 2, 3, 4, 5}, g.Level(0))

	g.RecordLevel([]TriangleID{0, 1, 2})
	assert.Equal(t, [][]TriangleID{{0, 1, 2, 3, 4, 5}, {0, 1, 2}}, g.Levels())
}
