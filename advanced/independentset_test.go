package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectIndependentSet(t *testing.T) {
	t.Run("ascending greedy", func(t *testing.T) {
		// Vertex 0 has degree 5 and is taken first, which forbids everything
		// but vertex 3
		assert.Equal(t, []VertexID{0, 3}, SelectIndependentSet(HexagonFan(), DefaultMaxDegree))
	})

	t.Run("skips outer vertices", func(t *testing.T) {
		g := HexagonFan()
		for _, v := range []VertexID{0, 2, 4} {
			g.markOuter(v)
		}
		assert.Equal(t, []VertexID{1, 3, 5, 6}, SelectIndependentSet(g, DefaultMaxDegree))
	})

	t.Run("degree limit", func(t *testing.T) {
		g := HexagonFan()
		for _, v := range []VertexID{0, 2, 4} {
			g.markOuter(v)
		}
		assert.Equal(t, []VertexID{1, 3, 5}, SelectIndependentSet(g, 2))
	})

	t.Run("skips removed vertices", func(t *testing.T) {
		g := HexagonFan()
		g.RemoveVertex(6)
		assert.Equal(t, []VertexID{0, 3}, SelectIndependentSet(g, DefaultMaxDegree))
		g.markOuter(0)
		assert.Equal(t, []VertexID{1, 3, 5}, SelectIndependentSet(g, DefaultMaxDegree))
	})

	t.Run("independent and bounded on fixtures", func(t *testing.T) {
		for _, name := range fixtureNames {
			h, err := NewHierarchy(LoadFixture(name))
			if !assert.NoError(t, err, name) {
				continue
			}
			g := h.Graph()
			set := SelectIndependentSet(g, DefaultMaxDegree)
			assert.NotEmpty(t, set, name)
			members := make(VertexSet)
			for _, v := range set {
				members.Add(v)
			}
			for _, v := range set {
				assert.False(t, g.IsOuter(v), name)
				assert.LessOrEqual(t, g.Degree(v), DefaultMaxDegree, name)
				for _, n := range g.Neighbors(v) {
					assert.False(t, members.Contains(n), "%s: %d and %d are adjacent", name, v, n)
				}
			}
		}
	})
}
