package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	assert.Equal(t, 1.0, Orientation(Point{0, 0}, Point{1, 0}, Point{0, 1}))
	assert.Equal(t, -1.0, Orientation(Point{0, 0}, Point{0, 1}, Point{1, 0}))
	assert.Equal(t, 0.0, Orientation(Point{0, 0}, Point{1, 1}, Point{2, 2}))
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{10, 0}, Point{0, 10}
	tests := []struct {
		name   string
		p      Point
		strict bool
		closed bool
	}{
		{"interior", Point{2, 2}, true, true},
		{"on edge", Point{5, 0}, false, true},
		{"on hypotenuse", Point{5, 5}, false, true},
		{"on vertex", Point{10, 0}, false, true},
		{"outside", Point{6, 6}, false, false},
		{"far outside", Point{-1, -1}, false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.strict, PointInTriangle(test.p, a, b, c))
			assert.Equal(t, test.closed, PointInClosedTriangle(test.p, a, b, c))
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d Point
		expected   bool
	}{
		{"proper crossing", Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}, true},
		{"shared endpoint", Point{0, 0}, Point{1, 1}, Point{1, 1}, Point{2, 0}, false},
		{"t junction", Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{1, 5}, false},
		{"collinear overlap", Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{3, 0}, false},
		{"parallel", Point{0, 0}, Point{2, 0}, Point{0, 1}, Point{2, 1}, false},
		{"disjoint", Point{0, 0}, Point{1, 1}, Point{5, 0}, Point{6, 3}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, SegmentsIntersect(test.a, test.b, test.c, test.d))
			assert.Equal(t, test.expected, SegmentsIntersect(test.c, test.d, test.a, test.b))
		})
	}
}

func TestTrianglesOverlap(t *testing.T) {
	tests := []struct {
		name      string
		t1, t2    [3]Point
		intersect bool
		overlap   bool
	}{
		{
			name:      "crossing edges",
			t1:        [3]Point{{0, 0}, {10, 0}, {0, 10}},
			t2:        [3]Point{{5, -5}, {15, 5}, {5, 5}},
			intersect: true,
			overlap:   true,
		},
		{
			name:      "corner inside",
			t1:        [3]Point{{0, 0}, {10, 0}, {0, 10}},
			t2:        [3]Point{{1, 1}, {20, 20}, {1, 20}},
			intersect: true,
			overlap:   true,
		},
		{
			name:      "identical",
			t1:        [3]Point{{0, 0}, {10, 0}, {0, 10}},
			t2:        [3]Point{{0, 0}, {10, 0}, {0, 10}},
			intersect: false,
			overlap:   true,
		},
		{
			name:      "shared edge",
			t1:        [3]Point{{0, 0}, {1, 0}, {0, 1}},
			t2:        [3]Point{{1, 0}, {1, 1}, {0, 1}},
			intersect: false,
			overlap:   false,
		},
		{
			name:      "shared vertex",
			t1:        [3]Point{{0, 0}, {1, 0}, {0, 1}},
			t2:        [3]Point{{1, 0}, {2, 0}, {2, 1}},
			intersect: false,
			overlap:   false,
		},
		{
			name:      "disjoint",
			t1:        [3]Point{{0, 0}, {1, 0}, {0, 1}},
			t2:        [3]Point{{5, 5}, {6, 5}, {5, 6}},
			intersect: false,
			overlap:   false,
		},
		{
			// Nested while sharing an edge, with the inner apex on the outer
			// triangle's other edge
			name:      "nested",
			t1:        [3]Point{{0, 10}, {5, 5}, {10, 10}},
			t2:        [3]Point{{0, 10}, {10, 0}, {10, 10}},
			intersect: false,
			overlap:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.intersect, TrianglesIntersect(test.t1, test.t2))
			assert.Equal(t, test.intersect, TrianglesIntersect(test.t2, test.t1))
			assert.Equal(t, test.overlap, TrianglesOverlap(test.t1, test.t2))
			assert.Equal(t, test.overlap, TrianglesOverlap(test.t2, test.t1))
		})
	}
}

func TestCentroidAndArea(t *testing.T) {
	tri := [3]Point{{0, 0}, {6, 0}, {0, 3}}
	centroid := Centroid(tri)
	assert.InDelta(t, 2, centroid.X, Tolerance)
	assert.InDelta(t, 1, centroid.Y, Tolerance)
	assert.Equal(t, 9.0, TriangleArea(tri))
	assert.Equal(t, 9.0, TriangleArea([3]Point{tri[0], tri[2], tri[1]}))
}
