package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures into point lists. It is not a real svg
// parser: it finds the single polygon element in the file and reads its points
// attribute, in whatever winding the file uses. If anything goes wrong, the
// test binary dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"star", "comb", "collinear_square", "zigzag"}

// Slack when comparing computed coordinates against exact ones
const Tolerance = 1e-6

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

func UnitSquare() []Point {
	return []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
}

// A star with the given number of tips, alternating between two radii.
func Star(tips int, outerRadius, innerRadius float64) []Point {
	var points []Point
	for i := 0; i < 2*tips; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(2*tips)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Six vertices around a center vertex, with the center's fan of three
// triangles plus three outer triangles filling in the gaps:
/*
	      h2----h1
	     / \ 0  / \
	    /   \  /   \
	  h3  1  h6  3  h0      (roughly)
	    \   /  \   /
	     \ / 2  \ /
	      h4----h5
*/
// Triangles 0:(0,1,2) 1:(2,3,4) 2:(4,5,0) sit outside the fan, and
// 3:(0,2,6) 4:(2,4,6) 5:(4,0,6) make up the fan around vertex 6.
func HexagonFan() *PlanarGraph {
	g := NewPlanarGraph()
	for _, p := range []Point{{4, 0}, {2, 3}, {-2, 3}, {-4, 0}, {-2, -3}, {2, -3}, {0, 0}} {
		g.AddVertex(p)
	}
	g.addTriangle(0, 1, 2)
	g.addTriangle(2, 3, 4)
	g.addTriangle(4, 5, 0)
	g.addTriangle(0, 2, 6)
	g.addTriangle(2, 4, 6)
	g.addTriangle(4, 0, 6)
	return g
}

// Check the structural properties every fully built hierarchy must have.
func AssertValidHierarchy(t *testing.T, h *Hierarchy) {
	g := h.Graph()
	o := h.OuterTriangle()
	outerArea := TriangleArea(o)

	require.True(t, h.Done(), "hierarchy is not built")
	require.Equal(t, 3, g.Active())
	require.Equal(t, 2*len(h.Boundary())+1, len(g.Level(0)), "level 0 size")

	for i, level := range g.Levels() {
		area := 0.0
		for _, tri := range level {
			points := g.TrianglePoints(tri)
			require.Greater(t, Orientation(points[0], points[1], points[2]), 0.0,
				"level %d triangle %d is not counterclockwise", i, tri)
			area += TriangleArea(points)
		}
		require.InDelta(t, outerArea, area, 1e-6*outerArea, "level %d does not cover the outer triangle", i)
		if i > 0 {
			require.Less(t, len(level), len(g.Level(i-1)), "level %d did not shrink", i)
		}
	}

	root, err := h.Root()
	require.NoError(t, err)
	last := g.Level(g.LevelCount() - 1)
	require.Equal(t, []TriangleID{root}, last)

	dag := h.DAG()
	require.NoError(t, dag.Validate())
	for i := 0; i < g.TriangleCount(); i++ {
		tri := TriangleID(i)
		for _, child := range dag.Children(tri) {
			assert.Less(t, h.CreatedAt(child), h.CreatedAt(tri), "edge %d -> %d", tri, child)
		}
		if h.CreatedAt(tri) > 0 {
			assert.NotEmpty(t, dag.Children(tri), "triangle %d has no children", tri)
		}
	}

	// Every triangle ever created is reachable from the root
	assert.Len(t, dag.Reachable(root), g.TriangleCount())
}

// Check a located triangle against a brute force scan of level 0.
func AssertLocatedCorrectly(t *testing.T, h *Hierarchy, p Point) {
	located, err := h.Locate(p)
	require.NoError(t, err)
	points := h.Graph().TrianglePoints(located)
	assert.True(t, PointInClosedTriangle(p, points[0], points[1], points[2]),
		"%v is not in located triangle %d %v", p, located, points)
	assert.Equal(t, 0, h.CreatedAt(located), "located triangle %d is not on level 0", located)
}
