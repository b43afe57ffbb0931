package advanced

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rclancey/earcut"
)

// A Triangulator turns a polygon, given as flat coordinates, into triangles.
//
// coords is [x0, y0, x1, y1, ...] with the outer boundary first, followed by
// each hole. holeIndices holds the vertex index (not the coordinate index)
// where each hole starts. The result is a flat list of vertex indices, three
// per triangle. Winding of the output is unspecified.
type Triangulator interface {
	Triangulate(coords []float64, holeIndices []int) ([]int, error)
}

// Mapbox's earcut, which handles holes.
type Earcut struct{}

func (Earcut) Triangulate(coords []float64, holeIndices []int) ([]int, error) {
	indices, err := earcut.Earcut(coords, holeIndices, 2)
	if err != nil {
		return nil, errors.Wrap(err, "earcut")
	}
	return indices, nil
}

// Plain O(n³) ear clipping. It is much slower than earcut on big polygons, but
// holes left by removing a single vertex are bounded by the degree limit, and
// unlike earcut it never drops collinear vertices: an ear is only clipped if no
// other vertex lies inside it or on its boundary, so every input vertex ends up
// in the output.
//
// At most one hole is supported. Two cuts, one from the hole's rightmost vertex
// to an outer vertex further right, and one from its leftmost vertex to an outer
// vertex further left, split the region into two simple polygons which are
// clipped separately:
/*
	    +-------------+
	   /   +-----+     \
	  o1---hl    hr-----o2      cuts hl-o1 and hr-o2
	   \   +-----+     /
	    +-------------+
*/
// Each cut lies entirely to one side of the hole, so the cuts can't cross each
// other or the hole. Bridging the hole into a single boundary the way earcut
// does would visit the bridge ends twice, and with collinear vertices on the
// hole that can leave no clippable ear at all.
type EarClipper struct{}

func (EarClipper) Triangulate(coords []float64, holeIndices []int) ([]int, error) {
	if len(holeIndices) > 1 {
		return nil, errors.New("ear clipper supports at most one hole")
	}
	n := len(coords) / 2
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{coords[2*i], coords[2*i+1]}
	}

	outerEnd := n
	if len(holeIndices) == 1 {
		outerEnd = holeIndices[0]
	}
	if outerEnd < 3 || n-outerEnd == 1 || n-outerEnd == 2 {
		return nil, errors.Wrapf(ErrTooFewPoints, "have %d outer and %d hole vertices", outerEnd, n-outerEnd)
	}

	// Work counterclockwise so that convex corners have positive orientation.
	// The hole goes the other way, so the region is always on the left.
	outer := orientedRing(points, 0, outerEnd, true)
	if outerEnd == n {
		return clipEars(points, outer)
	}
	hole := orientedRing(points, outerEnd, n, false)

	right, left := 0, 0
	for i, index := range hole {
		if points[index].X > points[hole[right]].X {
			right = i
		}
		if points[index].X < points[hole[left]].X {
			left = i
		}
	}
	rightCut := findCut(points, outer, hole, right, true)
	leftCut := findCut(points, outer, hole, left, false)
	if rightCut < 0 || leftCut < 0 {
		return nil, errors.New("no outer vertex is visible from the hole")
	}

	first := append(ringArc(outer, rightCut, leftCut), ringArc(hole, left, right)...)
	second := append(ringArc(outer, leftCut, rightCut), ringArc(hole, right, left)...)
	firstTriangles, err := clipEars(points, first)
	if err != nil {
		return nil, err
	}
	secondTriangles, err := clipEars(points, second)
	if err != nil {
		return nil, err
	}
	return append(firstTriangles, secondTriangles...), nil
}

// Indices start..end-1, ordered so that the ring winds the requested way.
func orientedRing(points []Point, start, end int, ccw bool) []int {
	ring := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		ring = append(ring, i)
	}
	if (Polygon{points[start:end]}).IsCCW() != ccw {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	return ring
}

// The ring's entries from position a forward to position b, inclusive.
func ringArc(ring []int, a, b int) []int {
	arc := []int{ring[a]}
	for a != b {
		a = CircularIndex(a+1, len(ring))
		arc = append(arc, ring[a])
	}
	return arc
}

// Find the position in outer of the nearest outer vertex that can be joined
// to hole[from] by a segment heading right (or left), crossing no edge and
// passing through no other vertex. Returns -1 if there is none.
func findCut(points []Point, outer []int, hole []int, from int, right bool) int {
	h := points[hole[from]]
	visible := func(o Point) bool {
		for _, ring := range [][]int{outer, hole} {
			for i, index := range ring {
				p := points[index]
				q := points[ring[CircularIndex(i+1, len(ring))]]
				if SegmentsIntersect(h, o, p, q) {
					return false
				}
				if p != h && p != o && onSegment(p, h, o) {
					return false
				}
			}
		}
		return true
	}

	found := -1
	best := 0.0
	for i, index := range outer {
		o := points[index]
		if (right && o.X <= h.X) || (!right && o.X >= h.X) {
			continue
		}
		distance := (o.X-h.X)*(o.X-h.X) + (o.Y-h.Y)*(o.Y-h.Y)
		if found >= 0 && distance >= best {
			continue
		}
		if visible(o) {
			found, best = i, distance
		}
	}
	return found
}

// Is p on the closed segment ab?
func onSegment(p, a, b Point) bool {
	if Orientation(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// Clip ears off a simple counterclockwise ring until one triangle is left.
func clipEars(points []Point, ring []int) ([]int, error) {
	remaining := append([]int{}, ring...)
	triangles := make([]int, 0, 3*(len(ring)-2))
	for len(remaining) > 3 {
		ear := findEar(points, remaining)
		if ear < 0 {
			return nil, errors.Errorf("no ear found with %d vertices remaining", len(remaining))
		}
		m := len(remaining)
		prev := remaining[CircularIndex(ear-1, m)]
		next := remaining[CircularIndex(ear+1, m)]
		triangles = append(triangles, prev, remaining[ear], next)
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}
	if Orientation(points[remaining[0]], points[remaining[1]], points[remaining[2]]) <= 0 {
		return nil, errors.New("final triangle is degenerate")
	}
	return append(triangles, remaining...), nil
}

// Find the position in remaining of a clippable ear, or -1.
func findEar(points []Point, remaining []int) int {
	m := len(remaining)
	for i := range remaining {
		a := points[remaining[CircularIndex(i-1, m)]]
		b := points[remaining[i]]
		c := points[remaining[CircularIndex(i+1, m)]]
		if Orientation(a, b, c) <= 0 {
			continue // Reflex or flat
		}
		isEar := true
		for j, other := range remaining {
			if j == i || j == CircularIndex(i-1, m) || j == CircularIndex(i+1, m) {
				continue
			}
			p := points[other]
			if p == a || p == b || p == c {
				continue
			}
			if PointInClosedTriangle(p, a, b, c) {
				isEar = false
				break
			}
		}
		if isEar {
			return i
		}
	}
	return -1
}

// Tries each triangulator in turn, returning the first complete result (see
// CheckTriangulation). The error from the last attempt is returned if none
// succeed.
type FirstComplete []Triangulator

func (list FirstComplete) Triangulate(coords []float64, holeIndices []int) ([]int, error) {
	err := errors.New("no triangulators")
	for _, t := range list {
		var indices []int
		indices, err = t.Triangulate(coords, holeIndices)
		if err != nil {
			continue
		}
		if err = CheckTriangulation(coords, holeIndices, indices); err == nil {
			return indices, nil
		}
	}
	return nil, err
}

func DefaultTriangulator() Triangulator {
	return FirstComplete{Earcut{}, EarClipper{}}
}

// Check that triangulator output is usable as part of a planar graph: whole
// triangles, the right number of them for the polygon's vertex and hole
// count, every vertex used, and no zero area triangles.
func CheckTriangulation(coords []float64, holeIndices []int, indices []int) error {
	n := len(coords) / 2
	if len(indices)%3 != 0 {
		return errors.Wrapf(ErrIncompleteTriangulation, "%d indices is not a whole number of triangles", len(indices))
	}
	expected := n + 2*len(holeIndices) - 2
	if len(indices)/3 != expected {
		return errors.Wrapf(ErrIncompleteTriangulation, "expected %d triangles, got %d", expected, len(indices)/3)
	}
	used := make([]bool, n)
	for i := 0; i < len(indices); i += 3 {
		var corners [3]Point
		for j := 0; j < 3; j++ {
			index := indices[i+j]
			if index < 0 || index >= n {
				return errors.Wrapf(ErrIncompleteTriangulation, "index %d out of range", index)
			}
			used[index] = true
			corners[j] = Point{coords[2*index], coords[2*index+1]}
		}
		if Orientation(corners[0], corners[1], corners[2]) == 0 {
			return errors.Wrapf(ErrIncompleteTriangulation, "triangle %v has zero area", indices[i:i+3])
		}
	}
	for index, ok := range used {
		if !ok {
			return errors.Wrapf(ErrIncompleteTriangulation, "vertex %d is not in any triangle", index)
		}
	}

	// Triangles that overlap each other, or spill outside the polygon, will not
	// add up to the polygon's area.
	covered := 0.0
	for i := 0; i < len(indices); i += 3 {
		covered += TriangleArea([3]Point{
			{coords[2*indices[i]], coords[2*indices[i]+1]},
			{coords[2*indices[i+1]], coords[2*indices[i+1]+1]},
			{coords[2*indices[i+2]], coords[2*indices[i+2]+1]},
		})
	}
	expectedArea := polygonArea(coords, holeIndices)
	if math.Abs(covered-expectedArea) > 1e-9*math.Max(1, expectedArea) {
		return errors.Wrapf(ErrIncompleteTriangulation, "triangles cover area %g, polygon has area %g", covered, expectedArea)
	}
	return nil
}

// Area of the outer ring minus the area of each hole.
func polygonArea(coords []float64, holeIndices []int) float64 {
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{coords[2*i], coords[2*i+1]}
	}
	starts := append([]int{0}, holeIndices...)
	area := 0.0
	for i, start := range starts {
		end := len(points)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		ringArea := math.Abs((Polygon{points[start:end]}).SignedArea()) / 2
		if i == 0 {
			area += ringArea
		} else {
			area -= ringArea
		}
	}
	return area
}
